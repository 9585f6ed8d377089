package schema

import (
	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/internal/timestamp"
)

func ParseStudyQueue(raw any) (models.StudyQueue, error) {
	r, ok := newReader(raw)
	if !ok {
		return models.StudyQueue{}, r.Err()
	}

	queue := models.StudyQueue{
		ReviewsAvailable:         r.Int("reviews_available"),
		NextReviewDate:           r.Time("next_review_date"),
		ReviewsAvailableNextHour: r.Int("reviews_available_next_hour"),
		ReviewsAvailableNextDay:  r.Int("reviews_available_next_day"),
	}
	r.check(queue)

	if err := r.Err(); err != nil {
		return models.StudyQueue{}, err
	}
	return queue, nil
}

func FormatStudyQueue(queue models.StudyQueue) map[string]any {
	return map[string]any{
		"reviews_available":           queue.ReviewsAvailable,
		"next_review_date":            timestamp.Serialize(queue.NextReviewDate),
		"reviews_available_next_hour": queue.ReviewsAvailableNextHour,
		"reviews_available_next_day":  queue.ReviewsAvailableNextDay,
	}
}
