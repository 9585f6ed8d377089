package models

import (
	"fmt"
	"time"
)

// StudyQueue holds how many reviews are due now and in the near future.
type StudyQueue struct {
	ReviewsAvailable         int       `json:"reviews_available" validate:"min=0"`
	NextReviewDate           time.Time `json:"next_review_date"`
	ReviewsAvailableNextHour int       `json:"reviews_available_next_hour" validate:"min=0"`
	ReviewsAvailableNextDay  int       `json:"reviews_available_next_day" validate:"min=0"`
}

func (s StudyQueue) Equal(other StudyQueue) bool {
	return s.ReviewsAvailable == other.ReviewsAvailable &&
		s.NextReviewDate.Equal(other.NextReviewDate) &&
		s.ReviewsAvailableNextHour == other.ReviewsAvailableNextHour &&
		s.ReviewsAvailableNextDay == other.ReviewsAvailableNextDay
}

func (s StudyQueue) String() string {
	return fmt.Sprintf(
		"StudyQueue(reviews_available=%d, next_review_date=%s, reviews_available_next_hour=%d, reviews_available_next_day=%d)",
		s.ReviewsAvailable, formatDate(s.NextReviewDate), s.ReviewsAvailableNextHour, s.ReviewsAvailableNextDay,
	)
}
