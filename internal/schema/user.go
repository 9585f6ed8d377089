package schema

import (
	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/internal/timestamp"
)

// ParseUserInformation builds a UserInformation from a decoded JSON object.
func ParseUserInformation(raw any) (models.UserInformation, error) {
	r, ok := newReader(raw)
	if !ok {
		return models.UserInformation{}, r.Err()
	}

	info := models.UserInformation{
		Username:          r.String("username"),
		GrammarPointCount: r.Int("grammar_point_count"),
		GhostReviewCount:  r.Int("ghost_review_count"),
		CreationDate:      r.Time("creation_date"),
	}
	r.check(info)

	if err := r.Err(); err != nil {
		return models.UserInformation{}, err
	}
	return info, nil
}

func FormatUserInformation(info models.UserInformation) map[string]any {
	return map[string]any{
		"username":            info.Username,
		"grammar_point_count": info.GrammarPointCount,
		"ghost_review_count":  info.GhostReviewCount,
		"creation_date":       timestamp.Serialize(info.CreationDate),
	}
}
