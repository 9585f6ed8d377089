package models

import (
	"fmt"
	"time"
)

// UserInformation is the account summary Bunpro attaches to every response.
type UserInformation struct {
	Username          string    `json:"username" validate:"required"`
	GrammarPointCount int       `json:"grammar_point_count" validate:"min=0"`
	GhostReviewCount  int       `json:"ghost_review_count" validate:"min=0"`
	CreationDate      time.Time `json:"creation_date"`
}

func (u UserInformation) Equal(other UserInformation) bool {
	return u.Username == other.Username &&
		u.GrammarPointCount == other.GrammarPointCount &&
		u.GhostReviewCount == other.GhostReviewCount &&
		u.CreationDate.Equal(other.CreationDate)
}

func (u UserInformation) String() string {
	return fmt.Sprintf(
		"UserInformation(username=%q, grammar_point_count=%d, ghost_review_count=%d, creation_date=%s)",
		u.Username, u.GrammarPointCount, u.GhostReviewCount, formatDate(u.CreationDate),
	)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
