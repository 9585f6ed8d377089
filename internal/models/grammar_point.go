package models

import (
	"fmt"
	"time"
)

type GrammarPoint struct {
	GrammarPoint  string    `json:"grammar_point"`
	CreatedAtDate time.Time `json:"created_at_date"`
	UpdatedAtDate time.Time `json:"updated_at_date"`
}

func (g GrammarPoint) Equal(other GrammarPoint) bool {
	return g.GrammarPoint == other.GrammarPoint &&
		g.CreatedAtDate.Equal(other.CreatedAtDate) &&
		g.UpdatedAtDate.Equal(other.UpdatedAtDate)
}

func (g GrammarPoint) String() string {
	return fmt.Sprintf(
		"GrammarPoint(grammar_point=%q, created_at_date=%s, updated_at_date=%s)",
		g.GrammarPoint, formatDate(g.CreatedAtDate), formatDate(g.UpdatedAtDate),
	)
}
