package schema

import (
	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/internal/timestamp"
	"github.com/patrickayoup/gobunpro/pkg/validator"
)

func ParseGrammarPoint(raw any) (models.GrammarPoint, error) {
	r, ok := newReader(raw)
	if !ok {
		return models.GrammarPoint{}, r.Err()
	}

	point := models.GrammarPoint{
		GrammarPoint:  r.String("grammar_point"),
		CreatedAtDate: r.Time("created_at_date"),
		UpdatedAtDate: r.Time("updated_at_date"),
	}

	if err := r.Err(); err != nil {
		return models.GrammarPoint{}, err
	}
	return point, nil
}

// ParseGrammarPoints parses a JSON array of grammar points. Every element is
// checked and problems are reported per index.
func ParseGrammarPoints(raw any) ([]models.GrammarPoint, error) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []map[string]any:
		items = make([]any, 0, len(v))
		for _, m := range v {
			items = append(items, m)
		}
	default:
		vErr := &validator.ValidationError{}
		vErr.Add(schemaKey, msgInvalidType)
		return nil, vErr
	}

	points := make([]models.GrammarPoint, 0, len(items))
	vErr := &validator.ValidationError{}
	for i, item := range items {
		point, err := ParseGrammarPoint(item)
		if err != nil {
			if itemErr, ok := err.(*validator.ValidationError); ok {
				vErr.AddItem(i, itemErr.Fields)
				continue
			}
			return nil, err
		}
		points = append(points, point)
	}

	if err := vErr.OrNil(); err != nil {
		return nil, err
	}
	return points, nil
}

func FormatGrammarPoint(point models.GrammarPoint) map[string]any {
	return map[string]any{
		"grammar_point":   point.GrammarPoint,
		"created_at_date": timestamp.Serialize(point.CreatedAtDate),
		"updated_at_date": timestamp.Serialize(point.UpdatedAtDate),
	}
}

func FormatGrammarPoints(points []models.GrammarPoint) []any {
	out := make([]any, 0, len(points))
	for _, p := range points {
		out = append(out, FormatGrammarPoint(p))
	}
	return out
}
