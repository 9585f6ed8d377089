package schema

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	creationDate   = time.Date(2017, 12, 25, 21, 3, 51, 0, time.UTC)
	nextReviewDate = time.Date(2019, 5, 8, 1, 30, 0, 0, time.UTC)
)

func userInformation() models.UserInformation {
	return models.UserInformation{
		Username:          "username",
		GrammarPointCount: 10,
		GhostReviewCount:  2,
		CreationDate:      creationDate,
	}
}

func studyQueue() models.StudyQueue {
	return models.StudyQueue{
		ReviewsAvailable:         7,
		NextReviewDate:           nextReviewDate,
		ReviewsAvailableNextHour: 8,
		ReviewsAvailableNextDay:  12,
	}
}

func grammarPoint() models.GrammarPoint {
	return models.GrammarPoint{
		GrammarPoint:  "ておく",
		CreatedAtDate: creationDate,
		UpdatedAtDate: nextReviewDate,
	}
}

// decode mimics how the client decodes response bodies.
func decode(t *testing.T, body string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func validationFields(t *testing.T, err error) *validator.ValidationError {
	t.Helper()

	var vErr *validator.ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	return vErr
}

func TestParseUserInformation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    models.UserInformation
		wantErr map[string][]string
	}{
		{
			name: "success",
			body: `{"username":"username","grammar_point_count":10,"ghost_review_count":2,"creation_date":1514235831}`,
			want: userInformation(),
		},
		{
			name: "success: extra keys ignored",
			body: `{"username":"username","grammar_point_count":10,"ghost_review_count":2,"creation_date":1514235831,"level":"N3"}`,
			want: userInformation(),
		},
		{
			name: "empty object reports every field",
			body: `{}`,
			wantErr: map[string][]string{
				"username":            {"Missing data for required field."},
				"grammar_point_count": {"Missing data for required field."},
				"ghost_review_count":  {"Missing data for required field."},
				"creation_date":       {"Missing data for required field."},
			},
		},
		{
			name: "wrong types",
			body: `{"username":5,"grammar_point_count":"ten","ghost_review_count":2.5,"creation_date":"yesterday"}`,
			wantErr: map[string][]string{
				"username":            {"Not a valid string."},
				"grammar_point_count": {"Not a valid integer."},
				"ghost_review_count":  {"Not a valid integer."},
				"creation_date":       {"Not a valid timestamp."},
			},
		},
		{
			name: "constraint violations",
			body: `{"username":"","grammar_point_count":-1,"ghost_review_count":0,"creation_date":1514235831}`,
			wantErr: map[string][]string{
				"username":            {"Missing data for required field."},
				"grammar_point_count": {"Must be greater than or equal to 0."},
			},
		},
		{
			name: "integer beyond int64",
			body: `{"username":"username","grammar_point_count":9223372036854775808,"ghost_review_count":2,"creation_date":1514235831}`,
			wantErr: map[string][]string{
				"grammar_point_count": {"Not a valid integer."},
			},
		},
		{
			name: "timestamp beyond int64 seconds",
			body: `{"username":"username","grammar_point_count":10,"ghost_review_count":2,"creation_date":1e20}`,
			wantErr: map[string][]string{
				"creation_date": {"Not a valid timestamp."},
			},
		},
		{
			name: "null counts as missing",
			body: `{"username":"username","grammar_point_count":null,"ghost_review_count":2,"creation_date":1514235831}`,
			wantErr: map[string][]string{
				"grammar_point_count": {"Missing data for required field."},
			},
		},
		{
			name: "not an object",
			body: `[1, 2]`,
			wantErr: map[string][]string{
				"_schema": {"Invalid input type."},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseUserInformation(decode(t, tt.body))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, validationFields(t, err).Fields)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStudyQueue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    models.StudyQueue
		wantErr map[string][]string
	}{
		{
			name: "success",
			body: `{"reviews_available":7,"next_review_date":1557279000,"reviews_available_next_hour":8,"reviews_available_next_day":12}`,
			want: studyQueue(),
		},
		{
			name: "success: float counts with integral values",
			body: `{"reviews_available":7.0,"next_review_date":1557279000.0,"reviews_available_next_hour":8,"reviews_available_next_day":12}`,
			want: studyQueue(),
		},
		{
			name: "partial object",
			body: `{"reviews_available":7,"next_review_date":1557279000}`,
			wantErr: map[string][]string{
				"reviews_available_next_hour": {"Missing data for required field."},
				"reviews_available_next_day":  {"Missing data for required field."},
			},
		},
		{
			name: "negative count",
			body: `{"reviews_available":-7,"next_review_date":1557279000,"reviews_available_next_hour":8,"reviews_available_next_day":12}`,
			wantErr: map[string][]string{
				"reviews_available": {"Must be greater than or equal to 0."},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStudyQueue(decode(t, tt.body))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, validationFields(t, err).Fields)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGrammarPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		want      []models.GrammarPoint
		wantItems map[int]map[string][]string
		wantField map[string][]string
	}{
		{
			name: "success",
			body: `[{"grammar_point":"ておく","created_at_date":1514235831,"updated_at_date":1557279000}]`,
			want: []models.GrammarPoint{grammarPoint()},
		},
		{
			name: "success: empty list",
			body: `[]`,
			want: []models.GrammarPoint{},
		},
		{
			name: "errors collected per index",
			body: `[
				{"grammar_point":"ておく","created_at_date":1514235831,"updated_at_date":1557279000},
				{"created_at_date":1514235831,"updated_at_date":1557279000},
				{"grammar_point":"は","created_at_date":"today"}
			]`,
			wantItems: map[int]map[string][]string{
				1: {"grammar_point": {"Missing data for required field."}},
				2: {
					"created_at_date": {"Not a valid timestamp."},
					"updated_at_date": {"Missing data for required field."},
				},
			},
		},
		{
			name: "element not an object",
			body: `["ておく"]`,
			wantItems: map[int]map[string][]string{
				0: {"_schema": {"Invalid input type."}},
			},
		},
		{
			name: "not a list",
			body: `{}`,
			wantField: map[string][]string{
				"_schema": {"Invalid input type."},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGrammarPoints(decode(t, tt.body))
			if tt.wantItems != nil || tt.wantField != nil {
				require.Error(t, err)
				vErr := validationFields(t, err)
				assert.Equal(t, tt.wantItems, vErr.Items)
				assert.Equal(t, tt.wantField, vErr.Fields)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGrammarPoint_NonFiniteTimestamp(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -1e20} {
		_, err := ParseGrammarPoint(map[string]any{
			"grammar_point":   "ておく",
			"created_at_date": v,
			"updated_at_date": float64(1557279000),
		})

		require.Error(t, err, "value %v", v)
		assert.Equal(t, map[string][]string{
			"created_at_date": {"Not a valid timestamp."},
		}, validationFields(t, err).Fields)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{
		"username":            "username",
		"grammar_point_count": 10,
		"ghost_review_count":  2,
		"creation_date":       float64(1514235831),
	}, FormatUserInformation(userInformation()))

	assert.Equal(t, map[string]any{
		"reviews_available":           7,
		"next_review_date":            float64(1557279000),
		"reviews_available_next_hour": 8,
		"reviews_available_next_day":  12,
	}, FormatStudyQueue(studyQueue()))

	assert.Equal(t, map[string]any{
		"grammar_point":   "ておく",
		"created_at_date": float64(1514235831),
		"updated_at_date": float64(1557279000),
	}, FormatGrammarPoint(grammarPoint()))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("user information", func(t *testing.T) {
		t.Parallel()

		want := userInformation()
		got, err := ParseUserInformation(FormatUserInformation(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("study queue", func(t *testing.T) {
		t.Parallel()

		want := studyQueue()
		got, err := ParseStudyQueue(FormatStudyQueue(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("grammar points", func(t *testing.T) {
		t.Parallel()

		second := grammarPoint()
		second.GrammarPoint = "〜ばかりか"
		second.UpdatedAtDate = nextReviewDate.Add(1500 * time.Millisecond)

		want := []models.GrammarPoint{grammarPoint(), second}
		got, err := ParseGrammarPoints(FormatGrammarPoints(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("through json", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(FormatUserInformation(userInformation()))
		require.NoError(t, err)

		got, err := ParseUserInformation(decode(t, string(raw)))
		require.NoError(t, err)
		assert.Equal(t, userInformation(), got)
	})
}
