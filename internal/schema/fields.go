package schema

import (
	"encoding/json"
	"math"
	"time"

	"github.com/patrickayoup/gobunpro/internal/timestamp"
	"github.com/patrickayoup/gobunpro/pkg/validator"
)

const (
	msgMissing          = "Missing data for required field."
	msgInvalidType      = "Invalid input type."
	msgInvalidString    = "Not a valid string."
	msgInvalidInteger   = "Not a valid integer."
	msgInvalidTimestamp = "Not a valid timestamp."

	// schemaKey holds problems with the payload as a whole.
	schemaKey = "_schema"
)

// reader pulls typed fields out of a decoded JSON object, recording every
// problem on errs instead of stopping at the first one.
type reader struct {
	data map[string]any
	errs *validator.ValidationError
}

func newReader(raw any) (*reader, bool) {
	r := &reader{errs: &validator.ValidationError{}}
	data, ok := raw.(map[string]any)
	if !ok {
		r.errs.Add(schemaKey, msgInvalidType)
		return r, false
	}
	r.data = data
	return r, true
}

func (r *reader) lookup(key string) (any, bool) {
	v, ok := r.data[key]
	if !ok || v == nil {
		r.errs.Add(key, msgMissing)
		return nil, false
	}
	return v, true
}

func (r *reader) String(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.errs.Add(key, msgInvalidString)
		return ""
	}
	return s
}

func (r *reader) Int(key string) int {
	v, ok := r.lookup(key)
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		r.errs.Add(key, msgInvalidInteger)
		return 0
	}
	return n
}

func (r *reader) Time(key string) time.Time {
	v, ok := r.lookup(key)
	if !ok {
		return time.Time{}
	}
	f, ok := toFloat(v)
	if !ok || !timestamp.Valid(f) {
		r.errs.Add(key, msgInvalidTimestamp)
		return time.Time{}
	}
	return timestamp.Deserialize(f)
}

// check runs the struct tag constraints on the built record. Fields that
// already failed extraction keep only their extraction message.
func (r *reader) check(record any) {
	err := validator.ValidateStruct(record)
	if err == nil {
		return
	}
	vErr, ok := err.(*validator.ValidationError)
	if !ok {
		r.errs.Add(schemaKey, err.Error())
		return
	}
	for field, msgs := range vErr.Fields {
		if r.errs.Has(field) {
			continue
		}
		for _, msg := range msgs {
			r.errs.Add(field, msg)
		}
	}
}

func (r *reader) Err() error {
	return r.errs.OrNil()
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}
