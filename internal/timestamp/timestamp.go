package timestamp

import (
	"math"
	"time"
)

// Serialize returns t as seconds since the Unix epoch. Sub-second precision is
// kept in the fractional part.
func Serialize(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

// Valid reports whether sec is a finite number of seconds that fits an int64.
func Valid(sec float64) bool {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return false
	}
	return sec >= math.MinInt64 && math.Floor(sec) < math.MaxInt64
}

// Deserialize converts Unix seconds to a UTC time. The fractional part is
// rounded to microseconds since float64 cannot carry nanoseconds for current dates.
// sec must satisfy Valid.
func Deserialize(sec float64) time.Time {
	whole := math.Floor(sec)
	micros := math.Round((sec - whole) * 1e6)
	if micros >= 1e6 {
		whole++
		micros = 0
	}
	return time.Unix(int64(whole), int64(micros)*int64(time.Microsecond)).UTC()
}
