package calculation

import (
	"math"
	"strconv"
)

// SafeNumber coerces a loosely typed value to a float64. Anything that is not
// a finite number comes back as 0 — the computation layer never errors on bad
// input, it degrades.
func SafeNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return SafeFloat(n)
	case float32:
		return SafeFloat(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return SafeFloat(f)
	case bool:
		if n {
			return 1
		}
		return 0
	case nil:
		return 0
	default:
		return 0
	}
}

// SafeFloat maps NaN and infinities to 0 and passes every other value through.
func SafeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// coalesce returns the first non-nil value, coerced, or 0.
func coalesce(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return SafeFloat(*v)
		}
	}
	return 0
}
