package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNumber(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 42, 42.0},
		{"int64", int64(7), 7.0},
		{"numeric string", "3.14", 3.14},
		{"non-numeric string", "not a number", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"map", map[string]int{"a": 1}, 0},
		{"slice", []float64{1, 2}, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"negative value passes through", -5.5, -5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeNumber(tt.input)
			assert.Equal(t, tt.want, got, "SafeNumber(%v) should coerce safely", tt.input)
		})
	}
}

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 0.0, SafeFloat(math.NaN()), "NaN should map to zero")
	assert.Equal(t, 0.0, SafeFloat(math.Inf(1)), "+Inf should map to zero")
	assert.Equal(t, -3.2, SafeFloat(-3.2), "finite values should pass through")
}

func TestCoalesce(t *testing.T) {
	a := 10.0
	b := 20.0

	assert.Equal(t, 10.0, coalesce(&a, &b), "first non-nil value wins")
	assert.Equal(t, 20.0, coalesce(nil, &b), "nil pointers are skipped")
	assert.Equal(t, 0.0, coalesce(nil, nil), "all-nil coalesces to zero")
}
