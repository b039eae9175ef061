package hexconv

import (
	"errors"
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{255, "000000FF"},
		{255.99, "000000FF"},
		{-1, "FFFFFFFF"},
		{-255, "FFFFFF01"},
		{-0.9, "00000000"},
		{0, "00000000"},
		{math.MaxInt32, "7FFFFFFF"},
		{math.MinInt32, "80000000"},
		{2147483647.5, "7FFFFFFF"},
	}
	for _, tt := range tests {
		got, err := Encode(tt.in)
		if err != nil {
			t.Errorf("Encode(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Encode(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	for _, v := range []float64{math.MaxInt32 + 1, math.MinInt32 - 1, 1e20, math.NaN(), math.Inf(-1)} {
		if _, err := Encode(v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Encode(%v) error = %v, want ErrOutOfRange", v, err)
		}
	}
}
