// Package hexconv formats register values as 32-bit hex strings.
package hexconv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned for values that do not fit in an int32 after
// truncation, and for NaN and infinities.
var ErrOutOfRange = errors.New("hexconv: value outside 32-bit integer range")

// Encode truncates v toward zero and renders it as eight upper-case hex
// digits. Negative values use two's complement: -1 is "FFFFFFFF".
func Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	t := math.Trunc(v)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return "", fmt.Errorf("%w: %.0f", ErrOutOfRange, t)
	}
	return fmt.Sprintf("%08X", uint32(int32(t))), nil
}
