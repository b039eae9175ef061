// Package textparse decodes the delimited vision strings read from string
// registers: a status value followed by X, Y, C groups.
package textparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for a string with no fields.
	ErrEmpty = errors.New("textparse: no data")

	// ErrBadStatus is returned when the first field is not a number.
	ErrBadStatus = errors.New("textparse: status is not a number")

	// ErrGroupShape is returned when the data fields are not a multiple of 3.
	ErrGroupShape = errors.New("textparse: data count is not a multiple of 3 (X,Y,C per group)")

	// ErrBadNumber is returned when a data field is not a number.
	ErrBadNumber = errors.New("textparse: value is not a number")
)

// candidates are tried in priority order; the first wins ties.
var candidates = []string{",", ";", "|", "\t", " "}

const numberChars = "0123456789.- \t"

// DetectDelimiter picks the separator that splits s into the most non-empty
// fields. When no candidate yields at least two fields, the first character
// after the start that cannot be part of a number is used. The fallback is a
// comma.
func DetectDelimiter(s string) string {
	best, bestN := "", 0
	for _, d := range candidates {
		if n := len(split(s, d)); n > bestN {
			best, bestN = d, n
		}
	}

	if best == "" || bestN < 2 {
		for i, r := range s {
			if i > 0 && !strings.ContainsRune(numberChars, r) {
				return string(r)
			}
		}
	}
	if best == "" {
		return ","
	}
	return best
}

// Fields splits s on its detected delimiter, trimming and dropping empties.
func Fields(s string) []string {
	return split(s, DetectDelimiter(s))
}

func split(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseStatus converts the status field, truncating toward zero: "1.9" is 1.
// Any finite value that fits an int is accepted.
func ParseStatus(field string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt {
		return 0, fmt.Errorf("%w: %q", ErrBadStatus, field)
	}
	return int(v), nil
}

// Group is one detected workpiece: planar position and rotation about Z.
type Group struct {
	X, Y, C float64
}

// ParseGroups converts data fields into X, Y, C groups.
func ParseGroups(fields []string) ([]Group, error) {
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrGroupShape, len(fields))
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q", ErrBadNumber, i+1, f)
		}
		vals[i] = v
	}

	groups := make([]Group, 0, len(vals)/3)
	for i := 0; i < len(vals); i += 3 {
		groups = append(groups, Group{X: vals[i], Y: vals[i+1], C: vals[i+2]})
	}
	return groups, nil
}
