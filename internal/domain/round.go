package domain

import "strconv"

// Round3 rounds v to three decimals using the correctly rounded decimal
// representation, so a binary value just below a halfway point rounds down
// and exact halves go to the even digit. Every value the frame-set and Strp
// commands write goes through it; the tool-frame shift result does not.
func Round3(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// RoundPose rounds all six components with Round3.
func RoundPose(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = Round3(v)
	}
	return out
}
