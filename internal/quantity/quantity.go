// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quantity parses the amount given on the command line. Amounts are
// either decimal numbers ("1.5", "2e3") or simple fractions ("3/4").
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberFormatError reports a quantity that is not a number.
type NumberFormatError struct {
	Input string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("could not convert '%s' into a number", e.Input)
}

// Parse converts s into a float. A fraction needs a non-negative integer on
// each side of the slash and a non-zero denominator. The whole token must be
// consumed and the result must be finite.
func Parse(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		up, err := strconv.ParseUint(num, 10, 64)
		if err != nil {
			return 0, &NumberFormatError{Input: s}
		}
		low, err := strconv.ParseUint(den, 10, 64)
		if err != nil || low == 0 {
			return 0, &NumberFormatError{Input: s}
		}
		return float64(up) / float64(low), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &NumberFormatError{Input: s}
	}
	return v, nil
}
