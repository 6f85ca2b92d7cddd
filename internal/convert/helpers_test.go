// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strconv"

// formatFull renders v with enough digits to parse back to the same float.
func formatFull(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
