// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strconv"

	"github.com/pdiddy/kitchenconv/pkg/types"
)

// Format renders res as the single line printed by the CLI, e.g.
//
//	1 tbs of butter is 14.1777 g
//
// The value is printed in %g style with cfg.Precision significant digits.
func Format(res types.Result, cfg types.ConvertConfig) string {
	precision := cfg.Precision
	if precision <= 0 {
		precision = types.DefaultPrecision
	}

	line := "  " + res.Request.Quantity + " " + res.Request.FromUnit
	if res.Substance != "" {
		line += " of " + res.Substance
	}
	return line + " is " + strconv.FormatFloat(res.Value, 'g', precision, 64) + " " + res.Request.ToUnit
}
