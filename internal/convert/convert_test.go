// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/kitchenconv/internal/density"
	"github.com/pdiddy/kitchenconv/internal/quantity"
	"github.com/pdiddy/kitchenconv/internal/units"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

func req(q, from, fromSub, to, toSub string) types.Request {
	return types.Request{Quantity: q, FromUnit: from, FromSubstance: fromSub, ToUnit: to, ToSubstance: toSub}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		req  types.Request
		want float64
	}{
		{"kg to lb", req("10", "kg", "", "lb", ""), 10 / 0.4536},
		{"lb to kg", req("10", "lb", "", "kg", ""), 4.536},
		{"kg to g", req("1.5", "kg", "", "g", ""), 1500},
		{"fraction cup to ml", req("3/4", "cup", "", "ml", ""), 177.45},
		{"gal to l", req("2", "gal", "", "l", ""), 7.57},
		{"fahrenheit to celsius", req("400", "f", "", "c", ""), 5.0 / 9.0 * 368},
		{"celsius to fahrenheit", req("100", "c", "", "f", ""), 212},
		{"negative celsius", req("-40", "c", "", "f", ""), -40},
		{"celsius identity", req("20", "c", "", "c", ""), 20},
		{"fahrenheit identity", req("350", "f", "", "f", ""), 350},
		{"volume to weight", req("1", "tbs", "butter", "g", ""), 0.01479 * 0.9586 / 1e-3},
		{"weight to volume", req("100", "g", "", "cup", "flour"), 0.1 / (0.2366 * 0.5283)},
		{"same substance both sides", req("3", "ts", "sugar", "g", "sugar"), 3 * 0.00493 * 0.8453 / 1e-3},
		{"herb alias", req("1", "cup", "basil", "g", ""), 0.2366 * 0.10566 / 1e-3},
		{"substance ignored for same kind", req("1", "cup", "unobtainium", "ml", ""), 236.6},
	}
	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, tt.req, got.Request)
		})
	}
}

func TestConvertResultSubstance(t *testing.T) {
	c := New(nil)

	got, err := c.Convert(req("100", "g", "", "cup", "flour"))
	require.NoError(t, err)
	assert.Equal(t, "flour", got.Substance)

	got, err = c.Convert(req("1", "kg", "", "g", ""))
	require.NoError(t, err)
	assert.Empty(t, got.Substance)
}

func TestConvertRoundTrip(t *testing.T) {
	c := New(nil)
	all := units.All()
	for _, a := range all {
		for _, b := range all {
			if a.Kind != b.Kind {
				continue
			}
			t.Run(a.Name+"-"+b.Name, func(t *testing.T) {
				there, err := c.Convert(req("12.5", a.Name, "", b.Name, ""))
				require.NoError(t, err)

				back, err := c.Convert(req(formatFull(there.Value), b.Name, "", a.Name, ""))
				require.NoError(t, err)
				assert.InDelta(t, 12.5, back.Value, 1e-9)
			})
		}
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name   string
		req    types.Request
		target any
		errMsg string
	}{
		{
			name:   "substance mismatch",
			req:    req("1", "tbs", "butter", "g", "sugar"),
			target: new(*SubstanceMismatchError),
			errMsg: "cannot convert a quantity of 'butter' into one of 'sugar'",
		},
		{
			name:   "substance mismatch checked before units",
			req:    req("1", "nope", "butter", "nada", "sugar"),
			target: new(*SubstanceMismatchError),
			errMsg: "cannot convert a quantity of 'butter' into one of 'sugar'",
		},
		{
			name:   "unknown source unit",
			req:    req("1", "kgs", "", "g", ""),
			target: new(*units.UnknownUnitError),
			errMsg: "unknown unit 'kgs'",
		},
		{
			name:   "unknown target unit",
			req:    req("1", "kg", "", "gramm", ""),
			target: new(*units.UnknownUnitError),
			errMsg: "unknown unit 'gramm'",
		},
		{
			name:   "units resolved before quantity",
			req:    req("abc", "kgs", "", "g", ""),
			target: new(*units.UnknownUnitError),
			errMsg: "unknown unit 'kgs'",
		},
		{
			name:   "bad quantity",
			req:    req("ten", "kg", "", "g", ""),
			target: new(*quantity.NumberFormatError),
			errMsg: "could not convert 'ten' into a number",
		},
		{
			name:   "missing substance",
			req:    req("1", "cup", "", "g", ""),
			target: new(*MissingSubstanceError),
			errMsg: "converting 'cup' (a volume) into 'g' (a weight) requires knowing the substance",
		},
		{
			name:   "missing substance weight to volume",
			req:    req("100", "g", "", "cup", ""),
			target: new(*MissingSubstanceError),
			errMsg: "converting 'g' (a weight) into 'cup' (a volume) requires knowing the substance",
		},
		{
			name:   "unknown substance",
			req:    req("1", "cup", "flor", "g", ""),
			target: new(*density.UnknownSubstanceError),
			errMsg: "the density of 'flor' is unknown",
		},
		{
			name:   "weight to temperature",
			req:    req("1", "kg", "", "c", ""),
			target: new(*KindMismatchError),
			errMsg: "cannot convert from 'kg' (a weight) into 'c' (a temperature)",
		},
		{
			name:   "temperature to volume with substance",
			req:    req("1", "f", "butter", "ml", ""),
			target: new(*KindMismatchError),
			errMsg: "cannot convert from 'f' (a temperature) into 'ml' (a volume)",
		},
	}
	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Convert(tt.req)
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.target), "unexpected error type %T", err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConvertLogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New(logger).Convert(req("1", "tbs", "butter", "g", ""))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "resolved units")
	assert.Contains(t, out, "parsed quantity")
	assert.Contains(t, out, "substance=butter")
	assert.Contains(t, out, "converted")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cfg  types.ConvertConfig
		want string
	}{
		{"kg to lb", []string{"10", "kg", "", "lb", ""}, types.ConvertConfig{}, "  10 kg is 22.0459 lb"},
		{"temperature", []string{"400", "f", "", "c", ""}, types.ConvertConfig{}, "  400 f is 204.444 c"},
		{"substance", []string{"1", "tbs", "butter", "g", ""}, types.ConvertConfig{}, "  1 tbs of butter is 14.1777 g"},
		{"target substance", []string{"1", "tbs", "", "g", "butter"}, types.ConvertConfig{}, "  1 tbs of butter is 14.1777 g"},
		{"fraction", []string{"3/4", "cup", "", "ml", ""}, types.ConvertConfig{}, "  3/4 cup is 177.45 ml"},
		{"large value uses exponent", []string{"1", "kg", "", "mg", ""}, types.ConvertConfig{}, "  1 kg is 1e+06 mg"},
		{"custom precision", []string{"10", "kg", "", "lb", ""}, types.ConvertConfig{Precision: 3}, "  10 kg is 22 lb"},
		{"more precision", []string{"10", "kg", "", "lb", ""}, types.ConvertConfig{Precision: 9}, "  10 kg is 22.0458554 lb"},
	}
	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.args
			res, err := c.Convert(req(a[0], a[1], a[2], a[3], a[4]))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(res, tt.cfg))
		})
	}
}
