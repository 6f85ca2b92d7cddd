// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units holds the static table of cooking units and resolves unit
// names against it.
package units

import (
	"fmt"
	"strings"

	"github.com/pdiddy/kitchenconv/internal/suggest"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

// table lists every known unit. Order matters: it breaks suggestion ties.
var table = []types.Unit{
	{Name: "kg", Factor: 1, Kind: types.KindWeight},
	{Name: "g", Factor: 1e-3, Kind: types.KindWeight},
	{Name: "mg", Factor: 1e-6, Kind: types.KindWeight},
	{Name: "lb", Factor: 4.536e-1, Kind: types.KindWeight},
	{Name: "oz", Factor: 2.835e-2, Kind: types.KindWeight},
	{Name: "l", Factor: 1, Kind: types.KindVolume},
	{Name: "dl", Factor: 1e-1, Kind: types.KindVolume},
	{Name: "cl", Factor: 1e-2, Kind: types.KindVolume},
	{Name: "ml", Factor: 1e-3, Kind: types.KindVolume},
	{Name: "gal", Factor: 3.785, Kind: types.KindVolume},
	{Name: "cup", Factor: 2.366e-1, Kind: types.KindVolume},
	{Name: "floz", Factor: 2.957e-2, Kind: types.KindVolume},
	{Name: "tbs", Factor: 1.479e-2, Kind: types.KindVolume},
	{Name: "ts", Factor: 4.93e-3, Kind: types.KindVolume},
	{Name: "c", Factor: types.Celsius, Kind: types.KindTemperature},
	{Name: "f", Factor: types.Fahrenheit, Kind: types.KindTemperature},
}

// UnknownUnitError reports a unit name missing from the table, with every
// known name ranked from most to least similar.
type UnknownUnitError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownUnitError) Error() string {
	msg := fmt.Sprintf("unknown unit '%s'", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Lookup returns the unit registered under name. Names are matched exactly;
// callers lowercase them first.
func Lookup(name string) (types.Unit, error) {
	for _, u := range table {
		if u.Name == name {
			return u, nil
		}
	}
	return types.Unit{}, &UnknownUnitError{
		Name:        name,
		Suggestions: suggest.Rank(name, Names()),
	}
}

// Names returns the unit names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, u := range table {
		names[i] = u.Name
	}
	return names
}

// All returns a copy of the unit table in table order.
func All() []types.Unit {
	return append([]types.Unit(nil), table...)
}
