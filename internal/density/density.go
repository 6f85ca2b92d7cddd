// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package density holds the static table of substance densities used to
// convert between weight and volume.
package density

import (
	"fmt"
	"strings"

	"github.com/pdiddy/kitchenconv/internal/suggest"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

// herbs is the density shared by all fresh leafy herbs.
const herbs = 0.10566

// table lists every known substance in kg/L. Order breaks suggestion ties.
var table = []types.Substance{
	{Name: "flour", Density: 0.5283},
	{Name: "butter", Density: 0.9586},
	{Name: "sugar", Density: 0.8453},
	{Name: "salt", Density: 1.1548},
	{Name: "parsley", Density: herbs},
	{Name: "basil", Density: herbs},
	{Name: "cilantro", Density: herbs},
	{Name: "dill", Density: herbs},
	{Name: "herbs", Density: herbs},
}

// UnknownSubstanceError reports a substance with no known density, with
// every known substance ranked from most to least similar.
type UnknownSubstanceError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownSubstanceError) Error() string {
	msg := fmt.Sprintf("the density of '%s' is unknown", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Lookup returns the substance registered under name.
func Lookup(name string) (types.Substance, error) {
	for _, s := range table {
		if s.Name == name {
			return s, nil
		}
	}
	return types.Substance{}, &UnknownSubstanceError{
		Name:        name,
		Suggestions: suggest.Rank(name, Names()),
	}
}

// Names returns the substance names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, s := range table {
		names[i] = s.Name
	}
	return names
}

// All returns a copy of the density table in table order.
func All() []types.Substance {
	return append([]types.Substance(nil), table...)
}
