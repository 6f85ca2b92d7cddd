// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert converts a parsed request between units. Weight and volume
// are bridged through the density of the named substance; temperature uses
// the affine Celsius/Fahrenheit formula.
package convert

import (
	"fmt"
	"log/slog"

	"github.com/pdiddy/kitchenconv/internal/density"
	"github.com/pdiddy/kitchenconv/internal/quantity"
	"github.com/pdiddy/kitchenconv/internal/units"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

// SubstanceMismatchError reports a request naming two different substances.
type SubstanceMismatchError struct {
	From string
	To   string
}

func (e *SubstanceMismatchError) Error() string {
	return fmt.Sprintf("cannot convert a quantity of '%s' into one of '%s'", e.From, e.To)
}

// MissingSubstanceError reports a weight/volume conversion with no substance.
type MissingSubstanceError struct {
	From types.Unit
	To   types.Unit
}

func (e *MissingSubstanceError) Error() string {
	return fmt.Sprintf("converting '%s' (a %s) into '%s' (a %s) requires knowing the substance which is converted",
		e.From.Name, e.From.Kind, e.To.Name, e.To.Kind)
}

// KindMismatchError reports units of kinds that cannot be converted.
type KindMismatchError struct {
	From types.Unit
	To   types.Unit
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot convert from '%s' (a %s) into '%s' (a %s)",
		e.From.Name, e.From.Kind, e.To.Name, e.To.Kind)
}

// Converter runs conversions and logs each step at debug level.
type Converter struct {
	log *slog.Logger
}

// New returns a Converter logging to logger. A nil logger discards output.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{log: logger}
}

// Convert resolves the units of req, parses its quantity, and returns the
// quantity expressed in the target unit.
func (c *Converter) Convert(req types.Request) (types.Result, error) {
	if req.FromSubstance != "" && req.ToSubstance != "" && req.FromSubstance != req.ToSubstance {
		return types.Result{}, &SubstanceMismatchError{From: req.FromSubstance, To: req.ToSubstance}
	}
	substance := req.Substance()

	from, err := units.Lookup(req.FromUnit)
	if err != nil {
		return types.Result{}, err
	}
	to, err := units.Lookup(req.ToUnit)
	if err != nil {
		return types.Result{}, err
	}
	c.log.Debug("resolved units",
		"from", from.Name, "from_kind", from.Kind, "from_factor", from.Factor,
		"to", to.Name, "to_kind", to.Kind, "to_factor", to.Factor)

	q, err := quantity.Parse(req.Quantity)
	if err != nil {
		return types.Result{}, err
	}
	c.log.Debug("parsed quantity", "input", req.Quantity, "value", q)

	if bridgesDensity(from.Kind, to.Kind) {
		if substance == "" {
			return types.Result{}, &MissingSubstanceError{From: from, To: to}
		}
		s, err := density.Lookup(substance)
		if err != nil {
			return types.Result{}, err
		}
		c.log.Debug("bridging volume and weight", "substance", s.Name, "density", s.Density)

		if from.Kind == types.KindVolume {
			from = toWeight(from, s.Density)
		} else {
			to = toWeight(to, s.Density)
		}
	}

	if from.Kind != to.Kind {
		return types.Result{}, &KindMismatchError{From: from, To: to}
	}

	var value float64
	if from.Kind == types.KindTemperature {
		value = temperature(q, from.Factor, to.Factor)
	} else {
		value = q * from.Factor / to.Factor
	}
	c.log.Debug("converted", "value", value)

	return types.Result{Request: req, Substance: substance, Value: value}, nil
}

func bridgesDensity(a, b types.Kind) bool {
	return (a == types.KindWeight && b == types.KindVolume) ||
		(a == types.KindVolume && b == types.KindWeight)
}

// toWeight rescales a volume unit into the weight of that volume of a
// substance weighing kgPerLiter.
func toWeight(u types.Unit, kgPerLiter float64) types.Unit {
	u.Factor *= kgPerLiter
	u.Kind = types.KindWeight
	return u
}

// temperature converts q between the Celsius and Fahrenheit sentinels.
func temperature(q, from, to float64) float64 {
	switch {
	case from == to:
		return q
	case from == types.Celsius:
		return 9.0/5.0*q + 32.0
	default:
		return 5.0 / 9.0 * (q - 32.0)
	}
}
