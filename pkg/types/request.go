// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Request is a conversion request as read from the command line.
// All fields are lowercase; substances are empty when not given.
type Request struct {
	// Quantity is the raw quantity token, possibly a fraction like "3/4".
	Quantity string

	FromUnit      string
	FromSubstance string
	ToUnit        string
	ToSubstance   string
}

// Substance returns the substance the request is about, taken from either
// side. Callers check that both sides agree before relying on it.
func (r Request) Substance() string {
	if r.FromSubstance != "" {
		return r.FromSubstance
	}
	return r.ToSubstance
}

// Result is the outcome of a successful conversion.
type Result struct {
	Request Request

	// Substance is the substance named on either side of the request, if any.
	Substance string

	// Value is the converted quantity expressed in Request.ToUnit.
	Value float64
}
