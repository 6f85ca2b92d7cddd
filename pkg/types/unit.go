// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for kitchenconv: units,
// substances, parsed requests, and conversion results.
package types

// Kind groups units that convert into one another by a constant factor.
type Kind string

const (
	KindWeight      Kind = "weight"
	KindVolume      Kind = "volume"
	KindTemperature Kind = "temperature"
)

// String returns the kind name as used in diagnostics.
func (k Kind) String() string { return string(k) }

// Temperature units carry a sentinel in Factor instead of a scale, because
// temperature conversion is affine.
const (
	Celsius    = 1.0
	Fahrenheit = 0.0
)

// Unit is an entry of the unit table.
type Unit struct {
	// Name is the lowercase unit symbol (e.g. "kg", "tbs").
	Name string `json:"name" yaml:"name"`

	// Factor converts one unit into the SI base of its kind (kilogram or
	// liter). For temperature units it is the Celsius/Fahrenheit sentinel.
	Factor float64 `json:"factor" yaml:"factor"`

	Kind Kind `json:"kind" yaml:"kind"`
}

// Substance is an entry of the density table.
type Substance struct {
	Name string `json:"name" yaml:"name"`

	// Density is the mass per volume in kg/L.
	Density float64 `json:"density" yaml:"density"`
}
