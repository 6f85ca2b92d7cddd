// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultPrecision matches the six significant digits of a default C-style
// %g rendering.
const DefaultPrecision = 6

// OutputFormat selects how the units subcommand renders the tables.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// ConvertConfig holds settings for rendering conversion results.
type ConvertConfig struct {
	// Precision is the number of significant digits printed (default 6).
	Precision int

	// Verbose enables debug logging of each conversion step.
	Verbose bool
}
