// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kitchenconv/internal/density"
	"github.com/pdiddy/kitchenconv/internal/units"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the known units and substances",
	Long: `Units prints the unit table (factor to kilogram or liter, and kind) and
the density table used for weight/volume conversions. Temperature units have
no factor; Celsius and Fahrenheit are converted with their affine formula.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return printTables(cmd.OutOrStdout(), types.OutputFormat(format))
	},
}

func init() {
	unitsCmd.Flags().String("format", string(types.OutputText), "output format: text, yaml, or json")

	rootCmd.AddCommand(unitsCmd)
}

// tables is the serialized form of the unit and density tables.
type tables struct {
	Units      []types.Unit      `json:"units" yaml:"units"`
	Substances []types.Substance `json:"substances" yaml:"substances"`
}

func printTables(w io.Writer, format types.OutputFormat) error {
	t := tables{Units: units.All(), Substances: density.All()}

	switch format {
	case types.OutputText, "":
		return printTablesText(w, t)
	case types.OutputYAML:
		data, err := yaml.Marshal(&t)
		if err != nil {
			return fmt.Errorf("marshaling tables: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func printTablesText(w io.Writer, t tables) error {
	fmt.Fprintf(w, "%-6s  %-12s  %s\n", "Unit", "Kind", "Factor")
	fmt.Fprintln(w, strings.Repeat("-", 32))
	for _, u := range t.Units {
		fmt.Fprintf(w, "%-6s  %-12s  %s\n", u.Name, u.Kind, factorText(u))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s  %s\n", "Substance", "Density (kg/L)")
	fmt.Fprintln(w, strings.Repeat("-", 26))
	for _, s := range t.Substances {
		fmt.Fprintf(w, "%-10s  %s\n", s.Name, strconv.FormatFloat(s.Density, 'g', -1, 64))
	}
	return nil
}

func factorText(u types.Unit) string {
	if u.Kind != types.KindTemperature {
		return strconv.FormatFloat(u.Factor, 'g', -1, 64)
	}
	if u.Factor == types.Celsius {
		return "(celsius)"
	}
	return "(fahrenheit)"
}
