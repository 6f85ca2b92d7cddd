// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kitchenconv CLI.
//
//	kitchenconv <quantity> <unit> [substance] (to|in) <unit> [substance]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kitchenconv/internal/convert"
	"github.com/pdiddy/kitchenconv/internal/quantity"
	"github.com/pdiddy/kitchenconv/internal/request"
	"github.com/pdiddy/kitchenconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const examples = `  kitchenconv 10 kg to lb
  kitchenconv 400 F in C
  kitchenconv 1 tbs butter to g
  kitchenconv 3 ts of sugar to g
  kitchenconv 3/4 cup to ml
  kitchenconv -40 C to F`

// rootCmd converts a quantity given as positional words.
var rootCmd = &cobra.Command{
	Use:   "kitchenconv <quantity> <unit> [substance] (to|in) <unit> [substance]",
	Short: "Convert cooking quantities between units",
	Long: `kitchenconv converts cooking quantities between weight, volume, and
temperature units. Converting between weight and volume needs the substance
being measured (flour, butter, sugar, ...) so its density can be applied.

Quantities may be decimal numbers, negative numbers, or fractions like 3/4.

Run "kitchenconv units" to list the known units and substances.`,
	Example:       examples,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, convertConfig(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Int("precision", types.DefaultPrecision, "significant digits in the printed result")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each conversion step to stderr")

	_ = viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig binds KITCHENCONV_* environment variables. There is no config
// file; flags and the environment are the only settings.
func initConfig() {
	viper.SetEnvPrefix("KITCHENCONV")
	viper.AutomaticEnv()
}

func convertConfig() types.ConvertConfig {
	return types.ConvertConfig{
		Precision: viper.GetInt("precision"),
		Verbose:   viper.GetBool("verbose"),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run parses args, converts, and prints the result line to stdout.
func run(args []string, cfg types.ConvertConfig, stdout, stderr io.Writer) error {
	req, err := request.Parse(args)
	if err != nil {
		if errors.Is(err, request.ErrTooFewArguments) {
			fmt.Fprintf(stderr, "usage examples:\n%s\n", examples)
		}
		return err
	}

	logger := newLogger(stderr, cfg.Verbose)
	logger.Debug("parsed request",
		"quantity", req.Quantity, "from", req.FromUnit, "from_substance", req.FromSubstance,
		"to", req.ToUnit, "to_substance", req.ToSubstance)

	res, err := convert.New(logger).Convert(req)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, convert.Format(res, cfg))
	return nil
}

// errorLine renders err the way it is printed on stderr.
func errorLine(err error) string {
	var syntaxErr *request.SyntaxError
	if errors.As(err, &syntaxErr) {
		return err.Error()
	}
	return "error: " + err.Error()
}

// quantityArgs ends flag parsing before a negative quantity such as -40, so
// it is not read as a group of shorthand flags. Args after an explicit "--"
// are left alone.
func quantityArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, err := quantity.Parse(arg); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func main() {
	rootCmd.SetArgs(quantityArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}
