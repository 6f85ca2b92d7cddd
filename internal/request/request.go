// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package request turns command-line words into a conversion request:
//
//	<quantity> <unit> [of] [substance] (to|in) <unit> [of] [substance]
package request

import (
	"errors"
	"strings"

	"github.com/pdiddy/kitchenconv/pkg/types"
)

// Pattern is the accepted word order, shown in syntax errors.
const Pattern = "<quantity> <unit> [substance] to <unit> [substance]"

// MinArgs is the number of words in the shortest valid request.
const MinArgs = 4

// ErrTooFewArguments is wrapped by the SyntaxError returned for requests
// shorter than MinArgs words. The CLI answers it with usage examples.
var ErrTooFewArguments = errors.New("too few arguments")

// SyntaxError reports words that do not follow Pattern.
type SyntaxError struct {
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func isSeparator(word string) bool {
	return word == "to" || word == "in"
}

// Parse reads args left to right. Words are lowercased. Before the
// separator they fill quantity, source unit, then source substance; after it
// target unit, then target substance. The word "of" is skipped where a
// substance is expected.
func Parse(args []string) (types.Request, error) {
	if len(args) < MinArgs {
		return types.Request{}, &SyntaxError{
			Msg: "expected '" + Pattern + "'",
			Err: ErrTooFewArguments,
		}
	}

	var req types.Request
	separated := false
	for _, arg := range args {
		word := strings.ToLower(arg)
		switch {
		case isSeparator(word):
			if separated {
				return types.Request{}, &SyntaxError{Msg: "multiple 'to' or 'in' not allowed"}
			}
			separated = true
		case !separated && req.Quantity == "":
			req.Quantity = word
		case !separated && req.FromUnit == "":
			req.FromUnit = word
		case !separated && req.FromSubstance == "":
			if word != "of" {
				req.FromSubstance = word
			}
		case separated && req.ToUnit == "":
			req.ToUnit = word
		case separated && req.ToSubstance == "":
			if word != "of" {
				req.ToSubstance = word
			}
		default:
			return types.Request{}, &SyntaxError{Msg: "expected '" + Pattern + "'"}
		}
	}

	if req.Quantity == "" || req.FromUnit == "" || !separated || req.ToUnit == "" {
		return types.Request{}, &SyntaxError{Msg: "expected '" + Pattern + "'"}
	}
	return req, nil
}
