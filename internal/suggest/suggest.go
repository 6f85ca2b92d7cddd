// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest ranks known names by similarity to a misspelled one.
//
// The similarity metric is a shifted Hamming distance: the shorter string is
// slid along the longer one and compared character by character. It is not a
// Levenshtein distance; insertions are only accounted for as a length
// difference.
package suggest

import "sort"

// Distance returns the shift distance between a and b. With n the length of
// the shorter string and n+d the length of the longer one, it is d plus the
// fewest mismatches between the shorter string and longer[k:k+n] over the
// offsets k in [0, d). Equal-length strings are compared at offset 0; a
// literal [0, d) loop never runs for them and would rank every same-length
// name as maximally distant, which this deliberately does not reproduce.
// Lengths are measured in runes.
func Distance(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	n := len(short)
	d := len(long) - n
	if d == 0 {
		return mismatches(short, long)
	}

	best := n
	for k := 0; k < d; k++ {
		if m := mismatches(short, long[k:k+n]); m < best {
			best = m
		}
	}
	return d + best
}

func mismatches(a, b []rune) int {
	count := 0
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

// Rank returns a copy of candidates ordered by ascending Distance to name.
// Candidates at the same distance keep their input order.
func Rank(name string, candidates []string) []string {
	type scored struct {
		name     string
		distance int
	}

	all := make([]scored, len(candidates))
	for i, c := range candidates {
		all[i] = scored{name: c, distance: Distance(name, c)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].distance < all[j].distance
	})

	ranked := make([]string, len(all))
	for i, s := range all {
		ranked[i] = s.name
	}
	return ranked
}
