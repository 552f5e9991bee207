// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sais is the SA-IS induced-sorting engine.
// It builds the suffix array of a sequence of int32 symbols over an
// arbitrary integer alphabet in linear time, recursing on a reduced
// problem whenever the first induction pass cannot assign every LMS
// substring a distinct name.
package sais

import "math"

// denseSpanLimit bounds how large a character span (maxChar-minChar+1)
// this engine is willing to materialize as a dense array. Above it,
// newMapLayout's per-character map entries cost less memory than an
// array spanning mostly-absent characters, generalizing the classic
// "switch to a map past a few hundred symbols" rationale into a
// size-based rather than hardcoded threshold.
const denseSpanLimit = 1 << 22

// Build constructs the suffix array of text, an integer sequence over
// an implicit alphabet whose span is derived from the characters
// actually present rather than trusted from a caller-supplied K;
// BuildInteger in the root package validates the caller's nominal K
// separately.
func Build(text []int32, sa []int32) error {
	n := len(text)
	if len(sa) < n {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		sa[0] = 0
		return nil
	}
	return build(text, sa[:n])
}

// build is the recursive core used by every subproblem: text and sa
// must have equal length, already known to be >= 2. It always has
// generous scratch (its recSA allocations in runPipeline aren't
// carved from a caller's fixed SA tail), so it only ever needs to
// decide between the dense and map bucket layouts; BuildWithBudget
// (entry.go) is the only caller that reaches for 1k/6k.
func build(text, sa []int32) error {
	minChar, maxChar := text[0], text[0]
	for _, c := range text {
		if c < minChar {
			minChar = c
		}
		if c > maxChar {
			maxChar = c
		}
	}
	layout, err := chooseLayout(text, minChar, maxChar)
	if err != nil {
		return err
	}
	return runPipeline(text, sa, layout)
}

// chooseLayout picks a bucket shape: a dense array when the character
// span is affordable, a map when it is not. The 1k/4k/6k variants
// (layout.go) are reached from the entry points in entry.go that know
// their caller's fs budget; the recursive core here always has
// generous slack (internal/sais allocates its own scratch rather than
// carving it from SA's tail), so it only ever needs to decide dense
// vs. map.
func chooseLayout(text []int32, minChar, maxChar int32) (BucketLayout, error) {
	span := int64(maxChar) - int64(minChar) + 1
	if span <= 0 || span > math.MaxInt32 {
		return nil, ErrInvalidArgument
	}
	if span > denseSpanLimit && span > 4*int64(len(text)) {
		return newMapLayout(text), nil
	}
	freq, err := allocBuckets(span)
	if err != nil {
		return nil, err
	}
	for _, c := range text {
		freq[c-minChar]++
	}
	return newDenseLayout(freq, minChar), nil
}
