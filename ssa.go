// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ssa builds sparse suffix arrays over byte-oriented
// (protein/DNA) text: ranks are packed k-at-a-time into wider symbols
// before the SA-IS engine in internal/sais ever runs, and the
// resulting array positions are rescaled back into original-text
// coordinates. It also exposes the two entry points that the packing
// layer itself is built on top of: BuildByte (implicit 2^16 alphabet)
// and BuildInteger (explicit alphabet [0, k)).
package ssa

import (
	"bytes"
	"sort"

	"github.com/nkamenev/ssa/internal/sais"
)

// BuildByte builds the suffix array of text over the implicit 2^16
// symbol alphabet (bytes widened to uint16), with fs slack words past
// len(text) reserved in the returned array. If freqOut is non-nil it
// is populated with the count of each symbol value in [0, 65536).
func BuildByte(text []byte, fs int, freqOut *[65536]int64) (sa []int32, err error) {
	if fs < 0 {
		return nil, ErrInvalidArgument
	}
	n := len(text)
	sa = make([]int32, n+fs)
	wide := make([]uint16, n)
	for i, c := range text {
		wide[i] = uint16(c)
	}
	if err := sais.Build16(wide, sa, int32(fs), freqOut); err != nil {
		return nil, err
	}
	return sa[:n], nil
}

// maxAlphabetSize is the engine's documented alphabet-size ceiling:
// bucket spans are carried in int32 arithmetic, so K must fit in a
// non-negative 31-bit value.
const maxAlphabetSize = int64(1) << 31

// BuildInteger builds the suffix array of text, an integer sequence
// over the explicit alphabet [0, k), with fs slack words past len(text)
// reserved in the returned array.
func BuildInteger(text []int32, k int64, fs int) (sa []int32, err error) {
	if k <= 0 || k > maxAlphabetSize || fs < 0 {
		return nil, ErrInvalidArgument
	}
	for _, c := range text {
		if c < 0 || int64(c) >= k {
			return nil, ErrInvalidArgument
		}
	}
	n := len(text)
	sa = make([]int32, n+fs)
	if err := sais.BuildWithBudget(text, sa, int32(fs)); err != nil {
		return nil, err
	}
	return sa[:n], nil
}

// SuffixArray is a byte-text suffix array with prefix-lookup queries
// over a single packed byte sequence.
type SuffixArray struct {
	text []byte
	sa   []int32
}

// New builds a SuffixArray over text.
func New(text []byte) (*SuffixArray, error) {
	sa, err := BuildByte(text, 0, nil)
	if err != nil {
		return nil, err
	}
	return &SuffixArray{text: text, sa: sa}, nil
}

// comparePrefix compares a suffix of the text against a candidate
// prefix, returning -1/0/1 the way bytes.Compare would if the
// comparison were truncated to the prefix's length.
func comparePrefix(suf, prefix []byte) int {
	minLen := len(suf)
	if minLen > len(prefix) {
		minLen = len(prefix)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// Lookup returns the suffix array entries whose suffix starts with
// prefix, in suffix-array (lexicographic) order.
func (s *SuffixArray) Lookup(prefix []byte) []int32 {
	if len(prefix) == 0 {
		return s.sa
	}
	if len(s.sa) == 0 {
		return []int32{}
	}
	l := sort.Search(len(s.sa), func(i int) bool {
		return comparePrefix(s.text[s.sa[i]:], prefix) >= 0
	})
	r := l + sort.Search(len(s.sa)-l, func(i int) bool {
		return comparePrefix(s.text[s.sa[l+i]:], prefix) > 0
	})
	return s.sa[l:r]
}

// LookupTextOrder is Lookup, with the matching entries resorted by
// their position in the original text instead of lexicographic order.
func (s *SuffixArray) LookupTextOrder(prefix []byte) []int32 {
	matches := s.Lookup(prefix)
	out := make([]int32, len(matches))
	copy(out, matches)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LookupSuffix finds the exact suffix in the text.
// For an empty suffix, returns len(sa) as it occurs at the end of the string.
// Otherwise, returns the starting index or -1 if not found.
func (s *SuffixArray) LookupSuffix(suffix []byte) int {
	if len(suffix) == 0 {
		return len(s.sa)
	}
	if len(s.sa) == 0 || len(suffix) > len(s.text) {
		return -1
	}
	l := len(s.text) - len(suffix)
	if bytes.Equal(s.text[l:], suffix) {
		return l
	}
	return -1
}

// LookupPrefix checks if the text starts with the given prefix.
// For an empty prefix, returns -1 as it precedes the first character.
// Returns 0 if matched, -2 otherwise.
func (s *SuffixArray) LookupPrefix(prefix []byte) int {
	if len(prefix) == 0 {
		return -1
	}
	if len(s.sa) == 0 || len(prefix) > len(s.text) {
		return -2
	}
	if bytes.Equal(s.text[:len(prefix)], prefix) {
		return 0
	}
	return -2
}
