// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package alphabet maps the bytes of a small-alphabet text (protein or
// DNA) onto a dense rank table, the first stage of the sparse suffix
// array pipeline.
package alphabet

import "fmt"

// Table is a dense char -> rank mapping built from one pass over a
// text. RankOf is only meaningful where Present is set; absent bytes
// never occur in the text this table was built from.
type Table struct {
	RankOf  [256]uint8
	Present [256]bool
	Sigma   int
}

// Map scans text once and assigns ranks 0..sigma-1 to the distinct
// bytes present, in ascending byte order.
func Map(text []byte) Table {
	var seen [256]bool
	for _, c := range text {
		seen[c] = true
	}
	var t Table
	for c := 0; c < 256; c++ {
		if seen[c] {
			t.RankOf[c] = uint8(t.Sigma)
			t.Present[c] = true
			t.Sigma++
		}
	}
	return t
}

// BitsPerChar returns ceil(log2(Sigma)), the minimum number of bits
// needed to represent every rank, with a floor of 1 bit (an
// alphabet of size 0 or 1 still needs a bit to pack).
func (t Table) BitsPerChar() int {
	b := 0
	for (1 << b) < t.Sigma {
		b++
	}
	if b == 0 {
		b = 1
	}
	return b
}

// Rank looks up the rank of a byte, erroring on a byte absent from
// the table rather than silently mapping it to rank 0: an
// unrecognised character in DNA mode is a hard error, not a silent
// substitution.
func (t Table) Rank(c byte) (uint8, error) {
	if !t.Present[c] {
		return 0, fmt.Errorf("alphabet: byte %q not in table", c)
	}
	return t.RankOf[c], nil
}

// DNA is the fixed 4-symbol {A,C,G,T} table used by the driver's DNA
// mode, rather than one derived from the input text.
func DNA() Table {
	var t Table
	order := []byte{'A', 'C', 'G', 'T'}
	for i, c := range order {
		t.RankOf[c] = uint8(i)
		t.Present[c] = true
	}
	t.Sigma = len(order)
	return t
}
