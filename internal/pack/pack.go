// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pack implements the sparseness bit-packing transform: groups
// of k consecutive ranks are combined into one wider integer symbol
// before the SA-IS engine ever sees them.
package pack

import "github.com/nkamenev/ssa/internal/alphabet"

// Width is one of the four packed-symbol field widths the driver
// chooses between.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ChooseWidth returns the smallest of {8,16,32,64} that can hold
// k*bitsPerChar bits, the driver's "smallest sufficient width" rule.
func ChooseWidth(k, bitsPerChar int) Width {
	need := k * bitsPerChar
	switch {
	case need <= 8:
		return Width8
	case need <= 16:
		return Width16
	case need <= 32:
		return Width32
	default:
		return Width64
	}
}

// Result holds the packed symbol sequence and the alphabet size the
// SA-IS engine must be told about.
type Result struct {
	Symbols   []uint64
	Width     Width
	AlphaSize uint64 // 2^(k*bitsPerChar)
}

// Pack groups every k consecutive ranks in text into one packed
// symbol of width ceil(k*bitsPerChar) bits, big-endian within the
// symbol: the first character of the group occupies the
// most-significant bits. The final group may be short; its missing
// trailing characters contribute zero bits, which keeps it no larger
// than any full group sharing its prefix (equal to the group that
// continues with rank-0 characters).
func Pack(text []byte, k int, tbl alphabet.Table) (Result, error) {
	if k < 1 {
		k = 1
	}
	bitsPerChar := tbl.BitsPerChar()
	n := len(text)
	numSymbols := (n + k - 1) / k
	symbols := make([]uint64, numSymbols)

	for i := 0; i < numSymbols; i++ {
		start := i * k
		end := start + k
		if end > n {
			end = n
		}
		var sym uint64
		groupLen := end - start
		for j := 0; j < groupLen; j++ {
			rank, err := tbl.Rank(text[start+j])
			if err != nil {
				return Result{}, err
			}
			shift := bitsPerChar * (k - 1 - j)
			sym |= uint64(rank) << uint(shift)
		}
		symbols[i] = sym
	}

	width := ChooseWidth(k, bitsPerChar)
	alphaSize := uint64(1) << uint(k*bitsPerChar)
	return Result{Symbols: symbols, Width: width, AlphaSize: alphaSize}, nil
}
