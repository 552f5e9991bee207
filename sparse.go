// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package ssa

import (
	"github.com/nkamenev/ssa/internal/alphabet"
	"github.com/nkamenev/ssa/internal/pack"
	"github.com/nkamenev/ssa/internal/sais"
)

// Mode selects the fixed alphabet the driver maps text through before
// packing: protein text is mapped from whatever bytes are actually
// present, DNA text always uses the fixed 4-symbol {A,C,G,T} table.
type Mode int

const (
	ModeProtein Mode = iota
	ModeDNA
)

func (m Mode) table(text []byte) alphabet.Table {
	if m == ModeDNA {
		return alphabet.DNA()
	}
	return alphabet.Map(text)
}

// BuildSparse builds the sparse suffix array of text at sparseness
// factor k: ranks are packed k-at-a-time into wider symbols, the
// packed sequence is handed to BuildInteger, and every resulting
// position is rescaled by k to land back in original-text
// coordinates.
//
// k = 1 bypasses packing entirely and calls BuildByte directly: rank
// assignment is order-isomorphic with byte value, so packing a single
// rank per symbol would do nothing but add a layer of indirection.
func BuildSparse(text []byte, k int, mode Mode) (sa []int32, err error) {
	if k < 1 {
		return nil, ErrInvalidArgument
	}
	tbl := mode.table(text)
	// Validated up front rather than left to pack.Pack's per-symbol
	// Rank call: the k=1 bypass below skips packing entirely, and DNA
	// mode's fixed table must still reject bytes outside {A,C,G,T} on
	// that path. A no-op for protein mode, whose table is built from
	// text itself.
	for _, c := range text {
		if !tbl.Present[c] {
			return nil, ErrInvalidArgument
		}
	}
	if k == 1 {
		return BuildByte(text, 0, nil)
	}

	// The engine's alphabet size is carried in int32 arithmetic (see
	// maxAlphabetSize in ssa.go), so a packed symbol must fit in 31
	// bits. Reject up front rather than silently truncating it into
	// pack.Pack's uint64 result and corrupting the packed sequence's
	// lexicographic order.
	if k*tbl.BitsPerChar() > 31 {
		return nil, ErrInvalidArgument
	}

	packed, err := pack.Pack(text, k, tbl)
	if err != nil {
		return nil, err
	}

	symbols := make([]int32, len(packed.Symbols))
	for i, s := range packed.Symbols {
		symbols[i] = int32(s)
	}

	packedSA, err := BuildInteger(symbols, int64(packed.AlphaSize), 0)
	if err != nil {
		if err == sais.ErrInvalidArgument {
			return nil, ErrInvalidArgument
		}
		return nil, err
	}

	sa = make([]int32, len(packedSA))
	for i, p := range packedSA {
		sa[i] = p * int32(k)
	}
	return sa, nil
}
