// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkamenev/ssa/internal/alphabet"
)

func TestChooseWidth(t *testing.T) {
	cases := []struct {
		k, bitsPerChar int
		want           Width
	}{
		{1, 2, Width8},
		{4, 2, Width8},
		{5, 2, Width16},
		{8, 2, Width16},
		{9, 2, Width32},
		{16, 2, Width32},
		{17, 2, Width64},
		{1, 7, Width8},
		{2, 7, Width16},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ChooseWidth(c.k, c.bitsPerChar), "k=%d bitsPerChar=%d", c.k, c.bitsPerChar)
	}
}

func TestPackBigEndianWithinSymbol(t *testing.T) {
	tbl := DNATable()
	res, err := Pack([]byte("ACGT"), 4, tbl)
	require.NoError(t, err)
	require.Len(t, res.Symbols, 1)

	// A=0 C=1 G=2 T=3, 2 bits each, MSB-first: 00 01 10 11 = 0x1B
	assert.Equal(t, uint64(0x1B), res.Symbols[0])
	assert.Equal(t, Width8, res.Width)
}

func TestPackShortFinalGroup(t *testing.T) {
	tbl := DNATable()
	full, err := Pack([]byte("ACGTACGT"), 4, tbl)
	require.NoError(t, err)
	short, err := Pack([]byte("ACGTACG"), 4, tbl)
	require.NoError(t, err)

	require.Len(t, full.Symbols, 2)
	require.Len(t, short.Symbols, 2)
	assert.Equal(t, full.Symbols[0], short.Symbols[0])
	// "ACG" padded with zero bits must sort at or below any full group
	// sharing the "ACG" prefix, since the missing trailing char always
	// contributes the smallest possible rank (zero).
	assert.LessOrEqual(t, short.Symbols[1], full.Symbols[1])
	assert.Equal(t, full.Symbols[1]&^uint64(0x03), short.Symbols[1])
}

func TestPackRejectsUnknownByte(t *testing.T) {
	tbl := DNATable()
	_, err := Pack([]byte("ACGN"), 2, tbl)
	assert.Error(t, err)
}

func TestPackAlphaSize(t *testing.T) {
	tbl := DNATable()
	res, err := Pack([]byte("ACGT"), 2, tbl)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<4), res.AlphaSize)
}

func DNATable() alphabet.Table {
	return alphabet.DNA()
}
