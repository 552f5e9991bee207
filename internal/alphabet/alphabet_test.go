// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tbl := Map([]byte("banana"))
	assert.Equal(t, 3, tbl.Sigma)

	// ranks assigned in ascending byte order: 'a' < 'b' < 'n'
	ra, err := tbl.Rank('a')
	require.NoError(t, err)
	rb, err := tbl.Rank('b')
	require.NoError(t, err)
	rn, err := tbl.Rank('n')
	require.NoError(t, err)
	assert.Equal(t, uint8(0), ra)
	assert.Equal(t, uint8(1), rb)
	assert.Equal(t, uint8(2), rn)
}

func TestMapEmptyText(t *testing.T) {
	tbl := Map(nil)
	assert.Equal(t, 0, tbl.Sigma)
	assert.Equal(t, 1, tbl.BitsPerChar())
}

func TestRankRejectsAbsentByte(t *testing.T) {
	tbl := Map([]byte("ACGT"))
	_, err := tbl.Rank('Z')
	assert.Error(t, err)
}

func TestBitsPerChar(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"A", 1},
		{"AC", 1},
		{"ACG", 2},
		{"ACGT", 2},
		{"ACGTE", 3},
		{"ABCDEFGHI", 4},
	}
	for _, c := range cases {
		tbl := Map([]byte(c.text))
		assert.Equal(t, c.want, tbl.BitsPerChar(), "text=%q sigma=%d", c.text, tbl.Sigma)
	}
}

func TestDNA(t *testing.T) {
	tbl := DNA()
	assert.Equal(t, 4, tbl.Sigma)
	assert.Equal(t, 2, tbl.BitsPerChar())

	for i, c := range []byte{'A', 'C', 'G', 'T'} {
		r, err := tbl.Rank(c)
		require.NoError(t, err)
		assert.Equal(t, uint8(i), r)
	}

	_, err := tbl.Rank('N')
	assert.Error(t, err)
}
