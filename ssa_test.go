// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package ssa

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceSA(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return string(text[sa[i]:]) < string(text[sa[j]:])
	})
	return sa
}

func TestBuildByte(t *testing.T) {
	tests := []string{"banana", "abracadabra", "mississippi", "aaaaaaaa"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			sa, err := BuildByte([]byte(s), 0, nil)
			assert.NoError(t, err)
			assert.Equal(t, referenceSA([]byte(s)), sa)
		})
	}
}

func TestBuildByteFrequency(t *testing.T) {
	var freq [65536]int64
	sa, err := BuildByte([]byte("mississippi"), 0, &freq)
	assert.NoError(t, err)
	assert.Equal(t, referenceSA([]byte("mississippi")), sa)
	assert.Equal(t, int64(4), freq['s'])
	assert.Equal(t, int64(4), freq['i'])
	assert.Equal(t, int64(2), freq['p'])
	assert.Equal(t, int64(1), freq['m'])
}

func TestBuildByteInvalidArgs(t *testing.T) {
	_, err := BuildByte([]byte("abc"), -1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBuildInteger(t *testing.T) {
	text := []int32{1, 2, 1, 2, 1, 2, 0}
	sa, err := BuildInteger(text, 3, 0)
	assert.NoError(t, err)

	want := make([]int32, len(text))
	for i := range want {
		want[i] = int32(i)
	}
	sort.Slice(want, func(i, j int) bool {
		a, b := text[want[i]:], text[want[j]:]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	assert.Equal(t, want, sa)
}

func TestBuildIntegerInvalidArgs(t *testing.T) {
	_, err := BuildInteger([]int32{0, 1}, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildInteger([]int32{0, 1}, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildInteger([]int32{0, 5}, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildInteger([]int32{0, 1}, 2, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildInteger([]int32{0, 1}, maxAlphabetSize+1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSuffixArrayLookup(t *testing.T) {
	sa, err := New([]byte("banana"))
	assert.NoError(t, err)

	matches := sa.Lookup([]byte("an"))
	assert.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, "an", string(sa.text[m:m+2]))
	}

	ordered := sa.LookupTextOrder([]byte("an"))
	assert.True(t, sort.SliceIsSorted(ordered, func(i, j int) bool { return ordered[i] < ordered[j] }))
	assert.ElementsMatch(t, matches, ordered)
}

func TestSuffixArrayLookupEmptyPrefix(t *testing.T) {
	sa, err := New([]byte("banana"))
	assert.NoError(t, err)
	assert.Equal(t, sa.sa, sa.Lookup(nil))
}

func TestSuffixArrayLookupSuffix(t *testing.T) {
	sa, err := New([]byte("banana"))
	assert.NoError(t, err)

	assert.Equal(t, 3, sa.LookupSuffix([]byte("ana")))
	assert.Equal(t, 0, sa.LookupSuffix([]byte("banana")))
	assert.Equal(t, -1, sa.LookupSuffix([]byte("ban")))
	assert.Equal(t, -1, sa.LookupSuffix([]byte("bananana")))
	assert.Equal(t, 6, sa.LookupSuffix(nil))
}

func TestSuffixArrayLookupPrefix(t *testing.T) {
	sa, err := New([]byte("banana"))
	assert.NoError(t, err)

	assert.Equal(t, 0, sa.LookupPrefix([]byte("ban")))
	assert.Equal(t, 0, sa.LookupPrefix([]byte("banana")))
	assert.Equal(t, -2, sa.LookupPrefix([]byte("ana")))
	assert.Equal(t, -2, sa.LookupPrefix([]byte("bananana")))
	assert.Equal(t, -1, sa.LookupPrefix(nil))
}

func TestSuffixArrayLookupNoMatch(t *testing.T) {
	sa, err := New([]byte("banana"))
	assert.NoError(t, err)
	assert.Empty(t, sa.Lookup([]byte("xyz")))
}
