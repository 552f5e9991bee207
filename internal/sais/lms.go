// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sais

// This file implements the renumber-and-gather and place-LMS steps of
// the reduction, operating against a BucketLayout.

// lengthLMS fills sa[p/2] with the length of the LMS substring that
// starts at p, for every LMS position p, scanning text once right to
// left.
func lengthLMS(text, sa []int32) {
	var (
		l, r   int32
		prev   = int32(len(text)) - 1
		sTyped bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sTyped = true
		} else if l > r && sTyped {
			sTyped = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

// equalLMS reports whether the two LMS substrings starting at l and r
// (with precomputed lengths lLen, rLen) are identical.
func equalLMS(text []int32, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}
	return true
}

// renumberGather assigns a dense name to each distinct LMS substring
// by comparing adjacent gathered LMS suffixes. When some names repeat,
// it writes the summary string (one name per LMS position, in text
// order) into summary. Returns the number of distinct names; when it
// equals numLMS, every LMS substring is already unique, summary is
// left holding the sorted LMS positions, and the caller can skip
// recursion.
func renumberGather(text, sa, summary []int32, numLMS int32) int32 {
	lengthLMS(text, sa)
	var (
		name, maxName int32 = 1, 1
		posLMS              = summary
	)
	prevLen := sa[posLMS[0]/2]
	sa[posLMS[0]/2] = name
	for i := int32(1); i < int32(len(posLMS)); i++ {
		prev := posLMS[i-1]
		curr := posLMS[i]
		if !equalLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= numLMS {
		return maxName
	}
	var j int32
	for i := int32(0); i < int32(len(sa))/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], summary[j] = 0, curr
		j++
	}
	return maxName
}

// unmap rewrites sa[0:len(LMS)] from positions in the recursive
// summary's suffix array back to positions in the original text,
// using a fresh right-to-left scan to recover the LMS position list
// in recursion order.
func unmap(text, sa, summarySA, lms []int32) {
	var (
		j      = int32(len(lms))
		l, r   int32
		sTyped bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sTyped = true
		} else if l > r && sTyped {
			sTyped = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := 0; i < len(lms); i++ {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

// placeLMS scatters the densely-packed LMS suffix positions in
// summarySA into the end of their character buckets, zeroing the
// slots in between.
func placeLMS(text, sa, summarySA []int32, layout BucketLayout) {
	layout.ResetEnd()
	var lmsIdx, b, j int32
	for i := len(summarySA) - 1; i >= 0; i-- {
		lmsIdx = summarySA[i]
		summarySA[i] = 0
		j = text[lmsIdx]
		b = layout.NextEnd(j)
		sa[b] = lmsIdx
	}
}
