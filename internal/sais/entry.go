// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sais

import "math"

// BuildWithBudget is the top-level entry point for callers that know
// their own slack budget: given an explicit fs (slack past n reserved
// in sa), it picks a bucket shape before running the same induction
// pipeline build() uses internally. Recursive sub-problems always go
// through build() (internal/sais allocates their scratch freely, so
// they never hit the tight-slack 1k path); BuildWithBudget is where a
// caller-supplied fs actually steers the choice.
func BuildWithBudget(text, sa []int32, fs int32) error {
	if fs < 0 {
		return ErrInvalidArgument
	}
	n := int32(len(text))
	if int32(len(sa)) < n+fs {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		sa[0] = 0
		return nil
	}

	minChar, maxChar := text[0], text[0]
	for _, c := range text {
		if c < minChar {
			minChar = c
		}
		if c > maxChar {
			maxChar = c
		}
	}

	layout, err := chooseLayoutWithBudget(text, minChar, maxChar, fs)
	if err != nil {
		return err
	}
	return runPipeline(text, sa[:n], layout)
}

// chooseLayoutWithBudget picks a bucket shape by available slack: 6k
// when slack is at least six times the alphabet span, 1k (recompute-on-reset)
// when slack is tighter than the span itself, 2k (the dense,
// cached-frequency layout) otherwise, and the map layout whenever the
// span itself is too large to size an array by regardless of slack.
func chooseLayoutWithBudget(text []int32, minChar, maxChar, fs int32) (BucketLayout, error) {
	span := int64(maxChar) - int64(minChar) + 1
	if span <= 0 || span > math.MaxInt32 {
		return nil, ErrInvalidArgument
	}
	n := int64(len(text))
	if span > denseSpanLimit && span > 4*n {
		return newMapLayout(text), nil
	}

	k := int32(span)
	switch {
	case int64(fs)/span >= 6:
		l6, err := newLayout6K(minChar, k)
		if err != nil {
			return nil, err
		}
		buildHistogram(text, l6.layout4K)
		l6.seed()
		return l6, nil
	case fs >= k:
		freq, err := allocBuckets(span)
		if err != nil {
			return nil, err
		}
		for _, c := range text {
			freq[c-minChar]++
		}
		return newDenseLayout(freq, minChar), nil
	default:
		return newLayout1K(text, minChar, maxChar)
	}
}

// buildHistogram fills hist's 4*K (character, transition-class)
// counters in one backward scan, the combined count+classify step
// used both by the 16-bit entry and by any caller-supplied
// generous-slack (6k) build.
func buildHistogram(text []int32, hist *layout4K) {
	n := len(text)
	var prevIsS bool
	for i := n - 1; i >= 0; i-- {
		var iIsS bool
		if i == n-1 {
			iIsS = true // virtual sentinel makes the last position S-type
		} else if text[i] < text[i+1] {
			iIsS = true
		} else if text[i] > text[i+1] {
			iIsS = false
		} else {
			iIsS = prevIsS
		}
		hist.inc(text[i], class(iIsS, prevIsS))
		prevIsS = iIsS
	}
}

// runPipeline runs the shared induction sequence against an
// already-seeded layout, recursing through build() for the reduced
// LMS-name subproblem.
func runPipeline(text, sa []int32, layout BucketLayout) error {
	numLMS := insertLMS(text, sa, layout)
	if numLMS > 1 {
		induceSubL(text, sa, layout)
		induceSubS(text, sa, layout)

		summary := sa[len(sa)-int(numLMS):]
		maxName := renumberGather(text, sa, summary, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			recSA := make([]int32, numLMS)
			if err := build(summary, recSA); err != nil {
				return err
			}
			copy(summarySA, recSA)
			unmap(text, sa, summarySA, summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		placeLMS(text, sa, summarySA, layout)
	}
	induceFinalL(text, sa, layout)
	induceFinalS(text, sa, layout)
	return nil
}

// Build16 is the byte-pair entry point: text is widened from uint16
// symbols into the engine's native int32 word, the alphabet is
// implicitly [0, 65536), and the per-symbol histogram doubles as the
// optional freqOut output for callers that want per-symbol counts.
func Build16(text []uint16, sa []int32, fs int32, freqOut *[65536]int64) error {
	n := int32(len(text))
	if fs < 0 || int32(len(sa)) < n+fs {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		sa[0] = 0
		return nil
	}

	wide := make([]int32, n)
	for i, c := range text {
		wide[i] = int32(c)
	}

	hist, err := newLayout4K(0, 1<<16)
	if err != nil {
		return err
	}
	buildHistogram(wide, hist)
	if freqOut != nil {
		for c := 0; c < 1<<16; c++ {
			var total int64
			for s := 0; s < 4; s++ {
				total += int64(hist.hist[4*c+s])
			}
			freqOut[c] = total
		}
	}
	layout := hist.deriveDense()
	return runPipeline(wide, sa[:n], layout)
}
