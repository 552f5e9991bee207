// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sais

// BucketLayout is a capability used in place of a
// flat array reinterpreted with hard-coded strides: something that
// hands the induction passes a per-character cursor, without the
// passes needing to know how that cursor is stored or how it was
// seeded. Start cursors advance forward (L-type induction); end
// cursors advance backward (S-type induction and LMS placement).
type BucketLayout interface {
	// ResetStart seeds every character's cursor at its bucket's first
	// slot, ready for a left-to-right (L-type) pass.
	ResetStart()
	// ResetEnd seeds every character's cursor at its bucket's last
	// slot, ready for a right-to-left (S-type) pass.
	ResetEnd()
	// NextStart returns character c's current start cursor and
	// advances it by one.
	NextStart(c int32) int32
	// NextEnd returns character c's current end cursor and retreats
	// it by one.
	NextEnd(c int32) int32
}

// allocBuckets allocates an n-word bucket array, converting the
// runtime's length-out-of-range panic into ErrResourceExhausted so an
// unaffordable bucket request surfaces as an error the recursion can
// propagate instead of aborting the caller.
func allocBuckets(n int64) (buckets []int32, err error) {
	defer func() {
		if recover() != nil {
			buckets, err = nil, ErrResourceExhausted
		}
	}()
	return make([]int32, n), nil
}

// denseLayout is the array-backed bucket: one cursor word per
// character, recomputed from a frequency table on every ResetStart /
// ResetEnd. This collapses the classic "2k: 2*K counters" bucket
// shape into a single K-sized cursor array that is
// repurposed for whichever direction the current pass needs: the
// freq table plus the cursor array together occupy 2*K words, the
// cursor never needing both directions live at once.
type denseLayout struct {
	freq    []int32
	cur     []int32
	minChar int32
}

func newDenseLayout(freq []int32, minChar int32) *denseLayout {
	return &denseLayout{freq: freq, cur: make([]int32, len(freq)), minChar: minChar}
}

func (d *denseLayout) ResetStart() {
	var offset int32
	for i, n := range d.freq {
		if n > 0 {
			d.cur[i] = offset
			offset += n
		}
	}
}

func (d *denseLayout) ResetEnd() {
	var offset int32
	for i, n := range d.freq {
		if n > 0 {
			offset += n
			d.cur[i] = offset - 1
		}
	}
}

func (d *denseLayout) NextStart(c int32) int32 {
	idx := c - d.minChar
	v := d.cur[idx]
	d.cur[idx] = v + 1
	return v
}

func (d *denseLayout) NextEnd(c int32) int32 {
	idx := c - d.minChar
	v := d.cur[idx]
	d.cur[idx] = v - 1
	return v
}

// layout1K is the narrow-slack variant of the bucket layout: it
// keeps only the K-sized cursor array alive across calls and rebuilds
// the frequency table transiently, inside ResetStart/ResetEnd, from a
// fresh scan of the text. It trades an extra O(n) scan per direction
// switch for not needing a second persistent K-sized array, the
// right tradeoff only when K is large relative to available slack,
// which is why chooseLayoutWithBudget reaches for it only then.
type layout1K struct {
	text             []int32
	minChar, maxChar int32
	cur              []int32
}

func newLayout1K(text []int32, minChar, maxChar int32) (*layout1K, error) {
	cur, err := allocBuckets(int64(maxChar) - int64(minChar) + 1)
	if err != nil {
		return nil, err
	}
	return &layout1K{text: text, minChar: minChar, maxChar: maxChar, cur: cur}, nil
}

func (l *layout1K) frequency() []int32 {
	freq := make([]int32, len(l.cur))
	for _, c := range l.text {
		freq[c-l.minChar]++
	}
	return freq
}

func (l *layout1K) ResetStart() {
	freq := l.frequency()
	var offset int32
	for i, n := range freq {
		if n > 0 {
			l.cur[i] = offset
			offset += n
		}
	}
}

func (l *layout1K) ResetEnd() {
	freq := l.frequency()
	var offset int32
	for i, n := range freq {
		if n > 0 {
			offset += n
			l.cur[i] = offset - 1
		}
	}
}

func (l *layout1K) NextStart(c int32) int32 {
	idx := c - l.minChar
	v := l.cur[idx]
	l.cur[idx] = v + 1
	return v
}

func (l *layout1K) NextEnd(c int32) int32 {
	idx := c - l.minChar
	v := l.cur[idx]
	l.cur[idx] = v - 1
	return v
}

// layout4K is the histogram-while-gathering bucket shape:
// 4*K counters indexed by (character, two-bit transition class),
// collected in one backward scan of the text (entry.go's
// buildHistogram), separate from the scan in which insertLMS gathers
// LMS suffixes. Once the histogram is complete,
// deriveDense folds the four per-character classes back down into one
// frequency count per character and returns a ready-to-use
// denseLayout, the 16-bit entry path's histogram-to-bucket step.
type layout4K struct {
	hist    []int32 // hist[4*c+s], s in [0,4)
	minChar int32
	k       int32
}

func newLayout4K(minChar int32, k int32) (*layout4K, error) {
	hist, err := allocBuckets(4 * int64(k))
	if err != nil {
		return nil, err
	}
	return &layout4K{hist: hist, minChar: minChar, k: k}, nil
}

// class encodes the two-bit SS/LS/SL/LL transition the histogram
// describes for the 4k bucket shape: bit 0 is whether position i is
// S-type, bit 1 is whether the following position i+1 is S-type (the
// one buildHistogram's backward scan visited just before i).
func class(iIsS, prevIsS bool) int32 {
	var s int32
	if iIsS {
		s |= 1
	}
	if prevIsS {
		s |= 2
	}
	return s
}

func (l *layout4K) inc(c int32, s int32) {
	l.hist[4*(c-l.minChar)+s]++
}

func (l *layout4K) deriveDense() *denseLayout {
	freq := make([]int32, l.k)
	for c := int32(0); c < l.k; c++ {
		var total int32
		for s := int32(0); s < 4; s++ {
			total += l.hist[4*c+s]
		}
		freq[c] = total
	}
	return newDenseLayout(freq, l.minChar)
}

// layout6K combines layout4K's 4*K histogram with the denseLayout
// deriveDense produces from it once the histogram pass completes:
// 4*K histogram counters plus the dense layout's own freq/cur pair
// (2*K), six K-sized arrays total, chosen whenever slack is generous
// enough to afford all of them without a second text scan.
type layout6K struct {
	*layout4K
	*denseLayout
}

func newLayout6K(minChar int32, k int32) (*layout6K, error) {
	h, err := newLayout4K(minChar, k)
	if err != nil {
		return nil, err
	}
	return &layout6K{layout4K: h}, nil
}

// seed must be called once the histogram pass is complete, before any
// ResetStart/ResetEnd/NextStart/NextEnd call (those are served by the
// embedded denseLayout derived from the histogram).
func (l *layout6K) seed() {
	l.denseLayout = l.layout4K.deriveDense()
}

// mapBucket is one character's cursor in the arbitrary-alphabet
// layout (the fallback for alphabets too large or too sparse to
// size a dense array by). canonStart/
// canonEnd/size never change after construction; start/end are the
// mutable cursors ResetStart/ResetEnd reseed them from, the same
// recompute-from-immutable-source approach denseLayout uses with its
// freq table, rather than deriving one cursor from the other's
// possibly-stale current value.
type mapBucket struct {
	canonStart, canonEnd, size int32
	start, end                 int32
}

// mapLayout is the map-backed BucketLayout, used when the alphabet's
// [minChar,maxChar] span is too large to afford a dense array (huge
// nominal K from a wide bit-pack, with few symbols actually present).
type mapLayout struct {
	buckets map[int32]*mapBucket
}

func newMapLayout(text []int32) *mapLayout {
	buckets := make(map[int32]*mapBucket)
	for _, c := range text {
		b, ok := buckets[c]
		if !ok {
			b = &mapBucket{}
			buckets[c] = b
		}
		b.size++
	}
	var offset int32
	for _, c := range sortedKeys(buckets) {
		b := buckets[c]
		b.canonStart = offset
		offset += b.size
		b.canonEnd = offset - 1
	}
	return &mapLayout{buckets: buckets}
}

func sortedKeys(m map[int32]*mapBucket) []int32 {
	keys := make([]int32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Small alphabets only ever reach here when the dense path was
	// skipped because the *span* was huge, not the symbol count, so a
	// simple insertion sort keeps this allocation-free and is never
	// the hot path (chooseLayout in sais.go prefers denseLayout
	// whenever the span is affordable).
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func (m *mapLayout) ResetStart() {
	for _, b := range m.buckets {
		b.start = b.canonStart
	}
}

func (m *mapLayout) ResetEnd() {
	for _, b := range m.buckets {
		b.end = b.canonEnd
	}
}

func (m *mapLayout) NextStart(c int32) int32 {
	b := m.buckets[c]
	v := b.start
	b.start++
	return v
}

func (m *mapLayout) NextEnd(c int32) int32 {
	b := m.buckets[c]
	v := b.end
	b.end--
	return v
}
