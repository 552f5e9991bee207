// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package compress implements the on-disk SA payload format: each
// suffix array entry truncated to a fixed bit width rather than stored
// as the uncompressed format's full 64-bit word. This is not an entropy
// code; it only exploits
// the fact that every entry fits in ceil(log2(n))+1 bits once n is
// known, so the width is derived once per array and carried in the
// file header (see cmd/build_ssa's header.go) rather than per entry.
package compress

import "github.com/nkamenev/ssa/internal/bitio"

// Pack writes each entry of sa using the low 'bits' bits, most
// significant bit first, returning the packed byte slice.
func Pack(sa []int32, bits int) []byte {
	w := bitio.NewWriter()
	for _, v := range sa {
		w.WriteBits(uint64(uint32(v)), uint(bits))
	}
	return w.Close()
}

// Unpack is Pack's inverse: it reads n entries of 'bits' bits each back
// out of data.
func Unpack(data []byte, n, bits int) []int32 {
	r := bitio.NewReader(data)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(uint32(r.ReadBits(uint(bits))))
	}
	return sa
}
