// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
)

// header is the fixed 10-byte prefix written before the SA payload.
type header struct {
	BitsPerElement uint8
	Sparseness     uint8
	SALength       uint64
}

func writeHeader(w *bufio.Writer, h header) error {
	if err := binary.Write(w, binary.LittleEndian, h.BitsPerElement); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Sparseness); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.SALength)
}

func readHeader(r *bufio.Reader) (header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h.BitsPerElement); err != nil {
		return h, fmt.Errorf("read bits_per_element: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Sparseness); err != nil {
		return h, fmt.Errorf("read sparseness_factor: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h.SALength); err != nil {
		return h, fmt.Errorf("read sa_length: %w", err)
	}
	return h, nil
}
