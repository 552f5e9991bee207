// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command build_ssa is the driver program: it reads a protein or DNA
// text file, builds its sparse suffix array, optionally bit-compresses
// the result, and writes it out behind a small fixed header.
//
//	build_ssa -s <k> [-c] [-d] [-u] <input_file> <output_file>
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/nkamenev/ssa"
	"github.com/nkamenev/ssa/internal/compress"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "build_ssa:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("build_ssa", pflag.ContinueOnError)
	sparseness := flags.IntP("sparseness", "s", 0, "sparseness factor k in [1, 8]")
	dna := flags.BoolP("dna", "d", false, "DNA mode (fixed 4-symbol alphabet); default is protein mode")
	compressOut := flags.BoolP("compress", "c", false, "bit-compress output entries")
	unoptimized := flags.BoolP("unoptimized", "u", false, "build the full SA and subsample instead of packing first")
	verbose := flags.BoolP("verbose", "v", false, "print stage timing and sizes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if !flags.Changed("sparseness") {
		return fmt.Errorf("-s is required")
	}
	k := *sparseness
	if k < 1 || k > 8 {
		return fmt.Errorf("sparseness factor must be in [1, 8], got %d", k)
	}

	rest := flags.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: build_ssa -s <k> [-c] [-d] [-u] <input_file> <output_file>")
	}
	inputPath, outputPath := rest[0], rest[1]

	p := newPrinter(os.Stdout)
	start := time.Now()

	text, err := readFile(inputPath)
	if err != nil {
		return err
	}
	p.Println(fmt.Sprintf("read %d bytes in %v", len(text), time.Since(start)), *verbose)

	mode := ssa.ModeProtein
	if *dna {
		mode = ssa.ModeDNA
	} else {
		canonicalizeProtein(text)
	}

	stageStart := time.Now()
	var sa []int32
	if *unoptimized {
		sa, err = buildUnoptimized(text, k)
	} else {
		sa, err = ssa.BuildSparse(text, k, mode)
	}
	if err != nil {
		return err
	}
	p.Println(fmt.Sprintf("built SA (%d entries) in %v", len(sa), time.Since(stageStart)), *verbose)

	stageStart = time.Now()
	if err := writeOutput(outputPath, sa, len(text), k, *compressOut); err != nil {
		return err
	}
	p.Println(fmt.Sprintf("wrote output in %v", time.Since(stageStart)), *verbose)
	p.Println(fmt.Sprintf("total: %v", time.Since(start)), *verbose)
	return nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(bufio.NewReader(f), buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// canonicalizeProtein rewrites every 'L' to 'I' in place, the
// canonicalization protein mode applies before alphabet mapping.
func canonicalizeProtein(text []byte) {
	for i, c := range text {
		if c == 'L' {
			text[i] = 'I'
		}
	}
}

// buildUnoptimized is the -u reference path: it builds the full
// byte-level SA and keeps only entries divisible by k, preserving
// their relative suffix-array order.
func buildUnoptimized(text []byte, k int) ([]int32, error) {
	full, err := ssa.BuildByte(text, 0, nil)
	if err != nil {
		return nil, err
	}
	out := full[:0:0]
	for _, p := range full {
		if int(p)%k == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func writeOutput(path string, sa []int32, textLen, k int, doCompress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	h := header{Sparseness: uint8(k), SALength: uint64(len(sa))}

	var payload []byte
	if doCompress {
		h.BitsPerElement = uint8(bitsForRange(textLen))
		payload = compress.Pack(sa, int(h.BitsPerElement))
	} else {
		h.BitsPerElement = 64
		payload = make([]byte, 0, len(sa)*8)
		for _, v := range sa {
			var tmp [8]byte
			putLittleEndian64(tmp[:], int64(v))
			payload = append(payload, tmp[:]...)
		}
	}

	if err := writeHeader(w, h); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return w.Flush()
}

func putLittleEndian64(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * uint(i)))
	}
}

// bitsForRange returns ceil(log2(n)) + 1, the header's bits_per_element
// formula for the compressed payload.
func bitsForRange(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n-1)) + 1
}
