// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"bufio"
	"io"
	"sync"
)

// printer is a buffered, mutex-guarded println, grounded on kanzi's
// app.Printer: a single writer shared across the pipeline's stages
// without needing one os.Stdout.Write call per line to be atomic on
// its own.
type printer struct {
	mu sync.Mutex
	os *bufio.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{os: bufio.NewWriter(w)}
}

// Println writes msg followed by a newline when verbose is true,
// flushing immediately so progress is visible as each stage finishes.
func (p *printer) Println(msg string, verbose bool) {
	if !verbose {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n, _ := p.os.Write([]byte(msg + "\n")); n > 0 {
		_ = p.os.Flush()
	}
}
