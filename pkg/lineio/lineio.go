// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lineio reads text line by line from streams whose container
// and encoding are detected from content, not file names. Gzip and zstd
// streams are decompressed transparently, and UTF-8/UTF-16 byte order
// marks select the decoder. Everything else is passed through as-is.
package lineio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is the detected text encoding of the decompressed stream.
type Encoding int

const (
	Plain Encoding = iota // no BOM; treated as UTF-8
	UTF8BOM
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "plain"
	case UTF8BOM:
		return "utf-8 bom"
	case UTF16LE:
		return "utf-16 le"
	case UTF16BE:
		return "utf-16 be"
	}
	return "unknown"
}

// Compression is the detected container of the raw stream.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "unknown"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	utf8BOM   = []byte{0xef, 0xbb, 0xbf}
)

// Reader iterates over the lines of a detected stream. Use it like a
// bufio.Scanner: Scan, Text, then Err.
type Reader struct {
	sc      *bufio.Scanner
	enc     Encoding
	comp    Compression
	closers []func() error
}

// Open opens path and wraps it in a Reader. Close releases the file and
// any decompressors.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closers = append(r.closers, f.Close)
	return r, nil
}

// NewReader detects the stream's container and encoding and returns a
// line iterator over the decoded text.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{}

	br := bufio.NewReader(src)
	head, err := peek(br, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream head: %w", err)
	}

	var decompressed io.Reader = br
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		r.comp = Zstd
		r.closers = append(r.closers, func() error { zr.Close(); return nil })
		decompressed = zr.IOReadCloser()
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		r.comp = Gzip
		r.closers = append(r.closers, gz.Close)
		decompressed = gz
	}

	tbr := bufio.NewReader(decompressed)
	bom, err := peek(tbr, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to read text head: %w", err)
	}

	var text io.Reader = tbr
	switch {
	case bytes.HasPrefix(bom, utf8BOM):
		r.enc = UTF8BOM
		tbr.Discard(len(utf8BOM))
	case len(bom) >= 2 && bom[0] == 0xff && bom[1] == 0xfe:
		r.enc = UTF16LE
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		text = transform.NewReader(tbr, dec)
	case len(bom) >= 2 && bom[0] == 0xfe && bom[1] == 0xff:
		r.enc = UTF16BE
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		text = transform.NewReader(tbr, dec)
	}

	r.sc = bufio.NewScanner(text)
	return r, nil
}

// peek returns up to n bytes of lookahead. A stream shorter than n is
// not an error; the caller sees whatever is there.
func peek(br *bufio.Reader, n int) ([]byte, error) {
	head, err := br.Peek(n)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head, nil
}

// Scan advances to the next line.
func (r *Reader) Scan() bool { return r.sc.Scan() }

// Text returns the current line without its terminator.
func (r *Reader) Text() string { return r.sc.Text() }

// Err returns the first error hit while scanning, excluding io.EOF.
func (r *Reader) Err() error { return r.sc.Err() }

// Encoding returns the detected text encoding.
func (r *Reader) Encoding() Encoding { return r.enc }

// Compression returns the detected container.
func (r *Reader) Compression() Compression { return r.comp }

// Close releases the underlying file and decompressors, if any.
func (r *Reader) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

// ReadAllLines slurps every line of the file at path.
func ReadAllLines(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	for r.Scan() {
		lines = append(lines, r.Text())
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}
