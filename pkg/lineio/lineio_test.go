// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lineio

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"reflect"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xfe})
	for _, r := range s {
		var u [2]byte
		binary.LittleEndian.PutUint16(u[:], uint16(r))
		buf.Write(u[:])
	}
	return buf.Bytes()
}

func utf16be(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write([]byte{0xfe, 0xff})
	for _, r := range s {
		var u [2]byte
		binary.BigEndian.PutUint16(u[:], uint16(r))
		buf.Write(u[:])
	}
	return buf.Bytes()
}

func TestNewReaderDetection(t *testing.T) {
	plain := []byte("alpha\nbeta\ngamma\n")
	wantLines := []string{"alpha", "beta", "gamma"}

	tests := []struct {
		name     string
		data     []byte
		wantComp Compression
		wantEnc  Encoding
		want     []string
	}{
		{
			name:     "plain",
			data:     plain,
			wantComp: None,
			wantEnc:  Plain,
			want:     wantLines,
		},
		{
			name:     "utf8 bom",
			data:     append([]byte{0xef, 0xbb, 0xbf}, plain...),
			wantComp: None,
			wantEnc:  UTF8BOM,
			want:     wantLines,
		},
		{
			name:     "utf16 le",
			data:     utf16le(t, "alpha\nbeta\ngamma\n"),
			wantComp: None,
			wantEnc:  UTF16LE,
			want:     wantLines,
		},
		{
			name:     "utf16 be",
			data:     utf16be(t, "alpha\nbeta\ngamma\n"),
			wantComp: None,
			wantEnc:  UTF16BE,
			want:     wantLines,
		},
		{
			name:     "gzip",
			data:     gzipped(t, plain),
			wantComp: Gzip,
			wantEnc:  Plain,
			want:     wantLines,
		},
		{
			name:     "zstd",
			data:     zstded(t, plain),
			wantComp: Zstd,
			wantEnc:  Plain,
			want:     wantLines,
		},
		{
			name:     "gzip with utf16 le inside",
			data:     gzipped(t, utf16le(t, "alpha\nbeta\ngamma\n")),
			wantComp: Gzip,
			wantEnc:  UTF16LE,
			want:     wantLines,
		},
		{
			name:     "crlf terminators",
			data:     []byte("alpha\r\nbeta\r\n"),
			wantComp: None,
			wantEnc:  Plain,
			want:     []string{"alpha", "beta"},
		},
		{
			name:     "empty stream",
			data:     nil,
			wantComp: None,
			wantEnc:  Plain,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("NewReader() error = %v", err)
			}
			defer r.Close()

			if r.Compression() != tt.wantComp {
				t.Errorf("Compression() = %v, want %v", r.Compression(), tt.wantComp)
			}
			if r.Encoding() != tt.wantEnc {
				t.Errorf("Encoding() = %v, want %v", r.Encoding(), tt.wantEnc)
			}

			var lines []string
			for r.Scan() {
				lines = append(lines, r.Text())
			}
			if err := r.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if !reflect.DeepEqual(lines, tt.want) {
				t.Errorf("lines = %#v, want %#v", lines, tt.want)
			}
		})
	}
}

func TestReadAllLines(t *testing.T) {
	path := t.TempDir() + "/in.txt.gz"
	data := gzipped(t, []byte("one\ntwo\n"))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadAllLines(path)
	if err != nil {
		t.Fatalf("ReadAllLines() error = %v", err)
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %#v, want %#v", lines, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(t.TempDir() + "/nope.txt"); err == nil {
		t.Fatal("Open() on missing file succeeded, want error")
	}
}
