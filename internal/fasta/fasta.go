// Package fasta reads FASTA sequence files, transparently handling gzip.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for a plain or gzip-compressed file. Gzip is
// detected by magic number (1F 8B) or by .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Read parses all records from r. The ID is the header up to the first
// whitespace; sequence lines are concatenated with surrounding whitespace
// trimmed.
func Read(r io.Reader) ([]Record, error) {
	var out []Record
	var cur *Record
	var seq bytes.Buffer

	flush := func() {
		if cur != nil {
			cur.Seq = seq.String()
			out = append(out, *cur)
			seq.Reset()
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			id, _, _ := strings.Cut(strings.TrimPrefix(line, ">"), " ")
			cur = &Record{ID: id}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("sequence data before first header")
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// ReadFile parses all records from a plain or gzipped FASTA file.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return recs, nil
}
