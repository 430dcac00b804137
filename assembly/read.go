// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Record is a single contig read from a FASTA stream.
type Record struct {
	ID  string
	Seq alphabet.Letters
}

// Len returns the length of the record's sequence.
func (r Record) Len() int { return len(r.Seq) }

var gzipMagic = []byte{0x1f, 0x8b}

// Open returns a reader for the named file. If the file content is gzip
// compressed, the returned reader decompresses it. The caller must close
// the returned ReadCloser.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "assembly: failed to open %q", path)
	}
	r, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "assembly: failed to read %q", path)
	}
	return readCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// Decompress returns a reader for r that transparently decompresses gzip
// compressed content. Uncompressed content is passed through unaltered.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(magic, gzipMagic) {
		return io.NopCloser(br), nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, errors.Wrap(err, "assembly: bad gzip stream")
	}
	return gz, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Read reads all FASTA records from r. Records are returned in the order
// they appear in the stream. If an error is encountered no records are
// returned.
func Read(r io.Reader) ([]Record, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	var recs []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, errors.Errorf("assembly: unexpected sequence type %T", sc.Seq())
		}
		recs = append(recs, Record{ID: s.Name(), Seq: s.Seq})
	}
	if err := sc.Error(); err != nil {
		return nil, errors.Wrapf(err, "assembly: read failed after %d records", len(recs))
	}
	return recs, nil
}

// ReadFile reads all FASTA records from the named, optionally gzip
// compressed, file.
func ReadFile(path string) ([]Record, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return recs, nil
}

// Filter returns the records in recs with a sequence length of at least
// min. The order of records is retained. recs is not modified.
func Filter(recs []Record, min int) []Record {
	if min <= 0 {
		return recs
	}
	var kept []Record
	for _, r := range recs {
		if r.Len() >= min {
			kept = append(kept, r)
		}
	}
	return kept
}
