// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

var gzipMagic = []byte{0x1f, 0x8b, 0x08}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Decompress returns a reader over r that is decompressed if r starts
// with the gzip magic number. Closing the returned reader does not close
// r.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return &readCloser{Reader: br}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, errors.Wrap(err, "fastx: failed to open gzip stream")
	}
	return &readCloser{Reader: gz, closers: []io.Closer{gz}}, nil
}

// Open opens the named file for reading, decompressing it if it is
// gzipped. An empty name or "-" reads standard input.
func Open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return Decompress(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "fastx: failed to open %q", name)
	}
	rc, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r := rc.(*readCloser)
	r.closers = append(r.closers, f)
	return r, nil
}

// StdinPiped reports whether standard input is a pipe or a redirected
// file rather than a terminal.
func StdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeNamedPipe != 0 || (fi.Mode().IsRegular() && fi.Size() > 0)
}

// Input opens the named input file, or standard input if name is empty.
// It returns ErrInputConflict if a name is given while stdinPiped is
// true.
func Input(name string, stdinPiped bool) (io.ReadCloser, error) {
	if name != "" && name != "-" && stdinPiped {
		return nil, ErrInputConflict
	}
	return Open(name)
}

// Sniff reports the format of the data in r by its first non-blank
// byte. r is not consumed.
func Sniff(r *bufio.Reader) (Format, error) {
	for n := 1; ; n++ {
		b, err := r.Peek(n)
		if len(b) < n {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, errors.Wrap(err, "fastx: cannot determine format")
		}
		switch c := b[n-1]; c {
		case ' ', '\t', '\r', '\n':
			continue
		case '>':
			return FASTA, nil
		case '@':
			return FASTQ, nil
		default:
			return 0, errors.Errorf("fastx: cannot determine format from leading %q", c)
		}
	}
}

// SniffFile reports the format of the named, possibly gzipped, file.
func SniffFile(name string) (Format, error) {
	rc, err := Open(name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return Sniff(bufio.NewReader(rc))
}

// Create creates the named file for writing. If gz is true the output
// is gzip compressed and the name is given a ".gz" suffix if it does not
// already have one. The name "-" writes to standard output.
func Create(name string, gz bool) (io.WriteCloser, error) {
	if gz && !strings.HasSuffix(name, ".gz") {
		name += ".gz"
	}
	w, err := xopen.Wopen(name)
	if err != nil {
		return nil, errors.Wrapf(err, "fastx: failed to create %q", name)
	}
	return w, nil
}
