// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"bytes"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// Reader reads records from a FASTA or FASTQ stream.
type Reader struct {
	sc     *seqio.Scanner
	format Format
	tail   *fastqTail

	n   int
	rec Record
	err error
}

// NewReader returns a Reader that reads records of format f from r.
func NewReader(r io.Reader, f Format) *Reader {
	var (
		sr   seqio.Reader
		tail *fastqTail
	)
	switch f {
	case FASTQ:
		tail = &fastqTail{r: r}
		sr = fastq.NewReader(tail, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))
	default:
		sr = fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	}
	return &Reader{sc: seqio.NewScanner(sr), format: f, tail: tail}
}

// Format returns the format the Reader was created with.
func (r *Reader) Format() Format { return r.format }

// Next advances to the next record, returning false at the end of the
// stream or on error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.sc.Next() {
		err := r.sc.Error()
		if err == nil && r.tail != nil && !r.tail.complete() {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			r.err = &ParseError{Record: r.n + 1, Format: r.format, Err: err}
		}
		return false
	}
	r.n++
	switch s := r.sc.Seq().(type) {
	case *linear.Seq:
		r.rec = Record{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  append([]byte(nil), alphabet.LettersToBytes(s.Seq)...),
		}
	case *linear.QSeq:
		rec := Record{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  make([]byte, len(s.Seq)),
			Qual: make([]byte, len(s.Seq)),
		}
		for i, ql := range s.Seq {
			rec.Seq[i] = byte(ql.L)
			rec.Qual[i] = byte(ql.Q)
		}
		r.rec = rec
	default:
		r.err = &ParseError{Record: r.n, Format: r.format, Err: errors.Errorf("unexpected sequence type %T", s)}
		return false
	}
	return true
}

// Record returns the most recent record read by Next.
func (r *Reader) Record() Record { return r.rec }

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error { return r.err }

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.n }

const (
	wantHeader = iota
	inSeq
	inQual
)

// fastqTail follows the line structure of the FASTQ stream read through
// it. The fastq reader reports a record cut short by the end of input as
// a clean io.EOF; fastqTail lets Reader tell that apart from a stream
// that ends between records.
type fastqTail struct {
	r io.Reader

	line      []byte
	state     int
	seq, qual int
}

func (t *fastqTail) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	b := p[:n]
	for len(b) != 0 {
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			t.line = append(t.line, b...)
			break
		}
		t.line = append(t.line, b[:i]...)
		t.endLine()
		b = b[i+1:]
	}
	if err == io.EOF {
		t.endLine()
	}
	return n, err
}

func (t *fastqTail) endLine() {
	l := bytes.TrimSpace(t.line)
	t.line = t.line[:0]
	if len(l) == 0 {
		return
	}
	switch t.state {
	case wantHeader:
		t.state, t.seq, t.qual = inSeq, 0, 0
	case inSeq:
		if l[0] != '+' {
			t.seq += len(l)
			break
		}
		t.state = inQual
		if t.seq == 0 {
			t.state = wantHeader
		}
	case inQual:
		t.qual += len(l)
		if t.qual >= t.seq {
			t.state = wantHeader
		}
	}
}

// complete returns whether the stream seen so far ends between records.
func (t *fastqTail) complete() bool { return t.state == wantHeader }
