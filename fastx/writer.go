// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// DefaultWidth is the FASTA line width used by the tools that rewrap
// sequences.
const DefaultWidth = 60

// Writer writes records in FASTA or FASTQ format.
type Writer struct {
	w      io.Writer
	format Format

	// Width is the FASTA line width. Sequences are written on a single
	// line if Width is less than 1.
	Width int
}

// NewWriter returns a Writer that writes records of format f to w.
func NewWriter(w io.Writer, f Format, width int) *Writer {
	return &Writer{w: w, format: f, Width: width}
}

// Format returns the format written by w.
func (w *Writer) Format() Format { return w.format }

// Write writes a single record. FASTQ records must have a quality for
// every residue.
func (w *Writer) Write(r Record) error {
	var err error
	switch w.format {
	case FASTQ:
		if len(r.Qual) != len(r.Seq) {
			return errors.Errorf("fastx: record %q has %d residues but %d qualities", r.ID, len(r.Seq), len(r.Qual))
		}
		ql := make([]alphabet.QLetter, len(r.Seq))
		for i := range r.Seq {
			ql[i] = alphabet.QLetter{L: alphabet.Letter(r.Seq[i]), Q: alphabet.Qphred(r.Qual[i])}
		}
		s := linear.NewQSeq(r.ID, ql, alphabet.DNA, alphabet.Sanger)
		s.Desc = r.Desc
		_, err = fastq.NewWriter(w.w).Write(s)
	default:
		width := w.Width
		if width < 1 {
			width = len(r.Seq)
			if width == 0 {
				width = 1
			}
		}
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters(r.Seq), alphabet.DNA)
		s.Desc = r.Desc
		_, err = fasta.NewWriter(w.w, width).Write(s)
	}
	return err
}
