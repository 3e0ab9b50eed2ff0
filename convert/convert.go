// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert converts sequence records between FASTA and FASTQ.
package convert

import (
	"github.com/pkg/errors"

	"github.com/ncgr/sequencetools/fastx"
)

// DefaultQuality is the phred quality given to FASTA residues written as
// FASTQ.
const DefaultQuality = 40

// MaxQuality is the highest phred quality that can be written in the
// Sanger encoding.
const MaxQuality = 93

// Target returns the format that records of format f are converted to.
func Target(f fastx.Format) fastx.Format {
	if f == fastx.FASTQ {
		return fastx.FASTA
	}
	return fastx.FASTQ
}

// CheckInput returns an error if the declared input format does not
// match the sniffed format of the named file.
func CheckInput(name string, declared fastx.Format) error {
	got, err := fastx.SniffFile(name)
	if err != nil {
		return err
	}
	if got != declared {
		return errors.Errorf("convert: type mismatch, input type %v but %q looks like %v", declared, name, got)
	}
	return nil
}

// Records copies every record from src to dst. Records without a quality
// for every residue are given quality q throughout; dst decides whether
// qualities are written. It returns the number of records written.
func Records(dst fastx.Sink, src fastx.Source, q int) (int, error) {
	if q < 0 || q > MaxQuality {
		return 0, errors.Errorf("convert: quality %d out of range", q)
	}
	var n int
	for src.Next() {
		r := src.Record()
		if len(r.Qual) != len(r.Seq) {
			r.Qual = make([]byte, len(r.Seq))
			for i := range r.Qual {
				r.Qual[i] = byte(q)
			}
		}
		if err := dst.Write(r); err != nil {
			return n, errors.Wrapf(err, "convert: failed to write %q", r.ID)
		}
		n++
	}
	return n, src.Err()
}
