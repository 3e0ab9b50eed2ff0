// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastx provides streaming access to FASTA and FASTQ records,
// transparently decompressing gzipped input.
package fastx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Format is a sequence file format.
type Format int

const (
	FASTA Format = iota
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file name extension for the format.
func (f Format) Ext() string { return "." + f.String() }

var (
	fastqName = regexp.MustCompile(`^(fq|fastq)`)
	fastaName = regexp.MustCompile(`^(fa|fasta|fna)`)
)

// ParseFormat returns the Format named by s. Common abbreviations such
// as fa, fna and fq are accepted.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	switch {
	case fastqName.MatchString(s):
		return FASTQ, nil
	case fastaName.MatchString(s):
		return FASTA, nil
	}
	return 0, errors.Errorf("fastx: unknown format %q", s)
}

// Record is a single sequence record.
type Record struct {
	ID   string
	Desc string
	Seq  []byte

	// Qual holds the phred quality of each residue. It is nil for
	// records read from FASTA.
	Qual []byte
}

// Header returns the record's FASTA/FASTQ header line without the
// leading marker.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Source is a single-pass stream of records.
type Source interface {
	Next() bool
	Record() Record
	Err() error
}

// Sink consumes records.
type Sink interface {
	Write(Record) error
}

// ParseError is returned when a record cannot be parsed. A ParseError
// ends the stream.
type ParseError struct {
	// Record is the 1-based ordinal of the offending record.
	Record int
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fastx: malformed %v record %d: %v", e.Format, e.Record, e.Err)
}

// Unwrap returns the underlying reader error. ParseError has no Cause
// method, so errors.Cause stops at the ParseError.
func (e *ParseError) Unwrap() error { return e.Err }

// ErrInputConflict is returned when a file name is given while data is
// also being piped on standard input.
var ErrInputConflict = errors.New("fastx: both a file and standard input were provided")
