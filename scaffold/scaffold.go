// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffold provides a run-length representation of scaffold
// sequences as contigs separated by gaps.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"
	"github.com/biogo/store/step"

	"github.com/ncgr/sequencetools/assembly"
	"github.com/ncgr/sequencetools/fastx"
)

// ErrEmpty is returned when a layout is requested for an empty record.
var ErrEmpty = errors.New("scaffold: empty sequence")

type run assembly.Kind

func (r run) Equal(e step.Equaler) bool {
	o, ok := e.(run)
	return ok && r == o
}

func (r run) String() string { return assembly.Kind(r).String() }

// Layout is the arrangement of contigs and gaps along a scaffold.
type Layout struct {
	ID     string
	vector *step.Vector
}

// NewLayout returns the layout of residues, treating runs of at least
// minGap gap letters as gaps.
func NewLayout(id string, residues []byte, minGap int) (*Layout, error) {
	if len(residues) == 0 {
		return nil, ErrEmpty
	}
	v, err := step.New(0, len(residues), run(assembly.Contig))
	if err != nil {
		return nil, err
	}
	for _, seg := range assembly.Scan(bytes.ToUpper(residues), minGap) {
		if seg.Kind == assembly.Gap {
			v.SetRange(seg.Start, seg.End, run(assembly.Gap))
		}
	}
	return &Layout{ID: id, vector: v}, nil
}

// Len returns the length of the scaffold.
func (l *Layout) Len() int { return l.vector.Len() }

// At returns the kind of segment at position i. At will panic if i is
// outside the scaffold.
func (l *Layout) At(i int) assembly.Kind {
	e, err := l.vector.At(i)
	if err != nil {
		panic(err)
	}
	return assembly.Kind(e.(run))
}

// Do calls fn for each contig and gap of the scaffold in order.
func (l *Layout) Do(fn func(assembly.Segment)) {
	l.vector.Do(func(start, end int, e step.Equaler) {
		if start == end {
			return
		}
		fn(assembly.Segment{Kind: assembly.Kind(e.(run)), Start: start, End: end})
	})
}

// Segments returns the segments of kind k.
func (l *Layout) Segments(k assembly.Kind) []assembly.Segment {
	var segs []assembly.Segment
	l.Do(func(s assembly.Segment) {
		if s.Kind == k {
			segs = append(segs, s)
		}
	})
	return segs
}

// IsScaffold returns whether the layout contains a gap.
func (l *Layout) IsScaffold() bool { return len(l.Segments(assembly.Gap)) != 0 }

// Format is a fmt.Formatter helper. The %v verb renders each segment as
// start:kind followed by the end position.
func (l *Layout) Format(fs fmt.State, c rune) {
	if l == nil {
		fmt.Fprint(fs, "<nil>")
		return
	}
	switch c {
	case 'v', 's':
		if c == 's' || !fs.Flag('-') {
			fmt.Fprintf(fs, "%q ", l.ID)
		}
		fmt.Fprint(fs, "[")
		l.Do(func(s assembly.Segment) {
			fmt.Fprintf(fs, "%d:%v ", s.Start, s.Kind)
		})
		fmt.Fprintf(fs, "%d]", l.Len())
	default:
		fmt.Fprintf(fs, "%%!%c(*scaffold.Layout=%s)", c, l.ID)
	}
}

type fe struct {
	s, e   int
	orient feat.Orientation
	feat.Feature
}

func (f fe) Start() int                    { return f.s }
func (f fe) End() int                      { return f.e }
func (f fe) Len() int                      { return f.e - f.s }
func (f fe) Orientation() feat.Orientation { return f.orient }

type feats []feat.Feature

func (f feats) Features() []feat.Feature { return []feat.Feature(f) }

// Split breaks r at each gap of at least minGap gap letters and returns
// its contigs. Each contig is named by the record identifier and its
// zero-based half-open position in the record, id_start-end.
func Split(r fastx.Record, minGap int) ([]fastx.Record, error) {
	l, err := NewLayout(r.ID, r.Seq, minGap)
	if err != nil {
		return nil, err
	}
	src := linear.NewSeq(r.ID, alphabet.BytesToLetters(r.Seq), alphabet.DNA)
	var contigs []fastx.Record
	for _, s := range l.Segments(assembly.Contig) {
		dst := linear.NewSeq("", nil, alphabet.DNA)
		if err := sequtils.Stitch(dst, src, feats{fe{s: s.Start, e: s.End}}); err != nil {
			return nil, err
		}
		c := fastx.Record{
			ID:   fmt.Sprintf("%s_%d-%d", r.ID, s.Start, s.End),
			Desc: r.Desc,
			Seq:  append([]byte(nil), alphabet.LettersToBytes(dst.Seq)...),
		}
		if len(r.Qual) == len(r.Seq) && r.Qual != nil {
			c.Qual = append([]byte(nil), r.Qual[s.Start:s.End]...)
		}
		contigs = append(contigs, c)
	}
	return contigs, nil
}
