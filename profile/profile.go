// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile summarises the read lengths of a sequencing run.
package profile

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/ncgr/sequencetools/assembly"
	"github.com/ncgr/sequencetools/fastx"
)

// DefaultBinSize is the default width of a length histogram bin.
const DefaultBinSize = 1000

// Bin is a length histogram bin holding reads with lengths in
// [Start, Start+width).
type Bin struct {
	Start int
	Count int
}

// Profile is a read length summary.
type Profile struct {
	Records  int
	AllBases int
	MaxLen   int
	MinLen   int
	N50      int
	PGC      int

	BinSize   int
	Histogram []Bin
}

// Report returns the profile as an ordered report. Histogram bins follow
// the summary values, keyed by their length range.
func (p Profile) Report() assembly.Report {
	r := assembly.Report{
		{Key: "maxlen", Value: p.MaxLen},
		{Key: "minlen", Value: p.MinLen},
		{Key: "records", Value: p.Records},
		{Key: "allbases", Value: p.AllBases},
		{Key: "pgc", Value: p.PGC},
		{Key: "N50", Value: p.N50},
	}
	for _, b := range p.Histogram {
		r = append(r, assembly.Field{
			Key:   fmt.Sprintf("%d-%d", b.Start, b.Start+p.BinSize-1),
			Value: b.Count,
		})
	}
	return r
}

// Run reads every record from src and returns its length profile using
// bins of the given width.
func Run(src fastx.Source, binSize int) (Profile, error) {
	if binSize < 1 {
		return Profile{}, errors.Errorf("profile: invalid bin size %d", binSize)
	}
	var (
		p       = Profile{BinSize: binSize}
		lengths []int
		bases   assembly.Composition
		bins    = make(map[int]int)
	)
	for src.Next() {
		p.Records++
		s := src.Record().Seq
		if len(s) == 0 {
			continue
		}
		bases.Total += len(s)
		bases.Tally(bytes.ToUpper(s))
		lengths = append(lengths, len(s))
		bins[len(s)/binSize]++
	}
	if err := src.Err(); err != nil {
		return Profile{}, err
	}

	sort.Ints(lengths)
	p.AllBases = bases.Total
	if n := len(lengths); n != 0 {
		p.MaxLen, p.MinLen = lengths[n-1], lengths[0]
		p.N50 = assembly.N50(lengths, bases.Total)
	}
	p.PGC = assembly.GC(bases.Count('G'), bases.Count('C'), bases.Total)

	for b, n := range bins {
		p.Histogram = append(p.Histogram, Bin{Start: b * binSize, Count: n})
	}
	sort.Slice(p.Histogram, func(i, j int) bool { return p.Histogram[i].Start < p.Histogram[j].Start })
	return p, nil
}
