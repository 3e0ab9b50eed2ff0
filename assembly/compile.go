// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics is the summary of an assembly. Every field is zero unless the
// distribution it is derived from is non-empty.
type Metrics struct {
	N50         int
	MaxLen      int
	MinLen      int
	ContigN50   int
	ScaffoldN50 int
	ContigN90   int
	ScaffoldN90 int
	GapN90      int

	MeanContig   int
	MeanScaffold int
	MeanGap      int

	Gaps   int
	GapN50 int
	MaxGap int
	MinGap int

	Contigs   int
	Scaffolds int
	Records   int

	MaxScaffold int
	MinScaffold int
	MaxContig   int
	MinContig   int

	ContigBases   int
	ScaffoldBases int
	GapBases      int
	AllBases      int

	// PGC is the GC content of all bases as a rounded percentage.
	PGC int
}

// Nx returns the length l in the ascending sorted lengths such that the
// lengths no shorter than l sum to at least frac of total. Lengths are
// summed from the longest down. Nx returns 0 if the threshold is never
// reached.
func Nx(sorted []int, total int, frac float64) int {
	var sum int
	for i := len(sorted) - 1; i >= 0; i-- {
		sum += sorted[i]
		if float64(sum) >= float64(total)*frac {
			return sorted[i]
		}
	}
	return 0
}

// N50 returns the N50 of the ascending sorted lengths.
func N50(sorted []int, total int) int { return Nx(sorted, total, 0.5) }

// N90 returns the N90 of the ascending sorted lengths.
func N90(sorted []int, total int) int { return Nx(sorted, total, 0.9) }

// Mean returns the mean of lengths rounded half to even, or 0 if lengths
// is empty.
func Mean(lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	x := make([]float64, len(lengths))
	for i, l := range lengths {
		x[i] = float64(l)
	}
	return int(math.RoundToEven(stat.Mean(x, nil)))
}

// GC returns the rounded percentage of g+c in total, or 0 if total is 0.
func GC(g, c, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(g+c) / float64(total) * 100))
}

// Compile sorts the collected distributions and derives the assembly
// metrics from them.
func (a *Accumulator) Compile() Metrics {
	l := &a.Lengths
	sort.Ints(l.Contigs)
	sort.Ints(l.Gaps)
	sort.Ints(l.Scaffolds)
	sort.Ints(l.Total)

	m := Metrics{
		Records:       a.Records,
		Contigs:       a.Contigs,
		Gaps:          a.Gaps,
		Scaffolds:     a.Scaffolds,
		ContigBases:   a.ContigBases,
		GapBases:      a.GapBases,
		ScaffoldBases: a.ScaffoldBases,
		AllBases:      a.Bases.Total,
	}
	if n := len(l.Contigs); n != 0 {
		m.MaxContig, m.MinContig = l.Contigs[n-1], l.Contigs[0]
		if a.ContigBases != 0 {
			m.ContigN50 = N50(l.Contigs, a.ContigBases)
			m.ContigN90 = N90(l.Contigs, a.ContigBases)
			m.MeanContig = Mean(l.Contigs)
		}
	}
	if n := len(l.Gaps); n != 0 {
		m.MaxGap, m.MinGap = l.Gaps[n-1], l.Gaps[0]
		if a.GapBases != 0 {
			m.GapN50 = N50(l.Gaps, a.GapBases)
			m.GapN90 = N90(l.Gaps, a.GapBases)
			m.MeanGap = Mean(l.Gaps)
		}
	}
	if n := len(l.Scaffolds); n != 0 {
		m.MaxScaffold, m.MinScaffold = l.Scaffolds[n-1], l.Scaffolds[0]
		if a.ScaffoldBases != 0 {
			m.ScaffoldN50 = N50(l.Scaffolds, a.ScaffoldBases)
			m.ScaffoldN90 = N90(l.Scaffolds, a.ScaffoldBases)
			m.MeanScaffold = Mean(l.Scaffolds)
		}
	}
	if n := len(l.Total); n != 0 {
		m.MaxLen, m.MinLen = l.Total[n-1], l.Total[0]
		m.N50 = N50(l.Total, a.Bases.Total)
	}
	m.PGC = GC(a.Bases.Count('G'), a.Bases.Count('C'), a.Bases.Total)
	return m
}
