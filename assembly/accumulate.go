// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"bytes"
	"strings"

	"github.com/ncgr/sequencetools/fastx"
)

// known holds the residues tallied individually by a Composition.
// Everything else is counted as IUPAC.
const known = "AaCcTtGgNn"

// Composition holds per-residue counts.
type Composition struct {
	letters [256]int

	// IUPAC counts residues that are not in AaCcTtGgNn.
	IUPAC int
	// Total is the number of residues seen, including gaps.
	Total int
}

// Count returns the number of times the residue b has been tallied.
func (c *Composition) Count(b byte) int { return c.letters[b] }

// Tally adds each residue of s to the per-residue counts. It does not
// change Total.
func (c *Composition) Tally(s []byte) {
	for _, b := range s {
		if strings.IndexByte(known, b) < 0 {
			c.IUPAC++
			continue
		}
		c.letters[b]++
	}
}

// Add adds n to the count for the residue b.
func (c *Composition) Add(b byte, n int) {
	if strings.IndexByte(known, b) < 0 {
		c.IUPAC += n
		return
	}
	c.letters[b] += n
}

// Lengths holds the length distributions collected by an Accumulator.
// The slices are in record order until Compile sorts them.
type Lengths struct {
	Contigs   []int
	Gaps      []int
	Scaffolds []int
	Total     []int
}

// Accumulator collects the segment lengths and residue counts of a set
// of records. An Accumulator is owned by a single scan and must not be
// shared between goroutines.
type Accumulator struct {
	// MinGap is the shortest run of GapLetter counted as a gap.
	MinGap int

	Records   int
	Contigs   int
	Gaps      int
	Scaffolds int

	ContigBases   int
	GapBases      int
	ScaffoldBases int

	Lengths Lengths
	Bases   Composition
}

// NewAccumulator returns an empty Accumulator using minGap as the gap
// threshold.
func NewAccumulator(minGap int) *Accumulator {
	return &Accumulator{MinGap: minGap}
}

// Add adds a single record's residues to the accumulator. Residues are
// treated case-insensitively. An empty record only increments Records.
func (a *Accumulator) Add(residues []byte) {
	a.Records++
	if len(residues) == 0 {
		return
	}
	s := bytes.ToUpper(residues)
	a.Bases.Total += len(s)
	a.Lengths.Total = append(a.Lengths.Total, len(s))

	var scaffold bool
	for _, seg := range Scan(s, a.MinGap) {
		n := seg.Len()
		switch seg.Kind {
		case Contig:
			a.Lengths.Contigs = append(a.Lengths.Contigs, n)
			a.Contigs++
			a.ContigBases += n
			a.Bases.Tally(s[seg.Start:seg.End])
		case Gap:
			a.Lengths.Gaps = append(a.Lengths.Gaps, n)
			a.Gaps++
			a.GapBases += n
			a.Bases.Add(GapLetter, n)
			scaffold = true
		}
	}
	if scaffold {
		a.Scaffolds++
		a.Lengths.Scaffolds = append(a.Lengths.Scaffolds, len(s))
		a.ScaffoldBases += len(s)
	}
}

// Consume adds every record read from src. If src fails, the error is
// returned and the accumulator must be discarded.
func (a *Accumulator) Consume(src fastx.Source) error {
	for src.Next() {
		a.Add(src.Record().Seq)
	}
	return src.Err()
}

// Run computes the assembly metrics for the records in src using minGap
// as the gap threshold. The returned Accumulator holds the sorted length
// distributions the metrics were compiled from. No metrics are returned
// if src fails.
func Run(src fastx.Source, minGap int) (Metrics, *Accumulator, error) {
	a := NewAccumulator(minGap)
	if err := a.Consume(src); err != nil {
		return Metrics{}, nil, err
	}
	return a.Compile(), a, nil
}
