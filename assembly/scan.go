// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly computes contiguity and composition statistics for
// genome assemblies. Each record is decomposed into contigs separated by
// runs of the gap letter, and the resulting length distributions are
// summarised as N50, N90, min, max and mean values.
package assembly

import "bytes"

const (
	// GapLetter is the residue that makes up scaffold gaps.
	GapLetter = 'N'

	// DefaultMinGap is the shortest run of GapLetter treated as a gap.
	DefaultMinGap = 10
)

// Kind is the classification of a Segment.
type Kind int

const (
	Contig Kind = iota
	Gap
)

func (k Kind) String() string {
	switch k {
	case Contig:
		return "contig"
	case Gap:
		return "gap"
	}
	return "unknown"
}

// Segment is a half-open interval [Start, End) of a record.
type Segment struct {
	Kind       Kind
	Start, End int
}

// Len returns the length of the segment.
func (s Segment) Len() int { return s.End - s.Start }

// Scan classifies the upper case residues into contig and gap segments.
// A gap is a maximal run of GapLetter at least minGap long; shorter runs
// are part of the surrounding contig. The returned segments are ordered,
// do not overlap and cover the whole of residues except that zero length
// contigs are never returned.
func Scan(residues []byte, minGap int) []Segment {
	var (
		segs []Segment

		// cursor is the start of the pending contig, i is where the
		// search for the next gap letter resumes.
		cursor, i int
	)
	for i < len(residues) {
		j := bytes.IndexByte(residues[i:], GapLetter)
		if j < 0 {
			break
		}
		start := i + j
		end := start
		for end < len(residues) && residues[end] == GapLetter {
			end++
		}
		i = end
		if end-start < minGap {
			continue
		}
		if start > cursor {
			segs = append(segs, Segment{Kind: Contig, Start: cursor, End: start})
		}
		segs = append(segs, Segment{Kind: Gap, Start: start, End: end})
		cursor = end
	}
	if cursor < len(residues) {
		segs = append(segs, Segment{Kind: Contig, Start: cursor, End: len(residues)})
	}
	return segs
}
