// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter provides record selection for streaming FASTA and FASTQ
// tools: length cut-offs, identifier lists and regular subsampling.
package filter

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ncgr/sequencetools/fastx"
)

// Predicate reports whether a record should be kept.
type Predicate func(fastx.Record) bool

// ByLength keeps records at least min residues long, or at most min
// residues long if reverse is true.
func ByLength(min int, reverse bool) Predicate {
	if reverse {
		return func(r fastx.Record) bool { return len(r.Seq) <= min }
	}
	return func(r fastx.Record) bool { return len(r.Seq) >= min }
}

// Targets is a set of record identifiers.
type Targets map[string]struct{}

// LoadTargets reads one identifier per line from r. Surrounding white
// space and blank lines are ignored.
func LoadTargets(r io.Reader) (Targets, error) {
	t := make(Targets)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		t[id] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "filter: failed to read targets")
	}
	return t, nil
}

// ByID keeps records whose identifier is in targets, or is not in
// targets if reverse is true.
func ByID(targets Targets, reverse bool) Predicate {
	return func(r fastx.Record) bool {
		_, ok := targets[r.ID]
		return ok != reverse
	}
}

// Every keeps every n-th record, starting with the n-th.
func Every(n int) (Predicate, error) {
	if n < 1 {
		return nil, errors.Errorf("filter: invalid subset interval %d", n)
	}
	var count int
	return func(fastx.Record) bool {
		count++
		if count == n {
			count = 0
			return true
		}
		return false
	}, nil
}

// Summary counts the records handled by Copy.
type Summary struct {
	Read    int
	Written int
}

// Copy writes each record from src that satisfies keep to dst. A nil
// keep copies every record. Copy stops at the first error.
func Copy(dst fastx.Sink, src fastx.Source, keep Predicate) (Summary, error) {
	var s Summary
	for src.Next() {
		r := src.Record()
		s.Read++
		if keep != nil && !keep(r) {
			continue
		}
		if err := dst.Write(r); err != nil {
			return s, errors.Wrapf(err, "filter: failed to write %q", r.ID)
		}
		s.Written++
	}
	return s, src.Err()
}
