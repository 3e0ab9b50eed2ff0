// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Field is a single named value in a Report.
type Field struct {
	Key   string
	Value int
}

// Report is an ordered list of named values.
type Report []Field

// Get returns the value for key and whether it is present.
func (r Report) Get(key string) (int, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return 0, false
}

// MarshalJSON renders the report as a JSON object, keeping the
// report's key order.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i != 0 {
			buf.WriteString(", ")
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		fmt.Fprintf(&buf, ": %d", f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the report to w as a single line JSON object.
func (r Report) WriteJSON(w io.Writer) error {
	b, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// WriteTable writes the report to w as tab separated key value lines.
func (r Report) WriteTable(w io.Writer) error {
	for _, f := range r {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// Report returns the metrics keyed by their standard names.
func (m Metrics) Report() Report {
	return Report{
		{"N50", m.N50},
		{"maxlen", m.MaxLen},
		{"minlen", m.MinLen},
		{"contigN50", m.ContigN50},
		{"scaffoldN50", m.ScaffoldN50},
		{"contigN90", m.ContigN90},
		{"scaffoldN90", m.ScaffoldN90},
		{"gapN90", m.GapN90},
		{"meancontig", m.MeanContig},
		{"meanscaffold", m.MeanScaffold},
		{"meangap", m.MeanGap},
		{"gaps", m.Gaps},
		{"gapN50", m.GapN50},
		{"maxgap", m.MaxGap},
		{"mingap", m.MinGap},
		{"contigs", m.Contigs},
		{"scaffolds", m.Scaffolds},
		{"records", m.Records},
		{"maxscaffold", m.MaxScaffold},
		{"minscaffold", m.MinScaffold},
		{"maxcontig", m.MaxContig},
		{"mincontig", m.MinContig},
		{"contigbases", m.ContigBases},
		{"scaffoldbases", m.ScaffoldBases},
		{"gapbases", m.GapBases},
		{"allbases", m.AllBases},
		{"pgc", m.PGC},
	}
}

// Classic returns the metrics using the legacy GAEMR key names. If the
// assembly has no scaffolds every record is reported as a scaffold.
func Classic(m Metrics) Report {
	if m.Scaffolds == 0 {
		m.ScaffoldN50 = m.N50
		m.Scaffolds = m.Records
		m.ScaffoldBases = m.AllBases
		m.MaxScaffold = m.MaxLen
		m.MinScaffold = m.MinLen
	}
	return Report{
		{"Scaffolds", m.Scaffolds},
		{"Max Scaffold", m.MaxScaffold},
		{"Min Scaffold", m.MinScaffold},
		{"Mean Scaffold", m.MeanScaffold},
		{"Scaffold N50", m.ScaffoldN50},
		{"Scaffold N90", m.ScaffoldN90},
		{"Total Scaffold Length", m.ScaffoldBases},
		{"Contigs", m.Contigs},
		{"Max Contig", m.MaxContig},
		{"Min Contig", m.MinContig},
		{"Mean Contig", m.MeanContig},
		{"Contig N50", m.ContigN50},
		{"Contig N90", m.ContigN90},
		{"Total Contig Length", m.ContigBases},
		{"Assembly GC", m.PGC},
		{"Captured Gaps", m.Gaps},
		{"Max Gap", m.MaxGap},
		{"Min Gap", m.MinGap},
		{"Mean Gap", m.MeanGap},
		{"Gap N50", m.GapN50},
		{"Total Gap Length", m.GapBases},
	}
}
