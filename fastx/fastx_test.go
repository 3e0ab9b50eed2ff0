// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func readAll(c *check.C, src Source) []Record {
	var recs []Record
	for src.Next() {
		recs = append(recs, src.Record())
	}
	c.Assert(src.Err(), check.IsNil)
	return recs
}

func (s *S) TestParseFormat(c *check.C) {
	for i, t := range []struct {
		name string
		want Format
		ok   bool
	}{
		{name: "fasta", want: FASTA, ok: true},
		{name: "fa", want: FASTA, ok: true},
		{name: "fna", want: FASTA, ok: true},
		{name: "FASTQ", want: FASTQ, ok: true},
		{name: "fq", want: FASTQ, ok: true},
		{name: "sam", ok: false},
	} {
		f, err := ParseFormat(t.name)
		if !t.ok {
			c.Check(err, check.NotNil, check.Commentf("Test %d", i))
			continue
		}
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(f, check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestReadFasta(c *check.C) {
	const in = ">a first record\nACGT\nnnAC\n>b\nTTTT\n"
	r := NewReader(strings.NewReader(in), FASTA)
	recs := readAll(c, r)
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].ID, check.Equals, "a")
	c.Check(recs[0].Desc, check.Equals, "first record")
	c.Check(string(recs[0].Seq), check.Equals, "ACGTnnAC")
	c.Check(recs[0].Qual, check.IsNil)
	c.Check(recs[1].ID, check.Equals, "b")
	c.Check(string(recs[1].Seq), check.Equals, "TTTT")
	c.Check(r.Count(), check.Equals, 2)
}

func (s *S) TestReadFastq(c *check.C) {
	const in = "@r1\nACGT\n+\nII#I\n@r2\nGG\n+\n5I\n"
	recs := readAll(c, NewReader(strings.NewReader(in), FASTQ))
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].ID, check.Equals, "r1")
	c.Check(string(recs[0].Seq), check.Equals, "ACGT")
	c.Check(recs[0].Qual, check.DeepEquals, []byte{40, 40, 2, 40})
	c.Check(string(recs[1].Seq), check.Equals, "GG")
	c.Check(recs[1].Qual, check.DeepEquals, []byte{20, 40})
}

func (s *S) TestWriteRoundTrip(c *check.C) {
	recs := []Record{
		{ID: "one", Desc: "with description", Seq: []byte("ACGTACGTAC"), Qual: bytes.Repeat([]byte{30}, 10)},
		{ID: "two", Seq: []byte("NNNNA"), Qual: []byte{1, 2, 3, 4, 5}},
	}
	for _, f := range []Format{FASTA, FASTQ} {
		for _, width := range []int{0, 3} {
			var buf bytes.Buffer
			w := NewWriter(&buf, f, width)
			for _, r := range recs {
				c.Assert(w.Write(r), check.IsNil)
			}
			got := readAll(c, NewReader(&buf, f))
			c.Assert(got, check.HasLen, len(recs), check.Commentf("%v width %d", f, width))
			for i := range recs {
				c.Check(got[i].ID, check.Equals, recs[i].ID)
				c.Check(got[i].Desc, check.Equals, recs[i].Desc)
				c.Check(string(got[i].Seq), check.Equals, string(recs[i].Seq))
				if f == FASTQ {
					c.Check(got[i].Qual, check.DeepEquals, recs[i].Qual)
				}
			}
		}
	}
}

func (s *S) TestWriteFastqNeedsQuality(c *check.C) {
	w := NewWriter(ioutil.Discard, FASTQ, 0)
	c.Check(w.Write(Record{ID: "x", Seq: []byte("ACGT")}), check.NotNil)
}

func (s *S) TestDecompress(c *check.C) {
	const data = ">a\nACGT\n"

	rc, err := Decompress(strings.NewReader(data))
	c.Assert(err, check.IsNil)
	b, err := ioutil.ReadAll(rc)
	c.Assert(err, check.IsNil)
	c.Check(string(b), check.Equals, data)
	c.Check(rc.Close(), check.IsNil)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write([]byte(data))
	c.Assert(err, check.IsNil)
	c.Assert(gz.Close(), check.IsNil)
	rc, err = Decompress(&buf)
	c.Assert(err, check.IsNil)
	b, err = ioutil.ReadAll(rc)
	c.Assert(err, check.IsNil)
	c.Check(string(b), check.Equals, data)
	c.Check(rc.Close(), check.IsNil)
}

func (s *S) TestCreateOpen(c *check.C) {
	dir := c.MkDir()
	for _, gz := range []bool{false, true} {
		name := filepath.Join(dir, "out.fasta")
		w, err := Create(name, gz)
		c.Assert(err, check.IsNil)
		c.Assert(NewWriter(w, FASTA, 0).Write(Record{ID: "x", Seq: []byte("GATTACA")}), check.IsNil)
		c.Assert(w.Close(), check.IsNil)
		if gz {
			name += ".gz"
		}
		raw, err := ioutil.ReadFile(name)
		c.Assert(err, check.IsNil)
		c.Check(bytes.HasPrefix(raw, gzipMagic), check.Equals, gz)

		f, err := SniffFile(name)
		c.Assert(err, check.IsNil)
		c.Check(f, check.Equals, FASTA)

		rc, err := Open(name)
		c.Assert(err, check.IsNil)
		recs := readAll(c, NewReader(rc, FASTA))
		c.Check(rc.Close(), check.IsNil)
		c.Assert(recs, check.HasLen, 1)
		c.Check(string(recs[0].Seq), check.Equals, "GATTACA")
	}
}

func (s *S) TestOpenMissing(c *check.C) {
	_, err := Open(filepath.Join(c.MkDir(), "missing.fa"))
	c.Check(err, check.NotNil)
}

func (s *S) TestInputConflict(c *check.C) {
	_, err := Input("reads.fa", true)
	c.Check(err, check.Equals, ErrInputConflict)
}

func (s *S) TestSniff(c *check.C) {
	for i, t := range []struct {
		in   string
		want Format
		ok   bool
	}{
		{in: ">a\nACGT\n", want: FASTA, ok: true},
		{in: "\n\n@r\nA\n+\nI\n", want: FASTQ, ok: true},
		{in: "ACGT\n", ok: false},
		{in: "", ok: false},
	} {
		f, err := Sniff(bufio.NewReader(strings.NewReader(t.in)))
		if !t.ok {
			c.Check(err, check.NotNil, check.Commentf("Test %d", i))
			continue
		}
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(f, check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestParseError(c *check.C) {
	cause := errors.New("bad line")
	err := error(&ParseError{Record: 3, Format: FASTQ, Err: cause})
	c.Check(err.Error(), check.Equals, "fastx: malformed fastq record 3: bad line")
	c.Check(errors.Unwrap(err), check.Equals, cause)
	c.Check(errors.Cause(errors.Wrap(err, "failed to read")), check.Equals, err)
}

func (s *S) TestMalformed(c *check.C) {
	for i, t := range []struct {
		in     string
		format Format
		good   int
		eof    bool
	}{
		{in: "ACGT\n>a\nAC\n", format: FASTA, good: 0},
		{in: "@r1\nACGT\n+\nIIII\n@r2\nAC\n", format: FASTQ, good: 1, eof: true},
		{in: "@a\nACGT\n+\nIIII\n@b\nGGGGGG\n", format: FASTQ, good: 1, eof: true},
		{in: "@a\nACGT\n+\nIIII\n@b\n", format: FASTQ, good: 1, eof: true},
		{in: "@a\nACGT\n+\nII\n", format: FASTQ, good: 0},
		{in: "@a\nACGT\n+\n", format: FASTQ, good: 0},
	} {
		r := NewReader(strings.NewReader(t.in), t.format)
		var n int
		for r.Next() {
			n++
		}
		c.Check(n, check.Equals, t.good, check.Commentf("Test %d", i))
		c.Assert(r.Err(), check.NotNil, check.Commentf("Test %d", i))
		pe, ok := r.Err().(*ParseError)
		c.Assert(ok, check.Equals, true, check.Commentf("Test %d: %T", i, r.Err()))
		c.Check(pe.Record, check.Equals, t.good+1, check.Commentf("Test %d", i))
		c.Check(pe.Format, check.Equals, t.format, check.Commentf("Test %d", i))
		if t.eof {
			c.Check(pe.Err, check.Equals, io.ErrUnexpectedEOF, check.Commentf("Test %d", i))
		}
		c.Check(r.Next(), check.Equals, false, check.Commentf("Test %d", i))
	}
}

func (s *S) TestFastqTrailingBlankLines(c *check.C) {
	const in = "@a\nACGT\n+\n@@@@\n\n@b\nGG\n+\nII\n\n\n"
	recs := readAll(c, NewReader(strings.NewReader(in), FASTQ))
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].Qual, check.DeepEquals, []byte{31, 31, 31, 31})
	c.Check(string(recs[1].Seq), check.Equals, "GG")
}

func (s *S) TestHeader(c *check.C) {
	c.Check(Record{ID: "a"}.Header(), check.Equals, "a")
	c.Check(Record{ID: "a", Desc: "b c"}.Header(), check.Equals, "a b c")
}
