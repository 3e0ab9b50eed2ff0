// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/check.v1"

	"github.com/ncgr/sequencetools/fastx"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct {
	dir    string
	piped  bool
	stderr bytes.Buffer
}

var _ = check.Suite(&S{})

func (s *S) SetUpTest(c *check.C) {
	s.dir = c.MkDir()
	s.piped = false
	s.stderr.Reset()
	stdinPiped = func() bool { return s.piped }
}

func (s *S) TearDownSuite(c *check.C) {
	stdinPiped = fastx.StdinPiped
}

func (s *S) file(c *check.C, name, content string) string {
	path := filepath.Join(s.dir, name)
	c.Assert(ioutil.WriteFile(path, []byte(content), 0o644), check.IsNil)
	return path
}

// execute runs the named tool with args and returns its standard output.
func (s *S) execute(tool string, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&s.stderr)
	rootCmd.SetArgs(append([]string{tool, "--log_file", filepath.Join(s.dir, tool+".log")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func records(c *check.C, data string, f fastx.Format) []fastx.Record {
	r := fastx.NewReader(strings.NewReader(data), f)
	var recs []fastx.Record
	for r.Next() {
		recs = append(recs, r.Record())
	}
	c.Assert(r.Err(), check.IsNil)
	return recs
}

func (s *S) TestParseLevel(c *check.C) {
	for i, t := range []struct {
		in    string
		level Level
		ok    bool
	}{
		{in: "DEBUG", level: Debug, ok: true},
		{in: "warning", level: Warning, ok: true},
		{in: " critical ", level: Critical, ok: true},
		{in: "verbose", level: Info, ok: false},
		{in: "", level: Info, ok: false},
	} {
		l, ok := parseLevel(t.in)
		c.Check(l, check.Equals, t.level, check.Commentf("Test %d", i))
		c.Check(ok, check.Equals, t.ok, check.Commentf("Test %d", i))
	}
	c.Check(Error.String(), check.Equals, "ERROR")
}

func (s *S) TestLoggerLevel(c *check.C) {
	var buf bytes.Buffer
	lg := newLogger(&buf, "tool", Warning)
	lg.Debugf("hidden")
	lg.Infof("hidden")
	c.Check(buf.Len(), check.Equals, 0)
	lg.Warningf("shown %d", 1)
	c.Check(strings.HasSuffix(buf.String(), "tool|[WARNING]: shown 1\n"), check.Equals, true)
}

func (s *S) TestBasicFastaStats(c *check.C) {
	fasta := s.file(c, "in.fa", ">a\nACGTNNNNNNNNNNACGT\n>b\nGGCC\n")
	out, err := s.execute("basic_fasta_stats", "--fasta", fasta, "--human_readable", "--classic=false")
	c.Assert(err, check.IsNil)
	c.Check(strings.HasPrefix(out, "N50\t18\n"), check.Equals, true, check.Commentf("%s", out))
	for _, line := range []string{"\ncontigs\t3\n", "\nscaffolds\t1\n", "\ngaps\t1\n", "\nrecords\t2\n", "\ngapbases\t10\n"} {
		c.Check(strings.Contains(out, line), check.Equals, true, check.Commentf("missing %q", line))
	}

	log, err := ioutil.ReadFile(filepath.Join(s.dir, "basic_fasta_stats.log"))
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(string(log), "basic_fasta_stats|[INFO]: read 2 records"), check.Equals, true)

	out, err = s.execute("basic_fasta_stats", "--fasta", fasta, "--human_readable=false", "--classic")
	c.Assert(err, check.IsNil)
	c.Check(strings.HasPrefix(out, `{"Scaffolds": 1, `), check.Equals, true, check.Commentf("%s", out))
	c.Check(strings.Contains(out, `"Contigs": 3`), check.Equals, true)
}

func (s *S) TestInputConflict(c *check.C) {
	s.piped = true
	fasta := s.file(c, "in.fa", ">a\nACGT\n")
	out, err := s.execute("basic_fasta_stats", "--fasta", fasta)
	c.Assert(err, check.NotNil)
	c.Check(out, check.Equals, "")
	l, ok := err.(logged)
	c.Assert(ok, check.Equals, true)
	c.Check(errors.Cause(l.error), check.Equals, fastx.ErrInputConflict)
	c.Check(strings.Contains(s.stderr.String(), "[CRITICAL]"), check.Equals, true)
}

func (s *S) TestMalformedInput(c *check.C) {
	for i, t := range []struct {
		tool, flag, data string
		record           int
	}{
		{tool: "basic_fasta_stats", flag: "--fasta", data: "ACGT\n>a\nAC\n", record: 1},
		{tool: "hifi_profiler", flag: "--fastq", data: "@a\nACGT\n+\nIIII\n@b\nGGGGGG\n", record: 2},
	} {
		path := s.file(c, fmt.Sprintf("bad%d", i), t.data)
		out, err := s.execute(t.tool, t.flag, path)
		c.Assert(err, check.NotNil, check.Commentf("Test %d", i))
		c.Check(out, check.Equals, "", check.Commentf("Test %d", i))
		l, ok := err.(logged)
		c.Assert(ok, check.Equals, true, check.Commentf("Test %d", i))
		pe, ok := errors.Cause(l.error).(*fastx.ParseError)
		c.Assert(ok, check.Equals, true, check.Commentf("Test %d: %v", i, l.error))
		c.Check(pe.Record, check.Equals, t.record, check.Commentf("Test %d", i))
	}
}

func (s *S) TestFastxConverter(c *check.C) {
	fasta := s.file(c, "in.fa", ">a\nACGT\n>b\nGG\n")
	out, err := s.execute("fastx_converter", "--input_file", fasta, "--input_type", "fasta")
	c.Assert(err, check.IsNil)
	recs := records(c, out, fastx.FASTQ)
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].Qual, check.DeepEquals, []byte{40, 40, 40, 40})
	c.Check(string(recs[1].Seq), check.Equals, "GG")

	_, err = s.execute("fastx_converter", "--input_file", fasta, "--input_type", "fastq")
	c.Check(err, check.NotNil)
}

func (s *S) TestFilters(c *check.C) {
	fasta := s.file(c, "in.fa", ">a\nACGT\n>b\nACGTACGT\n>c\nAC\n")
	out, err := s.execute("filter_fasta_by_length", "--fasta", fasta, "--length", "4", "--reverse=false")
	c.Assert(err, check.IsNil)
	c.Check(out, check.Equals, ">a\nACGT\n>b\nACGTACGT\n")

	targets := s.file(c, "targets.txt", "c\n\na\n")
	out, err = s.execute("get_fasta_by_id", "--fasta", fasta, "--targets", targets, "--reverse")
	c.Assert(err, check.IsNil)
	c.Check(out, check.Equals, ">b\nACGTACGT\n")
}

func (s *S) TestSubsetFastq(c *check.C) {
	fastq := s.file(c, "in.fq", "@a\nA\n+\nI\n@b\nC\n+\nI\n@c\nG\n+\nI\n@d\nT\n+\nI\n")
	out, err := s.execute("subset_fastq", "--fastq", fastq, "--subset", "2")
	c.Assert(err, check.IsNil)
	recs := records(c, out, fastx.FASTQ)
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].ID, check.Equals, "b")
	c.Check(recs[1].ID, check.Equals, "d")
}

func (s *S) TestChunkFasta(c *check.C) {
	fasta := s.file(c, "in.fa", ">a\nACGT\n>b\nACGT\n>c\nACGT\n")
	dir := filepath.Join(s.dir, "chunks")
	_, err := s.execute("chunk_fasta", "--fasta", fasta, "--chunk_size", "2", "--chunk_dir", dir)
	c.Assert(err, check.IsNil)
	for _, name := range []string{"000000.fasta", "000001.fasta"} {
		data, err := ioutil.ReadFile(filepath.Join(dir, name))
		c.Assert(err, check.IsNil)
		c.Check(len(records(c, string(data), fastx.FASTA)) > 0, check.Equals, true)
	}
}

func (s *S) TestSplitScaffolds(c *check.C) {
	fasta := s.file(c, "in.fa", ">s\nAAAANNNNNNNNNNCC\n")
	out, err := s.execute("split_scaffolds", "--fasta", fasta)
	c.Assert(err, check.IsNil)
	recs := records(c, out, fastx.FASTA)
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].ID, check.Equals, "s_0-4")
	c.Check(recs[1].ID, check.Equals, "s_14-16")
}

func (s *S) TestHifiProfiler(c *check.C) {
	fastq := s.file(c, "in.fq", "@a\nACGT\n+\nIIII\n@b\nGG\n+\nII\n")
	out, err := s.execute("hifi_profiler", "--fastq", fastq, "--bin_size", "3")
	c.Assert(err, check.IsNil)
	c.Check(out, check.Equals, `{"maxlen": 4, "minlen": 2, "records": 2, "allbases": 6, "pgc": 67, "N50": 4, "0-2": 1, "3-5": 1}`+"\n")
}
