// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk splits a stream of sequence records into numbered files
// without breaking any record across files.
package chunk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ncgr/sequencetools/fastx"
)

// Mode determines how the size of a chunk is measured.
type Mode int

const (
	// Records limits the number of records in each chunk.
	Records Mode = iota
	// Bases limits the number of residues in each chunk. A record
	// longer than the limit is written to a chunk of its own.
	Bases
)

// Options configure a chunk run.
type Options struct {
	// Dir is the directory chunks are written to. It is created if
	// it does not exist.
	Dir string

	Format fastx.Format
	Mode   Mode
	Size   int

	// First is the number of the first chunk file.
	First int

	// Gzip compresses chunks and adds a ".gz" suffix.
	Gzip bool

	// Width is the FASTA line width.
	Width int
}

// Name returns the file name of chunk i.
func (o Options) Name(i int) string {
	name := filepath.Join(o.Dir, fmt.Sprintf("%06d%s", i, o.Format.Ext()))
	if o.Gzip {
		name += ".gz"
	}
	return name
}

// Summary reports the outcome of a chunk run.
type Summary struct {
	Records int
	Files   int
}

func (s Summary) String() string {
	return fmt.Sprintf("Output %d reads in %d files", s.Records, s.Files)
}

type chunker struct {
	opt Options

	file  io.WriteCloser
	w     *fastx.Writer
	fill  int
	index int
	sum   Summary
}

func (c *chunker) rotate() error {
	if err := c.close(); err != nil {
		return err
	}
	f, err := fastx.Create(c.opt.Name(c.index), c.opt.Gzip)
	if err != nil {
		return err
	}
	c.index++
	c.sum.Files++
	c.file = f
	c.w = fastx.NewWriter(f, c.opt.Format, c.opt.Width)
	c.fill = 0
	return nil
}

func (c *chunker) close() error {
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}

func (c *chunker) write(r fastx.Record) error {
	n := 1
	if c.opt.Mode == Bases {
		n = len(r.Seq)
	}
	if c.file == nil || (c.fill != 0 && c.fill+n > c.opt.Size) {
		if err := c.rotate(); err != nil {
			return err
		}
	}
	if err := c.w.Write(r); err != nil {
		return errors.Wrapf(err, "chunk: failed to write %q", r.ID)
	}
	c.fill += n
	c.sum.Records++
	return nil
}

// Write writes the records from src into chunk files described by opt.
// No file is created for an empty stream.
func Write(src fastx.Source, opt Options) (Summary, error) {
	if opt.Size < 1 {
		return Summary{}, errors.Errorf("chunk: invalid chunk size %d", opt.Size)
	}
	if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
		return Summary{}, errors.Wrapf(err, "chunk: failed to create %q", opt.Dir)
	}
	c := &chunker{opt: opt, index: opt.First}
	for src.Next() {
		if err := c.write(src.Record()); err != nil {
			c.close()
			return c.sum, err
		}
	}
	if err := src.Err(); err != nil {
		c.close()
		return c.sum, err
	}
	return c.sum, c.close()
}
