// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nxplot renders Nx curves of length distributions.
package nxplot

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ncgr/sequencetools/assembly"
)

// Default image dimensions.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Series is a named length distribution.
type Series struct {
	Name    string
	Lengths []int
}

// FromAccumulator returns the contig, scaffold and whole record distributions
// collected by a. Empty distributions are omitted.
func FromAccumulator(a *assembly.Accumulator) []Series {
	var s []Series
	for _, d := range []Series{
		{Name: "contigs", Lengths: a.Lengths.Contigs},
		{Name: "scaffolds", Lengths: a.Lengths.Scaffolds},
		{Name: "records", Lengths: a.Lengths.Total},
	} {
		if len(d.Lengths) != 0 {
			s = append(s, d)
		}
	}
	return s
}

// Curve returns the Nx step curve of lengths. X values are the
// percentage of total bases covered by lengths at least as long as Y.
func Curve(lengths []int) plotter.XYs {
	l := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(l)))
	var total int
	for _, v := range l {
		total += v
	}
	if total == 0 {
		return nil
	}

	xy := make(plotter.XYs, 0, 2*len(l))
	var sum int
	for _, v := range l {
		if v == 0 {
			break
		}
		x0 := 100 * float64(sum) / float64(total)
		sum += v
		x1 := 100 * float64(sum) / float64(total)
		xy = append(xy,
			plotter.XY{X: x0, Y: float64(v)},
			plotter.XY{X: x1, Y: float64(v)},
		)
	}
	return xy
}

// New returns a plot holding an Nx curve for each non-empty series.
func New(title string, series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Nx (%)"
	p.X.Min, p.X.Max = 0, 100
	p.Y.Label.Text = "length (bp)"
	p.Legend.Top = true

	for i, s := range series {
		xy := Curve(s.Lengths)
		if len(xy) == 0 {
			continue
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return nil, errors.Wrapf(err, "nxplot: %s", s.Name)
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	return p, nil
}

// Save writes the Nx curves of series to the named file. The image
// format is taken from the file extension.
func Save(name, title string, series ...Series) error {
	p, err := New(title, series...)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(Width, Height, name), "nxplot: save %s", name)
}

// Write renders the Nx curves of series to w in the given format, for
// example "png" or "svg".
func Write(w io.Writer, format, title string, series ...Series) error {
	p, err := New(title, series...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return errors.Wrapf(err, "nxplot: %s", format)
	}
	_, err = wt.WriteTo(w)
	return err
}
