// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nxplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gopkg.in/check.v1"

	"github.com/ncgr/sequencetools/assembly"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestCurve(c *check.C) {
	for i, t := range []struct {
		lengths []int
		want    plotter.XYs
	}{
		{lengths: nil, want: nil},
		{lengths: []int{0, 0}, want: nil},
		{
			lengths: []int{2, 5, 3},
			want: plotter.XYs{
				{X: 0, Y: 5}, {X: 50, Y: 5},
				{X: 50, Y: 3}, {X: 80, Y: 3},
				{X: 80, Y: 2}, {X: 100, Y: 2},
			},
		},
		{
			lengths: []int{4},
			want:    plotter.XYs{{X: 0, Y: 4}, {X: 100, Y: 4}},
		},
	} {
		c.Check(Curve(t.lengths), check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestCurveKeepsInput(c *check.C) {
	l := []int{1, 3, 2}
	Curve(l)
	c.Check(l, check.DeepEquals, []int{1, 3, 2})
}

func (s *S) TestFromAccumulator(c *check.C) {
	a := assembly.NewAccumulator(3)
	a.Add([]byte("ACGT"))
	a.Add([]byte("AANNNAA"))
	series := FromAccumulator(a)
	c.Assert(series, check.HasLen, 3)
	c.Check(series[0], check.DeepEquals, Series{Name: "contigs", Lengths: []int{4, 2, 2}})
	c.Check(series[1], check.DeepEquals, Series{Name: "scaffolds", Lengths: []int{7}})
	c.Check(series[2], check.DeepEquals, Series{Name: "records", Lengths: []int{4, 7}})

	c.Check(FromAccumulator(assembly.NewAccumulator(3)), check.HasLen, 0)
}

func (s *S) TestWrite(c *check.C) {
	var buf bytes.Buffer
	err := Write(&buf, "svg", "test", Series{Name: "contigs", Lengths: []int{10, 20, 30}})
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(buf.String(), "<svg"), check.Equals, true)
}

func (s *S) TestSave(c *check.C) {
	name := filepath.Join(c.MkDir(), "nx.png")
	err := Save(name, "test", Series{Name: "records", Lengths: []int{1, 2, 3}})
	c.Assert(err, check.IsNil)
	fi, err := os.Stat(name)
	c.Assert(err, check.IsNil)
	c.Check(fi.Size() > 0, check.Equals, true)
}
