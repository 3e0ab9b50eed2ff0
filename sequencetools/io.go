// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/ncgr/sequencetools/fastx"
)

// stdinPiped is replaced in tests.
var stdinPiped = fastx.StdinPiped

// openInput opens the named input, or standard input if name is empty.
// Naming a file while standard input is piped is a usage error.
func openInput(lg *logger, name string, f fastx.Format) (*fastx.Reader, io.Closer, error) {
	rc, err := fastx.Input(name, stdinPiped())
	if err != nil {
		if errors.Cause(err) == fastx.ErrInputConflict {
			return nil, nil, errors.Wrapf(err, "refusing to read %v from %q", f, name)
		}
		return nil, nil, err
	}
	if name == "" {
		lg.Debugf("reading %v from standard input", f)
	} else {
		lg.Debugf("reading %v from %q", f, name)
	}
	return fastx.NewReader(rc, f), rc, nil
}

// output is a buffered record writer over a tool's standard output.
type output struct {
	buf *bufio.Writer
	*fastx.Writer
}

func newOutput(w io.Writer, f fastx.Format, width int) *output {
	buf := bufio.NewWriter(w)
	return &output{buf: buf, Writer: fastx.NewWriter(buf, f, width)}
}

func (o *output) Flush() error {
	return errors.Wrap(o.buf.Flush(), "failed to write output")
}
