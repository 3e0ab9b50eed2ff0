// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Level is a logging severity.
type Level int

const (
	Debug    Level = 10
	Info     Level = 20
	Warning  Level = 30
	Error    Level = 40
	Critical Level = 50
)

var levelNames = map[Level]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Warning:  "WARNING",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// parseLevel returns the named level. Unknown names give Info and false.
func parseLevel(s string) (Level, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == s {
			return l, true
		}
	}
	return Info, false
}

// logger writes messages at or above its level.
type logger struct {
	name  string
	level Level
	l     *log.Logger
}

func newLogger(w io.Writer, name string, level Level) *logger {
	return &logger{name: name, level: level, l: log.New(w, "", log.LstdFlags)}
}

func (lg *logger) logf(l Level, format string, args ...interface{}) {
	if l < lg.level {
		return
	}
	lg.l.Printf("%s|[%v]: %s", lg.name, l, fmt.Sprintf(format, args...))
}

func (lg *logger) Debugf(format string, args ...interface{})   { lg.logf(Debug, format, args...) }
func (lg *logger) Infof(format string, args ...interface{})    { lg.logf(Info, format, args...) }
func (lg *logger) Warningf(format string, args ...interface{}) { lg.logf(Warning, format, args...) }
func (lg *logger) Errorf(format string, args ...interface{})   { lg.logf(Error, format, args...) }

// logged marks an error that has already been written to a tool log.
type logged struct{ error }

// addLogFlags adds the logging flags shared by every tool.
func addLogFlags(cmd *cobra.Command) {
	cmd.Flags().String("log_file", "./"+cmd.Name()+".log", "File to write log to.")
	cmd.Flags().String("log_level", "INFO", "Log level: DEBUG, INFO, WARNING, ERROR, CRITICAL.")
}

// run returns a cobra RunE function that opens the tool log named by the
// log flags of cmd and calls fn. A returned error is logged before being
// passed back to cobra.
func run(fn func(cmd *cobra.Command, lg *logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		name := flagString(cmd, "log_file")
		f, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		defer f.Close()

		level, ok := parseLevel(flagString(cmd, "log_level"))
		lg := newLogger(io.MultiWriter(cmd.ErrOrStderr(), f), cmd.Name(), level)
		if !ok {
			lg.Warningf("unknown log level %q, using %v", flagString(cmd, "log_level"), level)
		}

		err = fn(cmd, lg)
		if err != nil {
			lg.logf(Critical, "%v", err)
			return logged{err}
		}
		return nil
	}
}

func flagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(err)
	}
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}
	return v
}
