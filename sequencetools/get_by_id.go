// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/filter"
)

var (
	getFastaByIDCmd = &cobra.Command{
		Use:   "get_fasta_by_id",
		Short: "Get FASTA records whose identifiers are listed in a targets file.",
		RunE:  run(getByID("fasta", fastx.FASTA)),
	}
	getFastqByIDCmd = &cobra.Command{
		Use:   "get_fastq_by_id",
		Short: "Get FASTQ records whose identifiers are listed in a targets file.",
		RunE:  run(getByID("fastq", fastx.FASTQ)),
	}
)

func init() {
	for _, c := range []struct {
		cmd  *cobra.Command
		flag string
	}{
		{cmd: getFastaByIDCmd, flag: "fasta"},
		{cmd: getFastqByIDCmd, flag: "fastq"},
	} {
		rootCmd.AddCommand(c.cmd)
		c.cmd.Flags().String(c.flag, "", "File to filter, can be compressed.")
		c.cmd.Flags().String("targets", "", "Targets file, one identifier per line.")
		c.cmd.MarkFlagRequired("targets")
		c.cmd.Flags().Bool("reverse", false, "Ignore records listed in the targets file.")
		addLogFlags(c.cmd)
	}
}

func getByID(flag string, f fastx.Format) func(*cobra.Command, *logger) error {
	return func(cmd *cobra.Command, lg *logger) error {
		name := flagString(cmd, "targets")
		tf, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "failed to open targets")
		}
		targets, err := filter.LoadTargets(tf)
		tf.Close()
		if err != nil {
			return err
		}
		lg.Debugf("loaded %d targets from %q", len(targets), name)

		in, c, err := openInput(lg, flagString(cmd, flag), f)
		if err != nil {
			return err
		}
		defer c.Close()

		out := newOutput(cmd.OutOrStdout(), f, 0)
		sum, err := filter.Copy(out, in, filter.ByID(targets, flagBool(cmd, "reverse")))
		if err != nil {
			return err
		}
		lg.Infof("kept %d of %d records", sum.Written, sum.Read)
		return out.Flush()
	}
}
