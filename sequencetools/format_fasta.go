// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/filter"
)

var formatFastaCmd = &cobra.Command{
	Use:   "format_fasta",
	Short: "Rewrap FASTA sequence lines to a fixed length.",
	RunE:  run(formatFasta),
}

func init() {
	rootCmd.AddCommand(formatFastaCmd)
	formatFastaCmd.Flags().String("fasta", "", "FASTA file to format, can be compressed.")
	formatFastaCmd.Flags().Int("line_length", 80, "Sequence line length.")
	addLogFlags(formatFastaCmd)
}

func formatFasta(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fasta"), fastx.FASTA)
	if err != nil {
		return err
	}
	defer c.Close()

	out := newOutput(cmd.OutOrStdout(), fastx.FASTA, flagInt(cmd, "line_length"))
	sum, err := filter.Copy(out, in, nil)
	if err != nil {
		return err
	}
	lg.Infof("formatted %d records", sum.Written)
	return out.Flush()
}
