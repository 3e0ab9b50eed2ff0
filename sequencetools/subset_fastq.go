// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/filter"
)

var subsetFastqCmd = &cobra.Command{
	Use:   "subset_fastq",
	Short: "Write every subset-th read of a FASTQ file.",
	RunE:  run(subsetFastq),
}

func init() {
	rootCmd.AddCommand(subsetFastqCmd)
	subsetFastqCmd.Flags().String("fastq", "", "FASTQ file to subset, can be compressed.")
	subsetFastqCmd.Flags().Int("subset", 10, "Take every N reads.")
	addLogFlags(subsetFastqCmd)
}

func subsetFastq(cmd *cobra.Command, lg *logger) error {
	keep, err := filter.Every(flagInt(cmd, "subset"))
	if err != nil {
		return err
	}
	in, c, err := openInput(lg, flagString(cmd, "fastq"), fastx.FASTQ)
	if err != nil {
		return err
	}
	defer c.Close()

	out := newOutput(cmd.OutOrStdout(), fastx.FASTQ, 0)
	sum, err := filter.Copy(out, in, keep)
	if err != nil {
		return err
	}
	lg.Infof("Output %d reads", sum.Written)
	return out.Flush()
}
