// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/profile"
)

var hifiProfilerCmd = &cobra.Command{
	Use:   "hifi_profiler",
	Short: "Report read length statistics and a length histogram of a FASTQ file.",
	RunE:  run(hifiProfiler),
}

func init() {
	rootCmd.AddCommand(hifiProfilerCmd)
	hifiProfilerCmd.Flags().String("fastq", "", "FASTQ file to profile, can be compressed.")
	hifiProfilerCmd.Flags().Bool("human_readable", false, "Output tab separated statistics.")
	hifiProfilerCmd.Flags().Int("bin_size", profile.DefaultBinSize, "Histogram bin size.")
	addLogFlags(hifiProfilerCmd)
}

func hifiProfiler(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fastq"), fastx.FASTQ)
	if err != nil {
		return err
	}
	defer c.Close()

	p, err := profile.Run(in, flagInt(cmd, "bin_size"))
	if err != nil {
		return err
	}
	lg.Infof("read %d records in %d bins", p.Records, len(p.Histogram))

	r := p.Report()
	if flagBool(cmd, "human_readable") {
		return r.WriteTable(cmd.OutOrStdout())
	}
	return r.WriteJSON(cmd.OutOrStdout())
}
