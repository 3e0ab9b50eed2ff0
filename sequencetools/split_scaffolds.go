// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/assembly"
	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/scaffold"
)

var splitScaffoldsCmd = &cobra.Command{
	Use:   "split_scaffolds",
	Short: "Break FASTA scaffolds into contigs at gaps.",
	Long: `Break FASTA scaffolds into contigs at gaps.

Each contig is named <id>_<start>-<end> using zero-based half-open
coordinates in its scaffold.`,
	RunE: run(splitScaffolds),
}

func init() {
	rootCmd.AddCommand(splitScaffoldsCmd)
	splitScaffoldsCmd.Flags().String("fasta", "", "FASTA file to split, can be compressed.")
	splitScaffoldsCmd.Flags().Int("min_gap", assembly.DefaultMinGap, "Minimum length of consecutive N's to split at.")
	addLogFlags(splitScaffoldsCmd)
}

func splitScaffolds(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fasta"), fastx.FASTA)
	if err != nil {
		return err
	}
	defer c.Close()

	minGap := flagInt(cmd, "min_gap")
	out := newOutput(cmd.OutOrStdout(), fastx.FASTA, fastx.DefaultWidth)
	var records, contigs int
	for in.Next() {
		r := in.Record()
		records++
		if len(r.Seq) == 0 {
			lg.Warningf("skipping empty record %q", r.ID)
			continue
		}
		parts, err := scaffold.Split(r, minGap)
		if err != nil {
			return err
		}
		for _, p := range parts {
			if err := out.Write(p); err != nil {
				return err
			}
		}
		contigs += len(parts)
	}
	if err := in.Err(); err != nil {
		return err
	}
	lg.Infof("split %d records into %d contigs", records, contigs)
	return out.Flush()
}
