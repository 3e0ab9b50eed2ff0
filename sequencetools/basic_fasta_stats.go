// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/assembly"
	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/nxplot"
)

var basicFastaStatsCmd = &cobra.Command{
	Use:   "basic_fasta_stats",
	Short: "Report contig, scaffold and gap statistics of a FASTA file.",
	Long: `Report contig, scaffold and gap statistics of a FASTA file.

A run of at least min_gap N residues is a gap. Records containing a gap are
scaffolds and the residues between gaps are contigs. Statistics are written
as a JSON object, or as tab separated lines with --human_readable.`,
	RunE: run(basicFastaStats),
}

func init() {
	rootCmd.AddCommand(basicFastaStatsCmd)
	basicFastaStatsCmd.Flags().String("fasta", "", "FASTA file to read, can be compressed.")
	basicFastaStatsCmd.Flags().Int("min_gap", assembly.DefaultMinGap, "Minimum length of consecutive N's to consider a gap and create a scaffold.")
	basicFastaStatsCmd.Flags().Bool("classic", false, "Output statistics with GAEMR like keys.")
	basicFastaStatsCmd.Flags().Bool("human_readable", false, "Output tab separated statistics.")
	basicFastaStatsCmd.Flags().String("nx_plot", "", "Write Nx curves to this image file (.png or .svg).")
	addLogFlags(basicFastaStatsCmd)
}

func basicFastaStats(cmd *cobra.Command, lg *logger) error {
	name := flagString(cmd, "fasta")
	in, c, err := openInput(lg, name, fastx.FASTA)
	if err != nil {
		return err
	}
	defer c.Close()

	m, acc, err := assembly.Run(in, flagInt(cmd, "min_gap"))
	if err != nil {
		return errors.Wrap(err, "failed to read FASTA")
	}
	lg.Infof("read %d records: %d contigs, %d gaps, %d scaffolds", m.Records, m.Contigs, m.Gaps, m.Scaffolds)

	if plot := flagString(cmd, "nx_plot"); plot != "" {
		title := name
		if title == "" {
			title = "stdin"
		}
		if err := nxplot.Save(plot, title, nxplot.FromAccumulator(acc)...); err != nil {
			return err
		}
		lg.Infof("wrote Nx plot to %q", plot)
	}

	r := m.Report()
	if flagBool(cmd, "classic") {
		r = assembly.Classic(m)
	}
	if flagBool(cmd, "human_readable") {
		return r.WriteTable(cmd.OutOrStdout())
	}
	return r.WriteJSON(cmd.OutOrStdout())
}
