// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/fastx"
	"github.com/ncgr/sequencetools/filter"
)

var filterFastaByLengthCmd = &cobra.Command{
	Use:   "filter_fasta_by_length",
	Short: "Keep FASTA records at least length residues long.",
	RunE:  run(filterFastaByLength),
}

func init() {
	rootCmd.AddCommand(filterFastaByLengthCmd)
	filterFastaByLengthCmd.Flags().String("fasta", "", "FASTA file to filter, can be compressed.")
	filterFastaByLengthCmd.Flags().Int("length", 1000, "Length cutoff.")
	filterFastaByLengthCmd.Flags().Bool("reverse", false, "Keep records at most length residues long.")
	addLogFlags(filterFastaByLengthCmd)
}

func filterFastaByLength(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fasta"), fastx.FASTA)
	if err != nil {
		return err
	}
	defer c.Close()

	out := newOutput(cmd.OutOrStdout(), fastx.FASTA, 0)
	sum, err := filter.Copy(out, in, filter.ByLength(flagInt(cmd, "length"), flagBool(cmd, "reverse")))
	if err != nil {
		return err
	}
	lg.Infof("kept %d of %d records", sum.Written, sum.Read)
	return out.Flush()
}
