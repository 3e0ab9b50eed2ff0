// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/convert"
	"github.com/ncgr/sequencetools/fastx"
)

var fastxConverterCmd = &cobra.Command{
	Use:   "fastx_converter",
	Short: "Convert FASTA to FASTQ or FASTQ to FASTA.",
	Long: `Convert FASTA to FASTQ or FASTQ to FASTA.

FASTA residues are given output_quality when written as FASTQ. FASTQ
qualities are dropped when written as FASTA.`,
	RunE: run(fastxConverter),
}

func init() {
	rootCmd.AddCommand(fastxConverterCmd)
	fastxConverterCmd.Flags().String("input_file", "", "Input file, FASTA or FASTQ, can be compressed.")
	fastxConverterCmd.Flags().String("input_type", "", "Input file type, fasta or fastq.")
	fastxConverterCmd.MarkFlagRequired("input_type")
	fastxConverterCmd.Flags().Int("output_quality", convert.DefaultQuality, "Quality to assign when converting FASTA to FASTQ.")
	addLogFlags(fastxConverterCmd)
}

func fastxConverter(cmd *cobra.Command, lg *logger) error {
	f, err := fastx.ParseFormat(flagString(cmd, "input_type"))
	if err != nil {
		return err
	}
	name := flagString(cmd, "input_file")
	in, c, err := openInput(lg, name, f)
	if err != nil {
		return err
	}
	defer c.Close()
	if name != "" {
		if err := convert.CheckInput(name, f); err != nil {
			return err
		}
	}

	to := convert.Target(f)
	out := newOutput(cmd.OutOrStdout(), to, fastx.DefaultWidth)
	n, err := convert.Records(out, in, flagInt(cmd, "output_quality"))
	if err != nil {
		return err
	}
	lg.Infof("converted %d records from %v to %v", n, f, to)
	return out.Flush()
}
