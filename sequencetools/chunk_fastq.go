// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/chunk"
	"github.com/ncgr/sequencetools/fastx"
)

var chunkFastqCmd = &cobra.Command{
	Use:   "chunk_fastq",
	Short: "Split a FASTQ file into numbered chunk files of chunk_size reads.",
	RunE:  run(chunkFastq),
}

func init() {
	rootCmd.AddCommand(chunkFastqCmd)
	chunkFastqCmd.Flags().String("fastq", "", "FASTQ file to chunk, can be compressed.")
	chunkFastqCmd.Flags().Int("chunk_size", 10000, "Write N reads to each file.")
	chunkFastqCmd.Flags().String("chunk_dir", "./chunks", "Directory to write chunks in.")
	chunkFastqCmd.Flags().Bool("gzip_output", false, "Gzip output files.")
	addLogFlags(chunkFastqCmd)
}

func chunkFastq(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fastq"), fastx.FASTQ)
	if err != nil {
		return err
	}
	defer c.Close()

	sum, err := chunk.Write(in, chunk.Options{
		Dir:    flagString(cmd, "chunk_dir"),
		Format: fastx.FASTQ,
		Mode:   chunk.Records,
		Size:   flagInt(cmd, "chunk_size"),
		First:  1,
		Gzip:   flagBool(cmd, "gzip_output"),
	})
	if err != nil {
		return err
	}
	lg.Infof("%v", sum)
	return nil
}
