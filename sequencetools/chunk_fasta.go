// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ncgr/sequencetools/chunk"
	"github.com/ncgr/sequencetools/fastx"
)

var chunkFastaCmd = &cobra.Command{
	Use:   "chunk_fasta",
	Short: "Split a FASTA file into numbered chunk files.",
	Long: `Split a FASTA file into numbered chunk files.

Chunks hold chunk_size records, or approximately chunk_bytes residues if
chunk_bytes is set. Records are never split.`,
	RunE: run(chunkFasta),
}

func init() {
	rootCmd.AddCommand(chunkFastaCmd)
	chunkFastaCmd.Flags().String("fasta", "", "FASTA file to chunk, can be compressed.")
	chunkFastaCmd.Flags().Int("chunk_size", 1000, "Write N records to each file.")
	chunkFastaCmd.Flags().Int("chunk_bytes", 0, "Try to write N residues to each file.")
	chunkFastaCmd.Flags().String("chunk_dir", "./chunks", "Directory to write chunks in.")
	chunkFastaCmd.Flags().Bool("gzip_output", false, "Gzip output files.")
	addLogFlags(chunkFastaCmd)
}

func chunkFasta(cmd *cobra.Command, lg *logger) error {
	in, c, err := openInput(lg, flagString(cmd, "fasta"), fastx.FASTA)
	if err != nil {
		return err
	}
	defer c.Close()

	opt := chunk.Options{
		Dir:    flagString(cmd, "chunk_dir"),
		Format: fastx.FASTA,
		Mode:   chunk.Records,
		Size:   flagInt(cmd, "chunk_size"),
		Gzip:   flagBool(cmd, "gzip_output"),
		Width:  fastx.DefaultWidth,
	}
	if n := flagInt(cmd, "chunk_bytes"); n > 0 {
		opt.Mode = chunk.Bases
		opt.Size = n
	}
	sum, err := chunk.Write(in, opt)
	if err != nil {
		return err
	}
	lg.Infof("%v %d at a time", sum, opt.Size)
	return nil
}
