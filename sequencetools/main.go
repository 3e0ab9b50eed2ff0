// Copyright ©2019 The sequencetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sequencetools is a collection of FASTA and FASTQ utilities.
//
// Each tool is a subcommand. Tools read a file given by flag, or standard
// input when no file is given, and write to standard output. Input files
// may be gzip compressed.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sequencetools",
	Short: "FASTA and FASTQ utilities.",
	Long: `FASTA and FASTQ utilities.

Tools read the file named by their input flag, or standard input if it is
not given. Providing both is an error.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(logged); !ok {
			log.Printf("failed: %v", err)
		}
		os.Exit(1)
	}
}
