// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	all       bool
	verbose   bool
	wantPool  bool
	wantMeth  bool
	wantClass bool
	wantBody  bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "abcdump",
		Short: "An ActionScript Bytecode (ABC) decoder and disassembler",
		Long:  "A DoABC parser and disassembler built for malware-analysis and SWF research",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps the file",
		Long:  "Dumps interesting structures of a DoABC payload",
		Args:  cobra.MinimumNArgs(1),
		Run:   parse,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&wantPool, "pool", "", false, "Dump the constant pool")
	dumpCmd.Flags().BoolVarP(&wantMeth, "methods", "", false, "Dump method signatures")
	dumpCmd.Flags().BoolVarP(&wantClass, "classes", "", false, "Dump classes and instances")
	dumpCmd.Flags().BoolVarP(&wantBody, "bodies", "", false, "Dump disassembled method bodies")
	dumpCmd.Flags().BoolVarP(&all, "all", "", false, "Dump everything")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
