package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moorgen/moorgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of moorgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moorgen version %s\n", moorgen.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
