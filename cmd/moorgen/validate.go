package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moorgen/moorgen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check a machine definition for consistency",
	Long:  `Loads the definition, checks the structural invariants and VHDL identifier rules, and reports lint findings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Machine is valid.")
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat lint warnings (undriven outputs, missing exits) as errors")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	machine, err := moorgen.Load(path)
	if err != nil {
		return err
	}

	warnings, err := newGenerator(cmd).Validate(machine)
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return err
}
