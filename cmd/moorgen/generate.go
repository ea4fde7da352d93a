package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moorgen/moorgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <definition>",
	Short: "Generate the VHDL description of a machine",
	Long:  `Reads a machine definition file and writes the entity/architecture VHDL to <name>.vhd (or --out).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args[0], false); err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var testbenchCmd = &cobra.Command{
	Use:   "testbench <definition>",
	Short: "Generate the VHDL testbench for a machine",
	Long:  `Reads a machine definition file and writes the testbench VHDL to testbed_<name>.vhd (or --out).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args[0], true); err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, testbenchCmd} {
		cmd.Flags().StringP("out", "o", "", `Output file ("-" for stdout; default <name>.vhd)`)
		cmd.Flags().Bool("strict", false, "Treat lint warnings (undriven outputs, missing exits) as errors")
		rootCmd.AddCommand(cmd)
	}
}

func runGenerate(cmd *cobra.Command, path string, testbench bool) error {
	machine, err := moorgen.Load(path)
	if err != nil {
		return err
	}

	gen := newGenerator(cmd)

	// Surface lint findings even when they don't block.
	warnings, err := gen.Validate(machine)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	var text, name string
	if testbench {
		name = "testbed_" + machine.Name
		text, err = gen.Testbench(machine)
	} else {
		name = machine.Name
		text, err = gen.Generate(machine)
	}
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "-" {
		fmt.Print(text)
		return nil
	}
	if out == "" {
		out = name + ".vhd"
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
