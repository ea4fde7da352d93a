package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moorgen/moorgen"
	"github.com/moorgen/moorgen/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "moorgen",
	Short: "Moorgen generates VHDL from Moore finite state machine definitions",
	Long:  `Moorgen reads a Moore FSM definition (YAML or JSON) and emits a synthesizable VHDL description and a matching testbench.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return logging.New(l)
}

func newGenerator(cmd *cobra.Command) *moorgen.Generator {
	opts := []moorgen.Option{moorgen.WithLogger(newLogger(cmd))}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts = append(opts, moorgen.WithStrictLint())
	}
	return moorgen.New(opts...)
}
