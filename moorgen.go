package moorgen

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/moorgen/moorgen/internal/loader"
	"github.com/moorgen/moorgen/pkg/fsm"
	"github.com/moorgen/moorgen/pkg/vhdl"
)

// Generator is the high-level entry point for the moorgen library. It
// wraps validation, linting, and the VHDL generators behind a single
// configurable front.
type Generator struct {
	logger *slog.Logger
	strict bool
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithStrictLint upgrades lint warnings (output coverage gaps, missing
// exits, unreachable states) to hard errors before generation. The
// default keeps them advisory, matching mid-edit models.
func WithStrictLint() Option {
	return func(g *Generator) {
		g.strict = true
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Load reads a machine definition file (YAML or JSON by extension).
func Load(path string) (*fsm.Machine, error) {
	return loader.Load(path)
}

// Validate checks the machine and returns its lint findings. The error
// is the first structural violation (nil for a valid model); warnings
// are returned either way so callers can surface them next to errors.
func (g *Generator) Validate(m *fsm.Machine) ([]fsm.Warning, error) {
	warnings := fsm.Lint(m)
	if err := vhdl.Check(m); err != nil {
		g.logger.Debug("validation failed", "machine", m.Name, "error", err)
		return warnings, err
	}
	if g.strict && len(warnings) > 0 {
		return warnings, &LintError{Warnings: warnings}
	}
	return warnings, nil
}

// Generate renders the machine's VHDL description.
func (g *Generator) Generate(m *fsm.Machine) (string, error) {
	if err := g.gate(m); err != nil {
		return "", err
	}
	text, err := vhdl.Generate(m)
	if err != nil {
		return "", err
	}
	g.logger.Debug("generated fsm", "machine", m.Name, "bytes", len(text))
	return text, nil
}

// Testbench renders the machine's simulation harness.
func (g *Generator) Testbench(m *fsm.Machine) (string, error) {
	if err := g.gate(m); err != nil {
		return "", err
	}
	text, err := vhdl.GenerateTestbench(m)
	if err != nil {
		return "", err
	}
	g.logger.Debug("generated testbench", "machine", m.Name, "bytes", len(text))
	return text, nil
}

// gate applies strict linting ahead of generation when enabled.
func (g *Generator) gate(m *fsm.Machine) error {
	if !g.strict {
		return nil
	}
	if warnings := fsm.Lint(m); len(warnings) > 0 {
		return &LintError{Warnings: warnings}
	}
	return nil
}

// LintError is returned in strict mode when an otherwise valid model
// carries lint findings.
type LintError struct {
	Warnings []fsm.Warning
}

func (e *LintError) Error() string {
	findings := make([]string, len(e.Warnings))
	for i, w := range e.Warnings {
		findings[i] = w.String()
	}
	return fmt.Sprintf("strict lint: %s", strings.Join(findings, "; "))
}
