package fsm

import (
	"fmt"
	"sort"
)

// Role distinguishes input signals from output signals.
type Role string

const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// Bit is a single binary value, 0 or 1.
type Bit uint8

const (
	Low  Bit = 0
	High Bit = 1
)

// Valid reports whether the bit is 0 or 1.
func (b Bit) Valid() bool { return b <= High }

// Flip returns the complement of the bit.
func (b Bit) Flip() Bit {
	if b == Low {
		return High
	}
	return Low
}

func (b Bit) String() string {
	if b == Low {
		return "0"
	}
	return "1"
}

// Signal is a named single-bit port of the machine.
type Signal struct {
	Name string `json:"name" yaml:"name"`
	Role Role   `json:"role" yaml:"role"`
}

// SignalSet holds the machine's input and output signals. Input and
// output names share one namespace: a name may not appear in both roles.
type SignalSet struct {
	signals map[string]Signal
}

// NewSignalSet creates an empty signal set.
func NewSignalSet() *SignalSet {
	return &SignalSet{signals: make(map[string]Signal)}
}

// Add registers a signal. It rejects empty names, roles other than
// input/output, and any name already present (in either role).
func (s *SignalSet) Add(sig Signal) error {
	if sig.Name == "" {
		return &ModelIntegrityError{Kind: KindBadSignal, Entity: sig.Name, Detail: "signal name is empty"}
	}
	if sig.Role != RoleInput && sig.Role != RoleOutput {
		return &ModelIntegrityError{Kind: KindBadSignal, Entity: sig.Name, Detail: fmt.Sprintf("unknown role %q", sig.Role)}
	}
	if existing, ok := s.signals[sig.Name]; ok {
		return &ModelIntegrityError{
			Kind:   KindDuplicateName,
			Entity: sig.Name,
			Detail: fmt.Sprintf("signal %q already declared as %s", sig.Name, existing.Role),
		}
	}
	s.signals[sig.Name] = sig
	return nil
}

// Get returns the signal with the given name, if declared.
func (s *SignalSet) Get(name string) (Signal, bool) {
	sig, ok := s.signals[name]
	return sig, ok
}

// Inputs returns the input signal names in lexicographic order.
func (s *SignalSet) Inputs() []string { return s.names(RoleInput) }

// Outputs returns the output signal names in lexicographic order.
func (s *SignalSet) Outputs() []string { return s.names(RoleOutput) }

// Len returns the total number of declared signals.
func (s *SignalSet) Len() int { return len(s.signals) }

func (s *SignalSet) names(role Role) []string {
	names := make([]string, 0, len(s.signals))
	for name, sig := range s.signals {
		if sig.Role == role {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
