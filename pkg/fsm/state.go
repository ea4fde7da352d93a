package fsm

import "sort"

// State is a named Moore state carrying its output assignments.
// Outputs maps output signal names to the bit the state drives on them.
// The map may be partial: outputs a state does not list are simply not
// driven in that state's generated arm (see Lint for the hazard report).
type State struct {
	Name    string         `json:"name" yaml:"name"`
	Outputs map[string]Bit `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Default bool           `json:"default,omitempty" yaml:"default,omitempty"`
}

// OutputNames returns the names of the outputs the state assigns, in
// lexicographic order.
func (s *State) OutputNames() []string {
	names := make([]string, 0, len(s.Outputs))
	for name := range s.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transition is a guarded edge between two states, referenced by name.
// A nil Condition marks the else branch: it is always taken when the
// guarded transitions of the same source do not fire.
type Transition struct {
	Source      string    `json:"source" yaml:"source"`
	Destination string    `json:"destination" yaml:"destination"`
	Condition   Condition `json:"-" yaml:"-"`
}

// Unconditional reports whether the transition carries no guard.
func (t Transition) Unconditional() bool { return t.Condition == nil }
