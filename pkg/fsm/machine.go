package fsm

import (
	"fmt"
	"sort"
)

// Machine aggregates the signal set, states, and transitions of a Moore
// finite state machine. Mutation happens through the Add/Remove methods,
// which enforce the structural invariants as the model is edited;
// Validate re-checks the full model before generation.
//
// Generation-time iteration is deterministic and name-based: declaration
// order of states and transitions never influences output.
type Machine struct {
	Name string

	signals     *SignalSet
	states      map[string]*State
	transitions []Transition // declaration order
	defaultName string
}

// New creates an empty machine with the given name. The name becomes the
// generated entity's name.
func New(name string) *Machine {
	return &Machine{
		Name:    name,
		signals: NewSignalSet(),
		states:  make(map[string]*State),
	}
}

// Signals returns the machine's signal set.
func (m *Machine) Signals() *SignalSet { return m.signals }

// AddInput declares an input signal.
func (m *Machine) AddInput(name string) error {
	return m.signals.Add(Signal{Name: name, Role: RoleInput})
}

// AddOutput declares an output signal.
func (m *Machine) AddOutput(name string) error {
	return m.signals.Add(Signal{Name: name, Role: RoleOutput})
}

// AddState adds a state. The state's output assignments must reference
// declared output signals with bit values; at most one state may carry
// the default mark.
func (m *Machine) AddState(s State) error {
	if s.Name == "" {
		return &ModelIntegrityError{Kind: KindUnknownState, Entity: s.Name, Detail: "state name is empty"}
	}
	if _, ok := m.states[s.Name]; ok {
		return &ModelIntegrityError{
			Kind:   KindDuplicateName,
			Entity: s.Name,
			Detail: fmt.Sprintf("state %q already declared", s.Name),
		}
	}
	if s.Default && m.defaultName != "" {
		return &ModelIntegrityError{
			Kind:   KindBadDefault,
			Entity: s.Name,
			Detail: fmt.Sprintf("state %q marked default but %q already is", s.Name, m.defaultName),
		}
	}
	if err := m.checkOutputs(&s); err != nil {
		return err
	}
	stored := s
	m.states[s.Name] = &stored
	if s.Default {
		m.defaultName = s.Name
	}
	return nil
}

// AddTransition adds a guarded edge. Both endpoints must be existing
// states, the guard may only read declared inputs, and a source may have
// at most one unconditional transition.
func (m *Machine) AddTransition(t Transition) error {
	if _, ok := m.states[t.Source]; !ok {
		return &ModelIntegrityError{
			Kind:   KindUnknownState,
			Entity: t.Source,
			Detail: fmt.Sprintf("transition source %q is not a state of the machine", t.Source),
		}
	}
	if _, ok := m.states[t.Destination]; !ok {
		return &ModelIntegrityError{
			Kind:   KindUnknownState,
			Entity: t.Destination,
			Detail: fmt.Sprintf("transition destination %q is not a state of the machine", t.Destination),
		}
	}
	if t.Condition == nil {
		for _, existing := range m.transitions {
			if existing.Source == t.Source && existing.Unconditional() {
				return &ElseBranchConflictError{State: t.Source}
			}
		}
	} else if err := m.checkCondition(t.Condition); err != nil {
		return err
	}
	m.transitions = append(m.transitions, t)
	return nil
}

// RemoveState deletes a state and, atomically, every transition that
// uses it as source or destination. Removing an unknown state is a no-op.
func (m *Machine) RemoveState(name string) {
	if _, ok := m.states[name]; !ok {
		return
	}
	delete(m.states, name)
	if m.defaultName == name {
		m.defaultName = ""
	}
	kept := m.transitions[:0]
	for _, t := range m.transitions {
		if t.Source != name && t.Destination != name {
			kept = append(kept, t)
		}
	}
	m.transitions = kept
}

// State returns the state with the given name.
func (m *Machine) State(name string) (*State, bool) {
	s, ok := m.states[name]
	return s, ok
}

// DefaultState returns the state marked default, if any.
func (m *Machine) DefaultState() (*State, bool) {
	if m.defaultName == "" {
		return nil, false
	}
	return m.states[m.defaultName], true
}

// StateNames returns every state name in lexicographic order.
func (m *Machine) StateNames() []string {
	names := make([]string, 0, len(m.states))
	for name := range m.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States returns the states in lexicographic name order.
func (m *Machine) States() []*State {
	names := m.StateNames()
	states := make([]*State, len(names))
	for i, name := range names {
		states[i] = m.states[name]
	}
	return states
}

// Transitions returns every transition in declaration order.
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, len(m.transitions))
	copy(out, m.transitions)
	return out
}

// TransitionsFrom returns the transitions leaving a state in evaluation
// order: lexicographic by destination name, with the unconditional
// transition (if any) last regardless of its destination. This ordering
// is what the generator turns into the if/elsif chain.
func (m *Machine) TransitionsFrom(source string) []Transition {
	var out []Transition
	for _, t := range m.transitions {
		if t.Source == source {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Unconditional() != out[j].Unconditional() {
			return out[j].Unconditional()
		}
		return out[i].Destination < out[j].Destination
	})
	return out
}

func (m *Machine) checkOutputs(s *State) error {
	for _, name := range s.OutputNames() {
		sig, ok := m.signals.Get(name)
		if !ok {
			return &ModelIntegrityError{
				Kind:   KindUnknownSignal,
				Entity: name,
				Detail: fmt.Sprintf("state %q assigns undeclared signal %q", s.Name, name),
			}
		}
		if sig.Role != RoleOutput {
			return &ModelIntegrityError{
				Kind:   KindWrongRole,
				Entity: name,
				Detail: fmt.Sprintf("state %q assigns %s signal %q; only outputs may be assigned", s.Name, sig.Role, name),
			}
		}
		if !s.Outputs[name].Valid() {
			return &ModelIntegrityError{
				Kind:   KindBadBit,
				Entity: name,
				Detail: fmt.Sprintf("state %q assigns %q a value other than 0 or 1", s.Name, name),
			}
		}
	}
	return nil
}

func (m *Machine) checkCondition(c Condition) error {
	for _, name := range c.Inputs() {
		sig, ok := m.signals.Get(name)
		if !ok {
			return &ModelIntegrityError{
				Kind:   KindUnknownSignal,
				Entity: name,
				Detail: fmt.Sprintf("condition reads undeclared signal %q", name),
			}
		}
		if sig.Role != RoleInput {
			return &ModelIntegrityError{
				Kind:   KindWrongRole,
				Entity: name,
				Detail: fmt.Sprintf("condition reads %s signal %q; only inputs may be read", sig.Role, name),
			}
		}
	}
	return nil
}
