package fsm

import (
	"fmt"
	"strings"
)

// Validate checks the full model against the structural invariants and
// returns the first violation found. The traversal order is fixed so the
// reported error is deterministic: states in name-sorted order first,
// then transitions in declaration order. Validation is fail-fast; it
// does not accumulate errors and has no side effects.
func Validate(m *Machine) error {
	if len(m.states) == 0 {
		return &ModelIntegrityError{Kind: KindNoStates, Entity: m.Name, Detail: "machine has no states"}
	}

	if m.defaultName != "" {
		if _, ok := m.states[m.defaultName]; !ok {
			return &ModelIntegrityError{
				Kind:   KindUnknownState,
				Entity: m.defaultName,
				Detail: fmt.Sprintf("default state %q is not a state of the machine", m.defaultName),
			}
		}
	}

	for _, state := range m.States() {
		if state.Default && state.Name != m.defaultName {
			return &ModelIntegrityError{
				Kind:   KindBadDefault,
				Entity: state.Name,
				Detail: fmt.Sprintf("state %q marked default but the machine's default is %q", state.Name, m.defaultName),
			}
		}
		if err := m.checkOutputs(state); err != nil {
			return err
		}
	}

	elseSeen := make(map[string]bool)
	for _, t := range m.transitions {
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
			if elseSeen[t.Source] {
				return &ElseBranchConflictError{State: t.Source}
			}
			elseSeen[t.Source] = true
			continue
		}
		if err := m.checkCondition(t.Condition); err != nil {
			return err
		}
	}

	return nil
}

// Lint reports the non-fatal hazards of a structurally valid model:
// output coverage gaps, states without an exit, and unreachable states.
// These describe legitimate mid-edit models, so they never fail
// generation by themselves; callers may upgrade them to errors.
// Findings are ordered by state name, then by code.
func Lint(m *Machine) []Warning {
	var warnings []Warning

	targeted := make(map[string]bool)
	exits := make(map[string]bool)
	for _, t := range m.transitions {
		targeted[t.Destination] = true
		exits[t.Source] = true
	}

	declared := m.signals.Outputs()
	for _, state := range m.States() {
		var missing []string
		for _, name := range declared {
			if _, ok := state.Outputs[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			warnings = append(warnings, Warning{
				Code:   WarnOutputGap,
				State:  state.Name,
				Detail: fmt.Sprintf("outputs %s are not assigned and will latch", strings.Join(missing, ", ")),
			})
		}
		if !exits[state.Name] {
			warnings = append(warnings, Warning{
				Code:   WarnNoExit,
				State:  state.Name,
				Detail: "no outgoing transitions; next_state is never assigned in this arm",
			})
		}
		if !targeted[state.Name] && state.Name != m.defaultName {
			warnings = append(warnings, Warning{
				Code:   WarnUnreachable,
				State:  state.Name,
				Detail: "no transition targets this state and it is not the default",
			})
		}
	}

	return warnings
}
