package fsm

import "fmt"

// IntegrityKind names the invariant a ModelIntegrityError violated.
type IntegrityKind string

const (
	// KindNoStates means the machine declares no states at all.
	KindNoStates IntegrityKind = "no_states"
	// KindBadSignal means a signal declaration itself is malformed.
	KindBadSignal IntegrityKind = "bad_signal"
	// KindDuplicateName means a state or signal name is already taken.
	KindDuplicateName IntegrityKind = "duplicate_name"
	// KindUnknownSignal means a condition or output map references a
	// signal the machine does not declare.
	KindUnknownSignal IntegrityKind = "unknown_signal"
	// KindWrongRole means an output appears in a condition or an input
	// in a state's output map.
	KindWrongRole IntegrityKind = "wrong_role"
	// KindUnknownState means a transition endpoint or the default state
	// is not a member of the machine's states.
	KindUnknownState IntegrityKind = "unknown_state"
	// KindBadDefault means more than one state is marked default.
	KindBadDefault IntegrityKind = "bad_default"
	// KindBadBit means an output assignment carries a value other than 0 or 1.
	KindBadBit IntegrityKind = "bad_bit"
	// KindBadIdentifier means a name is not usable as a VHDL identifier.
	KindBadIdentifier IntegrityKind = "bad_identifier"
)

// ModelIntegrityError reports a structural invariant violation: a
// reference to a nonexistent entity, a duplicate name, or a malformed
// declaration. Entity names the offending signal, state, or machine.
type ModelIntegrityError struct {
	Kind   IntegrityKind
	Entity string
	Detail string
}

func (e *ModelIntegrityError) Error() string {
	return fmt.Sprintf("model integrity (%s): %s", e.Kind, e.Detail)
}

// ElseBranchConflictError reports more than one unconditional transition
// leaving the same state. At most one else branch may exist per source.
type ElseBranchConflictError struct {
	State string
}

func (e *ElseBranchConflictError) Error() string {
	return fmt.Sprintf("else branch conflict: state %q has more than one unconditional transition", e.State)
}

// WarningCode classifies a non-fatal hazard found by Lint.
type WarningCode string

const (
	// WarnOutputGap flags a state that does not assign every declared
	// output, leaving the missing outputs undriven (latched) in its arm.
	WarnOutputGap WarningCode = "output_gap"
	// WarnNoExit flags a state with no outgoing transitions; its arm
	// never assigns next_state.
	WarnNoExit WarningCode = "no_exit"
	// WarnUnreachable flags a non-default state that no transition
	// targets.
	WarnUnreachable WarningCode = "unreachable"
)

// Warning is a lint finding. Warnings never block generation unless the
// caller opts into strict linting.
type Warning struct {
	Code   WarningCode `json:"code"`
	State  string      `json:"state"`
	Detail string      `json:"detail"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: state %q: %s", w.Code, w.State, w.Detail)
}
