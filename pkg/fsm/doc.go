/*
Package fsm models Moore finite state machines: single-bit input and
output signals, states carrying output assignments, and transitions
guarded by boolean conditions over the inputs.

The model is the contract between an editing front end and the VHDL
generators in pkg/vhdl. Mutators enforce the structural invariants as
the model is edited; Validate re-checks them before generation and Lint
reports the non-fatal hazards (undriven outputs, missing exits) that are
acceptable while a machine is still being drawn.

All name-based iteration (StateNames, TransitionsFrom, SignalSet
accessors) is lexicographic, so generated artifacts depend only on the
model's content, never on declaration order.
*/
package fsm
