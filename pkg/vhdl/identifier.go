package vhdl

import (
	"fmt"
	"strings"

	"github.com/moorgen/moorgen/pkg/fsm"
)

// reservedWords is the VHDL-93 reserved word list. VHDL identifiers are
// case-insensitive, so membership is checked on the lowercased name.
var reservedWords = map[string]struct{}{
	"abs": {}, "access": {}, "after": {}, "alias": {}, "all": {}, "and": {},
	"architecture": {}, "array": {}, "assert": {}, "attribute": {}, "begin": {},
	"block": {}, "body": {}, "buffer": {}, "bus": {}, "case": {}, "component": {},
	"configuration": {}, "constant": {}, "disconnect": {}, "downto": {}, "else": {},
	"elsif": {}, "end": {}, "entity": {}, "exit": {}, "file": {}, "for": {},
	"function": {}, "generate": {}, "generic": {}, "group": {}, "guarded": {},
	"if": {}, "impure": {}, "in": {}, "inertial": {}, "inout": {}, "is": {},
	"label": {}, "library": {}, "linkage": {}, "literal": {}, "loop": {},
	"map": {}, "mod": {}, "nand": {}, "new": {}, "next": {}, "nor": {}, "not": {},
	"null": {}, "of": {}, "on": {}, "open": {}, "or": {}, "others": {}, "out": {},
	"package": {}, "port": {}, "postponed": {}, "procedure": {}, "process": {},
	"pure": {}, "range": {}, "record": {}, "register": {}, "reject": {}, "rem": {},
	"report": {}, "return": {}, "rol": {}, "ror": {}, "select": {}, "severity": {},
	"shared": {}, "signal": {}, "sla": {}, "sll": {}, "sra": {}, "srl": {},
	"subtype": {}, "then": {}, "to": {}, "transport": {}, "type": {},
	"unaffected": {}, "units": {}, "until": {}, "use": {}, "variable": {},
	"wait": {}, "when": {}, "while": {}, "with": {}, "xnor": {}, "xor": {},
}

// CheckIdentifier reports whether name is usable as a VHDL basic
// identifier: a letter first, then letters, digits, or underscores, and
// not a reserved word. Identifiers that pass are emitted verbatim.
func CheckIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier is empty")
	}
	for i, r := range name {
		switch {
		case isLetter(r):
		case i > 0 && (r == '_' || isDigit(r)):
		default:
			return fmt.Errorf("identifier %q contains %q at position %d", name, r, i)
		}
	}
	if _, ok := reservedWords[strings.ToLower(name)]; ok {
		return fmt.Errorf("identifier %q is a VHDL reserved word", name)
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// checkIdentifiers runs CheckIdentifier over every name the generators
// will splice into VHDL text: the machine name, signals, and states.
// Fixed control port names are rejected as signal names since they would
// collide in the port list.
func checkIdentifiers(m *fsm.Machine) error {
	if err := CheckIdentifier(m.Name); err != nil {
		return &fsm.ModelIntegrityError{Kind: fsm.KindBadIdentifier, Entity: m.Name, Detail: err.Error()}
	}
	names := append(m.Signals().Inputs(), m.Signals().Outputs()...)
	for _, name := range names {
		if name == portClock || name == portClockEnable {
			return &fsm.ModelIntegrityError{
				Kind:   fsm.KindBadIdentifier,
				Entity: name,
				Detail: fmt.Sprintf("signal %q collides with a control port", name),
			}
		}
		if err := CheckIdentifier(name); err != nil {
			return &fsm.ModelIntegrityError{Kind: fsm.KindBadIdentifier, Entity: name, Detail: err.Error()}
		}
	}
	for _, name := range m.StateNames() {
		if err := CheckIdentifier(name); err != nil {
			return &fsm.ModelIntegrityError{Kind: fsm.KindBadIdentifier, Entity: name, Detail: err.Error()}
		}
	}
	return nil
}
