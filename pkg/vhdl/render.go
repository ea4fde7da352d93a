package vhdl

import (
	"fmt"

	"github.com/moorgen/moorgen/pkg/fsm"
)

// Operator precedence for parenthesization decisions. not and and bind
// tighter than or; a sub-expression is wrapped only when its operator
// binds looser than the enclosing one.
const (
	precNone = iota
	precOr
	precAnd
	precNot
)

// RenderCondition renders a guard condition as a VHDL boolean
// expression. Rendering is pure and total over well-formed trees, and
// identical trees always produce byte-identical text. The top level is
// never wrapped in parentheses.
//
// Equality leaves render as name='bit'. A negated equality folds into
// the complementary test (not x='1' becomes x='0'); any other negation
// renders as not (...), which resets precedence inside the parentheses.
func RenderCondition(c fsm.Condition) string {
	return renderCondition(c, precNone)
}

func renderCondition(c fsm.Condition, enclosing int) string {
	switch n := c.(type) {
	case fsm.Equals:
		return fmt.Sprintf("%s='%s'", n.Signal, n.Value)
	case fsm.Not:
		if eq, ok := n.Operand.(fsm.Equals); ok {
			return fmt.Sprintf("%s='%s'", eq.Signal, eq.Value.Flip())
		}
		return fmt.Sprintf("not (%s)", renderCondition(n.Operand, precNone))
	case fsm.And:
		expr := renderCondition(n.Left, precAnd) + " and " + renderCondition(n.Right, precAnd)
		if precAnd < enclosing {
			return "(" + expr + ")"
		}
		return expr
	case fsm.Or:
		expr := renderCondition(n.Left, precOr) + " or " + renderCondition(n.Right, precOr)
		if precOr < enclosing {
			return "(" + expr + ")"
		}
		return expr
	}
	// Unreachable for the sealed variant set.
	return ""
}
