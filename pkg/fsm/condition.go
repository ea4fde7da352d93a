package fsm

import "sort"

// Condition is a boolean guard over input signals. A transition carrying
// a nil Condition is unconditional and acts as the else branch of its
// source state.
//
// The tree is a sealed variant set: Equals is the only leaf, And/Or/Not
// the only combinators. Trees are immutable once built and owned by the
// transition that carries them.
type Condition interface {
	// Inputs returns the names of the signals the condition reads,
	// sorted and deduplicated.
	Inputs() []string

	isCondition()
}

// Equals tests a single input signal against a bit literal.
type Equals struct {
	Signal string
	Value  Bit
}

// And is the conjunction of two conditions.
type And struct {
	Left, Right Condition
}

// Or is the disjunction of two conditions.
type Or struct {
	Left, Right Condition
}

// Not negates a condition.
type Not struct {
	Operand Condition
}

func (Equals) isCondition() {}
func (And) isCondition()    {}
func (Or) isCondition()     {}
func (Not) isCondition()    {}

func (e Equals) Inputs() []string { return []string{e.Signal} }

func (a And) Inputs() []string { return mergeInputs(a.Left, a.Right) }

func (o Or) Inputs() []string { return mergeInputs(o.Left, o.Right) }

func (n Not) Inputs() []string { return n.Operand.Inputs() }

func mergeInputs(conds ...Condition) []string {
	seen := make(map[string]struct{})
	for _, c := range conds {
		for _, name := range c.Inputs() {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EqualConditions reports whether two condition trees are structurally
// identical. Both nil counts as equal.
func EqualConditions(a, b Condition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Equals:
		y, ok := b.(Equals)
		return ok && x == y
	case And:
		y, ok := b.(And)
		return ok && EqualConditions(x.Left, y.Left) && EqualConditions(x.Right, y.Right)
	case Or:
		y, ok := b.(Or)
		return ok && EqualConditions(x.Left, y.Left) && EqualConditions(x.Right, y.Right)
	case Not:
		y, ok := b.(Not)
		return ok && EqualConditions(x.Operand, y.Operand)
	}
	return false
}
