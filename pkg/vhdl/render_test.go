package vhdl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moorgen/moorgen/pkg/fsm"
	"github.com/moorgen/moorgen/pkg/vhdl"
)

func eq(name string, v fsm.Bit) fsm.Equals {
	return fsm.Equals{Signal: name, Value: v}
}

func TestRenderCondition(t *testing.T) {
	cases := []struct {
		name string
		cond fsm.Condition
		want string
	}{
		{
			name: "Equals High",
			cond: eq("x", fsm.High),
			want: "x='1'",
		},
		{
			name: "Equals Low",
			cond: eq("y", fsm.Low),
			want: "y='0'",
		},
		{
			name: "And",
			cond: fsm.And{Left: eq("x", fsm.High), Right: eq("y", fsm.Low)},
			want: "x='1' and y='0'",
		},
		{
			name: "Or",
			cond: fsm.Or{Left: eq("x", fsm.Low), Right: eq("y", fsm.High)},
			want: "x='0' or y='1'",
		},
		{
			name: "Or Under And Is Wrapped",
			cond: fsm.And{
				Left:  fsm.Or{Left: eq("a", fsm.High), Right: eq("b", fsm.High)},
				Right: eq("c", fsm.Low),
			},
			want: "(a='1' or b='1') and c='0'",
		},
		{
			name: "And Under Or Is Bare",
			cond: fsm.Or{
				Left:  fsm.And{Left: eq("a", fsm.High), Right: eq("b", fsm.High)},
				Right: eq("c", fsm.Low),
			},
			want: "a='1' and b='1' or c='0'",
		},
		{
			name: "Not Equals Folds",
			cond: fsm.Not{Operand: eq("x", fsm.High)},
			want: "x='0'",
		},
		{
			name: "Not Equals Folds Back",
			cond: fsm.Not{Operand: eq("x", fsm.Low)},
			want: "x='1'",
		},
		{
			name: "Not Complex",
			cond: fsm.Not{Operand: fsm.Or{Left: eq("a", fsm.High), Right: eq("b", fsm.High)}},
			want: "not (a='1' or b='1')",
		},
		{
			name: "Not Resets Precedence Inside Parens",
			cond: fsm.And{
				Left:  fsm.Not{Operand: fsm.Or{Left: eq("a", fsm.High), Right: eq("b", fsm.High)}},
				Right: eq("c", fsm.High),
			},
			want: "not (a='1' or b='1') and c='1'",
		},
		{
			name: "Nested Same Operator Stays Flat",
			cond: fsm.Or{
				Left:  fsm.Or{Left: eq("a", fsm.High), Right: eq("b", fsm.High)},
				Right: eq("c", fsm.High),
			},
			want: "a='1' or b='1' or c='1'",
		},
		{
			name: "Double Negation",
			cond: fsm.Not{Operand: fsm.Not{Operand: fsm.And{
				Left:  eq("a", fsm.High),
				Right: eq("b", fsm.Low),
			}}},
			want: "not (not (a='1' and b='0'))",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vhdl.RenderCondition(tc.cond))
		})
	}
}

func TestRenderCondition_Deterministic(t *testing.T) {
	c := fsm.Or{
		Left: fsm.And{
			Left:  fsm.Not{Operand: eq("a", fsm.High)},
			Right: fsm.Or{Left: eq("b", fsm.Low), Right: eq("c", fsm.High)},
		},
		Right: eq("d", fsm.Low),
	}
	first := vhdl.RenderCondition(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, vhdl.RenderCondition(c))
	}
	assert.Equal(t, "a='0' and (b='0' or c='1') or d='0'", first)
}
