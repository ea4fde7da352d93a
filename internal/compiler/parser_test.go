package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moorgen/moorgen/internal/compiler"
	"github.com/moorgen/moorgen/pkg/fsm"
)

func TestParseCondition(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  fsm.Condition
	}{
		{
			name:  "Equality",
			input: "x='1'",
			want:  fsm.Equals{Signal: "x", Value: fsm.High},
		},
		{
			name:  "Equality Low",
			input: "y='0'",
			want:  fsm.Equals{Signal: "y", Value: fsm.Low},
		},
		{
			name:  "Bare Identifier",
			input: "ready",
			want:  fsm.Equals{Signal: "ready", Value: fsm.High},
		},
		{
			name:  "Not Bare Identifier",
			input: "not x",
			want:  fsm.Not{Operand: fsm.Equals{Signal: "x", Value: fsm.High}},
		},
		{
			name:  "And",
			input: "x='1' and y='0'",
			want: fsm.And{
				Left:  fsm.Equals{Signal: "x", Value: fsm.High},
				Right: fsm.Equals{Signal: "y", Value: fsm.Low},
			},
		},
		{
			name:  "Or Binds Looser Than And",
			input: "a='1' or b='1' and c='0'",
			want: fsm.Or{
				Left: fsm.Equals{Signal: "a", Value: fsm.High},
				Right: fsm.And{
					Left:  fsm.Equals{Signal: "b", Value: fsm.High},
					Right: fsm.Equals{Signal: "c", Value: fsm.Low},
				},
			},
		},
		{
			name:  "Parentheses Override",
			input: "(a='1' or b='1') and c='0'",
			want: fsm.And{
				Left: fsm.Or{
					Left:  fsm.Equals{Signal: "a", Value: fsm.High},
					Right: fsm.Equals{Signal: "b", Value: fsm.High},
				},
				Right: fsm.Equals{Signal: "c", Value: fsm.Low},
			},
		},
		{
			name:  "Not Binds Tightest",
			input: "not a and b",
			want: fsm.And{
				Left:  fsm.Not{Operand: fsm.Equals{Signal: "a", Value: fsm.High}},
				Right: fsm.Equals{Signal: "b", Value: fsm.High},
			},
		},
		{
			name:  "Not Over Parenthesized Group",
			input: "not (a='1' or b='1')",
			want: fsm.Not{Operand: fsm.Or{
				Left:  fsm.Equals{Signal: "a", Value: fsm.High},
				Right: fsm.Equals{Signal: "b", Value: fsm.High},
			}},
		},
		{
			name:  "Left Associative Or",
			input: "a or b or c",
			want: fsm.Or{
				Left: fsm.Or{
					Left:  fsm.Equals{Signal: "a", Value: fsm.High},
					Right: fsm.Equals{Signal: "b", Value: fsm.High},
				},
				Right: fsm.Equals{Signal: "c", Value: fsm.High},
			},
		},
		{
			name:  "Underscored Identifier",
			input: "clk_ready='1'",
			want:  fsm.Equals{Signal: "clk_ready", Value: fsm.High},
		},
		{
			name:  "Whitespace Tolerant",
			input: "  x = '1'   and\ty = '0' ",
			want: fsm.And{
				Left:  fsm.Equals{Signal: "x", Value: fsm.High},
				Right: fsm.Equals{Signal: "y", Value: fsm.Low},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := compiler.ParseCondition(tc.input)
			require.NoError(t, err)
			assert.True(t, fsm.EqualConditions(tc.want, got), "got %#v", got)
		})
	}
}

func TestParseCondition_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Missing Close Paren", "(x='1'"},
		{"Bad Bit", "x='2'"},
		{"Missing Bit", "x="},
		{"Trailing Garbage", "x='1' y='0'"},
		{"Dangling Operator", "x='1' and"},
		{"Illegal Character", "x & y"},
		{"Unterminated Quote", "x='1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compiler.ParseCondition(tc.input)
			var parseErr *compiler.ParseError
			require.ErrorAs(t, err, &parseErr, "input %q", tc.input)
		})
	}
}

func TestParseCondition_ErrorPosition(t *testing.T) {
	_, err := compiler.ParseCondition("x='1' and ='0'")
	var parseErr *compiler.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 10, parseErr.Pos)
}

func TestLexer(t *testing.T) {
	l := compiler.NewLexer("x='1' and not (y)")
	want := []compiler.Token{
		{Type: compiler.TokenIdent, Literal: "x", Pos: 0},
		{Type: compiler.TokenEquals, Literal: "=", Pos: 1},
		{Type: compiler.TokenBit, Literal: "1", Pos: 2},
		{Type: compiler.TokenAnd, Literal: "and", Pos: 6},
		{Type: compiler.TokenNot, Literal: "not", Pos: 10},
		{Type: compiler.TokenLParen, Literal: "(", Pos: 14},
		{Type: compiler.TokenIdent, Literal: "y", Pos: 15},
		{Type: compiler.TokenRParen, Literal: ")", Pos: 16},
		{Type: compiler.TokenEOF, Pos: 17},
	}
	for _, w := range want {
		assert.Equal(t, w, l.NextToken())
	}
}
