package compiler

import (
	"fmt"

	"github.com/moorgen/moorgen/pkg/fsm"
)

// ParseError reports where a guard expression stopped making sense.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

// ParseCondition parses guard expression text into a condition tree.
//
// The syntax is the VHDL-flavored form the generator emits: equality
// tests (x='1'), the lowercase keywords and/or/not, and parentheses. A
// bare identifier is shorthand for name='1', so "not x" means x='0'.
// or binds loosest, then and, then not.
func ParseCondition(input string) (fsm.Condition, error) {
	p := &parser{lexer: NewLexer(input)}
	p.next()

	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf("unexpected %q", p.tok.Literal)}
	}
	return cond, nil
}

type parser struct {
	lexer *Lexer
	tok   Token
}

func (p *parser) next() { p.tok = p.lexer.NextToken() }

func (p *parser) parseOr() (fsm.Condition, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = fsm.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (fsm.Condition, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = fsm.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (fsm.Condition, error) {
	if p.tok.Type == TokenNot {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return fsm.Not{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (fsm.Condition, error) {
	switch p.tok.Type {
	case TokenLParen:
		p.next()
		cond, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenRParen {
			return nil, &ParseError{Pos: p.tok.Pos, Msg: "missing closing parenthesis"}
		}
		p.next()
		return cond, nil
	case TokenIdent:
		name := p.tok.Literal
		p.next()
		if p.tok.Type != TokenEquals {
			// Bare identifier: shorthand for name='1'.
			return fsm.Equals{Signal: name, Value: fsm.High}, nil
		}
		p.next()
		if p.tok.Type != TokenBit {
			return nil, &ParseError{Pos: p.tok.Pos, Msg: "expected '0' or '1' after ="}
		}
		value := fsm.Low
		if p.tok.Literal == "1" {
			value = fsm.High
		}
		p.next()
		return fsm.Equals{Signal: name, Value: value}, nil
	case TokenEOF:
		return nil, &ParseError{Pos: p.tok.Pos, Msg: "unexpected end of expression"}
	default:
		return nil, &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf("unexpected %q", p.tok.Literal)}
	}
}
