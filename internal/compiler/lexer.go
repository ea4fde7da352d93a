// Package compiler turns guard expression text into fsm condition trees.
package compiler

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent           // x, clk_ready
	TokenBit             // '0' or '1'
	TokenEquals          // =
	TokenLParen          // (
	TokenRParen          // )
	TokenAnd             // and
	TokenOr              // or
	TokenNot             // not
	TokenIllegal
)

// Token is a single token with its byte position in the input.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, %d}", t.Type, t.Literal, t.Pos)
}

// Lexer tokenizes guard expression input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

// NewLexer creates a lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: l.pos}
	switch {
	case l.ch == 0:
		tok.Type = TokenEOF
	case l.ch == '(':
		tok.Type = TokenLParen
		tok.Literal = "("
		l.readChar()
	case l.ch == ')':
		tok.Type = TokenRParen
		tok.Literal = ")"
		l.readChar()
	case l.ch == '=':
		tok.Type = TokenEquals
		tok.Literal = "="
		l.readChar()
	case l.ch == '\'':
		return l.readBit()
	case isIdentStart(l.ch):
		return l.readIdent()
	default:
		tok.Type = TokenIllegal
		tok.Literal = string(l.ch)
		l.readChar()
	}
	return tok
}

// readBit consumes a quoted bit literal: '0' or '1'.
func (l *Lexer) readBit() Token {
	tok := Token{Pos: l.pos}
	l.readChar() // opening quote
	if (l.ch != '0' && l.ch != '1') || l.peekChar() != '\'' {
		tok.Type = TokenIllegal
		tok.Literal = "'"
		return tok
	}
	tok.Type = TokenBit
	tok.Literal = string(l.ch)
	l.readChar() // bit
	l.readChar() // closing quote
	return tok
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdent consumes an identifier and classifies the keywords.
func (l *Lexer) readIdent() Token {
	tok := Token{Pos: l.pos}
	start := l.pos
	for isIdentStart(l.ch) || (l.ch >= '0' && l.ch <= '9') || l.ch == '_' {
		l.readChar()
	}
	tok.Literal = l.input[start:l.pos]
	switch tok.Literal {
	case "and":
		tok.Type = TokenAnd
	case "or":
		tok.Type = TokenOr
	case "not":
		tok.Type = TokenNot
	default:
		tok.Type = TokenIdent
	}
	return tok
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
