package expr

import (
	"fmt"
	"strconv"
)

// tokenKind enumerates lexical token classes produced by the lexer.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

// token is one lexical unit. pos is the byte offset of its first character,
// used in syntax diagnostics. value is set for tokNumber, text for tokIdent.
type token struct {
	kind  tokenKind
	pos   int
	text  string
	value float64
}

// lexer is a minimal single-pass scanner over the expression source.
type lexer struct {
	src string
	pos int
}

// next returns the next token, skipping ASCII whitespace.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c >= '0' && c <= '9' || c == '.':
		return l.number(start)
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}

		return token{kind: tokIdent, pos: start, text: l.src[start:l.pos]}, nil
	}

	l.pos++
	switch c {
	case '+':
		return token{kind: tokPlus, pos: start}, nil
	case '-':
		return token{kind: tokMinus, pos: start}, nil
	case '*':
		return token{kind: tokStar, pos: start}, nil
	case '/':
		return token{kind: tokSlash, pos: start}, nil
	case '%':
		return token{kind: tokPercent, pos: start}, nil
	case '^':
		return token{kind: tokCaret, pos: start}, nil
	case '(':
		return token{kind: tokLParen, pos: start}, nil
	case ')':
		return token{kind: tokRParen, pos: start}, nil
	case ',':
		return token{kind: tokComma, pos: start}, nil
	}

	return token{}, fmt.Errorf("%w at position %d: unexpected character %q", ErrSyntax, start, string(c))
}

// number scans a decimal literal with optional fraction and exponent.
func (l *lexer) number(start int) (token, error) {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	// optional exponent: e / E, optional sign, at least one digit
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			// not an exponent after all; "2e" parses as number 2 then ident e
			l.pos = mark
		}
	}

	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w at position %d: malformed number %q", ErrSyntax, start, text)
	}

	return token{kind: tokNumber, pos: start, text: text, value: v}, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// validIdent reports whether name is acceptable as a constant or variable
// identifier: [A-Za-z_][A-Za-z0-9_]*.
func validIdent(name string) bool {
	if len(name) == 0 || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}

	return true
}
