package expr

import "fmt"

// parser is a recursive-descent parser over the lexer's token stream.
// Identifier resolution is performed during parsing: variables shadow user
// constants, user constants shadow built-in constants, and built-in function
// names are reserved outright.
type parser struct {
	lex    lexer
	cur    token
	vars   map[string]int     // declared variable name -> parameter index
	consts map[string]float64 // user constants registered via AddConstant
}

// parseSource parses the full expression text and returns the tree root.
func parseSource(src string, vars map[string]int, consts map[string]float64) (node, error) {
	p := &parser{lex: lexer{src: src}, vars: vars, consts: consts}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w at position %d: unexpected trailing input", ErrSyntax, p.cur.pos)
	}

	return root, nil
}

// advance pulls the next token into p.cur.
func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t

	return nil
}

// parseExpr handles the lowest-precedence level: addition and subtraction.
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		if err = p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binNode{op: op, l: left, r: right}
	}

	return left, nil
}

// parseTerm handles multiplication, division and modulo.
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokPercent {
		op := p.cur.kind
		if err = p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binNode{op: op, l: left, r: right}
	}

	return left, nil
}

// parseUnary handles prefix sign: -x^2 parses as -(x^2), matching the
// conventional mathematical reading.
func (p *parser) parseUnary() (node, error) {
	switch p.cur.kind {
	case tokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &negNode{x: x}, nil
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}

		return p.parseUnary()
	}

	return p.parsePower()
}

// parsePower handles '^', right-associative and binding tighter than unary
// minus on its right operand (2^-3 is legal).
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	if err = p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &binNode{op: tokCaret, l: base, r: exp}, nil
}

// parsePrimary handles literals, identifiers, calls and parentheses.
func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		n := &numNode{v: p.cur.value}
		if err := p.advance(); err != nil {
			return nil, err
		}

		return n, nil

	case tokIdent:
		name, pos := p.cur.text, p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind == tokLParen {
			return p.parseCall(name, pos)
		}

		return p.resolveIdent(name, pos)

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w at position %d: missing closing parenthesis", ErrSyntax, p.cur.pos)
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		return inner, nil
	}

	return nil, fmt.Errorf("%w at position %d: expected number, identifier or '('", ErrSyntax, p.cur.pos)
}

// parseCall parses the argument list of name(...), validating arity against
// the built-in table. p.cur is the opening parenthesis on entry.
func (p *parser) parseCall(name string, pos int) (node, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w at position %d: %q is not a function", ErrUnknownIdent, pos, name)
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var args []node
	for {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.cur.kind != tokComma {
			break
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.kind != tokRParen {
		return nil, fmt.Errorf("%w at position %d: missing ')' after arguments of %q", ErrSyntax, p.cur.pos, name)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if len(args) != fn.arity {
		return nil, fmt.Errorf("%w at position %d: %s expects %d argument(s), got %d",
			ErrSyntax, pos, name, fn.arity, len(args))
	}

	return &callNode{fn: fn, args: args}, nil
}

// resolveIdent maps a bare identifier to a variable slot or a constant value.
func (p *parser) resolveIdent(name string, pos int) (node, error) {
	if idx, ok := p.vars[name]; ok {
		return &varNode{idx: idx}, nil
	}
	if v, ok := p.consts[name]; ok {
		return &numNode{v: v}, nil
	}
	if v, ok := builtinConstants[name]; ok {
		return &numNode{v: v}, nil
	}

	return nil, fmt.Errorf("%w at position %d: %q", ErrUnknownIdent, pos, name)
}
