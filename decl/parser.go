package decl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/scanner"
	"modernc.org/token"
)

// Parser parses declaration lines into Methods. It resolves native type
// names through a shared, read-only bridge.Registry.
type Parser struct {
	reg *bridge.Registry
}

// NewParser returns a Parser resolving types through reg.
func NewParser(reg *bridge.Registry) *Parser {
	return &Parser{reg: reg}
}

// ParseParam parses one trimmed parameter fragment such as "int count"
// or "const float points[]".
func (p *Parser) ParseParam(fragment string) (Param, error) {
	toks := scanner.Tokenize(fragment)
	return p.parseParam(toks[:len(toks)-1], token.Position{Line: 1})
}

// ParseMethod parses a declaration line of the form
//
//	<prefix> <returnType> <name>(<param>, ...);
//
// Anything after the closing ';' is ignored.
func (p *Parser) ParseMethod(prefix, line string) (*Method, error) {
	return p.parseMethod(prefix, line, token.Position{Line: 1})
}

// parseMethod parses line; at carries the filename, line and offset of
// the first byte of line, token columns are added to it.
func (p *Parser) parseMethod(prefix, line string, at token.Position) (*Method, error) {
	d := &declParser{toks: scanner.Tokenize(line), at: at}

	head := d.next()
	if head.Kind != scanner.Ident || head.Text != prefix {
		return nil, d.errorf(head, "expected %q at start of declaration, found %s", prefix, head)
	}

	// <returnType> <name> is a run of identifiers and '*' up to '('.
	start := d.pos
	for d.peek().Kind == scanner.Ident || d.peek().Kind == scanner.Star {
		d.next()
	}
	typeAndName := d.toks[start:d.pos]
	open := d.next()
	if open.Kind != scanner.LParen {
		return nil, d.errorf(open, "expected '(' after method name, found %s", open)
	}
	if len(typeAndName) < 2 || typeAndName[len(typeAndName)-1].Kind != scanner.Ident {
		return nil, d.errorf(open, "expected <returnType> <name> before '('")
	}
	nameTok := typeAndName[len(typeAndName)-1]
	retToks := typeAndName[:len(typeAndName)-1]

	ret, err := p.resolve(retToks, d.posOf(retToks[0]))
	if err != nil {
		return nil, err
	}
	if !ret.Returnable() {
		return nil, d.errorf(retToks[0], "return type %q is not supported", ret)
	}

	fragments, err := d.paramList()
	if err != nil {
		return nil, err
	}
	if semi := d.next(); semi.Kind != scanner.Semi {
		return nil, d.errorf(semi, "expected ';' after parameter list, found %s", semi)
	}

	var params []Param
	for _, frag := range fragments {
		param, err := p.parseParam(frag, d.at)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	m := NewMethod(nameTok.Text, ret, params)
	m.Pos = d.posOf(head)
	return m, nil
}

// parseParam applies the parameter rules in order; the first rule that
// matches wins:
//
//  1. const <type> <name>[]
//  2. <type> <name>[]
//  3. <type> <name>
func (p *Parser) parseParam(toks []scanner.Token, at token.Position) (Param, error) {
	d := &declParser{toks: toks, at: at}
	if len(toks) == 0 {
		return Param{}, &ParseError{Pos: at, Msg: "empty parameter"}
	}
	for _, tok := range toks {
		switch tok.Kind {
		case scanner.Ident, scanner.Star, scanner.LBrack, scanner.RBrack:
		default:
			return Param{}, d.errorf(tok, "unexpected %s in parameter", tok)
		}
	}

	shape, ok := matchConstArray(toks)
	if !ok {
		shape, ok = matchArray(toks)
	}
	if !ok {
		shape, ok = matchScalar(toks)
	}
	if !ok {
		return Param{}, d.errorf(toks[0], "parameter %q does not match <type> <name> or <type> <name>[]", joinTokens(toks))
	}

	var t bridge.NativeType
	if inferred, ok := InferStringType(shape.typeText()); ok && !shape.isArray {
		t = inferred
	} else {
		resolved, err := p.resolve(shape.typeToks, d.posOf(shape.typeToks[0]))
		if err != nil {
			return Param{}, err
		}
		t = resolved
	}

	switch {
	case t == bridge.Void:
		return Param{}, d.errorf(shape.typeToks[0], "parameter %q cannot have type void", shape.name.Text)
	case shape.isArray && !t.Arrayable():
		return Param{}, d.errorf(shape.typeToks[0], "arrays of %q are not supported", t)
	}
	return NewParam(shape.name.Text, t, shape.isConst, shape.isArray), nil
}

// resolve looks up the type spelled by toks.
func (p *Parser) resolve(toks []scanner.Token, at token.Position) (bridge.NativeType, error) {
	t, err := p.reg.Resolve(joinTokens(toks))
	if err != nil {
		var ute *bridge.UnknownTypeError
		if errors.As(err, &ute) {
			return 0, &TypeError{Pos: at, Err: ute}
		}
		return 0, err
	}
	return t, nil
}

// InferStringType classifies the pointer forms of char: "const char *"
// is an input string and "char *" an output string buffer. Spacing
// around '*' does not matter. Any other spelling is left to the registry.
func InferStringType(typeText string) (bridge.NativeType, bool) {
	switch bridge.Normalize(typeText) {
	case bridge.InString.String():
		return bridge.InString, true
	case bridge.OutString.String():
		return bridge.OutString, true
	}
	return 0, false
}

// paramShape is the result of one parameter rule.
type paramShape struct {
	typeToks []scanner.Token
	name     scanner.Token
	isConst  bool
	isArray  bool
}

func (s paramShape) typeText() string { return joinTokens(s.typeToks) }

func matchConstArray(toks []scanner.Token) (paramShape, bool) {
	if len(toks) == 0 || toks[0].Kind != scanner.Ident || toks[0].Text != "const" {
		return paramShape{}, false
	}
	shape, ok := matchArray(toks[1:])
	shape.isConst = true
	return shape, ok
}

func matchArray(toks []scanner.Token) (paramShape, bool) {
	n := len(toks)
	if n < 4 || toks[n-2].Kind != scanner.LBrack || toks[n-1].Kind != scanner.RBrack {
		return paramShape{}, false
	}
	shape, ok := matchScalar(toks[:n-2])
	shape.isArray = true
	return shape, ok
}

func matchScalar(toks []scanner.Token) (paramShape, bool) {
	n := len(toks)
	if n < 2 || toks[n-1].Kind != scanner.Ident {
		return paramShape{}, false
	}
	for _, tok := range toks[:n-1] {
		if tok.Kind != scanner.Ident && tok.Kind != scanner.Star {
			return paramShape{}, false
		}
	}
	return paramShape{typeToks: toks[:n-1], name: toks[n-1]}, true
}

// declParser walks the tokens of one declaration.
type declParser struct {
	toks []scanner.Token
	pos  int
	at   token.Position
}

func (d *declParser) peek() scanner.Token {
	if d.pos >= len(d.toks) {
		return scanner.Token{Kind: scanner.EOF}
	}
	return d.toks[d.pos]
}

func (d *declParser) next() scanner.Token {
	tok := d.peek()
	if d.pos < len(d.toks) {
		d.pos++
	}
	return tok
}

// paramList consumes the tokens after '(' up to and including the
// matching ')', and splits them on top-level commas. Nested parentheses
// and commas inside template arguments are rejected rather than split.
func (d *declParser) paramList() ([][]scanner.Token, error) {
	var (
		frags  [][]scanner.Token
		cur    []scanner.Token
		angles int
	)
	for {
		tok := d.next()
		switch tok.Kind {
		case scanner.EOF:
			return nil, d.errorf(tok, "missing ')' to close parameter list")
		case scanner.LParen:
			return nil, d.errorf(tok, "nested parentheses in parameter list are not supported")
		case scanner.Less:
			angles++
		case scanner.Greater:
			angles--
		case scanner.Comma:
			if angles > 0 {
				return nil, d.errorf(tok, "comma inside template arguments is not supported")
			}
			if len(cur) == 0 {
				return nil, d.errorf(tok, "empty parameter before ','")
			}
			frags = append(frags, cur)
			cur = nil
			continue
		case scanner.RParen:
			if len(frags) == 0 && len(cur) == 0 {
				return nil, nil
			}
			if len(frags) == 0 && len(cur) == 1 && cur[0].Kind == scanner.Ident && cur[0].Text == "void" {
				return nil, nil
			}
			if len(cur) == 0 {
				return nil, d.errorf(tok, "empty parameter before ')'")
			}
			return append(frags, cur), nil
		}
		cur = append(cur, tok)
	}
}

func (d *declParser) posOf(tok scanner.Token) token.Position {
	pos := d.at
	pos.Offset += tok.Offset
	pos.Column += tok.Offset + 1
	return pos
}

func (d *declParser) errorf(tok scanner.Token, format string, args ...interface{}) error {
	return &ParseError{Pos: d.posOf(tok), Msg: fmt.Sprintf(format, args...)}
}

// joinTokens spells a token run the way the registry expects it.
func joinTokens(toks []scanner.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return bridge.Normalize(strings.Join(parts, " "))
}
