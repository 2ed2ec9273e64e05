/*
Copyright 2023 eatmoreapple

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package expr

import (
	"strconv"

	"github.com/sqlmap-go/sqlmap/env"
)

// Compile parses source according to the expression grammar:
//
//	expr  := or
//	or    := and ('||' and)*
//	and   := cmp ('&&' cmp)*
//	cmp   := add (('=='|'!='|'<'|'<='|'>'|'>=') add)?
//	add   := mul (('+'|'-'|'~') mul)*
//	mul   := unary (('*'|'/'|'%') unary)*
//	unary := ('!'|'-')? primary
//	primary := literal | ident ('.' ident | '[' expr ']')* | '(' expr ')'
//	literal := number | string | 'true' | 'false' | 'null'
//
// It returns a SyntaxError if source does not match the grammar.
func Compile(source string) (*Expr, error) {
	p := &parser{lex: newLexer(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: p.tok.pos, Msg: "unexpected trailing input"}
	}
	return &Expr{root: root, source: source}, nil
}

// MustCompile is like Compile but panics on error; intended for constants
// built into the compiler itself, not for mapper-authored expressions.
func MustCompile(source string) *Expr {
	e, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.tok.kind != k {
		return token{}, &SyntaxError{Pos: p.tok.pos, Msg: "expected " + what}
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: "||", l: left, r: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseCmp()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseCmp()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: "&&", l: left, r: right}
	}
	return left, nil
}

var cmpOps = map[tokenKind]string{
	tokEq: "==", tokNe: "!=", tokLt: "<", tokLe: "<=", tokGt: ">", tokGe: ">=",
}

func (p *parser) parseCmp() (node, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if op, ok := cmpOps[p.tok.kind]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: op, l: left, r: right}, nil
	}
	return left, nil
}

func (p *parser) parseAdd() (node, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch p.tok.kind {
		case tokPlus:
			op = "+"
		case tokMinus:
			op = "-"
		case tokConcat:
			op = "~"
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

func (p *parser) parseMul() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch p.tok.kind {
		case tokStar:
			op = "*"
		case tokSlash:
			op = "/"
		case tokPercent:
			op = "%"
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: "!", x: x}, nil
	case tokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: "-", x: x}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (node, error) {
	var base node
	switch p.tok.kind {
	case tokNumber:
		lit := p.tok.lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: p.tok.pos, Msg: "invalid number " + lit}
		}
		base = literalNode{value: env.Number(f)}
	case tokString:
		lit := p.tok.lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = literalNode{value: env.String(lit)}
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = literalNode{value: env.Bool(true)}
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = literalNode{value: env.Bool(false)}
	case tokNull:
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = literalNode{value: env.Null}
	case tokIdent:
		name := p.tok.lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = identNode{name: name}
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		base = inner
	default:
		return nil, &SyntaxError{Pos: p.tok.pos, Msg: "expected expression"}
	}

	for {
		switch p.tok.kind {
		case tokDot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			field, err := p.expect(tokIdent, "identifier after '.'")
			if err != nil {
				return nil, err
			}
			base = fieldAccessNode{x: base, name: field.lit}
		case tokLBrack:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRBrack, "']'"); err != nil {
				return nil, err
			}
			base = indexAccessNode{x: base, index: idx}
		default:
			return base, nil
		}
	}
}
