/*
File    : mql-go/parser/parser.go
*/

// Package parser turns a token stream into an ast.Expr tree by
// recursive descent, one function per precedence level of the grammar
// in spec §4.2:
//
//	expr        := ternary
//	ternary     := nullcoal ( '?' ternary ':' ternary )?
//	nullcoal    := equality ( '??' equality )*
//	equality    := comparison ( ('=='|'!=') comparison )*
//	comparison  := additive ( ('<'|'<='|'>'|'>=') additive )*
//	additive    := multiplicative ( ('+'|'-') multiplicative )*
//	multiplicative := unary ( ('*'|'/') unary )*
//	unary       := '-' unary | postfix
//	postfix     := primary ( '.' IDENT ( '(' args ')' )? )*
//	primary     := NUMBER | IDENT | '(' expr ')'
//
// The grammar's operators are fixed and not user-extensible, so a direct
// recursive-descent encoding of the precedence ladder above is clearer
// than a generalized Pratt operator-precedence table — unlike the
// teacher's parser, which builds UnaryFuncs/BinaryFuncs maps because
// GoMix's operator set is large and keeps growing file by file.
package parser

import (
	"fmt"

	"github.com/hollow-cube/mql-go/ast"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/lexer"
)

// Parser holds the lexer driving one parse. A Parser is used once: build
// it with New, call Parse, discard it.
type Parser struct {
	lx *lexer.Lexer
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lx: lexer.New(src)}
}

// Parse parses src into an expression tree. It rejects EOF before a
// complete expression and any trailing token after one (spec §4.2).
func Parse(src string) (ast.Expr, error) {
	return New(src).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.EOF {
		return nil, &errs.ParseError{Offset: tok.Offset, Expected: "end of expression", Found: describeToken(tok)}
	}
	return expr, nil
}

func (p *Parser) expr() (ast.Expr, error) {
	return p.ternary()
}

func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.nullCoal()
	if err != nil {
		return nil, err
	}
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.QUESTION {
		return cond, nil
	}
	if _, err := p.lx.Next(); err != nil {
		return nil, err
	}
	then, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	els, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) nullCoal() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != lexer.QCOLON {
			return left, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: ast.OpCoal, Lhs: left, Rhs: right}
	}
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binaryLevel(p.comparison, map[lexer.Kind]ast.BinaryOp{
		lexer.EQ:  ast.OpEq,
		lexer.NEQ: ast.OpNeq,
	})
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binaryLevel(p.additive, map[lexer.Kind]ast.BinaryOp{
		lexer.LT:  ast.OpLt,
		lexer.LTE: ast.OpLte,
		lexer.GT:  ast.OpGt,
		lexer.GTE: ast.OpGte,
	})
}

func (p *Parser) additive() (ast.Expr, error) {
	return p.binaryLevel(p.multiplicative, map[lexer.Kind]ast.BinaryOp{
		lexer.PLUS:  ast.OpAdd,
		lexer.MINUS: ast.OpSub,
	})
}

func (p *Parser) multiplicative() (ast.Expr, error) {
	return p.binaryLevel(p.unary, map[lexer.Kind]ast.BinaryOp{
		lexer.STAR:  ast.OpMul,
		lexer.SLASH: ast.OpDiv,
	})
}

// binaryLevel implements one left-associative precedence level: parse a
// next-lower-level operand, then fold in zero or more (op, operand)
// pairs whose operator kind is in ops.
func (p *Parser) binaryLevel(next func() (ast.Expr, error), ops map[lexer.Kind]ast.BinaryOp) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		op, ok := ops[tok.Kind]
		if !ok {
			return left, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Lhs: left, Rhs: right}
	}
}

func (p *Parser) unary() (ast.Expr, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.MINUS {
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.OpNeg, Rhs: rhs}, nil
	}
	return p.postfix()
}

func (p *Parser) postfix() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != lexer.DOT {
			return expr, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		memberTok, err := p.expectReturn(lexer.IDENT)
		if err != nil {
			return nil, err
		}

		lparen, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		access := &ast.Access{Lhs: expr, Member: memberTok.Lexeme}
		if lparen.Kind != lexer.LPAREN {
			expr = access
			continue
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		expr = &ast.Call{Access: access, Args: args}
	}
}

func (p *Parser) args() (ast.ArgList, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.RPAREN {
		return nil, nil
	}
	var list ast.ArgList
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		list = append(list, arg)
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != lexer.COMMA {
			return list, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) primary() (ast.Expr, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.NUMBER:
		return &ast.Number{Value: tok.Number}, nil
	case lexer.IDENT:
		return &ast.Ident{Name: tok.Lexeme}, nil
	case lexer.LPAREN:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.EOF:
		return nil, &errs.ParseError{Offset: tok.Offset, Expected: "an expression", Found: "end of input"}
	default:
		return nil, &errs.ParseError{Offset: tok.Offset, Expected: "an expression", Found: describeToken(tok)}
	}
}

// expect consumes the next token, requiring it to have kind k.
func (p *Parser) expect(k lexer.Kind) error {
	_, err := p.expectReturn(k)
	return err
}

func (p *Parser) expectReturn(k lexer.Kind) (lexer.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok.Kind != k {
		return lexer.Token{}, &errs.ParseError{Offset: tok.Offset, Expected: string(k), Found: describeToken(tok)}
	}
	return tok, nil
}

func describeToken(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
