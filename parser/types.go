/*
File    : ycc/parser/types.go
*/
package parser

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/lexer"
)

// isTypeStart reports whether kind can open a type-name, used by both the
// top-level and statement dispatchers to decide between a declaration and
// an expression/return statement.
func isTypeStart(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.VOID, lexer.CHAR, lexer.SHORT, lexer.INTK, lexer.LONG, lexer.FLOATK, lexer.DOUBLE:
		return true
	default:
		return false
	}
}

// parseType consumes one type-kind token, resolving the multi-word
// sequences that follow 'long' via lookahead on the following token:
//
//	long long [int]  -> LongLong
//	long double      -> LongDouble
//	long [int]       -> Long
func (p *Parser) parseType() ast.Type {
	switch p.curr.Kind {
	case lexer.VOID:
		p.advance()
		return ast.Type{Kind: ast.Void}
	case lexer.CHAR:
		p.advance()
		return ast.Type{Kind: ast.Char}
	case lexer.SHORT:
		p.advance()
		if p.curr.Kind == lexer.INTK {
			p.advance()
		}
		return ast.Type{Kind: ast.Short}
	case lexer.INTK:
		p.advance()
		return ast.Type{Kind: ast.Int}
	case lexer.LONG:
		p.advance()
		switch p.curr.Kind {
		case lexer.LONG:
			p.advance()
			if p.curr.Kind == lexer.INTK {
				p.advance()
			}
			return ast.Type{Kind: ast.LongLong}
		case lexer.DOUBLE:
			p.advance()
			return ast.Type{Kind: ast.LongDouble}
		case lexer.INTK:
			p.advance()
			return ast.Type{Kind: ast.Long}
		default:
			return ast.Type{Kind: ast.Long}
		}
	case lexer.FLOATK:
		p.advance()
		return ast.Type{Kind: ast.Float}
	case lexer.DOUBLE:
		p.advance()
		return ast.Type{Kind: ast.Double}
	default:
		diagnostics.Fatal(p.currLoc(), "expected a type")
		panic("unreachable")
	}
}
