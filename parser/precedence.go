/*
File    : ycc/parser/precedence.go
*/
package parser

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/lexer"
)

// Operator precedence constants, ascending: LOWEST < SUM < PRODUCT < PREFIX
// < CALL. Higher binds tighter; the Pratt loop in parseExpr compares the
// current minimum precedence against getPrecedence(curr), the next
// unconsumed token, to decide whether to keep consuming infix operators.
const (
	LOWEST = iota
	SUM     // + -
	PRODUCT // * /
	PREFIX  // unary - !
	CALL    // postfix ( )
)

// getPrecedence returns the binding power of tok when it appears as an
// infix/postfix operator, or LOWEST if tok never does.
func getPrecedence(kind lexer.TokenKind) int {
	switch kind {
	case lexer.PLUS, lexer.MINUS:
		return SUM
	case lexer.STAR, lexer.FORWARD_SLASH:
		return PRODUCT
	case lexer.OPEN_PAREN:
		return CALL
	default:
		return LOWEST
	}
}

// unaryFunc parses a prefix/leaf expression; called when its token starts
// an expression.
type unaryFunc func(p *Parser) ast.Expr

// infixFunc parses the right-hand side of an infix/postfix expression,
// given the already-parsed left operand.
type infixFunc func(p *Parser, lhs ast.Expr) ast.Expr
