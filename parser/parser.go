/*
File    : ycc/parser/parser.go
*/

// Package parser implements a Pratt-style recursive-descent parser over the
// token stream produced by package lexer, building the tree defined in
// package ast.
//
// The parser is fail-fast: every helper that cannot proceed reports one
// diagnostic via diagnostics.Fatal and never returns to its caller (Fatal
// panics; a recover barrier at the top of the driver converts that into a
// clean process exit). There is no error collection and no recovery — the
// first malformed construct ends the compile.
package parser

import (
	"strconv"

	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/lexer"
)

// Parser holds the source buffer, the lexer, and two-token lookahead
// (current + peek), the same shape the scanner's clone-based Peek was built
// to support.
type Parser struct {
	src  string
	lex  lexer.Lexer
	curr lexer.Token
	peek lexer.Token

	unaryFuncs map[lexer.TokenKind]unaryFunc
	infixFuncs map[lexer.TokenKind]infixFunc
}

// New returns a Parser ready to parse src.
func New(src string) *Parser {
	p := &Parser{src: src, lex: lexer.New(src)}
	p.init()
	p.advance()
	p.advance()
	return p
}

func (p *Parser) init() {
	p.unaryFuncs = make(map[lexer.TokenKind]unaryFunc)
	p.infixFuncs = make(map[lexer.TokenKind]infixFunc)

	p.registerUnary(parseIntLit, lexer.INT)
	p.registerUnary(parseFloatLit, lexer.FLOAT)
	p.registerUnary(parseIdentifierExpr, lexer.IDENTIFIER)
	p.registerUnary(parseUnaryExpr, lexer.MINUS, lexer.BANG)

	p.registerInfix(parseBinaryExpr, lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.FORWARD_SLASH)
	p.registerInfix(parseCallExpr, lexer.OPEN_PAREN)
}

func (p *Parser) registerUnary(f unaryFunc, kinds ...lexer.TokenKind) {
	for _, k := range kinds {
		p.unaryFuncs[k] = f
	}
}

func (p *Parser) registerInfix(f infixFunc, kinds ...lexer.TokenKind) {
	for _, k := range kinds {
		p.infixFuncs[k] = f
	}
}

func (p *Parser) advance() {
	p.curr = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) loc(span lexer.Span) diagnostics.Loc {
	return diagnostics.Locate(p.src, span.Start)
}

func (p *Parser) currLoc() diagnostics.Loc {
	return p.loc(p.curr.Span)
}

func (p *Parser) text(tok lexer.Token) string {
	return lexer.Text(p.src, tok)
}

// expect requires the current token to have kind k, reporting a fatal
// diagnostic otherwise, and advances past it.
func (p *Parser) expect(k lexer.TokenKind, context string) {
	if p.curr.Kind != k {
		diagnostics.Fatal(p.currLoc(), "%s", context)
	}
	p.advance()
}

// Parse parses the whole source buffer into a Root: parse_root loops until
// EOF, appending each parseDeclaration result.
func (p *Parser) Parse() *ast.Root {
	root := &ast.Root{}
	for p.curr.Kind != lexer.EOF {
		root.Declarations = append(root.Declarations, p.parseDeclaration())
	}
	return root
}

// parseDeclaration parses one top-level declaration: a type, then a name,
// then disambiguates on the following token.
func (p *Parser) parseDeclaration() ast.Decl {
	typ := p.parseType()
	if p.curr.Kind != lexer.IDENTIFIER {
		diagnostics.Fatal(p.currLoc(), "expected a name after top level declarator's type")
	}
	name := ast.Name{Text: p.text(p.curr), Span: p.curr.Span}
	p.advance()

	switch p.curr.Kind {
	case lexer.SEMICOLON, lexer.ASSIGN:
		return &ast.VariableDecl{Variable: p.finishVariable(typ, name)}
	case lexer.OPEN_PAREN:
		return &ast.FunctionDecl{Function: p.finishFunction(typ, name)}
	default:
		diagnostics.Fatal(p.currLoc(), "expected a ';' after top level declarator")
		panic("unreachable")
	}
}

// finishVariable parses the remainder of a variable declaration after
// (type, name) have already been consumed.
func (p *Parser) finishVariable(typ ast.Type, name ast.Name) ast.Variable {
	if p.curr.Kind == lexer.SEMICOLON {
		p.advance()
		return ast.Variable{Type: typ, Name: name}
	}
	p.expect(lexer.ASSIGN, "expected a '=' or ';' after variable name")
	init := p.parseExpr(LOWEST)
	p.expect(lexer.SEMICOLON, "expected a ';' after variable initializer")
	return ast.Variable{Type: typ, Name: name, Initializer: init}
}

// finishFunction parses a parameter list and either a ';' (prototype only)
// or a '{' body after (type, name) have already been consumed.
func (p *Parser) finishFunction(returnType ast.Type, name ast.Name) ast.Function {
	params, variadic := p.parseParameterList()

	proto := ast.FunctionPrototype{
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Variadic:   variadic,
	}

	switch p.curr.Kind {
	case lexer.SEMICOLON:
		p.advance()
		return ast.Function{Prototype: proto}
	case lexer.OPEN_BRACE:
		proto.IsDefinition = true
		body := p.parseBlock()
		return ast.Function{Prototype: proto, Body: body}
	default:
		diagnostics.Fatal(p.currLoc(), "expected a ';' or '{' after function parameter list")
		panic("unreachable")
	}
}

// parseParameterList parses "(" ... ")". variadic starts true and is
// flipped to false by any parameter, including a lone dropped "void".
func (p *Parser) parseParameterList() ([]ast.Param, bool) {
	p.expect(lexer.OPEN_PAREN, "expected a '(' to start a parameter list")

	var params []ast.Param
	variadic := true
	count := 0

	for p.curr.Kind != lexer.CLOSE_PAREN {
		typ := p.parseType()

		if typ.Kind == ast.Void {
			if p.curr.Kind == lexer.IDENTIFIER {
				diagnostics.Fatal(p.currLoc(), "function parameter with incomplete type")
			}
			if count > 0 {
				diagnostics.Fatal(p.currLoc(), "'void' must be the first and only parameter")
			}
		} else {
			var name ast.Name
			if p.curr.Kind == lexer.IDENTIFIER {
				name = ast.Name{Text: p.text(p.curr), Span: p.curr.Span}
				p.advance()
			}
			params = append(params, ast.Param{Type: typ, Name: name})
		}
		variadic = false
		count++

		if p.curr.Kind != lexer.COMMA && p.curr.Kind != lexer.CLOSE_PAREN {
			diagnostics.Fatal(p.currLoc(), "expected a ','")
		}
		if p.curr.Kind == lexer.COMMA {
			p.advance()
		}
	}

	p.advance() // consume ')'
	return params, variadic
}

func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(lexer.OPEN_BRACE, "expected a '{' to start a block")
	var stmts []ast.Stmt
	for p.curr.Kind != lexer.CLOSE_BRACE && p.curr.Kind != lexer.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(lexer.CLOSE_BRACE, "expected a '}' to close a block")
	return stmts
}

// parseStatement dispatches on the current token. Empty statements (a bare
// ';') are permitted and discarded: nil is returned and parseBlock skips it.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curr.Kind {
	case lexer.SEMICOLON:
		p.advance()
		return nil
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		if isTypeStart(p.curr.Kind) {
			typ := p.parseType()
			if p.curr.Kind != lexer.IDENTIFIER {
				diagnostics.Fatal(p.currLoc(), "expected a name after variable declarator's type")
			}
			name := ast.Name{Text: p.text(p.curr), Span: p.curr.Span}
			p.advance()
			return &ast.VariableDeclStmt{Variable: p.finishVariable(typ, name)}
		}
		return p.parseExprStatement()
	}
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.curr.Span
	p.advance() // consume 'return'
	if p.curr.Kind == lexer.SEMICOLON {
		p.advance()
		return &ast.ReturnStmt{SpanVal: start}
	}
	value := p.parseExpr(LOWEST)
	p.expect(lexer.SEMICOLON, "expected a ';' after return statement")
	return &ast.ReturnStmt{Value: value, SpanVal: start}
}

func (p *Parser) parseExprStatement() ast.Stmt {
	expr := p.parseExpr(LOWEST)
	p.expect(lexer.SEMICOLON, "expected a ';' after expression statement")
	return &ast.ExprStmt{Expr: expr}
}

// parseExpr is the Pratt loop: parse a leaf/prefix expression, then keep
// consuming infix operators whose precedence exceeds minPrecedence.
func (p *Parser) parseExpr(minPrecedence int) ast.Expr {
	leaf, ok := p.unaryFuncs[p.curr.Kind]
	if !ok {
		diagnostics.Fatal(p.currLoc(), "expected an expression")
	}
	lhs := leaf(p)

	for p.curr.Kind != lexer.SEMICOLON && minPrecedence < getPrecedence(p.curr.Kind) {
		infix, ok := p.infixFuncs[p.curr.Kind]
		if !ok {
			break
		}
		lhs = infix(p, lhs)
	}
	return lhs
}

func parseIntLit(p *Parser) ast.Expr {
	tok := p.curr
	text := p.text(tok)
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		diagnostics.Fatal(p.loc(tok.Span), "integer constant too big/small")
	}
	p.advance()
	return &ast.IntLit{Value: value, SpanVal: tok.Span}
}

func parseFloatLit(p *Parser) ast.Expr {
	tok := p.curr
	text := p.text(tok)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		diagnostics.Fatal(p.loc(tok.Span), "float constant too big/small")
	}
	p.advance()
	return &ast.FloatLit{Value: value, SpanVal: tok.Span}
}

func parseIdentifierExpr(p *Parser) ast.Expr {
	tok := p.curr
	name := ast.Name{Text: p.text(tok), Span: tok.Span}
	p.advance()
	return &ast.Identifier{Name: name}
}

func parseUnaryExpr(p *Parser) ast.Expr {
	tok := p.curr
	var op ast.UnaryOp
	switch tok.Kind {
	case lexer.MINUS:
		op = ast.UnaryMinus
	case lexer.BANG:
		op = ast.UnaryNot
	}
	p.advance()
	rhs := p.parseExpr(PREFIX)
	return &ast.Unary{Op: op, Rhs: rhs, SpanVal: lexer.Span{Start: tok.Span.Start, End: rhs.Span().End}}
}

func parseBinaryExpr(p *Parser, lhs ast.Expr) ast.Expr {
	tok := p.curr
	var op ast.BinaryOp
	switch tok.Kind {
	case lexer.PLUS:
		op = ast.BinaryAdd
	case lexer.MINUS:
		op = ast.BinarySub
	case lexer.STAR:
		op = ast.BinaryMul
	case lexer.FORWARD_SLASH:
		op = ast.BinaryDiv
	}
	precedence := getPrecedence(tok.Kind)
	p.advance()
	rhs := p.parseExpr(precedence)
	return &ast.Binary{Lhs: lhs, Rhs: rhs, Op: op, SpanVal: lexer.Span{Start: lhs.Span().Start, End: rhs.Span().End}}
}

func parseCallExpr(p *Parser, callee ast.Expr) ast.Expr {
	start := p.curr.Span.Start
	p.advance() // consume '('
	var args []ast.Expr
	for p.curr.Kind != lexer.CLOSE_PAREN {
		args = append(args, p.parseExpr(LOWEST))
		if p.curr.Kind == lexer.COMMA {
			p.advance()
		} else if p.curr.Kind != lexer.CLOSE_PAREN {
			diagnostics.Fatal(p.currLoc(), "expected a ','")
		}
	}
	end := p.curr.Span.End
	p.advance() // consume ')'
	return &ast.Call{Callee: callee, Args: args, SpanVal: lexer.Span{Start: start, End: end}}
}
