/*
File    : ycc/lexer/lexer.go
*/

// Package lexer implements the compiler's position-addressed scanner: a
// byte-indexed cursor over the source buffer that classifies one Token per
// call to Next, skipping whitespace along the way.
package lexer

// Lexer is a value type: its state is a source-buffer reference, a cursor
// offset and the current line/column, all plain values, which makes Peek a
// trivial value copy rather than a buffered-token queue. Callers that need lookahead clone the Lexer, advance
// the clone, and discard it.
type Lexer struct {
	src    string
	pos    int
	line   int
	column int
}

// New returns a Lexer positioned at the start of src.
func New(src string) Lexer {
	return Lexer{src: src, pos: 0, line: 1, column: 1}
}

// Peek returns the token the lexer would produce next without consuming it,
// by cloning the cursor, advancing the clone, and discarding it.
func (lx Lexer) Peek() Token {
	clone := lx
	return clone.Next()
}

func (lx *Lexer) current() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) advance() {
	if lx.current() == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	lx.pos++
}

func (lx *Lexer) skipWhitespace() {
	for isWhitespace(lx.current()) {
		lx.advance()
	}
}

// Loc returns the lexer's current (line, column) — 1-indexed — used by
// single-token convenience callers that don't want to rescan the buffer via
// diagnostics.Locate.
func (lx Lexer) Loc() (line, column int) {
	return lx.line, lx.column
}

// Next returns the next token in the source, skipping leading whitespace.
// At end of input it returns an EOF token indefinitely; calling Next again
// after EOF returns the same span, satisfying the idempotent-EOF contract.
func (lx *Lexer) Next() Token {
	lx.skipWhitespace()

	start := lx.pos
	c := lx.current()

	single := func(kind TokenKind) Token {
		lx.advance()
		return Token{Kind: kind, Span: Span{Start: start, End: lx.pos}}
	}

	switch {
	case c == 0:
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	case c == '(':
		return single(OPEN_PAREN)
	case c == ')':
		return single(CLOSE_PAREN)
	case c == '{':
		return single(OPEN_BRACE)
	case c == '}':
		return single(CLOSE_BRACE)
	case c == ';':
		return single(SEMICOLON)
	case c == ':':
		return single(COLON)
	case c == ',':
		return single(COMMA)
	case c == '=':
		return single(ASSIGN)
	case c == '+':
		return single(PLUS)
	case c == '-':
		return single(MINUS)
	case c == '*':
		return single(STAR)
	case c == '/':
		return single(FORWARD_SLASH)
	case c == '!':
		return single(BANG)
	case isDigit(c):
		return lx.readNumber()
	case isIdentStart(c):
		return lx.readIdentifier()
	default:
		lx.advance()
		return Token{Kind: INVALID, Span: Span{Start: start, End: lx.pos}}
	}
}

func (lx *Lexer) readIdentifier() Token {
	start := lx.pos
	for isIdentStart(lx.current()) || isDigit(lx.current()) {
		lx.advance()
	}
	text := lx.src[start:lx.pos]
	return Token{Kind: lookupIdent(text), Span: Span{Start: start, End: lx.pos}}
}

func (lx *Lexer) readNumber() Token {
	start := lx.pos
	sawDot := false
	for isDigit(lx.current()) || lx.current() == '.' {
		if lx.current() == '.' {
			sawDot = true
		}
		lx.advance()
	}
	kind := INT
	if sawDot {
		kind = FLOAT
	}
	return Token{Kind: kind, Span: Span{Start: start, End: lx.pos}}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Text recovers the literal source slice a token spans.
func Text(src string, tok Token) string {
	return src[tok.Span.Start:tok.Span.End]
}
