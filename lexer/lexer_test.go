/*
File    : ycc/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input string
	Kind  TokenKind
	Text  string
}

func TestNext_Classification(t *testing.T) {
	tests := []tokenCase{
		{"int", INTK, "int"},
		{"integer", IDENTIFIER, "integer"},
		{"return", RETURN, "return"},
		{"returning", IDENTIFIER, "returning"},
		{"_foo9", IDENTIFIER, "_foo9"},
		{"123", INT, "123"},
		{"3.14", FLOAT, "3.14"},
		{"(", OPEN_PAREN, "("},
		{")", CLOSE_PAREN, ")"},
		{"{", OPEN_BRACE, "{"},
		{"}", CLOSE_BRACE, "}"},
		{";", SEMICOLON, ";"},
		{",", COMMA, ","},
		{"=", ASSIGN, "="},
		{"+", PLUS, "+"},
		{"-", MINUS, "-"},
		{"*", STAR, "*"},
		{"/", FORWARD_SLASH, "/"},
		{"!", BANG, "!"},
		{"@", INVALID, "@"},
	}

	for _, tc := range tests {
		lx := New(tc.Input)
		tok := lx.Next()
		assert.Equal(t, tc.Kind, tok.Kind, tc.Input)
		assert.Equal(t, tc.Text, Text(tc.Input, tok), tc.Input)
	}
}

func TestNext_EOFIsIdempotent(t *testing.T) {
	lx := New("")
	first := lx.Next()
	second := lx.Next()
	assert.Equal(t, EOF, first.Kind)
	assert.Equal(t, EOF, second.Kind)
	assert.Equal(t, first.Span, second.Span)
	assert.Equal(t, Span{Start: 0, End: 0}, first.Span)
}

func TestNext_SpansCoverTheBuffer(t *testing.T) {
	src := "int main ( void ) { return 0 ; }"
	lx := New(src)
	prevEnd := 0
	for {
		tok := lx.Next()
		if tok.Kind == EOF {
			break
		}
		assert.GreaterOrEqual(t, tok.Span.Start, prevEnd)
		prevEnd = tok.Span.End
	}
	assert.Equal(t, len(src), prevEnd)
}

func TestPeek_DoesNotConsume(t *testing.T) {
	lx := New("int x")
	peeked := lx.Peek()
	actual := lx.Next()
	assert.Equal(t, peeked, actual)
	assert.Equal(t, IDENTIFIER, lx.Next().Kind)
}

func TestNext_KeywordTable(t *testing.T) {
	keywordSpellings := []string{"void", "char", "short", "int", "long", "float", "double", "return"}
	expectedKinds := []TokenKind{VOID, CHAR, SHORT, INTK, LONG, FLOATK, DOUBLE, RETURN}
	for i, spelling := range keywordSpellings {
		lx := New(spelling)
		assert.Equal(t, expectedKinds[i], lx.Next().Kind, spelling)
	}
}

func TestNext_WhitespaceAndLineTracking(t *testing.T) {
	lx := New("int\nx")
	lx.Next()
	line, col := lx.Loc()
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)
	lx.Next()
	line, _ = lx.Loc()
	assert.Equal(t, 2, line)
}
