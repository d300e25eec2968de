/*
File    : ycc/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhyadev/ycc/ast"
)

func parseExprFromSource(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := New(src)
	return p.parseExpr(LOWEST)
}

func TestParseExpr_PrecedenceOfMulOverAdd(t *testing.T) {
	expr := parseExprFromSource(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAdd, bin.Op)
	_, lhsIsInt := bin.Lhs.(*ast.IntLit)
	assert.True(t, lhsIsInt)
	rhs, ok := bin.Rhs.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryMul, rhs.Op)
}

func TestParseExpr_SubtractionIsLeftAssociative(t *testing.T) {
	expr := parseExprFromSource(t, "1 - 2 - 3")
	outer, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinarySub, outer.Op)
	inner, ok := outer.Lhs.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinarySub, inner.Op)
	_, rhsIsInt := outer.Rhs.(*ast.IntLit)
	assert.True(t, rhsIsInt)
}

func TestParseExpr_UnaryBindsTighterThanBinary(t *testing.T) {
	expr := parseExprFromSource(t, "-1 * 2")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryMul, bin.Op)
	_, lhsIsUnary := bin.Lhs.(*ast.Unary)
	assert.True(t, lhsIsUnary)
}

func TestParseExpr_CallBindsTighterThanBinary(t *testing.T) {
	expr := parseExprFromSource(t, "f(1) + 2")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	_, lhsIsCall := bin.Lhs.(*ast.Call)
	assert.True(t, lhsIsCall)
}

func TestParseType_LongForms(t *testing.T) {
	tests := []struct {
		src      string
		wantKind ast.TypeKind
	}{
		{"long long int", ast.LongLong},
		{"long long", ast.LongLong},
		{"long double", ast.LongDouble},
		{"long int", ast.Long},
		{"long", ast.Long},
	}
	for _, tc := range tests {
		p := New(tc.src)
		typ := p.parseType()
		assert.Equal(t, tc.wantKind, typ.Kind, tc.src)
	}
}

func TestParseDeclaration_FunctionPrototypeVsDefinition(t *testing.T) {
	root := New("int f(); int g() { return 0; }").Parse()
	require.Len(t, root.Declarations, 2)

	proto := root.Declarations[0].(*ast.FunctionDecl)
	assert.False(t, proto.Function.Prototype.IsDefinition)

	def := root.Declarations[1].(*ast.FunctionDecl)
	assert.True(t, def.Function.Prototype.IsDefinition)
	assert.Len(t, def.Function.Body, 1)
}

func TestParseDeclaration_VariableWithAndWithoutInitializer(t *testing.T) {
	root := New("int x; float y = 1;").Parse()
	require.Len(t, root.Declarations, 2)

	x := root.Declarations[0].(*ast.VariableDecl)
	assert.Nil(t, x.Variable.Initializer)

	y := root.Declarations[1].(*ast.VariableDecl)
	assert.NotNil(t, y.Variable.Initializer)
}

func TestParseParameterList_VoidIsDroppedAndNonVariadic(t *testing.T) {
	root := New("int main(void) { return 0; }").Parse()
	fn := root.Declarations[0].(*ast.FunctionDecl)
	assert.Empty(t, fn.Function.Prototype.Parameters)
	assert.False(t, fn.Function.Prototype.Variadic)
}

// An empty "()" leaves Variadic true: the loop that flips it to false never
// runs. codegen treats a zero-parameter prototype as exact-arity-checked
// regardless of this flag; see codegen.compileCall.
func TestParseParameterList_EmptyLeavesVariadicBookkeepingTrue(t *testing.T) {
	root := New("int f();").Parse()
	fn := root.Declarations[0].(*ast.FunctionDecl)
	assert.Empty(t, fn.Function.Prototype.Parameters)
	assert.True(t, fn.Function.Prototype.Variadic)
}
