/*
File    : ycc/codegen/codegen_test.go
*/
package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/parser"
)

func compileSource(t *testing.T, src string) *CodeGen {
	t.Helper()
	root := parser.New(src).Parse()
	c := New(src, "test")
	c.Compile(root)
	return c
}

func TestInfer_IntLiteralIsLongLong(t *testing.T) {
	c := New("1", "test")
	intLit := &ast.IntLit{Value: 1}
	assert.Equal(t, ast.LongLong, c.infer(intLit).Kind)
}

func TestInfer_FloatLiteralIsLongDouble(t *testing.T) {
	c := New("1.0", "test")
	floatLit := &ast.FloatLit{Value: 1}
	assert.Equal(t, ast.LongDouble, c.infer(floatLit).Kind)
}

func TestInfer_BinaryPicksHigherRank(t *testing.T) {
	c := New("", "test")
	bin := &ast.Binary{
		Lhs: &ast.IntLit{Value: 1},   // LongLong
		Rhs: &ast.FloatLit{Value: 1}, // LongDouble
		Op:  ast.BinaryAdd,
	}
	assert.Equal(t, ast.LongDouble, c.infer(bin).Kind)
}

func TestCastConstant_IntToFloatFlipsLiteralKind(t *testing.T) {
	lit := &ast.IntLit{Value: 1}
	result := castConstant(ast.Type{Kind: ast.Float}, lit)
	floatLit, ok := result.(*ast.FloatLit)
	require.True(t, ok)
	assert.Equal(t, float64(1), floatLit.Value)
}

func TestCastConstant_FloatToIntTruncates(t *testing.T) {
	lit := &ast.FloatLit{Value: 3.7}
	result := castConstant(ast.Type{Kind: ast.Int}, lit)
	intLit, ok := result.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, uint64(3), intLit.Value)
}

func TestCastConstant_RecursesIntoBinarySubtree(t *testing.T) {
	bin := &ast.Binary{Lhs: &ast.IntLit{Value: 1}, Rhs: &ast.IntLit{Value: 2}, Op: ast.BinaryAdd}
	result := castConstant(ast.Type{Kind: ast.Float}, bin)
	castBin, ok := result.(*ast.Binary)
	require.True(t, ok)
	_, lhsIsFloat := castBin.Lhs.(*ast.FloatLit)
	assert.True(t, lhsIsFloat)
}

func TestCompile_SimpleMainReturningZero(t *testing.T) {
	c := compileSource(t, "int main(void) { return 0; }")
	defer c.Dispose()
	fn := c.Module.NamedFunction("main")
	assert.False(t, fn.IsNil())
}

func TestCompile_UndefinedIdentifierIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		c := compileSource(t, "int main() { return x; }")
		defer c.Dispose()
	})
}

func TestCompile_ArityMismatchIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		c := compileSource(t, "int f(); int main() { return f(1); }")
		defer c.Dispose()
	})
}

func TestCompile_VoidVariableIsFatal(t *testing.T) {
	assert.PanicsWithValue(t, &diagnostics.FatalError{
		Loc: diagnostics.Loc{Line: 1, Column: 6},
		Msg: "a variable cannot have incomplete type 'void'",
	}, func() {
		c := compileSource(t, "void x;")
		defer c.Dispose()
	})
}
