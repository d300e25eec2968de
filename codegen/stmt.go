/*
File    : ycc/codegen/stmt.go
*/
package codegen

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/symtab"
	"tinygo.org/x/go-llvm"
)

func (c *CodeGen) compileStatement(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		c.compileReturn(s)
	case *ast.VariableDeclStmt:
		c.compileLocalVariable(s.Variable)
	case *ast.ExprStmt:
		c.compileExprStatement(s)
	default:
		panic("codegen: compileStatement called on unknown statement kind")
	}
}

func (c *CodeGen) compileReturn(s *ast.ReturnStmt) {
	returnType := c.ctx.function.Prototype.ReturnType

	switch {
	case s.Value == nil && returnType.Kind != ast.Void:
		diagnostics.Fatal(c.loc(s.SpanVal), "expected non-void return type")
	case s.Value == nil:
		c.builder.CreateRetVoid()
	default:
		value := c.compileAndCast(returnType, c.infer(s.Value), s.Value, false)
		c.builder.CreateRet(value)
	}
	c.ctx.functionReturned = true
}

func (c *CodeGen) compileLocalVariable(v ast.Variable) {
	if v.Type.Kind == ast.Void {
		diagnostics.Fatal(c.loc(v.Name.Span), "a variable cannot have incomplete type 'void'")
	}

	storage := c.builder.CreateAlloca(backendType(v.Type), v.Name.Text)

	var initValue llvm.Value
	if v.Initializer == nil {
		initValue = defaultValue(v.Type)
	} else {
		initValue = c.compileAndCast(v.Type, c.infer(v.Initializer), v.Initializer, false)
	}
	c.builder.CreateStore(initValue, storage)

	c.symbols.Set(c.loc(v.Name.Span), symtab.Symbol{
		Type:          v.Type,
		Name:          v.Name.Text,
		Linkage:       symtab.Local,
		BackendHandle: storage,
	})
}

func (c *CodeGen) compileExprStatement(s *ast.ExprStmt) {
	if call, ok := s.Expr.(*ast.Call); ok {
		resultType := c.infer(call)
		c.compileExpr(backendType(resultType), call, false)
		return
	}
	diagnostics.Warn(c.loc(s.Expr.Span()), "expression is not used, thus it will not be compiled")
}
