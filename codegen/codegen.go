/*
File    : ycc/codegen/codegen.go
*/

// Package codegen walks the parsed AST and drives tinygo.org/x/go-llvm to
// build an LLVM module: type inference, numeric coercion (both compile-time
// constant folding and runtime casts), and expression/statement/declaration
// emission.
package codegen

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/lexer"
	"github.com/yhyadev/ycc/symtab"
	"tinygo.org/x/go-llvm"
)

// context is the per-function state the generator resets at the start of
// every function body: which function is being emitted, and whether a
// terminator has already been produced for it.
type context struct {
	function         *ast.Function
	functionReturned bool
}

// CodeGen holds the backend module/builder handles and the symbol table for
// one compile.
type CodeGen struct {
	src     string
	Module  llvm.Module
	builder llvm.Builder
	symbols *symtab.Table
	ctx     context
}

// New creates a CodeGen with a fresh backend module named after the source
// file, ready to compile root.
func New(src, moduleName string) *CodeGen {
	return &CodeGen{
		src:     src,
		Module:  llvm.NewModule(moduleName),
		builder: llvm.NewBuilder(),
		symbols: symtab.New(),
	}
}

// Dispose releases the backend builder and module handles. Safe to defer
// immediately after New.
func (c *CodeGen) Dispose() {
	c.builder.Dispose()
	c.Module.Dispose()
}

func (c *CodeGen) loc(span lexer.Span) diagnostics.Loc {
	return diagnostics.Locate(c.src, span.Start)
}

// Compile lowers every declaration in root, in order, into c.Module.
func (c *CodeGen) Compile(root *ast.Root) {
	for _, decl := range root.Declarations {
		c.compileDeclaration(decl)
	}
}

// backendType maps a scalar ast.Type to its LLVM representation. Only
// called with scalar kinds; Function types never reach the backend as a
// value type, only as a llvm.FunctionType built separately.
func backendType(t ast.Type) llvm.Type {
	switch t.Kind {
	case ast.Char:
		return llvm.Int8Type()
	case ast.Short:
		return llvm.Int16Type()
	case ast.Int:
		return llvm.Int32Type()
	case ast.Long:
		return llvm.Int64Type()
	case ast.LongLong:
		return llvm.Int64Type()
	case ast.Float:
		return llvm.FloatType()
	case ast.Double:
		return llvm.DoubleType()
	case ast.LongDouble:
		return llvm.FP128Type()
	case ast.Void:
		return llvm.VoidType()
	default:
		panic("codegen: backendType called on a non-scalar type")
	}
}

// defaultValue returns the zero constant for a scalar type, per §4.4.6:
// an integer zero of the type's width for integer kinds, 0.0 for floating
// kinds. Void has no default and is never passed here.
func defaultValue(t ast.Type) llvm.Value {
	bt := backendType(t)
	if t.IsFloating() {
		return llvm.ConstFloat(bt, 0.0)
	}
	return llvm.ConstInt(bt, 0, false)
}

func functionBackendType(proto ast.FunctionPrototype) llvm.Type {
	paramTypes := make([]llvm.Type, len(proto.Parameters))
	for i, param := range proto.Parameters {
		paramTypes[i] = backendType(param.Type)
	}
	return llvm.FunctionType(backendType(proto.ReturnType), paramTypes, proto.Variadic)
}
