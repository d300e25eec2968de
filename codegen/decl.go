/*
File    : ycc/codegen/decl.go
*/
package codegen

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/symtab"
	"tinygo.org/x/go-llvm"
)

func (c *CodeGen) compileDeclaration(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		c.compileFunction(&d.Function)
	case *ast.VariableDecl:
		c.compileGlobalVariable(d.Variable)
	default:
		panic("codegen: compileDeclaration called on unknown declaration kind")
	}
}

func (c *CodeGen) compileFunction(fn *ast.Function) {
	proto := fn.Prototype

	if proto.Name.Text == "main" && proto.ReturnType.Kind != ast.Int {
		diagnostics.Warn(c.loc(proto.Name.Span), "return type of 'main' is not 'int'")
	}

	paramTypes := make([]ast.Type, len(proto.Parameters))
	for i, param := range proto.Parameters {
		paramTypes[i] = param.Type
	}
	fnType := ast.Type{Kind: ast.Function, ReturnType: &proto.ReturnType, Params: paramTypes, Variadic: proto.Variadic}

	fnValue := llvm.AddFunction(c.Module, proto.Name.Text, functionBackendType(proto))
	c.symbols.Set(c.loc(proto.Name.Span), symtab.Symbol{
		Type:          fnType,
		Name:          proto.Name.Text,
		Linkage:       symtab.Global,
		BackendHandle: fnValue,
	})

	if !proto.IsDefinition {
		return
	}

	c.ctx = context{function: fn, functionReturned: false}

	entry := llvm.AddBasicBlock(fnValue, "entry")
	c.builder.SetInsertPointAtEnd(entry)

	for i, param := range proto.Parameters {
		storage := c.builder.CreateAlloca(backendType(param.Type), param.Name.Text)
		c.builder.CreateStore(fnValue.Param(i), storage)
		if param.Name.Text != "" {
			c.symbols.Set(c.loc(param.Name.Span), symtab.Symbol{
				Type:          param.Type,
				Name:          param.Name.Text,
				Linkage:       symtab.Local,
				BackendHandle: storage,
			})
		}
	}

	for _, stmt := range fn.Body {
		c.compileStatement(stmt)
	}

	if !c.ctx.functionReturned {
		if proto.ReturnType.Kind == ast.Void {
			c.builder.CreateRetVoid()
		} else {
			c.builder.CreateRet(defaultValue(proto.ReturnType))
		}
	}

	c.symbols.Reset()
}

func (c *CodeGen) compileGlobalVariable(v ast.Variable) {
	if v.Type.Kind == ast.Void {
		diagnostics.Fatal(c.loc(v.Name.Span), "a variable cannot have incomplete type 'void'")
	}

	global := llvm.AddGlobal(c.Module, backendType(v.Type), v.Name.Text)

	var initValue llvm.Value
	if v.Initializer == nil {
		initValue = defaultValue(v.Type)
	} else {
		initValue = c.compileAndCast(v.Type, c.infer(v.Initializer), v.Initializer, true)
	}
	global.SetInitializer(initValue)

	c.symbols.Set(c.loc(v.Name.Span), symtab.Symbol{
		Type:          v.Type,
		Name:          v.Name.Text,
		Linkage:       symtab.Global,
		BackendHandle: global,
	})
}
