/*
File    : ycc/ast/ast.go
*/

// Package ast defines the tagged-union tree the parser builds and the code
// generator walks: types, expressions, statements, and declarations.
package ast

import "github.com/yhyadev/ycc/lexer"

// TypeKind is a scalar or function type tag. The scalar ordering below is
// significant: integer kinds precede floating kinds, and Float is the
// boundary between them. infer() and cast direction in the code generator
// both depend on this rank.
type TypeKind int

const (
	Void TypeKind = iota
	Char
	Short
	Int
	Long
	LongLong
	Float
	Double
	LongDouble
	Function
)

// Type is either a scalar kind or, when Kind == Function, a function
// signature. The three function-only fields are zero for every scalar kind.
type Type struct {
	Kind       TypeKind
	ReturnType *Type
	Params     []Type
	Variadic   bool
}

// Rank returns the scalar's position in the fixed ordering
// Void < Char < Short < Int < Long < LongLong < Float < Double < LongDouble.
// Only meaningful for non-Function types.
func (t Type) Rank() int {
	return int(t.Kind)
}

func (t Type) IsFloating() bool {
	return t.Kind == Float || t.Kind == Double || t.Kind == LongDouble
}

func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Function {
		return true
	}
	if t.Variadic != other.Variadic || len(t.Params) != len(other.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}
	return t.ReturnType.Equal(*other.ReturnType)
}

// String renders the scalar type the way diagnostics quote it, e.g. 'void'.
func (t Type) String() string {
	switch t.Kind {
	case Void:
		return "void"
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case LongLong:
		return "long long"
	case Float:
		return "float"
	case Double:
		return "double"
	case LongDouble:
		return "long double"
	default:
		return "function"
	}
}

// Name is an identifier's text together with the span it was parsed from.
type Name struct {
	Text string
	Span lexer.Span
}

// Expr is the sealed set of expression variants.
type Expr interface {
	Span() lexer.Span
}

type IntLit struct {
	Value   uint64
	SpanVal lexer.Span
}

type FloatLit struct {
	Value   float64
	SpanVal lexer.Span
}

type Identifier struct {
	Name Name
}

type UnaryOp int

const (
	UnaryMinus UnaryOp = iota
	UnaryNot
)

type Unary struct {
	Op      UnaryOp
	Rhs     Expr
	SpanVal lexer.Span
}

type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
)

type Binary struct {
	Lhs, Rhs Expr
	Op       BinaryOp
	SpanVal  lexer.Span
}

type Call struct {
	Callee  Expr
	Args    []Expr
	SpanVal lexer.Span
}

func (e *IntLit) Span() lexer.Span     { return e.SpanVal }
func (e *FloatLit) Span() lexer.Span   { return e.SpanVal }
func (e *Identifier) Span() lexer.Span { return e.Name.Span }
func (e *Unary) Span() lexer.Span      { return e.SpanVal }
func (e *Binary) Span() lexer.Span     { return e.SpanVal }
func (e *Call) Span() lexer.Span       { return e.SpanVal }

// Variable is a typed binding with an optional initializer; the same shape
// is used for both local statements and top-level declarations.
type Variable struct {
	Type        Type
	Name        Name
	Initializer Expr
}

// Stmt is the sealed set of statement variants.
type Stmt interface {
	stmt()
}

type ReturnStmt struct {
	Value   Expr // nil when no expression was given
	SpanVal lexer.Span
}

type VariableDeclStmt struct {
	Variable Variable
}

type ExprStmt struct {
	Expr Expr
}

func (*ReturnStmt) stmt()       {}
func (*VariableDeclStmt) stmt() {}
func (*ExprStmt) stmt()         {}

// Param is one entry of a function prototype's parameter list.
type Param struct {
	Type Type
	Name Name // zero value when the parameter was not named
}

// FunctionPrototype is a function's signature as written at its declaration
// or definition site.
type FunctionPrototype struct {
	ReturnType   Type
	Name         Name
	Parameters   []Param
	Variadic     bool
	IsDefinition bool
}

// Function pairs a prototype with its body; Body is empty when the
// prototype is not a definition.
type Function struct {
	Prototype FunctionPrototype
	Body      []Stmt
}

// Decl is the sealed set of top-level declaration variants.
type Decl interface {
	decl()
}

type FunctionDecl struct {
	Function Function
}

type VariableDecl struct {
	Variable Variable
}

func (*FunctionDecl) decl() {}
func (*VariableDecl) decl() {}

// Root is the parsed source file: an ordered sequence of declarations.
type Root struct {
	Declarations []Decl
}
