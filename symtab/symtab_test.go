/*
File    : ycc/symtab/symtab_test.go
*/
package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
)

func TestSet_ThenLookup_ReturnsTheDeclaredType(t *testing.T) {
	table := New()
	loc := diagnostics.Loc{Line: 1, Column: 1}
	table.Set(loc, Symbol{Type: ast.Type{Kind: ast.Int}, Name: "x", Linkage: Local})

	got := table.Lookup(loc, "x")
	assert.Equal(t, ast.Type{Kind: ast.Int}, got.Type)
}

func TestSet_Redefinition_IsFatal(t *testing.T) {
	table := New()
	loc := diagnostics.Loc{Line: 3, Column: 5}
	table.Set(loc, Symbol{Type: ast.Type{Kind: ast.Int}, Name: "x", Linkage: Local})

	assert.PanicsWithValue(t, &diagnostics.FatalError{Loc: loc, Msg: "redefinition of 'x'"}, func() {
		table.Set(loc, Symbol{Type: ast.Type{Kind: ast.Float}, Name: "x", Linkage: Local})
	})
}

func TestLookup_Miss_IsFatal(t *testing.T) {
	table := New()
	loc := diagnostics.Loc{Line: 2, Column: 7}

	assert.PanicsWithValue(t, &diagnostics.FatalError{Loc: loc, Msg: "undefined 'y'"}, func() {
		table.Lookup(loc, "y")
	})
}

func TestReset_DropsOnlyLocalSymbols(t *testing.T) {
	table := New()
	loc := diagnostics.Loc{Line: 1, Column: 1}
	table.Set(loc, Symbol{Type: ast.Type{Kind: ast.Int}, Name: "g", Linkage: Global})
	table.Set(loc, Symbol{Type: ast.Type{Kind: ast.Int}, Name: "l", Linkage: Local})

	table.Reset()

	got := table.Lookup(loc, "g")
	assert.Equal(t, "g", got.Name)
	assert.PanicsWithValue(t, &diagnostics.FatalError{Loc: loc, Msg: "undefined 'l'"}, func() {
		table.Lookup(loc, "l")
	})
}
