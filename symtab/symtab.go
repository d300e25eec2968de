/*
File    : ycc/symtab/symtab.go
*/

// Package symtab implements the compiler's flat name resolver: linear-scan
// lookups over a small ordered slice rather than a hash map, because the
// table holds at most a few hundred symbols per compile and deterministic
// ordering matters more than asymptotic lookup cost.
package symtab

import (
	"github.com/yhyadev/ycc/ast"
	"github.com/yhyadev/ycc/diagnostics"
)

// Linkage is whether a symbol is visible at module scope or confined to the
// function currently being generated.
type Linkage int

const (
	Global Linkage = iota
	Local
)

// Symbol binds a declared name to its type, linkage, and backend storage.
// BackendHandle is an opaque llvm.Value produced by the LLVM binding:
// the function value for a function symbol, or a pointer to an alloca/
// global for a variable symbol.
type Symbol struct {
	Type          ast.Type
	Name          string
	Linkage       Linkage
	BackendHandle any
}

// Table is an ordered sequence of symbols. No two symbols may share a name
// at any observable state.
type Table struct {
	symbols []Symbol
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{}
}

// Set appends sym to the table. On a name collision it reports a fatal
// "redefinition of '<name>'" diagnostic at loc and does not return.
func (t *Table) Set(loc diagnostics.Loc, sym Symbol) {
	for _, existing := range t.symbols {
		if existing.Name == sym.Name {
			diagnostics.Fatal(loc, "redefinition of '%s'", sym.Name)
		}
	}
	t.symbols = append(t.symbols, sym)
}

// Lookup returns the first symbol named name. On a miss it reports a fatal
// "undefined '<name>'" diagnostic at loc and does not return.
func (t *Table) Lookup(loc diagnostics.Loc, name string) Symbol {
	for _, existing := range t.symbols {
		if existing.Name == name {
			return existing
		}
	}
	diagnostics.Fatal(loc, "undefined '%s'", name)
	panic("unreachable")
}

// Reset drops every symbol whose linkage is not Global. Called after each
// function body is emitted; implementation is free to reorder the
// remaining globals since no ordering is exposed to callers.
func (t *Table) Reset() {
	kept := t.symbols[:0]
	for _, sym := range t.symbols {
		if sym.Linkage == Global {
			kept = append(kept, sym)
		}
	}
	t.symbols = kept
}
