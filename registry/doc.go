// Package registry provides the generation-checked tables that own the
// referents of funcref and externref values.
//
// A reference value never owns its referent; it carries a Handle into one of
// these tables. Handles encode a slot index and a generation counter. When a
// slot is dropped and reused, its generation changes, so a stale handle is
// detected at resolution time instead of dereferencing freed state.
//
// # Handle Lifecycle
//
//	tbl := registry.NewFuncTable()
//
//	// Register a function instance, get a handle
//	h, err := tbl.Insert(&registry.FuncInstance{Name: "add"})
//
//	// Resolve later; fails with ErrStaleReference after Drop
//	fi, err := tbl.Resolve(h)
//
// # Trust Boundary
//
// ExternTable stores opaque host values. The engine never interprets them;
// Extern[T] only performs a Go type assertion on retrieval. Supplying the
// wrong T is a caller error reported as a tag mismatch, not a crash.
package registry
