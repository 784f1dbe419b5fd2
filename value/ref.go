package value

import (
	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/registry"
)

// FuncRef is the native payload of a funcref value: a non-owning handle to a
// function instance in a registry.FuncTable. The table bounds the referent's
// lifetime; the payload never frees anything.
type FuncRef struct {
	Handle registry.Handle
}

// ExternRef is the native payload of an externref value: a non-owning handle
// to an opaque host object in a registry.ExternTable. The engine carries it
// without interpreting the pointee.
type ExternRef struct {
	Handle registry.Handle
}

// RefKind discriminates the Ref union.
type RefKind uint8

const (
	// RefNull is the zero kind: the shared null state of both reference
	// flavors. A zero Ref is the null reference.
	RefNull RefKind = iota
	RefFunc
	RefExtern
)

func (k RefKind) String() string {
	switch k {
	case RefNull:
		return "null"
	case RefFunc:
		return "funcref"
	case RefExtern:
		return "externref"
	default:
		return "unknown"
	}
}

// Ref is the narrow reference union: null, funcref, or externref. Null is a
// distinguished case of the union, not a magic bit pattern: the constructors
// below cannot produce a non-null Ref holding the null handle.
type Ref struct {
	handle registry.Handle
	kind   RefKind
}

// NullRef returns the null reference.
func NullRef() Ref {
	return Ref{}
}

// FuncRefOf returns a funcref for the given handle. The null handle yields
// the null reference.
func FuncRefOf(h registry.Handle) Ref {
	if h.IsNull() {
		return Ref{}
	}
	return Ref{handle: h, kind: RefFunc}
}

// ExternRefOf returns an externref for the given handle. The null handle
// yields the null reference.
func ExternRefOf(h registry.Handle) Ref {
	if h.IsNull() {
		return Ref{}
	}
	return Ref{handle: h, kind: RefExtern}
}

// Kind returns the active case of the union.
func (r Ref) Kind() RefKind {
	return r.kind
}

// IsNull reports whether the reference is the null sentinel. It is
// equivalent to the handle being null, whatever the static tag of the slot
// the reference came from.
func (r Ref) IsNull() bool {
	return r.handle.IsNull()
}

// Func returns the function-instance handle. It fails on a null reference
// and on an externref.
func (r Ref) Func() (registry.Handle, error) {
	switch r.kind {
	case RefFunc:
		return r.handle, nil
	case RefNull:
		return registry.NullHandle, errors.NullReference(errors.PhaseAccess, "funcref retrieval")
	default:
		return registry.NullHandle, errors.TagMismatch(errors.PhaseAccess, "funcref", r.kind.String())
	}
}

// Extern returns the host-object handle. It fails on a null reference and
// on a funcref.
func (r Ref) Extern() (registry.Handle, error) {
	switch r.kind {
	case RefExtern:
		return r.handle, nil
	case RefNull:
		return registry.NullHandle, errors.NullReference(errors.PhaseAccess, "externref retrieval")
	default:
		return registry.NullHandle, errors.TagMismatch(errors.PhaseAccess, "externref", r.kind.String())
	}
}

func (r Ref) String() string {
	if r.IsNull() {
		return "ref.null"
	}
	return r.kind.String()
}
