package value

import (
	"fmt"
	"math"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/registry"
	"github.com/wippyai/wasm-values/types"
)

// Value is the runtime value union: one tagged slot holding any payload from
// the catalog. It is passed by value throughout the engine; copying it is a
// plain struct copy. For numeric kinds it owns nothing; for reference kinds
// it carries a non-owning handle whose referent is governed by the registry
// tables.
//
// Invariant: the active payload always matches Kind(). Accessors enforce it
// with checked failures instead of silent reinterpretation.
type Value struct {
	lo, hi uint64
	ref    Ref
	kind   types.ValType
}

// NewI32 constructs an i32 value from its signed view.
func NewI32(v int32) Value {
	return Value{kind: types.ValI32, lo: uint64(uint32(v))}
}

// NewU32 constructs an i32 value from its unsigned view.
func NewU32(v uint32) Value {
	return Value{kind: types.ValI32, lo: uint64(v)}
}

// NewI64 constructs an i64 value from its signed view.
func NewI64(v int64) Value {
	return Value{kind: types.ValI64, lo: uint64(v)}
}

// NewU64 constructs an i64 value from its unsigned view.
func NewU64(v uint64) Value {
	return Value{kind: types.ValI64, lo: v}
}

// NewF32 constructs an f32 value. The bit pattern is preserved exactly,
// including NaN payloads.
func NewF32(v float32) Value {
	return Value{kind: types.ValF32, lo: uint64(math.Float32bits(v))}
}

// NewF64 constructs an f64 value. The bit pattern is preserved exactly.
func NewF64(v float64) Value {
	return Value{kind: types.ValF64, lo: math.Float64bits(v)}
}

// NewV128 constructs a v128 value.
func NewV128(v V128) Value {
	lanes := v.AsU64x2()
	return Value{kind: types.ValV128, lo: lanes[0], hi: lanes[1]}
}

// NewFuncRef constructs a funcref value for a function-instance handle.
// The null handle yields the null funcref.
func NewFuncRef(h registry.Handle) Value {
	return Value{kind: types.ValFuncRef, ref: FuncRefOf(h)}
}

// NewExternRef constructs an externref value for a host-object handle.
// The null handle yields the null externref.
func NewExternRef(h registry.Handle) Value {
	return Value{kind: types.ValExtern, ref: ExternRefOf(h)}
}

// NewRef constructs a value of the given reference kind from a Ref. A null
// Ref takes the requested static kind; a non-null Ref of the other flavor is
// a tag mismatch.
func NewRef(kind types.ValType, r Ref) (Value, error) {
	if !kind.IsRef() {
		return Value{}, errors.TagMismatch(errors.PhaseConstruct, "reference type", kind.String())
	}
	if !r.IsNull() {
		want := RefFunc
		if kind == types.ValExtern {
			want = RefExtern
		}
		if r.Kind() != want {
			return Value{}, errors.TagMismatch(errors.PhaseConstruct, want.String(), r.Kind().String())
		}
	}
	return Value{kind: kind, ref: r}, nil
}

// New constructs a value from any native slot payload, tagging it through
// ValTypeOf. This is the construction path host marshalling uses; it cannot
// disagree with the classification table.
func New[T Slot](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return NewI32(x)
	case uint32:
		return NewU32(x)
	case int64:
		return NewI64(x)
	case uint64:
		return NewU64(x)
	case float32:
		return NewF32(x)
	case float64:
		return NewF64(x)
	case U128:
		return NewV128(x)
	case I128:
		return NewV128(U128(x))
	case FuncRef:
		return NewFuncRef(x.Handle)
	case ExternRef:
		return NewExternRef(x.Handle)
	default:
		// Slot is a closed constraint; this arm is unreachable.
		panic(fmt.Sprintf("wasm-values: unlisted slot type %T", v))
	}
}

// Kind returns the value's tag.
func (v Value) Kind() types.ValType {
	return v.kind
}

// I32 reads an i32 slot through its signed view.
func (v Value) I32() (int32, error) {
	if v.kind != types.ValI32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "i32", v.kind.String())
	}
	return int32(uint32(v.lo)), nil
}

// U32 reads an i32 slot through its unsigned view. Same bits as I32.
func (v Value) U32() (uint32, error) {
	if v.kind != types.ValI32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "i32", v.kind.String())
	}
	return uint32(v.lo), nil
}

// I64 reads an i64 slot through its signed view.
func (v Value) I64() (int64, error) {
	if v.kind != types.ValI64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "i64", v.kind.String())
	}
	return int64(v.lo), nil
}

// U64 reads an i64 slot through its unsigned view. Same bits as I64.
func (v Value) U64() (uint64, error) {
	if v.kind != types.ValI64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "i64", v.kind.String())
	}
	return v.lo, nil
}

// F32 reads an f32 slot. The bit pattern round-trips NewF32 exactly.
func (v Value) F32() (float32, error) {
	if v.kind != types.ValF32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "f32", v.kind.String())
	}
	return math.Float32frombits(uint32(v.lo)), nil
}

// F64 reads an f64 slot.
func (v Value) F64() (float64, error) {
	if v.kind != types.ValF64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "f64", v.kind.String())
	}
	return math.Float64frombits(v.lo), nil
}

// V128 reads a v128 slot.
func (v Value) V128() (V128, error) {
	if v.kind != types.ValV128 {
		return V128{}, errors.TagMismatch(errors.PhaseAccess, "v128", v.kind.String())
	}
	return V128FromU64x2(U64x2{v.lo, v.hi}), nil
}

// FuncRef reads a funcref slot.
func (v Value) FuncRef() (Ref, error) {
	if v.kind != types.ValFuncRef {
		return Ref{}, errors.TagMismatch(errors.PhaseAccess, "funcref", v.kind.String())
	}
	return v.ref, nil
}

// ExternRef reads an externref slot.
func (v Value) ExternRef() (Ref, error) {
	if v.kind != types.ValExtern {
		return Ref{}, errors.TagMismatch(errors.PhaseAccess, "externref", v.kind.String())
	}
	return v.ref, nil
}

// Ref reads a slot of either reference kind.
func (v Value) Ref() (Ref, error) {
	if !v.kind.IsRef() {
		return Ref{}, errors.TagMismatch(errors.PhaseAccess, "reference", v.kind.String())
	}
	return v.ref, nil
}

// IsNullRef reports whether the value is a reference holding the null
// sentinel. It is false for numeric kinds.
func (v Value) IsNullRef() bool {
	return v.kind.IsRef() && v.ref.IsNull()
}

// Raw returns the low and high payload words. For scalar kinds the high word
// is zero; for reference kinds both are zero (the handle is not raw bits).
// Intended for diagnostics, not for bypassing the tag.
func (v Value) Raw() (lo, hi uint64) {
	return v.lo, v.hi
}

func (v Value) String() string {
	switch v.kind {
	case types.ValI32:
		return fmt.Sprintf("i32:%d", int32(uint32(v.lo)))
	case types.ValI64:
		return fmt.Sprintf("i64:%d", int64(v.lo))
	case types.ValF32:
		return fmt.Sprintf("f32:%g", math.Float32frombits(uint32(v.lo)))
	case types.ValF64:
		return fmt.Sprintf("f64:%g", math.Float64frombits(v.lo))
	case types.ValV128:
		return fmt.Sprintf("v128:%#016x%016x", v.hi, v.lo)
	case types.ValFuncRef, types.ValExtern:
		if v.ref.IsNull() {
			return v.kind.String() + ":null"
		}
		return fmt.Sprintf("%s:%#x", v.kind, uint64(v.ref.handle))
	default:
		return "value:" + v.kind.String()
	}
}
