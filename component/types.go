package component

import (
	"fmt"
	"reflect"

	"github.com/wippyai/wasm-values/errors"
)

// Char is the interface-type character payload: a Unicode scalar value.
// It is a defined type so the catalog can tell it apart from s32.
type Char rune

// Composite placeholder types. Each maps to its own Kind regardless of
// payload representation; the field/case schema they refer to is owned by
// the type resolver, not the value.
type (
	Record   struct{}
	Variant  struct{}
	Tuple    struct{}
	Flags    struct{}
	Enum     struct{}
	Union    struct{}
	Expected struct{}
	List     struct{}
)

// Unknown is the placeholder payload every composite value carries. Its
// counter has no defined meaning; only the kind tag round-trips.
type Unknown struct {
	Value uint64
}

// Scalar covers the native payloads of the scalar interface kinds.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		Char | float32 | float64 | string
}

// kindTable is the single registration mapping native payload identity to
// interface kind, covering scalars and composite placeholders.
var kindTable = map[reflect.Type]Kind{
	reflect.TypeFor[bool]():    KindBool,
	reflect.TypeFor[int8]():    KindS8,
	reflect.TypeFor[uint8]():   KindU8,
	reflect.TypeFor[int16]():   KindS16,
	reflect.TypeFor[uint16]():  KindU16,
	reflect.TypeFor[int32]():   KindS32,
	reflect.TypeFor[uint32]():  KindU32,
	reflect.TypeFor[int64]():   KindS64,
	reflect.TypeFor[uint64]():  KindU64,
	reflect.TypeFor[Char]():    KindChar,
	reflect.TypeFor[float32](): KindFloat32,
	reflect.TypeFor[float64](): KindFloat64,
	reflect.TypeFor[string]():  KindString,

	reflect.TypeFor[Record]():   KindRecord,
	reflect.TypeFor[Variant]():  KindVariant,
	reflect.TypeFor[Tuple]():    KindTuple,
	reflect.TypeFor[Flags]():    KindFlags,
	reflect.TypeFor[Enum]():     KindEnum,
	reflect.TypeFor[Union]():    KindUnion,
	reflect.TypeFor[Expected](): KindExpected,
	reflect.TypeFor[List]():     KindList,
	reflect.TypeFor[Unknown]():  KindUnknown,
}

// KindOf returns the interface kind of a scalar payload type.
func KindOf[T Scalar]() Kind {
	return kindTable[reflect.TypeFor[T]()]
}

// KindFor classifies any native payload value, scalar or composite
// placeholder. Types outside the catalog are a checked failure.
func KindFor(v any) (Kind, error) {
	k, ok := kindTable[reflect.TypeOf(v)]
	if !ok {
		return KindUnknown, errors.TypeUnlisted(errors.PhaseClassify, fmt.Sprintf("%T", v))
	}
	return k, nil
}
