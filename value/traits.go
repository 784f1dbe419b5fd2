package value

import (
	"fmt"
	"reflect"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/types"
)

// Constraint interfaces over the closed payload catalog. Engine code that is
// generic over a payload instantiates against one of these; a type outside
// the catalog does not compile.

// Unsigned covers the unsigned integer payloads, including the 128-bit
// vector and its unsigned lane views.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | U128 | U64x2 | U32x4 | U16x8 | U8x16
}

// Signed covers the signed integer payloads, including the signed 128-bit
// vector and lane views.
type Signed interface {
	int8 | int16 | int32 | int64 | I128 | I64x2 | I32x4 | I16x8 | I8x16
}

// Float covers the float payloads, scalar and lane-array.
type Float interface {
	float32 | float64 | F32x4 | F64x2
}

// Reference covers the two reference payloads.
type Reference interface {
	FuncRef | ExternRef
}

// Vector covers the 128-bit payloads and their lane views.
type Vector interface {
	U128 | I128 | U64x2 | I64x2 | U32x4 | I32x4 | U16x8 | I16x8 | U8x16 | I8x16 | F32x4 | F64x2
}

// Integer is the union of signed and unsigned integer payloads.
type Integer interface {
	Signed | Unsigned
}

// Numeric is the union of integer and float payloads.
type Numeric interface {
	Integer | Float
}

// Payload is the full value catalog: numeric and reference payloads.
type Payload interface {
	Numeric | Reference
}

// Slot covers the payload types that map directly onto a ValType tag: the
// word-sized integers, the 128-bit pair, the floats, and the references.
// Sub-word integers and lane views live inside a tagged slot but never tag
// one themselves.
type Slot interface {
	uint32 | int32 | uint64 | int64 | U128 | I128 | float32 | float64 | FuncRef | ExternRef
}

// Category is the scalar-level classification of a payload type. Every
// catalog type belongs to exactly one category.
type Category uint8

const (
	CatUnsigned Category = iota
	CatSigned
	CatFloat
	CatReference
)

func (c Category) String() string {
	switch c {
	case CatUnsigned:
		return "unsigned"
	case CatSigned:
		return "signed"
	case CatFloat:
		return "float"
	case CatReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Trait describes one row of the classification table: the category, the
// ValType the payload tags (ValNone for sub-word and lane types that only
// live inside a slot), and the signed/unsigned counterpart types. Floats are
// their own counterpart in both directions; references have none.
type Trait struct {
	SignedType   reflect.Type
	UnsignedType reflect.Type
	Category     Category
	ValType      types.ValType
}

// traitTable is the single registration of the payload catalog. All
// classification, tagging, and reinterpretation behavior is derived from it;
// the mapping is not duplicated anywhere else.
var traitTable = map[reflect.Type]Trait{
	reflect.TypeFor[uint8]():  {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[int8](), UnsignedType: reflect.TypeFor[uint8]()},
	reflect.TypeFor[uint16](): {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[int16](), UnsignedType: reflect.TypeFor[uint16]()},
	reflect.TypeFor[uint32](): {Category: CatUnsigned, ValType: types.ValI32, SignedType: reflect.TypeFor[int32](), UnsignedType: reflect.TypeFor[uint32]()},
	reflect.TypeFor[uint64](): {Category: CatUnsigned, ValType: types.ValI64, SignedType: reflect.TypeFor[int64](), UnsignedType: reflect.TypeFor[uint64]()},
	reflect.TypeFor[U128]():   {Category: CatUnsigned, ValType: types.ValV128, SignedType: reflect.TypeFor[I128](), UnsignedType: reflect.TypeFor[U128]()},
	reflect.TypeFor[U64x2]():  {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I64x2](), UnsignedType: reflect.TypeFor[U64x2]()},
	reflect.TypeFor[U32x4]():  {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I32x4](), UnsignedType: reflect.TypeFor[U32x4]()},
	reflect.TypeFor[U16x8]():  {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I16x8](), UnsignedType: reflect.TypeFor[U16x8]()},
	reflect.TypeFor[U8x16]():  {Category: CatUnsigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I8x16](), UnsignedType: reflect.TypeFor[U8x16]()},

	reflect.TypeFor[int8]():  {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[int8](), UnsignedType: reflect.TypeFor[uint8]()},
	reflect.TypeFor[int16](): {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[int16](), UnsignedType: reflect.TypeFor[uint16]()},
	reflect.TypeFor[int32](): {Category: CatSigned, ValType: types.ValI32, SignedType: reflect.TypeFor[int32](), UnsignedType: reflect.TypeFor[uint32]()},
	reflect.TypeFor[int64](): {Category: CatSigned, ValType: types.ValI64, SignedType: reflect.TypeFor[int64](), UnsignedType: reflect.TypeFor[uint64]()},
	reflect.TypeFor[I128]():  {Category: CatSigned, ValType: types.ValV128, SignedType: reflect.TypeFor[I128](), UnsignedType: reflect.TypeFor[U128]()},
	reflect.TypeFor[I64x2](): {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I64x2](), UnsignedType: reflect.TypeFor[U64x2]()},
	reflect.TypeFor[I32x4](): {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I32x4](), UnsignedType: reflect.TypeFor[U32x4]()},
	reflect.TypeFor[I16x8](): {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I16x8](), UnsignedType: reflect.TypeFor[U16x8]()},
	reflect.TypeFor[I8x16](): {Category: CatSigned, ValType: types.ValNone, SignedType: reflect.TypeFor[I8x16](), UnsignedType: reflect.TypeFor[U8x16]()},

	reflect.TypeFor[float32](): {Category: CatFloat, ValType: types.ValF32, SignedType: reflect.TypeFor[float32](), UnsignedType: reflect.TypeFor[float32]()},
	reflect.TypeFor[float64](): {Category: CatFloat, ValType: types.ValF64, SignedType: reflect.TypeFor[float64](), UnsignedType: reflect.TypeFor[float64]()},
	reflect.TypeFor[F32x4]():   {Category: CatFloat, ValType: types.ValNone, SignedType: reflect.TypeFor[F32x4](), UnsignedType: reflect.TypeFor[F32x4]()},
	reflect.TypeFor[F64x2]():   {Category: CatFloat, ValType: types.ValNone, SignedType: reflect.TypeFor[F64x2](), UnsignedType: reflect.TypeFor[F64x2]()},

	reflect.TypeFor[FuncRef]():   {Category: CatReference, ValType: types.ValFuncRef},
	reflect.TypeFor[ExternRef](): {Category: CatReference, ValType: types.ValExtern},
}

// TraitFor returns the classification row for a payload value. Types outside
// the catalog are a checked failure.
func TraitFor(v any) (Trait, error) {
	t, ok := traitTable[reflect.TypeOf(v)]
	if !ok {
		return Trait{}, errors.TypeUnlisted(errors.PhaseClassify, fmt.Sprintf("%T", v))
	}
	return t, nil
}

// CategoryOf returns the category of a payload type. Totality over the
// catalog is enforced by the Payload constraint.
func CategoryOf[T Payload]() Category {
	return traitTable[reflect.TypeFor[T]()].Category
}

// CategoryFor classifies a payload value held as any. Types outside the
// catalog are a checked failure.
func CategoryFor(v any) (Category, error) {
	t, err := TraitFor(v)
	if err != nil {
		return 0, err
	}
	return t.Category, nil
}

// ValTypeOf is the single source of truth mapping a native slot type to its
// ValType tag. The Slot constraint rejects types with no direct tag at
// compile time.
func ValTypeOf[T Slot]() types.ValType {
	return traitTable[reflect.TypeFor[T]()].ValType
}

// ReinterpretSigned returns the payload read through its signed counterpart
// of the same width, preserving the bit pattern exactly. Float payloads pass
// through unchanged; reference payloads fail classification.
func ReinterpretSigned(v any) (any, error) {
	switch x := v.(type) {
	case uint8:
		return int8(x), nil
	case uint16:
		return int16(x), nil
	case uint32:
		return int32(x), nil
	case uint64:
		return int64(x), nil
	case U128:
		return I128(x), nil
	case U64x2:
		return I64x2{int64(x[0]), int64(x[1])}, nil
	case U32x4:
		return I32x4{int32(x[0]), int32(x[1]), int32(x[2]), int32(x[3])}, nil
	case U16x8:
		var out I16x8
		for i, l := range x {
			out[i] = int16(l)
		}
		return out, nil
	case U8x16:
		return U128(x).AsI8x16(), nil
	case int8, int16, int32, int64, I128, I64x2, I32x4, I16x8, I8x16:
		return x, nil
	case float32, float64, F32x4, F64x2:
		return x, nil
	case FuncRef, ExternRef:
		return nil, errors.New(errors.PhaseClassify, errors.KindTagMismatch).
			Want("numeric payload").
			Got(fmt.Sprintf("%T", x)).
			Detail("references have no signed view").
			Build()
	default:
		return nil, errors.TypeUnlisted(errors.PhaseClassify, fmt.Sprintf("%T", v))
	}
}

// ReinterpretUnsigned is the inverse of ReinterpretSigned: the unsigned view
// of the same bits. Floats pass through; references fail classification.
func ReinterpretUnsigned(v any) (any, error) {
	switch x := v.(type) {
	case int8:
		return uint8(x), nil
	case int16:
		return uint16(x), nil
	case int32:
		return uint32(x), nil
	case int64:
		return uint64(x), nil
	case I128:
		return U128(x), nil
	case I64x2:
		return U64x2{uint64(x[0]), uint64(x[1])}, nil
	case I32x4:
		return U32x4{uint32(x[0]), uint32(x[1]), uint32(x[2]), uint32(x[3])}, nil
	case I16x8:
		var out U16x8
		for i, l := range x {
			out[i] = uint16(l)
		}
		return out, nil
	case I8x16:
		return V128FromI8x16(x).AsU8x16(), nil
	case uint8, uint16, uint32, uint64, U128, U64x2, U32x4, U16x8, U8x16:
		return x, nil
	case float32, float64, F32x4, F64x2:
		return x, nil
	case FuncRef, ExternRef:
		return nil, errors.New(errors.PhaseClassify, errors.KindTagMismatch).
			Want("numeric payload").
			Got(fmt.Sprintf("%T", x)).
			Detail("references have no unsigned view").
			Build()
	default:
		return nil, errors.TypeUnlisted(errors.PhaseClassify, fmt.Sprintf("%T", v))
	}
}
