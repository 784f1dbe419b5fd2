package component

import (
	"fmt"
	"math"

	"github.com/wippyai/wasm-values/errors"
)

// Value is the interface-type value union: one live scalar payload, or a
// kind-tagged composite placeholder. Like the core value union it is
// copyable by value; the string payload shares its backing storage the way
// Go strings always do.
type Value struct {
	str  string
	bits uint64
	kind Kind
}

// NewBool constructs a bool value.
func NewBool(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{kind: KindBool, bits: b}
}

// NewS8 constructs an s8 value.
func NewS8(v int8) Value {
	return Value{kind: KindS8, bits: uint64(uint8(v))}
}

// NewU8 constructs a u8 value.
func NewU8(v uint8) Value {
	return Value{kind: KindU8, bits: uint64(v)}
}

// NewS16 constructs an s16 value.
func NewS16(v int16) Value {
	return Value{kind: KindS16, bits: uint64(uint16(v))}
}

// NewU16 constructs a u16 value.
func NewU16(v uint16) Value {
	return Value{kind: KindU16, bits: uint64(v)}
}

// NewS32 constructs an s32 value.
func NewS32(v int32) Value {
	return Value{kind: KindS32, bits: uint64(uint32(v))}
}

// NewU32 constructs a u32 value.
func NewU32(v uint32) Value {
	return Value{kind: KindU32, bits: uint64(v)}
}

// NewS64 constructs an s64 value.
func NewS64(v int64) Value {
	return Value{kind: KindS64, bits: uint64(v)}
}

// NewU64 constructs a u64 value.
func NewU64(v uint64) Value {
	return Value{kind: KindU64, bits: v}
}

// NewChar constructs a char value.
func NewChar(v Char) Value {
	return Value{kind: KindChar, bits: uint64(uint32(v))}
}

// NewFloat32 constructs a float32 value, preserving the bit pattern.
func NewFloat32(v float32) Value {
	return Value{kind: KindFloat32, bits: uint64(math.Float32bits(v))}
}

// NewFloat64 constructs a float64 value, preserving the bit pattern.
func NewFloat64(v float64) Value {
	return Value{kind: KindFloat64, bits: math.Float64bits(v)}
}

// NewString constructs a string value.
func NewString(v string) Value {
	return Value{kind: KindString, str: v}
}

// NewComposite constructs the placeholder value for a composite kind. Only
// the kind tag is meaningful; the payload is the Unknown placeholder.
func NewComposite(k Kind) (Value, error) {
	if !k.IsComposite() && k != KindUnknown {
		return Value{}, errors.TagMismatch(errors.PhaseConstruct, "composite kind", k.String())
	}
	return Value{kind: k}, nil
}

// Kind returns the value's tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool reads a bool value.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, errors.TagMismatch(errors.PhaseAccess, "bool", v.kind.String())
	}
	return v.bits != 0, nil
}

// S8 reads an s8 value.
func (v Value) S8() (int8, error) {
	if v.kind != KindS8 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "s8", v.kind.String())
	}
	return int8(uint8(v.bits)), nil
}

// U8 reads a u8 value.
func (v Value) U8() (uint8, error) {
	if v.kind != KindU8 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "u8", v.kind.String())
	}
	return uint8(v.bits), nil
}

// S16 reads an s16 value.
func (v Value) S16() (int16, error) {
	if v.kind != KindS16 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "s16", v.kind.String())
	}
	return int16(uint16(v.bits)), nil
}

// U16 reads a u16 value.
func (v Value) U16() (uint16, error) {
	if v.kind != KindU16 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "u16", v.kind.String())
	}
	return uint16(v.bits), nil
}

// S32 reads an s32 value.
func (v Value) S32() (int32, error) {
	if v.kind != KindS32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "s32", v.kind.String())
	}
	return int32(uint32(v.bits)), nil
}

// U32 reads a u32 value.
func (v Value) U32() (uint32, error) {
	if v.kind != KindU32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "u32", v.kind.String())
	}
	return uint32(v.bits), nil
}

// S64 reads an s64 value.
func (v Value) S64() (int64, error) {
	if v.kind != KindS64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "s64", v.kind.String())
	}
	return int64(v.bits), nil
}

// U64 reads a u64 value.
func (v Value) U64() (uint64, error) {
	if v.kind != KindU64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "u64", v.kind.String())
	}
	return v.bits, nil
}

// Char reads a char value.
func (v Value) Char() (Char, error) {
	if v.kind != KindChar {
		return 0, errors.TagMismatch(errors.PhaseAccess, "char", v.kind.String())
	}
	return Char(uint32(v.bits)), nil
}

// Float32 reads a float32 value.
func (v Value) Float32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "float32", v.kind.String())
	}
	return math.Float32frombits(uint32(v.bits)), nil
}

// Float64 reads a float64 value.
func (v Value) Float64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, errors.TagMismatch(errors.PhaseAccess, "float64", v.kind.String())
	}
	return math.Float64frombits(v.bits), nil
}

// String reads a string value. Note this is the payload accessor; use
// Format for diagnostics.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", errors.TagMismatch(errors.PhaseAccess, "string", v.kind.String())
	}
	return v.str, nil
}

// Payload returns the native payload: the scalar for scalar kinds, the
// Unknown placeholder for composite kinds.
func (v Value) Payload() any {
	switch v.kind {
	case KindBool:
		return v.bits != 0
	case KindS8:
		return int8(uint8(v.bits))
	case KindU8:
		return uint8(v.bits)
	case KindS16:
		return int16(uint16(v.bits))
	case KindU16:
		return uint16(v.bits)
	case KindS32:
		return int32(uint32(v.bits))
	case KindU32:
		return uint32(v.bits)
	case KindS64:
		return int64(v.bits)
	case KindU64:
		return v.bits
	case KindChar:
		return Char(uint32(v.bits))
	case KindFloat32:
		return math.Float32frombits(uint32(v.bits))
	case KindFloat64:
		return math.Float64frombits(v.bits)
	case KindString:
		return v.str
	default:
		return Unknown{Value: v.bits}
	}
}

// Format renders the value for diagnostics.
func (v Value) Format() string {
	if v.kind.IsScalar() {
		return fmt.Sprintf("%s:%v", v.kind, v.Payload())
	}
	return v.kind.String()
}

// defaultTable holds the canonical default per kind: zero, false, or empty
// for scalars, the kind-tagged placeholder for composites.
var defaultTable = map[Kind]Value{
	KindBool:     {kind: KindBool},
	KindS8:       {kind: KindS8},
	KindU8:       {kind: KindU8},
	KindS16:      {kind: KindS16},
	KindU16:      {kind: KindU16},
	KindS32:      {kind: KindS32},
	KindU32:      {kind: KindU32},
	KindS64:      {kind: KindS64},
	KindU64:      {kind: KindU64},
	KindChar:     {kind: KindChar},
	KindFloat32:  {kind: KindFloat32},
	KindFloat64:  {kind: KindFloat64},
	KindString:   {kind: KindString},
	KindRecord:   {kind: KindRecord},
	KindVariant:  {kind: KindVariant},
	KindTuple:    {kind: KindTuple},
	KindFlags:    {kind: KindFlags},
	KindEnum:     {kind: KindEnum},
	KindUnion:    {kind: KindUnion},
	KindExpected: {kind: KindExpected},
	KindList:     {kind: KindList},
	KindUnknown:  {kind: KindUnknown},
}

// DefaultValue returns the default value for an interface kind. Composites
// have no meaningful default beyond the placeholder. An out-of-catalog kind
// is an engine bug and panics.
func DefaultValue(k Kind) Value {
	d, ok := defaultTable[k]
	if !ok {
		panic(fmt.Sprintf("wasm-values: no default value for interface kind %d", k))
	}
	return d
}
