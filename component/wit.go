package component

import (
	"go.bytecodealliance.org/wit"
)

// KindOfWit classifies a WIT type into the interface-kind catalog. Types the
// catalog has no case for (options, resource handles) report KindUnknown.
func KindOfWit(t wit.Type) Kind {
	switch w := t.(type) {
	case wit.Bool:
		return KindBool
	case wit.S8:
		return KindS8
	case wit.U8:
		return KindU8
	case wit.S16:
		return KindS16
	case wit.U16:
		return KindU16
	case wit.S32:
		return KindS32
	case wit.U32:
		return KindU32
	case wit.S64:
		return KindS64
	case wit.U64:
		return KindU64
	case wit.Char:
		return KindChar
	case wit.F32:
		return KindFloat32
	case wit.F64:
		return KindFloat64
	case wit.String:
		return KindString
	case *wit.TypeDef:
		switch w.Kind.(type) {
		case *wit.Record:
			return KindRecord
		case *wit.Variant:
			return KindVariant
		case *wit.Tuple:
			return KindTuple
		case *wit.Flags:
			return KindFlags
		case *wit.Enum:
			return KindEnum
		case *wit.Result:
			return KindExpected
		case *wit.List:
			return KindList
		}
	}
	return KindUnknown
}

// WitOf returns the WIT primitive for a scalar kind. Composite kinds need a
// full type definition with schema, which the value layer does not hold, so
// ok is false for them.
func WitOf(k Kind) (wit.Type, bool) {
	switch k {
	case KindBool:
		return wit.Bool{}, true
	case KindS8:
		return wit.S8{}, true
	case KindU8:
		return wit.U8{}, true
	case KindS16:
		return wit.S16{}, true
	case KindU16:
		return wit.U16{}, true
	case KindS32:
		return wit.S32{}, true
	case KindU32:
		return wit.U32{}, true
	case KindS64:
		return wit.S64{}, true
	case KindU64:
		return wit.U64{}, true
	case KindChar:
		return wit.Char{}, true
	case KindFloat32:
		return wit.F32{}, true
	case KindFloat64:
		return wit.F64{}, true
	case KindString:
		return wit.String{}, true
	default:
		return nil, false
	}
}
