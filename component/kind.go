package component

// Kind discriminates the interface-type value space.
type Kind uint8

const (
	KindBool Kind = iota
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
	KindChar
	KindFloat32
	KindFloat64
	KindString
	KindRecord
	KindVariant
	KindTuple
	KindFlags
	KindEnum
	KindUnion
	KindExpected
	KindList
	KindUnknown
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindS8:       "s8",
	KindU8:       "u8",
	KindS16:      "s16",
	KindU16:      "u16",
	KindS32:      "s32",
	KindU32:      "u32",
	KindS64:      "s64",
	KindU64:      "u64",
	KindChar:     "char",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindString:   "string",
	KindRecord:   "record",
	KindVariant:  "variant",
	KindTuple:    "tuple",
	KindFlags:    "flags",
	KindEnum:     "enum",
	KindUnion:    "union",
	KindExpected: "expected",
	KindList:     "list",
	KindUnknown:  "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Valid returns true if k is a member of the catalog.
func (k Kind) Valid() bool {
	return k <= KindUnknown
}

// IsScalar returns true for kinds whose value carries a native payload
// directly.
func (k Kind) IsScalar() bool {
	return k <= KindString
}

// IsComposite returns true for kinds whose value is a placeholder referring
// to an out-of-band schema.
func (k Kind) IsComposite() bool {
	return k >= KindRecord && k <= KindList
}
