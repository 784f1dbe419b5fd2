package types

// ValType represents a WebAssembly value type.
// The constant values match the binary-format type encodings.
type ValType byte

const (
	ValI32     ValType = 0x7F // 32-bit integer
	ValI64     ValType = 0x7E // 64-bit integer
	ValF32     ValType = 0x7D // 32-bit float
	ValF64     ValType = 0x7C // 64-bit float
	ValV128    ValType = 0x7B // 128-bit vector (SIMD)
	ValFuncRef ValType = 0x70 // Function reference
	ValExtern  ValType = 0x6F // External reference

	// ValNone marks an absent type: the empty block type in the binary
	// format. A live value is never tagged ValNone.
	ValNone ValType = 0x40
)

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	case ValV128:
		return "v128"
	case ValFuncRef:
		return "funcref"
	case ValExtern:
		return "externref"
	case ValNone:
		return "none"
	default:
		return "unknown"
	}
}

// Valid returns true if v is a member of the value-type catalog.
// ValNone is a valid type descriptor but never a valid value tag.
func (v ValType) Valid() bool {
	switch v {
	case ValI32, ValI64, ValF32, ValF64, ValV128, ValFuncRef, ValExtern, ValNone:
		return true
	default:
		return false
	}
}

// IsNum returns true if the type is a numeric type (integer, float, vector).
func (v ValType) IsNum() bool {
	switch v {
	case ValI32, ValI64, ValF32, ValF64, ValV128:
		return true
	default:
		return false
	}
}

// IsRef returns true if the type is a reference type (funcref, externref).
func (v ValType) IsRef() bool {
	return v == ValFuncRef || v == ValExtern
}

// Size returns the byte size of a value of this type.
// Returns -1 for reference types; they are not stored to linear memory.
func (v ValType) Size() int {
	switch v {
	case ValI32, ValF32:
		return 4
	case ValI64, ValF64:
		return 8
	case ValV128:
		return 16
	case ValFuncRef, ValExtern:
		return -1
	default:
		return 0
	}
}

// FuncType represents a WebAssembly function signature with parameter and
// result types.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Equal reports whether two signatures have identical params and results.
func (f *FuncType) Equal(other *FuncType) bool {
	if other == nil {
		return false
	}
	if len(f.Params) != len(other.Params) || len(f.Results) != len(other.Results) {
		return false
	}
	for i := range f.Params {
		if f.Params[i] != other.Params[i] {
			return false
		}
	}
	for i := range f.Results {
		if f.Results[i] != other.Results[i] {
			return false
		}
	}
	return true
}

// TypeTable resolves a type index to a function signature. It is provided by
// the module/instantiation subsystem; BlockType uses it to resolve its index
// form.
type TypeTable interface {
	// FuncType returns the signature at the given type index, or nil if the
	// index is out of range.
	FuncType(idx uint32) *FuncType
}

// SliceTypeTable is a TypeTable backed by a slice of signatures.
type SliceTypeTable []FuncType

func (s SliceTypeTable) FuncType(idx uint32) *FuncType {
	if int(idx) >= len(s) {
		return nil
	}
	return &s[idx]
}
