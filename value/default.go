package value

import (
	"fmt"

	"github.com/wippyai/wasm-values/types"
)

// defaultTable holds the canonical default per kind: all-zero bits for the
// numeric kinds, the null sentinel for the reference kinds. Keeping them in
// one table keeps "what is the default" in one place.
var defaultTable = map[types.ValType]Value{
	types.ValI32:     {kind: types.ValI32},
	types.ValI64:     {kind: types.ValI64},
	types.ValF32:     {kind: types.ValF32},
	types.ValF64:     {kind: types.ValF64},
	types.ValV128:    {kind: types.ValV128},
	types.ValFuncRef: {kind: types.ValFuncRef},
	types.ValExtern:  {kind: types.ValExtern},
}

// DefaultValue returns the default value for a kind: bit-pattern zero for
// i32/i64/f32/f64/v128, the null reference for funcref/externref.
//
// The engine never instantiates a local or global of kind none, so asking
// for its default is an engine bug; DefaultValue panics rather than
// fabricating a value.
func DefaultValue(vt types.ValType) Value {
	d, ok := defaultTable[vt]
	if !ok {
		panic(fmt.Sprintf("wasm-values: no default value for type %s", vt))
	}
	return d
}
