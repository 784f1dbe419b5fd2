package engine

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/types"
)

// ToAPIType maps a value type to wazero's api.ValueType. funcref and v128
// have no host-signature representation in wazero and are reported, not
// coerced.
func ToAPIType(vt types.ValType) (api.ValueType, error) {
	switch vt {
	case types.ValI32:
		return api.ValueTypeI32, nil
	case types.ValI64:
		return api.ValueTypeI64, nil
	case types.ValF32:
		return api.ValueTypeF32, nil
	case types.ValF64:
		return api.ValueTypeF64, nil
	case types.ValExtern:
		return api.ValueTypeExternref, nil
	case types.ValFuncRef, types.ValV128:
		return 0, errors.Unsupported(errors.PhaseBoundary,
			vt.String()+" is not representable in wazero host signatures")
	default:
		return 0, errors.UnreachableKind(errors.PhaseBoundary, "host signature mapping", vt.String())
	}
}

// FromAPIType maps wazero's api.ValueType back to a value type.
func FromAPIType(vt api.ValueType) (types.ValType, error) {
	switch vt {
	case api.ValueTypeI32:
		return types.ValI32, nil
	case api.ValueTypeI64:
		return types.ValI64, nil
	case api.ValueTypeF32:
		return types.ValF32, nil
	case api.ValueTypeF64:
		return types.ValF64, nil
	case api.ValueTypeExternref:
		return types.ValExtern, nil
	default:
		return types.ValNone, errors.UnreachableKind(errors.PhaseBoundary,
			"host signature mapping", api.ValueTypeName(vt))
	}
}

// ToAPITypes maps a signature's types, failing on the first unsupported one.
func ToAPITypes(vts []types.ValType) ([]api.ValueType, error) {
	out := make([]api.ValueType, len(vts))
	for i, vt := range vts {
		at, err := ToAPIType(vt)
		if err != nil {
			return nil, err
		}
		out[i] = at
	}
	return out, nil
}
