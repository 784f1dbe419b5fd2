package engine

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/registry"
	"github.com/wippyai/wasm-values/types"
	"github.com/wippyai/wasm-values/value"
)

// ToRaw converts a value to wazero's raw uint64 stack-slot encoding. The bit
// pattern is preserved exactly for every numeric kind. An externref travels
// as its handle bits; null encodes as zero. funcref and v128 do not cross
// this boundary.
func ToRaw(v value.Value) (uint64, error) {
	switch v.Kind() {
	case types.ValI32:
		u, err := v.U32()
		if err != nil {
			return 0, err
		}
		return api.EncodeU32(u), nil
	case types.ValI64:
		u, err := v.U64()
		if err != nil {
			return 0, err
		}
		return u, nil
	case types.ValF32:
		f, err := v.F32()
		if err != nil {
			return 0, err
		}
		return api.EncodeF32(f), nil
	case types.ValF64:
		f, err := v.F64()
		if err != nil {
			return 0, err
		}
		return api.EncodeF64(f), nil
	case types.ValExtern:
		r, err := v.ExternRef()
		if err != nil {
			return 0, err
		}
		if r.IsNull() {
			return 0, nil
		}
		h, err := r.Extern()
		if err != nil {
			return 0, err
		}
		return uint64(h), nil
	default:
		Logger().Debug("unsupported kind at host boundary", zap.String("kind", v.Kind().String()))
		return 0, errors.Unsupported(errors.PhaseBoundary,
			v.Kind().String()+" cannot cross the wazero host boundary")
	}
}

// FromRaw converts a raw wazero stack slot back to a value of the given
// kind. The inverse of ToRaw, bit-exact for numeric kinds.
func FromRaw(vt types.ValType, raw uint64) (value.Value, error) {
	switch vt {
	case types.ValI32:
		return value.NewU32(api.DecodeU32(raw)), nil
	case types.ValI64:
		return value.NewU64(raw), nil
	case types.ValF32:
		return value.NewF32(api.DecodeF32(raw)), nil
	case types.ValF64:
		return value.NewF64(api.DecodeF64(raw)), nil
	case types.ValExtern:
		return value.NewExternRef(registry.Handle(raw)), nil
	default:
		return value.Value{}, errors.Unsupported(errors.PhaseBoundary,
			vt.String()+" cannot cross the wazero host boundary")
	}
}

// ToRawStack converts a call's values into a raw stack slice.
func ToRawStack(vals []value.Value) ([]uint64, error) {
	out := make([]uint64, len(vals))
	for i, v := range vals {
		raw, err := ToRaw(v)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

// FromRawStack converts a raw stack slice back into values, one per type.
func FromRawStack(vts []types.ValType, raw []uint64) ([]value.Value, error) {
	if len(vts) != len(raw) {
		return nil, errors.OutOfRange(errors.PhaseBoundary, len(raw), len(vts))
	}
	out := make([]value.Value, len(raw))
	for i, r := range raw {
		v, err := FromRaw(vts[i], r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
