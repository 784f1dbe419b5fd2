package engine

import (
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/types"
)

func TestToAPIType(t *testing.T) {
	cases := []struct {
		vt   types.ValType
		want api.ValueType
	}{
		{types.ValI32, api.ValueTypeI32},
		{types.ValI64, api.ValueTypeI64},
		{types.ValF32, api.ValueTypeF32},
		{types.ValF64, api.ValueTypeF64},
		{types.ValExtern, api.ValueTypeExternref},
	}
	for _, tc := range cases {
		got, err := ToAPIType(tc.vt)
		if err != nil {
			t.Errorf("ToAPIType(%s) error = %v", tc.vt, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToAPIType(%s) = %v, want %v", tc.vt, got, tc.want)
		}

		// Round trip.
		back, err := FromAPIType(got)
		if err != nil || back != tc.vt {
			t.Errorf("FromAPIType(%v) = %v, %v", got, back, err)
		}
	}
}

func TestToAPITypeUnsupported(t *testing.T) {
	for _, vt := range []types.ValType{types.ValFuncRef, types.ValV128, types.ValNone} {
		if _, err := ToAPIType(vt); err == nil {
			t.Errorf("ToAPIType(%s) should fail", vt)
		}
	}
}

func TestToAPITypes(t *testing.T) {
	got, err := ToAPITypes([]types.ValType{types.ValI32, types.ValF64})
	if err != nil {
		t.Fatalf("ToAPITypes() error = %v", err)
	}
	if len(got) != 2 || got[0] != api.ValueTypeI32 || got[1] != api.ValueTypeF64 {
		t.Errorf("ToAPITypes() = %v", got)
	}

	if _, err := ToAPITypes([]types.ValType{types.ValI32, types.ValV128}); err == nil {
		t.Error("ToAPITypes with v128 should fail")
	}
}
