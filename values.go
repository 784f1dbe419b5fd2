package wasmvalues

import (
	"github.com/wippyai/wasm-values/component"
	"github.com/wippyai/wasm-values/registry"
	"github.com/wippyai/wasm-values/types"
	"github.com/wippyai/wasm-values/value"
)

// Core value-type catalog.
type ValType = types.ValType

const (
	ValI32     = types.ValI32
	ValI64     = types.ValI64
	ValF32     = types.ValF32
	ValF64     = types.ValF64
	ValV128    = types.ValV128
	ValFuncRef = types.ValFuncRef
	ValExtern  = types.ValExtern
	ValNone    = types.ValNone
)

// Runtime values and references.
type (
	Value = value.Value
	Ref   = value.Ref
	V128  = value.V128
)

// Block and function types.
type (
	BlockType = types.BlockType
	FuncType  = types.FuncType
)

// Referent handles.
type Handle = registry.Handle

// Interface-type values.
type (
	InterfaceKind  = component.Kind
	InterfaceValue = component.Value
)

// DefaultValue returns the default runtime value for a kind.
var DefaultValue = value.DefaultValue

// DefaultInterfaceValue returns the default interface value for a kind.
var DefaultInterfaceValue = component.DefaultValue
