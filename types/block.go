package types

import (
	"fmt"

	"github.com/wippyai/wasm-values/errors"
)

// BlockType is the declared result type of a structured control-flow region:
// either a single inline ValType or an index into a function-type table for
// multi-value blocks. The discriminant must be checked before the payload is
// read; the accessors below enforce that.
type BlockType struct {
	idx       uint32
	valType   ValType
	isValType bool
	set       bool
}

// BlockTypeOf returns a block type with an inline result type.
// ValNone encodes the empty block type.
func BlockTypeOf(vt ValType) BlockType {
	return BlockType{valType: vt, isValType: true, set: true}
}

// BlockTypeIndex returns a block type referring to a function-type table
// entry.
func BlockTypeIndex(idx uint32) BlockType {
	return BlockType{idx: idx, set: true}
}

// ValType returns the inline result type. ok is false when the block type
// holds a type index instead, or was never set.
func (b BlockType) ValType() (ValType, bool) {
	if !b.set || !b.isValType {
		return ValNone, false
	}
	return b.valType, true
}

// TypeIndex returns the function-type table index. ok is false when the
// block type holds an inline type instead, or was never set.
func (b BlockType) TypeIndex() (uint32, bool) {
	if !b.set || b.isValType {
		return 0, false
	}
	return b.idx, true
}

// Results resolves the block's result types. The inline form yields zero or
// one result; the index form is looked up in the given type table.
// An unset discriminant or an unresolvable index is a checked failure.
func (b BlockType) Results(table TypeTable) ([]ValType, error) {
	if !b.set {
		return nil, errors.UnreachableKind(errors.PhaseAccess, "block result resolution", "unset block type")
	}
	if b.isValType {
		if b.valType == ValNone {
			return nil, nil
		}
		return []ValType{b.valType}, nil
	}
	if table == nil {
		return nil, errors.UnresolvedIndex(b.idx)
	}
	ft := table.FuncType(b.idx)
	if ft == nil {
		return nil, errors.UnresolvedIndex(b.idx)
	}
	return ft.Results, nil
}

func (b BlockType) String() string {
	switch {
	case !b.set:
		return "block()"
	case b.isValType:
		return fmt.Sprintf("block(%s)", b.valType)
	default:
		return fmt.Sprintf("block(type %d)", b.idx)
	}
}
