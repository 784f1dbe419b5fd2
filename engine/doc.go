// Package engine bridges the value model to the wazero execution engine's
// host-boundary representation.
//
// wazero host functions exchange values as raw uint64 stack slots tagged by
// api.ValueType. FromRaw and ToRaw convert between those slots and Value,
// bit-exactly in both directions. Reference kinds travel as registry handles:
// externref carries the 64-bit handle, which wazero treats as opaque.
//
// funcref and v128 cannot appear in wazero host-function signatures, so
// conversions involving them at this boundary are checked errors rather than
// silent coercion.
package engine
