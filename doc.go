// Package wasmvalues is the value-representation and type-classification
// core of a WebAssembly virtual machine.
//
// It defines the in-memory encoding of every runtime value the interpreter,
// AOT-compiled code, and host boundary exchange, together with the
// classification machinery that selects arithmetic, conversion, and
// default-value behavior per value category.
//
// # Packages
//
//   - types: the value-type catalog, function signatures, and block types
//   - value: the runtime value union, trait classification, and references
//   - registry: generation-checked tables owning funcref/externref referents
//   - component: the interface-type value model for the component boundary
//   - engine: conversions to and from wazero's host-boundary representation
//   - errors: structured errors for invariant violations
//
// The root package re-exports the types most callers need so engine code can
// import one package for the common case.
package wasmvalues
