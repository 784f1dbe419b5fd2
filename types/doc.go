// Package types defines the WebAssembly value-type catalog shared by the
// interpreter, AOT support code, and the host boundary.
//
// # Key Types
//
//   - ValType: value-type discriminant using the binary-format encodings
//   - FuncType: function signature (params, results)
//   - BlockType: structured control-flow result descriptor, either an
//     inline ValType or an index into a function-type table
//   - TypeTable: collaborator contract resolving type indices to signatures
//
// ValNone never tags a live value; it only appears as the empty block type
// and as the "absent" marker in type descriptors.
package types
