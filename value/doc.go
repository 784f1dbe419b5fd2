// Package value implements the runtime value union and the type-trait
// classification over its native payload catalog.
//
// Value is the universal value currency of the engine: stack slots, locals,
// globals, call arguments and results, and reference-typed table cells all
// hold one. It is a fixed-size, trivially copyable struct with no interior
// pointers for numeric kinds; copying it never allocates and never transfers
// ownership of anything.
//
// # Payload Catalog
//
// The closed set of native payload types is: 8/16/32/64-bit signed and
// unsigned integers, float32/float64, the 128-bit U128/I128 pair, the SIMD
// lane array types (U64x2 through I8x16, F32x4, F64x2), and the FuncRef /
// ExternRef reference payloads. The constraint interfaces in traits.go make
// any type outside this set fail to instantiate.
//
// # Signed/Unsigned Views
//
// A value tagged i32 holds 32 bits; I32 and U32 read the same bits through
// the signed and unsigned view. Neither accessor ever changes the bit
// pattern. Floats have no signed/unsigned distinction, so ReinterpretSigned
// and ReinterpretUnsigned are the identity on float payloads; applying them
// to a reference payload is a checked classification failure.
package value
