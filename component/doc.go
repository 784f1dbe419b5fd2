// Package component implements the interface-type value model used at the
// component-model host boundary.
//
// It is a second, richer value space next to the core value union: scalar
// kinds (bool through string, plus char) carry a native payload directly,
// while composite kinds (record, variant, tuple, flags, enum, union,
// expected, list) are placeholders that keep only their kind tag. The schema
// describing a composite's fields or cases lives with the type resolver, not
// in the value.
//
// # Key Types
//
//   - Kind: interface-type discriminator
//   - Value: one live scalar payload, or a kind-tagged composite placeholder
//
// KindOfWit and WitOf bridge the catalog to go.bytecodealliance.org's WIT
// type model.
package component
