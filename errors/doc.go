// Package errors provides structured error types for the wasm-values library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every failure in this library is an engine-invariant violation,
// not an expected runtime outcome: misreading a union through the wrong tag,
// asking for a default of an absent type, or resolving a reference after its
// referent was dropped.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTagMismatch).
//		Want("funcref").
//		Got("i32").
//		Detail("cannot retrieve function reference").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TagMismatch(errors.PhaseAccess, "funcref", "i32")
//	err := errors.UnreachableKind(errors.PhaseConstruct, "default value", "none")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
