package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify  Phase = "classify"  // type-trait classification
	PhaseConstruct Phase = "construct" // value construction and defaults
	PhaseAccess    Phase = "access"    // tagged-union reads
	PhaseRegistry  Phase = "registry"  // referent table operations
	PhaseBoundary  Phase = "boundary"  // host/engine value exchange
)

// Kind categorizes the error
type Kind string

const (
	KindTagMismatch     Kind = "tag_mismatch"
	KindUnreachable     Kind = "unreachable_kind"
	KindStaleReference  Kind = "stale_reference"
	KindNullReference   Kind = "null_reference"
	KindTypeUnlisted    Kind = "type_unlisted"
	KindOutOfRange      Kind = "out_of_range"
	KindUnsupported     Kind = "unsupported"
	KindUnresolvedIndex Kind = "unresolved_index"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Want   string
	Got    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Want sets the expected type or tag name
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Got sets the actual type or tag name
func (b *Builder) Got(t string) *Builder {
	b.err.Got = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TagMismatch creates a wrong-active-tag error for a union read
func TagMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTagMismatch,
		Want:  want,
		Got:   got,
	}
}

// UnreachableKind creates an error for an operation requested on a kind the
// engine must never instantiate
func UnreachableKind(phase Phase, op, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnreachable,
		Got:    kind,
		Detail: fmt.Sprintf("%s is undefined for this kind", op),
	}
}

// StaleReference creates an error for a reference that outlived its referent
func StaleReference(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStaleReference,
		Detail: fmt.Sprintf("handle %#x refers to a dropped or replaced referent", handle),
		Value:  handle,
	}
}

// NullReference creates an error for dereferencing the null sentinel
func NullReference(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullReference,
		Detail: fmt.Sprintf("%s on null reference", op),
	}
}

// TypeUnlisted creates an error for a native type outside the closed catalog
func TypeUnlisted(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeUnlisted,
		Got:    goType,
		Detail: "type is not in the payload catalog",
	}
}

// OutOfRange creates an out-of-range index error
func OutOfRange(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// UnresolvedIndex creates an error for a block-type index with no signature
func UnresolvedIndex(idx uint32) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindUnresolvedIndex,
		Detail: fmt.Sprintf("type index %d has no signature in the type table", idx),
		Value:  idx,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
