package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase and kind only",
			err:  &Error{Phase: PhaseAccess, Kind: KindTagMismatch},
			want: "[access] tag_mismatch",
		},
		{
			name: "want and got",
			err:  TagMismatch(PhaseAccess, "funcref", "i32"),
			want: "[access] tag_mismatch: want funcref, got i32",
		},
		{
			name: "detail only",
			err:  &Error{Phase: PhaseConstruct, Kind: KindUnreachable, Detail: "no default"},
			want: "[construct] unreachable_kind: no default",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorCauseChain(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(PhaseRegistry, KindStaleReference, cause, "resolving handle")

	if !strings.Contains(err.Error(), "caused by: root cause") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestErrorIs(t *testing.T) {
	a := TagMismatch(PhaseAccess, "i32", "f64")
	b := TagMismatch(PhaseAccess, "i64", "funcref")
	c := TagMismatch(PhaseConstruct, "i32", "f64")

	if !stderrors.Is(a, b) {
		t.Error("same phase and kind should match")
	}
	if stderrors.Is(a, c) {
		t.Error("different phase should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseBoundary, KindUnsupported).
		Want("i32").
		Got("v128").
		Value(uint64(7)).
		Detail("slot %d", 2).
		Build()

	if err.Phase != PhaseBoundary || err.Kind != KindUnsupported {
		t.Errorf("builder lost phase/kind: %v", err)
	}
	if err.Detail != "slot 2" {
		t.Errorf("Detail = %q, want %q", err.Detail, "slot 2")
	}
	if err.Value != uint64(7) {
		t.Errorf("Value = %v, want 7", err.Value)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := UnreachableKind(PhaseConstruct, "default value", "none"); e.Kind != KindUnreachable {
		t.Errorf("UnreachableKind kind = %s", e.Kind)
	}
	if e := StaleReference(PhaseRegistry, 0xdead); e.Kind != KindStaleReference {
		t.Errorf("StaleReference kind = %s", e.Kind)
	}
	if e := NullReference(PhaseAccess, "deref"); e.Kind != KindNullReference {
		t.Errorf("NullReference kind = %s", e.Kind)
	}
	if e := TypeUnlisted(PhaseClassify, "chan int"); e.Kind != KindTypeUnlisted {
		t.Errorf("TypeUnlisted kind = %s", e.Kind)
	}
	if e := UnresolvedIndex(4); e.Kind != KindUnresolvedIndex {
		t.Errorf("UnresolvedIndex kind = %s", e.Kind)
	}
}
