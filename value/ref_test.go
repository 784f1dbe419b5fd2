package value

import (
	"testing"

	"github.com/wippyai/wasm-values/registry"
)

func TestNullRef(t *testing.T) {
	var zero Ref
	if !zero.IsNull() {
		t.Error("zero Ref should be null")
	}
	if zero.Kind() != RefNull {
		t.Errorf("zero Ref kind = %v, want RefNull", zero.Kind())
	}
	if zero != NullRef() {
		t.Error("NullRef() should equal the zero Ref")
	}
	if _, err := zero.Func(); err == nil {
		t.Error("Func() on null ref should fail")
	}
	if _, err := zero.Extern(); err == nil {
		t.Error("Extern() on null ref should fail")
	}
}

func TestRefConstructors(t *testing.T) {
	h := registry.Handle(1<<32 | 3)

	fr := FuncRefOf(h)
	if fr.Kind() != RefFunc || fr.IsNull() {
		t.Fatalf("FuncRefOf kind = %v, null = %v", fr.Kind(), fr.IsNull())
	}
	got, err := fr.Func()
	if err != nil || got != h {
		t.Errorf("Func() = %v, %v", got, err)
	}
	if _, err := fr.Extern(); err == nil {
		t.Error("Extern() on funcref should fail")
	}

	er := ExternRefOf(h)
	if er.Kind() != RefExtern || er.IsNull() {
		t.Fatalf("ExternRefOf kind = %v, null = %v", er.Kind(), er.IsNull())
	}
	if got, err := er.Extern(); err != nil || got != h {
		t.Errorf("Extern() = %v, %v", got, err)
	}
}

func TestNullHandleCollapsesToNull(t *testing.T) {
	// Constructing from the null handle yields a structurally null ref,
	// regardless of the requested flavor.
	for _, r := range []Ref{FuncRefOf(registry.NullHandle), ExternRefOf(registry.NullHandle)} {
		if !r.IsNull() || r.Kind() != RefNull {
			t.Errorf("null-handle ref = kind %v, null %v", r.Kind(), r.IsNull())
		}
	}
}

func TestRefKindString(t *testing.T) {
	cases := []struct {
		kind RefKind
		want string
	}{
		{RefNull, "null"},
		{RefFunc, "funcref"},
		{RefExtern, "externref"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("RefKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
