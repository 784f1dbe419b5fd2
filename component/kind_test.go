package component

import "testing"

func TestKindNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindBool, "bool"},
		{KindS8, "s8"},
		{KindU64, "u64"},
		{KindChar, "char"},
		{KindFloat64, "float64"},
		{KindString, "string"},
		{KindRecord, "record"},
		{KindExpected, "expected"},
		{KindList, "list"},
		{KindUnknown, "unknown"},
		{Kind(200), "invalid"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindPartition(t *testing.T) {
	// Every catalog kind is exactly one of scalar, composite, or unknown.
	for k := KindBool; k <= KindUnknown; k++ {
		if !k.Valid() {
			t.Errorf("kind %s should be valid", k)
		}
		scalar := k.IsScalar()
		composite := k.IsComposite()
		unknown := k == KindUnknown
		n := 0
		for _, b := range []bool{scalar, composite, unknown} {
			if b {
				n++
			}
		}
		if n != 1 {
			t.Errorf("kind %s: scalar=%v composite=%v unknown=%v", k, scalar, composite, unknown)
		}
	}
	if Kind(200).Valid() {
		t.Error("out-of-catalog kind should not be valid")
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf[bool](); k != KindBool {
		t.Errorf("KindOf[bool]() = %v", k)
	}
	if k := KindOf[int16](); k != KindS16 {
		t.Errorf("KindOf[int16]() = %v", k)
	}
	if k := KindOf[Char](); k != KindChar {
		t.Errorf("KindOf[Char]() = %v", k)
	}
	if k := KindOf[string](); k != KindString {
		t.Errorf("KindOf[string]() = %v", k)
	}
}

func TestKindFor(t *testing.T) {
	cases := []struct {
		payload any
		want    Kind
	}{
		{true, KindBool},
		{int8(-1), KindS8},
		{uint8(1), KindU8},
		{int32(0), KindS32},
		{uint64(0), KindU64},
		{Char('x'), KindChar},
		{float32(0), KindFloat32},
		{"", KindString},
		{Record{}, KindRecord},
		{Expected{}, KindExpected},
		{Unknown{}, KindUnknown},
	}
	for _, tc := range cases {
		got, err := KindFor(tc.payload)
		if err != nil {
			t.Errorf("KindFor(%T) error = %v", tc.payload, err)
			continue
		}
		if got != tc.want {
			t.Errorf("KindFor(%T) = %v, want %v", tc.payload, got, tc.want)
		}
	}

	if _, err := KindFor(struct{ x int }{}); err == nil {
		t.Error("KindFor of an unlisted type should fail")
	}
	// A bare rune is ambiguous with int32 and is deliberately not char.
	got, err := KindFor(rune('x'))
	if err != nil || got != KindS32 {
		t.Errorf("KindFor(rune) = %v, %v; want s32", got, err)
	}
}
