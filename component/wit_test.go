package component

import (
	"testing"

	"go.bytecodealliance.org/wit"
)

func TestKindOfWitPrimitives(t *testing.T) {
	cases := []struct {
		name    string
		witType wit.Type
		want    Kind
	}{
		{"bool", wit.Bool{}, KindBool},
		{"s8", wit.S8{}, KindS8},
		{"u8", wit.U8{}, KindU8},
		{"s16", wit.S16{}, KindS16},
		{"u16", wit.U16{}, KindU16},
		{"s32", wit.S32{}, KindS32},
		{"u32", wit.U32{}, KindU32},
		{"s64", wit.S64{}, KindS64},
		{"u64", wit.U64{}, KindU64},
		{"char", wit.Char{}, KindChar},
		{"f32", wit.F32{}, KindFloat32},
		{"f64", wit.F64{}, KindFloat64},
		{"string", wit.String{}, KindString},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOfWit(tt.witType); got != tt.want {
				t.Errorf("KindOfWit(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKindOfWitComposites(t *testing.T) {
	cases := []struct {
		name    string
		witType wit.Type
		want    Kind
	}{
		{"record", &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "a", Type: wit.U32{}}}}}, KindRecord},
		{"variant", &wit.TypeDef{Kind: &wit.Variant{Cases: []wit.Case{{Name: "a", Type: wit.U32{}}}}}, KindVariant},
		{"tuple", &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.String{}}}}, KindTuple},
		{"flags", &wit.TypeDef{Kind: &wit.Flags{Flags: []wit.Flag{{Name: "a"}}}}, KindFlags},
		{"enum", &wit.TypeDef{Kind: &wit.Enum{Cases: []wit.EnumCase{{Name: "a"}}}}, KindEnum},
		{"result", &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}, Err: wit.String{}}}, KindExpected},
		{"list", &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}, KindList},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOfWit(tt.witType); got != tt.want {
				t.Errorf("KindOfWit(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKindOfWitUncatalogued(t *testing.T) {
	option := &wit.TypeDef{Kind: &wit.Option{Type: wit.U32{}}}
	if got := KindOfWit(option); got != KindUnknown {
		t.Errorf("KindOfWit(option) = %v, want unknown", got)
	}
}

func TestWitOf(t *testing.T) {
	for k := KindBool; k <= KindString; k++ {
		wt, ok := WitOf(k)
		if !ok {
			t.Errorf("WitOf(%s) not ok", k)
			continue
		}
		// Classification is the inverse for scalars.
		if got := KindOfWit(wt); got != k {
			t.Errorf("KindOfWit(WitOf(%s)) = %v", k, got)
		}
	}
	if _, ok := WitOf(KindRecord); ok {
		t.Error("WitOf(record) should not be ok")
	}
	if _, ok := WitOf(KindUnknown); ok {
		t.Error("WitOf(unknown) should not be ok")
	}
}
