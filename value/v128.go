package value

import (
	"encoding/binary"
	"math"
)

// U128 and I128 are the 128-bit integer payloads backing v128 values. They
// are plain byte arrays in little-endian lane order; the signed/unsigned
// distinction is carried by the type identity alone, the bits never differ.
type (
	U128 [16]byte
	I128 [16]byte
)

// V128 is the canonical v128 payload. Lane views below reinterpret it
// without changing the bit pattern.
type V128 = U128

// SIMD lane array types. Widths 2, 4, 8 and 16, in signed, unsigned and
// float flavors where the lane width has one.
type (
	U64x2 [2]uint64
	I64x2 [2]int64
	U32x4 [4]uint32
	I32x4 [4]int32
	U16x8 [8]uint16
	I16x8 [8]int16
	U8x16 [16]uint8
	I8x16 [16]int8
	F32x4 [4]float32
	F64x2 [2]float64
)

// IsZero reports whether every bit of the vector is zero.
func (v U128) IsZero() bool {
	return v == U128{}
}

func (v U128) AsU64x2() U64x2 {
	return U64x2{
		binary.LittleEndian.Uint64(v[0:8]),
		binary.LittleEndian.Uint64(v[8:16]),
	}
}

func (v U128) AsI64x2() I64x2 {
	u := v.AsU64x2()
	return I64x2{int64(u[0]), int64(u[1])}
}

func (v U128) AsU32x4() U32x4 {
	var out U32x4
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(v[i*4 : i*4+4])
	}
	return out
}

func (v U128) AsI32x4() I32x4 {
	u := v.AsU32x4()
	var out I32x4
	for i := range out {
		out[i] = int32(u[i])
	}
	return out
}

func (v U128) AsU16x8() U16x8 {
	var out U16x8
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(v[i*2 : i*2+2])
	}
	return out
}

func (v U128) AsI16x8() I16x8 {
	u := v.AsU16x8()
	var out I16x8
	for i := range out {
		out[i] = int16(u[i])
	}
	return out
}

func (v U128) AsU8x16() U8x16 {
	return U8x16(v)
}

func (v U128) AsI8x16() I8x16 {
	var out I8x16
	for i := range out {
		out[i] = int8(v[i])
	}
	return out
}

func (v U128) AsF32x4() F32x4 {
	u := v.AsU32x4()
	var out F32x4
	for i := range out {
		out[i] = math.Float32frombits(u[i])
	}
	return out
}

func (v U128) AsF64x2() F64x2 {
	u := v.AsU64x2()
	return F64x2{math.Float64frombits(u[0]), math.Float64frombits(u[1])}
}

// V128FromU64x2 packs two 64-bit lanes into a v128.
func V128FromU64x2(lanes U64x2) V128 {
	var v V128
	binary.LittleEndian.PutUint64(v[0:8], lanes[0])
	binary.LittleEndian.PutUint64(v[8:16], lanes[1])
	return v
}

// V128FromI64x2 packs two signed 64-bit lanes into a v128.
func V128FromI64x2(lanes I64x2) V128 {
	return V128FromU64x2(U64x2{uint64(lanes[0]), uint64(lanes[1])})
}

// V128FromU32x4 packs four 32-bit lanes into a v128.
func V128FromU32x4(lanes U32x4) V128 {
	var v V128
	for i, l := range lanes {
		binary.LittleEndian.PutUint32(v[i*4:i*4+4], l)
	}
	return v
}

// V128FromI32x4 packs four signed 32-bit lanes into a v128.
func V128FromI32x4(lanes I32x4) V128 {
	var u U32x4
	for i, l := range lanes {
		u[i] = uint32(l)
	}
	return V128FromU32x4(u)
}

// V128FromU16x8 packs eight 16-bit lanes into a v128.
func V128FromU16x8(lanes U16x8) V128 {
	var v V128
	for i, l := range lanes {
		binary.LittleEndian.PutUint16(v[i*2:i*2+2], l)
	}
	return v
}

// V128FromI16x8 packs eight signed 16-bit lanes into a v128.
func V128FromI16x8(lanes I16x8) V128 {
	var u U16x8
	for i, l := range lanes {
		u[i] = uint16(l)
	}
	return V128FromU16x8(u)
}

// V128FromU8x16 packs sixteen byte lanes into a v128.
func V128FromU8x16(lanes U8x16) V128 {
	return V128(lanes)
}

// V128FromI8x16 packs sixteen signed byte lanes into a v128.
func V128FromI8x16(lanes I8x16) V128 {
	var v V128
	for i, l := range lanes {
		v[i] = uint8(l)
	}
	return v
}

// V128FromF32x4 packs four float lanes into a v128.
func V128FromF32x4(lanes F32x4) V128 {
	var u U32x4
	for i, l := range lanes {
		u[i] = math.Float32bits(l)
	}
	return V128FromU32x4(u)
}

// V128FromF64x2 packs two double lanes into a v128.
func V128FromF64x2(lanes F64x2) V128 {
	return V128FromU64x2(U64x2{math.Float64bits(lanes[0]), math.Float64bits(lanes[1])})
}
