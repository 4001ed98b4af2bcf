// Copyright (C) 2024 The scodec Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package scodec

// packUint lays the low n bits of v out big-endian (MSB first) as an
// n-bit BitVector, left-aligning within the containing bytes and then
// trimming the tail padding.
func packUint(v uint64, n int) BitVector {
	nbytes := (n + 7) / 8
	shifted := v
	if pad := uint(nbytes)*8 - uint(n); pad > 0 {
		shifted = v << pad
	}
	buf := make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		buf[nbytes-1-i] = byte(shifted >> uint(8*i))
	}
	return BitVector{buf: buf, size: uint64(nbytes) * 8}.Take(uint64(n))
}

// unpackUint reads an n-bit big-endian unsigned value from the first n
// bits of bv.
func unpackUint(bv BitVector, n int) uint64 {
	c := bv.Take(uint64(n)).Compact()
	nbytes := len(c.buf)
	var v uint64
	for _, b := range c.buf {
		v = v<<8 | uint64(b)
	}
	if pad := uint(nbytes)*8 - uint(n); pad > 0 {
		v >>= pad
	}
	return v
}

// reverseBytes reverses the byte order of a byte-aligned bit vector,
// the building block for the *L little-endian primitive variants.
func reverseBytes(bv BitVector) BitVector {
	c := bv.Compact()
	n := len(c.buf)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = c.buf[n-1-i]
	}
	return BitVector{buf: out, size: c.size}
}

func signExtend(v uint64, n int) int64 {
	if n >= 64 {
		return int64(v)
	}
	if v&(uint64(1)<<(n-1)) != 0 {
		v |= ^uint64(0) << uint(n)
	}
	return int64(v)
}

// UintBE is an n-bit (1 <= n <= 64) big-endian unsigned integer codec.
// Values that don't fit in n bits fail to encode.
func UintBE(n int) Codec[uint64] {
	if n < 1 || n > 64 {
		panic("scodec: UintBE requires 1 <= n <= 64")
	}
	return Codec[uint64]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(v uint64) Attempt[BitVector] {
			if n < 64 && v >= uint64(1)<<n {
				return Failure[BitVector](Errf("uint(%d): value %d out of range", n, v))
			}
			return Successful(packUint(v, n))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[uint64]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[uint64]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[uint64]{
				Value:     unpackUint(bits, n),
				Remainder: bits.Drop(uint64(n)),
			})
		},
	}
}

// UintLE is the little-endian variant of UintBE; n must be a multiple
// of 8.
func UintLE(n int) Codec[uint64] {
	if n < 8 || n%8 != 0 {
		panic("scodec: UintLE requires a positive multiple of 8")
	}
	return Codec[uint64]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(v uint64) Attempt[BitVector] {
			if n < 64 && v >= uint64(1)<<n {
				return Failure[BitVector](Errf("uint(%d)L: value %d out of range", n, v))
			}
			return Successful(reverseBytes(packUint(v, n)))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[uint64]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[uint64]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[uint64]{
				Value:     unpackUint(reverseBytes(bits.Take(uint64(n))), n),
				Remainder: bits.Drop(uint64(n)),
			})
		},
	}
}

// IntBE is an n-bit (1 <= n <= 64) big-endian two's-complement signed
// integer codec.
func IntBE(n int) Codec[int64] {
	if n < 1 || n > 64 {
		panic("scodec: IntBE requires 1 <= n <= 64")
	}
	lo, hi := signedRange(n)
	return Codec[int64]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(v int64) Attempt[BitVector] {
			if v < lo || v > hi {
				return Failure[BitVector](Errf("int(%d): value %d out of range", n, v))
			}
			return Successful(packUint(uint64(v)&mask(n), n))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[int64]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[int64]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[int64]{
				Value:     signExtend(unpackUint(bits, n), n),
				Remainder: bits.Drop(uint64(n)),
			})
		},
	}
}

// IntLE is the little-endian variant of IntBE; n must be a multiple of
// 8.
func IntLE(n int) Codec[int64] {
	if n < 8 || n%8 != 0 {
		panic("scodec: IntLE requires a positive multiple of 8")
	}
	lo, hi := signedRange(n)
	return Codec[int64]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(v int64) Attempt[BitVector] {
			if v < lo || v > hi {
				return Failure[BitVector](Errf("int(%d)L: value %d out of range", n, v))
			}
			return Successful(reverseBytes(packUint(uint64(v)&mask(n), n)))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[int64]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[int64]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[int64]{
				Value:     signExtend(unpackUint(reverseBytes(bits.Take(uint64(n))), n), n),
				Remainder: bits.Drop(uint64(n)),
			})
		},
	}
}

func mask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

func signedRange(n int) (lo, hi int64) {
	if n >= 64 {
		return -(1 << 63), (1 << 63) - 1
	}
	hi = int64(1)<<(n-1) - 1
	lo = -(int64(1) << (n - 1))
	return lo, hi
}

// Named shortcuts, mirroring the source library's int8/16/24/32/int64,
// uint2/4/8/16/24/uint32 family. Uint32 is Codec[uint64], not
// Codec[uint32]: a full-range unsigned 32-bit value doesn't fit a
// signed 32-bit container, so its Go value type is widened to uint64,
// matching the source's own documented rationale.
var (
	Int8  = IntBE(8)
	Int16 = IntBE(16)
	Int24 = IntBE(24)
	Int32 = IntBE(32)
	Int64 = IntBE(64)

	Int16L = IntLE(16)
	Int24L = IntLE(24)
	Int32L = IntLE(32)
	Int64L = IntLE(64)

	Uint2  = UintBE(2)
	Uint4  = UintBE(4)
	Uint8  = UintBE(8)
	Uint16 = UintBE(16)
	Uint24 = UintBE(24)
	Uint32 = UintBE(32)

	Uint16L = UintLE(16)
	Uint24L = UintLE(24)
	Uint32L = UintLE(32)
)
