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

// Bool is a single-bit boolean codec: 0 decodes false, 1 decodes true.
var Bool = BoolN(1)

// BoolN is an n-bit boolean codec: on decode, all-zero bits are false
// and anything else is true; on encode, true is written as n one bits
// and false as n zero bits.
func BoolN(n int) Codec[bool] {
	u := UintBE(n)
	return Xmap(u,
		func(v uint64) bool { return v != 0 },
		func(b bool) uint64 {
			if b {
				return mask(n)
			}
			return 0
		},
	)
}

// Bits is the identity codec over bit vectors: it consumes whatever
// remains of the input on decode and emits its argument unchanged on
// encode. Because it consumes the entire remainder, it is only
// meaningful at the tail of a composition or inside a framing
// combinator such as FixedSizeBits.
var Bits = Codec[BitVector]{
	Bounds: UnknownSize(),
	EncodeFn: func(b BitVector) Attempt[BitVector] {
		return Successful(b)
	},
	DecodeFn: func(bits BitVector) Attempt[DecodeResult[BitVector]] {
		return Successful(DecodeResult[BitVector]{Value: bits, Remainder: Empty()})
	},
}

// BitsN is a fixed-size bit-vector passthrough: on encode it
// right-pads its argument to exactly n bits (failing if the argument
// is longer); on decode it splits off exactly n bits.
func BitsN(n int) Codec[BitVector] {
	return Codec[BitVector]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(b BitVector) Attempt[BitVector] {
			if b.Size() > uint64(n) {
				return Failure[BitVector](Errf("bits(%d): value has %d bits", n, b.Size()))
			}
			return Successful(Concat(b, Low(uint64(n)-b.Size())))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[BitVector]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[BitVector]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[BitVector]{Value: bits.Take(uint64(n)), Remainder: bits.Drop(uint64(n))})
		},
	}
}

// Bytes is the byte-aligned analogue of Bits: it consumes the
// remainder as a byte slice, failing if the remaining size is not a
// multiple of 8.
var Bytes = Codec[[]byte]{
	Bounds: UnknownSize(),
	EncodeFn: func(b []byte) Attempt[BitVector] {
		return Successful(FromBytes(b))
	},
	DecodeFn: func(bits BitVector) Attempt[DecodeResult[[]byte]] {
		if bits.Size()%8 != 0 {
			return Failure[DecodeResult[[]byte]](Errf("bytes: remainder is %d bits, not byte-aligned", bits.Size()))
		}
		return Successful(DecodeResult[[]byte]{Value: bits.Bytes(), Remainder: Empty()})
	},
}

// BytesN is the byte-aligned analogue of BitsN: exactly n bytes.
func BytesN(n int) Codec[[]byte] {
	inner := BitsN(n * 8)
	return Xmap(inner, BitVector.Bytes, FromBytes)
}

// Provide is a zero-bit codec that always encodes to the empty bit
// vector and always decodes to the fixed value a.
func Provide[A any](a A) Codec[A] {
	return Codec[A]{
		Bounds: ExactSize(0),
		EncodeFn: func(A) Attempt[BitVector] {
			return Successful(Empty())
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return Successful(DecodeResult[A]{Value: a, Remainder: bits})
		},
	}
}

// Ignore skips n bits on decode and writes n zero bits on encode.
func Ignore(n int) Codec[Unit] {
	return Codec[Unit]{
		Bounds: ExactSize(uint64(n)),
		EncodeFn: func(Unit) Attempt[BitVector] {
			return Successful(Low(uint64(n)))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Unit]] {
			if bits.SizeLessThan(uint64(n)) {
				return Failure[DecodeResult[Unit]](InsufficientBits(uint64(n), bits.Size()))
			}
			return Successful(DecodeResult[Unit]{Value: Unit{}, Remainder: bits.Drop(uint64(n))})
		},
	}
}

// Constant always encodes to want, and on decode verifies the next
// want.Size() bits equal want, failing otherwise.
func Constant(want BitVector) Codec[Unit] {
	return Codec[Unit]{
		Bounds: ExactSize(want.Size()),
		EncodeFn: func(Unit) Attempt[BitVector] {
			return Successful(want)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Unit]] {
			if bits.SizeLessThan(want.Size()) {
				return Failure[DecodeResult[Unit]](InsufficientBits(want.Size(), bits.Size()))
			}
			got := bits.Take(want.Size())
			if !got.Equal(want) {
				return Failure[DecodeResult[Unit]](Errf("constant mismatch: expected 0x%s, got 0x%s", want.ToHex(), got.ToHex()))
			}
			return Successful(DecodeResult[Unit]{Value: Unit{}, Remainder: bits.Drop(want.Size())})
		},
	}
}
