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

// Package scodec implements a pure, bidirectional, bit-level binary
// codec algebra: a Codec[A] is a pair of total functions, an encoder
// from A into a BitVector and a decoder from a BitVector into an A
// plus the unconsumed remainder. Codecs compose: larger codecs are
// built from smaller ones through the combinators in this package,
// mirroring the structure of the binary protocol they describe.
package scodec

// DecodeResult is the value a successful decode produces, together
// with whatever bits were not consumed.
type DecodeResult[A any] struct {
	Value     A
	Remainder BitVector
}

// Unit is the codec value type that carries no information; Codec[A]'s
// Unit combinator produces a Codec[Unit].
type Unit struct{}

// Codec is a bidirectional mapping between values of type A and bit
// vectors. Go has no generic methods that introduce a fresh type
// parameter, so Codec is a plain struct rather than an interface:
// combinators that change the value type (Xmap, Exmap, flatZip, tuple
// composition, discriminated unions, ...) are free functions over
// Codec[A]/Codec[B] instead of methods.
type Codec[A any] struct {
	Bounds   SizeBound
	EncodeFn func(A) Attempt[BitVector]
	DecodeFn func(BitVector) Attempt[DecodeResult[A]]
	label    string
}

// NewCodec builds a Codec from its three contracts.
func NewCodec[A any](bounds SizeBound, encode func(A) Attempt[BitVector], decode func(BitVector) Attempt[DecodeResult[A]]) Codec[A] {
	return Codec[A]{Bounds: bounds, EncodeFn: encode, DecodeFn: decode}
}

// Encode runs the codec's encoder.
func (c Codec[A]) Encode(a A) Attempt[BitVector] {
	return c.EncodeFn(a)
}

// Decode runs the codec's decoder.
func (c Codec[A]) Decode(bits BitVector) Attempt[DecodeResult[A]] {
	return c.DecodeFn(bits)
}

// SizeBound returns the codec's declared size bound.
func (c Codec[A]) SizeBound() SizeBound {
	return c.Bounds
}

// String returns the codec's debug label, if one was set via
// WithToString, or "codec" otherwise.
func (c Codec[A]) String() string {
	if c.label != "" {
		return c.label
	}
	return "codec"
}

// WithToString overrides the codec's debug label without changing its
// encode/decode behavior.
func (c Codec[A]) WithToString(s string) Codec[A] {
	c.label = s
	return c
}

// EncodeValid encodes a, panicking if encoding fails. It and
// DecodeValidValue are the exception-raising convenience wrappers named
// in the core contract; the pure encode/decode path never panics.
func (c Codec[A]) EncodeValid(a A) BitVector {
	return c.Encode(a).MustGet()
}

// DecodeValidValue decodes bits and discards the remainder, panicking
// if decoding fails.
func (c Codec[A]) DecodeValidValue(bits BitVector) A {
	return c.Decode(bits).MustGet().Value
}
