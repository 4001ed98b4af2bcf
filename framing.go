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

import "strconv"

// FixedSizeBits carves out exactly n bits for the inner codec. Encode
// fails if c's output overruns n bits; a short output is right-padded
// with zeros. Decode runs c against exactly the n-bit slice and
// discards whatever of it c itself left unconsumed inside that
// slice — only the bits beyond the frame are the outer remainder.
func FixedSizeBits[A any](n uint64, c Codec[A]) Codec[A] {
	return Codec[A]{
		Bounds: ExactSize(n),
		EncodeFn: func(a A) Attempt[BitVector] {
			return FlatMapAttempt(c.Encode(a), func(enc BitVector) Attempt[BitVector] {
				if enc.Size() > n {
					return Failure[BitVector](Errf("fixedSizeBits(%d): encoded value is %d bits, too large", n, enc.Size()))
				}
				return Successful(Concat(enc, Low(n-enc.Size())))
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			if bits.SizeLessThan(n) {
				return Failure[DecodeResult[A]](InsufficientBits(n, bits.Size()))
			}
			frame, rest := bits.Take(n), bits.Drop(n)
			return FlatMapAttempt(c.Decode(frame), func(r DecodeResult[A]) Attempt[DecodeResult[A]] {
				return Successful(DecodeResult[A]{Value: r.Value, Remainder: rest})
			})
		},
	}
}

// FixedSizeBytes is FixedSizeBits(8*n, c).
func FixedSizeBytes[A any](n uint64, c Codec[A]) Codec[A] {
	return FixedSizeBits(8*n, c)
}

// VariableSizeBits prepends an inner value's encoded size (plus
// sizePadding) to the value itself, reading that size back on decode
// to know exactly how many bits belong to the value.
func VariableSizeBits[A any](sizeCodec Codec[uint64], valueCodec Codec[A], sizePadding ...uint64) Codec[A] {
	pad := uint64(0)
	if len(sizePadding) > 0 {
		pad = sizePadding[0]
	}
	bounds := sizeCodec.Bounds.Add(valueCodec.Bounds)
	return Codec[A]{
		Bounds: bounds,
		EncodeFn: func(a A) Attempt[BitVector] {
			return FlatMapAttempt(valueCodec.Encode(a), func(ev BitVector) Attempt[BitVector] {
				return FlatMapAttempt(sizeCodec.Encode(ev.Size()+pad), func(sv BitVector) Attempt[BitVector] {
					return Successful(Concat(sv, ev))
				})
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return FlatMapAttempt(sizeCodec.Decode(bits), func(sr DecodeResult[uint64]) Attempt[DecodeResult[A]] {
				if sr.Value < pad {
					return Failure[DecodeResult[A]](Errf("variableSizeBits: size %d is smaller than padding %d", sr.Value, pad))
				}
				n := sr.Value - pad
				return FixedSizeBits(n, valueCodec).Decode(sr.Remainder)
			})
		},
	}
}

// VariableSizeBytes is the byte-aligned analogue of VariableSizeBits:
// the size field and padding are counted in bytes.
func VariableSizeBytes[A any](sizeCodec Codec[uint64], valueCodec Codec[A], sizePadding ...uint64) Codec[A] {
	pad := uint64(0)
	if len(sizePadding) > 0 {
		pad = sizePadding[0]
	}
	bounds := sizeCodec.Bounds.Add(valueCodec.Bounds)
	return Codec[A]{
		Bounds: bounds,
		EncodeFn: func(a A) Attempt[BitVector] {
			return FlatMapAttempt(valueCodec.Encode(a), func(ev BitVector) Attempt[BitVector] {
				if ev.Size()%8 != 0 {
					return Failure[BitVector](Errf("variableSizeBytes: encoded value is %d bits, not byte-aligned", ev.Size()))
				}
				return FlatMapAttempt(sizeCodec.Encode(ev.Size()/8+pad), func(sv BitVector) Attempt[BitVector] {
					return Successful(Concat(sv, ev))
				})
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return FlatMapAttempt(sizeCodec.Decode(bits), func(sr DecodeResult[uint64]) Attempt[DecodeResult[A]] {
				if sr.Value < pad {
					return Failure[DecodeResult[A]](Errf("variableSizeBytes: size %d is smaller than padding %d", sr.Value, pad))
				}
				n := (sr.Value - pad) * 8
				return FixedSizeBits(n, valueCodec).Decode(sr.Remainder)
			})
		},
	}
}

// Option is the Go re-expression of the source's optional value: None
// carries no payload, Some does.
type Option[A any] struct {
	Defined bool
	Value   A
}

// Some wraps a present value.
func Some[A any](a A) Option[A] { return Option[A]{Defined: true, Value: a} }

// None is the absent value of type A.
func None[A any]() Option[A] { return Option[A]{} }

// Conditional encodes/decodes an A only when flag holds; when it
// doesn't, the codec occupies zero bits. Encoding a None while flag is
// true, or a Some while flag is false, is a failure.
func Conditional[A any](flag bool, c Codec[A]) Codec[Option[A]] {
	return Codec[Option[A]]{
		Bounds: SizeBound{Lower: 0, Upper: c.Bounds.Upper},
		EncodeFn: func(o Option[A]) Attempt[BitVector] {
			if flag {
				if !o.Defined {
					return Failure[BitVector](NewErr("conditional: flag is true but value is absent"))
				}
				return c.Encode(o.Value)
			}
			if o.Defined {
				return Failure[BitVector](NewErr("conditional: flag is false but value is present"))
			}
			return Successful(Empty())
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Option[A]]] {
			if !flag {
				return Successful(DecodeResult[Option[A]]{Value: None[A](), Remainder: bits})
			}
			return MapAttempt(c.Decode(bits), func(r DecodeResult[A]) DecodeResult[Option[A]] {
				return DecodeResult[Option[A]]{Value: Some(r.Value), Remainder: r.Remainder}
			})
		},
	}
}

// Repeated decodes c repeatedly until the buffer is exhausted,
// fail-fast on the first decode error (the policy spec.md's open
// question on repeated() standardizes on, matching the source library's
// decodeCollect precedent rather than decodeAll's partial-result one).
// Encode concats each element's encoding in order.
func Repeated[A any](c Codec[A]) Codec[[]A] {
	return Codec[[]A]{
		Bounds: UnknownSize(),
		EncodeFn: func(as []A) Attempt[BitVector] {
			parts := make([]BitVector, 0, len(as))
			for i, a := range as {
				enc, err := c.Encode(a).Get()
				if err != nil {
					return Failure[BitVector](err.WithContext(indexContext(i)))
				}
				parts = append(parts, enc)
			}
			return Successful(ConcatAll(parts...))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[[]A]] {
			var out []A
			rest := bits
			for rest.Size() > 0 {
				r, err := c.Decode(rest).Get()
				if err != nil {
					return Failure[DecodeResult[[]A]](err.WithContext(indexContext(len(out))))
				}
				out = append(out, r.Value)
				if r.Remainder.Size() >= rest.Size() {
					return Failure[DecodeResult[[]A]](Errf("repeated: element at index %d consumed no bits", len(out)-1))
				}
				rest = r.Remainder
			}
			return Successful(DecodeResult[[]A]{Value: out, Remainder: Empty()})
		},
	}
}

func indexContext(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// VectorOfN decodes exactly count elements with c; count is itself
// read from/written to countCodec, ahead of the elements.
func VectorOfN[A any](countCodec Codec[uint64], c Codec[A]) Codec[[]A] {
	return ListOfN(countCodec, c)
}

// ListOfN is VectorOfN under the name the source library uses for its
// slice-returning variant; both produce []A in Go, so they are
// aliases.
func ListOfN[A any](countCodec Codec[uint64], c Codec[A]) Codec[[]A] {
	return Codec[[]A]{
		Bounds: AtLeastSize(countCodec.Bounds.Lower),
		EncodeFn: func(as []A) Attempt[BitVector] {
			return FlatMapAttempt(countCodec.Encode(uint64(len(as))), func(cv BitVector) Attempt[BitVector] {
				parts := make([]BitVector, 0, len(as)+1)
				parts = append(parts, cv)
				for i, a := range as {
					enc, err := c.Encode(a).Get()
					if err != nil {
						return Failure[BitVector](err.WithContext(indexContext(i)))
					}
					parts = append(parts, enc)
				}
				return Successful(ConcatAll(parts...))
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[[]A]] {
			return FlatMapAttempt(countCodec.Decode(bits), func(cr DecodeResult[uint64]) Attempt[DecodeResult[[]A]] {
				out := make([]A, 0, cr.Value)
				rest := cr.Remainder
				for i := uint64(0); i < cr.Value; i++ {
					r, err := c.Decode(rest).Get()
					if err != nil {
						return Failure[DecodeResult[[]A]](err.WithContext(indexContext(int(i))))
					}
					out = append(out, r.Value)
					rest = r.Remainder
				}
				return Successful(DecodeResult[[]A]{Value: out, Remainder: rest})
			})
		},
	}
}
