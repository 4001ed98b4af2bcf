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

import "sync"

// Xmap adapts a Codec[A] to a Codec[B] through a total isomorphism
// (f, g). The size bound is unchanged.
func Xmap[A, B any](c Codec[A], f func(A) B, g func(B) A) Codec[B] {
	return Codec[B]{
		Bounds: c.Bounds,
		EncodeFn: func(b B) Attempt[BitVector] {
			return c.Encode(g(b))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[B]] {
			return MapAttempt(c.Decode(bits), func(r DecodeResult[A]) DecodeResult[B] {
				return DecodeResult[B]{Value: f(r.Value), Remainder: r.Remainder}
			})
		},
	}
}

// Exmap adapts a Codec[A] to a Codec[B] through a partial isomorphism:
// both directions may fail.
func Exmap[A, B any](c Codec[A], f func(A) Attempt[B], g func(B) Attempt[A]) Codec[B] {
	return Codec[B]{
		Bounds: c.Bounds,
		EncodeFn: func(b B) Attempt[BitVector] {
			return FlatMapAttempt(g(b), c.Encode)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[B]] {
			return FlatMapAttempt(c.Decode(bits), func(r DecodeResult[A]) Attempt[DecodeResult[B]] {
				return MapAttempt(f(r.Value), func(b B) DecodeResult[B] {
					return DecodeResult[B]{Value: b, Remainder: r.Remainder}
				})
			})
		},
	}
}

// Narrow is the one-sided partiality where only decode-direction
// conversion (A to B) can fail.
func Narrow[A, B any](c Codec[A], f func(A) Attempt[B], g func(B) A) Codec[B] {
	return Exmap(c, f, func(b B) Attempt[A] { return Successful(g(b)) })
}

// Widen is the one-sided partiality where only encode-direction
// conversion (B to A) can fail.
func Widen[A, B any](c Codec[A], f func(A) B, g func(B) Attempt[A]) Codec[B] {
	return Exmap(c, func(a A) Attempt[B] { return Successful(f(a)) }, g)
}

// WithContext wraps both encode and decode failures with an extra
// pushed context frame named name.
func (c Codec[A]) WithContext(name string) Codec[A] {
	return Codec[A]{
		Bounds: c.Bounds,
		label:  c.label,
		EncodeFn: func(a A) Attempt[BitVector] {
			return c.Encode(a).WithContext(name)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return c.Decode(bits).WithContext(name)
		},
	}
}

// Unit produces a Codec[Unit] that always encodes the fixed value zero
// and discards whatever it decodes.
func (c Codec[A]) Unit(zero A) Codec[Unit] {
	return Codec[Unit]{
		Bounds: c.Bounds,
		EncodeFn: func(Unit) Attempt[BitVector] {
			return c.Encode(zero)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Unit]] {
			return MapAttempt(c.Decode(bits), func(r DecodeResult[A]) DecodeResult[Unit] {
				return DecodeResult[Unit]{Value: Unit{}, Remainder: r.Remainder}
			})
		},
	}
}

const completePreviewBits = 512

// Complete rejects a decode that leaves a non-empty remainder. The
// error preview shows up to 512 remaining bits as hex; beyond that it
// falls back to a fixed message so decoding a pathologically large
// leftover never forces materializing it all into a string.
func (c Codec[A]) Complete() Codec[A] {
	return Codec[A]{
		Bounds:   c.Bounds,
		label:    c.label,
		EncodeFn: c.EncodeFn,
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return FlatMapAttempt(c.Decode(bits), func(r DecodeResult[A]) Attempt[DecodeResult[A]] {
				if r.Remainder.Size() == 0 {
					return Successful(r)
				}
				return Failure[DecodeResult[A]](remainderErr(r.Remainder))
			})
		},
	}
}

func remainderErr(rest BitVector) *Err {
	if !rest.SizeLessThan(completePreviewBits + 1) {
		return Errf("more than %d bits remaining", completePreviewBits)
	}
	return Errf("%d bits remaining: 0x%s", rest.Size(), rest.ToHex())
}

// Compact canonicalizes the bit vector this codec produces into a
// contiguous form before returning it from Encode.
func (c Codec[A]) Compact() Codec[A] {
	return Codec[A]{
		Bounds: c.Bounds,
		label:  c.label,
		EncodeFn: func(a A) Attempt[BitVector] {
			return MapAttempt(c.Encode(a), BitVector.Compact)
		},
		DecodeFn: c.DecodeFn,
	}
}

// EncodeOnly disables decoding: the returned codec's Decode always
// fails with a half-duplex error.
func (c Codec[A]) EncodeOnly() Codec[A] {
	return Codec[A]{
		Bounds:   c.Bounds,
		label:    c.label,
		EncodeFn: c.EncodeFn,
		DecodeFn: func(BitVector) Attempt[DecodeResult[A]] {
			return Failure[DecodeResult[A]](NewErr("decode disabled: codec is encode-only"))
		},
	}
}

// DecodeOnly disables encoding: the returned codec's Encode always
// fails with a half-duplex error.
func (c Codec[A]) DecodeOnly() Codec[A] {
	return Codec[A]{
		Bounds: c.Bounds,
		label:  c.label,
		EncodeFn: func(A) Attempt[BitVector] {
			return Failure[BitVector](NewErr("encode disabled: codec is decode-only"))
		},
		DecodeFn: c.DecodeFn,
	}
}

// Lazily defers constructing the wrapped codec until first use, then
// memoizes it behind a write-once cell. This is what makes recursive
// codec definitions possible: a field referring to the codec being
// constructed can call Lazily(func() Codec[T] { return theCodec }).
func Lazily[A any](thunk func() Codec[A]) Codec[A] {
	var once sync.Once
	var cached Codec[A]
	materialize := func() Codec[A] {
		once.Do(func() { cached = thunk() })
		return cached
	}
	return Codec[A]{
		Bounds: UnknownSize(),
		EncodeFn: func(a A) Attempt[BitVector] {
			return materialize().Encode(a)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return materialize().Decode(bits)
		},
	}
}

// Variant describes how an Inner value injects into an Outer tagged
// value, and how an Outer value projects back to an Inner one. This is
// the Go re-expression of the source's subtype-based upcast/downcast:
// "inject into a variant" / "project from a variant, error on
// mismatch".
type Variant[Outer, Inner any] struct {
	Inject  func(Inner) Outer
	Project func(Outer) (Inner, bool)
	Name    string
}

// Upcast widens a Codec[Inner] to a Codec[Outer] via v. Decoding is
// unchanged (decode as Inner, inject into Outer); encoding fails if
// the Outer value supplied does not project to an Inner one.
func Upcast[Outer, Inner any](inner Codec[Inner], v Variant[Outer, Inner]) Codec[Outer] {
	return Codec[Outer]{
		Bounds: inner.Bounds,
		EncodeFn: func(o Outer) Attempt[BitVector] {
			in, ok := v.Project(o)
			if !ok {
				return Failure[BitVector](Errf("not a value of type %s", v.Name))
			}
			return inner.Encode(in)
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Outer]] {
			return MapAttempt(inner.Decode(bits), func(r DecodeResult[Inner]) DecodeResult[Outer] {
				return DecodeResult[Outer]{Value: v.Inject(r.Value), Remainder: r.Remainder}
			})
		},
	}
}

// Downcast narrows a Codec[Outer] to a Codec[Inner] via v. Encoding is
// unchanged (inject Inner into Outer, then encode); decoding fails if
// the decoded Outer value does not project to an Inner one.
func Downcast[Outer, Inner any](outer Codec[Outer], v Variant[Outer, Inner]) Codec[Inner] {
	return Codec[Inner]{
		Bounds: outer.Bounds,
		EncodeFn: func(in Inner) Attempt[BitVector] {
			return outer.Encode(v.Inject(in))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Inner]] {
			return FlatMapAttempt(outer.Decode(bits), func(r DecodeResult[Outer]) Attempt[DecodeResult[Inner]] {
				in, ok := v.Project(r.Value)
				if !ok {
					return Failure[DecodeResult[Inner]](Errf("not a value of type %s", v.Name))
				}
				return Successful(DecodeResult[Inner]{Value: in, Remainder: r.Remainder})
			})
		},
	}
}
