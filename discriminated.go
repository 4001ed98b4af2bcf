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

import "fmt"

// discCase holds one registered arm of a discriminated union: d is
// the wire discriminator value, label is the case-label context frame
// pushed onto any encode/decode failure within this case, encode
// reports whether a given A belongs to this case (and if so, its
// encoded payload), and decode turns a payload bit vector back into
// an A.
type discCase[D comparable, A any] struct {
	d      D
	label  string
	encode func(A) (bool, Attempt[BitVector])
	decode func(BitVector) Attempt[DecodeResult[A]]
}

// Discriminated is the fluent builder for a tagged-union codec: an
// ordered, first-match case registry keyed by a discriminator value,
// the same linear-scan-first-match shape used by this corpus's
// name-to-implementation lookups (a compression-algorithm registry
// indexed by name instead of by a typed discriminator).
type Discriminated[D comparable, A any] struct {
	discCodec Codec[D]
	cases     []discCase[D, A]
}

// DiscriminatedBy starts a builder keyed by discCodec.
func DiscriminatedBy[D comparable, A any](discCodec Codec[D]) *Discriminated[D, A] {
	return &Discriminated[D, A]{discCodec: discCodec}
}

// TypeCase registers an unconditional case: every A value is encoded
// with c under discriminator d. Use this when A is not itself a sum
// type (e.g. the union has exactly one case, or this case is reached
// only through a prior Variant-based dispatch by the caller).
func (b *Discriminated[D, A]) TypeCase(d D, c Codec[A]) *Discriminated[D, A] {
	b.cases = append(b.cases, discCase[D, A]{
		d:     d,
		label: fmt.Sprintf("%v", d),
		encode: func(a A) (bool, Attempt[BitVector]) {
			return true, c.Encode(a)
		},
		decode: c.Decode,
	})
	return b
}

// CaseP registers a conditional case: v.Project selects whether a
// given A belongs to this case and extracts its payload; v.Inject
// rebuilds an A from a decoded payload. This is a free function
// rather than a *Discriminated method because it introduces a fresh
// type parameter (Inner) that a method cannot add.
func CaseP[D comparable, A, Inner any](b *Discriminated[D, A], d D, v Variant[A, Inner], c Codec[Inner]) *Discriminated[D, A] {
	b.cases = append(b.cases, discCase[D, A]{
		d:     d,
		label: fmt.Sprintf("%v", d),
		encode: func(a A) (bool, Attempt[BitVector]) {
			in, ok := v.Project(a)
			if !ok {
				return false, Attempt[BitVector]{}
			}
			return true, c.Encode(in)
		},
		decode: func(bits BitVector) Attempt[DecodeResult[A]] {
			return MapAttempt(c.Decode(bits), func(r DecodeResult[Inner]) DecodeResult[A] {
				return DecodeResult[A]{Value: v.Inject(r.Value), Remainder: r.Remainder}
			})
		},
	})
	return b
}

// Build finishes the builder into a Codec[A]. Encode scans cases in
// insertion order and uses the first one whose predicate matches;
// decode reads the discriminator, then scans for the first case
// registered under that value.
func (b *Discriminated[D, A]) Build() Codec[A] {
	discCodec := b.discCodec
	cases := append([]discCase[D, A](nil), b.cases...)
	return Codec[A]{
		Bounds: AtLeastSize(discCodec.Bounds.Lower),
		EncodeFn: func(a A) Attempt[BitVector] {
			for _, c := range cases {
				matched, enc := c.encode(a)
				if !matched {
					continue
				}
				enc = enc.WithContext(c.label)
				return FlatMapAttempt(discCodec.Encode(c.d), func(ed BitVector) Attempt[BitVector] {
					return MapAttempt(enc, func(ep BitVector) BitVector {
						return Concat(ed, ep)
					})
				})
			}
			return Failure[BitVector](Errf("could not find matching case for %v", a))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			return FlatMapAttempt(discCodec.Decode(bits), func(rd DecodeResult[D]) Attempt[DecodeResult[A]] {
				for _, c := range cases {
					if c.d != rd.Value {
						continue
					}
					return c.decode(rd.Remainder).WithContext(c.label)
				}
				return Failure[DecodeResult[A]](MatchingDiscriminatorNotFound(rd.Value))
			})
		},
	}
}
