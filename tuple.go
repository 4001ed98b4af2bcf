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

// Pair is the Go re-expression of the source's "::" tuple cons cell:
// left-nested pairs of any depth (Pair[Pair[A,B],C], ...) stand in for
// arbitrary-arity tuples, since Go has no variadic/flattening tuple
// type.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Prepend sequences ca then cb, producing a Pair. This is both "::"
// (when B is a plain value) and ":+" (when ca is itself already a
// Pair-typed codec being extended with one more field) — the two
// source operators collapse to the same combinator here because Go
// pairs don't auto-flatten into variadic tuples.
func Prepend[A, B any](ca Codec[A], cb Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		Bounds: ca.Bounds.Add(cb.Bounds),
		EncodeFn: func(p Pair[A, B]) Attempt[BitVector] {
			return FlatMapAttempt(ca.Encode(p.First), func(ea BitVector) Attempt[BitVector] {
				return MapAttempt(cb.Encode(p.Second), func(eb BitVector) BitVector {
					return Concat(ea, eb)
				})
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Pair[A, B]]] {
			return FlatMapAttempt(ca.Decode(bits), func(ra DecodeResult[A]) Attempt[DecodeResult[Pair[A, B]]] {
				return MapAttempt(cb.Decode(ra.Remainder), func(rb DecodeResult[B]) DecodeResult[Pair[A, B]] {
					return DecodeResult[Pair[A, B]]{Value: Pair[A, B]{First: ra.Value, Second: rb.Value}, Remainder: rb.Remainder}
				})
			})
		},
	}
}

// Append is Prepend under the name the source uses when the left side
// is the already-built tuple and the right side is the single field
// being added.
func Append[A, B any](ca Codec[A], cb Codec[B]) Codec[Pair[A, B]] {
	return Prepend(ca, cb)
}

// DropLeft is "~>": cu is a Codec[Unit] whose decoded value is
// discarded; only cb's value survives in the result.
func DropLeft[B any](cu Codec[Unit], cb Codec[B]) Codec[B] {
	return Xmap(Prepend(cu, cb),
		func(p Pair[Unit, B]) B { return p.Second },
		func(b B) Pair[Unit, B] { return Pair[Unit, B]{First: Unit{}, Second: b} },
	)
}

// DropRight is "<~": the symmetric case, ca's value survives and cu's
// Unit is discarded.
func DropRight[A any](ca Codec[A], cu Codec[Unit]) Codec[A] {
	return Xmap(Prepend(ca, cu),
		func(p Pair[A, Unit]) A { return p.First },
		func(a A) Pair[A, Unit] { return Pair[A, Unit]{First: a, Second: Unit{}} },
	)
}

// FlatZip encodes a, then uses f(a) to build the codec for b and
// encodes that; decode mirrors. This is the combinator behind
// length-prefixed and discriminator-dependent framings, where the
// second field's shape depends on the first field's decoded value.
func FlatZip[A, B any](ca Codec[A], f func(A) Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		Bounds: AtLeastSize(ca.Bounds.Lower),
		EncodeFn: func(p Pair[A, B]) Attempt[BitVector] {
			return FlatMapAttempt(ca.Encode(p.First), func(ea BitVector) Attempt[BitVector] {
				return MapAttempt(f(p.First).Encode(p.Second), func(eb BitVector) BitVector {
					return Concat(ea, eb)
				})
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[Pair[A, B]]] {
			return FlatMapAttempt(ca.Decode(bits), func(ra DecodeResult[A]) Attempt[DecodeResult[Pair[A, B]]] {
				return MapAttempt(f(ra.Value).Decode(ra.Remainder), func(rb DecodeResult[B]) DecodeResult[Pair[A, B]] {
					return DecodeResult[Pair[A, B]]{Value: Pair[A, B]{First: ra.Value, Second: rb.Value}, Remainder: rb.Remainder}
				})
			})
		},
	}
}

// FlatPrepend is FlatZip under the source's tuple-shaped alias; kept
// as a distinct name because callers read "prepend" as "add a field
// in front of an existing tuple codec" even though the Go shape is
// identical to FlatZip.
func FlatPrepend[A, B any](ca Codec[A], f func(A) Codec[B]) Codec[Pair[A, B]] {
	return FlatZip(ca, f)
}

// FlatAppend is FlatZip read as "add a field after an existing tuple
// codec", for the same reason as FlatPrepend.
func FlatAppend[A, B any](ca Codec[A], f func(A) Codec[B]) Codec[Pair[A, B]] {
	return FlatZip(ca, f)
}

// FlatConcat composes two already-built tuple codecs where the second
// tuple's codec depends on the value decoded by the first.
func FlatConcat[A, B any](ca Codec[A], f func(A) Codec[B]) Codec[Pair[A, B]] {
	return FlatZip(ca, f)
}

// Consume is FlatZip with the first field hidden from the caller: g
// re-derives A from B on encode, so only B crosses the public
// boundary.
func Consume[A, B any](ca Codec[A], f func(A) Codec[B], g func(B) A) Codec[B] {
	inner := FlatZip(ca, f)
	return Xmap(inner,
		func(p Pair[A, B]) B { return p.Second },
		func(b B) Pair[A, B] { a := g(b); return Pair[A, B]{First: a, Second: b} },
	)
}

// DropUnitLeft removes a Unit-typed first position from a pair codec,
// the two-position specialization of the source's dropUnits (which
// operates over tuples of arbitrary arity).
func DropUnitLeft[B any](p Codec[Pair[Unit, B]]) Codec[B] {
	return Xmap(p,
		func(v Pair[Unit, B]) B { return v.Second },
		func(b B) Pair[Unit, B] { return Pair[Unit, B]{First: Unit{}, Second: b} },
	)
}

// DropUnitRight removes a Unit-typed second position from a pair
// codec.
func DropUnitRight[A any](p Codec[Pair[A, Unit]]) Codec[A] {
	return Xmap(p,
		func(v Pair[A, Unit]) A { return v.First },
		func(a A) Pair[A, Unit] { return Pair[A, Unit]{First: a, Second: Unit{}} },
	)
}

// Derive specializes the source's derive[B].from(h) to a Pair: B is
// computed from A via h on encode and dropped entirely from the
// public type, leaving a Codec[A].
func Derive[A, B any](full Codec[Pair[A, B]], h func(A) B) Codec[A] {
	return Xmap(full,
		func(p Pair[A, B]) A { return p.First },
		func(a A) Pair[A, B] { return Pair[A, B]{First: a, Second: h(a)} },
	)
}

// Struct2 builds a Codec[R] from two field codecs plus the
// isomorphism between R and its two fields — the explicit,
// no-reflection re-expression of the source's implicit tuple-to-case-
// class derivation (spec.md §9): the caller supplies the product/sum
// isomorphism by hand instead of it being discovered by the compiler.
// names supplies the field labels pushed as error-context frames
// (spec.md §7's "field name for derived product codecs" rule), in
// declaration order, the same way framing.go's indexContext labels
// Repeated/ListOfN elements.
func Struct2[A, B, R any](ca Codec[A], cb Codec[B], names [2]string, to func(A, B) R, from func(R) (A, B)) Codec[R] {
	ca, cb = ca.WithContext(names[0]), cb.WithContext(names[1])
	return Xmap(Prepend(ca, cb),
		func(p Pair[A, B]) R { return to(p.First, p.Second) },
		func(r R) Pair[A, B] { a, b := from(r); return Pair[A, B]{First: a, Second: b} },
	)
}

// Struct3 is Struct2 extended to three fields.
func Struct3[A, B, C, R any](ca Codec[A], cb Codec[B], cc Codec[C], names [3]string, to func(A, B, C) R, from func(R) (A, B, C)) Codec[R] {
	ca, cb, cc = ca.WithContext(names[0]), cb.WithContext(names[1]), cc.WithContext(names[2])
	inner := Prepend(Prepend(ca, cb), cc)
	return Xmap(inner,
		func(p Pair[Pair[A, B], C]) R { return to(p.First.First, p.First.Second, p.Second) },
		func(r R) Pair[Pair[A, B], C] {
			a, b, c := from(r)
			return Pair[Pair[A, B], C]{First: Pair[A, B]{First: a, Second: b}, Second: c}
		},
	)
}

// Struct4 is Struct2 extended to four fields.
func Struct4[A, B, C, D, R any](ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D], names [4]string, to func(A, B, C, D) R, from func(R) (A, B, C, D)) Codec[R] {
	ca, cb, cc, cd = ca.WithContext(names[0]), cb.WithContext(names[1]), cc.WithContext(names[2]), cd.WithContext(names[3])
	inner := Prepend(Prepend(Prepend(ca, cb), cc), cd)
	return Xmap(inner,
		func(p Pair[Pair[Pair[A, B], C], D]) R {
			return to(p.First.First.First, p.First.First.Second, p.First.Second, p.Second)
		},
		func(r R) Pair[Pair[Pair[A, B], C], D] {
			a, b, c, d := from(r)
			return Pair[Pair[Pair[A, B], C], D]{First: Pair[Pair[A, B], C]{First: Pair[A, B]{First: a, Second: b}, Second: c}, Second: d}
		},
	)
}

// Struct5 is Struct2 extended to five fields.
func Struct5[A, B, C, D, E, R any](ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D], ce Codec[E], names [5]string, to func(A, B, C, D, E) R, from func(R) (A, B, C, D, E)) Codec[R] {
	ca, cb, cc, cd, ce = ca.WithContext(names[0]), cb.WithContext(names[1]), cc.WithContext(names[2]), cd.WithContext(names[3]), ce.WithContext(names[4])
	inner := Prepend(Prepend(Prepend(Prepend(ca, cb), cc), cd), ce)
	return Xmap(inner,
		func(p Pair[Pair[Pair[Pair[A, B], C], D], E]) R {
			return to(p.First.First.First.First, p.First.First.First.Second, p.First.First.Second, p.First.Second, p.Second)
		},
		func(r R) Pair[Pair[Pair[Pair[A, B], C], D], E] {
			a, b, c, d, e := from(r)
			return Pair[Pair[Pair[Pair[A, B], C], D], E]{
				First:  Pair[Pair[Pair[A, B], C], D]{First: Pair[Pair[A, B], C]{First: Pair[A, B]{First: a, Second: b}, Second: c}, Second: d},
				Second: e,
			}
		},
	)
}

// Struct6 is Struct2 extended to six fields, the practical arity
// ceiling for hand-written isomorphisms.
func Struct6[A, B, C, D, E, F, R any](ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D], ce Codec[E], cf Codec[F], names [6]string, to func(A, B, C, D, E, F) R, from func(R) (A, B, C, D, E, F)) Codec[R] {
	ca, cb, cc, cd, ce, cf = ca.WithContext(names[0]), cb.WithContext(names[1]), cc.WithContext(names[2]), cd.WithContext(names[3]), ce.WithContext(names[4]), cf.WithContext(names[5])
	inner := Prepend(Prepend(Prepend(Prepend(Prepend(ca, cb), cc), cd), ce), cf)
	return Xmap(inner,
		func(p Pair[Pair[Pair[Pair[Pair[A, B], C], D], E], F]) R {
			return to(
				p.First.First.First.First.First,
				p.First.First.First.First.Second,
				p.First.First.First.Second,
				p.First.First.Second,
				p.First.Second,
				p.Second,
			)
		},
		func(r R) Pair[Pair[Pair[Pair[Pair[A, B], C], D], E], F] {
			a, b, c, d, e, f := from(r)
			return Pair[Pair[Pair[Pair[Pair[A, B], C], D], E], F]{
				First: Pair[Pair[Pair[Pair[A, B], C], D], E]{
					First:  Pair[Pair[Pair[A, B], C], D]{First: Pair[Pair[A, B], C]{First: Pair[A, B]{First: a, Second: b}, Second: c}, Second: d},
					Second: e,
				},
				Second: f,
			}
		},
	)
}
