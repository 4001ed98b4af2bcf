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

// SizeBound is a lower bound, and optionally an upper bound, on the
// number of bits a Codec can emit. It is a hint for validation and
// buffer pre-sizing; it is never a substitute for measuring the actual
// encoded size. FixedSizeBits does not consult its inner codec's bound:
// it checks only the measured size of each encoding against the frame.
type SizeBound struct {
	Lower uint64
	Upper *uint64 // nil means unbounded
}

// UnknownSize is the bottom of the lattice: no useful bound at all.
func UnknownSize() SizeBound {
	return SizeBound{}
}

// ExactSize returns a bound for a codec that always emits exactly n
// bits.
func ExactSize(n uint64) SizeBound {
	return SizeBound{Lower: n, Upper: &n}
}

// AtLeastSize returns a bound for a codec that emits at least n bits
// with no known upper bound.
func AtLeastSize(n uint64) SizeBound {
	return SizeBound{Lower: n}
}

// HasUpper reports whether b carries a known upper bound.
func (b SizeBound) HasUpper() bool {
	return b.Upper != nil
}

// UpperOr returns b's upper bound, or dflt if none is known.
func (b SizeBound) UpperOr(dflt uint64) uint64 {
	if b.Upper == nil {
		return dflt
	}
	return *b.Upper
}

// Add is sequential composition: the bound of a codec that encodes an
// A followed by a B. The lower bounds always add; the upper bound adds
// only if both operands carry one.
func (b SizeBound) Add(o SizeBound) SizeBound {
	out := SizeBound{Lower: b.Lower + o.Lower}
	if b.Upper != nil && o.Upper != nil {
		u := *b.Upper + *o.Upper
		out.Upper = &u
	}
	return out
}

// Or is parallel/union composition: the bound of a codec that emits
// either an A-shaped or a B-shaped encoding (e.g. a discriminated
// union's cases, or a conditional codec's two branches).
func (b SizeBound) Or(o SizeBound) SizeBound {
	out := SizeBound{Lower: minU64(b.Lower, o.Lower)}
	if b.Upper != nil && o.Upper != nil {
		u := maxU64(*b.Upper, *o.Upper)
		out.Upper = &u
	}
	return out
}

// Times scales both bounds by a non-negative repetition count, the
// bound of k back-to-back copies of a codec (vectorOfN/listOfN).
func (b SizeBound) Times(k uint64) SizeBound {
	out := SizeBound{Lower: b.Lower * k}
	if b.Upper != nil {
		u := *b.Upper * k
		out.Upper = &u
	}
	return out
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
