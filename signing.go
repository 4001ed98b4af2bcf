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

// Signer accumulates bytes via Update, then either produces a MAC via
// Sign or checks a received one via Verify. Implementations are not
// required to be safe for concurrent or repeated use after Sign/Verify
// is called; SignerFactory.New must be called once per encode/decode.
type Signer interface {
	Update(data []byte)
	Sign() []byte
	Verify(mac []byte) bool
}

// SignerFactory produces a fresh Signer per operation. The factory
// itself must be safe for concurrent New calls.
type SignerFactory interface {
	New() Signer
}

// Signed wraps inner with a trailing sigSize-byte MAC: encode appends
// factory.New().Sign() of the inner value's bytes; decode splits the
// trailing sigSize bytes off, verifies them against the rest, and only
// then decodes the value. Signed is a terminal/frame-bound codec: it
// is meant to be invoked on an already length-delimited slice (e.g.
// produced by FixedSizeBytes or VariableSizeBytes), and consumes its
// entire input with no remainder of its own.
func Signed[A any](inner Codec[A], factory SignerFactory, sigSize int) Codec[A] {
	return Codec[A]{
		Bounds: inner.Bounds.Add(ExactSize(uint64(sigSize) * 8)),
		EncodeFn: func(a A) Attempt[BitVector] {
			return FlatMapAttempt(inner.Encode(a), func(ev BitVector) Attempt[BitVector] {
				if ev.Size()%8 != 0 {
					return Failure[BitVector](Errf("signed: inner value is %d bits, not byte-aligned", ev.Size()))
				}
				s := factory.New()
				s.Update(ev.Bytes())
				mac := s.Sign()
				if len(mac) != sigSize {
					return Failure[BitVector](Errf("signed: signer produced %d bytes, expected %d", len(mac), sigSize))
				}
				return Successful(Concat(ev, FromBytes(mac)))
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			sigBits := uint64(sigSize) * 8
			if bits.SizeLessThan(sigBits) {
				return Failure[DecodeResult[A]](InsufficientBits(sigBits, bits.Size()))
			}
			if bits.Size()%8 != 0 {
				return Failure[DecodeResult[A]](Errf("signed: frame is %d bits, not byte-aligned", bits.Size()))
			}
			valueBits := bits.Take(bits.Size() - sigBits)
			mac := bits.Drop(valueBits.Size())
			s := factory.New()
			s.Update(valueBits.Bytes())
			if !s.Verify(mac.Bytes()) {
				return Failure[DecodeResult[A]](NewErr("signed: signature verification failed"))
			}
			return MapAttempt(inner.Decode(valueBits), func(r DecodeResult[A]) DecodeResult[A] {
				return DecodeResult[A]{Value: r.Value, Remainder: Empty()}
			})
		},
	}
}
