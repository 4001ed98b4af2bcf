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

// Cipher encrypts/decrypts a single byte-aligned payload in one shot
// (an AEAD envelope, a stream cipher pass, whatever the backend needs
// to frame internally — e.g. a nonce prefix).
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// CipherFactory produces a fresh Cipher per operation. The factory
// itself must be safe for concurrent New calls.
type CipherFactory interface {
	New() Cipher
}

// Ciphered wraps inner in a symmetric-envelope: encode runs the inner
// value's bytes through factory.New().Encrypt and emits the
// ciphertext; decode treats its entire input as ciphertext, decrypts
// it, and decodes inner from the plaintext. Like Signed, Ciphered is
// frame-bound: it consumes all of its input and leaves no remainder.
func Ciphered[A any](inner Codec[A], factory CipherFactory) Codec[A] {
	return Codec[A]{
		Bounds: UnknownSize(),
		EncodeFn: func(a A) Attempt[BitVector] {
			return FlatMapAttempt(inner.Encode(a), func(ev BitVector) Attempt[BitVector] {
				if ev.Size()%8 != 0 {
					return Failure[BitVector](Errf("ciphered: inner value is %d bits, not byte-aligned", ev.Size()))
				}
				ct, err := factory.New().Encrypt(ev.Bytes())
				if err != nil {
					return Failure[BitVector](Wrap("ciphered: encrypt", err))
				}
				return Successful(FromBytes(ct))
			})
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[A]] {
			if bits.Size()%8 != 0 {
				return Failure[DecodeResult[A]](Errf("ciphered: frame is %d bits, not byte-aligned", bits.Size()))
			}
			pt, err := factory.New().Decrypt(bits.Bytes())
			if err != nil {
				return Failure[DecodeResult[A]](Wrap("ciphered: decrypt", err))
			}
			return MapAttempt(inner.Complete().Decode(FromBytes(pt)), func(r DecodeResult[A]) DecodeResult[A] {
				return DecodeResult[A]{Value: r.Value, Remainder: Empty()}
			})
		},
	}
}
