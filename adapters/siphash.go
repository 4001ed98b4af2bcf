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

// Package adapters collects concrete scodec.Signer/scodec.Cipher
// backends and related wrapper codecs. Most are grounded on a
// third-party library already present in this module's source corpus;
// the HMAC signer and CertDecoder use only the standard library.
package adapters

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/mpilquist/scodec"
)

// sipHashSigner is a scodec.Signer producing an 8-byte SipHash-2-4
// MAC. Update buffers everything it has seen; Sign/Verify hash it in
// one shot, matching the way this corpus's own interphash/radix64
// tests call siphash.Hash128 over a whole buffer rather than
// incrementally.
type sipHashSigner struct {
	k0, k1 uint64
	buf    []byte
}

func (s *sipHashSigner) Update(data []byte) {
	s.buf = append(s.buf, data...)
}

func (s *sipHashSigner) Sign() []byte {
	h := siphash.Hash(s.k0, s.k1, s.buf)
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], h)
	return out[:]
}

func (s *sipHashSigner) Verify(mac []byte) bool {
	if len(mac) != 8 {
		return false
	}
	want := binary.BigEndian.Uint64(mac)
	return siphash.Hash(s.k0, s.k1, s.buf) == want
}

// SipHashSignerFactory builds sipHashSigner instances sharing a fixed
// 128-bit key, split into the two 64-bit halves github.com/dchest/
// siphash takes directly.
type SipHashSignerFactory struct {
	K0, K1 uint64
}

// NewSipHashSignerFactory derives a factory's key halves from a
// 16-byte key, reading each 8-byte half big-endian. siphash.New reads
// its key little-endian, so the halves differ from the ones
// siphash.New(key[:]) would use.
func NewSipHashSignerFactory(key [16]byte) SipHashSignerFactory {
	return SipHashSignerFactory{
		K0: binary.BigEndian.Uint64(key[:8]),
		K1: binary.BigEndian.Uint64(key[8:]),
	}
}

// New returns a fresh Signer for one encode/decode call.
func (f SipHashSignerFactory) New() scodec.Signer {
	return &sipHashSigner{k0: f.K0, k1: f.K1}
}
