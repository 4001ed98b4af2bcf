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

import (
	"encoding/binary"
	"unicode/utf8"
)

// Charset validates that a byte slice is acceptable input/output for a
// string codec.
type Charset struct {
	Name     string
	Validate func([]byte) bool
}

// isASCII scans b eight bytes at a time looking for any byte with the
// high bit set, the same SWAR shape used elsewhere in this corpus for
// counting UTF-8 continuation bytes: skip whole all-ASCII words fast,
// fall back to a byte-at-a-time scan for the tail.
func isASCII(b []byte) bool {
	for len(b) >= 8 {
		qword := binary.LittleEndian.Uint64(b)
		b = b[8:]
		if qword&0x8080808080808080 != 0 {
			return false
		}
	}
	for _, c := range b {
		if c&0x80 != 0 {
			return false
		}
	}
	return true
}

func isValidUTF8(b []byte) bool {
	if isASCII(b) {
		return true
	}
	return utf8.Valid(b)
}

// ASCII accepts only 7-bit bytes.
var ASCII = Charset{Name: "ascii", Validate: isASCII}

// UTF8 accepts any valid UTF-8 byte sequence.
var UTF8 = Charset{Name: "utf-8", Validate: isValidUTF8}

// String consumes the entire remaining buffer as bytes and decodes it
// through cs; on encode it emits the string's raw bytes, with no
// length prefix (compose with a framing combinator for that).
func String(cs Charset) Codec[string] {
	return Codec[string]{
		Bounds: UnknownSize(),
		EncodeFn: func(s string) Attempt[BitVector] {
			b := []byte(s)
			if !cs.Validate(b) {
				return Failure[BitVector](Errf("%s: cannot encode invalid input", cs.Name))
			}
			return Successful(FromBytes(b))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[string]] {
			if bits.Size()%8 != 0 {
				return Failure[DecodeResult[string]](Errf("string(%s): remainder is %d bits, not byte-aligned", cs.Name, bits.Size()))
			}
			b := bits.Bytes()
			if !cs.Validate(b) {
				return Failure[DecodeResult[string]](Errf("%s: invalid byte sequence", cs.Name))
			}
			return Successful(DecodeResult[string]{Value: string(b), Remainder: Empty()})
		},
	}
}
