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

import "github.com/google/uuid"

// UUID is a 128-bit big-endian UUID codec, wrapping google/uuid's
// RFC 4122 byte layout rather than hand-rolling one.
var UUID = Codec[uuid.UUID]{
	Bounds: ExactSize(128),
	EncodeFn: func(u uuid.UUID) Attempt[BitVector] {
		return Successful(FromBytes(u[:]))
	},
	DecodeFn: func(bits BitVector) Attempt[DecodeResult[uuid.UUID]] {
		if bits.SizeLessThan(128) {
			return Failure[DecodeResult[uuid.UUID]](InsufficientBits(128, bits.Size()))
		}
		u, err := uuid.FromBytes(bits.Take(128).Bytes())
		if err != nil {
			return Failure[DecodeResult[uuid.UUID]](Wrap("uuid", err))
		}
		return Successful(DecodeResult[uuid.UUID]{Value: u, Remainder: bits.Drop(128)})
	},
}
