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

import "testing"

func TestUTF8StringRoundTrip(t *testing.T) {
	c := String(UTF8)
	enc := c.Encode("héllo wörld").MustGet()
	r := c.Decode(enc).MustGet()
	if r.Value != "héllo wörld" || r.Remainder.Size() != 0 {
		t.Fatalf("unexpected decode: %+v", r)
	}
}

func TestUTF8StringLongASCII(t *testing.T) {
	// exercises the eight-byte-at-a-time fast path in isASCII.
	long := "the quick brown fox jumps over the lazy dog, twice over"
	c := String(UTF8)
	enc := c.Encode(long).MustGet()
	r := c.Decode(enc).MustGet()
	if r.Value != long {
		t.Fatal("long ASCII string roundtrip mismatch")
	}
}

func TestASCIIRejectsHighBit(t *testing.T) {
	c := String(ASCII)
	if _, err := c.Encode("café").Get(); err == nil {
		t.Fatal("expected ascii charset to reject non-ASCII input")
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	c := String(UTF8)
	invalid := FromBytes([]byte{0xff, 0xfe, 0xfd})
	if _, err := c.Decode(invalid).Get(); err == nil {
		t.Fatal("expected invalid UTF-8 decode failure")
	}
}

func TestStringRequiresByteAlignment(t *testing.T) {
	c := String(ASCII)
	if _, err := c.Decode(FromBin("1010").MustGet()).Get(); err == nil {
		t.Fatal("expected byte-alignment failure")
	}
}
