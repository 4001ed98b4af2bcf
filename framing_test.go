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

func TestFixedSizeBits(t *testing.T) {
	c := FixedSizeBits(16, Uint8)
	enc := c.Encode(5).MustGet()
	if enc.Size() != 16 {
		t.Fatalf("expected 16 bits, got %d", enc.Size())
	}
	if enc.ToHex() != "0500" {
		t.Fatalf("expected 0500 padding, got %s", enc.ToHex())
	}
	r := c.Decode(Concat(enc, FromBytes([]byte{0xaa}))).MustGet()
	if r.Value != 5 || r.Remainder.ToHex() != "aa" {
		t.Fatalf("unexpected decode result: %+v", r)
	}
}

func TestFixedSizeBitsOverflow(t *testing.T) {
	c := FixedSizeBits(4, Uint8)
	if _, err := c.Encode(255).Get(); err == nil {
		t.Fatal("expected overflow failure")
	}
}

func TestVariableSizeBytes(t *testing.T) {
	c := VariableSizeBytes(Uint8, Bytes)
	enc := c.Encode([]byte("hi")).MustGet()
	if enc.ToHex() != "026869" {
		t.Fatalf("unexpected encoding %s", enc.ToHex())
	}
	r := c.Decode(enc).MustGet()
	if string(r.Value) != "hi" || r.Remainder.Size() != 0 {
		t.Fatalf("unexpected decode %+v", r)
	}
}

func TestVariableSizeBitsSizePadding(t *testing.T) {
	c := VariableSizeBits(Uint8, Uint8, 1)
	enc := c.Encode(7).MustGet()
	// value is 8 bits, size field stores 8+1=9
	if got := Uint8.DecodeValidValue(enc.Take(8)); got != 9 {
		t.Fatalf("expected size field 9, got %d", got)
	}
	r := c.Decode(enc).MustGet()
	if r.Value != 7 {
		t.Fatalf("expected roundtrip value 7, got %d", r.Value)
	}
}

func TestConditional(t *testing.T) {
	c := Conditional(true, Uint8)
	enc := c.Encode(Some[uint64](42)).MustGet()
	r := c.Decode(enc).MustGet()
	if !r.Value.Defined || r.Value.Value != 42 {
		t.Fatalf("unexpected conditional decode: %+v", r.Value)
	}

	cFalse := Conditional[uint64](false, Uint8)
	enc2 := cFalse.Encode(None[uint64]()).MustGet()
	if enc2.Size() != 0 {
		t.Fatalf("expected zero bits when flag false, got %d", enc2.Size())
	}
	r2 := cFalse.Decode(FromBytes([]byte{1, 2, 3})).MustGet()
	if r2.Value.Defined || r2.Remainder.Size() != 24 {
		t.Fatalf("expected untouched remainder, got %+v", r2)
	}
}

func TestRepeatedFailFast(t *testing.T) {
	c := Repeated(Uint8)
	in := FromBytes([]byte{1, 2, 3})
	r := c.Decode(in).MustGet()
	if len(r.Value) != 3 || r.Value[2] != 3 {
		t.Fatalf("unexpected repeated decode: %v", r.Value)
	}

	bad := FromBytes([]byte{1, 2}).Take(12) // 12 bits: one byte plus 4 leftover bits, not enough for a second uint8
	if _, err := c.Decode(bad).Get(); err == nil {
		t.Fatal("expected fail-fast error on trailing partial element")
	}
}

func TestListOfN(t *testing.T) {
	c := ListOfN(Uint8, Uint16)
	enc := c.Encode([]uint64{1, 2, 3}).MustGet()
	r := c.Decode(enc).MustGet()
	if len(r.Value) != 3 || r.Value[1] != 2 {
		t.Fatalf("unexpected listOfN roundtrip: %v", r.Value)
	}
}
