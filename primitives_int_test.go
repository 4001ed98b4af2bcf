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

func TestUintBERoundTrip(t *testing.T) {
	cases := []struct {
		n int
		v uint64
	}{
		{1, 1}, {4, 9}, {8, 255}, {12, 0xabc}, {64, 1<<64 - 1},
	}
	for _, c := range cases {
		enc := UintBE(c.n).Encode(c.v).MustGet()
		if enc.Size() != uint64(c.n) {
			t.Fatalf("uint(%d): expected %d bits, got %d", c.n, c.n, enc.Size())
		}
		r := UintBE(c.n).Decode(enc).MustGet()
		if r.Value != c.v {
			t.Fatalf("uint(%d): expected %d, got %d", c.n, c.v, r.Value)
		}
	}
}

func TestUintBEOutOfRange(t *testing.T) {
	if _, err := UintBE(4).Encode(16).Get(); err == nil {
		t.Fatal("expected out-of-range failure")
	}
}

func TestUintLERoundTrip(t *testing.T) {
	enc := UintLE(16).Encode(0x0102).MustGet()
	if enc.ToHex() != "0201" {
		t.Fatalf("expected little-endian 0201, got %s", enc.ToHex())
	}
	r := UintLE(16).Decode(enc).MustGet()
	if r.Value != 0x0102 {
		t.Fatalf("expected roundtrip 0x0102, got %#x", r.Value)
	}
}

func TestIntBESignExtension(t *testing.T) {
	enc := IntBE(8).Encode(-1).MustGet()
	if enc.ToHex() != "ff" {
		t.Fatalf("expected 0xff, got %s", enc.ToHex())
	}
	r := IntBE(8).Decode(enc).MustGet()
	if r.Value != -1 {
		t.Fatalf("expected -1, got %d", r.Value)
	}

	r2 := IntBE(4).Decode(FromBin("1000").MustGet()).MustGet()
	if r2.Value != -8 {
		t.Fatalf("expected -8 for 4-bit 1000, got %d", r2.Value)
	}
}

func TestIntLERoundTrip(t *testing.T) {
	enc := IntLE(16).Encode(-2).MustGet()
	r := IntLE(16).Decode(enc).MustGet()
	if r.Value != -2 {
		t.Fatalf("expected -2, got %d", r.Value)
	}
}

func TestIntBEOutOfRange(t *testing.T) {
	if _, err := IntBE(8).Encode(200).Get(); err == nil {
		t.Fatal("expected range failure for int8 encoding 200")
	}
}

func TestNamedShortcutSizes(t *testing.T) {
	if Int8.SizeBound().Lower != 8 || Int64.SizeBound().Lower != 64 {
		t.Fatal("unexpected named shortcut size bounds")
	}
	if Uint32.SizeBound().Lower != 32 {
		t.Fatal("unexpected Uint32 size bound")
	}
}
