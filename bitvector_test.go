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

func TestBitVectorTakeDropLaws(t *testing.T) {
	a := FromBytes([]byte{0xab, 0xcd})
	b := FromBytes([]byte{0xef})
	ab := Concat(a, b)
	if !ab.Take(a.Size()).Equal(a) {
		t.Fatalf("(a++b).take(a.size) != a")
	}
	if !ab.Drop(a.Size()).Equal(b) {
		t.Fatalf("(a++b).drop(a.size) != b")
	}
	if !Concat(a, Empty()).Equal(a) || !Concat(Empty(), a).Equal(a) {
		t.Fatalf("identity with empty failed")
	}
}

func TestBitVectorUnalignedConcat(t *testing.T) {
	a, _ := FromBin("101").Get()
	b, _ := FromBin("11001").Get()
	got := Concat(a, b)
	want, _ := FromBin("10111001").Get()
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got.ToBin(), want.ToBin())
	}
}

func TestBitVectorTakeSaturates(t *testing.T) {
	a := FromBytes([]byte{0xff})
	if a.Take(100).Size() != 8 {
		t.Fatalf("take should saturate at size")
	}
	if a.Drop(100).Size() != 0 {
		t.Fatalf("drop should saturate at size")
	}
}

func TestBitVectorShifts(t *testing.T) {
	v, _ := FromBin("11001010").Get()
	left := v.LeftShift(3)
	wantLeft, _ := FromBin("01010000").Get()
	if !left.Equal(wantLeft) {
		t.Fatalf("leftShift: got %s want %s", left.ToBin(), wantLeft.ToBin())
	}
	right := v.RightShift(3, false)
	wantRight, _ := FromBin("00011001").Get()
	if !right.Equal(wantRight) {
		t.Fatalf("rightShift: got %s want %s", right.ToBin(), wantRight.ToBin())
	}
	rightSign := v.RightShift(3, true)
	wantRightSign, _ := FromBin("11111001").Get()
	if !rightSign.Equal(wantRightSign) {
		t.Fatalf("rightShift sign: got %s want %s", rightSign.ToBin(), wantRightSign.ToBin())
	}
	big := v.LeftShift(100)
	if big.Size() != v.Size() || !big.Equal(Low(v.Size())) {
		t.Fatalf("shift by >= size should be all zero")
	}
}

func TestBitVectorBitwise(t *testing.T) {
	a, _ := FromBin("1100").Get()
	b, _ := FromBin("1010").Get()
	and, err := a.And(b).Get()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := FromBin("1000").Get()
	if !and.Equal(want) {
		t.Fatalf("and: got %s want %s", and.ToBin(), want.ToBin())
	}
	or, _ := a.Or(b).Get()
	want, _ = FromBin("1110").Get()
	if !or.Equal(want) {
		t.Fatalf("or: got %s want %s", or.ToBin(), want.ToBin())
	}
	xor, _ := a.Xor(b).Get()
	want, _ = FromBin("0110").Get()
	if !xor.Equal(want) {
		t.Fatalf("xor: got %s want %s", xor.ToBin(), want.ToBin())
	}
	not := a.Not()
	want, _ = FromBin("0011").Get()
	if !not.Equal(want) {
		t.Fatalf("not: got %s want %s", not.ToBin(), want.ToBin())
	}
	c := FromBytes([]byte{0})
	if a.And(c).IsSuccessful() {
		t.Fatalf("bitwise op on unequal-length operands should fail")
	}
}

func TestBitVectorHexRoundTrip(t *testing.T) {
	a := FromBytes([]byte{0x01, 0x02, 0x03})
	hex := a.ToHex()
	got, err := FromHex(hex).Get()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(a) {
		t.Fatalf("hex round trip failed: %s", hex)
	}
}

func TestBitVectorHexOddNibble(t *testing.T) {
	v, err := FromHex("0xabc").Get()
	if err != nil {
		t.Fatal(err)
	}
	if v.Size() != 12 {
		t.Fatalf("expected 12 bits, got %d", v.Size())
	}
	if v.ToHex() != "abc" {
		t.Fatalf("got %s", v.ToHex())
	}
}

func TestBitVectorFromHexWhitespaceAndPrefix(t *testing.T) {
	v, err := FromHex("0x ab cd").Get()
	if err != nil {
		t.Fatal(err)
	}
	if v.ToHex() != "abcd" {
		t.Fatalf("got %s", v.ToHex())
	}
}

func TestBitVectorFromHexInvalid(t *testing.T) {
	if FromHex("zz").IsSuccessful() {
		t.Fatalf("expected failure for invalid hex")
	}
}

func TestBitVectorAtOutOfRange(t *testing.T) {
	v := Low(4)
	if v.At(10).IsSuccessful() {
		t.Fatalf("expected out-of-range failure")
	}
	if _, err := v.At(0).Get(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBitVectorSizeLessThan(t *testing.T) {
	v := Low(10)
	if !v.SizeLessThan(20) {
		t.Fatal("expected true")
	}
	if v.SizeLessThan(5) {
		t.Fatal("expected false")
	}
}
