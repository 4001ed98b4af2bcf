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

func TestXmap(t *testing.T) {
	type celsius float64
	c := Xmap(Uint8,
		func(v uint64) celsius { return celsius(v) - 40 },
		func(c celsius) uint64 { return uint64(c + 40) },
	)
	enc := c.Encode(celsius(22)).MustGet()
	r := c.Decode(enc).MustGet()
	if r.Value != celsius(22) {
		t.Fatalf("expected 22, got %v", r.Value)
	}
}

// TestExmapValidation mirrors the seed scenario where both directions
// of an exmap can independently fail validation.
func TestExmapValidation(t *testing.T) {
	c := Exmap(Uint8,
		func(v uint64) Attempt[uint64] {
			if v > 9 {
				return Failure[uint64](NewErr("badv"))
			}
			return Successful(v)
		},
		func(d uint64) Attempt[uint64] {
			if d > 9 {
				return Failure[uint64](NewErr("badd"))
			}
			return Successful(d)
		},
	)

	enc := c.Encode(3).MustGet()
	if enc.ToHex() != "03" {
		t.Fatalf("expected 0x03, got %s", enc.ToHex())
	}
	if _, err := c.Encode(10).Get(); err == nil || err.Message() != "badd" {
		t.Fatalf("expected badd failure, got %v", err)
	}
	if _, err := c.Decode(FromHex("ff").MustGet()).Get(); err == nil || err.Message() != "badv" {
		t.Fatalf("expected badv failure, got %v", err)
	}
	r := c.Decode(FromHex("05").MustGet()).MustGet()
	if r.Value != 5 || r.Remainder.Size() != 0 {
		t.Fatalf("unexpected decode: %+v", r)
	}
}

func TestWithContext(t *testing.T) {
	c := Uint8.WithContext("age")
	_, err := c.Decode(Empty()).Get()
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Error() != "age/insufficient bits: expected 8, have 0" {
		t.Fatalf("unexpected error message: %s", err.Error())
	}
}

// TestComplete mirrors seed scenario S2.
func TestComplete(t *testing.T) {
	c := BitsN(8).Complete()
	in := FromHex("00112233").MustGet()
	_, err := c.Decode(in).Get()
	if err == nil {
		t.Fatal("expected complete failure on non-empty remainder")
	}
	if err.Message() != "24 bits remaining: 0x112233" {
		t.Fatalf("unexpected message: %q", err.Message())
	}
}

func TestCompleteOversizedRemainder(t *testing.T) {
	c := BitsN(8).Complete()
	big := FromBytes(make([]byte, 1+completePreviewBits/8+1))
	_, err := c.Decode(big).Get()
	if err == nil || err.Message() != "more than 512 bits remaining" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCompact(t *testing.T) {
	c := Prepend(Uint4, Uint4).Compact()
	enc := c.Encode(Pair[uint64, uint64]{First: 0xa, Second: 0xb}).MustGet()
	if enc.ToHex() != "ab" {
		t.Fatalf("unexpected compacted encoding: %s", enc.ToHex())
	}
}

func TestEncodeOnlyDecodeOnly(t *testing.T) {
	eo := Uint8.EncodeOnly()
	if _, err := eo.Encode(1).Get(); err != nil {
		t.Fatalf("encode should succeed: %v", err)
	}
	if _, err := eo.Decode(Empty()).Get(); err == nil {
		t.Fatal("decode should fail on an encode-only codec")
	}

	do := Uint8.DecodeOnly()
	if _, err := do.Encode(1).Get(); err == nil {
		t.Fatal("encode should fail on a decode-only codec")
	}
}

func TestLazilyRecursive(t *testing.T) {
	type node struct {
		value    uint64
		children []node
	}
	var nodeCodec Codec[node]
	nodeCodec = Struct2(Uint8, Lazily(func() Codec[[]node] {
		return ListOfN(Uint8, nodeCodec)
	}), [2]string{"value", "children"},
		func(v uint64, ch []node) node { return node{value: v, children: ch} },
		func(n node) (uint64, []node) { return n.value, n.children },
	)

	tree := node{value: 1, children: []node{{value: 2}, {value: 3, children: []node{{value: 4}}}}}
	enc := nodeCodec.Encode(tree).MustGet()
	r := nodeCodec.Decode(enc).MustGet()
	if r.Value.value != 1 || len(r.Value.children) != 2 || r.Value.children[1].children[0].value != 4 {
		t.Fatalf("unexpected recursive roundtrip: %+v", r.Value)
	}
}

func TestUpcastDowncast(t *testing.T) {
	type b struct{ n uint64 }
	v := Variant[any, b]{
		Name:    "b",
		Inject:  func(inner b) any { return inner },
		Project: func(outer any) (b, bool) { inner, ok := outer.(b); return inner, ok },
	}
	inner := Xmap(Uint8, func(n uint64) b { return b{n: n} }, func(v b) uint64 { return v.n })
	up := Upcast[any, b](inner, v)
	enc := up.Encode(b{n: 7}).MustGet()
	r := up.Decode(enc).MustGet()
	if r.Value.(b).n != 7 {
		t.Fatalf("unexpected upcast decode: %+v", r.Value)
	}
	if _, err := up.Encode("not a b").Get(); err == nil {
		t.Fatal("expected upcast encode failure for non-matching value")
	}

	down := Downcast[any, b](up, v)
	if _, err := down.Decode(FromBytes([]byte{0})).Get(); err != nil {
		t.Fatalf("unexpected downcast failure: %v", err)
	}
}
