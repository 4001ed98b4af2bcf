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

package adapters

import (
	"github.com/klauspost/compress/zstd"

	"github.com/mpilquist/scodec"
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	zstdEncoder = enc
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	zstdDecoder = dec
}

// CompressedCodec transparently zstd-compresses inner's encoded bits
// before framing. It is not one of the adapter interfaces named in
// the core contract (Signer/Cipher), but the same "wraps an inner
// Codec[A] plus a pluggable backend" shape applies, and it is the only
// concrete use of this module's most heavily imported third-party
// library (github.com/klauspost/compress), adapted from
// compr.Compressor/compr.Decompressor: same two-method split between
// compress and decompress, same package-level zstd.Encoder/Decoder
// built once in init rather than per call. Like Ciphered, it is
// frame-bound: it consumes its entire input and has no remainder of
// its own.
func CompressedCodec[A any](inner scodec.Codec[A]) scodec.Codec[A] {
	return scodec.Codec[A]{
		Bounds: scodec.UnknownSize(),
		EncodeFn: func(a A) scodec.Attempt[scodec.BitVector] {
			return scodec.FlatMapAttempt(inner.Encode(a), func(ev scodec.BitVector) scodec.Attempt[scodec.BitVector] {
				if ev.Size()%8 != 0 {
					return scodec.Failure[scodec.BitVector](scodec.Errf("compressed: inner value is %d bits, not byte-aligned", ev.Size()))
				}
				compressed := zstdEncoder.EncodeAll(ev.Bytes(), nil)
				return scodec.Successful(scodec.FromBytes(compressed))
			})
		},
		DecodeFn: func(bits scodec.BitVector) scodec.Attempt[scodec.DecodeResult[A]] {
			if bits.Size()%8 != 0 {
				return scodec.Failure[scodec.DecodeResult[A]](scodec.Errf("compressed: frame is %d bits, not byte-aligned", bits.Size()))
			}
			raw, err := zstdDecoder.DecodeAll(bits.Bytes(), nil)
			if err != nil {
				return scodec.Failure[scodec.DecodeResult[A]](scodec.Wrap("compressed: decompress", err))
			}
			return scodec.MapAttempt(inner.Complete().Decode(scodec.FromBytes(raw)), func(r scodec.DecodeResult[A]) scodec.DecodeResult[A] {
				return scodec.DecodeResult[A]{Value: r.Value, Remainder: scodec.Empty()}
			})
		},
	}
}
