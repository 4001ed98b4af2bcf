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

import "crypto/x509"

// CertFactory parses a DER byte blob into a certificate. No
// third-party certificate library appears anywhere in this module's
// source corpus, so the factory's default implementation
// (adapters.CertDecoder) is backed by the standard library's
// crypto/x509 rather than an ecosystem parser.
type CertFactory interface {
	Parse(der []byte) (*x509.Certificate, error)
}

// Certificate consumes the entire remaining buffer as a DER blob and
// parses it with factory; encode emits the certificate's raw DER
// bytes unchanged.
func Certificate(factory CertFactory) Codec[*x509.Certificate] {
	return Codec[*x509.Certificate]{
		Bounds: UnknownSize(),
		EncodeFn: func(cert *x509.Certificate) Attempt[BitVector] {
			if cert == nil || len(cert.Raw) == 0 {
				return Failure[BitVector](NewErr("certificate: no raw DER bytes to encode"))
			}
			return Successful(FromBytes(cert.Raw))
		},
		DecodeFn: func(bits BitVector) Attempt[DecodeResult[*x509.Certificate]] {
			if bits.Size()%8 != 0 {
				return Failure[DecodeResult[*x509.Certificate]](Errf("certificate: remainder is %d bits, not byte-aligned", bits.Size()))
			}
			cert, err := factory.Parse(bits.Bytes())
			if err != nil {
				return Failure[DecodeResult[*x509.Certificate]](Wrap("certificate: parse", err))
			}
			return Successful(DecodeResult[*x509.Certificate]{Value: cert, Remainder: Empty()})
		},
	}
}
