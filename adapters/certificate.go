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

import "crypto/x509"

// CertDecoder is the default scodec.CertFactory: a thin pass-through
// to crypto/x509.ParseCertificate. No third-party certificate-parsing
// library appears anywhere in this module's source corpus, so it is
// built directly on the standard library rather than on an ecosystem
// dependency.
type CertDecoder struct{}

// Parse implements scodec.CertFactory.
func (CertDecoder) Parse(der []byte) (*x509.Certificate, error) {
	return x509.ParseCertificate(der)
}
