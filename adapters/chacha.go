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
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/mpilquist/scodec"
)

// chaChaCipher implements scodec.Cipher as a nonce-prefixed
// XChaCha20-Poly1305 AEAD envelope: Encrypt generates a fresh random
// nonce, seals the plaintext, and prepends the nonce to the
// ciphertext; Decrypt reverses that.
type chaChaCipher struct {
	aead interface {
		NonceSize() int
		Overhead() int
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	}
}

func (c *chaChaCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("chacha: generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *chaChaCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(ciphertext) < n {
		return nil, fmt.Errorf("chacha: ciphertext shorter than nonce")
	}
	nonce, body := ciphertext[:n], ciphertext[n:]
	return c.aead.Open(nil, nonce, body, nil)
}

// ChaChaCipherFactory builds chaChaCipher instances over a fixed
// 32-byte key.
type ChaChaCipherFactory struct {
	Key []byte
}

// New returns a fresh Cipher for one encode/decode call.
func (f ChaChaCipherFactory) New() scodec.Cipher {
	aead, err := chacha20poly1305.NewX(f.Key)
	if err != nil {
		return errCipher{err: fmt.Errorf("chacha: %w", err)}
	}
	return &chaChaCipher{aead: aead}
}

// errCipher reports the same construction error from both Encrypt and
// Decrypt, so a bad key surfaces as an ordinary codec failure rather
// than a panic.
type errCipher struct{ err error }

func (e errCipher) Encrypt([]byte) ([]byte, error) { return nil, e.err }
func (e errCipher) Decrypt([]byte) ([]byte, error) { return nil, e.err }
