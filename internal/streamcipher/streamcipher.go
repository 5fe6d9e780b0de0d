//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package streamcipher implements the label-wrapping primitive used to
// garble and decrypt gate ciphertexts: a 32-byte-keyed stream cipher
// realized as AES-256 in counter mode.
package streamcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Cipher wraps an AES-256 block cipher keyed by a 32-byte wire label.
type Cipher struct {
	block cipher.Block
}

// New constructs a Cipher from a 32-byte key. The key is typically a
// wire label used directly as an AES-256 key.
func New(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{block: block}, nil
}

// iv builds the CTR initial counter block: the 64-bit counter in the
// low bytes of an all-zero 16-byte block, matching the "counter as the
// initial block counter" contract.
func iv(counter uint64) [aes.BlockSize]byte {
	var buf [aes.BlockSize]byte
	binary.BigEndian.PutUint64(buf[aes.BlockSize-8:], counter)
	return buf
}

// Encrypt produces ciphertext of equal length to plaintext, keyed on
// the cipher's label and the given counter.
func (c *Cipher) Encrypt(plaintext []byte, counter uint64) []byte {
	block := iv(counter)
	stream := cipher.NewCTR(c.block, block[:])
	out := make([]byte, len(plaintext))
	stream.XORKeyStream(out, plaintext)
	return out
}

// Decrypt inverts Encrypt under the same key and counter. CTR mode is
// its own inverse, so this is the identical transform as Encrypt; it is
// kept as a distinct method to document intent at call sites.
func (c *Cipher) Decrypt(ciphertext []byte, counter uint64) []byte {
	return c.Encrypt(ciphertext, counter)
}
