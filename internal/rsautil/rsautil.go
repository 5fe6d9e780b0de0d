//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package rsautil implements the RSA primitives the oblivious-transfer
// protocol is built on: keypair generation and raw (textbook) modular
// exponentiation. This is deliberately not a production RSA: there is no
// OAEP/PKCS1 padding, because the OT protocol needs the homomorphic
// m^e mod n structure directly on its blinded values.
package rsautil

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"math/big"

	"github.com/nightfall-labs/millionaires/internal/bigutil"
)

// ErrMessageTooLarge is returned when a value to encrypt is not smaller
// than the modulus.
var ErrMessageTooLarge = errors.New("rsautil: message is not smaller than modulus")

// Keypair holds an RSA key pair. e defaults to 65537, the same exponent
// crypto/rsa.GenerateKey always chooses.
type Keypair struct {
	priv *rsa.PrivateKey
}

// Generate creates a fresh RSA keypair with the given modulus size.
// Primality of the underlying primes is tested probabilistically by
// crypto/rsa.GenerateKey.
func Generate(rnd io.Reader, bits int) (*Keypair, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	priv, err := rsa.GenerateKey(rnd, bits)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

// PublicKey is the public half of a Keypair: the modulus n and public
// exponent e, both as big-endian unsigned integers on the wire.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PublicKey returns the keypair's public key.
func (k *Keypair) PublicKey() PublicKey {
	return PublicKey{
		E: big.NewInt(int64(k.priv.E)),
		N: k.priv.N,
	}
}

// Size returns the modulus size in bytes; this is also the maximum size
// of a message this keypair can encrypt directly.
func (k *Keypair) Size() int {
	return k.priv.Size()
}

// Encrypt computes m^e mod n for the keypair's public exponent.
func (k *Keypair) Encrypt(m *big.Int) (*big.Int, error) {
	return EncryptWith(k.PublicKey(), m)
}

// Decrypt computes c^d mod n using the keypair's private exponent.
func (k *Keypair) Decrypt(c *big.Int) *big.Int {
	return bigutil.Exp(c, k.priv.D, k.priv.N)
}

// EncryptWith computes m^e mod n for an arbitrary public key, letting a
// receiver encrypt against a sender's key without holding the private
// half.
func EncryptWith(pub PublicKey, m *big.Int) (*big.Int, error) {
	if m.Cmp(pub.N) >= 0 || m.Sign() < 0 {
		return nil, ErrMessageTooLarge
	}
	return bigutil.Exp(m, pub.E, pub.N), nil
}
