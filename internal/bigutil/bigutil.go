//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package bigutil collects the arbitrary-precision integer helpers that
// the RSA primitives and the oblivious-transfer protocol build on top of
// math/big.
package bigutil

import (
	"crypto/rand"
	"io"
	"math/big"
)

// FromBytes interprets data as a big-endian unsigned integer.
func FromBytes(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// Add returns a+b as a new big.Int.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a-b as a new big.Int.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Exp returns x^y mod m as a new big.Int.
func Exp(x, y, m *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, m)
}

// Mod returns x mod y as a new big.Int, normalized into [0, y).
func Mod(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(x, y)
}

// RandomBelow draws a uniformly random integer in [0, n) from rnd.
func RandomBelow(rnd io.Reader, n *big.Int) (*big.Int, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return rand.Int(rnd, n)
}
