//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

package rsautil

import (
	"math/big"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	k, err := Generate(nil, 512)
	if err != nil {
		t.Fatal(err)
	}

	m := big.NewInt(123456789)
	c, err := k.Encrypt(m)
	if err != nil {
		t.Fatal(err)
	}
	got := k.Decrypt(c)
	if got.Cmp(m) != 0 {
		t.Fatalf("round trip mismatch: got %s, want %s", got, m)
	}
}

func TestEncryptWithPublicKey(t *testing.T) {
	k, err := Generate(nil, 512)
	if err != nil {
		t.Fatal(err)
	}
	pub := k.PublicKey()

	m := big.NewInt(42)
	c, err := EncryptWith(pub, m)
	if err != nil {
		t.Fatal(err)
	}
	got := k.Decrypt(c)
	if got.Cmp(m) != 0 {
		t.Fatalf("round trip mismatch: got %s, want %s", got, m)
	}
}

func TestMessageTooLarge(t *testing.T) {
	k, err := Generate(nil, 512)
	if err != nil {
		t.Fatal(err)
	}
	pub := k.PublicKey()
	if _, err := EncryptWith(pub, pub.N); err != ErrMessageTooLarge {
		t.Fatalf("expected ErrMessageTooLarge, got %v", err)
	}
}
