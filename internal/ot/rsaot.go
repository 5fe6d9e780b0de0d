//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package ot implements 1-out-of-2 oblivious transfer over RSA
// blinding: the receiver obtains exactly one of the sender's two
// messages, the sender never learns which, and the receiver never
// learns the other.
package ot

import (
	"io"
	"math/big"

	"github.com/nightfall-labs/millionaires/internal/bigutil"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/rsautil"
)

// Sender holds the RSA keypair that backs every transfer in a session.
// A single Sender runs one independent transfer per receiver-input bit,
// each drawing its own (x0, x1).
type Sender struct {
	kp *rsautil.Keypair
}

// NewSender wraps an RSA keypair as an OT sender.
func NewSender(kp *rsautil.Keypair) *Sender {
	return &Sender{kp: kp}
}

// PublicKey returns the sender's RSA public key, shipped to the
// receiver once per session.
func (s *Sender) PublicKey() rsautil.PublicKey {
	return s.kp.PublicKey()
}

// SenderTransfer is one in-flight OT instance from the sender's side.
type SenderTransfer struct {
	sender *Sender
	m0, m1 *big.Int
	x0, x1 *big.Int
}

// NewTransfer starts a transfer for messages (m0, m1), drawing fresh
// random nonces x0, x1 in [0, n).
func (s *Sender) NewTransfer(rnd io.Reader, m0, m1 *big.Int) (*SenderTransfer, error) {
	n := s.kp.PublicKey().N
	x0, err := bigutil.RandomBelow(rnd, n)
	if err != nil {
		return nil, err
	}
	x1, err := bigutil.RandomBelow(rnd, n)
	if err != nil {
		return nil, err
	}
	return &SenderTransfer{sender: s, m0: m0, m1: m1, x0: x0, x1: x1}, nil
}

// Xs returns the random nonces to send to the receiver.
func (t *SenderTransfer) Xs() (x0, x1 *big.Int) {
	return t.x0, t.x1
}

// Combine computes (m0', m1') from the receiver's blinded index v.
// m0' masks m0 under a key the receiver can only unblind if it chose
// bit 0; m1' masks m1 symmetrically for bit 1.
func (t *SenderTransfer) Combine(v *big.Int) (mPrime0, mPrime1 *big.Int) {
	n := t.sender.kp.PublicKey().N

	k0 := t.sender.kp.Decrypt(bigutil.Mod(bigutil.Sub(v, t.x0), n))
	k1 := t.sender.kp.Decrypt(bigutil.Mod(bigutil.Sub(v, t.x1), n))

	mPrime0 = bigutil.Mod(bigutil.Add(t.m0, k0), n)
	mPrime1 = bigutil.Mod(bigutil.Add(t.m1, k1), n)
	return mPrime0, mPrime1
}

// Receiver holds the sender's public key and runs one transfer per
// input bit it wants to learn.
type Receiver struct {
	pub rsautil.PublicKey
}

// NewReceiver wraps the sender's public key as an OT receiver.
func NewReceiver(pub rsautil.PublicKey) *Receiver {
	return &Receiver{pub: pub}
}

// ReceiverTransfer is one in-flight OT instance from the receiver's
// side.
type ReceiverTransfer struct {
	receiver *Receiver
	bit      int
	k        *big.Int
	x0, x1   *big.Int
}

// NewTransfer starts a transfer for the given choice bit, given the
// sender's (x0, x1) nonces for this instance.
func (r *Receiver) NewTransfer(rnd io.Reader, bit int, x0, x1 *big.Int) (*ReceiverTransfer, error) {
	k, err := bigutil.RandomBelow(rnd, r.pub.N)
	if err != nil {
		return nil, err
	}
	return &ReceiverTransfer{receiver: r, bit: bit, k: k, x0: x0, x1: x1}, nil
}

// Blind computes v = (x_bit + k^e) mod n, the value sent back to the
// sender. v is uniformly distributed in [0, n) regardless of bit,
// because k^e mod n is uniform.
func (t *ReceiverTransfer) Blind() *big.Int {
	xb := t.x0
	if t.bit != 0 {
		xb = t.x1
	}
	ke := bigutil.Exp(t.k, t.receiver.pub.E, t.receiver.pub.N)
	return bigutil.Mod(bigutil.Add(xb, ke), t.receiver.pub.N)
}

// Derive recovers m_bit from the sender's combined reply.
func (t *ReceiverTransfer) Derive(mPrime0, mPrime1 *big.Int) *big.Int {
	mb := mPrime0
	if t.bit != 0 {
		mb = mPrime1
	}
	return bigutil.Mod(bigutil.Sub(mb, t.k), t.receiver.pub.N)
}

// LabelToInt reinterprets a wire label as a big-endian unsigned
// integer, the form OT messages take on the wire.
func LabelToInt(l label.Label) *big.Int {
	return bigutil.FromBytes(l.Bytes())
}

// IntToLabel inverts LabelToInt, left-padding with zero bytes to
// label.Size. The caller must ensure v is less than 2^256.
func IntToLabel(v *big.Int) label.Label {
	var buf [label.Size]byte
	b := v.Bytes()
	copy(buf[label.Size-len(b):], b)
	return label.FromBytes(buf[:])
}
