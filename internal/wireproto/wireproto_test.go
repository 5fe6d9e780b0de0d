//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

package wireproto

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/nightfall-labs/millionaires/internal/compare"
	"github.com/nightfall-labs/millionaires/internal/evaluate"
	"github.com/nightfall-labs/millionaires/internal/garble"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/ot"
	"github.com/nightfall-labs/millionaires/internal/rsautil"
)

func TestGarbledCircuitRoundTrip(t *testing.T) {
	c := compare.NewGreaterThan(4)
	g, err := garble.Garble(rand.Reader, c)
	if err != nil {
		t.Fatal(err)
	}

	a, b := Pipe()
	done := make(chan error, 1)
	go func() {
		done <- a.SendGarbledCircuit(g.ReceiverView())
	}()

	got, err := b.ReceiveGarbledCircuit()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got.N != g.N {
		t.Fatalf("N mismatch: got %d, want %d", got.N, g.N)
	}
	if got.Root.Gate == nil {
		t.Fatal("root should be a gate for a non-trivial comparator")
	}
}

func TestGarblerKeysRoundTrip(t *testing.T) {
	w1, err := label.RandomWire(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := label.RandomWire(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	keys := []label.Label{w1.Select(1), w2.Select(0)}

	a, b := Pipe()
	done := make(chan error, 1)
	go func() { done <- a.SendGarblerKeys(keys) }()

	got, err := b.ReceiveGarblerKeys()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !got[0].Equal(keys[0]) || !got[1].Equal(keys[1]) {
		t.Fatal("garbler keys did not round trip")
	}
}

func TestRsaPubkeyRoundTrip(t *testing.T) {
	kp, err := rsautil.Generate(rand.Reader, 512)
	if err != nil {
		t.Fatal(err)
	}
	pub := kp.PublicKey()

	a, b := Pipe()
	done := make(chan error, 1)
	go func() { done <- a.SendRsaPubkey(pub) }()

	got, err := b.ReceiveRsaPubkey()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got.E.Cmp(pub.E) != 0 || got.N.Cmp(pub.N) != 0 {
		t.Fatal("rsa public key did not round trip")
	}
}

func TestOtMessagesRoundTrip(t *testing.T) {
	a, b := Pipe()

	x0, x1 := big.NewInt(123), big.NewInt(456)
	done := make(chan error, 1)
	go func() { done <- a.SendXs(x0, x1) }()
	gx0, gx1, err := b.ReceiveXs()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if gx0.Cmp(x0) != 0 || gx1.Cmp(x1) != 0 {
		t.Fatal("xs did not round trip")
	}

	v := big.NewInt(789)
	go func() { done <- b.SendOtBlindedIdx(v) }()
	gv, err := a.ReceiveOtBlindedIdx()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if gv.Cmp(v) != 0 {
		t.Fatal("blinded index did not round trip")
	}

	m0, m1 := big.NewInt(321), big.NewInt(654)
	go func() { done <- a.SendOtEncMessages(m0, m1) }()
	gm0, gm1, err := b.ReceiveOtEncMessages()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if gm0.Cmp(m0) != 0 || gm1.Cmp(m1) != 0 {
		t.Fatal("encrypted messages did not round trip")
	}
}

func TestEvalResultRoundTrip(t *testing.T) {
	a, b := Pipe()
	done := make(chan error, 1)
	go func() { done <- a.SendEvalResult(1) }()
	got, err := b.ReceiveEvalResult()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestWrongVariantRejected(t *testing.T) {
	a, b := Pipe()
	done := make(chan error, 1)
	go func() { done <- a.SendEvalResult(0) }()
	if _, err := b.ReceiveRsaPubkey(); err != ErrUnknownVariant {
		t.Fatalf("got %v, want ErrUnknownVariant", err)
	}
	<-done
}

// TestFullSession drives an entire garbler/receiver exchange over a
// pipe: circuit handoff, garbler's own keys, an RSA-OT round per
// receiver input bit, and the final result, then checks the evaluated
// bit against the plaintext comparison.
func TestFullSession(t *testing.T) {
	const n = 6
	const garblerNetWorth = 41
	const receiverNetWorth = 9

	circ := compare.NewGreaterThan(n)
	g, err := garble.Garble(rand.Reader, circ)
	if err != nil {
		t.Fatal(err)
	}

	kp, err := rsautil.Generate(rand.Reader, 512)
	if err != nil {
		t.Fatal(err)
	}
	sender := ot.NewSender(kp)
	receiver := ot.NewReceiver(sender.PublicKey())

	garblerConn, receiverConn := Pipe()
	sessionErr := make(chan error, 1)

	go func() {
		sessionErr <- runGarbler(garblerConn, g, sender, garblerNetWorth, n)
	}()

	got, err := runReceiver(receiverConn, receiver, receiverNetWorth, n)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-sessionErr; err != nil {
		t.Fatal(err)
	}

	want := 0
	if garblerNetWorth > receiverNetWorth {
		want = 1
	}
	if got != want {
		t.Fatalf("got %d, want %d (garbler=%d receiver=%d)", got, want, garblerNetWorth, receiverNetWorth)
	}
}

func runGarbler(c *Conn, g *garble.Circuit, sender *ot.Sender, value, n int) error {
	if err := c.SendGarbledCircuit(g.ReceiverView()); err != nil {
		return err
	}

	garblerKeys := make([]label.Label, n)
	for i := 0; i < n; i++ {
		bit := (value >> i) & 1
		garblerKeys[i] = g.Inputs[i].Select(bit)
	}
	if err := c.SendGarblerKeys(garblerKeys); err != nil {
		return err
	}
	if err := c.SendRsaPubkey(sender.PublicKey()); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		w := g.Inputs[n+i]
		m0 := ot.LabelToInt(w.Off)
		m1 := ot.LabelToInt(w.On)

		xfer, err := sender.NewTransfer(rand.Reader, m0, m1)
		if err != nil {
			return err
		}
		x0, x1 := xfer.Xs()
		if err := c.SendXs(x0, x1); err != nil {
			return err
		}
		v, err := c.ReceiveOtBlindedIdx()
		if err != nil {
			return err
		}
		mp0, mp1 := xfer.Combine(v)
		if err := c.SendOtEncMessages(mp0, mp1); err != nil {
			return err
		}
	}

	_, err := c.ReceiveEvalResult()
	return err
}

func runReceiver(c *Conn, receiver *ot.Receiver, value, n int) (int, error) {
	rc, err := c.ReceiveGarbledCircuit()
	if err != nil {
		return 0, err
	}
	garblerKeys, err := c.ReceiveGarblerKeys()
	if err != nil {
		return 0, err
	}
	if _, err := c.ReceiveRsaPubkey(); err != nil {
		return 0, err
	}

	receiverKeys := make([]label.Label, n)
	for i := 0; i < n; i++ {
		bit := (value >> i) & 1
		x0, x1, err := c.ReceiveXs()
		if err != nil {
			return 0, err
		}
		xfer, err := receiver.NewTransfer(rand.Reader, bit, x0, x1)
		if err != nil {
			return 0, err
		}
		v := xfer.Blind()
		if err := c.SendOtBlindedIdx(v); err != nil {
			return 0, err
		}
		mp0, mp1, err := c.ReceiveOtEncMessages()
		if err != nil {
			return 0, err
		}
		receiverKeys[i] = ot.IntToLabel(xfer.Derive(mp0, mp1))
	}

	inputs := append(append([]label.Label{}, garblerKeys...), receiverKeys...)
	e := &evaluate.Evaluator{}
	outLabel, err := e.Evaluate(rc.Root, inputs)
	if err != nil {
		return 0, err
	}
	out := outLabel.Bit()
	if err := c.SendEvalResult(out); err != nil {
		return 0, err
	}
	return out, nil
}
