//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

package wireproto

import (
	"math/big"

	"github.com/nightfall-labs/millionaires/internal/garble"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/rsautil"
)

// Message type tags. Every Send method writes its tag first so a
// Receive method can confirm it got the variant it expected.
const (
	MsgGarbledCircuit = iota
	MsgGarblerKeys
	MsgRsaPubkey
	MsgXs
	MsgOtBlindedIdx
	MsgOtEncMessages
	MsgEvalResult
)

// Node kind tags used inside a garbled-circuit frame.
const (
	nodeInput = iota
	nodeGate
)

// SendGarbledCircuit ships the receiver's view of a garbled circuit:
// the gate ciphertext tree and the input count, with no label
// material attached.
func (c *Conn) SendGarbledCircuit(rc *garble.ReceiverCircuit) error {
	if err := c.SendUint32(MsgGarbledCircuit); err != nil {
		return err
	}
	if err := c.SendUint32(rc.N); err != nil {
		return err
	}
	if err := c.sendNode(rc.Root); err != nil {
		return err
	}
	return c.Flush()
}

func (c *Conn) sendNode(n *garble.GarbledNode) error {
	if n.Input != nil {
		if err := c.SendUint32(nodeInput); err != nil {
			return err
		}
		return c.SendUint32(*n.Input)
	}

	if err := c.SendUint32(nodeGate); err != nil {
		return err
	}
	for _, ct := range n.Gate.C {
		if err := c.SendData(ct); err != nil {
			return err
		}
	}
	if err := c.sendNode(n.Gate.Left); err != nil {
		return err
	}
	return c.sendNode(n.Gate.Right)
}

// ReceiveGarbledCircuit reads back what SendGarbledCircuit sent.
func (c *Conn) ReceiveGarbledCircuit() (*garble.ReceiverCircuit, error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if tag != MsgGarbledCircuit {
		return nil, ErrUnknownVariant
	}
	n, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	root, err := c.receiveNode()
	if err != nil {
		return nil, err
	}
	return &garble.ReceiverCircuit{Root: root, N: n}, nil
}

func (c *Conn) receiveNode() (*garble.GarbledNode, error) {
	kind, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	switch kind {
	case nodeInput:
		idx, err := c.ReceiveUint32()
		if err != nil {
			return nil, err
		}
		return &garble.GarbledNode{Input: &idx}, nil
	case nodeGate:
		var ct [4][]byte
		for i := range ct {
			ct[i], err = c.ReceiveData()
			if err != nil {
				return nil, err
			}
		}
		left, err := c.receiveNode()
		if err != nil {
			return nil, err
		}
		right, err := c.receiveNode()
		if err != nil {
			return nil, err
		}
		return &garble.GarbledNode{Gate: &garble.GarbledGate{C: ct, Left: left, Right: right}}, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// SendGarblerKeys ships the garbler's own input labels, one per
// garbler input wire, each already selected for the garbler's actual
// bit. The garbler's own inputs need no oblivious transfer: it knows
// its bits, so handing over the matching labels directly leaks
// nothing the evaluator doesn't already get by evaluating the gate.
func (c *Conn) SendGarblerKeys(keys []label.Label) error {
	if err := c.SendUint32(MsgGarblerKeys); err != nil {
		return err
	}
	if err := c.SendUint32(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := c.SendData(k.Bytes()); err != nil {
			return err
		}
	}
	return c.Flush()
}

// ReceiveGarblerKeys reads back what SendGarblerKeys sent.
func (c *Conn) ReceiveGarblerKeys() ([]label.Label, error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if tag != MsgGarblerKeys {
		return nil, ErrUnknownVariant
	}
	n, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	keys := make([]label.Label, n)
	for i := range keys {
		b, err := c.ReceiveData()
		if err != nil {
			return nil, err
		}
		if len(b) != label.Size {
			return nil, ErrShortMessage
		}
		keys[i] = label.FromBytes(b)
	}
	return keys, nil
}

// SendRsaPubkey ships the OT sender's RSA public key.
func (c *Conn) SendRsaPubkey(pub rsautil.PublicKey) error {
	if err := c.SendUint32(MsgRsaPubkey); err != nil {
		return err
	}
	if err := c.SendData(pub.E.Bytes()); err != nil {
		return err
	}
	if err := c.SendData(pub.N.Bytes()); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveRsaPubkey reads back what SendRsaPubkey sent.
func (c *Conn) ReceiveRsaPubkey() (rsautil.PublicKey, error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return rsautil.PublicKey{}, err
	}
	if tag != MsgRsaPubkey {
		return rsautil.PublicKey{}, ErrUnknownVariant
	}
	eb, err := c.ReceiveData()
	if err != nil {
		return rsautil.PublicKey{}, err
	}
	nb, err := c.ReceiveData()
	if err != nil {
		return rsautil.PublicKey{}, err
	}
	return rsautil.PublicKey{E: new(big.Int).SetBytes(eb), N: new(big.Int).SetBytes(nb)}, nil
}

// SendXs ships the OT sender's (x0, x1) blinding nonces for one
// transfer instance.
func (c *Conn) SendXs(x0, x1 *big.Int) error {
	if err := c.SendUint32(MsgXs); err != nil {
		return err
	}
	if err := c.SendData(x0.Bytes()); err != nil {
		return err
	}
	if err := c.SendData(x1.Bytes()); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveXs reads back what SendXs sent.
func (c *Conn) ReceiveXs() (x0, x1 *big.Int, err error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return nil, nil, err
	}
	if tag != MsgXs {
		return nil, nil, ErrUnknownVariant
	}
	x0b, err := c.ReceiveData()
	if err != nil {
		return nil, nil, err
	}
	x1b, err := c.ReceiveData()
	if err != nil {
		return nil, nil, err
	}
	return new(big.Int).SetBytes(x0b), new(big.Int).SetBytes(x1b), nil
}

// SendOtBlindedIdx ships the OT receiver's blinded choice v.
func (c *Conn) SendOtBlindedIdx(v *big.Int) error {
	if err := c.SendUint32(MsgOtBlindedIdx); err != nil {
		return err
	}
	if err := c.SendData(v.Bytes()); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveOtBlindedIdx reads back what SendOtBlindedIdx sent.
func (c *Conn) ReceiveOtBlindedIdx() (*big.Int, error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if tag != MsgOtBlindedIdx {
		return nil, ErrUnknownVariant
	}
	vb, err := c.ReceiveData()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(vb), nil
}

// SendOtEncMessages ships the OT sender's combined reply (m0', m1').
func (c *Conn) SendOtEncMessages(m0, m1 *big.Int) error {
	if err := c.SendUint32(MsgOtEncMessages); err != nil {
		return err
	}
	if err := c.SendData(m0.Bytes()); err != nil {
		return err
	}
	if err := c.SendData(m1.Bytes()); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveOtEncMessages reads back what SendOtEncMessages sent.
func (c *Conn) ReceiveOtEncMessages() (m0, m1 *big.Int, err error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return nil, nil, err
	}
	if tag != MsgOtEncMessages {
		return nil, nil, ErrUnknownVariant
	}
	m0b, err := c.ReceiveData()
	if err != nil {
		return nil, nil, err
	}
	m1b, err := c.ReceiveData()
	if err != nil {
		return nil, nil, err
	}
	return new(big.Int).SetBytes(m0b), new(big.Int).SetBytes(m1b), nil
}

// SendEvalResult ships the evaluator's final comparison bit back to
// the garbler.
func (c *Conn) SendEvalResult(bit int) error {
	if err := c.SendUint32(MsgEvalResult); err != nil {
		return err
	}
	if err := c.SendUint32(bit); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveEvalResult reads back what SendEvalResult sent.
func (c *Conn) ReceiveEvalResult() (int, error) {
	tag, err := c.ReceiveUint32()
	if err != nil {
		return 0, err
	}
	if tag != MsgEvalResult {
		return 0, ErrUnknownVariant
	}
	return c.ReceiveUint32()
}
