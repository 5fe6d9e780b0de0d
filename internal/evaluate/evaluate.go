//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package evaluate implements the garbled evaluator: given one label
// per input wire, it recovers the single label the garbler's circuit
// resolves to, without ever learning an intermediate wire's other
// value.
package evaluate

import (
	"bytes"
	"errors"

	"github.com/nightfall-labs/millionaires/internal/garble"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/streamcipher"
)

// ErrNoMatchingTag is returned by a Strict evaluator when none of a
// gate's four ciphertexts decrypts to a value ending in the 32-byte
// integrity tag. Under correct execution this has probability 2^-256
// per gate; the default (non-strict) evaluator instead falls back to
// the c_11 decryption rather than failing the session.
var ErrNoMatchingTag = errors.New("evaluate: no ciphertext carried a valid tag")

// Evaluator walks a receiver-view garbled circuit and resolves the
// labels each gate settles on, given one label per circuit input.
type Evaluator struct {
	// Strict, when true, makes gate evaluation fail with
	// ErrNoMatchingTag instead of silently falling back to the c_11
	// decryption when no ciphertext's tag matches.
	Strict bool
}

// Evaluate computes the circuit's output label given one label per
// input wire, indexed by input id.
func (e *Evaluator) Evaluate(root *garble.GarbledNode, inputs []label.Label) (label.Label, error) {
	return e.evalNode(root, inputs)
}

func (e *Evaluator) evalNode(n *garble.GarbledNode, inputs []label.Label) (label.Label, error) {
	if n.Input != nil {
		return inputs[*n.Input], nil
	}

	left, err := e.evalNode(n.Gate.Left, inputs)
	if err != nil {
		return label.Label{}, err
	}
	right, err := e.evalNode(n.Gate.Right, inputs)
	if err != nil {
		return label.Label{}, err
	}

	return e.evalGate(n.Gate, left, right)
}

func (e *Evaluator) evalGate(g *garble.GarbledGate, left, right label.Label) (label.Label, error) {
	leftCipher, err := streamcipher.New(left.Bytes())
	if err != nil {
		return label.Label{}, err
	}
	rightCipher, err := streamcipher.New(right.Bytes())
	if err != nil {
		return label.Label{}, err
	}

	var fallback label.Label
	for i, c := range g.C {
		inner := rightCipher.Decrypt(c, 0)
		plain := leftCipher.Decrypt(inner, 0)
		if len(plain) != 2*label.Size {
			return label.Label{}, errors.New("evaluate: malformed gate ciphertext length")
		}
		out := label.FromBytes(plain[:label.Size])
		gotTag := plain[label.Size:]
		if bytes.Equal(gotTag, make([]byte, label.Size)) {
			return out, nil
		}
		if i == 3 {
			fallback = out
		}
	}

	if e.Strict {
		return label.Label{}, ErrNoMatchingTag
	}
	return fallback, nil
}
