//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package garble implements the garbling engine: turning a plaintext
// circuit into a garbled circuit whose gate truth tables are replaced
// by four ciphertexts apiece, keyed on wire labels.
package garble

import (
	"io"

	"github.com/nightfall-labs/millionaires/internal/circuit"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/streamcipher"
)

// tag is the 32-byte integrity suffix appended to every gate's output
// label before encryption so the evaluator can recognize which of the
// four ciphertexts decrypted correctly.
var tag [label.Size]byte

// GarbledGate holds a gate's four ciphertexts, ordered by the pair
// (a, b) read as the index 2a+b, plus pointers to its two children.
type GarbledGate struct {
	C           [4][]byte
	Left, Right *GarbledNode
}

// GarbledNode is either an Input leaf or a Gate; exactly one is set.
// It carries no label material, so it is safe to ship to the evaluator
// as-is.
type GarbledNode struct {
	Input *int
	Gate  *GarbledGate
}

// Circuit is the garbler's view of a garbled circuit: the ciphertext
// tree plus the input-index -> wire table the garbler alone knows.
type Circuit struct {
	Root   *GarbledNode
	Inputs []label.Wire
	N      int
}

// ReceiverCircuit is the form shipped to the evaluator: ciphertexts
// only, no labels.
type ReceiverCircuit struct {
	Root *GarbledNode
	N    int
}

// ReceiverView strips the garbler's private wire table, returning the
// shippable form. The underlying node tree is shared since it holds no
// label material.
func (c *Circuit) ReceiverView() *ReceiverCircuit {
	return &ReceiverCircuit{Root: c.Root, N: c.N}
}

// Garble garbles c, drawing fresh randomness from rnd for every wire
// label.
func Garble(rnd io.Reader, c *circuit.Circuit) (*Circuit, error) {
	inputs := make([]label.Wire, c.Inputs)
	for i := range inputs {
		w, err := label.RandomWire(rnd)
		if err != nil {
			return nil, err
		}
		inputs[i] = w
	}

	root, _, err := garbleNode(rnd, c.Root, inputs, true)
	if err != nil {
		return nil, err
	}

	return &Circuit{Root: root, Inputs: inputs, N: c.Inputs}, nil
}

// garbleNode garbles n, reusing input wires from inputs for Input
// leaves. It returns the garbled node together with the output wire
// carrying its value, so the caller can key its own gate's encryption
// on it.
func garbleNode(rnd io.Reader, n *circuit.Node, inputs []label.Wire, isRoot bool) (
	*GarbledNode, label.Wire, error) {

	if n.Input != nil {
		idx := n.Input.Index
		return &GarbledNode{Input: &idx}, inputs[idx], nil
	}

	leftNode, leftWire, err := garbleNode(rnd, n.Gate.Left, inputs, false)
	if err != nil {
		return nil, label.Wire{}, err
	}
	rightNode, rightWire, err := garbleNode(rnd, n.Gate.Right, inputs, false)
	if err != nil {
		return nil, label.Wire{}, err
	}

	var outWire label.Wire
	if isRoot {
		outWire = label.OutputWire
	} else {
		outWire, err = label.RandomWire(rnd)
		if err != nil {
			return nil, label.Wire{}, err
		}
	}

	table, err := garbleGate(n.Gate.Op, leftWire, rightWire, outWire)
	if err != nil {
		return nil, label.Wire{}, err
	}

	gn := &GarbledNode{Gate: &GarbledGate{C: table, Left: leftNode, Right: rightNode}}
	return gn, outWire, nil
}

// garbleGate produces the four ciphertexts for a single gate:
//
//	c_ab = E(L_a, E(R_b, out_ab || tag))
//
// with the inner layer keyed on the right child's label and the outer
// layer on the left child's. Both layers use the same XOR-keystream
// construction, so the evaluator may peel them off in either order.
func garbleGate(op circuit.Op, left, right, out label.Wire) ([4][]byte, error) {
	var table [4][]byte

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			bit := op.Eval(a, b)
			outLabel := out.Select(bit)

			plaintext := make([]byte, 0, label.Size*2)
			plaintext = append(plaintext, outLabel.Bytes()...)
			plaintext = append(plaintext, tag[:]...)

			rightCipher, err := streamcipher.New(right.Select(b).Bytes())
			if err != nil {
				return table, err
			}
			inner := rightCipher.Encrypt(plaintext, 0)

			leftCipher, err := streamcipher.New(left.Select(a).Bytes())
			if err != nil {
				return table, err
			}
			outer := leftCipher.Encrypt(inner, 0)

			table[2*a+b] = outer
		}
	}

	return table, nil
}
