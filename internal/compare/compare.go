//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package compare builds the n-bit "garbler's value strictly exceeds
// receiver's value" comparison circuit this application compares over,
// kept separate from the garbling and evaluation machinery so the
// circuit shape can change independently of the cryptographic core.
package compare

import "github.com/nightfall-labs/millionaires/internal/circuit"

// NewGreaterThan builds the n-bit comparator over inputs a_0..a_{n-1}
// (garbler's bits, indices 0..n-1, little-endian) and b_0..b_{n-1}
// (receiver's bits, indices n..2n-1). The circuit's single output is 1
// iff the garbler's n-bit integer is strictly greater than the
// receiver's.
func NewGreaterThan(n int) *circuit.Circuit {
	if n <= 0 {
		panic("compare: n must be positive")
	}

	a := make([]*circuit.Node, n)
	b := make([]*circuit.Node, n)
	for i := 0; i < n; i++ {
		a[i] = circuit.NewInput(i)
		b[i] = circuit.NewInput(n + i)
	}

	// x[i] is the equality indicator for bit i.
	x := make([]*circuit.Node, n)
	for i := 0; i < n; i++ {
		x[i] = circuit.NewGate(circuit.XNOR, a[i], b[i])
	}

	var out *circuit.Node
	for i := n - 1; i >= 0; i-- {
		cmpHat := circuit.NewGate(circuit.MyGate, a[i], b[i])

		// Fold in equality of every higher bit, lowest index first.
		for j := i + 1; j < n; j++ {
			cmpHat = circuit.NewGate(circuit.AND, cmpHat, x[j])
		}

		if out == nil {
			out = cmpHat
		} else {
			out = circuit.NewGate(circuit.OR, out, cmpHat)
		}
	}

	return circuit.New(out)
}
