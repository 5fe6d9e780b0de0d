//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

package circuit

import "testing"

func TestGateTruthTables(t *testing.T) {
	tests := []struct {
		op   Op
		want [4]int // indexed by 2a+b
	}{
		{AND, [4]int{0, 0, 0, 1}},
		{OR, [4]int{0, 1, 1, 1}},
		{XNOR, [4]int{1, 0, 0, 1}},
		{MyGate, [4]int{0, 0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					got := tt.op.Eval(a, b)
					want := tt.want[2*a+b]
					if got != want {
						t.Fatalf("%s(%d,%d) = %d, want %d", tt.op, a, b, got, want)
					}
				}
			}
		})
	}
}

func TestEvalSingleGate(t *testing.T) {
	c := New(NewGate(AND, NewInput(0), NewInput(1)))
	if c.Inputs != 2 {
		t.Fatalf("Inputs = %d, want 2", c.Inputs)
	}
	if got := c.Eval([]int{1, 1}); got != 1 {
		t.Fatalf("AND(1,1) = %d, want 1", got)
	}
	if got := c.Eval([]int{1, 0}); got != 0 {
		t.Fatalf("AND(1,0) = %d, want 0", got)
	}
}

func TestEvalSingleInput(t *testing.T) {
	c := New(NewInput(0))
	if c.Inputs != 1 {
		t.Fatalf("Inputs = %d, want 1", c.Inputs)
	}
	if got := c.Eval([]int{1}); got != 1 {
		t.Fatalf("Eval = %d, want 1", got)
	}
	if got := c.Eval([]int{0}); got != 0 {
		t.Fatalf("Eval = %d, want 0", got)
	}
}

func TestEvalComposite(t *testing.T) {
	// (a AND b) OR (XNOR(a,c))
	a, b, cIn := NewInput(0), NewInput(1), NewInput(2)
	root := NewGate(OR, NewGate(AND, a, b), NewGate(XNOR, a, cIn))
	circ := New(root)
	if circ.Inputs != 3 {
		t.Fatalf("Inputs = %d, want 3", circ.Inputs)
	}
	// a=1 b=0 c=0: AND=0, XNOR(1,0)=0 -> OR=0
	if got := circ.Eval([]int{1, 0, 0}); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	// a=1 b=0 c=1: AND=0, XNOR(1,1)=1 -> OR=1
	if got := circ.Eval([]int{1, 0, 1}); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
