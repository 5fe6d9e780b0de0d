//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

package circuit

import (
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
)

// PrintStats renders a one-row gate-count table for the circuit,
// breaking gate totals down by operation the way a circuit's size is
// usually reported.
func PrintStats(w io.Writer, name string, c *Circuit) {
	s := CollectStats(c)

	tab := tabulate.New(tabulate.Github)
	tab.Header("Circuit")
	tab.Header("Inputs").SetAlign(tabulate.MR)
	tab.Header("AND").SetAlign(tabulate.MR)
	tab.Header("OR").SetAlign(tabulate.MR)
	tab.Header("XNOR").SetAlign(tabulate.MR)
	tab.Header("MY_GATE").SetAlign(tabulate.MR)
	tab.Header("Gates").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column(name)
	row.Column(strconv.Itoa(s.Inputs))
	row.Column(strconv.Itoa(s.AND))
	row.Column(strconv.Itoa(s.OR))
	row.Column(strconv.Itoa(s.XNOR))
	row.Column(strconv.Itoa(s.MyGate))
	row.Column(strconv.Itoa(s.Gates))

	tab.Print(w)
}
