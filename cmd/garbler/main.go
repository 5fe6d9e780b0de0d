//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Command garbler runs the garbler side of Yao's Millionaires'
// Problem: it garbles a greater-than circuit over its own and the
// peer's net worth, listens for one connection, and hands over
// its own wire labels directly while acting as the RSA-OT sender
// for the peer's labels.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/markkurossi/text/superscript"

	"github.com/nightfall-labs/millionaires/internal/circuit"
	"github.com/nightfall-labs/millionaires/internal/compare"
	"github.com/nightfall-labs/millionaires/internal/env"
	"github.com/nightfall-labs/millionaires/internal/garble"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/ot"
	"github.com/nightfall-labs/millionaires/internal/rsautil"
	"github.com/nightfall-labs/millionaires/internal/wireproto"
)

// bitWidth is the number of bits each party's net worth is compared
// over; the circuit has 2*bitWidth inputs.
const bitWidth = 10

func main() {
	rsaBits := flag.Int("rsa-bits", env.DefaultRSABits, "RSA modulus size in bits")
	verbose := flag.Bool("v", false, "verbose protocol logging")
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: garbler [flags] <ip> <port>\n")
		os.Exit(1)
	}
	ip, port := flag.Arg(0), flag.Arg(1)

	netWorth, err := readNetWorth(os.Stdin)
	if err != nil {
		log.Fatalf("garbler: %s", err)
	}
	if netWorth < 0 || netWorth >= 1<<bitWidth {
		log.Fatalf("garbler: net worth must fit in %d bits", bitWidth)
	}

	cfg := &env.Config{RSABits: *rsaBits}

	if err := run(cfg, ip, port, netWorth, *verbose); err != nil {
		log.Fatalf("garbler: %s", err)
	}
}

// readNetWorth reads and parses the net-worth prompt before any
// network activity, so a malformed value fails before a connection is
// ever opened.
func readNetWorth(r *os.File) (int, error) {
	fmt.Print("How much $ do you have? (in millions): ")
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading net worth: %w", err)
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func run(cfg *env.Config, ip, port string, netWorth int, verbose bool) error {
	circ := compare.NewGreaterThan(bitWidth)
	if verbose {
		circuit.PrintStats(os.Stdout, "greater-than", circ)
	}

	g, err := garble.Garble(cfg.GetRandom(), circ)
	if err != nil {
		return fmt.Errorf("garbling circuit: %w", err)
	}

	kp, err := rsautil.Generate(cfg.GetRandom(), cfg.GetRSABits())
	if err != nil {
		return fmt.Errorf("generating RSA keypair: %w", err)
	}
	log.Printf("Garbler%s: keypair generated (%d bits)", superscript.Itoa(0), cfg.GetRSABits())

	addr := net.JoinHostPort(ip, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	defer ln.Close()
	log.Printf("Garbler%s: listening on %s", superscript.Itoa(0), addr)

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accepting connection: %w", err)
	}
	defer conn.Close()
	log.Printf("Garbler%s: connection from %s", superscript.Itoa(0), conn.RemoteAddr())

	c := wireproto.NewConn(conn)
	defer c.Close()

	richer, err := serve(cfg, c, g, kp, netWorth)
	if err != nil {
		return err
	}

	if richer {
		fmt.Println("The garbler is richer!")
	} else {
		fmt.Println("The receiver is richer!")
	}
	log.Printf("Garbler%s: session done, %d bytes sent / %d bytes received",
		superscript.Itoa(0), c.Stats.Sent, c.Stats.Recvd)
	return nil
}

// serve runs the garbler's half of the protocol over an already
// accepted connection and reports whether the garbler turned out to
// be the richer party.
func serve(cfg *env.Config, c *wireproto.Conn, g *garble.Circuit, kp *rsautil.Keypair, netWorth int) (bool, error) {
	if err := c.SendGarbledCircuit(g.ReceiverView()); err != nil {
		return false, fmt.Errorf("sending garbled circuit: %w", err)
	}

	ownKeys := make([]label.Label, bitWidth)
	for i := 0; i < bitWidth; i++ {
		bit := (netWorth >> i) & 1
		ownKeys[i] = g.Inputs[i].Select(bit)
	}
	if err := c.SendGarblerKeys(ownKeys); err != nil {
		return false, fmt.Errorf("sending own input keys: %w", err)
	}

	sender := ot.NewSender(kp)
	if err := c.SendRsaPubkey(sender.PublicKey()); err != nil {
		return false, fmt.Errorf("sending RSA public key: %w", err)
	}

	for i := 0; i < bitWidth; i++ {
		w := g.Inputs[bitWidth+i]
		if err := otRound(cfg, c, sender, w); err != nil {
			return false, fmt.Errorf("OT round %d: %w", i, err)
		}
	}

	result, err := c.ReceiveEvalResult()
	if err != nil {
		return false, fmt.Errorf("receiving result: %w", err)
	}
	return result != 0, nil
}

func otRound(cfg *env.Config, c *wireproto.Conn, sender *ot.Sender, w label.Wire) error {
	m0 := ot.LabelToInt(w.Off)
	m1 := ot.LabelToInt(w.On)

	xfer, err := sender.NewTransfer(cfg.GetRandom(), m0, m1)
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
	return c.SendOtEncMessages(mp0, mp1)
}
