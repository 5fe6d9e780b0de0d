//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Command receiver runs the receiver side of Yao's Millionaires'
// Problem: it dials the garbler, receives the garbled circuit and the
// garbler's own wire labels, runs an RSA-OT round per its own input
// bit to obtain its own labels, evaluates the circuit and reports the
// outcome to the garbler.
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

	"github.com/nightfall-labs/millionaires/internal/env"
	"github.com/nightfall-labs/millionaires/internal/evaluate"
	"github.com/nightfall-labs/millionaires/internal/label"
	"github.com/nightfall-labs/millionaires/internal/ot"
	"github.com/nightfall-labs/millionaires/internal/wireproto"
)

// bitWidth must match the garbler's circuit width.
const bitWidth = 10

func main() {
	strict := flag.Bool("strict", false, "fail instead of falling back on an unmatched gate tag")
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: receiver [flags] <ip> <port>\n")
		os.Exit(1)
	}
	ip, port := flag.Arg(0), flag.Arg(1)

	netWorth, err := readNetWorth(os.Stdin)
	if err != nil {
		log.Fatalf("receiver: %s", err)
	}
	if netWorth < 0 || netWorth >= 1<<bitWidth {
		log.Fatalf("receiver: net worth must fit in %d bits", bitWidth)
	}

	cfg := &env.Config{}

	if err := run(cfg, ip, port, netWorth, *strict); err != nil {
		log.Fatalf("receiver: %s", err)
	}
}

func readNetWorth(r *os.File) (int, error) {
	fmt.Print("How much $ do you have? (in millions): ")
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading net worth: %w", err)
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func run(cfg *env.Config, ip, port string, netWorth int, strict bool) error {
	addr := net.JoinHostPort(ip, port)

	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer nc.Close()
	log.Printf("Receiver%s: connected to %s", superscript.Itoa(1), addr)

	c := wireproto.NewConn(nc)
	defer c.Close()

	richer, err := serve(cfg, c, netWorth, strict)
	if err != nil {
		return err
	}

	if richer {
		fmt.Println("The garbler is richer!")
	} else {
		fmt.Println("The receiver is richer!")
	}
	log.Printf("Receiver%s: session done, %d bytes sent / %d bytes received",
		superscript.Itoa(1), c.Stats.Sent, c.Stats.Recvd)
	return nil
}

// serve runs the receiver's half of the protocol and reports whether
// the garbler turned out to be the richer party.
func serve(cfg *env.Config, c *wireproto.Conn, netWorth int, strict bool) (bool, error) {
	rc, err := c.ReceiveGarbledCircuit()
	if err != nil {
		return false, fmt.Errorf("receiving garbled circuit: %w", err)
	}

	garblerKeys, err := c.ReceiveGarblerKeys()
	if err != nil {
		return false, fmt.Errorf("receiving garbler's input keys: %w", err)
	}

	pub, err := c.ReceiveRsaPubkey()
	if err != nil {
		return false, fmt.Errorf("receiving RSA public key: %w", err)
	}
	receiver := ot.NewReceiver(pub)

	ownKeys := make([]label.Label, bitWidth)
	for i := 0; i < bitWidth; i++ {
		bit := (netWorth >> i) & 1
		l, err := otRound(cfg, c, receiver, bit)
		if err != nil {
			return false, fmt.Errorf("OT round %d: %w", i, err)
		}
		ownKeys[i] = l
	}

	inputs := make([]label.Label, 0, len(garblerKeys)+len(ownKeys))
	inputs = append(inputs, garblerKeys...)
	inputs = append(inputs, ownKeys...)

	e := &evaluate.Evaluator{Strict: strict}
	out, err := e.Evaluate(rc.Root, inputs)
	if err != nil {
		return false, fmt.Errorf("evaluating circuit: %w", err)
	}
	result := out.Bit()

	if err := c.SendEvalResult(result); err != nil {
		return false, fmt.Errorf("sending result: %w", err)
	}
	return result != 0, nil
}

func otRound(cfg *env.Config, c *wireproto.Conn, receiver *ot.Receiver, bit int) (label.Label, error) {
	x0, x1, err := c.ReceiveXs()
	if err != nil {
		return label.Label{}, err
	}

	xfer, err := receiver.NewTransfer(cfg.GetRandom(), bit, x0, x1)
	if err != nil {
		return label.Label{}, err
	}

	if err := c.SendOtBlindedIdx(xfer.Blind()); err != nil {
		return label.Label{}, err
	}

	mp0, mp1, err := c.ReceiveOtEncMessages()
	if err != nil {
		return label.Label{}, err
	}

	return ot.IntToLabel(xfer.Derive(mp0, mp1)), nil
}
