//
// Copyright (c) 2026 Millionaires Project Authors
//
// All rights reserved.
//

// Package wireproto implements the length-prefixed message protocol
// the garbler and the receiver speak over a TCP connection: a
// garbled-circuit handoff, the garbler's own input labels, an RSA
// public key, and a run of oblivious-transfer rounds for the
// receiver's input labels, followed by the evaluator's result.
package wireproto

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// ErrShortMessage is returned when a received frame's payload does not
// have the length a message variant requires.
var ErrShortMessage = errors.New("wireproto: message too short")

// ErrUnknownVariant is returned when a received frame's type tag does
// not match the message the caller expected.
var ErrUnknownVariant = errors.New("wireproto: unexpected message variant")

// Conn wraps a byte stream with length-prefixed framing and a small
// running send/receive counter, mirroring the session stats a CLI
// session prints on exit.
type Conn struct {
	closer io.Closer
	io     *bufio.ReadWriter
	Stats  IOStats
}

// IOStats tracks bytes sent and received over a Conn.
type IOStats struct {
	Sent  uint64
	Recvd uint64
}

// Sub returns the elementwise difference stats-o, for reporting the
// traffic a single phase of the protocol generated.
func (stats IOStats) Sub(o IOStats) IOStats {
	return IOStats{
		Sent:  stats.Sent - o.Sent,
		Recvd: stats.Recvd - o.Recvd,
	}
}

// Sum returns the total bytes moved in either direction.
func (stats IOStats) Sum() uint64 {
	return stats.Sent + stats.Recvd
}

// NewConn wraps conn with buffered framing. If conn also implements
// io.Closer, Close closes it after flushing.
func NewConn(conn io.ReadWriter) *Conn {
	closer, _ := conn.(io.Closer)

	return &Conn{
		closer: closer,
		io: bufio.NewReadWriter(bufio.NewReader(conn),
			bufio.NewWriter(conn)),
	}
}

// Flush pushes any buffered writes out to the underlying connection.
func (c *Conn) Flush() error {
	return c.io.Flush()
}

// Close flushes and closes the underlying connection, if closable.
func (c *Conn) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// SendUint32 writes a 4-byte big-endian integer.
func (c *Conn) SendUint32(val int) error {
	if err := binary.Write(c.io, binary.BigEndian, uint32(val)); err != nil {
		return err
	}
	c.Stats.Sent += 4
	return nil
}

// SendData writes a length-prefixed byte slice.
func (c *Conn) SendData(val []byte) error {
	if err := c.SendUint32(len(val)); err != nil {
		return err
	}
	if _, err := c.io.Write(val); err != nil {
		return err
	}
	c.Stats.Sent += uint64(len(val))
	return nil
}

// ReceiveUint32 reads a 4-byte big-endian integer.
func (c *Conn) ReceiveUint32() (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(c.io, buf[:]); err != nil {
		return 0, err
	}
	c.Stats.Recvd += 4
	return int(binary.BigEndian.Uint32(buf[:])), nil
}

// ReceiveData reads a length-prefixed byte slice.
func (c *Conn) ReceiveData() ([]byte, error) {
	n, err := c.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	result := make([]byte, n)
	if _, err := io.ReadFull(c.io, result); err != nil {
		return nil, err
	}
	c.Stats.Recvd += uint64(n)
	return result, nil
}
