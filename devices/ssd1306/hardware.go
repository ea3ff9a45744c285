package ssd1306

import (
	"fmt"
	"io"
	"sync"

	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/gpio"
)

// I2C control bytes. Every transfer starts with one.
const (
	controlCommand = 0x00
	controlData    = 0x40
)

type hardware struct {
	txLimit int

	mut sync.Mutex
	// c is a periph conn.Conn, usually an *i2c.Dev.
	c conn.Conn

	// rst is the optional reset pin. Most I2C modules do not expose one.
	rst gpio.PinOut
}

func (h *hardware) DataWriter() io.Writer {
	return &batchedWriter{&dataWriter{h}, h.txLimit}
}

func (h *hardware) CommandWriter() io.Writer {
	return &commandWriter{h}
}

type dataWriter struct {
	*hardware
}

func (w *dataWriter) Write(p []byte) (int, error) {
	w.mut.Lock()
	defer w.mut.Unlock()
	if len(p) == 0 {
		return 0, nil
	}
	if w.txLimit <= 0 {
		return 0, io.ErrShortWrite
	}
	n := len(p)
	if n > w.txLimit {
		n = w.txLimit
	}
	if err := w.c.Tx(append([]byte{controlData}, p[:n]...), nil); err != nil {
		return 0, fmt.Errorf("sending %d bytes of data: %w", n, err)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

type commandWriter struct {
	*hardware
}

// Write sends p[0] as a command and the rest of p as its arguments, in one
// transfer.
func (w *commandWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.mut.Lock()
	defer w.mut.Unlock()
	if err := w.c.Tx(append([]byte{controlCommand}, p...), nil); err != nil {
		return 0, fmt.Errorf("sending command %s: %w", command(p[0]).String(), err)
	}
	return len(p), nil
}

type batchedWriter struct {
	dst       io.Writer
	batchSize int
}

func (b *batchedWriter) Write(p []byte) (int, error) {
	if b.batchSize <= 0 {
		return 0, io.ErrShortWrite
	}
	var sent int
	for i := 0; i < len(p); i += b.batchSize {
		j := i + b.batchSize
		if j > len(p) {
			j = len(p)
		}
		n, err := b.dst.Write(p[i:j])
		sent += n
		if err != nil {
			return sent, err
		}
	}
	return sent, nil
}
