// Package bitcursor reads a byte-oriented input source at bit granularity.
// Bits are consumed left to right, most-significant bit first, and multi-byte
// values are assembled big-endian (most significant byte first). A Cursor is
// single-stream state: to read several independent streams, create one Cursor
// per stream.
package bitcursor

import (
	"bufio"
	"errors"
	"io"

	"github.com/carbocation/pfx"
)

var (
	// ErrExhausted is returned when a read is attempted, or cannot be
	// completed, past the last available bit. Reads never return partial or
	// zero-padded values.
	ErrExhausted = errors.New("bitcursor: read past end of input")

	// ErrWidth is returned when a requested bit width falls outside the
	// supported range for the read in question.
	ErrWidth = errors.New("bitcursor: bit width out of range")
)

// Cursor reads bits from an underlying byte source. It holds a one-byte
// lookahead buffer plus a count of that byte's bits not yet delivered, and
// refills the buffer exactly when the count reaches zero.
type Cursor struct {
	src    io.ByteReader
	closer io.Closer

	buf  byte
	bits uint8
	end  bool
}

// New returns a Cursor over r, primed with the first byte of the stream so
// that IsAtEnd answers without a read. Sources that do not implement
// io.ByteReader are wrapped in a bufio.Reader. If r implements io.Closer,
// Close releases it.
func New(r io.Reader) *Cursor {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	c := &Cursor{src: br}
	if closer, ok := r.(io.Closer); ok {
		c.closer = closer
	}
	c.fill()

	return c
}

// fill fetches the next byte from the source. Any failure to produce a byte,
// io.EOF included, is collapsed into the end-of-stream state; it will surface
// as ErrExhausted on the next read.
func (c *Cursor) fill() {
	b, err := c.src.ReadByte()
	if err != nil {
		c.end = true
		c.bits = 0
		return
	}

	c.buf = b
	c.bits = 8
}

// IsAtEnd reports whether every bit of the stream has been consumed. It has
// no side effects.
func (c *Cursor) IsAtEnd() bool {
	return c.end
}

// ReadBit consumes and returns the next bit of the stream, most-significant
// bit of the current byte first.
func (c *Cursor) ReadBit() (bool, error) {
	if c.end {
		return false, ErrExhausted
	}

	c.bits--
	bit := (c.buf>>c.bits)&1 == 1
	if c.bits == 0 {
		c.fill()
	}

	return bit, nil
}

// ReadByte consumes and returns the next 8 bits of the stream, regardless of
// byte alignment. When the cursor straddles a byte boundary, the remaining
// bits of the current byte are combined with the leading bits of the next
// one; if the stream ends before the byte can be completed, the read fails
// with ErrExhausted rather than returning a partial value.
func (c *Cursor) ReadByte() (byte, error) {
	if c.end {
		return 0, ErrExhausted
	}

	// Aligned byte boundary: hand over the whole buffered byte.
	if c.bits == 8 {
		b := c.buf
		c.fill()
		return b, nil
	}

	// Combine the last n bits of the current byte with the first 8-n bits of
	// the next one. The next byte keeps its low n bits unconsumed, so the bit
	// count is restored to n after the refill.
	n := c.bits
	x := c.buf << (8 - n)
	c.fill()
	if c.end {
		return 0, ErrExhausted
	}
	c.bits = n
	x |= c.buf >> n

	return x, nil
}

// Close releases the underlying source, if it is closeable. Reading from the
// cursor after Close is a programming error.
func (c *Cursor) Close() error {
	if c.closer == nil {
		return nil
	}

	closer := c.closer
	c.closer = nil
	if err := closer.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
