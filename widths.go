package bitcursor

import "fmt"

// ReadBits consumes the next width bits, 1 <= width <= 32, and returns them
// as the low bits of an unsigned integer, most-significant bit first. Widths
// 8 and 32 take the dedicated byte and word paths; the result is
// bit-identical either way.
func (c *Cursor) ReadBits(width int) (uint32, error) {
	if width < 1 || width > 32 {
		return 0, fmt.Errorf("%w: %d is not in [1,32]", ErrWidth, width)
	}

	switch width {
	case 8:
		b, err := c.ReadByte()
		return uint32(b), err
	case 32:
		return c.ReadUint32()
	}

	var x uint32
	for i := 0; i < width; i++ {
		bit, err := c.ReadBit()
		if err != nil {
			return 0, err
		}
		x <<= 1
		if bit {
			x |= 1
		}
	}

	return x, nil
}

// ReadChar consumes the next width bits, 1 <= width <= 16, and returns them
// as a character-sized unsigned integer. Width 8 is the common case and
// aliases ReadByte.
func (c *Cursor) ReadChar(width int) (uint16, error) {
	if width < 1 || width > 16 {
		return 0, fmt.Errorf("%w: %d is not in [1,16]", ErrWidth, width)
	}

	if width == 8 {
		b, err := c.ReadByte()
		return uint16(b), err
	}

	var x uint16
	for i := 0; i < width; i++ {
		bit, err := c.ReadBit()
		if err != nil {
			return 0, err
		}
		x <<= 1
		if bit {
			x |= 1
		}
	}

	return x, nil
}
