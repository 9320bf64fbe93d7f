package bitcursor

import "math"

// ReadUint16 consumes the next 16 bits as a big-endian unsigned integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	var x uint16
	for i := 0; i < 2; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint16(b)
	}

	return x, nil
}

// ReadUint32 consumes the next 32 bits as a big-endian unsigned integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	var x uint32
	for i := 0; i < 4; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint32(b)
	}

	return x, nil
}

// ReadUint64 consumes the next 64 bits as a big-endian unsigned integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	var x uint64
	for i := 0; i < 8; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint64(b)
	}

	return x, nil
}

// ReadFloat32 consumes the next 32 bits and reinterprets them as an IEEE-754
// single-precision value. No transformation beyond the bit reinterpretation
// is applied.
func (c *Cursor) ReadFloat32() (float32, error) {
	x, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(x), nil
}

// ReadFloat64 consumes the next 64 bits and reinterprets them as an IEEE-754
// double-precision value.
func (c *Cursor) ReadFloat64() (float64, error) {
	x, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(x), nil
}
