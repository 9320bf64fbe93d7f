package bitcursor

import "strings"

// ReadString consumes the remainder of the stream as 8-bit units and returns
// them as a string. Calling it with nothing left to read fails with
// ErrExhausted; so does a stream whose remaining length is not a whole number
// of 8-bit units, since the final unit cannot be completed.
func (c *Cursor) ReadString() (string, error) {
	if c.end {
		return "", ErrExhausted
	}

	var sb strings.Builder
	for !c.IsAtEnd() {
		b, err := c.ReadByte()
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}

	return sb.String(), nil
}
