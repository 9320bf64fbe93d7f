package bitcursor

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zlib"
)

// Compression indicates how (and whether) the underlying byte stream is
// compressed before it reaches the cursor.
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionZLIB
	CompressionZStandard
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "CompressionDisabled"
	case CompressionZLIB:
		return "CompressionZLIB"
	case CompressionZStandard:
		return "CompressionZStandard"

	default:
		return "Illegal selection"
	}
}

// NewCompressed returns a Cursor over r after routing it through the
// decompressor that compression names, so the cursor sees the decompressed
// bytes. CompressionDisabled is equivalent to New.
func NewCompressed(r io.Reader, compression Compression) (*Cursor, error) {
	switch compression {
	case CompressionDisabled:
		return New(r), nil

	case CompressionZLIB:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return New(zr), nil

	case CompressionZStandard:
		zr, err := newZStandardReader(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return New(zr), nil
	}

	return nil, pfx.Err(fmt.Errorf("compression choice %s is not supported", compression))
}
