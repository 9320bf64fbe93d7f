package bitcursor

import (
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// Open attempts to read the file located at path at bit granularity. If
// successful, this returns a new Cursor whose Close releases the file.
// Otherwise, it returns an error.
func Open(path string) (*Cursor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return New(file), nil
}

// OpenCompressed is Open for files whose contents are compressed with one of
// the supported schemes. Close releases the decompressor and the file.
func OpenCompressed(path string, compression Compression) (*Cursor, error) {
	if compression == CompressionDisabled {
		return Open(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	c, err := NewCompressed(file, compression)
	if err != nil {
		file.Close()
		return nil, pfx.Err(err)
	}
	c.closer = compositeCloser{c.closer, file}

	return c, nil
}

// compositeCloser closes the decompressor ahead of the file backing it.
type compositeCloser []io.Closer

func (cc compositeCloser) Close() error {
	var firstErr error
	for _, closer := range cc {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
