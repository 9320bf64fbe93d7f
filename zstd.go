package bitcursor

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZStandardReader wraps r in a Zstandard decompressor, surfaced as an
// io.ReadCloser so that closing the cursor releases the decoder.
func newZStandardReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}
