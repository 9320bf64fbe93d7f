package bitcursor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/bitcursor"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const payload = "the quick brown fox jumps over the lazy dog"

func TestZLIBSource(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(payload))
	req.NoError(err)
	req.NoError(zw.Close())

	c, err := bitcursor.NewCompressed(&buf, bitcursor.CompressionZLIB)
	req.NoError(err)

	s, err := c.ReadString()
	req.NoError(err)
	req.Equal(payload, s)
	req.True(c.IsAtEnd())
	req.NoError(c.Close())
}

func TestZStandardSource(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	req.NoError(err)
	_, err = zw.Write([]byte(payload))
	req.NoError(err)
	req.NoError(zw.Close())

	c, err := bitcursor.NewCompressed(&buf, bitcursor.CompressionZStandard)
	req.NoError(err)

	s, err := c.ReadString()
	req.NoError(err)
	req.Equal(payload, s)
	req.True(c.IsAtEnd())
	req.NoError(c.Close())
}

func TestDisabledSource(t *testing.T) {
	req := require.New(t)

	c, err := bitcursor.NewCompressed(bytes.NewReader([]byte{0xA5}), bitcursor.CompressionDisabled)
	req.NoError(err)

	val, err := c.ReadBits(8)
	req.NoError(err)
	req.Equal(uint32(0xA5), val)
}

func TestUnknownCompression(t *testing.T) {
	req := require.New(t)

	_, err := bitcursor.NewCompressed(bytes.NewReader(nil), bitcursor.Compression(99))
	req.Error(err)
}

func TestOpen(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "data.bin")
	req.NoError(os.WriteFile(path, []byte{0x12, 0x34}, 0o644))

	c, err := bitcursor.Open(path)
	req.NoError(err)

	val, err := c.ReadUint16()
	req.NoError(err)
	req.Equal(uint16(0x1234), val)
	req.True(c.IsAtEnd())

	req.NoError(c.Close())
	// The file handle is released on the first Close.
	req.NoError(c.Close())
}

func TestOpenCompressed(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	req.NoError(err)
	_, err = zw.Write([]byte(payload))
	req.NoError(err)
	req.NoError(zw.Close())

	path := filepath.Join(t.TempDir(), "data.zst")
	req.NoError(os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := bitcursor.OpenCompressed(path, bitcursor.CompressionZStandard)
	req.NoError(err)

	s, err := c.ReadString()
	req.NoError(err)
	req.Equal(payload, s)
	req.NoError(c.Close())
}
