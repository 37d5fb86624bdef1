package objects

import (
	"bytes"
	"fmt"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/multierr"
)

// Storage reads the raw, still compressed bytes of an object.
type Storage interface {
	ReadObject(location string) ([]byte, error)
	// HasObject reports whether location holds an object. A missing object is
	// not an error.
	HasObject(location string) (bool, error)
}

// Decompressor inflates a compressed loose object.
type Decompressor interface {
	Decompress(compressed []byte) ([]byte, error)
}

// FileStorage reads objects from the local filesystem.
type FileStorage struct{}

func (FileStorage) ReadObject(location string) ([]byte, error) {
	return os.ReadFile(location)
}

func (FileStorage) HasObject(location string) (bool, error) {
	_, err := os.Stat(location)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ZlibDecompressor inflates zlib streams, refusing output larger than MaxSize.
type ZlibDecompressor struct {
	MaxSize int64
}

func (d ZlibDecompressor) Decompress(compressed []byte) (_ []byte, retErr error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to create new reader for decompressed data: %w", err)
	}
	defer func() {
		retErr = multierr.Append(retErr, reader.Close())
	}()

	// One byte past MaxSize tells an oversized stream apart from an exact fit.
	limit := d.MaxSize
	if limit < math.MaxInt64 {
		limit++
	}

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(io.LimitReader(reader, limit)); err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %w", err)
	}
	if int64(buffer.Len()) > d.MaxSize {
		return nil, fmt.Errorf("decompressed data exceeds %d bytes", d.MaxSize)
	}

	return buffer.Bytes(), nil
}
