package collection

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ErrDecompress marks malformed compressed collection entries. It is fatal
// for the affected archive only.
var ErrDecompress = errors.New("collection decompression failed")

// Decode turns the selected entry's raw bytes into a database image. The
// legacy variant passes through untouched; compressed variants are fully
// zstd-decoded before the database engine sees them. maxBytes bounds the
// decoded size; zero or negative means no bound.
func Decode(variant Variant, raw []byte, maxBytes int64) ([]byte, error) {
	if !variant.Compressed() {
		return raw, nil
	}

	reader, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecompress, variant, err)
	}
	defer reader.Close()

	src := io.Reader(reader)
	if maxBytes > 0 {
		src = io.LimitReader(reader, maxBytes+1)
	}
	decoded, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecompress, variant, err)
	}
	if maxBytes > 0 && int64(len(decoded)) > maxBytes {
		return nil, fmt.Errorf("%w: %s: decoded size exceeds %d bytes", ErrDecompress, variant, maxBytes)
	}
	return decoded, nil
}
