package filters

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// DecompressionError reports a stream that is flagged compressed but does not
// inflate cleanly. Offset is the input byte offset of the corruption when the
// inflater reports one, or -1.
type DecompressionError struct {
	Offset int64
	Err    error
}

func (e *DecompressionError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("decompression failed at input offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decompression failed: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// ErrOutputTooLarge is returned when inflated data exceeds the caller's limit.
var ErrOutputTooLarge = errors.New("decompressed stream exceeds size limit")

// Decompress inflates a stream payload when compressed is true and returns raw
// unchanged otherwise. HWP streams are raw deflate; zlib-wrapped input is also
// accepted. An empty input always yields an empty output.
func Decompress(raw []byte, compressed bool) ([]byte, error) {
	return DecompressLimit(raw, compressed, 0)
}

// DecompressLimit is Decompress with an upper bound on the inflated size.
// A limit of zero or less means unbounded.
func DecompressLimit(raw []byte, compressed bool, limit int64) ([]byte, error) {
	if !compressed {
		return raw, nil
	}
	if len(raw) == 0 {
		return []byte{}, nil
	}

	if hasZlibHeader(raw) {
		out, err := zlibDecompress(raw, limit)
		if err == nil || errors.Is(err, ErrOutputTooLarge) {
			return out, wrapDecompression(err)
		}
		// A raw deflate block can start with bytes that pass the zlib check.
	}

	out, err := inflate(raw, limit)
	if err != nil {
		return nil, wrapDecompression(err)
	}
	return out, nil
}

// Compress deflates data into a raw deflate stream, the encoding HWP uses
// for compressed storage.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hasZlibHeader reports whether data begins with a valid RFC 1950 header
// (deflate method, window <= 32K, check bits consistent).
func hasZlibHeader(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0F != 8 || cmf>>4 > 7 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// inflate decompresses raw deflate data.
func inflate(data []byte, limit int64) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()
	return drain(reader, limit)
}

// zlibDecompress decompresses zlib-compressed data using the standard library.
func zlibDecompress(data []byte, limit int64) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()
	return drain(reader, limit)
}

func drain(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	if limit > 0 {
		n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
		if err != nil {
			return nil, err
		}
		if n > limit {
			return nil, ErrOutputTooLarge
		}
		return buf.Bytes(), nil
	}
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func wrapDecompression(err error) error {
	if err == nil {
		return nil
	}
	var corrupt flate.CorruptInputError
	if errors.As(err, &corrupt) {
		return &DecompressionError{Offset: int64(corrupt), Err: err}
	}
	return &DecompressionError{Offset: -1, Err: err}
}
