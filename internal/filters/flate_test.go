package filters

import (
	"bytes"
	"compress/zlib"
	"errors"
	"math/rand"
	"testing"
)

// zlibCompress compresses data for testing
func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

func mustCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	out, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	return out
}

func noise(n int) []byte {
	rng := rand.New(rand.NewSource(7))
	out := make([]byte, n)
	rng.Read(out)
	return out
}

func truncated(b []byte) []byte {
	return b[:len(b)/2]
}

// TestDecompressRawDeflate tests basic raw deflate decompression
func TestDecompressRawDeflate(t *testing.T) {
	original := []byte("Hello, World! This is test data for an HWP stream.")

	decoded, err := Decompress(mustCompress(t, original), true)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match original\ngot:  %s\nwant: %s", decoded, original)
	}
}

// TestDecompressZlibWrapped tests zlib-wrapped input
func TestDecompressZlibWrapped(t *testing.T) {
	original := []byte("zlib wrapped payload")

	decoded, err := Decompress(zlibCompress(original), true)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match\ngot:  %s\nwant: %s", decoded, original)
	}
}

// TestDecompressNotCompressed tests that uncompressed data passes through
func TestDecompressNotCompressed(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	out, err := Decompress(data, false)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if &out[0] != &data[0] {
		t.Error("uncompressed data should be returned without copying")
	}
}

// TestDecompressEmpty tests that empty input yields empty output
func TestDecompressEmpty(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		out, err := Decompress(nil, compressed)
		if err != nil {
			t.Errorf("Decompress(nil, %v) error = %v", compressed, err)
		}
		if len(out) != 0 {
			t.Errorf("Decompress(nil, %v) = %v, want empty", compressed, out)
		}
	}
}

// TestDecompressInvalid tests that garbage input fails with DecompressionError
func TestDecompressInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"reserved block type", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"truncated stream", truncated(mustCompress(t, noise(2048)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decompress(tt.data, true)
			if err == nil {
				t.Fatalf("expected error, got %d bytes", len(out))
			}
			var de *DecompressionError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecompressionError, got %T: %v", err, err)
			}
			if out != nil {
				t.Error("failed decompression must not return partial output")
			}
		})
	}
}

// TestDecompressRoundTrip checks decompress(compress(B)) == B for random buffers
func TestDecompressRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		size := rng.Intn(4096)
		original := make([]byte, size)
		// Mix runs and noise so both literal and match paths are used.
		for j := range original {
			if rng.Intn(4) == 0 {
				original[j] = byte(rng.Intn(256))
			} else {
				original[j] = 'a' + byte(j%7)
			}
		}

		decoded, err := Decompress(mustCompress(t, original), true)
		if err != nil {
			t.Fatalf("iteration %d (size %d): %v", i, size, err)
		}
		if !bytes.Equal(decoded, original) {
			t.Fatalf("iteration %d: round trip mismatch", i)
		}
	}
}

// TestDecompressLimit tests the output size bound
func TestDecompressLimit(t *testing.T) {
	original := bytes.Repeat([]byte{'x'}, 1000)
	compressed := mustCompress(t, original)

	if _, err := DecompressLimit(compressed, true, 999); !errors.Is(err, ErrOutputTooLarge) {
		t.Errorf("expected ErrOutputTooLarge, got %v", err)
	}

	out, err := DecompressLimit(compressed, true, 1000)
	if err != nil {
		t.Fatalf("DecompressLimit at exact size failed: %v", err)
	}
	if len(out) != 1000 {
		t.Errorf("len = %d, want 1000", len(out))
	}
}

func TestHasZlibHeader(t *testing.T) {
	tests := []struct {
		data []byte
		want bool
	}{
		{[]byte{0x78, 0x9C}, true},
		{[]byte{0x78, 0x01}, true},
		{[]byte{0x78, 0xDA}, true},
		{[]byte{0x78, 0x00}, false},
		{[]byte{0x08}, false},
		{[]byte{0xED, 0xBD}, false},
	}

	for _, tt := range tests {
		if got := hasZlibHeader(tt.data); got != tt.want {
			t.Errorf("hasZlibHeader(% x) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
