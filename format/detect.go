// Package format identifies the Hangul word processor file generations.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a Hangul document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HWP5 indicates an HWP 5.x compound file.
	HWP5
	// HWPX indicates an OWPML (.hwpx) zip package.
	HWPX
	// HWP3 indicates a legacy HWP 3.x file.
	HWP3
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HWP5:
		return "HWP5"
	case HWPX:
		return "HWPX"
	case HWP3:
		return "HWP3"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HWP5, HWP3:
		return ".hwp"
	case HWPX:
		return ".hwpx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension. Both HWP 3 and
// HWP 5 use ".hwp"; the newer generation is assumed.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hwp":
		return HWP5
	case ".hwpx":
		return HWPX
	default:
		return Unknown
	}
}

var (
	oleMagic  = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	hwp3Magic = []byte("HWP Document File V3")
)

// hwpxMime is the content of the mimetype entry of an HWPX package.
const hwpxMime = "application/hwp+zip"

// DetectFromMagic checks leading bytes to determine format. A zip archive
// yields Unknown; use DetectFromReader to look inside it.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return HWP5
	case bytes.HasPrefix(data, hwp3Magic):
		return HWP3
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine format, opening zip
// archives to tell HWPX from other zip-based files.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 32)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Unknown, nil
		}
		data := make([]byte, 64)
		n, _ := io.ReadFull(rc, data)
		rc.Close()
		if strings.TrimSpace(string(data[:n])) == hwpxMime {
			return HWPX, nil
		}
	}

	// Packages written without a mimetype entry still carry Contents/.
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "Contents/") {
			return HWPX, nil
		}
	}
	return Unknown, nil
}
