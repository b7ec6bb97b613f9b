package model

import (
	"bytes"
	"image"
	"strings"

	// Decoders registered for ImageConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BinaryDataItem is one embedded blob from the BinData storage, already
// decompressed.
type BinaryDataItem struct {
	Index     uint16 // BinDataID of the declaring BIN_DATA record
	Extension string
	Data      []byte
}

// StreamName returns the compound file path the item was read from.
func (b BinaryDataItem) StreamName() string {
	def := BinDataDef{BinDataID: b.Index, Extension: b.Extension}
	return def.StreamName()
}

// IsImage reports whether the extension names a picture format.
func (b BinaryDataItem) IsImage() bool {
	switch strings.ToLower(b.Extension) {
	case "bmp", "gif", "jpg", "jpeg", "png", "tif", "tiff", "webp", "wmf", "emf":
		return true
	}
	return false
}

// ImageConfig sniffs the dimensions and format of an embedded picture
// without decoding its pixels. Metafiles (wmf, emf) are not supported.
func (b BinaryDataItem) ImageConfig() (image.Config, string, error) {
	return image.DecodeConfig(bytes.NewReader(b.Data))
}
