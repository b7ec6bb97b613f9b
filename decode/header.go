package decode

import (
	"bytes"
	"encoding/binary"

	"github.com/tsawler/hwp/model"
)

const (
	signatureSize = 32
	fileHeaderMin = signatureSize + 8
)

// DecodeFileHeader decodes the FileHeader stream. Only the signature,
// version and property words are required; the license, encryption version
// and KOGL fields are read when present. The signature is not checked.
func DecodeFileHeader(payload []byte) (model.FileHeader, error) {
	if len(payload) < fileHeaderMin {
		return model.FileHeader{}, &InsufficientDataError{What: "FileHeader", Expected: fileHeaderMin, Actual: len(payload)}
	}
	c := newCursor("FileHeader", payload)
	sig := c.take(signatureSize)
	if i := bytes.IndexByte(sig, 0); i >= 0 {
		sig = sig[:i]
	}
	h := model.FileHeader{
		Signature:  string(sig),
		Version:    model.ParseVersion(c.u32()),
		Properties: c.u32(),
	}
	if c.remaining() >= 4 {
		h.License = c.u32()
	}
	if c.remaining() >= 4 {
		h.EncryptVersion = c.u32()
	}
	if c.remaining() >= 1 {
		h.KOGLCountry = c.u8()
	}
	return h, nil
}

// EncodeFileHeader builds a 256-byte FileHeader stream. It exists for
// fixtures and tools that synthesise documents.
func EncodeFileHeader(h model.FileHeader) []byte {
	b := make([]byte, 256)
	sig := h.Signature
	if sig == "" {
		sig = model.Signature
	}
	copy(b[:signatureSize], sig)
	binary.LittleEndian.PutUint32(b[32:], h.Version.Uint32())
	binary.LittleEndian.PutUint32(b[36:], h.Properties)
	binary.LittleEndian.PutUint32(b[40:], h.License)
	binary.LittleEndian.PutUint32(b[44:], h.EncryptVersion)
	b[48] = h.KOGLCountry
	return b
}
