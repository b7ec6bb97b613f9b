package record

import "encoding/binary"

const (
	headerSize   = 4
	extendedSize = 0xFFF
)

// Frame is one framed record as it appears in a stream. Payload aliases the
// source buffer.
type Frame struct {
	Tag     uint16
	Level   uint16
	Offset  int
	Payload []byte
}

// Framer walks a decompressed stream one record at a time. It makes a single
// forward pass and stops at the first truncated or invalid header; frames
// already returned stay valid.
type Framer struct {
	buf []byte
	pos int
	err error
}

// NewFramer returns a Framer over buf.
func NewFramer(buf []byte) *Framer {
	return &Framer{buf: buf}
}

// Next returns the next frame. It reports false at the end of the buffer or
// when framing stopped; Err distinguishes the two.
func (f *Framer) Next() (Frame, bool) {
	if f.err != nil || f.pos >= len(f.buf) {
		return Frame{}, false
	}

	offset := f.pos
	remaining := len(f.buf) - offset
	if remaining < headerSize {
		f.err = &TruncatedRecordError{Offset: offset, Want: headerSize, Have: remaining}
		return Frame{}, false
	}

	header := binary.LittleEndian.Uint32(f.buf[offset:])
	tag := uint16(header & 0x3FF)
	level := uint16((header >> 10) & 0x3FF)
	size := uint64(header >> 20)
	start := offset + headerSize

	if tag < Begin {
		f.err = &InvalidTagError{Offset: offset, Tag: tag}
		return Frame{}, false
	}

	if size == extendedSize {
		if remaining < headerSize+4 {
			f.err = &TruncatedRecordError{Offset: offset, Want: headerSize + 4, Have: remaining}
			return Frame{}, false
		}
		size = uint64(binary.LittleEndian.Uint32(f.buf[start:]))
		start += 4
	}

	avail := len(f.buf) - start
	if size > uint64(avail) {
		f.err = &TruncatedRecordError{Offset: offset, Tag: tag, Want: int(size), Have: avail}
		return Frame{}, false
	}

	end := start + int(size)
	f.pos = end
	return Frame{
		Tag:     tag,
		Level:   level,
		Offset:  offset,
		Payload: f.buf[start:end:end],
	}, true
}

// Err returns the condition that stopped framing, or nil if the buffer was
// consumed completely.
func (f *Framer) Err() error {
	return f.err
}

// Frames frames the whole buffer. On a truncated or invalid record it returns
// the frames decoded so far together with the error.
func Frames(buf []byte) ([]Frame, error) {
	f := NewFramer(buf)
	var frames []Frame
	for {
		fr, ok := f.Next()
		if !ok {
			break
		}
		frames = append(frames, fr)
	}
	return frames, f.Err()
}

// Encode appends a framed record to dst, using the extended size form when
// the payload does not fit the inline field.
func Encode(dst []byte, tag, level uint16, payload []byte) []byte {
	size := uint32(len(payload))
	inline := size
	if size >= extendedSize {
		inline = extendedSize
	}
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[:4], uint32(tag&0x3FF)|uint32(level&0x3FF)<<10|inline<<20)
	dst = append(dst, hdr[:4]...)
	if inline == extendedSize {
		binary.LittleEndian.PutUint32(hdr[4:], size)
		dst = append(dst, hdr[4:]...)
	}
	return append(dst, payload...)
}
