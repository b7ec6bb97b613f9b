package record

import "fmt"

// TruncatedRecordError reports a record header or payload that runs past the
// end of its buffer. Frames before Offset are intact.
type TruncatedRecordError struct {
	Offset int    // offset of the record header
	Tag    uint16 // zero when the header itself is cut short
	Want   int
	Have   int
}

func (e *TruncatedRecordError) Error() string {
	if e.Tag == 0 {
		return fmt.Sprintf("record: truncated header at offset %d: need %d bytes, have %d", e.Offset, e.Want, e.Have)
	}
	return fmt.Sprintf("record: truncated %s at offset %d: payload %d bytes, have %d",
		TagName(e.Tag), e.Offset, e.Want, e.Have)
}

// InvalidTagError reports a tag below Begin.
type InvalidTagError struct {
	Offset int
	Tag    uint16
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("record: invalid tag %d at offset %d (below %d)", e.Tag, e.Offset, Begin)
}

// MalformedNestingError reports a record whose level has no parent one level
// up. The record is kept as an extra root.
type MalformedNestingError struct {
	Offset      int
	Tag         uint16
	Level       uint16
	ParentLevel int // -1 when no ancestor was open
}

func (e *MalformedNestingError) Error() string {
	if e.ParentLevel < 0 {
		return fmt.Sprintf("record: %s at offset %d has level %d but no open parent",
			TagName(e.Tag), e.Offset, e.Level)
	}
	return fmt.Sprintf("record: %s at offset %d jumps from level %d to %d",
		TagName(e.Tag), e.Offset, e.ParentLevel, e.Level)
}
