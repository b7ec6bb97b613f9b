package model

import "fmt"

// RecordKind identifies a paragraph record variant.
type RecordKind int

const (
	KindUnknown RecordKind = iota
	KindParagraph
	KindParaText
	KindParaCharShape
	KindParaLineSeg
	KindParaRangeTag
	KindCtrlHeader
	KindListHeader
	KindPageDef
	KindFootnoteShape
	KindPageBorderFill
	KindShapeElement
	KindTable
	KindCtrlData
	KindEqEdit
	KindRaw
)

// String returns the string representation of the kind.
func (k RecordKind) String() string {
	switch k {
	case KindParagraph:
		return "Paragraph"
	case KindParaText:
		return "ParaText"
	case KindParaCharShape:
		return "ParaCharShape"
	case KindParaLineSeg:
		return "ParaLineSeg"
	case KindParaRangeTag:
		return "ParaRangeTag"
	case KindCtrlHeader:
		return "CtrlHeader"
	case KindListHeader:
		return "ListHeader"
	case KindPageDef:
		return "PageDef"
	case KindFootnoteShape:
		return "FootnoteShape"
	case KindPageBorderFill:
		return "PageBorderFill"
	case KindShapeElement:
		return "ShapeElement"
	case KindTable:
		return "Table"
	case KindCtrlData:
		return "CtrlData"
	case KindEqEdit:
		return "EqEdit"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// ParagraphRecord is one child of a paragraph, or of a control nested in a
// paragraph.
type ParagraphRecord interface {
	Kind() RecordKind
}

// BodyText is the ordered list of sections.
type BodyText struct {
	Sections []Section
}

// Section is one BodyText/SectionN stream.
type Section struct {
	Index      int
	Paragraphs []*Paragraph
}

// Definition returns the section definition control, which the format
// places in the section's first paragraph.
func (s *Section) Definition() (*SectionDef, *CtrlHeader) {
	if len(s.Paragraphs) == 0 {
		return nil, nil
	}
	for _, rec := range s.Paragraphs[0].Records {
		ctrl, ok := rec.(*CtrlHeader)
		if !ok {
			continue
		}
		if def, ok := ctrl.Data.(*SectionDef); ok {
			return def, ctrl
		}
	}
	return nil, nil
}

// PageDef returns the page layout of the section, or nil.
func (s *Section) PageDef() *PageDef {
	_, ctrl := s.Definition()
	if ctrl == nil {
		return nil
	}
	for _, rec := range ctrl.Children {
		if pd, ok := rec.(*PageDef); ok {
			return pd
		}
	}
	return nil
}

// ParaHeader is PARA_HEADER.
type ParaHeader struct {
	Chars          uint32
	ControlMask    uint32
	ParaShapeID    uint16
	StyleID        uint8
	BreakType      uint8
	CharShapeCount uint16
	RangeTagCount  uint16
	LineSegCount   uint16
	InstanceID     uint32
	TrackMerge     uint16
	HasTrackMerge  bool
}

// TextLength returns the character count without the high flag bit.
func (h ParaHeader) TextLength() uint32 { return h.Chars & 0x7FFFFFFF }

// LastInList reports the flag bit stored in the top bit of the char count.
func (h ParaHeader) LastInList() bool { return h.Chars&0x80000000 != 0 }

// Break type bits.
func (h ParaHeader) SectionBreak() bool { return h.BreakType&0x01 != 0 }
func (h ParaHeader) ColumnsBreak() bool { return h.BreakType&0x02 != 0 }
func (h ParaHeader) PageBreak() bool    { return h.BreakType&0x04 != 0 }
func (h ParaHeader) ColumnBreak() bool  { return h.BreakType&0x08 != 0 }

// Paragraph is a PARA_HEADER and the records nested under it. Paragraphs
// also appear nested inside controls (table cells, header/footer bodies,
// text boxes).
type Paragraph struct {
	Header  ParaHeader
	Records []ParagraphRecord
}

func (*Paragraph) Kind() RecordKind { return KindParagraph }

// Text returns the paragraph's own text, without nested paragraphs.
func (p *Paragraph) Text() string {
	for _, rec := range p.Records {
		if t, ok := rec.(*ParaText); ok {
			return t.Text()
		}
	}
	return ""
}

// CharShapeRef maps a text position to a CharShape index.
type CharShapeRef struct {
	Position    uint32
	CharShapeID uint32
}

// ParaCharShape is PARA_CHAR_SHAPE.
type ParaCharShape struct {
	Refs []CharShapeRef
}

func (*ParaCharShape) Kind() RecordKind { return KindParaCharShape }

// LineSeg is one laid-out line of a paragraph.
type LineSeg struct {
	TextStart    uint32
	VerticalPos  int32
	LineHeight   int32
	TextHeight   int32
	BaselineGap  int32
	LineSpacing  int32
	ColumnStart  int32
	SegmentWidth int32
	Tag          uint32
}

func (l LineSeg) FirstInPage() bool   { return l.Tag&0x1 != 0 }
func (l LineSeg) FirstInColumn() bool { return l.Tag&0x2 != 0 }

// ParaLineSeg is PARA_LINE_SEG.
type ParaLineSeg struct {
	Lines []LineSeg
}

func (*ParaLineSeg) Kind() RecordKind { return KindParaLineSeg }

// RangeTag marks a span of text (highlight, track change, ...).
type RangeTag struct {
	Start uint32
	End   uint32
	Tag   uint32
}

// Type returns the tag kind from the top byte.
func (r RangeTag) Type() uint8 { return uint8(r.Tag >> 24) }

// ParaRangeTag is PARA_RANGE_TAG.
type ParaRangeTag struct {
	Tags []RangeTag
}

func (*ParaRangeTag) Kind() RecordKind { return KindParaRangeTag }

// CtrlHeader is CTRL_HEADER with the records nested under it.
type CtrlHeader struct {
	CtrlID   uint32
	Data     CtrlHeaderData
	Children []ParagraphRecord
}

func (*CtrlHeader) Kind() RecordKind { return KindCtrlHeader }

// Paragraphs returns the paragraphs nested directly under the control.
func (c *CtrlHeader) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, rec := range c.Children {
		if p, ok := rec.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// CellInfo is the table cell description trailing a LIST_HEADER inside a
// table.
type CellInfo struct {
	Col          uint16
	Row          uint16
	ColSpan      uint16
	RowSpan      uint16
	Width        uint32
	Height       uint32
	Margins      [4]uint16
	BorderFillID uint16
}

// ListHeader is LIST_HEADER. What follows the fixed part depends on the
// owning control and is kept in Tail.
type ListHeader struct {
	ParagraphCount int16
	Reserved       uint16
	Attribute      uint32
	Tail           []byte
}

func (*ListHeader) Kind() RecordKind { return KindListHeader }

func (l *ListHeader) TextDirection() uint32 { return l.Attribute & 0x7 }
func (l *ListHeader) LineWrap() uint32      { return (l.Attribute >> 3) & 0x3 }
func (l *ListHeader) VerticalAlign() uint32 { return (l.Attribute >> 5) & 0x3 }

// CellInfo decodes Tail as a table cell description.
func (l *ListHeader) CellInfo() (CellInfo, bool) {
	t := l.Tail
	if len(t) < 26 {
		return CellInfo{}, false
	}
	u16 := func(o int) uint16 { return uint16(t[o]) | uint16(t[o+1])<<8 }
	u32 := func(o int) uint32 { return uint32(u16(o)) | uint32(u16(o+2))<<16 }
	return CellInfo{
		Col:          u16(0),
		Row:          u16(2),
		ColSpan:      u16(4),
		RowSpan:      u16(6),
		Width:        u32(8),
		Height:       u32(12),
		Margins:      [4]uint16{u16(16), u16(18), u16(20), u16(22)},
		BorderFillID: u16(24),
	}, true
}

// PageDef is PAGE_DEF. Lengths are in HWPUNIT (1/7200 inch).
type PageDef struct {
	Width        uint32
	Height       uint32
	LeftMargin   uint32
	RightMargin  uint32
	TopMargin    uint32
	BottomMargin uint32
	HeaderMargin uint32
	FooterMargin uint32
	GutterMargin uint32
	Attribute    uint32
}

func (*PageDef) Kind() RecordKind { return KindPageDef }

func (p *PageDef) Landscape() bool    { return p.Attribute&0x1 != 0 }
func (p *PageDef) GutterType() uint32 { return (p.Attribute >> 1) & 0x3 }

// FootnoteShape is FOOTNOTE_SHAPE.
type FootnoteShape struct {
	Attribute          uint32
	UserSymbol         uint16
	Prefix             uint16
	Suffix             uint16
	StartNumber        uint16
	DividerLength      int16
	DividerMarginTop   int16
	DividerMarginBelow int16
	NoteSpacing        int16
	DividerType        uint8
	DividerThickness   uint8
	DividerColor       ColorRef
	Tail               []byte
}

func (*FootnoteShape) Kind() RecordKind { return KindFootnoteShape }

func (f *FootnoteShape) NumberShape() uint32 { return f.Attribute & 0xFF }
func (f *FootnoteShape) Placement() uint32   { return (f.Attribute >> 8) & 0x3 }

// PageBorderFill is PAGE_BORDER_FILL.
type PageBorderFill struct {
	Attribute    uint32
	Gaps         [4]int16
	BorderFillID uint16
}

func (*PageBorderFill) Kind() RecordKind { return KindPageBorderFill }

// CellZone assigns a border fill to a rectangular block of cells.
type CellZone struct {
	StartCol     uint16
	StartRow     uint16
	EndCol       uint16
	EndRow       uint16
	BorderFillID uint16
}

// Table is the TABLE record under a "tbl " control.
type Table struct {
	Attribute    uint32
	Rows         uint16
	Cols         uint16
	CellSpacing  int16
	Margins      [4]int16
	RowSizes     []uint16
	BorderFillID uint16
	Zones        []CellZone
	Tail         []byte
}

func (*Table) Kind() RecordKind { return KindTable }

func (t *Table) PageBreak() uint32  { return t.Attribute & 0x3 }
func (t *Table) RepeatHeader() bool { return t.Attribute&0x4 != 0 }

// CtrlData is CTRL_DATA: a parameter set attached to a control.
type CtrlData struct {
	Data []byte
}

func (*CtrlData) Kind() RecordKind { return KindCtrlData }

// EqEdit is EQEDIT: an equation script.
type EqEdit struct {
	Attribute uint32
	Script    string
	FontSize  uint32
	Color     ColorRef
	Baseline  int16
	Tail      []byte
}

func (*EqEdit) Kind() RecordKind { return KindEqEdit }

// RawRecord is a known body record whose layout is not decoded (form
// objects, memo lists, chart and video data).
type RawRecord struct {
	Tag      uint16
	Data     []byte
	Children []ParagraphRecord
}

func (*RawRecord) Kind() RecordKind { return KindRaw }

// UnknownRecord is a body record with an unrecognised tag, or one whose
// payload failed to decode.
type UnknownRecord struct {
	Tag      uint16
	Payload  []byte
	Children []ParagraphRecord
}

func (*UnknownRecord) Kind() RecordKind { return KindUnknown }

// String describes the record for diagnostics.
func (u *UnknownRecord) String() string {
	return fmt.Sprintf("unknown record tag %d (%d bytes, %d children)", u.Tag, len(u.Payload), len(u.Children))
}
