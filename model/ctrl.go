package model

// CtrlHeaderData is the decoded payload of a CTRL_HEADER, after its control id.
type CtrlHeaderData interface {
	ctrlHeaderData()
}

// Control ids are four ASCII characters packed big-end first.
const (
	CtrlSectionDef         uint32 = 's'<<24 | 'e'<<16 | 'c'<<8 | 'd'
	CtrlColumnDef          uint32 = 'c'<<24 | 'o'<<16 | 'l'<<8 | 'd'
	CtrlTable              uint32 = 't'<<24 | 'b'<<16 | 'l'<<8 | ' '
	CtrlGenShapeObject     uint32 = 'g'<<24 | 's'<<16 | 'o'<<8 | ' '
	CtrlEquation           uint32 = 'e'<<24 | 'q'<<16 | 'e'<<8 | 'd'
	CtrlPageHeader         uint32 = 'h'<<24 | 'e'<<16 | 'a'<<8 | 'd'
	CtrlPageFooter         uint32 = 'f'<<24 | 'o'<<16 | 'o'<<8 | 't'
	CtrlFootnote           uint32 = 'f'<<24 | 'n'<<16 | ' '<<8 | ' '
	CtrlEndnote            uint32 = 'e'<<24 | 'n'<<16 | ' '<<8 | ' '
	CtrlAutoNumber         uint32 = 'a'<<24 | 't'<<16 | 'n'<<8 | 'o'
	CtrlNewNumber          uint32 = 'n'<<24 | 'w'<<16 | 'n'<<8 | 'o'
	CtrlPageHide           uint32 = 'p'<<24 | 'g'<<16 | 'h'<<8 | 'd'
	CtrlPageAdjust         uint32 = 'p'<<24 | 'g'<<16 | 'c'<<8 | 't'
	CtrlPageNumberPosition uint32 = 'p'<<24 | 'g'<<16 | 'n'<<8 | 'p'
	CtrlIndexMark          uint32 = 'i'<<24 | 'd'<<16 | 'x'<<8 | 'm'
	CtrlBookmark           uint32 = 'b'<<24 | 'o'<<16 | 'k'<<8 | 'm'
	CtrlOverlapChars       uint32 = 't'<<24 | 'c'<<16 | 'p'<<8 | 's'
	CtrlDutmal             uint32 = 't'<<24 | 'd'<<16 | 'u'<<8 | 't'
	CtrlHiddenComment      uint32 = 't'<<24 | 'c'<<16 | 'm'<<8 | 't'
)

// CtrlIDString renders a control id as its four characters.
func CtrlIDString(id uint32) string {
	b := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	for i, c := range b {
		if c < 0x20 || c > 0x7E {
			b[i] = '?'
		}
	}
	return string(b)
}

// IsFieldCtrl reports a field control ("%clk", "%hlk", ...).
func IsFieldCtrl(id uint32) bool { return byte(id>>24) == '%' }

// SectionDef is the "secd" control.
type SectionDef struct {
	Attribute         uint32
	ColumnSpacing     int16
	VerticalGrid      uint16
	HorizontalGrid    uint16
	DefaultTabSpacing uint32
	NumberingShapeID  uint16
	PageStart         uint16
	PictureStart      uint16
	TableStart        uint16
	EquationStart     uint16
	Tail              []byte
}

func (s *SectionDef) HideHeader() bool      { return s.Attribute&0x1 != 0 }
func (s *SectionDef) HideFooter() bool      { return s.Attribute&0x2 != 0 }
func (s *SectionDef) HideMasterPage() bool  { return s.Attribute&0x4 != 0 }
func (s *SectionDef) HideBorder() bool      { return s.Attribute&0x8 != 0 }
func (s *SectionDef) HideFill() bool        { return s.Attribute&0x10 != 0 }
func (s *SectionDef) HidePageNumber() bool  { return s.Attribute&0x20 != 0 }
func (s *SectionDef) TextDirection() uint32 { return (s.Attribute >> 16) & 0x7 }

// ColumnDef is the "cold" control.
type ColumnDef struct {
	Attribute          uint16
	Spacing            int16
	Widths             []uint16
	Attribute2         uint16
	SeparatorType      uint8
	SeparatorThickness uint8
	SeparatorColor     ColorRef
}

func (c *ColumnDef) Type() uint16      { return c.Attribute & 0x3 }
func (c *ColumnDef) Count() int        { return int((c.Attribute >> 2) & 0xFF) }
func (c *ColumnDef) Direction() uint16 { return (c.Attribute >> 10) & 0x3 }
func (c *ColumnDef) SameWidth() bool   { return c.Attribute&(1<<12) != 0 }

// ObjectCommon holds the attributes shared by positioned objects: tables
// ("tbl "), drawing objects ("gso ") and equations ("eqed").
type ObjectCommon struct {
	Attribute        uint32
	VerticalOffset   int32
	HorizontalOffset int32
	Width            uint32
	Height           uint32
	ZOrder           int32
	Margins          [4]int16
	InstanceID       uint32
	PageDivide       int32
	Description      string
	Tail             []byte

	HasPageDivide bool
}

func (o *ObjectCommon) TreatAsChar() bool       { return o.Attribute&0x1 != 0 }
func (o *ObjectCommon) AffectLineSpacing() bool { return o.Attribute&0x4 != 0 }
func (o *ObjectCommon) VertRelTo() uint32       { return (o.Attribute >> 3) & 0x3 }
func (o *ObjectCommon) VertAlign() uint32       { return (o.Attribute >> 5) & 0x7 }
func (o *ObjectCommon) HorzRelTo() uint32       { return (o.Attribute >> 8) & 0x3 }
func (o *ObjectCommon) HorzAlign() uint32       { return (o.Attribute >> 10) & 0x7 }
func (o *ObjectCommon) FlowWithText() bool      { return o.Attribute&(1<<13) != 0 }
func (o *ObjectCommon) AllowOverlap() bool      { return o.Attribute&(1<<14) != 0 }
func (o *ObjectCommon) TextWrap() uint32        { return (o.Attribute >> 21) & 0x7 }
func (o *ObjectCommon) TextFlow() uint32        { return (o.Attribute >> 24) & 0x3 }
func (o *ObjectCommon) NumberingKind() uint32   { return (o.Attribute >> 26) & 0x7 }

// HeaderFooter is the "head" or "foot" control.
type HeaderFooter struct {
	Attribute uint32
	Tail      []byte
}

// ApplyTo returns 0 for both pages, 1 for even pages, 2 for odd pages.
func (h *HeaderFooter) ApplyTo() uint32 { return h.Attribute & 0x3 }

// FootnoteEndnote is the "fn  " or "en  " control.
type FootnoteEndnote struct {
	Number    uint8
	Reserved1 [5]byte
	Attribute uint8
	Reserved2 uint8
	Tail      []byte
}

// AutoNumber is the "atno" control.
type AutoNumber struct {
	Attribute  uint32
	Number     uint16
	UserSymbol uint16
	Prefix     uint16
	Suffix     uint16
	Tail       []byte
}

// NumberType is 0 page, 1 footnote, 2 endnote, 3 picture, 4 table, 5 equation.
func (a *AutoNumber) NumberType() uint32  { return a.Attribute & 0xF }
func (a *AutoNumber) NumberShape() uint32 { return (a.Attribute >> 4) & 0xFF }
func (a *AutoNumber) Superscript() bool   { return a.Attribute&(1<<12) != 0 }

// NewNumber is the "nwno" control.
type NewNumber struct {
	Attribute uint32
	Number    uint16
	Tail      []byte
}

func (n *NewNumber) NumberType() uint32 { return n.Attribute & 0xF }

// PageHide is the "pghd" control.
type PageHide struct {
	Attribute uint16
	Tail      []byte
}

func (p *PageHide) HideHeader() bool     { return p.Attribute&0x1 != 0 }
func (p *PageHide) HideFooter() bool     { return p.Attribute&0x2 != 0 }
func (p *PageHide) HideMasterPage() bool { return p.Attribute&0x4 != 0 }
func (p *PageHide) HideBorder() bool     { return p.Attribute&0x8 != 0 }
func (p *PageHide) HideFill() bool       { return p.Attribute&0x10 != 0 }
func (p *PageHide) HidePageNumber() bool { return p.Attribute&0x20 != 0 }

// PageAdjust is the "pgct" control (odd/even page adjustment).
type PageAdjust struct {
	Attribute uint32
	Tail      []byte
}

// Adjust returns 0 for both pages, 1 for even pages, 2 for odd pages.
func (p *PageAdjust) Adjust() uint32 { return p.Attribute & 0x3 }

// PageNumberPosition is the "pgnp" control.
type PageNumberPosition struct {
	Attribute  uint32
	UserSymbol uint16
	Prefix     uint16
	Suffix     uint16
	Dash       uint16
	Tail       []byte
}

func (p *PageNumberPosition) NumberShape() uint32 { return p.Attribute & 0xFF }
func (p *PageNumberPosition) Position() uint32    { return (p.Attribute >> 8) & 0xF }

// Field is a "%xxx" field control (hyperlink, click-here, date, ...).
type Field struct {
	Attribute      uint32
	ExtraAttribute uint8
	Command        string
	InstanceID     uint32
	Tail           []byte
}

func (f *Field) Editable() bool { return f.Attribute&0x1 != 0 }
func (f *Field) Dirty() bool    { return f.Attribute&(1<<15) != 0 }

// Bookmark is the "bokm" control. Its name lives in a CTRL_DATA child.
type Bookmark struct {
	Tail []byte
}

// CtrlRaw is a known control whose payload layout is not decoded (index
// marks, overlapping characters, dutmal, hidden comments).
type CtrlRaw struct {
	Data []byte
}

// CtrlUnknown is a control with an unrecognised id, or one whose payload
// failed to decode.
type CtrlUnknown struct {
	Data []byte
}

func (*SectionDef) ctrlHeaderData()         {}
func (*ColumnDef) ctrlHeaderData()          {}
func (*ObjectCommon) ctrlHeaderData()       {}
func (*HeaderFooter) ctrlHeaderData()       {}
func (*FootnoteEndnote) ctrlHeaderData()    {}
func (*AutoNumber) ctrlHeaderData()         {}
func (*NewNumber) ctrlHeaderData()          {}
func (*PageHide) ctrlHeaderData()           {}
func (*PageAdjust) ctrlHeaderData()         {}
func (*PageNumberPosition) ctrlHeaderData() {}
func (*Field) ctrlHeaderData()              {}
func (*Bookmark) ctrlHeaderData()           {}
func (*CtrlRaw) ctrlHeaderData()            {}
func (*CtrlUnknown) ctrlHeaderData()        {}
