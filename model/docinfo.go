package model

import "fmt"

// DocInfoRecord is a decoded record from the DocInfo stream.
type DocInfoRecord interface {
	docInfoRecord()
}

// DocInfo holds the document-global resource tables. Each table keeps
// declaration order; a nil entry marks a record that failed to decode.
type DocInfo struct {
	Properties          *DocumentProperties
	IDMappings          *IDMappings
	BinData             []*BinDataDef
	FaceNames           []*FaceName
	BorderFills         []*BorderFill
	CharShapes          []*CharShape
	TabDefs             []*TabDef
	Numberings          []*Numbering
	Bullets             []*Bullet
	ParaShapes          []*ParaShape
	Styles              []*Style
	MemoShapes          []*MemoShape
	TrackChangeAuthors  []*TrackChangeAuthor
	TrackChanges        []*TrackChange
	ForbiddenChars      []*ForbiddenChar
	CompatibleDocument  *CompatibleDocument
	LayoutCompatibility *LayoutCompatibility

	// Records lists every DocInfo record in stream order, whatever its
	// nesting level, including ones only kept as raw or unknown.
	Records []DocInfoRecord

	// BinaryData holds the embedded blobs, in BinData declaration order.
	BinaryData []BinaryDataItem
}

func at[T any](s []*T, i int) *T {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

// CharShape returns character shape i, or nil.
func (d *DocInfo) CharShape(i int) *CharShape { return at(d.CharShapes, i) }

// ParaShape returns paragraph shape i, or nil.
func (d *DocInfo) ParaShape(i int) *ParaShape { return at(d.ParaShapes, i) }

// Style returns style i, or nil.
func (d *DocInfo) Style(i int) *Style { return at(d.Styles, i) }

// BorderFill returns border/fill i. Border fill ids in body records are
// 1-based; pass id-1.
func (d *DocInfo) BorderFill(i int) *BorderFill { return at(d.BorderFills, i) }

// FaceName returns face name i of the flat table, or nil.
func (d *DocInfo) FaceName(i int) *FaceName { return at(d.FaceNames, i) }

// BinaryItem returns the blob stored under a bin data id.
func (d *DocInfo) BinaryItem(id uint16) (BinaryDataItem, bool) {
	for _, item := range d.BinaryData {
		if item.Index == id {
			return item, true
		}
	}
	return BinaryDataItem{}, false
}

// FaceNamesByLanguage splits the flat face name table into the seven
// language groups using the ID_MAPPINGS counts. Without mappings every face
// lands in the Hangul group.
func (d *DocInfo) FaceNamesByLanguage() [LanguageCount][]*FaceName {
	var groups [LanguageCount][]*FaceName
	if d.IDMappings == nil {
		groups[LangHangul] = d.FaceNames
		return groups
	}
	pos := 0
	for lang := 0; lang < LanguageCount; lang++ {
		n := d.IDMappings.Count(IDFaceHangul + lang)
		end := pos + n
		if end > len(d.FaceNames) {
			end = len(d.FaceNames)
		}
		if pos < end {
			groups[lang] = d.FaceNames[pos:end]
		}
		pos = end
	}
	return groups
}

// Language groups used by face names and character shape arrays.
const (
	LangHangul = iota
	LangLatin
	LangHanja
	LangJapanese
	LangOther
	LangSymbol
	LangUser
	LanguageCount
)

// ColorRef is a 0x00BBGGRR color value.
type ColorRef uint32

// RGB splits the color into its components.
func (c ColorRef) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Hex returns the color as #rrggbb.
func (c ColorRef) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// DocumentProperties is DOCUMENT_PROPERTIES.
type DocumentProperties struct {
	SectionCount  uint16
	PageStart     uint16
	FootnoteStart uint16
	EndnoteStart  uint16
	PictureStart  uint16
	TableStart    uint16
	EquationStart uint16
	CaretListID   uint32
	CaretParaID   uint32
	CaretCharPos  uint32
}

// Indices into IDMappings.Counts.
const (
	IDBinData = iota
	IDFaceHangul
	IDFaceLatin
	IDFaceHanja
	IDFaceJapanese
	IDFaceOther
	IDFaceSymbol
	IDFaceUser
	IDBorderFill
	IDCharShape
	IDTabDef
	IDNumbering
	IDBullet
	IDParaShape
	IDStyle
	IDMemoShape
	IDTrackChange
	IDTrackChangeAuthor
)

// IDMappings is ID_MAPPINGS: how many records of each kind follow. Older
// documents carry fewer counts.
type IDMappings struct {
	Counts []int32
}

// Count returns mapping i, or 0 when the document does not store it.
func (m *IDMappings) Count(i int) int {
	if i < 0 || i >= len(m.Counts) || m.Counts[i] < 0 {
		return 0
	}
	return int(m.Counts[i])
}

// BinDataType is the storage kind of a BIN_DATA definition.
type BinDataType uint16

const (
	BinDataLink BinDataType = iota
	BinDataEmbedding
	BinDataStorage
)

func (t BinDataType) String() string {
	switch t {
	case BinDataLink:
		return "link"
	case BinDataEmbedding:
		return "embedding"
	case BinDataStorage:
		return "storage"
	default:
		return fmt.Sprintf("BinDataType(%d)", uint16(t))
	}
}

// BinDataCompression overrides the document compression flag for one item.
type BinDataCompression uint16

const (
	BinDataCompressDefault BinDataCompression = iota
	BinDataCompressAlways
	BinDataCompressNever
)

// BinDataDef is BIN_DATA: a declaration of one linked or embedded binary item.
type BinDataDef struct {
	Attribute    uint16
	AbsolutePath string // link only
	RelativePath string // link only
	BinDataID    uint16 // embedding/storage only
	Extension    string // embedding only
}

func (b *BinDataDef) Type() BinDataType { return BinDataType(b.Attribute & 0x000F) }

func (b *BinDataDef) Compression() BinDataCompression {
	return BinDataCompression((b.Attribute >> 4) & 0x3)
}

// AccessState is 0 before access, 1 accessed, 2 failed, 3 failed and ignored.
func (b *BinDataDef) AccessState() uint16 { return (b.Attribute >> 8) & 0x3 }

// StreamName returns the compound file path of an embedded item. An item
// without an extension has no trailing dot.
func (b *BinDataDef) StreamName() string {
	if b.Extension == "" {
		return fmt.Sprintf("BinData/BIN%04X", b.BinDataID)
	}
	return fmt.Sprintf("BinData/BIN%04X.%s", b.BinDataID, b.Extension)
}

// Compressed resolves the item's compression against the document default.
func (b *BinDataDef) Compressed(docDefault bool) bool {
	switch b.Compression() {
	case BinDataCompressAlways:
		return true
	case BinDataCompressNever:
		return false
	default:
		return docDefault
	}
}

// FaceName is FACE_NAME.
type FaceName struct {
	Attribute   uint8
	Name        string
	AltType     uint8
	AltName     string
	Panose      []byte
	DefaultName string
}

func (f *FaceName) HasAlternate() bool { return f.Attribute&0x80 != 0 }
func (f *FaceName) HasPanose() bool    { return f.Attribute&0x40 != 0 }
func (f *FaceName) HasDefault() bool   { return f.Attribute&0x20 != 0 }

// BorderLine is one edge of a border.
type BorderLine struct {
	Type      uint8
	Thickness uint8
	Color     ColorRef
}

// Border edges, in storage order.
const (
	BorderLeft = iota
	BorderRight
	BorderTop
	BorderBottom
)

// BorderFill is BORDER_FILL. Fill keeps the variable-length fill description.
type BorderFill struct {
	Attribute uint16
	Borders   [4]BorderLine
	Diagonal  BorderLine
	Fill      []byte
}

// FillType returns the fill kind bits (1 solid, 2 image, 4 gradation), or 0.
func (b *BorderFill) FillType() uint32 {
	if len(b.Fill) < 4 {
		return 0
	}
	return uint32(b.Fill[0]) | uint32(b.Fill[1])<<8 | uint32(b.Fill[2])<<16 | uint32(b.Fill[3])<<24
}

// CharShape is CHAR_SHAPE. The seven-entry arrays are per language group.
type CharShape struct {
	FaceNameIDs    [LanguageCount]uint16
	Ratios         [LanguageCount]uint8
	Spacings       [LanguageCount]int8
	RelativeSizes  [LanguageCount]uint8
	Offsets        [LanguageCount]int8
	BaseSize       int32
	Attribute      uint32
	ShadowGapX     int8
	ShadowGapY     int8
	TextColor      ColorRef
	UnderlineColor ColorRef
	ShadeColor     ColorRef
	ShadowColor    ColorRef
	BorderFillID   uint16
	StrikeColor    ColorRef

	HasBorderFillID bool
	HasStrikeColor  bool
}

func (c *CharShape) Italic() bool           { return c.Attribute&0x1 != 0 }
func (c *CharShape) Bold() bool             { return c.Attribute&0x2 != 0 }
func (c *CharShape) UnderlineType() uint32  { return (c.Attribute >> 2) & 0x3 }
func (c *CharShape) UnderlineShape() uint32 { return (c.Attribute >> 4) & 0xF }
func (c *CharShape) OutlineType() uint32    { return (c.Attribute >> 8) & 0x7 }
func (c *CharShape) ShadowType() uint32     { return (c.Attribute >> 11) & 0x3 }
func (c *CharShape) Emboss() bool           { return c.Attribute&(1<<13) != 0 }
func (c *CharShape) Engrave() bool          { return c.Attribute&(1<<14) != 0 }
func (c *CharShape) Superscript() bool      { return c.Attribute&(1<<15) != 0 }
func (c *CharShape) Subscript() bool        { return c.Attribute&(1<<16) != 0 }
func (c *CharShape) Strikeout() bool        { return (c.Attribute>>18)&0x7 != 0 }
func (c *CharShape) Kerning() bool          { return c.Attribute&(1<<30) != 0 }

// PointSize returns the base size in points (stored in 1/100 pt).
func (c *CharShape) PointSize() float64 { return float64(c.BaseSize) / 100 }

// Tab is one tab stop.
type Tab struct {
	Position uint32
	Type     uint8
	FillType uint8
}

// TabDef is TAB_DEF.
type TabDef struct {
	Attribute uint32
	Tabs      []Tab
}

func (t *TabDef) AutoTabLeft() bool  { return t.Attribute&0x1 != 0 }
func (t *TabDef) AutoTabRight() bool { return t.Attribute&0x2 != 0 }

// ParaHeadInfo is the shared head of numbering and bullet levels.
type ParaHeadInfo struct {
	Attribute   uint32
	WidthAdjust uint16
	TextOffset  uint16
	CharShapeID uint32
}

func (p ParaHeadInfo) Alignment() uint32 { return p.Attribute & 0x3 }

// NumberingLevel is one of the seven levels of a numbering definition.
type NumberingLevel struct {
	Head   ParaHeadInfo
	Format string
}

// Numbering is NUMBERING. Levels beyond those fully present are left zero
// and the unparsed remainder stays in Tail.
type Numbering struct {
	Levels      [7]NumberingLevel
	StartNumber uint16
	Tail        []byte
}

// Bullet is BULLET.
type Bullet struct {
	Head ParaHeadInfo
	Char uint16
	Tail []byte
}

// ParaShape is PARA_SHAPE.
type ParaShape struct {
	Attribute1    uint32
	LeftMargin    int32
	RightMargin   int32
	Indent        int32
	SpacingBefore int32
	SpacingAfter  int32
	LineSpacing   int32
	TabDefID      uint16
	NumberingID   uint16
	BorderFillID  uint16
	BorderOffsets [4]int16
	Attribute2    uint32
	Attribute3    uint32
	LineSpacing2  uint32
	Tail          []byte
}

func (p *ParaShape) LineSpacingType() uint32 { return p.Attribute1 & 0x3 }
func (p *ParaShape) Alignment() uint32       { return (p.Attribute1 >> 2) & 0x7 }
func (p *ParaShape) HeadingType() uint32     { return (p.Attribute1 >> 23) & 0x3 }
func (p *ParaShape) HeadingLevel() uint32    { return (p.Attribute1 >> 25) & 0x7 }

// Style is STYLE.
type Style struct {
	LocalName   string
	EnglishName string
	Attribute   uint8
	NextStyleID uint8
	LanguageID  int16
	ParaShapeID uint16
	CharShapeID uint16
	Tail        []byte
}

// IsCharStyle reports a character style rather than a paragraph style.
func (s *Style) IsCharStyle() bool { return s.Attribute&0x7 == 1 }

// MemoShape is MEMO_SHAPE. Only its 22-byte prefix has a known layout.
type MemoShape struct {
	Width       uint32
	LineWidth   uint8
	LineType    uint8
	LineColor   ColorRef
	FillColor   ColorRef
	ActiveColor ColorRef
	MemoType    uint32
	Tail        []byte
}

// CompatibleDocument is COMPATIBLE_DOCUMENT.
type CompatibleDocument struct {
	TargetProgram uint32
}

// LayoutCompatibility is LAYOUT_COMPATIBILITY.
type LayoutCompatibility struct {
	Char      uint32
	Paragraph uint32
	Section   uint32
	Object    uint32
	Field     uint32
}

// Records whose layout is not fully specified are kept as raw bytes.
type (
	DocData           struct{ Data []byte }
	DistributeDocData struct{ Data []byte }
	TrackChangeInfo   struct{ Data []byte }
	TrackChange       struct{ Data []byte }
	TrackChangeAuthor struct{ Data []byte }
	ForbiddenChar     struct{ Data []byte }
)

// UnknownDocInfo is a DocInfo record with a tag the decoder does not know, or
// one whose payload failed to decode.
type UnknownDocInfo struct {
	Tag     uint16
	Payload []byte
}

func (*DocumentProperties) docInfoRecord()  {}
func (*IDMappings) docInfoRecord()          {}
func (*BinDataDef) docInfoRecord()          {}
func (*FaceName) docInfoRecord()            {}
func (*BorderFill) docInfoRecord()          {}
func (*CharShape) docInfoRecord()           {}
func (*TabDef) docInfoRecord()              {}
func (*Numbering) docInfoRecord()           {}
func (*Bullet) docInfoRecord()              {}
func (*ParaShape) docInfoRecord()           {}
func (*Style) docInfoRecord()               {}
func (*MemoShape) docInfoRecord()           {}
func (*CompatibleDocument) docInfoRecord()  {}
func (*LayoutCompatibility) docInfoRecord() {}
func (*DocData) docInfoRecord()             {}
func (*DistributeDocData) docInfoRecord()   {}
func (*TrackChangeInfo) docInfoRecord()     {}
func (*TrackChange) docInfoRecord()         {}
func (*TrackChangeAuthor) docInfoRecord()   {}
func (*ForbiddenChar) docInfoRecord()       {}
func (*UnknownDocInfo) docInfoRecord()      {}
