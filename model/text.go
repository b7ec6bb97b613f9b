package model

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// UTF16String decodes little-endian UTF-16 bytes. A trailing odd byte is
// ignored and unpaired surrogates become U+FFFD.
func UTF16String(b []byte) string {
	if len(b)%2 == 1 {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return ""
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// ControlCharKind classifies the control codes 0-31 embedded in paragraph
// text by how many code units they occupy.
type ControlCharKind int

const (
	// NotControl is an ordinary character.
	NotControl ControlCharKind = iota
	// CharControl occupies one code unit (line break, paragraph end, ...).
	CharControl
	// InlineControl occupies eight code units and carries no object.
	InlineControl
	// ExtendedControl occupies eight code units and points at a CTRL_HEADER.
	ExtendedControl
)

// Text control codes with a fixed meaning.
const (
	CharLineBreak     = 10
	CharParaBreak     = 13
	CharHyphen        = 24
	CharBundleBlank   = 30
	CharFixedBlank    = 31
	InlineFieldEnd    = 4
	InlineTitleMark   = 8
	InlineTab         = 9
	ExtSectionColumn  = 2
	ExtFieldStart     = 3
	ExtObject         = 11
	ExtHiddenComment  = 15
	ExtHeaderFooter   = 16
	ExtNote           = 17
	ExtAutoNumber     = 18
	ExtPageControl    = 21
	ExtBookmark       = 22
	ExtOverlapOrRuby  = 23
	controlUnitLength = 8
)

// ClassifyControl returns the kind of a code unit.
func ClassifyControl(c uint16) ControlCharKind {
	if c >= 32 {
		return NotControl
	}
	switch c {
	case 0, 10, 13, 24, 25, 26, 27, 28, 29, 30, 31:
		return CharControl
	case 4, 5, 6, 7, 8, 9, 19, 20:
		return InlineControl
	default:
		return ExtendedControl
	}
}

// TextControl is a control found in paragraph text.
type TextControl struct {
	Position int // code unit index
	Code     uint16
	Kind     ControlCharKind
	CtrlID   uint32 // extended controls only
}

// ParaText is PARA_TEXT: the paragraph's UTF-16 code units with control
// codes left in place.
type ParaText struct {
	Raw []byte
}

func (*ParaText) Kind() RecordKind { return KindParaText }

// Len returns the number of code units.
func (t *ParaText) Len() int { return len(t.Raw) / 2 }

func (t *ParaText) unit(i int) uint16 {
	return binary.LittleEndian.Uint16(t.Raw[2*i:])
}

// Text returns the readable text. Tabs, line breaks, hyphens and fixed
// blanks are kept as characters; every other control is dropped.
func (t *ParaText) Text() string {
	n := t.Len()
	buf := make([]byte, 0, len(t.Raw))
	for i := 0; i < n; {
		c := t.unit(i)
		switch ClassifyControl(c) {
		case NotControl:
			buf = append(buf, t.Raw[2*i], t.Raw[2*i+1])
			i++
		case CharControl:
			switch c {
			case CharLineBreak:
				buf = append(buf, '\n', 0)
			case CharHyphen:
				buf = append(buf, '-', 0)
			case CharBundleBlank, CharFixedBlank:
				buf = append(buf, ' ', 0)
			}
			i++
		default:
			if c == InlineTab {
				buf = append(buf, '\t', 0)
			}
			i += controlUnitLength
		}
	}
	return UTF16String(buf)
}

// Controls lists the control codes in the text in order. Extended controls
// carry the id of the CTRL_HEADER they stand for.
func (t *ParaText) Controls() []TextControl {
	var out []TextControl
	n := t.Len()
	for i := 0; i < n; {
		c := t.unit(i)
		kind := ClassifyControl(c)
		switch kind {
		case NotControl:
			i++
			continue
		case CharControl:
			out = append(out, TextControl{Position: i, Code: c, Kind: kind})
			i++
			continue
		}
		tc := TextControl{Position: i, Code: c, Kind: kind}
		if kind == ExtendedControl && i+3 <= n {
			// The id is stored as two code units, low character first.
			lo, hi := uint32(t.unit(i+1)), uint32(t.unit(i+2))
			tc.CtrlID = hi<<16 | lo
		}
		out = append(out, tc)
		i += controlUnitLength
	}
	return out
}

// ExtractText returns the text of a paragraph list, one paragraph per line,
// descending into controls such as tables and text boxes.
func ExtractText(paragraphs []*Paragraph) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		writeParagraph(&sb, p)
	}
	return sb.String()
}

func writeParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString(p.Text())
	sb.WriteByte('\n')
	for _, rec := range p.Records {
		writeNested(sb, rec)
	}
}

func writeNested(sb *strings.Builder, rec ParagraphRecord) {
	switch r := rec.(type) {
	case *Paragraph:
		writeParagraph(sb, r)
	case *CtrlHeader:
		for _, c := range r.Children {
			writeNested(sb, c)
		}
	case *ShapeElement:
		for _, c := range r.Children {
			writeNested(sb, c)
		}
	case *RawRecord:
		for _, c := range r.Children {
			writeNested(sb, c)
		}
	case *UnknownRecord:
		for _, c := range r.Children {
			writeNested(sb, c)
		}
	}
}
