package decode

import (
	"encoding/binary"

	"github.com/tsawler/hwp/model"
)

func paraHeader(c *cursor) model.ParagraphRecord {
	h := model.ParaHeader{
		Chars:          c.u32(),
		ControlMask:    c.u32(),
		ParaShapeID:    c.u16(),
		StyleID:        c.u8(),
		BreakType:      c.u8(),
		CharShapeCount: c.u16(),
		RangeTagCount:  c.u16(),
		LineSegCount:   c.u16(),
		InstanceID:     c.u32(),
	}
	if c.remaining() >= 2 {
		h.TrackMerge = c.u16()
		h.HasTrackMerge = true
	}
	return &model.Paragraph{Header: h}
}

func paraText(c *cursor) model.ParagraphRecord {
	return &model.ParaText{Raw: c.rest()}
}

// entries calls fn once per size-byte entry. A partial trailing entry is an
// error.
func entries(c *cursor, size int, fn func()) {
	for c.remaining() >= size {
		fn()
	}
	if c.remaining() > 0 {
		c.need(size)
	}
}

func paraCharShape(c *cursor) model.ParagraphRecord {
	p := &model.ParaCharShape{Refs: make([]model.CharShapeRef, 0, c.remaining()/8)}
	entries(c, 8, func() {
		p.Refs = append(p.Refs, model.CharShapeRef{Position: c.u32(), CharShapeID: c.u32()})
	})
	return p
}

func paraLineSeg(c *cursor) model.ParagraphRecord {
	p := &model.ParaLineSeg{Lines: make([]model.LineSeg, 0, c.remaining()/36)}
	entries(c, 36, func() {
		p.Lines = append(p.Lines, model.LineSeg{
			TextStart:    c.u32(),
			VerticalPos:  c.i32(),
			LineHeight:   c.i32(),
			TextHeight:   c.i32(),
			BaselineGap:  c.i32(),
			LineSpacing:  c.i32(),
			ColumnStart:  c.i32(),
			SegmentWidth: c.i32(),
			Tag:          c.u32(),
		})
	})
	return p
}

func paraRangeTag(c *cursor) model.ParagraphRecord {
	p := &model.ParaRangeTag{Tags: make([]model.RangeTag, 0, c.remaining()/12)}
	entries(c, 12, func() {
		p.Tags = append(p.Tags, model.RangeTag{Start: c.u32(), End: c.u32(), Tag: c.u32()})
	})
	return p
}

func ctrlHeader(c *cursor) model.ParagraphRecord {
	h := &model.CtrlHeader{CtrlID: c.u32()}
	data, err := DecodeCtrlHeaderData(h.CtrlID, c.rest())
	if err != nil {
		c.err = err
		return nil
	}
	h.Data = data
	return h
}

func listHeader(c *cursor) model.ParagraphRecord {
	return &model.ListHeader{
		ParagraphCount: c.i16(),
		Reserved:       c.u16(),
		Attribute:      c.u32(),
		Tail:           c.rest(),
	}
}

func pageDef(c *cursor) model.ParagraphRecord {
	return &model.PageDef{
		Width:        c.u32(),
		Height:       c.u32(),
		LeftMargin:   c.u32(),
		RightMargin:  c.u32(),
		TopMargin:    c.u32(),
		BottomMargin: c.u32(),
		HeaderMargin: c.u32(),
		FooterMargin: c.u32(),
		GutterMargin: c.u32(),
		Attribute:    c.u32(),
	}
}

func footnoteShape(c *cursor) model.ParagraphRecord {
	return &model.FootnoteShape{
		Attribute:          c.u32(),
		UserSymbol:         c.u16(),
		Prefix:             c.u16(),
		Suffix:             c.u16(),
		StartNumber:        c.u16(),
		DividerLength:      c.i16(),
		DividerMarginTop:   c.i16(),
		DividerMarginBelow: c.i16(),
		NoteSpacing:        c.i16(),
		DividerType:        c.u8(),
		DividerThickness:   c.u8(),
		DividerColor:       c.color(),
		Tail:               c.rest(),
	}
}

func pageBorderFill(c *cursor) model.ParagraphRecord {
	p := &model.PageBorderFill{Attribute: c.u32()}
	for i := range p.Gaps {
		p.Gaps[i] = c.i16()
	}
	p.BorderFillID = c.u16()
	return p
}

// shapeComponent decodes the element attributes only. The primitive record
// and nested content are attached by the section walker.
func shapeComponent(c *cursor) model.ParagraphRecord {
	a := model.ShapeAttributes{CtrlID: c.u32()}
	// Top-level drawing objects repeat the control id.
	if c.remaining() >= 46 && peekU32(c) == a.CtrlID {
		c.skip(4)
	}
	a.OffsetX = c.i32()
	a.OffsetY = c.i32()
	a.GroupLevel = c.u16()
	a.LocalVersion = c.u16()
	a.InitialWidth = c.u32()
	a.InitialHeight = c.u32()
	a.Width = c.u32()
	a.Height = c.u32()
	a.Flip = c.u32()
	a.Rotation = c.i16()
	a.CenterX = c.i32()
	a.CenterY = c.i32()
	a.Rendering = c.rest()
	return &model.ShapeElement{Attributes: a}
}

func peekU32(c *cursor) uint32 {
	if c.remaining() < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(c.b[c.pos:])
}

func table(c *cursor) model.ParagraphRecord {
	t := &model.Table{
		Attribute:   c.u32(),
		Rows:        c.u16(),
		Cols:        c.u16(),
		CellSpacing: c.i16(),
	}
	for i := range t.Margins {
		t.Margins[i] = c.i16()
	}
	if !c.need(2*int(t.Rows) + 2) {
		return nil
	}
	t.RowSizes = make([]uint16, t.Rows)
	for i := range t.RowSizes {
		t.RowSizes[i] = c.u16()
	}
	t.BorderFillID = c.u16()
	if c.remaining() >= 2 {
		n := int(c.u16())
		if !c.need(10 * n) {
			return nil
		}
		t.Zones = make([]model.CellZone, n)
		for i := range t.Zones {
			t.Zones[i] = model.CellZone{
				StartCol:     c.u16(),
				StartRow:     c.u16(),
				EndCol:       c.u16(),
				EndRow:       c.u16(),
				BorderFillID: c.u16(),
			}
		}
	}
	t.Tail = c.rest()
	return t
}

func ctrlData(c *cursor) model.ParagraphRecord {
	return &model.CtrlData{Data: c.rest()}
}

func eqEdit(c *cursor) model.ParagraphRecord {
	e := &model.EqEdit{Attribute: c.u32(), Script: c.str()}
	if c.remaining() >= 4 {
		e.FontSize = c.u32()
	}
	if c.remaining() >= 4 {
		e.Color = c.color()
	}
	if c.remaining() >= 2 {
		e.Baseline = c.i16()
	}
	e.Tail = c.rest()
	return e
}

func rawBody(tag uint16) func(c *cursor) model.ParagraphRecord {
	return func(c *cursor) model.ParagraphRecord {
		return &model.RawRecord{Tag: tag, Data: c.rest()}
	}
}
