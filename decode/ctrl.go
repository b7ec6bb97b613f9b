package decode

import "github.com/tsawler/hwp/model"

func sectionDef(c *cursor) model.CtrlHeaderData {
	return &model.SectionDef{
		Attribute:         c.u32(),
		ColumnSpacing:     c.i16(),
		VerticalGrid:      c.u16(),
		HorizontalGrid:    c.u16(),
		DefaultTabSpacing: c.u32(),
		NumberingShapeID:  c.u16(),
		PageStart:         c.u16(),
		PictureStart:      c.u16(),
		TableStart:        c.u16(),
		EquationStart:     c.u16(),
		Tail:              c.rest(),
	}
}

func columnDef(c *cursor) model.CtrlHeaderData {
	d := &model.ColumnDef{Attribute: c.u16(), Spacing: c.i16()}
	if !d.SameWidth() {
		n := d.Count()
		if !c.need(2*n + 8) {
			return nil
		}
		d.Widths = make([]uint16, n)
		for i := range d.Widths {
			d.Widths[i] = c.u16()
		}
	}
	d.Attribute2 = c.u16()
	d.SeparatorType = c.u8()
	d.SeparatorThickness = c.u8()
	d.SeparatorColor = c.color()
	return d
}

func objectCommon(c *cursor) model.CtrlHeaderData {
	o := &model.ObjectCommon{
		Attribute:        c.u32(),
		VerticalOffset:   c.i32(),
		HorizontalOffset: c.i32(),
		Width:            c.u32(),
		Height:           c.u32(),
		ZOrder:           c.i32(),
	}
	for i := range o.Margins {
		o.Margins[i] = c.i16()
	}
	o.InstanceID = c.u32()
	if c.remaining() >= 4 {
		o.PageDivide = c.i32()
		o.HasPageDivide = true
	}
	if c.remaining() >= 2 {
		sub := newCursor(c.what, c.b[c.pos:])
		if desc := sub.str(); sub.err == nil {
			o.Description = desc
			c.pos += sub.pos
		}
	}
	o.Tail = c.rest()
	return o
}

func headerFooter(c *cursor) model.CtrlHeaderData {
	return &model.HeaderFooter{Attribute: c.u32(), Tail: c.rest()}
}

func footnoteEndnote(c *cursor) model.CtrlHeaderData {
	n := &model.FootnoteEndnote{Number: c.u8()}
	copy(n.Reserved1[:], c.take(5))
	n.Attribute = c.u8()
	n.Reserved2 = c.u8()
	n.Tail = c.rest()
	return n
}

func autoNumber(c *cursor) model.CtrlHeaderData {
	return &model.AutoNumber{
		Attribute:  c.u32(),
		Number:     c.u16(),
		UserSymbol: c.u16(),
		Prefix:     c.u16(),
		Suffix:     c.u16(),
		Tail:       c.rest(),
	}
}

func newNumber(c *cursor) model.CtrlHeaderData {
	return &model.NewNumber{Attribute: c.u32(), Number: c.u16(), Tail: c.rest()}
}

func pageHide(c *cursor) model.CtrlHeaderData {
	return &model.PageHide{Attribute: c.u16(), Tail: c.rest()}
}

func pageAdjust(c *cursor) model.CtrlHeaderData {
	return &model.PageAdjust{Attribute: c.u32(), Tail: c.rest()}
}

func pageNumberPosition(c *cursor) model.CtrlHeaderData {
	return &model.PageNumberPosition{
		Attribute:  c.u32(),
		UserSymbol: c.u16(),
		Prefix:     c.u16(),
		Suffix:     c.u16(),
		Dash:       c.u16(),
		Tail:       c.rest(),
	}
}

func field(c *cursor) model.CtrlHeaderData {
	f := &model.Field{
		Attribute:      c.u32(),
		ExtraAttribute: c.u8(),
		Command:        c.str(),
	}
	if c.remaining() >= 4 {
		f.InstanceID = c.u32()
	}
	f.Tail = c.rest()
	return f
}

func bookmark(c *cursor) model.CtrlHeaderData {
	return &model.Bookmark{Tail: c.rest()}
}

func ctrlRaw(c *cursor) model.CtrlHeaderData {
	return &model.CtrlRaw{Data: c.rest()}
}
