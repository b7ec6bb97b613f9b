package decode

import "github.com/tsawler/hwp/model"

func documentProperties(c *cursor) model.DocInfoRecord {
	return &model.DocumentProperties{
		SectionCount:  c.u16(),
		PageStart:     c.u16(),
		FootnoteStart: c.u16(),
		EndnoteStart:  c.u16(),
		PictureStart:  c.u16(),
		TableStart:    c.u16(),
		EquationStart: c.u16(),
		CaretListID:   c.u32(),
		CaretParaID:   c.u32(),
		CaretCharPos:  c.u32(),
	}
}

func idMappings(c *cursor) model.DocInfoRecord {
	m := &model.IDMappings{Counts: make([]int32, 0, c.remaining()/4)}
	for c.remaining() >= 4 {
		m.Counts = append(m.Counts, c.i32())
	}
	return m
}

func binData(c *cursor) model.DocInfoRecord {
	b := &model.BinDataDef{Attribute: c.u16()}
	switch b.Type() {
	case model.BinDataLink:
		b.AbsolutePath = c.str()
		b.RelativePath = c.str()
	case model.BinDataEmbedding:
		b.BinDataID = c.u16()
		b.Extension = c.str()
	case model.BinDataStorage:
		b.BinDataID = c.u16()
	}
	return b
}

func faceName(c *cursor) model.DocInfoRecord {
	f := &model.FaceName{Attribute: c.u8(), Name: c.str()}
	if f.HasAlternate() {
		f.AltType = c.u8()
		f.AltName = c.str()
	}
	if f.HasPanose() {
		f.Panose = c.take(10)
	}
	if f.HasDefault() {
		f.DefaultName = c.str()
	}
	return f
}

func borderLine(c *cursor) model.BorderLine {
	return model.BorderLine{Type: c.u8(), Thickness: c.u8(), Color: c.color()}
}

func borderFill(c *cursor) model.DocInfoRecord {
	b := &model.BorderFill{Attribute: c.u16()}
	for i := range b.Borders {
		b.Borders[i] = borderLine(c)
	}
	b.Diagonal = borderLine(c)
	b.Fill = c.rest()
	return b
}

func charShape(c *cursor) model.DocInfoRecord {
	s := &model.CharShape{}
	for i := range s.FaceNameIDs {
		s.FaceNameIDs[i] = c.u16()
	}
	for i := range s.Ratios {
		s.Ratios[i] = c.u8()
	}
	for i := range s.Spacings {
		s.Spacings[i] = c.i8()
	}
	for i := range s.RelativeSizes {
		s.RelativeSizes[i] = c.u8()
	}
	for i := range s.Offsets {
		s.Offsets[i] = c.i8()
	}
	s.BaseSize = c.i32()
	s.Attribute = c.u32()
	s.ShadowGapX = c.i8()
	s.ShadowGapY = c.i8()
	s.TextColor = c.color()
	s.UnderlineColor = c.color()
	s.ShadeColor = c.color()
	s.ShadowColor = c.color()
	if c.remaining() >= 2 {
		s.BorderFillID = c.u16()
		s.HasBorderFillID = true
	}
	if c.remaining() >= 4 {
		s.StrikeColor = c.color()
		s.HasStrikeColor = true
	}
	return s
}

func tabDef(c *cursor) model.DocInfoRecord {
	t := &model.TabDef{Attribute: c.u32()}
	n := c.u32()
	if !c.needEach(n, 8) {
		return nil
	}
	t.Tabs = make([]model.Tab, n)
	for i := range t.Tabs {
		t.Tabs[i] = model.Tab{Position: c.u32(), Type: c.u8(), FillType: c.u8()}
		c.skip(2)
	}
	return t
}

func paraHead(c *cursor) model.ParaHeadInfo {
	return model.ParaHeadInfo{
		Attribute:   c.u32(),
		WidthAdjust: c.u16(),
		TextOffset:  c.u16(),
		CharShapeID: c.u32(),
	}
}

func numbering(c *cursor) model.DocInfoRecord {
	n := &model.Numbering{}
	for i := range n.Levels {
		// Each level is tried on its own so a short record keeps the
		// levels that are complete.
		sub := newCursor(c.what, c.b[c.pos:])
		lvl := model.NumberingLevel{Head: paraHead(sub), Format: sub.str()}
		if sub.err != nil {
			break
		}
		n.Levels[i] = lvl
		c.pos += sub.pos
	}
	if c.remaining() >= 2 {
		n.StartNumber = c.u16()
	}
	n.Tail = c.rest()
	return n
}

func bullet(c *cursor) model.DocInfoRecord {
	return &model.Bullet{Head: paraHead(c), Char: c.u16(), Tail: c.rest()}
}

func paraShape(c *cursor) model.DocInfoRecord {
	p := &model.ParaShape{
		Attribute1:    c.u32(),
		LeftMargin:    c.i32(),
		RightMargin:   c.i32(),
		Indent:        c.i32(),
		SpacingBefore: c.i32(),
		SpacingAfter:  c.i32(),
		LineSpacing:   c.i32(),
		TabDefID:      c.u16(),
		NumberingID:   c.u16(),
		BorderFillID:  c.u16(),
	}
	for i := range p.BorderOffsets {
		p.BorderOffsets[i] = c.i16()
	}
	if c.remaining() >= 4 {
		p.Attribute2 = c.u32()
	}
	if c.remaining() >= 4 {
		p.Attribute3 = c.u32()
	}
	if c.remaining() >= 4 {
		p.LineSpacing2 = c.u32()
	}
	p.Tail = c.rest()
	return p
}

func style(c *cursor) model.DocInfoRecord {
	return &model.Style{
		LocalName:   c.str(),
		EnglishName: c.str(),
		Attribute:   c.u8(),
		NextStyleID: c.u8(),
		LanguageID:  c.i16(),
		ParaShapeID: c.u16(),
		CharShapeID: c.u16(),
		Tail:        c.rest(),
	}
}

func compatibleDocument(c *cursor) model.DocInfoRecord {
	return &model.CompatibleDocument{TargetProgram: c.u32()}
}

func layoutCompatibility(c *cursor) model.DocInfoRecord {
	return &model.LayoutCompatibility{
		Char:      c.u32(),
		Paragraph: c.u32(),
		Section:   c.u32(),
		Object:    c.u32(),
		Field:     c.u32(),
	}
}

func memoShape(c *cursor) model.DocInfoRecord {
	return &model.MemoShape{
		Width:       c.u32(),
		LineWidth:   c.u8(),
		LineType:    c.u8(),
		LineColor:   c.color(),
		FillColor:   c.color(),
		ActiveColor: c.color(),
		MemoType:    c.u32(),
		Tail:        c.rest(),
	}
}

func docData(c *cursor) model.DocInfoRecord { return &model.DocData{Data: c.rest()} }

func distributeDocData(c *cursor) model.DocInfoRecord {
	return &model.DistributeDocData{Data: c.rest()}
}

func trackChangeInfo(c *cursor) model.DocInfoRecord {
	return &model.TrackChangeInfo{Data: c.rest()}
}

func trackChange(c *cursor) model.DocInfoRecord { return &model.TrackChange{Data: c.rest()} }

func trackChangeAuthor(c *cursor) model.DocInfoRecord {
	return &model.TrackChangeAuthor{Data: c.rest()}
}

func forbiddenChar(c *cursor) model.DocInfoRecord { return &model.ForbiddenChar{Data: c.rest()} }
