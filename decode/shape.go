package decode

import (
	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

func shapeLine(c *cursor) model.ShapeComponent {
	l := &model.ShapeLine{Start: c.point(), End: c.point()}
	if c.remaining() >= 2 {
		l.Attribute = c.u16()
		l.HasAttribute = true
	}
	return l
}

func shapeRectangle(c *cursor) model.ShapeComponent {
	r := &model.ShapeRectangle{Curvature: c.u8()}
	for i := range r.Corners {
		r.Corners[i] = c.point()
	}
	return r
}

func shapeEllipse(c *cursor) model.ShapeComponent {
	return &model.ShapeEllipse{
		Attribute: c.u32(),
		Center:    c.point(),
		Axis1:     c.point(),
		Axis2:     c.point(),
		Start1:    c.point(),
		End1:      c.point(),
		Start2:    c.point(),
		End2:      c.point(),
	}
}

func shapeArc(c *cursor) model.ShapeComponent {
	return &model.ShapeArc{
		ArcType: c.u8(),
		Center:  c.point(),
		Axis1:   c.point(),
		Axis2:   c.point(),
	}
}

func points(c *cursor, n int) []model.Point {
	pts := make([]model.Point, n)
	for i := range pts {
		pts[i] = c.point()
	}
	return pts
}

func shapePolygon(c *cursor) model.ShapeComponent {
	n := int(c.u16())
	if !c.need(8 * n) {
		return nil
	}
	return &model.ShapePolygon{Points: points(c, n)}
}

func shapeCurve(c *cursor) model.ShapeComponent {
	n := int(c.u16())
	segments := 0
	if n > 0 {
		segments = n - 1
	}
	if !c.need(8*n + segments) {
		return nil
	}
	s := &model.ShapeCurve{Points: points(c, n)}
	if segments > 0 {
		s.SegmentTypes = append([]uint8(nil), c.take(segments)...)
	}
	return s
}

func shapeOLE(c *cursor) model.ShapeComponent {
	return &model.ShapeOLE{
		Attribute:       c.u32(),
		ExtentX:         c.i32(),
		ExtentY:         c.i32(),
		BinDataID:       c.u16(),
		BorderColor:     c.color(),
		BorderThickness: c.i32(),
		BorderAttribute: c.u32(),
		Tail:            c.rest(),
	}
}

func shapePicture(c *cursor) model.ShapeComponent {
	p := &model.ShapePicture{
		BorderColor:     c.color(),
		BorderThickness: c.i32(),
		BorderAttribute: c.u32(),
	}
	for i := range p.Rect {
		p.Rect[i] = c.point()
	}
	p.Crop = model.Crop{Left: c.i32(), Top: c.i32(), Right: c.i32(), Bottom: c.i32()}
	for i := range p.Padding {
		p.Padding[i] = c.i16()
	}
	p.Brightness = c.i8()
	p.Contrast = c.i8()
	p.Effect = c.u8()
	p.BinItemID = c.u16()
	p.Tail = c.rest()
	return p
}

func shapeContainer(c *cursor) model.ShapeComponent {
	n := int(c.u16())
	if !c.need(4 * n) {
		return nil
	}
	s := &model.ShapeContainer{ChildIDs: make([]uint32, n)}
	for i := range s.ChildIDs {
		s.ChildIDs[i] = c.u32()
	}
	return s
}

func shapeTextArt(c *cursor) model.ShapeComponent {
	return &model.ShapeTextArt{Data: c.rest()}
}

func shapeUnknown(c *cursor) model.ShapeComponent {
	return &model.ShapeUnknown{Tag: record.TagShapeComponentUnknown, Data: c.rest()}
}
