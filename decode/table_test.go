package decode

import (
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

// payload builds little-endian test payloads.
type payload []byte

func (p payload) u8(v uint8) payload   { return append(p, v) }
func (p payload) u16(v uint16) payload { return binary.LittleEndian.AppendUint16(p, v) }
func (p payload) u32(v uint32) payload { return binary.LittleEndian.AppendUint32(p, v) }
func (p payload) zeros(n int) payload  { return append(p, make([]byte, n)...) }

func (p payload) str(s string) payload {
	rs := []rune(s)
	p = p.u16(uint16(len(rs)))
	for _, r := range rs {
		p = p.u16(uint16(r))
	}
	return p
}

func wantInsufficient(t *testing.T, err error, expected, actual int) {
	t.Helper()
	var ie *InsufficientDataError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InsufficientDataError, got %T (%v)", err, err)
	}
	if ie.Expected != expected || ie.Actual != actual {
		t.Errorf("InsufficientData{expected %d, actual %d}, want {expected %d, actual %d}",
			ie.Expected, ie.Actual, expected, actual)
	}
	if ie.What == "" {
		t.Error("InsufficientDataError does not name the structure")
	}
}

func TestMinimumLengths(t *testing.T) {
	type row struct {
		partition Partition
		key       uint32
		name      string
		min       int
		decode    func([]byte) error
	}
	var rows []row
	for tag, e := range docInfoTable {
		tag := tag
		rows = append(rows, row{PartitionDocInfo, uint32(tag), e.name, e.min, func(b []byte) error {
			_, err := DecodeDocInfoRecord(tag, b)
			return err
		}})
	}
	for tag, e := range bodyTable {
		tag := tag
		rows = append(rows, row{PartitionBodyText, uint32(tag), e.name, e.min, func(b []byte) error {
			_, err := DecodeParagraphRecord(tag, b)
			return err
		}})
	}
	for id, e := range ctrlTable {
		id := id
		rows = append(rows, row{PartitionControl, id, e.name, e.min, func(b []byte) error {
			_, err := DecodeCtrlHeaderData(id, b)
			return err
		}})
	}
	rows = append(rows, row{PartitionControl, '%'<<24 | 'h'<<16 | 'l'<<8 | 'k', "field", 7, func(b []byte) error {
		_, err := DecodeCtrlHeaderData('%'<<24|'h'<<16|'l'<<8|'k', b)
		return err
	}})
	for tag, e := range shapeTable {
		tag := tag
		rows = append(rows, row{PartitionShape, uint32(tag), e.name, e.min, func(b []byte) error {
			_, err := DecodeShapeComponent(tag, b)
			return err
		}})
	}

	for _, r := range rows {
		t.Run(r.partition.String()+"/"+r.name, func(t *testing.T) {
			got, ok := MinLength(r.partition, r.key)
			if !ok || got != r.min {
				t.Fatalf("MinLength() = %d, %v, want %d, true", got, ok, r.min)
			}
			if r.min == 0 {
				if err := r.decode(nil); err != nil {
					t.Errorf("empty payload: unexpected error %v", err)
				}
				return
			}
			err := r.decode(make([]byte, r.min-1))
			wantInsufficient(t, err, r.min, r.min-1)
		})
	}
}

func TestVariableLengths(t *testing.T) {
	tests := []struct {
		name     string
		decode   func([]byte) error
		in       []byte
		expected int
	}{
		{
			"polygon with missing point",
			shapeDecoder(record.TagShapeComponentPolygon),
			payload{}.u16(3).zeros(16),
			2 + 8*3,
		},
		{
			"curve without segment types",
			shapeDecoder(record.TagShapeComponentCurve),
			payload{}.u16(3).zeros(24),
			2 + 8*3 + 2,
		},
		{
			"container with missing child",
			shapeDecoder(record.TagShapeComponentContainer),
			payload{}.u16(2).u32(1),
			2 + 4*2,
		},
		{
			"table row sizes",
			bodyDecoder(record.TagTable),
			payload{}.u32(0).u16(2).u16(2).zeros(10),
			18 + 2*2 + 2,
		},
		{
			"table zones",
			bodyDecoder(record.TagTable),
			payload{}.u32(0).u16(1).u16(1).zeros(10).u16(100).u16(0).u16(1).zeros(4),
			22 + 2 + 10,
		},
		{
			"tab def",
			docInfoDecoder(record.TagTabDef),
			payload{}.u32(0).u32(2).zeros(8),
			8 + 8*2,
		},
		{
			"partial char shape entry",
			bodyDecoder(record.TagParaCharShape),
			payload{}.zeros(12),
			16,
		},
		{
			"column widths",
			ctrlDecoder(model.CtrlColumnDef),
			payload{}.u16(3 << 2).zeros(10),
			12 + 2*3,
		},
		{
			"face name string",
			docInfoDecoder(record.TagFaceName),
			payload{}.u8(0).u16(4).zeros(6),
			3 + 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantInsufficient(t, tt.decode(tt.in), tt.expected, len(tt.in))
		})
	}
}

func TestHugeCounts(t *testing.T) {
	want := int64(8) + 8*int64(math.MaxUint32)
	if want > math.MaxInt {
		want = math.MaxInt
	}
	_, err := DecodeDocInfoRecord(record.TagTabDef, payload{}.u32(0).u32(math.MaxUint32).zeros(8))
	wantInsufficient(t, err, int(want), 16)

	// 0x20000001 * 8 wraps to 8 in 32 bits.
	c := newCursor("tabs", make([]byte, 16))
	if c.needEach(0x20000001, 8) {
		t.Fatal("needEach accepted a count larger than the payload")
	}
	if c.err == nil {
		t.Error("needEach did not record an error")
	}
	if c := newCursor("tabs", make([]byte, 16)); !c.needEach(2, 8) || c.err != nil {
		t.Errorf("needEach(2, 8) on 16 bytes failed: %v", c.err)
	}
}

func shapeDecoder(tag uint16) func([]byte) error {
	return func(b []byte) error { _, err := DecodeShapeComponent(tag, b); return err }
}

func bodyDecoder(tag uint16) func([]byte) error {
	return func(b []byte) error { _, err := DecodeParagraphRecord(tag, b); return err }
}

func docInfoDecoder(tag uint16) func([]byte) error {
	return func(b []byte) error { _, err := DecodeDocInfoRecord(tag, b); return err }
}

func ctrlDecoder(id uint32) func([]byte) error {
	return func(b []byte) error { _, err := DecodeCtrlHeaderData(id, b); return err }
}

func TestUnknownTags(t *testing.T) {
	raw := []byte{1, 2, 3}

	rec, err := DecodeDocInfoRecord(record.Begin+99, raw)
	if err != nil {
		t.Fatalf("DocInfo: %v", err)
	}
	if u, ok := rec.(*model.UnknownDocInfo); !ok || u.Tag != record.Begin+99 || !reflect.DeepEqual(u.Payload, raw) {
		t.Errorf("DocInfo: got %#v", rec)
	}

	prec, err := DecodeParagraphRecord(record.Begin+300, raw)
	if err != nil {
		t.Fatalf("BodyText: %v", err)
	}
	if u, ok := prec.(*model.UnknownRecord); !ok || u.Tag != record.Begin+300 || !reflect.DeepEqual(u.Payload, raw) {
		t.Errorf("BodyText: got %#v", prec)
	}

	ctrl, err := DecodeCtrlHeaderData('z'<<24|'z'<<16|'z'<<8|'z', raw)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if u, ok := ctrl.(*model.CtrlUnknown); !ok || !reflect.DeepEqual(u.Data, raw) {
		t.Errorf("Control: got %#v", ctrl)
	}

	shape, err := DecodeShapeComponent(record.TagParaHeader, raw)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if u, ok := shape.(*model.ShapeUnknown); !ok || u.Tag != record.TagParaHeader {
		t.Errorf("Shape: got %#v", shape)
	}
}

func TestFootnoteEndnote(t *testing.T) {
	in := []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0x00}
	for _, id := range []uint32{model.CtrlFootnote, model.CtrlEndnote} {
		t.Run(model.CtrlIDString(id), func(t *testing.T) {
			data, err := DecodeCtrlHeaderData(id, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := &model.FootnoteEndnote{Number: 3, Attribute: 7, Reserved2: 0}
			if !reflect.DeepEqual(data, want) {
				t.Errorf("got %+v, want %+v", data, want)
			}

			_, err = DecodeCtrlHeaderData(id, in[:7])
			wantInsufficient(t, err, 8, 7)
		})
	}
}

func TestPageHideAndAdjust(t *testing.T) {
	hide, err := DecodeCtrlHeaderData(model.CtrlPageHide, []byte{0x01, 0x00})
	if err != nil {
		t.Fatalf("page hide: %v", err)
	}
	if !reflect.DeepEqual(hide, &model.PageHide{Attribute: 1}) {
		t.Errorf("page hide = %+v", hide)
	}
	if !hide.(*model.PageHide).HideHeader() {
		t.Error("HideHeader() = false")
	}

	adjust, err := DecodeCtrlHeaderData(model.CtrlPageAdjust, []byte{0x02, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("page adjust: %v", err)
	}
	if !reflect.DeepEqual(adjust, &model.PageAdjust{Attribute: 2}) {
		t.Errorf("page adjust = %+v", adjust)
	}
}

func TestCharShape(t *testing.T) {
	base := payload{}.zeros(42).u32(1000).u32(0x3).zeros(2).u32(0x0000FF).zeros(12)

	rec, err := DecodeDocInfoRecord(record.TagCharShape, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs := rec.(*model.CharShape)
	if cs.PointSize() != 10 || !cs.Bold() || !cs.Italic() || cs.TextColor.Hex() != "#ff0000" {
		t.Errorf("char shape = %+v", cs)
	}
	if cs.HasBorderFillID || cs.HasStrikeColor {
		t.Error("optional fields set on a short record")
	}

	rec, err = DecodeDocInfoRecord(record.TagCharShape, base.u16(2).u32(0x00FF00))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs = rec.(*model.CharShape)
	if !cs.HasBorderFillID || cs.BorderFillID != 2 || !cs.HasStrikeColor || cs.StrikeColor != 0x00FF00 {
		t.Errorf("char shape optional fields = %+v", cs)
	}
}

func TestFaceName(t *testing.T) {
	in := payload{}.u8(0x80 | 0x40 | 0x20).str("바탕").u8(1).str("Batang").zeros(10).str("Serif")
	rec, err := DecodeDocInfoRecord(record.TagFaceName, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := rec.(*model.FaceName)
	if f.Name != "바탕" || f.AltType != 1 || f.AltName != "Batang" || len(f.Panose) != 10 || f.DefaultName != "Serif" {
		t.Errorf("face name = %+v", f)
	}
}

func TestBinData(t *testing.T) {
	rec, err := DecodeDocInfoRecord(record.TagBinData, payload{}.u16(0x0001).u16(7).str("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := rec.(*model.BinDataDef)
	if b.Type() != model.BinDataEmbedding || b.BinDataID != 7 || b.StreamName() != "BinData/BIN0007.png" {
		t.Errorf("bin data = %+v", b)
	}

	rec, err = DecodeDocInfoRecord(record.TagBinData, payload{}.u16(0).str(`C:\a.png`).str("a.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l := rec.(*model.BinDataDef); l.AbsolutePath != `C:\a.png` || l.RelativePath != "a.png" {
		t.Errorf("link = %+v", l)
	}
}

func TestNumberingKeepsCompleteLevels(t *testing.T) {
	level := func(p payload, format string) payload {
		return p.u32(0).u16(0).u16(0).u32(0).str(format)
	}
	in := level(level(payload{}, "^1."), "^2)")
	in = in.u32(0) // a third level cut short

	rec, err := DecodeDocInfoRecord(record.TagNumbering, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := rec.(*model.Numbering)
	if n.Levels[0].Format != "^1." || n.Levels[1].Format != "^2)" || n.Levels[2].Format != "" {
		t.Errorf("levels = %+v", n.Levels)
	}
}

func TestParaHeader(t *testing.T) {
	in := payload{}.u32(0x80000005).u32(0x4).u16(3).u8(1).u8(0x04).u16(1).u16(0).u16(1).u32(99)
	rec, err := DecodeParagraphRecord(record.TagParaHeader, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := rec.(*model.Paragraph)
	h := p.Header
	if h.TextLength() != 5 || !h.LastInList() || h.ParaShapeID != 3 || !h.PageBreak() || h.InstanceID != 99 || h.HasTrackMerge {
		t.Errorf("header = %+v", h)
	}

	rec, _ = DecodeParagraphRecord(record.TagParaHeader, in.u16(1))
	if h := rec.(*model.Paragraph).Header; !h.HasTrackMerge || h.TrackMerge != 1 {
		t.Errorf("track merge not read: %+v", h)
	}
}

func TestCtrlHeader(t *testing.T) {
	in := payload{}.u32(model.CtrlSectionDef).u32(0x1).zeros(6).u32(8000).zeros(10)
	rec, err := DecodeParagraphRecord(record.TagCtrlHeader, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := rec.(*model.CtrlHeader)
	def, ok := h.Data.(*model.SectionDef)
	if h.CtrlID != model.CtrlSectionDef || !ok || !def.HideHeader() || def.DefaultTabSpacing != 8000 {
		t.Errorf("ctrl header = %+v, data %+v", h, h.Data)
	}

	_, err = DecodeParagraphRecord(record.TagCtrlHeader, payload{}.u32(model.CtrlFootnote).zeros(3))
	wantInsufficient(t, err, 8, 3)
}

func TestObjectCommon(t *testing.T) {
	fixed := func() payload { return payload{}.u32(0x1).zeros(28).u32(42) }
	tests := []struct {
		name    string
		in      payload
		divide  bool
		desc    string
		tailLen int
	}{
		{"fixed only", fixed(), false, "", 0},
		{"page divide", fixed().u32(2), true, "", 0},
		{"description", fixed().u32(2).str("chart"), true, "chart", 0},
		{"odd tail", fixed().u32(2).u16(9).u8(1), true, "", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeCtrlHeaderData(model.CtrlTable, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			o := data.(*model.ObjectCommon)
			if !o.TreatAsChar() || o.InstanceID != 42 || o.HasPageDivide != tt.divide || o.Description != tt.desc || len(o.Tail) != tt.tailLen {
				t.Errorf("object = %+v", o)
			}
		})
	}
}

func TestShapeComponentDoubledID(t *testing.T) {
	attrs := payload{}.u32(100).u32(200).zeros(4).u32(5000).zeros(26)
	single := payload{}.u32(model.CtrlGenShapeObject).append(attrs)
	doubled := payload{}.u32(model.CtrlGenShapeObject).u32(model.CtrlGenShapeObject).append(attrs)

	for name, in := range map[string]payload{"single": single, "doubled": doubled} {
		t.Run(name, func(t *testing.T) {
			rec, err := DecodeParagraphRecord(record.TagShapeComponent, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			a := rec.(*model.ShapeElement).Attributes
			if a.CtrlID != model.CtrlGenShapeObject || a.OffsetX != 100 || a.OffsetY != 200 || a.InitialWidth != 5000 {
				t.Errorf("attributes = %+v", a)
			}
		})
	}
}

func (p payload) append(q payload) payload { return append(p, q...) }

func TestShapes(t *testing.T) {
	point := func(p payload, x, y uint32) payload { return p.u32(x).u32(y) }

	line, err := DecodeShapeComponent(record.TagShapeComponentLine, point(point(payload{}, 1, 2), 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if l := line.(*model.ShapeLine); l.End != (model.Point{X: 3, Y: 4}) || l.HasAttribute {
		t.Errorf("line = %+v", l)
	}

	curve, err := DecodeShapeComponent(record.TagShapeComponentCurve,
		point(point(point(payload{}.u16(3), 0, 0), 1, 1), 2, 2).u8(1).u8(0))
	if err != nil {
		t.Fatal(err)
	}
	if c := curve.(*model.ShapeCurve); len(c.Points) != 3 || !reflect.DeepEqual(c.SegmentTypes, []uint8{1, 0}) {
		t.Errorf("curve = %+v", c)
	}

	pic, err := DecodeShapeComponent(record.TagShapeComponentPicture, payload{}.zeros(71).u16(4))
	if err != nil {
		t.Fatal(err)
	}
	if p := pic.(*model.ShapePicture); p.BinItemID != 4 {
		t.Errorf("picture = %+v", p)
	}

	art, err := DecodeShapeComponent(record.TagShapeComponentTextArt, []byte{9})
	if err != nil || art.ShapeType() != model.ShapeTypeTextArt {
		t.Errorf("text art = %v, %v", art, err)
	}
}

func TestFileHeader(t *testing.T) {
	h := model.FileHeader{
		Version:        model.ParseVersion(0x05010000),
		Properties:     0x1,
		License:        0x2,
		EncryptVersion: 4,
		KOGLCountry:    6,
	}
	got, err := DecodeFileHeader(EncodeFileHeader(h))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Signature = model.Signature
	if got != h {
		t.Errorf("DecodeFileHeader() = %+v, want %+v", got, h)
	}

	_, err = DecodeFileHeader(make([]byte, 39))
	wantInsufficient(t, err, 40, 39)
}

func TestMinLengthUnknown(t *testing.T) {
	if _, ok := MinLength(PartitionBodyText, uint32(record.Begin+300)); ok {
		t.Error("MinLength reported an unknown body tag")
	}
	if _, ok := MinLength(PartitionDocInfo, 1<<20); ok {
		t.Error("MinLength accepted an out-of-range tag")
	}
	if _, ok := MinLength(Partition(9), 0); ok {
		t.Error("MinLength accepted an unknown partition")
	}
}
