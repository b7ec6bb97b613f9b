package decode

import (
	"errors"
	"testing"

	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

type rec struct {
	tag   uint16
	level uint16
	data  []byte
}

func stream(recs ...rec) []byte {
	var buf []byte
	for _, r := range recs {
		buf = record.Encode(buf, r.tag, r.level, r.data)
	}
	return buf
}

func mustTree(t *testing.T, buf []byte) *record.Tree {
	t.Helper()
	tree, errs := record.Parse(buf)
	if len(errs) != 0 {
		t.Fatalf("record.Parse: %v", errs)
	}
	return tree
}

func paraHeaderPayload() payload { return payload{}.u32(0).zeros(18) }

func textPayload(s string) payload {
	p := payload{}
	for _, r := range s {
		p = p.u16(uint16(r))
	}
	return p.u16(13)
}

func TestDocInfoWalk(t *testing.T) {
	buf := stream(
		rec{record.TagDocumentProperties, 0, payload{}.u16(1).zeros(24)},
		rec{record.TagIDMappings, 0, payload{}.u32(0).u32(2)},
		rec{record.TagFaceName, 1, payload{}.u8(0).str("A")},
		rec{record.TagFaceName, 1, []byte{0}},
		rec{record.TagCharShape, 1, payload{}.zeros(68)},
		rec{record.Begin + 90, 1, []byte{1}},
	)
	d, errs := DocInfo(mustTree(t, buf))

	if d.Properties == nil || d.Properties.SectionCount != 1 {
		t.Errorf("Properties = %+v", d.Properties)
	}
	if d.IDMappings.Count(model.IDFaceHangul) != 2 {
		t.Errorf("IDMappings = %+v", d.IDMappings)
	}
	if len(d.FaceNames) != 2 || d.FaceNames[0].Name != "A" || d.FaceNames[1] != nil {
		t.Errorf("FaceNames = %v", d.FaceNames)
	}
	if len(d.CharShapes) != 1 || d.CharShape(0) == nil {
		t.Errorf("CharShapes = %v", d.CharShapes)
	}
	if len(d.Records) != 6 {
		t.Fatalf("Records has %d entries, want 6", len(d.Records))
	}
	if u, ok := d.Records[3].(*model.UnknownDocInfo); !ok || u.Tag != record.TagFaceName {
		t.Errorf("failed record kept as %#v", d.Records[3])
	}
	if _, ok := d.Records[5].(*model.UnknownDocInfo); !ok {
		t.Errorf("unknown tag kept as %#v", d.Records[5])
	}

	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	var re *RecordError
	if !errors.As(errs[0], &re) || re.Tag != record.TagFaceName {
		t.Fatalf("diagnostic = %v", errs[0])
	}
	wantInsufficient(t, errs[0], 3, 1)
}

func TestDocInfoWalkEmpty(t *testing.T) {
	d, errs := DocInfo(&record.Tree{})
	if len(errs) != 0 || len(d.Records) != 0 || d.Properties != nil {
		t.Errorf("DocInfo(empty) = %+v, %v", d, errs)
	}
}

func objectPayload(id uint32) payload {
	return payload{}.u32(id).zeros(36)
}

func TestSectionWalk(t *testing.T) {
	buf := stream(
		rec{record.TagParaHeader, 0, paraHeaderPayload()},
		rec{record.TagParaText, 1, textPayload("Hi")},
		rec{record.TagCtrlHeader, 1, objectPayload(model.CtrlTable)},
		rec{record.TagTable, 2, payload{}.u32(0).u16(1).u16(1).zeros(10).u16(300).u16(1)},
		rec{record.TagListHeader, 2, payload{}.u16(1).zeros(6).zeros(26)},
		rec{record.TagParaHeader, 2, paraHeaderPayload()},
		rec{record.TagParaText, 3, textPayload("cell")},
		rec{record.TagCtrlHeader, 1, payload{}.u32(model.CtrlFootnote).zeros(3)},
		rec{record.TagListHeader, 2, payload{}.u16(1).zeros(6)},
		rec{record.TagParaHeader, 2, paraHeaderPayload()},
		rec{record.TagParaText, 3, textPayload("note")},
		rec{record.TagCtrlHeader, 1, objectPayload(model.CtrlGenShapeObject)},
		rec{record.TagShapeComponent, 2, payload{}.u32(model.CtrlGenShapeObject).zeros(42)},
		rec{record.TagShapeComponentRectangle, 3, payload{}.u8(20).zeros(32)},
		rec{record.TagListHeader, 3, payload{}.u16(1).zeros(6)},
		rec{record.TagParaHeader, 3, paraHeaderPayload()},
		rec{record.TagParaText, 4, textPayload("box")},
		rec{record.TagParaHeader, 0, paraHeaderPayload()},
		rec{record.TagParaText, 1, textPayload("second")},
		rec{record.Begin + 200, 1, []byte{7}},
	)

	s, errs := Section(3, mustTree(t, buf))
	if s.Index != 3 {
		t.Errorf("Index = %d", s.Index)
	}
	if len(s.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(s.Paragraphs))
	}

	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	wantInsufficient(t, errs[0], 8, 3)

	first := s.Paragraphs[0].Records
	if len(first) != 4 {
		t.Fatalf("first paragraph has %d records, want 4", len(first))
	}

	tbl, ok := first[1].(*model.CtrlHeader)
	if !ok || tbl.CtrlID != model.CtrlTable || len(tbl.Children) != 3 {
		t.Fatalf("table control = %#v", first[1])
	}
	if tab, ok := tbl.Children[0].(*model.Table); !ok || tab.RowSizes[0] != 300 {
		t.Errorf("table record = %#v", tbl.Children[0])
	}
	if cells := tbl.Paragraphs(); len(cells) != 1 || cells[0].Text() != "cell" {
		t.Errorf("cell paragraphs = %v", cells)
	}

	fn, ok := first[2].(*model.CtrlHeader)
	if !ok || fn.CtrlID != model.CtrlFootnote {
		t.Fatalf("footnote control = %#v", first[2])
	}
	if _, ok := fn.Data.(*model.CtrlUnknown); !ok {
		t.Errorf("footnote data = %#v, want *model.CtrlUnknown", fn.Data)
	}
	if len(fn.Paragraphs()) != 1 {
		t.Errorf("footnote body lost: %v", fn.Children)
	}

	gso := first[3].(*model.CtrlHeader)
	if len(gso.Children) != 1 {
		t.Fatalf("drawing object children = %v", gso.Children)
	}
	el, ok := gso.Children[0].(*model.ShapeElement)
	if !ok {
		t.Fatalf("drawing object child = %#v", gso.Children[0])
	}
	if r, ok := el.Shape.(*model.ShapeRectangle); !ok || r.Curvature != 20 {
		t.Errorf("shape = %#v", el.Shape)
	}
	if len(el.Children) != 2 {
		t.Errorf("shape element children = %v", el.Children)
	}

	second := s.Paragraphs[1].Records
	if u, ok := second[1].(*model.UnknownRecord); !ok || u.Tag != record.Begin+200 {
		t.Errorf("unknown record = %#v", second[1])
	}

	want := "Hi\ncell\nnote\nbox\nsecond\n"
	if got := model.ExtractText(s.Paragraphs); got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestSectionWalkEmpty(t *testing.T) {
	s, errs := Section(0, mustTree(t, nil))
	if len(errs) != 0 || len(s.Paragraphs) != 0 {
		t.Errorf("Section(empty) = %+v, %v", s, errs)
	}
}

func TestSectionWalkStrayRecords(t *testing.T) {
	buf := stream(
		rec{record.TagParaText, 0, textPayload("lost")},
		rec{record.TagParaHeader, 0, paraHeaderPayload()},
		rec{record.TagParaText, 2, textPayload("jump")},
	)
	tree, nesting := record.Parse(buf)
	if len(nesting) != 1 {
		t.Fatalf("expected one nesting error, got %v", nesting)
	}

	s, errs := Section(0, tree)
	if len(s.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(s.Paragraphs))
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrOrphanRecord) {
		t.Errorf("diagnostics = %v, want ErrOrphanRecord", errs)
	}
	// The demoted record stays with the paragraph before it.
	if got := s.Paragraphs[0].Records; len(got) != 1 || got[0].Kind() != model.KindParaText {
		t.Errorf("paragraph records = %v", got)
	}
}

func TestSectionWalkBadShape(t *testing.T) {
	buf := stream(
		rec{record.TagParaHeader, 0, paraHeaderPayload()},
		rec{record.TagCtrlHeader, 1, objectPayload(model.CtrlGenShapeObject)},
		rec{record.TagShapeComponent, 2, payload{}.u32(model.CtrlGenShapeObject).zeros(42)},
		rec{record.TagShapeComponentPolygon, 3, payload{}.u16(4).zeros(8)},
	)
	s, errs := Section(0, mustTree(t, buf))
	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	wantInsufficient(t, errs[0], 34, 10)

	gso := s.Paragraphs[0].Records[0].(*model.CtrlHeader)
	el := gso.Children[0].(*model.ShapeElement)
	if u, ok := el.Shape.(*model.ShapeUnknown); !ok || u.Tag != record.TagShapeComponentPolygon {
		t.Errorf("shape = %#v, want *model.ShapeUnknown", el.Shape)
	}
}
