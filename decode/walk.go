package decode

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

// ErrOrphanRecord reports a top-level BodyText record that precedes the
// first paragraph. The record is dropped.
var ErrOrphanRecord = errors.New("decode: record outside any paragraph")

// RecordError places a decode failure in its stream.
type RecordError struct {
	Offset int
	Tag    uint16
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("decode: %s at offset %d: %v", record.TagName(e.Tag), e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// DocInfo decodes every record of a DocInfo tree, depth first. Resource
// records are children of ID_MAPPINGS, so nesting is flattened: each table
// receives its records in stream order. A record that fails to decode
// occupies a nil slot in its table and an *model.UnknownDocInfo in Records.
func DocInfo(tree *record.Tree) (model.DocInfo, []error) {
	var (
		d    model.DocInfo
		errs []error
	)
	var visit func(i int)
	visit = func(i int) {
		r := tree.Node(i)
		rec, err := DecodeDocInfoRecord(r.Tag, r.Payload)
		if err != nil {
			errs = append(errs, &RecordError{Offset: r.Offset, Tag: r.Tag, Err: err})
			rec = &model.UnknownDocInfo{Tag: r.Tag, Payload: r.Payload}
		}
		place(&d, r.Tag, rec)
		for _, c := range r.Children {
			visit(c)
		}
	}
	for _, i := range tree.Roots {
		visit(i)
	}
	return d, errs
}

// slot returns rec as a *T, or nil when the record failed to decode.
func slot[T any](rec model.DocInfoRecord) *T {
	v, _ := any(rec).(*T)
	return v
}

func place(d *model.DocInfo, tag uint16, rec model.DocInfoRecord) {
	d.Records = append(d.Records, rec)
	switch tag {
	case record.TagDocumentProperties:
		d.Properties = slot[model.DocumentProperties](rec)
	case record.TagIDMappings:
		d.IDMappings = slot[model.IDMappings](rec)
	case record.TagBinData:
		d.BinData = append(d.BinData, slot[model.BinDataDef](rec))
	case record.TagFaceName:
		d.FaceNames = append(d.FaceNames, slot[model.FaceName](rec))
	case record.TagBorderFill:
		d.BorderFills = append(d.BorderFills, slot[model.BorderFill](rec))
	case record.TagCharShape:
		d.CharShapes = append(d.CharShapes, slot[model.CharShape](rec))
	case record.TagTabDef:
		d.TabDefs = append(d.TabDefs, slot[model.TabDef](rec))
	case record.TagNumbering:
		d.Numberings = append(d.Numberings, slot[model.Numbering](rec))
	case record.TagBullet:
		d.Bullets = append(d.Bullets, slot[model.Bullet](rec))
	case record.TagParaShape:
		d.ParaShapes = append(d.ParaShapes, slot[model.ParaShape](rec))
	case record.TagStyle:
		d.Styles = append(d.Styles, slot[model.Style](rec))
	case record.TagMemoShape:
		d.MemoShapes = append(d.MemoShapes, slot[model.MemoShape](rec))
	case record.TagTrackChangeAuthor:
		d.TrackChangeAuthors = append(d.TrackChangeAuthors, slot[model.TrackChangeAuthor](rec))
	case record.TagTrackChange:
		d.TrackChanges = append(d.TrackChanges, slot[model.TrackChange](rec))
	case record.TagForbiddenChar:
		d.ForbiddenChars = append(d.ForbiddenChars, slot[model.ForbiddenChar](rec))
	case record.TagCompatibleDocument:
		d.CompatibleDocument = slot[model.CompatibleDocument](rec)
	case record.TagLayoutCompatibility:
		d.LayoutCompatibility = slot[model.LayoutCompatibility](rec)
	}
}

// Section decodes one BodyText section tree. Level-0 PARA_HEADER records
// become the section's paragraphs; other top-level records, which only occur
// after nesting errors, are kept with the preceding paragraph.
func Section(index int, tree *record.Tree) (model.Section, []error) {
	w := &sectionWalker{tree: tree}
	s := model.Section{Index: index}
	for _, i := range tree.Roots {
		rec := w.node(i)
		if p, ok := rec.(*model.Paragraph); ok {
			s.Paragraphs = append(s.Paragraphs, p)
			continue
		}
		if n := len(s.Paragraphs); n > 0 {
			last := s.Paragraphs[n-1]
			last.Records = append(last.Records, rec)
			continue
		}
		w.fail(tree.Node(i), ErrOrphanRecord)
	}
	return s, w.errs
}

type sectionWalker struct {
	tree *record.Tree
	errs []error
}

func (w *sectionWalker) fail(r *record.Record, err error) {
	w.errs = append(w.errs, &RecordError{Offset: r.Offset, Tag: r.Tag, Err: err})
}

func (w *sectionWalker) node(i int) model.ParagraphRecord {
	r := w.tree.Node(i)
	rec, err := DecodeParagraphRecord(r.Tag, r.Payload)
	if err != nil {
		w.fail(r, err)
		rec = fallback(r)
	}

	switch v := rec.(type) {
	case *model.Paragraph:
		v.Records = w.children(r.Children)
	case *model.CtrlHeader:
		v.Children = w.children(r.Children)
	case *model.ShapeElement:
		w.shape(v, r.Children)
	case *model.RawRecord:
		v.Children = w.children(r.Children)
	case *model.UnknownRecord:
		v.Children = w.children(r.Children)
	}
	return rec
}

func (w *sectionWalker) children(idx []int) []model.ParagraphRecord {
	if len(idx) == 0 {
		return nil
	}
	out := make([]model.ParagraphRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, w.node(i))
	}
	return out
}

// shape takes the first shape-partition child as the element's primitive.
// Everything else, including nested shape elements of a container, stays in
// Children.
func (w *sectionWalker) shape(e *model.ShapeElement, idx []int) {
	for _, i := range idx {
		r := w.tree.Node(i)
		if e.Shape != nil || !IsShapeTag(r.Tag) {
			e.Children = append(e.Children, w.node(i))
			continue
		}
		s, err := DecodeShapeComponent(r.Tag, r.Payload)
		if err != nil {
			w.fail(r, err)
			s = &model.ShapeUnknown{Tag: r.Tag, Data: r.Payload}
		}
		e.Shape = s
		e.Children = append(e.Children, w.children(r.Children)...)
	}
}

// fallback keeps an undecodable record. A control header whose data is bad
// still carries its id so its nested paragraphs stay reachable.
func fallback(r *record.Record) model.ParagraphRecord {
	if r.Tag == record.TagCtrlHeader && len(r.Payload) >= 4 {
		return &model.CtrlHeader{
			CtrlID: binary.LittleEndian.Uint32(r.Payload),
			Data:   &model.CtrlUnknown{Data: r.Payload[4:]},
		}
	}
	return &model.UnknownRecord{Tag: r.Tag, Payload: r.Payload}
}
