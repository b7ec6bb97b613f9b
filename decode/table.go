package decode

import (
	"fmt"

	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

// Partition selects one of the record tag spaces.
type Partition int

const (
	PartitionDocInfo Partition = iota
	PartitionBodyText
	PartitionControl
	PartitionShape
)

// String returns the string representation of the partition.
func (p Partition) String() string {
	switch p {
	case PartitionDocInfo:
		return "DocInfo"
	case PartitionBodyText:
		return "BodyText"
	case PartitionControl:
		return "Control"
	case PartitionShape:
		return "Shape"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// entry is one row of a dispatch table.
type entry[T any] struct {
	name string
	min  int
	fn   func(c *cursor) T
}

func (e entry[T]) decode(payload []byte) (T, error) {
	var zero T
	if len(payload) < e.min {
		return zero, &InsufficientDataError{What: e.name, Expected: e.min, Actual: len(payload)}
	}
	c := newCursor(e.name, payload)
	v := e.fn(c)
	if c.err != nil {
		return zero, c.err
	}
	return v, nil
}

var docInfoTable = map[uint16]entry[model.DocInfoRecord]{
	record.TagDocumentProperties:  {"DOCUMENT_PROPERTIES", 26, documentProperties},
	record.TagIDMappings:          {"ID_MAPPINGS", 4, idMappings},
	record.TagBinData:             {"BIN_DATA", 2, binData},
	record.TagFaceName:            {"FACE_NAME", 3, faceName},
	record.TagBorderFill:          {"BORDER_FILL", 32, borderFill},
	record.TagCharShape:           {"CHAR_SHAPE", 68, charShape},
	record.TagTabDef:              {"TAB_DEF", 8, tabDef},
	record.TagNumbering:           {"NUMBERING", 12, numbering},
	record.TagBullet:              {"BULLET", 14, bullet},
	record.TagParaShape:           {"PARA_SHAPE", 42, paraShape},
	record.TagStyle:               {"STYLE", 12, style},
	record.TagDocData:             {"DOC_DATA", 0, docData},
	record.TagDistributeDocData:   {"DISTRIBUTE_DOC_DATA", 0, distributeDocData},
	record.TagCompatibleDocument:  {"COMPATIBLE_DOCUMENT", 4, compatibleDocument},
	record.TagLayoutCompatibility: {"LAYOUT_COMPATIBILITY", 20, layoutCompatibility},
	record.TagTrackChangeInfo:     {"TRACKCHANGE", 0, trackChangeInfo},
	record.TagMemoShape:           {"MEMO_SHAPE", 22, memoShape},
	record.TagForbiddenChar:       {"FORBIDDEN_CHAR", 0, forbiddenChar},
	record.TagTrackChange:         {"TRACK_CHANGE", 0, trackChange},
	record.TagTrackChangeAuthor:   {"TRACK_CHANGE_AUTHOR", 0, trackChangeAuthor},
}

var bodyTable = map[uint16]entry[model.ParagraphRecord]{
	record.TagParaHeader:     {"PARA_HEADER", 22, paraHeader},
	record.TagParaText:       {"PARA_TEXT", 0, paraText},
	record.TagParaCharShape:  {"PARA_CHAR_SHAPE", 8, paraCharShape},
	record.TagParaLineSeg:    {"PARA_LINE_SEG", 36, paraLineSeg},
	record.TagParaRangeTag:   {"PARA_RANGE_TAG", 12, paraRangeTag},
	record.TagCtrlHeader:     {"CTRL_HEADER", 4, ctrlHeader},
	record.TagListHeader:     {"LIST_HEADER", 8, listHeader},
	record.TagPageDef:        {"PAGE_DEF", 40, pageDef},
	record.TagFootnoteShape:  {"FOOTNOTE_SHAPE", 26, footnoteShape},
	record.TagPageBorderFill: {"PAGE_BORDER_FILL", 14, pageBorderFill},
	record.TagShapeComponent: {"SHAPE_COMPONENT", 46, shapeComponent},
	record.TagTable:          {"TABLE", 18, table},
	record.TagCtrlData:       {"CTRL_DATA", 0, ctrlData},
	record.TagEqEdit:         {"EQEDIT", 6, eqEdit},
	record.TagFormObject:     {"FORM_OBJECT", 0, rawBody(record.TagFormObject)},
	record.TagMemoList:       {"MEMO_LIST", 0, rawBody(record.TagMemoList)},
	record.TagChartData:      {"CHART_DATA", 0, rawBody(record.TagChartData)},
	record.TagVideoData:      {"VIDEO_DATA", 0, rawBody(record.TagVideoData)},
}

var ctrlTable = map[uint32]entry[model.CtrlHeaderData]{
	model.CtrlSectionDef:         {"section definition", 24, sectionDef},
	model.CtrlColumnDef:          {"column definition", 12, columnDef},
	model.CtrlTable:              {"table object", 36, objectCommon},
	model.CtrlGenShapeObject:     {"drawing object", 36, objectCommon},
	model.CtrlEquation:           {"equation object", 36, objectCommon},
	model.CtrlPageHeader:         {"header", 4, headerFooter},
	model.CtrlPageFooter:         {"footer", 4, headerFooter},
	model.CtrlFootnote:           {"footnote", 8, footnoteEndnote},
	model.CtrlEndnote:            {"endnote", 8, footnoteEndnote},
	model.CtrlAutoNumber:         {"auto number", 12, autoNumber},
	model.CtrlNewNumber:          {"new number", 6, newNumber},
	model.CtrlPageHide:           {"page hide", 2, pageHide},
	model.CtrlPageAdjust:         {"page adjust", 4, pageAdjust},
	model.CtrlPageNumberPosition: {"page number position", 12, pageNumberPosition},
	model.CtrlBookmark:           {"bookmark", 0, bookmark},
	model.CtrlIndexMark:          {"index mark", 0, ctrlRaw},
	model.CtrlOverlapChars:       {"overlapping characters", 0, ctrlRaw},
	model.CtrlDutmal:             {"dutmal", 0, ctrlRaw},
	model.CtrlHiddenComment:      {"hidden comment", 0, ctrlRaw},
}

// fieldEntry decodes every "%xxx" field control.
var fieldEntry = entry[model.CtrlHeaderData]{"field", 7, field}

var shapeTable = map[uint16]entry[model.ShapeComponent]{
	record.TagShapeComponentLine:      {"SHAPE_COMPONENT_LINE", 16, shapeLine},
	record.TagShapeComponentRectangle: {"SHAPE_COMPONENT_RECTANGLE", 33, shapeRectangle},
	record.TagShapeComponentEllipse:   {"SHAPE_COMPONENT_ELLIPSE", 60, shapeEllipse},
	record.TagShapeComponentArc:       {"SHAPE_COMPONENT_ARC", 25, shapeArc},
	record.TagShapeComponentPolygon:   {"SHAPE_COMPONENT_POLYGON", 2, shapePolygon},
	record.TagShapeComponentCurve:     {"SHAPE_COMPONENT_CURVE", 2, shapeCurve},
	record.TagShapeComponentOLE:       {"SHAPE_COMPONENT_OLE", 26, shapeOLE},
	record.TagShapeComponentPicture:   {"SHAPE_COMPONENT_PICTURE", 73, shapePicture},
	record.TagShapeComponentContainer: {"SHAPE_COMPONENT_CONTAINER", 2, shapeContainer},
	record.TagShapeComponentTextArt:   {"SHAPE_COMPONENT_TEXTART", 0, shapeTextArt},
	record.TagShapeComponentUnknown:   {"SHAPE_COMPONENT_UNKNOWN", 0, shapeUnknown},
}

// DecodeDocInfoRecord decodes one DocInfo record payload. Unknown tags give
// *model.UnknownDocInfo.
func DecodeDocInfoRecord(tag uint16, payload []byte) (model.DocInfoRecord, error) {
	e, ok := docInfoTable[tag]
	if !ok {
		return &model.UnknownDocInfo{Tag: tag, Payload: payload}, nil
	}
	return e.decode(payload)
}

// DecodeParagraphRecord decodes one BodyText record payload on its own,
// without its children. Unknown tags give *model.UnknownRecord.
func DecodeParagraphRecord(tag uint16, payload []byte) (model.ParagraphRecord, error) {
	e, ok := bodyTable[tag]
	if !ok {
		return &model.UnknownRecord{Tag: tag, Payload: payload}, nil
	}
	return e.decode(payload)
}

// DecodeCtrlHeaderData decodes the part of a CTRL_HEADER payload that follows
// the control id. Unknown ids give *model.CtrlUnknown.
func DecodeCtrlHeaderData(ctrlID uint32, payload []byte) (model.CtrlHeaderData, error) {
	e, ok := ctrlEntry(ctrlID)
	if !ok {
		return &model.CtrlUnknown{Data: payload}, nil
	}
	return e.decode(payload)
}

func ctrlEntry(ctrlID uint32) (entry[model.CtrlHeaderData], bool) {
	if e, ok := ctrlTable[ctrlID]; ok {
		return e, true
	}
	if model.IsFieldCtrl(ctrlID) {
		return fieldEntry, true
	}
	return entry[model.CtrlHeaderData]{}, false
}

// DecodeShapeComponent decodes the primitive record below a SHAPE_COMPONENT.
// Unknown tags give *model.ShapeUnknown.
func DecodeShapeComponent(tag uint16, payload []byte) (model.ShapeComponent, error) {
	e, ok := shapeTable[tag]
	if !ok {
		return &model.ShapeUnknown{Tag: tag, Data: payload}, nil
	}
	return e.decode(payload)
}

// IsShapeTag reports whether tag belongs to the shape component partition.
func IsShapeTag(tag uint16) bool {
	_, ok := shapeTable[tag]
	return ok
}

// MinLength returns the fixed minimum payload length for a key of a
// partition: a tag, or a control id for PartitionControl. Structures with a
// count prefix report the length of an empty instance.
func MinLength(p Partition, key uint32) (int, bool) {
	if p != PartitionControl && key > 0xFFFF {
		return 0, false
	}
	switch p {
	case PartitionDocInfo:
		e, ok := docInfoTable[uint16(key)]
		return e.min, ok
	case PartitionBodyText:
		e, ok := bodyTable[uint16(key)]
		return e.min, ok
	case PartitionControl:
		e, ok := ctrlEntry(key)
		return e.min, ok
	case PartitionShape:
		e, ok := shapeTable[uint16(key)]
		return e.min, ok
	}
	return 0, false
}
