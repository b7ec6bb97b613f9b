package record

import "fmt"

// Begin is the first tag value available to document records. Tags below it
// are reserved and never appear in a valid stream.
const Begin uint16 = 0x010

// DocInfo stream tags.
const (
	TagDocumentProperties  = Begin + 0
	TagIDMappings          = Begin + 1
	TagBinData             = Begin + 2
	TagFaceName            = Begin + 3
	TagBorderFill          = Begin + 4
	TagCharShape           = Begin + 5
	TagTabDef              = Begin + 6
	TagNumbering           = Begin + 7
	TagBullet              = Begin + 8
	TagParaShape           = Begin + 9
	TagStyle               = Begin + 10
	TagDocData             = Begin + 11
	TagDistributeDocData   = Begin + 12
	TagCompatibleDocument  = Begin + 14
	TagLayoutCompatibility = Begin + 15
	TagTrackChangeInfo     = Begin + 16
	TagMemoShape           = Begin + 76
	TagForbiddenChar       = Begin + 78
	TagTrackChange         = Begin + 80
	TagTrackChangeAuthor   = Begin + 81
)

// BodyText section tags.
const (
	TagParaHeader              = Begin + 50
	TagParaText                = Begin + 51
	TagParaCharShape           = Begin + 52
	TagParaLineSeg             = Begin + 53
	TagParaRangeTag            = Begin + 54
	TagCtrlHeader              = Begin + 55
	TagListHeader              = Begin + 56
	TagPageDef                 = Begin + 57
	TagFootnoteShape           = Begin + 58
	TagPageBorderFill          = Begin + 59
	TagShapeComponent          = Begin + 60
	TagTable                   = Begin + 61
	TagShapeComponentLine      = Begin + 62
	TagShapeComponentRectangle = Begin + 63
	TagShapeComponentEllipse   = Begin + 64
	TagShapeComponentArc       = Begin + 65
	TagShapeComponentPolygon   = Begin + 66
	TagShapeComponentCurve     = Begin + 67
	TagShapeComponentOLE       = Begin + 68
	TagShapeComponentPicture   = Begin + 69
	TagShapeComponentContainer = Begin + 70
	TagCtrlData                = Begin + 71
	TagEqEdit                  = Begin + 72
	TagShapeComponentTextArt   = Begin + 74
	TagFormObject              = Begin + 75
	TagMemoList                = Begin + 77
	TagChartData               = Begin + 79
	TagVideoData               = Begin + 82
	TagShapeComponentUnknown   = Begin + 99
)

var tagNames = map[uint16]string{
	TagDocumentProperties:      "DOCUMENT_PROPERTIES",
	TagIDMappings:              "ID_MAPPINGS",
	TagBinData:                 "BIN_DATA",
	TagFaceName:                "FACE_NAME",
	TagBorderFill:              "BORDER_FILL",
	TagCharShape:               "CHAR_SHAPE",
	TagTabDef:                  "TAB_DEF",
	TagNumbering:               "NUMBERING",
	TagBullet:                  "BULLET",
	TagParaShape:               "PARA_SHAPE",
	TagStyle:                   "STYLE",
	TagDocData:                 "DOC_DATA",
	TagDistributeDocData:       "DISTRIBUTE_DOC_DATA",
	TagCompatibleDocument:      "COMPATIBLE_DOCUMENT",
	TagLayoutCompatibility:     "LAYOUT_COMPATIBILITY",
	TagTrackChangeInfo:         "TRACKCHANGE",
	TagMemoShape:               "MEMO_SHAPE",
	TagForbiddenChar:           "FORBIDDEN_CHAR",
	TagTrackChange:             "TRACK_CHANGE",
	TagTrackChangeAuthor:       "TRACK_CHANGE_AUTHOR",
	TagParaHeader:              "PARA_HEADER",
	TagParaText:                "PARA_TEXT",
	TagParaCharShape:           "PARA_CHAR_SHAPE",
	TagParaLineSeg:             "PARA_LINE_SEG",
	TagParaRangeTag:            "PARA_RANGE_TAG",
	TagCtrlHeader:              "CTRL_HEADER",
	TagListHeader:              "LIST_HEADER",
	TagPageDef:                 "PAGE_DEF",
	TagFootnoteShape:           "FOOTNOTE_SHAPE",
	TagPageBorderFill:          "PAGE_BORDER_FILL",
	TagShapeComponent:          "SHAPE_COMPONENT",
	TagTable:                   "TABLE",
	TagShapeComponentLine:      "SHAPE_COMPONENT_LINE",
	TagShapeComponentRectangle: "SHAPE_COMPONENT_RECTANGLE",
	TagShapeComponentEllipse:   "SHAPE_COMPONENT_ELLIPSE",
	TagShapeComponentArc:       "SHAPE_COMPONENT_ARC",
	TagShapeComponentPolygon:   "SHAPE_COMPONENT_POLYGON",
	TagShapeComponentCurve:     "SHAPE_COMPONENT_CURVE",
	TagShapeComponentOLE:       "SHAPE_COMPONENT_OLE",
	TagShapeComponentPicture:   "SHAPE_COMPONENT_PICTURE",
	TagShapeComponentContainer: "SHAPE_COMPONENT_CONTAINER",
	TagCtrlData:                "CTRL_DATA",
	TagEqEdit:                  "EQEDIT",
	TagShapeComponentTextArt:   "SHAPE_COMPONENT_TEXTART",
	TagFormObject:              "FORM_OBJECT",
	TagMemoList:                "MEMO_LIST",
	TagChartData:               "CHART_DATA",
	TagVideoData:               "VIDEO_DATA",
	TagShapeComponentUnknown:   "SHAPE_COMPONENT_UNKNOWN",
}

// TagName returns the conventional name of a tag, or a numeric form for tags
// this package does not know.
func TagName(tag uint16) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	if tag < Begin {
		return fmt.Sprintf("RESERVED(%d)", tag)
	}
	return fmt.Sprintf("BEGIN+%d", tag-Begin)
}
