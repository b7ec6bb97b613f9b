package model

// ShapeType identifies a drawing primitive.
type ShapeType int

const (
	ShapeTypeUnknown ShapeType = iota
	ShapeTypeArc
	ShapeTypeContainer
	ShapeTypeCurve
	ShapeTypeEllipse
	ShapeTypeLine
	ShapeTypeOLE
	ShapeTypePicture
	ShapeTypePolygon
	ShapeTypeRectangle
	ShapeTypeTextArt
)

// String returns the string representation of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapeTypeArc:
		return "Arc"
	case ShapeTypeContainer:
		return "Container"
	case ShapeTypeCurve:
		return "Curve"
	case ShapeTypeEllipse:
		return "Ellipse"
	case ShapeTypeLine:
		return "Line"
	case ShapeTypeOLE:
		return "OLE"
	case ShapeTypePicture:
		return "Picture"
	case ShapeTypePolygon:
		return "Polygon"
	case ShapeTypeRectangle:
		return "Rectangle"
	case ShapeTypeTextArt:
		return "TextArt"
	default:
		return "Unknown"
	}
}

// ShapeComponent is the primitive-specific record under a SHAPE_COMPONENT.
type ShapeComponent interface {
	ShapeType() ShapeType
}

// Point is a coordinate in HWPUNIT.
type Point struct {
	X int32
	Y int32
}

// ShapeAttributes is the element part of SHAPE_COMPONENT, common to every
// drawing primitive. Rendering holds the transform matrices and any line,
// fill and shadow description that follows.
type ShapeAttributes struct {
	CtrlID        uint32
	OffsetX       int32
	OffsetY       int32
	GroupLevel    uint16
	LocalVersion  uint16
	InitialWidth  uint32
	InitialHeight uint32
	Width         uint32
	Height        uint32
	Flip          uint32
	Rotation      int16
	CenterX       int32
	CenterY       int32
	Rendering     []byte
}

func (a ShapeAttributes) FlipHorizontal() bool { return a.Flip&0x1 != 0 }
func (a ShapeAttributes) FlipVertical() bool   { return a.Flip&0x2 != 0 }

// ShapeElement is SHAPE_COMPONENT with its decoded primitive. Children keeps
// everything else nested below it: text box list headers and paragraphs,
// or the members of a container.
type ShapeElement struct {
	Attributes ShapeAttributes
	Shape      ShapeComponent
	Children   []ParagraphRecord
}

func (*ShapeElement) Kind() RecordKind { return KindShapeElement }

// ShapeLine is SHAPE_COMPONENT_LINE.
type ShapeLine struct {
	Start        Point
	End          Point
	Attribute    uint16
	HasAttribute bool
}

// ShapeRectangle is SHAPE_COMPONENT_RECTANGLE.
type ShapeRectangle struct {
	Curvature uint8
	Corners   [4]Point
}

// ShapeEllipse is SHAPE_COMPONENT_ELLIPSE.
type ShapeEllipse struct {
	Attribute uint32
	Center    Point
	Axis1     Point
	Axis2     Point
	Start1    Point
	End1      Point
	Start2    Point
	End2      Point
}

func (e *ShapeEllipse) IntervalDirty() bool { return e.Attribute&0x1 != 0 }
func (e *ShapeEllipse) HasArc() bool        { return e.Attribute&0x2 != 0 }
func (e *ShapeEllipse) ArcType() uint32     { return (e.Attribute >> 2) & 0xFF }

// ShapeArc is SHAPE_COMPONENT_ARC.
type ShapeArc struct {
	ArcType uint8
	Center  Point
	Axis1   Point
	Axis2   Point
}

// ShapePolygon is SHAPE_COMPONENT_POLYGON.
type ShapePolygon struct {
	Points []Point
}

// ShapeCurve is SHAPE_COMPONENT_CURVE. SegmentTypes has one entry per
// segment: 0 line, 1 curve.
type ShapeCurve struct {
	Points       []Point
	SegmentTypes []uint8
}

// ShapeOLE is SHAPE_COMPONENT_OLE.
type ShapeOLE struct {
	Attribute       uint32
	ExtentX         int32
	ExtentY         int32
	BinDataID       uint16
	BorderColor     ColorRef
	BorderThickness int32
	BorderAttribute uint32
	Tail            []byte
}

// Crop is a picture's cropped rectangle.
type Crop struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// ShapePicture is SHAPE_COMPONENT_PICTURE. BinItemID refers to a
// DocInfo.BinaryData entry by its Index.
type ShapePicture struct {
	BorderColor     ColorRef
	BorderThickness int32
	BorderAttribute uint32
	Rect            [4]Point
	Crop            Crop
	Padding         [4]int16
	Brightness      int8
	Contrast        int8
	Effect          uint8
	BinItemID       uint16
	Tail            []byte
}

// ShapeContainer is SHAPE_COMPONENT_CONTAINER: a group of drawing objects.
type ShapeContainer struct {
	ChildIDs []uint32
}

// ShapeTextArt is SHAPE_COMPONENT_TEXTART, kept raw.
type ShapeTextArt struct {
	Data []byte
}

// ShapeUnknown is SHAPE_COMPONENT_UNKNOWN, an unrecognised primitive tag, or
// a primitive whose payload failed to decode.
type ShapeUnknown struct {
	Tag  uint16
	Data []byte
}

func (*ShapeArc) ShapeType() ShapeType       { return ShapeTypeArc }
func (*ShapeContainer) ShapeType() ShapeType { return ShapeTypeContainer }
func (*ShapeCurve) ShapeType() ShapeType     { return ShapeTypeCurve }
func (*ShapeEllipse) ShapeType() ShapeType   { return ShapeTypeEllipse }
func (*ShapeLine) ShapeType() ShapeType      { return ShapeTypeLine }
func (*ShapeOLE) ShapeType() ShapeType       { return ShapeTypeOLE }
func (*ShapePicture) ShapeType() ShapeType   { return ShapeTypePicture }
func (*ShapePolygon) ShapeType() ShapeType   { return ShapeTypePolygon }
func (*ShapeRectangle) ShapeType() ShapeType { return ShapeTypeRectangle }
func (*ShapeTextArt) ShapeType() ShapeType   { return ShapeTypeTextArt }
func (*ShapeUnknown) ShapeType() ShapeType   { return ShapeTypeUnknown }
