// Package model defines the in-memory representation of a decoded HWP 5.0
// document.
//
// A [Document] is built once by the decoder and is read-only afterwards.
// Renderers and other consumers walk it; nothing in this package mutates it.
//
// # Structure
//
//	Document
//	├── Header    FileHeader (version, property flags)
//	├── DocInfo   ordered resource tables (fonts, shapes, styles, bin data)
//	└── BodyText  Sections → Paragraphs → ParagraphRecords
//
// Body content references DocInfo entries by index (a character shape names
// its face by position in FaceNames, a picture names its blob by bin data id).
// Tables keep declaration order, and a record that could not be decoded
// keeps its slot as a nil entry, so every index stays valid.
//
// # Unions
//
// Four sealed interfaces model the tagged unions of the format:
//
//   - [ParagraphRecord] - paragraph children (text, line layout, controls, ...)
//   - [DocInfoRecord] - DocInfo stream records
//   - [CtrlHeaderData] - payloads of control headers (tables, notes, columns, ...)
//   - [ShapeComponent] - drawing primitives (line, rectangle, picture, ...)
//
// Each has an Unknown variant that keeps the raw bytes of records the decoder
// does not special-case, so a consumer can still walk past them.
//
// # Bit fields
//
// Attribute words are stored as read. Accessor methods such as
// [CharShape.Bold] or [ColumnDef.Count] pick out the packed fields when asked.
package model
