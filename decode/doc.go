// Package decode turns framed HWP records into model values.
//
// Each record partition (DocInfo, BodyText paragraph records, control headers
// and shape components) has its own dispatch table mapping a tag, or a
// control id, to a structure name, a minimum payload length and a decoder.
// A payload shorter than the minimum fails with *InsufficientDataError
// before any field is read. Tags missing from a table decode to that
// partition's unknown variant without error.
//
// The walkers DocInfo and Section consume a record.Tree and never fail as a
// whole: a record that cannot be decoded is kept as an unknown variant (or a
// nil table slot) and its error is returned alongside the result.
package decode
