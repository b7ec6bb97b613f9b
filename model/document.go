package model

import "strings"

// Document is a fully decoded HWP 5.0 file.
type Document struct {
	Header   FileHeader
	DocInfo  DocInfo
	BodyText BodyText
}

// SectionCount returns the number of decoded sections.
func (d *Document) SectionCount() int { return len(d.BodyText.Sections) }

// Section returns section i, or nil.
func (d *Document) Section(i int) *Section {
	if i < 0 || i >= len(d.BodyText.Sections) {
		return nil
	}
	return &d.BodyText.Sections[i]
}

// ExtractText returns the plain text of every section in order, sections
// separated by a blank line.
func (d *Document) ExtractText() string {
	parts := make([]string, 0, len(d.BodyText.Sections))
	for i := range d.BodyText.Sections {
		parts = append(parts, ExtractText(d.BodyText.Sections[i].Paragraphs))
	}
	return strings.Join(parts, "\n")
}

// Paragraphs calls fn for every paragraph of the document, depth first,
// including paragraphs nested in controls. Returning false stops the walk.
func (d *Document) Paragraphs(fn func(section int, p *Paragraph) bool) {
	for i := range d.BodyText.Sections {
		for _, p := range d.BodyText.Sections[i].Paragraphs {
			if !walkParagraph(p, func(p *Paragraph) bool { return fn(i, p) }) {
				return
			}
		}
	}
}

func walkParagraph(p *Paragraph, fn func(*Paragraph) bool) bool {
	if !fn(p) {
		return false
	}
	for _, rec := range p.Records {
		if !walkRecord(rec, fn) {
			return false
		}
	}
	return true
}

func walkRecord(rec ParagraphRecord, fn func(*Paragraph) bool) bool {
	var children []ParagraphRecord
	switch r := rec.(type) {
	case *Paragraph:
		return walkParagraph(r, fn)
	case *CtrlHeader:
		children = r.Children
	case *ShapeElement:
		children = r.Children
	case *RawRecord:
		children = r.Children
	case *UnknownRecord:
		children = r.Children
	}
	for _, c := range children {
		if !walkRecord(c, fn) {
			return false
		}
	}
	return true
}
