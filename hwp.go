// Package hwp decodes HWP 5.0 documents, the binary format of the Hangul
// word processor, into a typed document model.
//
// Basic usage:
//
//	text, warnings, err := hwp.Open("report.hwp").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", hwp.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := hwp.Open("report.hwp").
//	    Strict().
//	    ParallelSections().
//	    Document()
//
// Decode works on any cfb.StreamProvider, for streams that did not come from
// a file on disk. The record, decode and model packages are usable on their
// own for lower-level work.
package hwp

import (
	"github.com/tsawler/hwp/cfb"
)

// Open returns an Extractor for the HWP file at filename. The file is not
// read until a terminal operation such as Text or Document.
//
// Example:
//
//	doc, warnings, err := hwp.Open("report.hwp").Document()
func Open(filename string, opts ...Option) *Extractor {
	return &Extractor{
		filename: filename,
		options:  buildOptions(opts),
	}
}

// FromProvider returns an Extractor over streams supplied by p. The caller
// keeps ownership of p.
//
// Example:
//
//	c, err := cfb.OpenFile("report.hwp", 0)
//	if err != nil {
//	    // handle error
//	}
//	defer c.Close()
//	text, warnings, err := hwp.FromProvider(c).Text()
func FromProvider(p cfb.StreamProvider, opts ...Option) *Extractor {
	return &Extractor{
		provider: p,
		options:  buildOptions(opts),
	}
}

// Must panics if err is non-nil and returns val otherwise.
//
// Example:
//
//	n := hwp.Must(hwp.Open("report.hwp").SectionCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is Must for the three-value terminal operations. Warnings are
// discarded.
//
// Example:
//
//	text := hwp.MustText(hwp.Open("report.hwp").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
