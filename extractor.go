package hwp

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tsawler/hwp/cfb"
	"github.com/tsawler/hwp/decode"
	"github.com/tsawler/hwp/format"
	"github.com/tsawler/hwp/model"
)

// Extractor provides a fluent interface for decoding HWP documents.
// Each configuration method returns a new Extractor instance, making it
// safe to branch a base configuration.
type Extractor struct {
	// Source
	filename string
	provider cfb.StreamProvider

	// Lifecycle
	container *cfb.Container // set when the Extractor opened filename itself

	options Options
}

func (e *Extractor) clone() *Extractor {
	n := *e
	return &n
}

// ensureProvider opens filename if no provider is set yet.
func (e *Extractor) ensureProvider() error {
	if e.provider != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("hwp: no filename specified")
	}

	f, err := os.Open(e.filename)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	kind, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("hwp: detecting format of %s: %w", e.filename, err)
	}
	switch kind {
	case format.HWP5:
	case format.Unknown:
		return ErrNotHWP
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}

	// Container reads every stream up front, so f can close on return.
	c, err := cfb.Open(f, e.options.MaxStreamSize)
	if err != nil {
		return fmt.Errorf("hwp: %w", err)
	}
	e.container = c
	e.provider = c
	e.options.Logger.Debug().Str("file", e.filename).Int("streams", len(c.Names())).Msg("opened compound file")
	return nil
}

// Close releases the container opened by the Extractor. Providers passed to
// FromProvider are left alone. It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.container == nil {
		return nil
	}
	err := e.container.Close()
	e.container = nil
	e.provider = nil
	return err
}

// Strict makes truncated records fatal instead of warnings.
func (e *Extractor) Strict() *Extractor {
	n := e.clone()
	n.options.Strict = true
	return n
}

// ParallelSections decodes body sections concurrently.
func (e *Extractor) ParallelSections() *Extractor {
	n := e.clone()
	n.options.ParallelSections = true
	return n
}

// SkipBinData leaves embedded images and OLE objects unread.
func (e *Extractor) SkipBinData() *Extractor {
	n := e.clone()
	n.options.LoadBinData = false
	return n
}

// MaxStreamSize bounds every stream, raw and inflated.
func (e *Extractor) MaxStreamSize(limit int64) *Extractor {
	n := e.clone()
	n.options.MaxStreamSize = limit
	return n
}

// Logger routes decode events to l.
func (e *Extractor) Logger(l zerolog.Logger) *Extractor {
	n := e.clone()
	n.options.Logger = l
	return n
}

// Document decodes the full document model. This is a terminal operation.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if err := e.ensureProvider(); err != nil {
		return nil, nil, err
	}
	defer e.Close()
	return Decode(e.provider, WithOptions(e.options))
}

// Text returns the plain text of every section. This is a terminal operation.
//
// Example:
//
//	text, warnings, err := hwp.Open("report.hwp").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.ExtractText(), warnings, nil
}

// Header decodes only the FileHeader stream. It does not close the
// Extractor.
func (e *Extractor) Header() (model.FileHeader, error) {
	if err := e.ensureProvider(); err != nil {
		return model.FileHeader{}, err
	}
	raw, err := e.provider.Stream(streamFileHeader)
	if errors.Is(err, cfb.ErrStreamNotFound) {
		return model.FileHeader{}, &MissingStreamError{Name: streamFileHeader}
	}
	if err != nil {
		return model.FileHeader{}, err
	}
	return decode.DecodeFileHeader(raw)
}

// SectionCount returns the number of BodyText section streams without
// decoding them. It does not close the Extractor.
func (e *Extractor) SectionCount() (int, error) {
	if err := e.ensureProvider(); err != nil {
		return 0, err
	}
	n := 0
	for {
		_, err := e.provider.Stream(sectionStream(n))
		if errors.Is(err, cfb.ErrStreamNotFound) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
