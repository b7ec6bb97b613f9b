package hwp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tsawler/hwp/cfb"
	"github.com/tsawler/hwp/decode"
	"github.com/tsawler/hwp/internal/filters"
	"github.com/tsawler/hwp/model"
	"github.com/tsawler/hwp/record"
)

const (
	streamFileHeader = "FileHeader"
	streamDocInfo    = "DocInfo"
)

func sectionStream(i int) string { return fmt.Sprintf("BodyText/Section%d", i) }

// Decode reads a complete document from p. FileHeader, DocInfo and
// BodyText/Section0 are mandatory; further sections are read until the first
// absent one. Problems confined to single records or binary items are
// returned as warnings next to the document.
func Decode(p cfb.StreamProvider, opts ...Option) (*model.Document, []Warning, error) {
	a := &assembler{p: p, opts: buildOptions(opts)}
	a.log = a.opts.Logger
	doc, err := a.run()
	if err != nil {
		return nil, a.warnings, err
	}
	return doc, a.warnings, nil
}

type assembler struct {
	p        cfb.StreamProvider
	opts     Options
	log      zerolog.Logger
	warnings []Warning
}

func (a *assembler) run() (*model.Document, error) {
	doc := &model.Document{}

	raw, err := a.stream(streamFileHeader)
	if err != nil {
		return nil, err
	}
	doc.Header, err = decode.DecodeFileHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("hwp: %s: %w", streamFileHeader, err)
	}
	if doc.Header.Signature != model.Signature {
		return nil, ErrNotHWP
	}
	if doc.Header.Encrypted() {
		return nil, ErrEncrypted
	}
	if doc.Header.Distributed() {
		return nil, ErrDistributed
	}
	a.log.Debug().
		Str("version", doc.Header.Version.String()).
		Bool("compressed", doc.Header.Compressed()).
		Msg("file header")

	tree, err := a.records(streamDocInfo, doc.Header.Compressed())
	if err != nil {
		return nil, err
	}
	var errs []error
	doc.DocInfo, errs = decode.DocInfo(tree)
	a.warn(streamDocInfo, errs...)

	sections, err := a.sections(doc.Header.Compressed())
	if err != nil {
		return nil, err
	}
	doc.BodyText.Sections = sections

	if a.opts.LoadBinData {
		a.binData(&doc.DocInfo, doc.Header.Compressed())
	}
	return doc, nil
}

// stream fetches a mandatory stream.
func (a *assembler) stream(name string) ([]byte, error) {
	raw, err := a.p.Stream(name)
	if errors.Is(err, cfb.ErrStreamNotFound) {
		return nil, &MissingStreamError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("hwp: reading %s: %w", name, err)
	}
	if a.opts.MaxStreamSize > 0 && int64(len(raw)) > a.opts.MaxStreamSize {
		return nil, fmt.Errorf("hwp: %s: %d bytes exceeds limit of %d", name, len(raw), a.opts.MaxStreamSize)
	}
	return raw, nil
}

// records fetches, inflates and frames a record stream.
func (a *assembler) records(name string, compressed bool) (*record.Tree, error) {
	raw, err := a.stream(name)
	if err != nil {
		return nil, err
	}
	tree, errs, err := a.parse(name, raw, compressed)
	if err != nil {
		return nil, err
	}
	a.warn(name, errs...)
	return tree, nil
}

// parse is the goroutine-safe part of records: it touches no assembler state
// beyond the read-only options.
func (a *assembler) parse(name string, raw []byte, compressed bool) (*record.Tree, []error, error) {
	buf, err := filters.DecompressLimit(raw, compressed, a.opts.MaxStreamSize)
	if err != nil {
		return nil, nil, fmt.Errorf("hwp: %s: %w", name, err)
	}
	tree, errs := record.Parse(buf)
	if a.opts.Strict {
		for _, e := range errs {
			var te *record.TruncatedRecordError
			if errors.As(e, &te) {
				return nil, nil, fmt.Errorf("hwp: %s: %w", name, e)
			}
		}
	}
	a.log.Debug().
		Str("stream", name).
		Int("size", len(raw)).
		Int("inflated", len(buf)).
		Bool("compressed", compressed).
		Int("records", tree.Len()).
		Msg("stream framed")
	return tree, errs, nil
}

type sectionResult struct {
	section model.Section
	errs    []error
	err     error
}

func (a *assembler) sections(compressed bool) ([]model.Section, error) {
	var raws [][]byte
	for i := 0; ; i++ {
		name := sectionStream(i)
		raw, err := a.stream(name)
		var missing *MissingStreamError
		if i > 0 && errors.As(err, &missing) {
			break
		}
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	results := make([]sectionResult, len(raws))
	decodeOne := func(i int) {
		name := sectionStream(i)
		tree, errs, err := a.parse(name, raws[i], compressed)
		if err != nil {
			results[i].err = err
			return
		}
		s, derrs := decode.Section(i, tree)
		results[i] = sectionResult{section: s, errs: append(errs, derrs...)}
	}

	if a.opts.ParallelSections && len(raws) > 1 {
		var wg sync.WaitGroup
		for i := range raws {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				decodeOne(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range raws {
			decodeOne(i)
		}
	}

	sections := make([]model.Section, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		a.warn(sectionStream(i), r.errs...)
		sections[i] = r.section
	}
	return sections, nil
}

// binData loads every embedded item declared in DocInfo. Links point
// outside the file and storages are OLE sub-storages, not streams, so both
// are skipped. Failures are warnings; the item is left out.
func (a *assembler) binData(d *model.DocInfo, docCompressed bool) {
	for _, def := range d.BinData {
		if def == nil || def.Type() != model.BinDataEmbedding {
			continue
		}
		name := def.StreamName()
		raw, err := a.p.Stream(name)
		if err != nil {
			a.warn(name, err)
			continue
		}
		data, err := filters.DecompressLimit(raw, def.Compressed(docCompressed), a.opts.MaxStreamSize)
		if err != nil {
			a.warn(name, err)
			continue
		}
		d.BinaryData = append(d.BinaryData, model.BinaryDataItem{
			Index:     def.BinDataID,
			Extension: def.Extension,
			Data:      data,
		})
		a.log.Debug().Str("stream", name).Int("size", len(data)).Msg("binary item")
	}
}

func (a *assembler) warn(stream string, errs ...error) {
	for _, err := range errs {
		w := newWarning(stream, err)
		a.log.Warn().Str("stream", w.Stream).Int("offset", w.Offset).Err(w.Err).Msg("decode diagnostic")
		a.warnings = append(a.warnings, w)
	}
}
