// Package cfb supplies the named byte streams of an HWP document.
//
// HWP 5.0 files are OLE2 compound files. Container reads one with
// github.com/richardlehane/mscfb and serves its streams by slash-separated
// path ("FileHeader", "BodyText/Section0", "BinData/BIN0001.png").
// MapProvider serves streams from memory, for tests and for callers that
// obtained the streams some other way.
package cfb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"
)

// ErrStreamNotFound is returned by a StreamProvider for an absent stream.
var ErrStreamNotFound = errors.New("cfb: stream not found")

// StreamProvider returns the raw bytes of a named stream. A missing stream
// must be reported with an error wrapping ErrStreamNotFound.
type StreamProvider interface {
	Stream(name string) ([]byte, error)
}

// MapProvider is an in-memory StreamProvider.
type MapProvider map[string][]byte

// Stream implements StreamProvider.
func (m MapProvider) Stream(name string) ([]byte, error) {
	b, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStreamNotFound, name)
	}
	return b, nil
}

// Container holds every stream of a compound file, read eagerly.
type Container struct {
	file    *os.File
	streams map[string][]byte
}

// Open reads all streams of the compound file in r. Streams larger than
// maxStream bytes are rejected; zero means no limit.
func Open(r io.ReaderAt, maxStream int64) (*Container, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening compound file: %w", err)
	}

	c := &Container{streams: make(map[string][]byte)}
	for entry, err := doc.Next(); ; entry, err = doc.Next() {
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading directory: %w", err)
		}
		if entry.FileInfo().IsDir() {
			continue
		}
		name := streamPath(entry.Path, entry.Name)
		if maxStream > 0 && entry.Size > maxStream {
			return nil, fmt.Errorf("stream %s: %d bytes exceeds limit of %d", name, entry.Size, maxStream)
		}
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, buf); err != nil {
			return nil, fmt.Errorf("reading stream %s: %w", name, err)
		}
		c.streams[name] = buf
	}
	return c, nil
}

// OpenFile opens the compound file at path.
func OpenFile(path string, maxStream int64) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := Open(f, maxStream)
	if err != nil {
		f.Close()
		return nil, err
	}
	c.file = f
	return c, nil
}

// Close releases the underlying file, if the container opened one.
func (c *Container) Close() error {
	if c.file != nil {
		err := c.file.Close()
		c.file = nil
		return err
	}
	return nil
}

// Stream implements StreamProvider.
func (c *Container) Stream(name string) ([]byte, error) {
	b, ok := c.streams[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStreamNotFound, name)
	}
	return b, nil
}

// Names returns the stream paths in sorted order.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.streams))
	for name := range c.streams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func streamPath(dir []string, name string) string {
	if len(dir) == 0 {
		return name
	}
	return strings.Join(dir, "/") + "/" + name
}
