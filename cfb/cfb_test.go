package cfb

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMapProvider(t *testing.T) {
	p := MapProvider{"FileHeader": []byte("hdr"), "BodyText/Section0": {}}

	b, err := p.Stream("FileHeader")
	if err != nil || string(b) != "hdr" {
		t.Errorf("Stream(FileHeader) = %q, %v", b, err)
	}
	if b, err := p.Stream("BodyText/Section0"); err != nil || len(b) != 0 {
		t.Errorf("empty stream = %q, %v", b, err)
	}

	_, err = p.Stream("DocInfo")
	if !errors.Is(err, ErrStreamNotFound) {
		t.Errorf("Stream(DocInfo) error = %v, want ErrStreamNotFound", err)
	}
}

func TestContainerStreams(t *testing.T) {
	c := &Container{streams: map[string][]byte{
		"FileHeader":        {1},
		"DocInfo":           {2},
		"BodyText/Section0": {3},
	}}

	if b, err := c.Stream("BodyText/Section0"); err != nil || !bytes.Equal(b, []byte{3}) {
		t.Errorf("Stream() = %v, %v", b, err)
	}
	if _, err := c.Stream("BodyText/Section1"); !errors.Is(err, ErrStreamNotFound) {
		t.Errorf("missing stream error = %v", err)
	}

	want := []string{"BodyText/Section0", "DocInfo", "FileHeader"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

const samplePath = "../testdata/sample.hwp"

func TestContainerOpen(t *testing.T) {
	c, err := OpenFile(samplePath, 0)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer c.Close()

	want := []string{"BinData/BIN0001.png", "BodyText/Section0", "DocInfo", "FileHeader"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	hdr, err := c.Stream("FileHeader")
	if err != nil || len(hdr) != 256 || !bytes.HasPrefix(hdr, []byte("HWP Document File")) {
		t.Errorf("Stream(FileHeader) = %d bytes, %v", len(hdr), err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	data, err := os.ReadFile(samplePath)
	if err != nil {
		t.Fatal(err)
	}
	mem, err := Open(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if b, err := mem.Stream("BodyText/Section0"); err != nil || len(b) == 0 {
		t.Errorf("Stream(BodyText/Section0) = %d bytes, %v", len(b), err)
	}

	if _, err := Open(bytes.NewReader(data), 100); err == nil {
		t.Error("Open() ignored the stream size limit")
	}
}

func TestStreamPath(t *testing.T) {
	tests := []struct {
		dir  []string
		name string
		want string
	}{
		{nil, "FileHeader", "FileHeader"},
		{[]string{"BodyText"}, "Section0", "BodyText/Section0"},
		{[]string{"a", "b"}, "c", "a/b/c"},
	}
	for _, tt := range tests {
		if got := streamPath(tt.dir, tt.name); got != tt.want {
			t.Errorf("streamPath(%v, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}

func TestOpenRejectsNonCompoundFile(t *testing.T) {
	if _, err := Open(bytes.NewReader([]byte("definitely not OLE2")), 0); err == nil {
		t.Error("Open() succeeded on garbage")
	}

	path := filepath.Join(t.TempDir(), "bad.hwp")
	if err := os.WriteFile(path, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path, 0); err == nil {
		t.Error("OpenFile() succeeded on zeros")
	}
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing.hwp"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenFile(missing) error = %v", err)
	}
}
