package hwp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotHWP is returned when the FileHeader signature is not the HWP 5.0 one.
	ErrNotHWP = errors.New("hwp: not an HWP 5.0 document")

	// ErrEncrypted is returned for password-protected documents.
	ErrEncrypted = errors.New("hwp: document is password encrypted")

	// ErrDistributed is returned for distribution documents, whose body is
	// stored encrypted in ViewText.
	ErrDistributed = errors.New("hwp: distribution documents are not supported")

	// ErrUnsupportedFormat is returned by Open for HWPX and HWP 3 files.
	ErrUnsupportedFormat = errors.New("hwp: unsupported file format")
)

// MissingStreamError reports a mandatory stream absent from the container.
type MissingStreamError struct {
	Name string
}

func (e *MissingStreamError) Error() string {
	return fmt.Sprintf("hwp: missing stream %s", e.Name)
}
