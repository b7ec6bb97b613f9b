package hwp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/hwp/decode"
	"github.com/tsawler/hwp/internal/filters"
	"github.com/tsawler/hwp/record"
)

// Warning is a non-fatal problem found while decoding. The document is still
// returned; the affected record is kept in raw form or dropped.
type Warning struct {
	Stream string // stream the problem was found in
	Offset int    // byte offset in the decompressed stream, or -1
	Err    error
}

func (w Warning) Error() string {
	if w.Offset < 0 {
		return fmt.Sprintf("%s: %v", w.Stream, w.Err)
	}
	return fmt.Sprintf("%s@%d: %v", w.Stream, w.Offset, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(w.Error())
	}
	return sb.String()
}

func newWarning(stream string, err error) Warning {
	return Warning{Stream: stream, Offset: errorOffset(err), Err: err}
}

// errorOffset digs the stream offset out of any of the positioned error types.
func errorOffset(err error) int {
	var (
		re  *decode.RecordError
		te  *record.TruncatedRecordError
		ie  *record.InvalidTagError
		ne  *record.MalformedNestingError
		dec *filters.DecompressionError
	)
	switch {
	case errors.As(err, &re):
		return re.Offset
	case errors.As(err, &te):
		return te.Offset
	case errors.As(err, &ie):
		return ie.Offset
	case errors.As(err, &ne):
		return ne.Offset
	case errors.As(err, &dec) && dec.Offset >= 0:
		return int(dec.Offset)
	}
	return -1
}
