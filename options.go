package hwp

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultMaxStreamSize bounds any single stream, raw or inflated.
const DefaultMaxStreamSize = 256 << 20

// Options holds decoding configuration. The zero value is not ready for use;
// start from DefaultOptions or LoadOptions.
type Options struct {
	// Strict turns truncated record framing into a fatal error.
	Strict bool `yaml:"strict"`

	// ParallelSections decodes BodyText sections concurrently.
	ParallelSections bool `yaml:"parallel_sections"`

	// LoadBinData reads and inflates embedded binary items.
	LoadBinData bool `yaml:"load_bin_data"`

	// MaxStreamSize limits each stream in bytes; zero or less is unbounded.
	MaxStreamSize int64 `yaml:"max_stream_size"`

	Logger zerolog.Logger `yaml:"-"`
}

// DefaultOptions returns the default decoding options.
func DefaultOptions() Options {
	return Options{
		LoadBinData:   true,
		MaxStreamSize: DefaultMaxStreamSize,
		Logger:        zerolog.Nop(),
	}
}

// LoadOptions reads YAML options from r. Keys left out keep their defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	data, err := io.ReadAll(r)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("hwp: parsing options: %w", err)
	}
	return opts, nil
}

// Option adjusts Options.
type Option func(*Options)

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOptions replaces the whole configuration, typically with the result of
// LoadOptions. Options listed after it still apply on top.
func WithOptions(o Options) Option { return func(dst *Options) { *dst = o } }

// WithLogger sets the logger that receives per-stream debug events and
// per-diagnostic warnings.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithStrict makes truncated records fatal.
func WithStrict() Option { return func(o *Options) { o.Strict = true } }

// WithParallelSections decodes sections on separate goroutines. The logger's
// writer then receives events from several goroutines at once.
func WithParallelSections() Option { return func(o *Options) { o.ParallelSections = true } }

// WithBinData controls whether embedded binary items are loaded.
func WithBinData(load bool) Option { return func(o *Options) { o.LoadBinData = load } }

// WithMaxStreamSize bounds each stream; n <= 0 removes the bound.
func WithMaxStreamSize(n int64) Option { return func(o *Options) { o.MaxStreamSize = n } }
