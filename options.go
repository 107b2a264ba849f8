package tabular

import (
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Options holds the configuration of a Definition.
type Options struct {
	firstRowContainsHeaders bool
	encoding                encoding.Encoding
	culture                 Culture
	throwOnError            bool
	ignoreReadonly          bool
	removeNewLines          bool
	writeBOM                bool
	logger                  *slog.Logger
}

func defaultOptions() *Options {
	return &Options{
		firstRowContainsHeaders: true,
		encoding:                unicode.UTF8,
		culture:                 InvariantCulture,
		logger:                  slog.New(slog.DiscardHandler),
	}
}

// Option configures a Definition.
type Option func(*Options)

// WithFirstRowHeaders controls whether the first line holds the header names (default: true).
func WithFirstRowHeaders(headers bool) Option {
	return func(o *Options) { o.firstRowContainsHeaders = headers }
}

// WithEncoding sets the byte encoding of delimited input and output (default: UTF-8).
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *Options) {
		if enc != nil {
			o.encoding = enc
		}
	}
}

// WithCulture sets the culture used to format and parse values (default: InvariantCulture).
func WithCulture(c Culture) Option {
	return func(o *Options) { o.culture = c }
}

// WithThrowOnError makes the first field error abort the whole read.
func WithThrowOnError(throw bool) Option {
	return func(o *Options) { o.throwOnError = throw }
}

// WithIgnoreReadonly skips columns bound to fields without a setter instead of reporting them.
func WithIgnoreReadonly(ignore bool) Option {
	return func(o *Options) { o.ignoreReadonly = ignore }
}

// WithRemoveNewLines strips line breaks from text cells when writing.
func WithRemoveNewLines(remove bool) Option {
	return func(o *Options) { o.removeNewLines = remove }
}

// WithBOM writes a byte order mark before delimited output.
func WithBOM(write bool) Option {
	return func(o *Options) { o.writeBOM = write }
}

// WithLogger sets the logger used for line and error tracing (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
