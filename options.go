package envdsl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Option configures ReadConfig.
type Option func(*options)

type options struct {
	silent  bool
	sink    func(string)
	slog    *slog.Logger
	environ Environ
}

func defaultOptions() *options {
	return &options{
		sink: writerSink(os.Stdout),
	}
}

// Silent suppresses the success report.
func Silent() Option {
	return func(o *options) {
		o.silent = true
	}
}

// WithLogger sends the success report text to sink. Nil sinks are ignored.
func WithLogger(sink func(string)) Option {
	return func(o *options) {
		if sink != nil {
			o.sink = sink
		}
	}
}

// WithOutput writes the success report text to w. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.sink = writerSink(w)
		}
	}
}

// WithSlog reports success as one structured record on l instead of text.
// Sensitive values are masked the same way as in the text report.
func WithSlog(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.slog = l
		}
	}
}

// WithEnviron reads from env instead of a fresh snapshot of the process
// environment.
func WithEnviron(env Environ) Option {
	return func(o *options) {
		if env != nil {
			o.environ = env
		}
	}
}

func writerSink(w io.Writer) func(string) {
	return func(msg string) {
		_, _ = fmt.Fprintln(w, msg)
	}
}
