package dartdict

import "log/slog"

// DefaultMaxKeyBytes bounds the byte length of any key the trie walk will
// follow. Real surface forms are tens of bytes; a chain longer than this can
// only come from a broken or crafted file and is reported as
// ErrStructuralCorruption.
const DefaultMaxKeyBytes = 1024

type options struct {
	logger      *Logger
	maxKeyBytes int
}

// Option configures dictionary load behavior.
type Option func(*options)

// WithLogger configures structured logging for load operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxKeyBytes overrides DefaultMaxKeyBytes. Values below 1 are ignored.
func WithMaxKeyBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxKeyBytes = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:      NoopLogger(),
		maxKeyBytes: DefaultMaxKeyBytes,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
