package fusedlru

// options.go defines the functional-option pattern fusedlru.New accepts:
// an Option mutates a config, defaultConfig seeds the defaults, and
// applyOptions folds the supplied options over it before construction.

import "go.uber.org/zap"

const defaultLoadFactor float32 = 0.66

// config bundles every knob influencing construction. Immutable once the
// Cache is built — there is no live-reconfiguration surface.
type config struct {
	loadFactor float32
	logger     *zap.Logger
}

// Option configures a Cache at construction time.
type Option func(*config)

func defaultConfig() *config {
	return &config{
		loadFactor: defaultLoadFactor,
		logger:     nil,
	}
}

// WithLoadFactor overrides the default 0.66 load factor used to size the
// underlying table. Must be in (0, 1); validated by computeCapacity when
// New sizes the table.
func WithLoadFactor(f float32) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithLogger plugs a zap.Logger for the defensive internal-invariant panic
// path, the only place the cache logs; neither New nor the hot path logs. Passing nil is a no-op (logging stays disabled).
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}
