package earley

import (
	"github.com/nihei9/cfgearley/cfg/token"
	"github.com/sirupsen/logrus"
)

type config struct {
	tokenizer        token.Tokenizer
	maxItemsPerState int
	logger           *logrus.FieldLogger
}

// Option configures Parse, Recognize, and Extract.
type Option func(*config)

// WithTokenizer overrides the default regex-based tokenizer.
func WithTokenizer(t token.Tokenizer) Option {
	return func(c *config) {
		c.tokenizer = t
	}
}

// WithMaxItemsPerState sets the per-state item cap the recognizer enforces
// before it fails with cfgerr.ErrChartExploded, rather than looping
// unboundedly on a pathological grammar. 0 (the default) means unbounded.
func WithMaxItemsPerState(n int) Option {
	return func(c *config) {
		c.maxItemsPerState = n
	}
}

// WithLogger sets the observability sink the extractor emits its ambiguous
// diagnostic to. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = &l
	}
}

func buildConfig(opts []Option) *config {
	c := &config{
		tokenizer: token.Tokenize,
	}
	var defaultLogger logrus.FieldLogger = logrus.StandardLogger()
	c.logger = &defaultLogger
	for _, opt := range opts {
		opt(c)
	}
	return c
}
