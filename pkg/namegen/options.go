package namegen

import (
	"log/slog"
	"time"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	corpus     Corpus
	rules      []Rule
	transforms []Transform
	entropy    Entropy
	now        func() time.Time
	logger     *slog.Logger
	observers  []func(Result)
}

func defaultOptions() *options {
	return &options{
		corpus: DefaultCorpus(),
		rules:  DefaultRules(),
	}
}

// WithCorpus replaces the built-in vocabularies.
func WithCorpus(c Corpus) Option {
	return func(o *options) { o.corpus = c }
}

// WithRules replaces the rule table. An empty slice disables filtering.
func WithRules(rules ...Rule) Option {
	return func(o *options) { o.rules = cloneRules(rules) }
}

// WithExtraRules appends rules after the current table.
func WithExtraRules(rules ...Rule) Option {
	return func(o *options) { o.rules = append(o.rules, cloneRules(rules)...) }
}

// WithTransforms sets the post-processor chain. The default chain is empty.
func WithTransforms(chain ...Transform) Option {
	return func(o *options) { o.transforms = append([]Transform(nil), chain...) }
}

// WithEntropy sets the timing entropy source. Nil values are ignored.
func WithEntropy(e Entropy) Option {
	return func(o *options) {
		if e != nil {
			o.entropy = e
		}
	}
}

// WithClock sets the clock used for seeding and, unless WithEntropy is given,
// for timing entropy. Nil values are ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger. Runs are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers a callback invoked after every successful run,
// outside the seed lock.
func WithObserver(fn func(Result)) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}
