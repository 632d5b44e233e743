package namegen

import "errors"

var (
	// ErrInvalidParameter is returned when generator parameters or the requested
	// range cannot produce a value (M <= 1, max <= 0, negative entropy weight).
	ErrInvalidParameter = errors.New("namegen: invalid parameter")

	// ErrEmptyCorpus is returned when either word corpus has no entries.
	ErrEmptyCorpus = errors.New("namegen: empty corpus")

	// ErrInvalidCorpus is returned when a corpus file cannot be read or parsed,
	// or contains blank words.
	ErrInvalidCorpus = errors.New("namegen: invalid corpus")

	// ErrPipelineExhausted marks a run in which every candidate was filtered out.
	// It is recovered locally by falling back to the full pool and is never
	// returned from Generate.
	ErrPipelineExhausted = errors.New("namegen: candidate pool exhausted")

	// ErrUnknownRule is returned when a rule name does not resolve.
	ErrUnknownRule = errors.New("namegen: unknown rule")

	// ErrUnknownTransform is returned when a post-processor name does not resolve.
	ErrUnknownTransform = errors.New("namegen: unknown transform")
)
