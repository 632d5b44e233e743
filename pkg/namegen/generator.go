package namegen

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Result is one generated name with its decision trace.
type Result struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BaseName    string    `json:"base_name"`
	DebugLog    string    `json:"debug_log"`
	FirstIndex  int       `json:"first_index"`
	SecondIndex int       `json:"second_index"`
	Steps       []Step    `json:"steps"`
	PoolSize    int       `json:"pool_size"`
	Exhausted   bool      `json:"exhausted"`
	Params      Params    `json:"params"`
	CreatedAt   time.Time `json:"created_at"`
}

// Generator combines one word from each corpus. It owns its Mixer, so runs on
// the same Generator are serialized and separate Generators never share a seed.
type Generator struct {
	corpus     Corpus
	rules      []Rule
	transforms []Transform
	mixer      *Mixer
	now        func() time.Time
	logger     *slog.Logger
	observers  []func(Result)
}

// New builds a Generator. It returns ErrEmptyCorpus or ErrInvalidCorpus when
// the configured corpus cannot produce names.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.corpus.Validate(); err != nil {
		return nil, err
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		corpus:     o.corpus,
		rules:      o.rules,
		transforms: o.transforms,
		mixer:      NewMixer(o.entropy, o.now),
		now:        o.now,
		logger:     o.logger.With(slog.String("component", "namegen")),
		observers:  o.observers,
	}, nil
}

// Mixer exposes the generator's random source.
func (g *Generator) Mixer() *Mixer { return g.mixer }

// Rules returns a copy of the active rule table.
func (g *Generator) Rules() []Rule { return cloneRules(g.rules) }

// Corpus returns a copy of the vocabularies.
func (g *Generator) Corpus() Corpus {
	return Corpus{
		First:  append([]string(nil), g.corpus.First...),
		Second: append([]string(nil), g.corpus.Second...),
	}
}

// Random advances the generator's seed and returns a value in [0, max).
func (g *Generator) Random(max int, p Params) (int, error) {
	return g.mixer.Intn(max, p)
}

// ResetSeed reseeds from the clock. Call it before a run, never during one.
func (g *Generator) ResetSeed() {
	g.mixer.Reset()
}

// Generate picks a first word, filters the second corpus through the rules,
// picks a second word from what is left and applies the post-processor chain.
// Parameter errors are returned before the seed is touched.
func (g *Generator) Generate(ctx context.Context, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := g.corpus.Validate(); err != nil {
		return Result{}, err
	}

	res := g.run(p)

	if res.Exhausted {
		g.logger.WarnContext(ctx, "candidate pool exhausted",
			slog.String("first_word", g.corpus.First[res.FirstIndex]),
			slog.Any("reason", ErrPipelineExhausted),
		)
	}
	g.logger.DebugContext(ctx, "name generated",
		slog.String("id", res.ID.String()),
		slog.String("name", res.Name),
		slog.Int("first_index", res.FirstIndex),
		slog.Int("second_index", res.SecondIndex),
		slog.Int("pool_size", res.PoolSize),
		slog.Bool("exhausted", res.Exhausted),
	)

	for _, fn := range g.observers {
		fn(res)
	}
	return res, nil
}

func (g *Generator) run(p Params) Result {
	g.mixer.mu.Lock()
	defer g.mixer.mu.Unlock()

	trace := &Trace{}

	firstIdx := g.mixer.intn(len(g.corpus.First), p)
	first := g.corpus.First[firstIdx]
	trace.Addf("Selected first word: \"%s\" at index %d.", first, firstIdx)

	g.mixer.perturb(len(first), p)
	trace.Addf("Seed updated with first word length: %d.", g.mixer.seed)

	trace.Addf("Initial candidate pool size for second word: %d.", len(g.corpus.Second))
	filtered := Filter(first, g.corpus.Second, g.rules, trace)
	trace.Addf("Final candidate pool size after filtering: %d.", len(filtered.Indices))

	secondIdx := filtered.Indices[g.mixer.intn(len(filtered.Indices), p)]
	second := g.corpus.Second[secondIdx]
	trace.Addf("Selected second word: \"%s\" at index %d.", second, secondIdx)

	base := first + " " + second
	trace.Addf("Combined base name: \"%s\".", base)

	name := ApplyTransforms(base, g.transforms, trace)
	trace.Addf("Final generated name: \"%s\".", name)

	return Result{
		ID:          uuid.New(),
		Name:        name,
		BaseName:    base,
		DebugLog:    trace.String(),
		FirstIndex:  firstIdx,
		SecondIndex: secondIdx,
		Steps:       filtered.Steps,
		PoolSize:    len(filtered.Indices),
		Exhausted:   filtered.Exhausted,
		Params:      p,
		CreatedAt:   g.now(),
	}
}
