package namegen

// Step records the pool size around one rule application.
type Step struct {
	Rule   string `json:"rule"`
	Before int    `json:"before"`
	After  int    `json:"after"`
}

// Filtered is the outcome of running the rule pipeline.
type Filtered struct {
	// Indices point into the candidate word list. Never empty when the word
	// list is non-empty.
	Indices []int
	// Steps holds one entry per rule, in application order.
	Steps []Step
	// Exhausted is set when the rules removed every candidate and the pool
	// was reset to the full range.
	Exhausted bool
}

// FullRange returns the indices 0..n-1.
func FullRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Filter narrows the candidate indices of words by each rule in order. Every
// rule runs, even against an empty pool. A nil trace disables tracing.
func Filter(first string, words []string, rules []Rule, trace *Trace) Filtered {
	if trace == nil {
		trace = &Trace{}
	}
	pool := FullRange(len(words))
	steps := make([]Step, 0, len(rules))

	for _, r := range rules {
		before := len(pool)
		pool = applyRule(r, first, words, pool)
		steps = append(steps, Step{Rule: r.Name, Before: before, After: len(pool)})
		trace.Addf("%s: filtered candidates from %d to %d.", r.Name, before, len(pool))
	}

	res := Filtered{Indices: pool, Steps: steps}
	if len(pool) == 0 && len(words) > 0 {
		res.Indices = FullRange(len(words))
		res.Exhausted = true
		trace.Addf("Candidate pool empty after filtering; reverting to full candidate pool.")
	}
	return res
}

func applyRule(r Rule, first string, words []string, pool []int) []int {
	kept := make([]int, 0, len(pool))
	for _, idx := range pool {
		if r.Match(first, words[idx]) {
			kept = append(kept, idx)
		}
	}
	return kept
}
