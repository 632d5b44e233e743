package namegen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"
)

// Transform is a named post-processing step applied to the combined name.
type Transform struct {
	Name  string
	Apply func(name string) string
}

// ApplyTransforms runs chain over name in order and traces every change.
func ApplyTransforms(name string, chain []Transform, trace *Trace) string {
	if trace == nil {
		trace = &Trace{}
	}
	for _, t := range chain {
		if t.Apply == nil {
			continue
		}
		prev := name
		name = t.Apply(name)
		if name != prev {
			trace.Addf("%s: changed name to \"%s\".", t.Name, name)
		}
	}
	return name
}

// NewModifierRand returns a randomness source for modifiers, independent of
// any Mixer.
func NewModifierRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Modifiers returns the dormant post-processor catalogue drawing from rng.
// A nil rng uses NewModifierRand. None of them is part of the default chain.
func Modifiers(rng *rand.Rand) []Transform {
	if rng == nil {
		rng = NewModifierRand()
	}
	chance := func(p float64) bool { return rng.Float64() < p }
	pick := func(options []string) string { return options[rng.IntN(len(options))] }

	return []Transform{
		{Name: "9. Randomized Mood Modifiers", Apply: func(s string) string {
			if chance(0.2) {
				return s + " " + pick([]string{"vibes", "no cap", "smh"})
			}
			return s
		}},
		{Name: "11. Emoji/Emoticon Inspirations", Apply: func(s string) string {
			if utf8.RuneCountInString(s) < 20 && chance(0.3) {
				return s + " " + pick([]string{"😎", "😂", "🤖", "🔥"})
			}
			return s
		}},
		{Name: "12. Internet Slang Integration", Apply: func(s string) string {
			if chance(0.25) {
				return s + " " + pick([]string{"lit", "savage", "yeet"})
			}
			return s
		}},
		{Name: "13. Early Internet Nostalgia", Apply: func(s string) string {
			if strings.Contains(strings.ToLower(s), "analog") && chance(0.3) {
				return s + " " + pick([]string{"dial-up", "retro net"})
			}
			return s
		}},
		{Name: "14. Self-Awareness Meta Commentary", Apply: func(s string) string {
			if chance(0.15) {
				return s + " (error 404: identity not found)"
			}
			return s
		}},
		{Name: "19. Word Count Variability", Apply: func(s string) string {
			if !chance(0.2) {
				return s
			}
			words := strings.Split(s, " ")
			if len(words) != 2 {
				return s
			}
			return words[0] + " " + pick([]string{"the", "of", "and"}) + " " + words[1]
		}},
		{Name: "20. Hyper-Specific Pop Culture Reference", Apply: func(s string) string {
			if strings.Contains(strings.ToLower(s), "retro") && chance(0.2) {
				return s + " rickroll"
			}
			return s
		}},
		{Name: "22. Randomized Speed and Intensity Modifiers", Apply: func(s string) string {
			if chance(0.2) {
				return pick([]string{"turbo", "blitz", "flash"}) + " " + s
			}
			return s
		}},
		{Name: "23. Self-Deprecating Irony", Apply: func(s string) string {
			if containsAny(s, []string{"divine", "celestial", "epic"}) {
				return "wannabe " + s
			}
			return s
		}},
		{Name: "24. Mock-Inspirational Phrasing", Apply: func(s string) string {
			if chance(0.2) {
				return pick([]string{"epic", "zen"}) + " " + pick([]string{"cereal", "desk"})
			}
			return s
		}},
		{Name: "26. Seasonal/Temporal Tie-Ins", Apply: func(s string) string {
			return s + " (winter special)"
		}},
		{Name: "27. Unexpected Punctuation Influence", Apply: func(s string) string {
			if chance(0.2) {
				return strings.Replace(s, " ", " - ", 1)
			}
			return s
		}},
	}
}

// TransformsByName selects modifiers from catalogue by name, keeping catalogue
// order. Names match the full name or the label after the number prefix.
func TransformsByName(catalogue []Transform, names ...string) ([]Transform, error) {
	wanted := make(map[int]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		found := false
		for i, t := range catalogue {
			if strings.EqualFold(t.Name, name) || strings.EqualFold(ruleLabel(t.Name), name) {
				wanted[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
		}
	}
	out := make([]Transform, 0, len(wanted))
	for i, t := range catalogue {
		if wanted[i] {
			out = append(out, t)
		}
	}
	return out, nil
}
