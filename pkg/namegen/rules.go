package namegen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchKind selects how a Rule compares the first word with a candidate.
type MatchKind int

const (
	// MatchTrigger requires a Required keyword in the candidate when the first
	// word contains a Trigger keyword. Otherwise the candidate passes.
	MatchTrigger MatchKind = iota
	// MatchSymmetric requires the candidate to contain a Required term exactly
	// when the first word does.
	MatchSymmetric
	// MatchSingleWord rejects multi-word candidates after a multi-word first word.
	MatchSingleWord
	// MatchLastLetter requires both words to end with the same letter.
	MatchLastLetter
	// MatchFirstLetter requires both words to start with the same letter.
	MatchFirstLetter
)

func (k MatchKind) String() string {
	switch k {
	case MatchTrigger:
		return "trigger"
	case MatchSymmetric:
		return "symmetric"
	case MatchSingleWord:
		return "single-word"
	case MatchLastLetter:
		return "last-letter"
	case MatchFirstLetter:
		return "first-letter"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// Rule is a named candidate filter. Keyword matching is a case-insensitive
// substring test.
type Rule struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     MatchKind `json:"kind" yaml:"kind"`
	Trigger  []string  `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Required []string  `json:"required,omitempty" yaml:"required,omitempty"`
}

// Match reports whether candidate may follow first.
func (r Rule) Match(first, candidate string) bool {
	switch r.Kind {
	case MatchTrigger:
		return !containsAny(first, r.Trigger) || containsAny(candidate, r.Required)
	case MatchSymmetric:
		return containsAny(first, r.Required) == containsAny(candidate, r.Required)
	case MatchSingleWord:
		return !isMultiWord(first) || !isMultiWord(candidate)
	case MatchLastLetter:
		f, ok := lastLetter(first)
		if !ok {
			return true
		}
		c, _ := lastLetter(candidate)
		return c == f
	case MatchFirstLetter:
		f, ok := firstLetter(first)
		if !ok {
			return true
		}
		c, _ := firstLetter(candidate)
		return c == f
	default:
		return true
	}
}

var explicitTerms = []string{"fuck", "shit", "damn", "bitch", "ass"}

var defaultRules = []Rule{
	{Name: "2. Explicit Consistency", Kind: MatchSymmetric, Required: explicitTerms},
	{
		Name:     "6. Nostalgia & Retro References",
		Trigger:  []string{"vintage", "retro"},
		Required: []string{"arcade", "samurai", "grunge"},
	},
	{
		Name:     "7. Tech-Infused Mythology",
		Trigger:  []string{"quantum", "cyber", "algorithmic", "digital"},
		Required: []string{"dragon", "phoenix", "oracle", "wizard"},
	},
	{
		Name:     "8. Subculture & Counter-Culture Twist",
		Trigger:  []string{"digital", "cyber"},
		Required: []string{"punk", "grunge", "anarchist"},
	},
	{
		Name:     "15. Unexpected Genre-Mashups",
		Trigger:  []string{"cyber", "quantum", "digital"},
		Required: []string{"punk", "rebel"},
	},
	{
		Name:     "16. Hyperbolic Adjective Amplification",
		Trigger:  []string{"intergalactic", "colossal", "epic"},
		Required: []string{"intergalactic", "colossal", "epic"},
	},
	{
		Name:     "17. Nerd-Rebel Hybridization",
		Trigger:  []string{"algorithm", "quantum", "digital"},
		Required: []string{"rogue", "outlaw", "anarchist"},
	},
	{
		Name:     "21. Subcultural Archetype Alignment",
		Trigger:  []string{"grunge", "punk", "boho"},
		Required: []string{"skater", "anarchist", "vagrant"},
	},
	{
		Name:     "28. Surreal Visual Imagery",
		Trigger:  []string{"ghost", "mirage", "phantom"},
		Required: []string{"vapor", "glitch"},
	},
	{
		Name:     "29. Dynamic Cultural Juxtaposition",
		Trigger:  []string{"renaissance", "classical"},
		Required: []string{"dank", "lame", "savage"},
	},
	{
		Name:     "30. Synesthetic Pairing Principle",
		Trigger:  []string{"luminous", "vibrant", "radiant"},
		Required: []string{"crunch", "silk", "spice"},
	},
}

// Dormant rules, applied only when enabled by name.
var optionalRules = []Rule{
	{
		Name:     "1. Meme & Trend Alignment",
		Trigger:  []string{"glitch", "vapor", "neon", "cyber"},
		Required: []string{"glitch", "vapor", "neon", "cyber"},
	},
	{Name: "3. Multi-Word Balance", Kind: MatchSingleWord},
	{
		Name:     "4. Abstract vs. Down-to-Earth",
		Trigger:  []string{"celestial", "nebular", "quantum", "singularity", "ethereal"},
		Required: []string{"clown", "ninja", "rogue", "guerilla"},
	},
	{Name: "5. Rhythm & Sound Matching", Kind: MatchLastLetter},
	{
		Name:     "10. Contextual Irony Injection",
		Trigger:  []string{"divine", "celestial", "infinite"},
		Required: []string{"clown", "dude", "goof"},
	},
	{
		Name:     "18. Literal vs. Figurative Play",
		Trigger:  []string{"abstract", "surreal", "mystic"},
		Required: []string{"robot", "ninja", "samurai", "clown"},
	},
	{Name: "25. Phonetic Alliteration/Rhyme", Kind: MatchFirstLetter},
}

// DefaultRules returns the active rule table in application order.
func DefaultRules() []Rule {
	return cloneRules(defaultRules)
}

// OptionalRules returns the dormant rules that can be enabled by name.
func OptionalRules() []Rule {
	return cloneRules(optionalRules)
}

// RulesByName resolves names against the active and dormant tables, keeping
// the order of names.
func RulesByName(names ...string) ([]Rule, error) {
	out := make([]Rule, 0, len(names))
	for _, name := range names {
		r, ok := lookupRule(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		out = append(out, r)
	}
	return out, nil
}

// lookupRule matches the full rule name, or its label without the number
// prefix, case-insensitively.
func lookupRule(name string) (Rule, bool) {
	name = strings.TrimSpace(name)
	for _, table := range [][]Rule{defaultRules, optionalRules} {
		for _, r := range table {
			if strings.EqualFold(r.Name, name) || strings.EqualFold(ruleLabel(r.Name), name) {
				return cloneRule(r), true
			}
		}
	}
	return Rule{}, false
}

// ruleLabel strips a leading "<n>. " from a rule name.
func ruleLabel(name string) string {
	if i := strings.Index(name, ". "); i > 0 {
		return name[i+2:]
	}
	return name
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = cloneRule(r)
	}
	return out
}

func cloneRule(r Rule) Rule {
	r.Trigger = append([]string(nil), r.Trigger...)
	r.Required = append([]string(nil), r.Required...)
	return r
}

func containsAny(word string, keywords []string) bool {
	word = strings.ToLower(word)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(word, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func isMultiWord(s string) bool {
	return strings.Contains(strings.TrimSpace(s), " ")
}

func firstLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), true
}

func lastLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.ToLower(r), true
}
