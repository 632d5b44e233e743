package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Match(t *testing.T) {
	explicit := defaultRules[0]
	techMyth := defaultRules[2]

	tests := []struct {
		name      string
		rule      Rule
		first     string
		candidate string
		want      bool
	}{
		{"explicit first needs explicit candidate", explicit, "Damn Fine", "Oracle", false},
		{"explicit pair passes", explicit, "Damn Fine", "Shitposter", true},
		{"clean first rejects explicit candidate", explicit, "Quantum", "Damn Wizard", false},
		{"clean pair passes", explicit, "Quantum", "Oracle", true},
		{"trigger requires keyword", techMyth, "Quantum", "Toast", false},
		{"trigger satisfied", techMyth, "Quantum", "Oracle", true},
		{"match is case-insensitive", techMyth, "QUANTUM leap", "the ORACLE", true},
		{"no trigger passes anything", techMyth, "Velvet", "Toast", true},
		{"single word after multi word", Rule{Kind: MatchSingleWord}, "Damn Fine", "Oracle", true},
		{"multi word after multi word", Rule{Kind: MatchSingleWord}, "Damn Fine", "Dank Meme", false},
		{"multi word after single word", Rule{Kind: MatchSingleWord}, "Neon", "Dank Meme", true},
		{"last letter match", Rule{Kind: MatchLastLetter}, "Neon", "Dragon", true},
		{"last letter mismatch", Rule{Kind: MatchLastLetter}, "Neon", "Punk", false},
		{"last letter empty first passes", Rule{Kind: MatchLastLetter}, " ", "Punk", true},
		{"first letter match", Rule{Kind: MatchFirstLetter}, "Pixel", "punk", true},
		{"first letter mismatch", Rule{Kind: MatchFirstLetter}, "Pixel", "Rogue", false},
		{"unknown kind passes", Rule{Kind: MatchKind(99)}, "a", "b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Match(tt.first, tt.candidate))
		})
	}
}

func TestDefaultRules_Order(t *testing.T) {
	names := make([]string, 0, len(defaultRules))
	for _, r := range DefaultRules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"2. Explicit Consistency",
		"6. Nostalgia & Retro References",
		"7. Tech-Infused Mythology",
		"8. Subculture & Counter-Culture Twist",
		"15. Unexpected Genre-Mashups",
		"16. Hyperbolic Adjective Amplification",
		"17. Nerd-Rebel Hybridization",
		"21. Subcultural Archetype Alignment",
		"28. Surreal Visual Imagery",
		"29. Dynamic Cultural Juxtaposition",
		"30. Synesthetic Pairing Principle",
	}, names)
}

func TestDefaultRules_ReturnsCopy(t *testing.T) {
	rules := DefaultRules()
	rules[0].Required[0] = "changed"
	rules[1].Name = "changed"
	assert.Equal(t, "fuck", defaultRules[0].Required[0])
	assert.Equal(t, "6. Nostalgia & Retro References", defaultRules[1].Name)
}

func TestRulesByName(t *testing.T) {
	t.Run("full names and labels", func(t *testing.T) {
		rules, err := RulesByName("25. Phonetic Alliteration/Rhyme", "multi-word balance", "Tech-Infused Mythology")
		require.NoError(t, err)
		require.Len(t, rules, 3)
		assert.Equal(t, MatchFirstLetter, rules[0].Kind)
		assert.Equal(t, "3. Multi-Word Balance", rules[1].Name)
		assert.Equal(t, "7. Tech-Infused Mythology", rules[2].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := RulesByName("Explicit Consistency", "nope")
		assert.ErrorIs(t, err, ErrUnknownRule)
	})
}

func TestOptionalRules(t *testing.T) {
	rules := OptionalRules()
	assert.Len(t, rules, 7)
	for _, r := range rules {
		for _, d := range defaultRules {
			assert.NotEqual(t, d.Name, r.Name)
		}
	}
}

func TestMatchKind_String(t *testing.T) {
	assert.Equal(t, "trigger", MatchTrigger.String())
	assert.Equal(t, "symmetric", MatchSymmetric.String())
	assert.Equal(t, "MatchKind(42)", MatchKind(42).String())
}
