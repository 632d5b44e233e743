package namegen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransforms(t *testing.T) {
	trace := &Trace{}
	chain := []Transform{
		{Name: "suffix", Apply: func(s string) string { return s + " vibes" }},
		{Name: "skip"},
		{Name: "same", Apply: func(s string) string { return s }},
	}

	got := ApplyTransforms("Neon Dreams", chain, trace)

	assert.Equal(t, "Neon Dreams vibes", got)
	assert.Equal(t, []string{`suffix: changed name to "Neon Dreams vibes".`}, trace.Lines())
}

func TestModifiers(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mods := Modifiers(rng)
	require.Len(t, mods, 12)

	byName := func(label string) Transform {
		chain, err := TransformsByName(mods, label)
		require.NoError(t, err)
		require.Len(t, chain, 1)
		return chain[0]
	}

	assert.Equal(t, "wannabe Epic Saga", byName("Self-Deprecating Irony").Apply("Epic Saga"))
	assert.Equal(t, "Neon Dreams", byName("Self-Deprecating Irony").Apply("Neon Dreams"))
	assert.Equal(t, "Neon Dreams (winter special)", byName("26. Seasonal/Temporal Tie-Ins").Apply("Neon Dreams"))
	assert.Equal(t, "Neon Dreams", byName("Early Internet Nostalgia").Apply("Neon Dreams"))

	// Stochastic modifiers either leave the name alone or extend it.
	for i := 0; i < 200; i++ {
		for _, m := range mods {
			out := m.Apply("Neon Dreams")
			if m.Name == "24. Mock-Inspirational Phrasing" || m.Name == "27. Unexpected Punctuation Influence" {
				continue
			}
			assert.True(t, strings.Contains(out, "Neon") && strings.Contains(out, "Dreams"), "%s produced %q", m.Name, out)
		}
	}
}

func TestModifiers_EmojiCountsCharacters(t *testing.T) {
	chain, err := TransformsByName(Modifiers(rand.New(rand.NewPCG(3, 4))), "Emoji/Emoticon Inspirations")
	require.NoError(t, err)
	require.Len(t, chain, 1)

	// 15 characters, 23 bytes.
	name := "Ünïcödé Ünïcödé"
	changed := false
	for range 200 {
		if chain[0].Apply(name) != name {
			changed = true
			break
		}
	}
	assert.True(t, changed, "short non-ASCII names are eligible")

	long := "Ünïcödé Ünïcödé Ünïcödé"
	for range 200 {
		assert.Equal(t, long, chain[0].Apply(long))
	}
}

func TestTransformsByName(t *testing.T) {
	mods := Modifiers(nil)

	chain, err := TransformsByName(mods, "27. Unexpected Punctuation Influence", "randomized mood modifiers")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "9. Randomized Mood Modifiers", chain[0].Name, "catalogue order is kept")

	_, err = TransformsByName(mods, "confetti")
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestTrace(t *testing.T) {
	tr := &Trace{}
	tr.Addf("a %d", 1)
	tr.Addf("b")
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, "a 1\nb", tr.String())

	lines := tr.Lines()
	lines[0] = "x"
	assert.Equal(t, "a 1", tr.Lines()[0])
}
