package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aesthetic/pkg/config"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	out, err := run(t, context.Background(), "generate", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Contains(t, line, " ")
	}
}

func TestGenerateCmd_CountAboveHistorySize(t *testing.T) {
	t.Setenv("HISTORY_SIZE", "3")

	out, err := run(t, context.Background(), "generate", "-n", "5")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)

	out, err = run(t, context.Background(), "generate", "-n", "5", "--json")
	require.NoError(t, err)
	dec := json.NewDecoder(strings.NewReader(out))
	n := 0
	for dec.More() {
		var res namegen.Result
		require.NoError(t, dec.Decode(&res))
		n++
	}
	assert.Equal(t, 5, n)
}

func TestGenerateCmd_Corpus(t *testing.T) {
	out, err := run(t, context.Background(), "generate", "--corpus", "testdata/corpus.yaml", "-w", "0")
	require.NoError(t, err)
	assert.Equal(t, "Quantum Oracle\n", out)
}

func TestGenerateCmd_Debug(t *testing.T) {
	out, err := run(t, context.Background(), "generate", "--debug", "--corpus", "testdata/corpus.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `Selected first word: "Quantum" at index 0.`)
	assert.Contains(t, out, `Final generated name: "Quantum Oracle".`)
}

func TestGenerateCmd_JSON(t *testing.T) {
	out, err := run(t, context.Background(), "generate", "--json", "-n", "2", "-a", "5", "-c", "3", "-m", "16")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	for range 2 {
		var res namegen.Result
		require.NoError(t, dec.Decode(&res))
		assert.NotEmpty(t, res.Name)
		assert.Equal(t, int64(16), res.Params.M)
		assert.Equal(t, int64(5), res.Params.A)
	}
}

func TestGenerateCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bad modulus", []string{"generate", "-m", "1"}, namegen.ErrInvalidParameter},
		{"negative weight", []string{"generate", "-w", "-0.5"}, namegen.ErrInvalidParameter},
		{"zero count", []string{"generate", "-n", "0"}, namegen.ErrInvalidParameter},
		{"unknown rule", []string{"generate", "--rules", "Vibes Only"}, namegen.ErrUnknownRule},
		{"unknown modifier", []string{"generate", "--modifiers", "sparkles"}, namegen.ErrUnknownTransform},
		{"missing corpus", []string{"generate", "--corpus", "testdata/missing.yaml"}, namegen.ErrInvalidCorpus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, context.Background(), tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateCmd_OptionalRulesAndModifiers(t *testing.T) {
	out, err := run(t, context.Background(), "generate",
		"--rules", "Multi-Word Balance",
		"--modifiers", "Randomized Mood Modifiers",
		"-n", "5",
	)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestRandomCmd(t *testing.T) {
	out, err := run(t, context.Background(), "random", "--max", "5", "-n", "20")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}

	_, err = run(t, context.Background(), "random", "--max", "0")
	assert.ErrorIs(t, err, namegen.ErrInvalidParameter)
}

func TestRulesCmd(t *testing.T) {
	out, err := run(t, context.Background(), "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "2. Explicit Consistency")
	assert.Contains(t, out, "30. Synesthetic Pairing Principle")
	assert.NotContains(t, out, "Meme & Trend Alignment")

	out, err = run(t, context.Background(), "rules", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "optional")
	assert.Contains(t, out, "1. Meme & Trend Alignment")
	assert.Contains(t, out, "9. Randomized Mood Modifiers")
}

func TestServeCmd_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(t, ctx, "serve", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestCorpusFileCheck(t *testing.T) {
	a := &app{}
	assert.Empty(t, a.corpusFileCheck())

	a.cfg.Generator.CorpusPath = "testdata/corpus.yaml"
	checks := a.corpusFileCheck()
	require.Len(t, checks, 1)
	assert.NoError(t, checks[0](context.Background()))

	a.cfg.Generator.CorpusPath = "testdata/missing.yaml"
	checks = a.corpusFileCheck()
	require.Len(t, checks, 1)
	assert.ErrorIs(t, checks[0](context.Background()), namegen.ErrInvalidCorpus)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := run(t, context.Background(), "rules")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
