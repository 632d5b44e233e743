package namegen

import (
	"context"
	"sync"
)

var (
	defaultGenerator *Generator
	defaultOnce      sync.Once
)

// Default returns the shared package-level generator over the built-in corpus.
func Default() *Generator {
	defaultOnce.Do(func() {
		g, err := New()
		if err != nil {
			panic("namegen: built-in corpus is invalid: " + err.Error())
		}
		defaultGenerator = g
	})
	return defaultGenerator
}

// AdvancedRandom draws a value in [0, max) from the default generator.
func AdvancedRandom(max int, p Params) (int, error) {
	return Default().Random(max, p)
}

// GenerateWithDebug generates a name with the default generator and returns
// the name with its newline-joined trace.
func GenerateWithDebug(p Params) (name, debugLog string, err error) {
	res, err := Default().Generate(context.Background(), p)
	if err != nil {
		return "", "", err
	}
	return res.Name, res.DebugLog, nil
}

// ResetSeed reseeds the default generator from the wall clock.
func ResetSeed() {
	Default().ResetSeed()
}
