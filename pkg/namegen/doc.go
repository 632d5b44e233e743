// Package namegen generates two-word "aesthetic names" such as
// "Cyber Punk Dragon" and records a human-readable trace of every decision
// taken along the way.
//
// A name is built in five stages:
//
//  1. A first word is drawn from Corpus.First with the Mixer.
//  2. The seed is perturbed by the first word's length.
//  3. Every index of Corpus.Second is run through the rule table. Rules only
//     ever narrow the pool; if nothing survives, the full pool is restored.
//  4. A second word is drawn from the surviving pool.
//  5. The joined name passes through the post-processor chain (empty by default).
//
// # Randomness
//
//   - Mixer is a linear congruential generator, seed = (A*seed + C + t) mod M,
//     where t is a timing entropy reading scaled by Params.EntropyWeight. The
//     output additionally mixes the character codes of the seed's hex form.
//   - Arithmetic is exact modulo M for any M that fits in an int64.
//   - The generator owns its Mixer, so runs on one Generator are serialized
//     and independent Generators never share a seed. Inject FixedEntropy and a
//     fixed clock (WithEntropy, WithClock) to make runs reproducible.
//   - The output is not suitable for cryptographic use.
//
// # Rules
//
// Rules are data: a name, a MatchKind and keyword sets evaluated by a single
// matcher. DefaultRules returns the active table in application order; the
// order is observable through the trace. OptionalRules lists dormant rules
// that can be enabled with RulesByName and WithExtraRules.
//
// # Usage
//
//	g, err := namegen.New()
//	if err != nil {
//		return err
//	}
//	g.ResetSeed()
//	res, err := g.Generate(ctx, namegen.DefaultParams())
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Name)
//	fmt.Println(res.DebugLog)
//
// The package-level AdvancedRandom, GenerateWithDebug and ResetSeed helpers
// operate on a shared default generator.
package namegen
