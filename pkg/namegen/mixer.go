package namegen

import (
	"fmt"
	"math/bits"
	"strconv"
	"sync"
	"time"
)

// Mixer is a linear congruential generator whose every step is perturbed by
// timing entropy. It owns its seed; concurrent callers are serialized.
//
// The zero value is not usable, construct it with NewMixer.
type Mixer struct {
	mu      sync.Mutex
	seed    uint64
	entropy Entropy
	now     func() time.Time
}

// NewMixer returns a mixer seeded from now. Nil arguments fall back to the
// wall clock and a ClockEntropy over it.
func NewMixer(entropy Entropy, now func() time.Time) *Mixer {
	if now == nil {
		now = time.Now
	}
	if entropy == nil {
		entropy = NewClockEntropy(now)
	}
	m := &Mixer{entropy: entropy, now: now}
	m.reset()
	return m
}

// Reset reseeds the mixer from its clock in milliseconds. It waits for an
// in-flight generation run to finish.
func (m *Mixer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// Seed returns the current seed.
func (m *Mixer) Seed() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seed
}

// SetSeed replaces the current seed.
func (m *Mixer) SetSeed(seed uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seed = seed
}

// Intn advances the seed once and returns a value in [0, max).
func (m *Mixer) Intn(max int, p Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if max <= 0 {
		return 0, fmt.Errorf("%w: max must be positive, got %d", ErrInvalidParameter, max)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.intn(max, p), nil
}

// Perturb folds n into the seed: seed = (seed + n*31) mod M.
func (m *Mixer) Perturb(n int, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.perturb(n, p)
	return nil
}

func (m *Mixer) reset() {
	ms := m.now().UnixMilli()
	if ms < 0 {
		ms = -ms
	}
	m.seed = uint64(ms)
}

// intn expects validated params and max > 0; the caller holds mu.
func (m *Mixer) intn(max int, p Params) int {
	mod := uint64(p.M)
	a := residue(p.A, p.M)
	c := residue(p.C, p.M)
	te := entropyResidue(m.entropy.Reading()*p.EntropyWeight, mod)

	hi, lo := bits.Mul64(a, m.seed%mod)
	m.seed = addMod(addMod(bits.Rem64(hi, lo, mod), c, mod), te, mod)

	combined := addMod(addMod(m.seed, hexEntropy(m.seed)%mod, mod), te, mod)
	return int(combined % uint64(max))
}

// perturb expects validated params; the caller holds mu.
func (m *Mixer) perturb(n int, p Params) {
	mod := uint64(p.M)
	hi, lo := bits.Mul64(residue(int64(n), p.M), 31)
	m.seed = addMod(m.seed%mod, bits.Rem64(hi, lo, mod), mod)
}

// addMod returns (x + y) mod m for x, y < m <= 1<<63.
func addMod(x, y, m uint64) uint64 {
	return (x + y) % m
}

// hexEntropy sums the character codes of the lowercase hex form of v.
func hexEntropy(v uint64) uint64 {
	var sum uint64
	for _, ch := range []byte(strconv.FormatUint(v, 16)) {
		sum += uint64(ch)
	}
	return sum
}
