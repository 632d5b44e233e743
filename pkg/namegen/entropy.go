package namegen

import (
	"math"
	"time"
)

// Entropy supplies the timing jitter mixed into every PRNG step.
// Readings are expected to grow over time; the mixer only uses their integer part.
type Entropy interface {
	Reading() float64
}

// EntropyFunc adapts a plain function to Entropy.
type EntropyFunc func() float64

func (f EntropyFunc) Reading() float64 { return f() }

// FixedEntropy always returns the same reading. Use it to make runs reproducible.
type FixedEntropy float64

func (f FixedEntropy) Reading() float64 { return float64(f) }

// ClockEntropy reports the elapsed time since its creation in microseconds,
// using the monotonic clock reading carried by now().
type ClockEntropy struct {
	now    func() time.Time
	origin time.Time
}

// NewClockEntropy creates a ClockEntropy backed by now. A nil now uses time.Now.
func NewClockEntropy(now func() time.Time) *ClockEntropy {
	if now == nil {
		now = time.Now
	}
	return &ClockEntropy{now: now, origin: now()}
}

func (c *ClockEntropy) Reading() float64 {
	return float64(c.now().Sub(c.origin)) / float64(time.Microsecond)
}

// entropyResidue returns floor(te) mod m, treating negative and non-finite
// readings as zero.
func entropyResidue(te float64, m uint64) uint64 {
	if math.IsNaN(te) || math.IsInf(te, 0) {
		return 0
	}
	f := math.Floor(te)
	if f <= 0 {
		return 0
	}
	if f < 1<<63 {
		return uint64(f) % m
	}
	return uint64(math.Mod(f, float64(m)))
}
