package namegen

import (
	"fmt"
	"math"
)

// Params are the per-call generator settings. They are not retained by the
// generator between calls.
type Params struct {
	// A is the LCG multiplier.
	A int64 `json:"a"`
	// C is the LCG increment.
	C int64 `json:"c"`
	// M is the LCG modulus and must exceed 1.
	M int64 `json:"m"`
	// EntropyWeight scales the timing entropy mixed into every step.
	// 0 disables it, 1 mixes the full reading.
	EntropyWeight float64 `json:"entropy_weight"`
}

// Default parameter values.
const (
	DefaultA             int64   = 1664525
	DefaultC             int64   = 1013904223
	DefaultM             int64   = 1 << 32
	DefaultEntropyWeight float64 = 1.0
)

// DefaultParams returns the Numerical Recipes LCG constants with full entropy.
func DefaultParams() Params {
	return Params{
		A:             DefaultA,
		C:             DefaultC,
		M:             DefaultM,
		EntropyWeight: DefaultEntropyWeight,
	}
}

// Validate reports ErrInvalidParameter for a modulus below 2 or a negative,
// NaN or infinite entropy weight.
func (p Params) Validate() error {
	if p.M <= 1 {
		return fmt.Errorf("%w: modulus M must be greater than 1, got %d", ErrInvalidParameter, p.M)
	}
	if math.IsNaN(p.EntropyWeight) || math.IsInf(p.EntropyWeight, 0) {
		return fmt.Errorf("%w: entropy weight must be finite", ErrInvalidParameter)
	}
	if p.EntropyWeight < 0 {
		return fmt.Errorf("%w: entropy weight must be >= 0, got %g", ErrInvalidParameter, p.EntropyWeight)
	}
	return nil
}

// residue returns v mod m in [0, m) for any sign of v.
func residue(v, m int64) uint64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}
