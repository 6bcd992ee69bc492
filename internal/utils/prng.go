package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random decision in the game
// (map layout, spawn variation, freeze rolls, particles) is reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a number in [lo, hi], both inclusive.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a number in [lo, hi).
func (s *PRNGService) FloatRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// VariableInt returns base shifted by a uniform offset in [-variation, variation].
func (s *PRNGService) VariableInt(base, variation int) int {
	if variation < 0 {
		variation = -variation
	}
	return base + s.IntRange(-variation, variation)
}

// VariableFloat returns base shifted by a uniform offset in [-variation, variation).
func (s *PRNGService) VariableFloat(base, variation float64) float64 {
	if variation < 0 {
		variation = -variation
	}
	return base + s.FloatRange(-variation, variation)
}

// Percent reports whether a roll succeeds with the given chance in percent.
// 100 or more always succeeds, 0 or less never does.
func (s *PRNGService) Percent(chance int) bool {
	return s.rng.Intn(100) < chance
}

// Choice returns a random index for a collection of length n, or -1 when n is 0.
func (s *PRNGService) Choice(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}
