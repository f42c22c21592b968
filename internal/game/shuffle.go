package game

import "math/rand/v2"

// Source supplies the randomness for shuffles. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the runtime's concurrency-safe generator
var DefaultSource Source = globalSource{}

// Shuffle returns a uniformly permuted copy of items (Fisher–Yates).
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
