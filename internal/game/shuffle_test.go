package game

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 11))

	for n := 0; n < 20; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 4
		}
		original := slices.Clone(in)

		out := Shuffle(src, in)

		require.Len(t, out, n)
		assert.Equal(t, original, in, "input must not be modified")
		assert.ElementsMatch(t, in, out)
	}
}

func TestShuffleCoversAllPositions(t *testing.T) {
	src := rand.New(rand.NewPCG(3, 5))
	seen := make(map[int]bool)

	for range 500 {
		out := Shuffle(src, []string{"a", "b", "c", "d"})
		seen[slices.Index(out, "a")] = true
	}
	assert.Len(t, seen, 4)
}

func TestShuffleDefaultSource(t *testing.T) {
	out := Shuffle(DefaultSource, []int{1, 2, 3})
	assert.ElementsMatch(t, []int{1, 2, 3}, out)
}
