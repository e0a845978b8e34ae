package exercise

import "math/rand"

// shuffle permutes items in place with a Fisher–Yates walk: every
// permutation of the input is equally likely.
func shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
