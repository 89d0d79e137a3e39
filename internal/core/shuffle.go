// Package core provides the shuffle and truncation logic behind a draw.
package core

import (
	"math/rand/v2"
	"time"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

// Shuffle returns a uniformly random permutation of names.
// The input slice is left untouched.
func Shuffle(names []string) []string {
	return shuffleWith(names, rand.Shuffle)
}

// shuffleWith lets tests swap in a seeded source.
func shuffleWith(names []string, shuffle func(n int, swap func(i, j int))) []string {
	out := make([]string, len(names))
	copy(out, names)
	shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Truncate returns the first count names.
// A count of zero or less keeps every name; a count past the end is clamped.
func Truncate(names []string, count int) []string {
	if count <= 0 || count >= len(names) {
		return names
	}
	return names[:count]
}

// Draw shuffles names, keeps the first count of them and stamps the result.
func Draw(names []string, count int, now time.Time) (*model.Draw, error) {
	drawn := Truncate(Shuffle(names), count)
	return model.NewDraw(drawn, len(names), now)
}
