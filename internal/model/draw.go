// Package model defines the core data structures for whiteelephant.
package model

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Draw is the outcome of a single draw: the shuffled, optionally truncated
// order of participants and when it was produced.
type Draw struct {
	ID      string    `json:"id" yaml:"id"`
	DrawnAt time.Time `json:"drawn_at" yaml:"drawn_at"`
	Names   []string  `json:"names" yaml:"names"`
	Total   int       `json:"total" yaml:"total"` // Names loaded before truncation
}

// NewDraw creates a Draw with a generated ULID.
func NewDraw(names []string, total int, drawnAt time.Time) (*Draw, error) {
	id, err := ulid.New(ulid.Timestamp(drawnAt), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	if names == nil {
		names = []string{}
	}

	return &Draw{
		ID:      id.String(),
		DrawnAt: drawnAt,
		Names:   names,
		Total:   total,
	}, nil
}

// Count returns the number of names in the draw.
func (d *Draw) Count() int {
	return len(d.Names)
}

// Truncated reports whether names were left out of the draw by a count limit.
func (d *Draw) Truncated() bool {
	return len(d.Names) < d.Total
}

// RelativeTime returns a human-readable relative time string,
// e.g. "3 minutes ago".
func (d *Draw) RelativeTime() string {
	return humanize.Time(d.DrawnAt)
}
