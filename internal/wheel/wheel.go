package wheel

import (
	"errors"
	"fmt"

	"RouletteSim/internal/model"
)

var (
	// ErrInvalidConfig is returned for any wheel that cannot be built as requested.
	ErrInvalidConfig = errors.New("invalid wheel config")
	// ErrEmptySequence is returned when a SequenceSource is given no colors.
	ErrEmptySequence = fmt.Errorf("%w: outcome sequence must have at least one color", ErrInvalidConfig)
)

// Wheel is a fixed ring of colored pockets plus the source that picks one per play.
type Wheel struct {
	colors []model.Color
	source OutcomeSource
}

// New builds a wheel of size pockets. An odd size carries exactly one GREEN pocket and
// requires includeGreen; an even size has no GREEN pocket and requires !includeGreen.
func New(size int, includeGreen bool, src OutcomeSource) (*Wheel, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, size)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: outcome source is nil", ErrInvalidConfig)
	}
	odd := size%2 == 1
	if odd && !includeGreen {
		return nil, fmt.Errorf("%w: odd size %d needs a green pocket", ErrInvalidConfig, size)
	}
	if !odd && includeGreen {
		return nil, fmt.Errorf("%w: even size %d cannot hold a single green pocket", ErrInvalidConfig, size)
	}

	colors := make([]model.Color, 0, size)
	for i := 0; i < size/2; i++ {
		colors = append(colors, model.Black, model.Red)
	}
	if includeGreen {
		colors = append(colors, model.Green)
	}

	return &Wheel{colors: colors, source: src}, nil
}

// Play spins the wheel once.
func (w *Wheel) Play() model.Color {
	return w.source.Next(w.colors)
}

// Size returns the number of pockets.
func (w *Wheel) Size() int { return len(w.colors) }

// Colors returns a copy of the pocket layout.
func (w *Wheel) Colors() []model.Color {
	out := make([]model.Color, len(w.colors))
	copy(out, w.colors)
	return out
}

// Count returns how many times c appears in colors.
func Count(colors []model.Color, c model.Color) int {
	n := 0
	for _, v := range colors {
		if v == c {
			n++
		}
	}
	return n
}
