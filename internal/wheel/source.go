package wheel

import (
	"math/rand"

	"RouletteSim/internal/model"
)

// OutcomeSource picks the next color from a wheel layout.
type OutcomeSource interface {
	Next(colors []model.Color) model.Color
}

// RandomSource picks uniformly over all pockets. It is not safe for concurrent use;
// give every goroutine its own instance.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source backed by a private generator seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Next(colors []model.Color) model.Color {
	return colors[s.rng.Intn(len(colors))]
}

// SequenceSource ignores the wheel layout and replays a fixed sequence forever,
// wrapping to the start after the last element.
type SequenceSource struct {
	seq  []model.Color
	next int
}

// NewSequenceSource copies seq; an empty sequence is rejected.
func NewSequenceSource(seq []model.Color) (*SequenceSource, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	s := make([]model.Color, len(seq))
	copy(s, seq)
	return &SequenceSource{seq: s}, nil
}

func (s *SequenceSource) Next(_ []model.Color) model.Color {
	c := s.seq[s.next]
	s.next = (s.next + 1) % len(s.seq)
	return c
}

// Reset rewinds the sequence to its first element.
func (s *SequenceSource) Reset() { s.next = 0 }
