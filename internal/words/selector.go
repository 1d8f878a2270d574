package words

import (
	"errors"
	"math/rand"
)

// ErrNoWords is returned when Pick is called with an empty list.
var ErrNoWords = errors.New("no words to pick from")

// RandomSelector picks words uniformly at random. It satisfies
// game.WordSelector. The same seed yields the same sequence of picks.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector drawing from rng.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

// NewSeededSelector creates a selector with its own source seeded by seed.
func NewSeededSelector(seed int64) *RandomSelector {
	return NewRandomSelector(rand.New(rand.NewSource(seed)))
}

// Pick returns one of words.
func (s *RandomSelector) Pick(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	return words[s.rng.Intn(len(words))], nil
}
