// Package reservoir picks one token uniformly at random from a stream of
// unknown length in a single pass (Knuth's reservoir sampling, k = 1).
//
// The i-th token replaces the current champion with probability 1/i, so
// after m tokens each one is the champion with probability 1/m.
//
// Complexity: O(1) per token, O(1) memory.
package reservoir

import (
	"errors"

	"github.com/katalvlaran/percolate/random"
)

// ErrEmpty indicates that no token was offered.
var ErrEmpty = errors.New("reservoir: no tokens")

// Sampler holds the running champion. The zero value is not usable; call NewSampler.
type Sampler struct {
	src      random.Source
	seen     int
	champion string
}

// NewSampler returns a Sampler drawing coin flips from src. Panics on nil src.
func NewSampler(src random.Source) *Sampler {
	if src == nil {
		panic("reservoir: NewSampler(nil)")
	}
	return &Sampler{src: src}
}

// Offer feeds the next token.
func (s *Sampler) Offer(token string) {
	s.seen++
	if s.src.Bernoulli(1 / float64(s.seen)) {
		s.champion = token
	}
}

// Champion returns the current pick; ok is false until a token has been offered.
func (s *Sampler) Champion() (token string, ok bool) {
	return s.champion, s.seen > 0
}

// Seen returns how many tokens have been offered.
func (s *Sampler) Seen() int { return s.seen }

// Pick returns one element of tokens chosen uniformly at random.
//
// Errors: ErrEmpty if tokens is empty.
func Pick(src random.Source, tokens []string) (string, error) {
	s := NewSampler(src)
	for _, tok := range tokens {
		s.Offer(tok)
	}
	champ, ok := s.Champion()
	if !ok {
		return "", ErrEmpty
	}
	return champ, nil
}
