package core

import (
	"math/rand/v2"
	"sync"
)

type systemRandom struct{}

// SystemRandom draws from the process-wide math/rand/v2 generator.
func SystemRandom() Random {
	return systemRandom{}
}

func (systemRandom) IntN(n int) int {
	return rand.IntN(n)
}

type seededRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// SeededRandom returns a reproducible source, safe for concurrent use.
func SeededRandom(seed uint64) Random {
	return &seededRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Sequence replays fixed values, each reduced modulo n. Used by tests that
// need to pin a particular choice.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
