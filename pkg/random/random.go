// pkg/random/random.go

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source produces uniform draws in [0,1). It is the single randomness
// capability injected into the simulation: given the same draws, every
// downstream component is deterministic.
type Source interface {
	Float64() float64
}

// Seeded is a PCG-backed Source. Two runs with the same seed pair produce
// identical draw sequences.
type Seeded struct {
	rnd *rand.Rand
}

// NewSeeded creates a Seeded source from a seed pair.
func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *Seeded) Float64() float64 {
	return s.rnd.Float64()
}

// Sequence cycles through a fixed list of draws. It makes simulation
// behavior fully scripted for tests and reproducible demos.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over values. At least one value is
// required; draws repeat from the start once the list is exhausted.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return &Sequence{values: copied}
}

func (s *Sequence) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Split derives an independently seeded source from the next two draws of
// base. Splitting is sequential and deterministic, so workers fed split
// sources can draw concurrently without sharing base.
func Split(base Source) *Seeded {
	const mantissa = 1 << 53
	seed1 := uint64(base.Float64() * mantissa)
	seed2 := uint64(base.Float64() * mantissa)
	return NewSeeded(seed1, seed2)
}

// CryptoSeed generates a random seed using crypto/rand.
func CryptoSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
