package actor

import (
	"math/rand/v2"
	"time"
)

// Roller is the single source of randomness for combat. Float64 returns a
// value in [0,1).
type Roller interface {
	Float64() float64
}

// NewRandomRoller returns a seeded roller. A zero seed uses the clock.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// FixedRoller always returns the same value.
type FixedRoller float64

func (f FixedRoller) Float64() float64 { return float64(f) }

// SequenceRoller returns its values in order, wrapping around at the end.
type SequenceRoller struct {
	Values []float64
	next   int
}

func (s *SequenceRoller) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
