// SPDX-License-Identifier: MIT
// Package: lvlalg/randx
//
// rng.go — seeded sources, derived streams and the contention-safe shared source.
//
// Determinism:
//   • Same seed ⇒ identical draw sequence on every platform (math/rand v1).
//   • Derive consumes exactly one Int63 from the parent per call.

package randx

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSeed is used whenever a caller passes seed==0 or a nil generator.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; any other value is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// FromClock returns a generator seeded from the wall clock. It is the
// default for callers that did not ask for reproducibility.
func FromClock() *rand.Rand {
	return FromSeed(time.Now().UnixNano())
}

// OrDefault returns r, or a fresh DefaultSeed stream when r is nil.
// Factories call it so that a nil generator never panics.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return FromSeed(0)
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream id.
// base==nil uses DefaultSeed as parent; otherwise base.Int63() is consumed once
// so consecutive derivations with the same id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// lockedSource serializes access to an underlying rand.Source64.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	v := s.src.Int63()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// NewShared returns a *rand.Rand safe for concurrent use: each primitive draw
// from the source is atomic. Composite helpers (Shuffle, Perm) still take
// several draws, so two goroutines may interleave between them; results stay
// valid, only the exact sequence becomes schedule-dependent.
// seed==0 ⇒ clock seed.
func NewShared(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}
