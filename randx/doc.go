// SPDX-License-Identifier: MIT

// Package randx centralizes the random sources used by the generators.
//
// Every factory in lvlalg takes an explicit *rand.Rand. There is no
// package-level generator: callers seed what they need and pass it down.
//
// What this package offers:
//
//   - FromSeed:   deterministic *rand.Rand; seed==0 maps to DefaultSeed.
//   - OrDefault:  nil-safe accessor used by factories (nil ⇒ DefaultSeed stream).
//   - Derive:     independent child streams (per exercise, per worker).
//   - NewShared:  a *rand.Rand whose source is guarded by a mutex, so one
//     handle can serve concurrent HTTP requests with every draw atomic.
//
// Concurrency:
//
//	A plain *rand.Rand is NOT goroutine-safe. Use NewShared when a handle
//	crosses goroutines, or Derive one stream per goroutine.
package randx
