// SPDX-License-Identifier: MIT

// Package server exposes the exercise generator over HTTP.
//
// Module is a go-monolith/mono module that owns a fiber application:
//
//	GET /              HTML page with one exercise, solution hidden behind a toggle
//	GET /api/exercise  JSON envelope {id, mode, params, problem, solution, notices}
//	GET /health        mono.HealthStatus as JSON
//
// The page wraps problem and solution in $$…$$ for MathJax; this is the only
// place display-math delimiters are added. Requests without an explicit seed
// share one contention-safe random stream (randx.NewShared).
package server
