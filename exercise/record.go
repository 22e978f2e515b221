// SPDX-License-Identifier: MIT
// Package: lvlalg/exercise
//
// record.go — the serializable envelope shared by the HTTP API and the CLI.

package exercise

import "github.com/google/uuid"

// Record is a Result stripped of expression trees and tagged with a random
// identifier. Notices is never nil so JSON renders [] rather than null.
type Record struct {
	ID         string   `json:"id" yaml:"id"`
	Mode       Mode     `json:"mode" yaml:"mode"`
	Params     Params   `json:"params" yaml:"params"`
	Problem    string   `json:"problem" yaml:"problem"`
	Solution   string   `json:"solution" yaml:"solution"`
	Simplified bool     `json:"simplified" yaml:"simplified"`
	Notices    []Notice `json:"notices" yaml:"notices"`
	Seed       *int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// NewRecord wraps r with a fresh UUIDv4.
func NewRecord(r Result) Record {
	notices := r.Notices
	if notices == nil {
		notices = []Notice{}
	}
	return Record{
		ID:         uuid.NewString(),
		Mode:       r.Params.Mode,
		Params:     r.Params,
		Problem:    r.Problem,
		Solution:   r.Solution,
		Simplified: r.Simplified(),
		Notices:    notices,
	}
}

// WithSeed records the seed that reproduces the exercise.
func (rec Record) WithSeed(seed int64) Record {
	rec.Seed = &seed
	return rec
}
