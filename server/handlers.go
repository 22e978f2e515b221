// SPDX-License-Identifier: MIT
// Package: lvlalg/server
//
// handlers.go — request parsing and generation for the page and the JSON API.
//
// Query parameters (all optional, /api/exercise only):
//   terms     int   2..terms_limit, default drawn from [min_terms, max_terms]
//   max       int   1..degree_or_power_limit, default generator.max_degree_or_power
//   integers  bool  default generator.include_integers
//   mode      "numeric" | "algebraic", default generator.mode
//   seed      int64 reproducible stream; absent ⇒ shared stream

package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/katalvlaran/lvlalg/exercise"
)

// ErrGeneration marks a generation call that panicked.
var ErrGeneration = errors.New("server: exercise generation failed")

// request is one parsed generation request.
type request struct {
	params  exercise.Params
	seed    int64
	hasSeed bool
}

// defaultRequest uses the configured generator defaults; the term count is
// drawn uniformly from [MinTerms, MaxTerms].
func (m *Module) defaultRequest() request {
	g := m.cfg.Generator
	terms := g.MinTerms
	if span := g.MaxTerms - g.MinTerms; span > 0 {
		terms += m.rng.Intn(span + 1)
	}
	return request{params: exercise.Params{
		Terms:            terms,
		MaxDegreeOrPower: g.MaxDegreeOrPower,
		IncludeIntegers:  g.IncludeIntegers,
		Mode:             g.ParsedMode(),
	}}
}

func (m *Module) parseRequest(c *fiber.Ctx) (request, error) {
	req := m.defaultRequest()
	if v := c.Query("terms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("terms: %q is not an integer", v))
		}
		req.params.Terms = n
	}
	if v := c.Query("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("max: %q is not an integer", v))
		}
		req.params.MaxDegreeOrPower = n
	}
	if v := c.Query("integers"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("integers: %q is not a boolean", v))
		}
		req.params.IncludeIntegers = b
	}
	if v := c.Query("mode"); v != "" {
		mode, err := exercise.ParseMode(v)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.params.Mode = mode
	}
	if v := c.Query("seed"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("seed: %q is not an integer", v))
		}
		req.seed, req.hasSeed = s, true
	}
	if err := m.cfg.Generator.CheckLimits(req.params.Terms, req.params.MaxDegreeOrPower); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return req, nil
}

// generate runs one exercise and converts a panic into ErrGeneration.
func (m *Module) generate(req request) (res exercise.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGeneration, r)
		}
	}()

	opts := []exercise.Option{exercise.WithLogger(m.logger)}
	if req.hasSeed {
		opts = append(opts, exercise.WithSeed(req.seed))
	} else {
		opts = append(opts, exercise.WithRand(m.rng))
	}
	return m.generateFn(req.params, opts...), nil
}

func (m *Module) handleExercise(c *fiber.Ctx) error {
	req, err := m.parseRequest(c)
	if err != nil {
		return err
	}
	res, err := m.generate(req)
	if err != nil {
		return err
	}
	rec := exercise.NewRecord(res)
	if req.hasSeed {
		rec = rec.WithSeed(req.seed)
	}
	return c.JSON(rec)
}

func (m *Module) handleIndex(c *fiber.Ctx) error {
	data := pageData{Title: pageTitle}
	res, err := m.generate(m.defaultRequest())
	if err != nil {
		m.logger.Error("page generation failed", "error", err)
		data.Problem, data.Solution, data.Failed = fallbackProblem, fallbackSolution, true
	} else {
		data.Problem, data.Solution = res.Problem, res.Solution
	}
	return m.renderPage(c, data)
}
