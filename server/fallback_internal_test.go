// SPDX-License-Identifier: MIT
package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/config"
	"github.com/katalvlaran/lvlalg/exercise"
)

func panickingModule() *Module {
	m := New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.generateFn = func(exercise.Params, ...exercise.Option) exercise.Result {
		panic("boom")
	}
	return m
}

func TestIndex_FallbackOnPanic(t *testing.T) {
	m := panickingModule()
	resp, err := m.App().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `class="failed"`)
	assert.Contains(t, string(body), fallbackProblem)
	assert.Contains(t, string(body), fallbackSolution)
}

func TestExerciseAPI_PanicIsServerError(t *testing.T) {
	m := panickingModule()
	resp, err := m.App().Test(httptest.NewRequest(http.MethodGet, "/api/exercise", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestDefaultRequest_TermRange(t *testing.T) {
	cfg := config.Default()
	cfg.Generator.Seed = 5
	cfg.Generator.MinTerms, cfg.Generator.MaxTerms = 3, 5
	m := New(cfg, nil)

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		req := m.defaultRequest()
		require.GreaterOrEqual(t, req.params.Terms, 3)
		require.LessOrEqual(t, req.params.Terms, 5)
		seen[req.params.Terms] = true
		assert.False(t, req.hasSeed)
	}
	assert.Len(t, seen, 3)
}
