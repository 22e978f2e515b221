// SPDX-License-Identifier: MIT
package exercise_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/exercise"
)

func TestNewRecord_Envelope(t *testing.T) {
	res := exercise.Generate(exercise.Params{Terms: 3, MaxDegreeOrPower: 2, Mode: exercise.ModeNumeric},
		exercise.WithSeed(11))
	rec := exercise.NewRecord(res)

	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Problem, rec.Problem)
	assert.Equal(t, res.Solution, rec.Solution)
	assert.Equal(t, exercise.ModeNumeric, rec.Mode)
	assert.NotNil(t, rec.Notices)
	assert.Nil(t, rec.Seed)

	other := exercise.NewRecord(res)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestRecord_JSON(t *testing.T) {
	res := exercise.Generate(exercise.Params{Terms: 2, MaxDegreeOrPower: 1, Mode: exercise.ModeAlgebraic},
		exercise.WithSeed(3))
	b, err := json.Marshal(exercise.NewRecord(res).WithSeed(3))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "algebraic", m["mode"])
	assert.EqualValues(t, 3, m["seed"])
	assert.IsType(t, []any{}, m["notices"])
	params, ok := m["params"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, params["terms"])
	assert.Equal(t, "algebraic", params["mode"])
}
