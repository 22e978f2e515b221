// SPDX-License-Identifier: MIT
package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/cmd/lvlalg/cmd"
	"github.com/katalvlaran/lvlalg/config"
	"github.com/katalvlaran/lvlalg/exercise"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeLines(t *testing.T, out string) []exercise.Record {
	t.Helper()
	var recs []exercise.Record
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var r exercise.Record
		require.NoError(t, dec.Decode(&r))
		recs = append(recs, r)
	}
	return recs
}

func TestGenerate_Text(t *testing.T) {
	out, err := run(t, "generate", "--seed", "5", "--terms", "3", "--mode", "numeric")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "problem:  "))
	assert.Contains(t, out, " =\nsolution: ")
}

func TestGenerate_JSONLinesSeeded(t *testing.T) {
	out, err := run(t, "generate", "--seed", "100", "--count", "3", "--format", "json", "--mode", "algebraic", "--max", "2")
	require.NoError(t, err)
	recs := decodeLines(t, out)
	require.Len(t, recs, 3)
	for i, r := range recs {
		require.NotNil(t, r.Seed)
		assert.EqualValues(t, 100+i, *r.Seed)
		assert.True(t, strings.HasSuffix(r.Problem, " ="))
	}

	// The second exercise reproduces alone from its recorded seed.
	single, err := run(t, "generate", "--seed", "101", "--format", "json", "--mode", "algebraic", "--max", "2")
	require.NoError(t, err)
	again := decodeLines(t, single)
	require.Len(t, again, 1)
	assert.Equal(t, recs[1].Problem, again[0].Problem)
	assert.Equal(t, recs[1].Solution, again[0].Solution)
	assert.NotEqual(t, recs[1].ID, again[0].ID)
}

func TestGenerate_YAML(t *testing.T) {
	out, err := run(t, "generate", "--seed", "9", "--count", "2", "--format", "yaml")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "numeric", docs[0]["mode"])
	assert.NotEmpty(t, docs[0]["problem"])
	assert.Contains(t, docs[1], "notices")
}

func TestGenerate_Pretty(t *testing.T) {
	out, err := run(t, "generate", "--seed", "2", "--format", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "Exercise 1")
	assert.Contains(t, out, "problem")
	assert.Contains(t, out, "solution")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := run(t, "generate", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "generate", "--count", "0")
	assert.ErrorContains(t, err, "--count")

	_, err = run(t, "generate", "--count", "1000000000")
	assert.ErrorContains(t, err, "--count")

	_, err = run(t, "generate", "--terms", "1000000000")
	assert.ErrorIs(t, err, config.ErrLimitExceeded)

	_, err = run(t, "generate", "--mode", "numeric", "--max", "16777216")
	assert.ErrorIs(t, err, config.ErrLimitExceeded)

	_, err = run(t, "generate", "--mode", "geometric")
	assert.ErrorIs(t, err, exercise.ErrUnknownMode)
}

func TestGenerate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlalg.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[generator]
mode = "algebraic"
min_terms = 4
max_terms = 4
seed = 77
`), 0o600))

	out, err := run(t, "generate", "--config", path, "--format", "json")
	require.NoError(t, err)
	recs := decodeLines(t, out)
	require.Len(t, recs, 1)
	assert.Equal(t, exercise.ModeAlgebraic, recs[0].Mode)
	assert.Equal(t, 4, recs[0].Params.Terms)
	require.NotNil(t, recs[0].Seed)
	assert.EqualValues(t, 77, *recs[0].Seed)
}

func TestServe_InvalidPort(t *testing.T) {
	_, err := run(t, "serve", "--port", "70000")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lvlalg "))
}
