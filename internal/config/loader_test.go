package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npgraph/internal/config"
)

const smokeSuite = `
name: smoke
seed: 42
verify: true
cases:
  - problem: path
    algorithm: fw
    n: 64
    p: 0.05
    u: 0
    v: 63
  - problem: clique
    n: 24
    p: 0.5
    k: 4
  - problem: sat
    formula: "((c+b+-c)*(a+b+c)*(-a+b+c))"
`

func TestParse_Smoke(t *testing.T) {
	t.Parallel()

	s, err := config.Parse([]byte(smokeSuite))
	require.NoError(t, err)

	assert.Equal(t, "smoke", s.Name)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 1, s.Repeat, "repeat defaults to 1")
	assert.True(t, s.Verify)
	require.Len(t, s.Cases, 3)

	assert.Equal(t, config.ProblemPath, s.Cases[0].Problem)
	assert.Equal(t, config.AlgoFloydWarshall, s.Cases[0].Algorithm)
	assert.Equal(t, "path-fw", s.Cases[0].Name)
	assert.Equal(t, 63, s.Cases[0].V)

	assert.Equal(t, config.AlgoGreedy, s.Cases[1].Algorithm)
	assert.Equal(t, 4, s.Cases[1].K)

	assert.Equal(t, config.AlgoGreedy, s.Cases[2].Algorithm)
	assert.Equal(t, "sat-greedy", s.Cases[2].Name)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"no name", "cases:\n  - problem: sat\n    formula: \"(a)\"\n"},
		{"no cases", "name: x\n"},
		{"unknown problem", "name: x\ncases:\n  - problem: tsp\n    n: 3\n    p: 0.5\n"},
		{"path without n", "name: x\ncases:\n  - problem: path\n    p: 0.5\n"},
		{"clique without p", "name: x\ncases:\n  - problem: clique\n    n: 5\n    k: 2\n"},
		{"p above one", "name: x\ncases:\n  - problem: clique\n    n: 5\n    p: 1.5\n"},
		{"endpoint out of range", "name: x\ncases:\n  - problem: path\n    n: 5\n    p: 0.5\n    v: 5\n"},
		{"clique algo on path", "name: x\ncases:\n  - problem: path\n    algorithm: greedy\n    n: 5\n    p: 0.5\n"},
		{"path algo on sat", "name: x\ncases:\n  - problem: sat\n    algorithm: dfs\n    formula: \"(a)\"\n"},
		{"sat without formula", "name: x\ncases:\n  - problem: sat\n"},
		{"negative k", "name: x\ncases:\n  - problem: clique\n    n: 5\n    p: 0.5\n    k: -1\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, config.ErrInvalidSuite)
			assert.Nil(t, s)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("name: x\ncases:\n  - problem: sat\n    formula: \"(a)\"\n    colour: red\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidSuite)
	assert.Contains(t, err.Error(), "failed to parse suite")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smokeSuite), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Cases, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCase(t *testing.T) {
	t.Parallel()

	ok := config.CaseDefaults(config.Case{Problem: config.ProblemClique, N: 10, P: 0.3, K: 3})
	assert.Equal(t, config.AlgoGreedy, ok.Algorithm)
	assert.NoError(t, config.ValidateCase(ok))

	bad := config.Case{Problem: config.ProblemPath, N: 3, P: 0.5, U: 7}
	assert.ErrorIs(t, config.ValidateCase(bad), config.ErrInvalidSuite)
}
