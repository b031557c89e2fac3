// SPDX-License-Identifier: MIT

// Package config loads benchmark suites for npbench from YAML.
//
// A suite is a list of cases, each naming a decision problem, the
// algorithm to time, and the instance parameters:
//
//	name: smoke
//	seed: 42
//	repeat: 3
//	verify: true
//	cases:
//	  - problem: path
//	    algorithm: fw
//	    n: 64
//	    p: 0.05
//	    u: 0
//	    v: 63
//	  - problem: clique
//	    n: 24
//	    p: 0.5
//	    k: 4
//	  - problem: sat
//	    formula: "((c+b+-c)*(a+b+c)*(-a+b+c))"
package config

// Problem names a decision problem.
type Problem string

const (
	ProblemPath   Problem = "path"
	ProblemClique Problem = "clique"
	ProblemSAT    Problem = "sat"
)

// Algorithm names; path uses dfs|bfs|fw, clique and sat use greedy|exhaustive.
const (
	AlgoDFS           = "dfs"
	AlgoBFS           = "bfs"
	AlgoFloydWarshall = "fw"
	AlgoGreedy        = "greedy"
	AlgoExhaustive    = "exhaustive"
)

// Case is one benchmark instance.
type Case struct {
	Name      string  `yaml:"name,omitempty" json:"name,omitempty"`
	Problem   Problem `yaml:"problem" json:"problem" validate:"required,oneof=path clique sat"`
	Algorithm string  `yaml:"algorithm,omitempty" json:"algorithm" validate:"omitempty,oneof=dfs bfs fw greedy exhaustive"`

	// Random graph parameters (path, clique).
	N int     `yaml:"n,omitempty" json:"n,omitempty" validate:"gte=0"`
	P float64 `yaml:"p,omitempty" json:"p,omitempty" validate:"gte=0,lte=1"`

	// PATH endpoints.
	U int `yaml:"u,omitempty" json:"u,omitempty" validate:"gte=0"`
	V int `yaml:"v,omitempty" json:"v,omitempty" validate:"gte=0"`

	// K-CLIQUE size.
	K int `yaml:"k,omitempty" json:"k,omitempty" validate:"gte=0"`

	// SAT formula.
	Formula string `yaml:"formula,omitempty" json:"formula,omitempty"`

	// Seed overrides Suite.Seed for this case when non-zero.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Suite is a named list of cases with shared run settings.
type Suite struct {
	Name string `yaml:"name" validate:"required"`

	// Seed seeds every random graph; 0 means a fresh time-based seed per run.
	Seed int64 `yaml:"seed,omitempty"`

	// Repeat runs each case this many times; 0 defaults to 1.
	Repeat int `yaml:"repeat,omitempty" validate:"gte=0,lte=10000"`

	// Verify cross-checks every answer against an independent algorithm.
	Verify bool `yaml:"verify,omitempty"`

	Cases []Case `yaml:"cases" validate:"required,min=1,dive"`
}
