// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSuite wraps every validation failure of a loaded suite.
var ErrInvalidSuite = errors.New("config: invalid suite")

// suiteValidate is the shared validator; case-level cross-field rules are
// registered once in init.
var suiteValidate *validator.Validate

func init() {
	suiteValidate = validator.New()
	suiteValidate.RegisterStructValidation(validateCase, Case{})
}

// validateCase enforces the rules tags cannot express: which fields each
// problem needs, and endpoint bounds.
func validateCase(sl validator.StructLevel) {
	c := sl.Current().Interface().(Case)

	switch c.Problem {
	case ProblemPath, ProblemClique:
		if c.N <= 0 {
			sl.ReportError(c.N, "N", "n", "gt0", "")
		}
		if c.P <= 0 {
			sl.ReportError(c.P, "P", "p", "gt0", "")
		}
	case ProblemSAT:
		if c.Formula == "" {
			sl.ReportError(c.Formula, "Formula", "formula", "required", "")
		}
	}

	switch c.Problem {
	case ProblemPath:
		if c.U >= c.N && c.N > 0 {
			sl.ReportError(c.U, "U", "u", "ltfield", "N")
		}
		if c.V >= c.N && c.N > 0 {
			sl.ReportError(c.V, "V", "v", "ltfield", "N")
		}
		if c.Algorithm != "" && c.Algorithm != AlgoDFS && c.Algorithm != AlgoBFS && c.Algorithm != AlgoFloydWarshall {
			sl.ReportError(c.Algorithm, "Algorithm", "algorithm", "oneof", "dfs bfs fw")
		}
	case ProblemClique, ProblemSAT:
		if c.Algorithm != "" && c.Algorithm != AlgoGreedy && c.Algorithm != AlgoExhaustive {
			sl.ReportError(c.Algorithm, "Algorithm", "algorithm", "oneof", "greedy exhaustive")
		}
	}
}

// Validate checks s against tag and cross-field rules.
func (s *Suite) Validate() error {
	if err := suiteValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}

	return nil
}

// ValidateCase checks a single case, as built from CLI flags.
func ValidateCase(c Case) error {
	if err := suiteValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}

	return nil
}

// ApplyDefaults fills zero-valued optional fields.
func (s *Suite) ApplyDefaults() {
	if s.Repeat == 0 {
		s.Repeat = 1
	}
	for i := range s.Cases {
		s.Cases[i] = CaseDefaults(s.Cases[i])
	}
}

// CaseDefaults returns c with its algorithm and name filled in.
func CaseDefaults(c Case) Case {
	if c.Algorithm == "" {
		switch c.Problem {
		case ProblemPath:
			c.Algorithm = AlgoDFS
		case ProblemClique, ProblemSAT:
			c.Algorithm = AlgoGreedy
		}
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("%s-%s", c.Problem, c.Algorithm)
	}

	return c
}

// Parse decodes a YAML suite, rejecting unknown keys, then applies
// defaults and validates.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse suite: %w", err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite %s: %w", path, err)
	}

	return Parse(data)
}
