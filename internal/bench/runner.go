// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/npgraph/builder"
	"github.com/katalvlaran/npgraph/clique"
	"github.com/katalvlaran/npgraph/converters"
	"github.com/katalvlaran/npgraph/core"
	"github.com/katalvlaran/npgraph/internal/config"
	"github.com/katalvlaran/npgraph/reach"
	"github.com/katalvlaran/npgraph/satclique"
)

// Run executes one iteration of c. A zero c.Seed is replaced by a
// clock-derived seed, which is recorded in the Result.
//
// On ErrMismatch the Result is still returned, fully populated.
func (r *Runner) Run(ctx context.Context, c config.Case, iteration int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.Seed == 0 {
		c.Seed = r.clock().UnixNano()
	}

	res := Result{
		RunID:     r.newID(),
		Case:      c.Name,
		Iteration: iteration,
		Problem:   string(c.Problem),
		Algorithm: c.Algorithm,
	}

	var err error
	switch c.Problem {
	case config.ProblemPath:
		err = r.runPath(c, &res)
	case config.ProblemClique:
		err = r.runClique(c, &res)
	case config.ProblemSAT:
		err = r.runSAT(c, &res)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProblem, c.Problem)
	}
	if err != nil {
		r.logger.Error("run failed", "run_id", res.RunID, "case", c.Name, "error", err)
		return res, err
	}

	r.logger.Debug("run complete",
		"run_id", res.RunID,
		"case", res.Case,
		"iteration", iteration,
		"answer", res.Answer,
		"elapsed", time.Duration(res.ElapsedNS))

	return res, nil
}

// RunSuite runs every case s.Repeat times and hands each Result to emit.
// Iteration i of a case uses seed base+i, where base is the case seed,
// else the suite seed, else a clock-derived value.
//
// Suite.Verify turns verification on for this call.
// It stops at the first error from a solver, the oracle or emit.
func (r *Runner) RunSuite(ctx context.Context, s *config.Suite, emit func(Result) error) error {
	if s.Verify && !r.verify {
		verifying := *r
		verifying.verify = true
		r = &verifying
	}
	r.logger.Info("suite started", "suite", s.Name, "cases", len(s.Cases), "repeat", s.Repeat, "verify", r.verify)

	runs, misses := 0, 0
	for _, c := range s.Cases {
		base := c.Seed
		if base == 0 {
			base = s.Seed
		}
		if base == 0 {
			base = r.clock().UnixNano()
		}
		for i := 0; i < s.Repeat; i++ {
			c.Seed = base + int64(i)
			res, err := r.Run(ctx, c, i)
			if err != nil {
				return fmt.Errorf("suite %s: case %s: %w", s.Name, c.Name, err)
			}
			res.Suite = s.Name
			if res.Agree != nil && !*res.Agree {
				misses++
			}
			if err = emit(res); err != nil {
				return fmt.Errorf("suite %s: emit: %w", s.Name, err)
			}
			runs++
		}
	}

	r.logger.Info("suite finished", "suite", s.Name, "runs", runs, "greedy_misses", misses)

	return nil
}

func (r *Runner) randomGraph(c config.Case, res *Result) (*core.Graph, error) {
	g, err := builder.Random(c.N, c.P, builder.WithSeed(c.Seed))
	if err != nil {
		return nil, err
	}
	res.N, res.P, res.Seed = c.N, c.P, c.Seed
	r.describe(g, res)

	return g, nil
}

func (r *Runner) describe(g *core.Graph, res *Result) {
	res.Edges = g.EdgeCount()
	if r.graph6 {
		res.Graph6 = converters.Graph6(g)
	}
}

func (r *Runner) runPath(c config.Case, res *Result) error {
	algo, err := reach.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	g, err := r.randomGraph(c, res)
	if err != nil {
		return err
	}
	res.U, res.V = c.U, c.V

	start := time.Now()
	ok, err := reach.Path(g, c.U, c.V, algo)
	res.ElapsedNS = time.Since(start).Nanoseconds()
	if err != nil {
		return err
	}
	res.Answer = ok

	if !r.verify {
		return nil
	}
	want, err := pathOracle(g, c.U, c.V, algo)
	if err != nil {
		return err
	}

	return r.record(res, want, true)
}

func (r *Runner) runClique(c config.Case, res *Result) error {
	g, err := r.randomGraph(c, res)
	if err != nil {
		return err
	}
	res.K = c.K

	ok, err := r.timeClique(g, c.K, c.Algorithm, res)
	if err != nil {
		return err
	}
	res.Answer = ok

	if !r.verify {
		return nil
	}
	want, err := cliqueOracle(g, c.K, c.Algorithm)
	if err != nil {
		return err
	}

	return r.record(res, want, c.Algorithm == config.AlgoExhaustive)
}

func (r *Runner) runSAT(c config.Case, res *Result) error {
	lits, err := satclique.Tokenize(c.Formula)
	if err != nil {
		return err
	}
	g, k, err := satclique.ReduceLiterals(lits)
	if err != nil {
		return err
	}
	res.Formula = satclique.Format(lits, k)
	res.N, res.K = g.Size(), k
	r.describe(g, res)

	ok, err := r.timeClique(g, k, c.Algorithm, res)
	if err != nil {
		return err
	}
	res.Answer = ok

	if !r.verify {
		return nil
	}

	return r.record(res, satclique.Satisfiable(lits, k), c.Algorithm == config.AlgoExhaustive)
}

func (r *Runner) timeClique(g *core.Graph, k int, algo string, res *Result) (bool, error) {
	search := clique.HasKClique
	if algo == config.AlgoExhaustive {
		search = clique.HasKCliqueExhaustive
	}

	start := time.Now()
	ok, err := search(g, k)
	res.ElapsedNS = time.Since(start).Nanoseconds()

	return ok, err
}

// record stores the oracle answer. A complete solver must match it
// exactly; an incomplete one may only under-report.
func (r *Runner) record(res *Result, want bool, complete bool) error {
	agree := res.Answer == want
	res.Oracle, res.Agree = &want, &agree
	if agree {
		return nil
	}
	if !complete && !res.Answer {
		r.logger.Warn("greedy search missed an existing solution",
			"run_id", res.RunID, "case", res.Case, "seed", res.Seed)
		return nil
	}

	return fmt.Errorf("%w: %s/%s answered %t, oracle %t",
		ErrMismatch, res.Problem, res.Algorithm, res.Answer, want)
}
