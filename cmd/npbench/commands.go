// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/npgraph/internal/bench"
	"github.com/katalvlaran/npgraph/internal/config"
)

// flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	verify    bool
	graph6    bool
	seed      int64
}

// instance flags; each subcommand owns a copy and binds the fields it reads.
type caseFlags struct {
	n       int
	p       float64
	u, v    int
	k       int
	algo    string
	formula string
}

// newRootCmd assembles the command tree writing results to out and logs
// to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var gf globalFlags
	var pathF, cliqueF, satF caseFlags

	rootCmd := &cobra.Command{
		Use:   "npbench",
		Short: "Time PATH, K-CLIQUE and 3-SAT deciders on generated instances",
		Long: `npbench builds random graphs or CNF-to-clique reductions, runs a
decision algorithm on them and prints one JSON result per run on stdout.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&gf.verify, "verify", false, "Cross-check every answer against an independent algorithm")
	pf.BoolVar(&gf.graph6, "graph6", false, "Attach the graph6 encoding of each instance")
	pf.Int64Var(&gf.seed, "seed", 0, "Random seed; 0 derives one from the clock")

	single := func(problem config.Problem, cf *caseFlags) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cf.formula = args[0]
			}
			c := config.CaseDefaults(config.Case{
				Problem: problem, Algorithm: cf.algo,
				N: cf.n, P: cf.p, U: cf.u, V: cf.v, K: cf.k,
				Formula: cf.formula, Seed: gf.seed,
			})
			if err := config.ValidateCase(c); err != nil {
				return err
			}
			runner, err := newRunner(gf, errOut)
			if err != nil {
				return err
			}
			res, err := runner.Run(cmd.Context(), c, 0)
			if err != nil {
				return err
			}

			return bench.JSONLines(out)(res)
		}
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Decide whether v is reachable from u in G(n, p)",
		Args:  cobra.NoArgs,
		RunE:  single(config.ProblemPath, &pathF),
	}
	pathCmd.Flags().IntVar(&pathF.n, "n", 64, "Number of nodes")
	pathCmd.Flags().Float64Var(&pathF.p, "p", 0.05, "Edge probability in (0, 1]")
	pathCmd.Flags().IntVar(&pathF.u, "u", 0, "Source node")
	pathCmd.Flags().IntVar(&pathF.v, "v", 1, "Target node")
	pathCmd.Flags().StringVar(&pathF.algo, "algo", config.AlgoDFS, "Algorithm: dfs, bfs or fw")

	cliqueCmd := &cobra.Command{
		Use:   "clique",
		Short: "Decide whether G(n, p) has a k-clique",
		Args:  cobra.NoArgs,
		RunE:  single(config.ProblemClique, &cliqueF),
	}
	cliqueCmd.Flags().IntVar(&cliqueF.n, "n", 24, "Number of nodes")
	cliqueCmd.Flags().Float64Var(&cliqueF.p, "p", 0.5, "Edge probability in (0, 1]")
	cliqueCmd.Flags().IntVar(&cliqueF.k, "k", 3, "Clique size")
	cliqueCmd.Flags().StringVar(&cliqueF.algo, "algo", config.AlgoGreedy, "Algorithm: greedy or exhaustive")

	satCmd := &cobra.Command{
		Use:   "sat [formula]",
		Short: "Decide a k-clause, k-literal CNF formula through its clique reduction",
		Example: `  npbench sat '((c+b+-c)*(a+b+c)*(-a+b+c))'
  npbench sat --formula '(a+-b)*(b+c)' --algo exhaustive --verify`,
		Args: cobra.MaximumNArgs(1),
		RunE: single(config.ProblemSAT, &satF),
	}
	satCmd.Flags().StringVar(&satF.formula, "formula", "", "CNF formula, e.g. (a+-b)*(b+c)")
	satCmd.Flags().StringVar(&satF.algo, "algo", config.AlgoGreedy, "Clique algorithm: greedy or exhaustive")

	suiteCmd := &cobra.Command{
		Use:   "suite <file.yaml>",
		Short: "Run every case of a YAML benchmark suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = gf.seed
			}
			runner, err := newRunner(gf, errOut)
			if err != nil {
				return err
			}

			return runner.RunSuite(cmd.Context(), s, bench.JSONLines(out))
		},
	}

	rootCmd.AddCommand(pathCmd, cliqueCmd, satCmd, suiteCmd)

	return rootCmd
}

func newRunner(gf globalFlags, errOut io.Writer) (*bench.Runner, error) {
	logger, err := newLogger(gf.logLevel, gf.logFormat, errOut)
	if err != nil {
		return nil, err
	}

	return bench.NewRunner(logger, bench.WithVerify(gf.verify), bench.WithGraph6(gf.graph6)), nil
}

// newLogger builds a slog.Logger for the given level and format names.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}
