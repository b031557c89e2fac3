// SPDX-License-Identifier: MIT

// Command npbench times the npgraph decision algorithms.
//
//	npbench path --n 200 --p 0.01 --u 0 --v 199 --algo fw
//	npbench clique --n 30 --p 0.5 --k 5 --verify
//	npbench sat '((c+b+-c)*(a+b+c)*(-a+b+c))'
//	npbench suite suites/smoke.yaml --log-format json
//
// Each run prints one JSON object on stdout; logs go to stderr.
// Any fault exits with status 1.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
