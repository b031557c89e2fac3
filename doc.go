// Package npgraph is a small laboratory for comparing a polynomial-time
// graph problem with NP-complete ones on the same adjacency-matrix graphs.
//
// 🚀 What is inside?
//
//	• core/       — Graph: square 0/1 adjacency matrix, undirected, no self-loops
//	• builder/    — incremental Erdős–Rényi G(n, p) plus Complete/Path/Cycle/Star fixtures
//	• matrix/     — dense float64 matrix and in-place Floyd–Warshall
//	• reach/      — PATH: DFS, BFS and Floyd–Warshall deciders
//	• clique/     — K-CLIQUE: greedy (fast, incomplete) and exhaustive search
//	• satclique/  — 3-SAT → K-CLIQUE reduction, gophersat-backed satisfiability check
//	• converters/ — gonum graphs and graph6 strings
//
// The npbench command (cmd/npbench) generates instances, times a decider
// and prints one JSON line per run.
//
// ✨ The reduction in one picture, for (a + b) * (-a + b):
//
//	clause 0:   a ───────── b      clause 1
//	            b ───────── b
//	            b ───────── -a
//
// Literals of one clause are never joined, and a never meets -a, so a
// 2-clique is exactly a consistent choice of one true literal per clause.
//
// Quick start:
//
//	g, k, _ := satclique.Reduce("((c+b+-c)*(a+b+c)*(-a+b+c))")
//	ok, _ := clique.HasKClique(g, k) // true
//
//	go get github.com/katalvlaran/npgraph
package npgraph
