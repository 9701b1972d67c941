// Package kleur explores constraint-satisfaction graph coloring with two
// independent search strategies and lets you compare them under different
// conflict-cost heuristics.
//
// 🎨 What is kleur?
//
//	A small, deterministic library that brings together:
//		• Graph model: undirected, self-loop-free adjacency lists
//		• Conflict heuristics: degree-weighted (DGR) and multiplicity-penalty (MY)
//		• Backtracking: exhaustive DFS with heuristic vertex ordering
//		• Beam search: bounded-frontier local search over one-flip neighbors
//		• Resource governor: wall-clock and memory ceilings for both engines
//
// ✨ Why choose kleur?
//
//   - Deterministic – seedable randomness, stable tie-breaks, reproducible runs
//   - Honest results – forced stops, exhaustion and success are distinct outcomes
//   - Pure Go core – engines never log, never touch the disk or the network
//   - Batteries nearby – graph generators, an experiment harness and DOT export
//
// Everything is organized under focused subpackages:
//
//	graph/      — the shared adjacency-list graph model
//	coloring/   — heuristics, both search engines, governor, dispatcher
//	graphgen/   — cycle/path/complete/random graph constructors
//	experiment/ — N-trial runner with metric averaging
//	dot/        — Graphviz DOT export of a graph plus its coloring
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle is 2-colorable: [0,1,0,1].
//
// Dive into the package docs for contracts, complexity notes and examples.
//
//	go get github.com/kleurgraaf/kleur/coloring
package kleur
