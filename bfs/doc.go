// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, visit order and the
// operation counts the Monte Carlo trials measure.
//
// The walk is level-synchronous: the whole frontier at depth d is visited
// before any vertex at depth d+1. Within a frontier, vertices keep the order
// in which they were discovered, and core.Neighbors yields edges in creation
// order, so the visit sequence is reproducible for a given graph.
//
// Counting
//
//	Every incident edge of a visited vertex counts as examined, including
//	edges that lead back to already-visited neighbors. On a simple connected
//	undirected graph this gives EdgesExamined == 2·|E| and always
//	NodesVisited−1 ≤ EdgesExamined ≤ 2·|E|.
//
// Hooks
//
//   - WithOnLevel runs once per frontier (broadcast rounds, wave fronts).
//   - WithOnVisit runs per vertex and may abort the walk with an error.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
