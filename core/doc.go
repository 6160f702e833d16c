// Package core provides the thread-safe, in-memory undirected Graph that the
// random-graph builders produce and the BFS walker traverses.
//
// The Graph G = (V,E) supports:
//
//   - Simple undirected edges by default (mirrored adjacency).
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) on request.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - A single sync.RWMutex guarding vertices, edges and adjacency.
//
// Determinism:
//
//	Vertices() returns IDs in insertion order; Neighbors() returns incident
//	edges sorted by numeric edge sequence; NeighborIDs() returns unique
//	neighbor IDs in the same order. Identical construction sequences therefore
//	produce identical traversals, which keeps seeded Monte Carlo runs
//	reproducible.
//
// Core Methods:
//
//	AddVertex(id string) error                        // O(1)
//	HasVertex(id string) bool                         // O(1)
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool                     // O(1)
//	Neighbors(id string) ([]*Edge, error)             // O(d log d)
//	NeighborIDs(id string) ([]string, error)          // O(d log d)
//	Vertices() []string                               // O(V)
//	VertexCount(), EdgeCount() int                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
