package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// From and To keep the order in which the endpoints were supplied to AddEdge;
// traversal treats both directions equally.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// seq is the numeric part of ID, used for cheap deterministic ordering.
	seq uint64
}

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory undirected graph.
//
// mu protects every field below it; nextEdgeID is only advanced under the
// write lock so edge IDs are dense and monotonic.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	capacity   int  // vertex capacity hint

	// Storage
	nextEdgeID uint64           // edge sequence counter
	order      []string         // vertex IDs in insertion order
	vertices   map[string]int   // vertex ID → index in order
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[v][u] holds the edges between v and u, in insertion order.
	adjacency map[string]map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops and no multi-edges.
// Complexity: O(1) plus the capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.order = make([]string, 0, g.capacity)
	g.vertices = make(map[string]int, g.capacity)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string][]*Edge, g.capacity)

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}
