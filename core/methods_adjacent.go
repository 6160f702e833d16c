// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
//
// Determinism:
//   - Neighbors() sorts by edge sequence asc.
//   - NeighborIDs() returns unique IDs in first-edge order.

package core

import "sort"

// Neighbors returns all edges incident to id, sorted by edge sequence.
// Parallel edges appear once each; a self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) time, O(d) space.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(bucket))
	for _, es := range bucket {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, ordered by the first edge
// that connects them.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		ids = append(ids, nbr)
	}

	return ids, nil
}
