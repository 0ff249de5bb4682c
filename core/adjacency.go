// File: adjacency.go
// Role: Nested adjacency bucket maintenance shared by vertex and edge mutations.
// Concurrency:
//   - Every helper here must be called ONLY under the muEdgeAdj write lock.

package core

// ensureAdjacency bootstraps the nested from→to bucket maps so mutation
// code can index them without nil checks.
// Complexity: O(1) amortized.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints.
//
// Removal policy:
//   - Always remove from e.From → e.To.
//   - If the edge is undirected and not a self-loop, also remove the mirror
//     from e.To → e.From.
//
// Empty buckets are pruned immediately to keep HasEdge and scans fast.
// Complexity: O(1) average.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after bulk removals.
// Safe to call repeatedly; idempotent relative to empty-state pruning.
// Complexity: O(V + B) where B is the number of (from,to) buckets scanned.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
