// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - RemoveVertex dispatches incident-edge events sorted by Edge.ID asc,
//     then the vertex event.
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency under muEdgeAdj.
//   - Notifications fire after all locks are released.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent) and notifies
// subscribers on actual insertion. Adding an existing vertex is a silent
// no-op and dispatches nothing: the catalog did not change, so announcing
// growth would fabricate an upstream event.
//
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized. Concurrency: muVert then muEdgeAdj write locks.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	if _, exists := g.vertices[id]; exists {
		g.muVert.Unlock()

		return nil // no-op for existing vertex
	}
	// Metadata is initialized to a non-nil map by policy.
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.muVert.Unlock()

	// Bootstrap adjacency buckets so edge methods can rely on invariants.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	g.notifyVertexAdded(*v)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the Vertex with the given ID, or ErrVertexNotFound.
// The returned value shares its Metadata map with the catalog entry;
// treat it as read-only.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) GetVertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// RemoveVertex deletes a vertex and all incident edges (directed and
// undirected), then notifies subscribers: one EdgeRemoved per incident
// edge, sorted by Edge.ID ascending, followed by a single VertexRemoved.
// The ordering lets a subscriber maintaining a derived structure retire
// the edges while both endpoints are still known to it.
//
// Returns ErrEmptyVertexID for an empty ID, ErrVertexNotFound if absent.
// Complexity: O(E) for the incident-edge scan. Concurrency: both write locks.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// Acquire both locks for atomic removal of vertex + incident edges.
	g.muVert.Lock()
	g.muEdgeAdj.Lock()

	v, exists := g.vertices[id]
	if !exists {
		g.muEdgeAdj.Unlock()
		g.muVert.Unlock()

		return ErrVertexNotFound
	}

	// Remove all incident edges (directed or undirected), recording each
	// for post-unlock dispatch.
	var removed []Edge
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			removed = append(removed, *e)
		}
	}

	// Delete the vertex record and prune any empty nested maps.
	delete(g.vertices, id)
	cleanupAdjacency(g)

	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	// Map iteration order is random; sort for a reproducible event stream.
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })
	for _, e := range removed {
		g.notifyEdgeRemoved(e)
	}
	g.notifyVertexRemoved(*v)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V). Concurrency: read lock on muVert.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
