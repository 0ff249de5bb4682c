// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/HasEdgeID/
//       GetEdge/Edges/EdgeCount, filtered removals, and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//   - FilterEdges dispatches removals sorted by Edge.ID asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.
//   - Notifications fire after locks are released.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and notifies subscribers.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex; auto-created endpoints dispatch
//     their own VertexAdded events before the edge event.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate eid atomically, store, link adjacency (mirror undirected).
//  5. Unlock, dispatch EdgeAdded.
//
// Returns the generated edge ID, or one of ErrEmptyVertexID, ErrBadWeight,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized. Concurrency: muEdgeAdj write lock.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 { // weight constraint
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops { // loop constraint
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()

	if !g.allowMulti { // multi-edge existence check
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			g.muEdgeAdj.Unlock()

			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate a new unique textual edge ID in O(1) without fmt allocations.
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	// 5) Store and link adjacency
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// Mirror undirected
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	g.muEdgeAdj.Unlock()

	g.notifyEdgeAdded(*e)

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror, then dispatches EdgeRemoved.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases.
// Concurrency: muEdgeAdj write lock.
func (g *Graph) RemoveEdge(eid string) error {
	if eid == "" {
		return ErrEmptyEdgeID
	}

	g.muEdgeAdj.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.muEdgeAdj.Unlock()

		return ErrEdgeNotFound
	}
	delete(g.edges, eid)  // delete from global edges map
	removeAdjacency(g, e) // remove from adjacencyList[from][to] (+ mirror)
	cleanupAdjacency(g)   // prune empty buckets
	g.muEdgeAdj.Unlock()

	g.notifyEdgeRemoved(*e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works both ways for undirected graphs as AddEdge mirrors adjacency.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// HasEdgeID reports whether the edge catalog contains eid (empty ID ⇒ false).
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdgeID(eid string) bool {
	if eid == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// GetEdge returns the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) GetEdge(edgeID string) (Edge, error) {
	if edgeID == "" {
		return Edge{}, ErrEmptyEdgeID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E). Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate and dispatches one
// EdgeRemoved per removal, sorted by Edge.ID asc.
//
// Contract: pred is pure; it must not mutate the graph.
// Complexity: O(E) scan + O(V+E) cleanup in worst case.
// Concurrency: muEdgeAdj write lock.
func (g *Graph) FilterEdges(pred func(Edge) bool) {
	g.muEdgeAdj.Lock()
	var removed []Edge
	for eid, e := range g.edges {
		if !pred(*e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			removed = append(removed, *e)
		}
	}
	cleanupAdjacency(g)
	g.muEdgeAdj.Unlock()

	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })
	for _, e := range removed {
		g.notifyEdgeRemoved(e)
	}
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)         // textual prefix
	buf = strconv.AppendUint(buf, n, 10)    // base-10 digits

	return string(buf)
}
