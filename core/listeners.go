// File: listeners.go
// Role: Change-notification surface: GraphListener, Subscribe/Unsubscribe,
//       and synchronous post-mutation dispatch.
// Determinism:
//   - Listeners are invoked in subscription order.
//   - Cascade removals dispatch edge events sorted by Edge.ID asc, then the vertex event.
// Concurrency:
//   - Registry guarded by muVert; dispatch happens in the mutating
//     goroutine after graph locks are released, so listeners may re-enter
//     graph queries freely.

package core

// GraphListener receives synchronous change notifications from a Graph.
//
// Each callback carries the affected element by value. Callbacks run in
// the goroutine that performed the mutation, after the Graph's internal
// locks have been released; a listener may therefore query (or even
// mutate) the Graph from inside a callback. Listener ordering across
// concurrent mutators is not defined — serialize mutations externally if
// you depend on a global event order.
type GraphListener interface {
	// VertexAdded is invoked after a vertex has been inserted.
	VertexAdded(v Vertex)

	// VertexRemoved is invoked after a vertex has been deleted.
	// During a cascade removal it fires after all EdgeRemoved events
	// for the incident edges.
	VertexRemoved(v Vertex)

	// EdgeAdded is invoked after an edge has been inserted.
	EdgeAdded(e Edge)

	// EdgeRemoved is invoked after an edge has been deleted.
	EdgeRemoved(e Edge)
}

// Subscription is an opaque token identifying one Subscribe registration.
// The zero value is never issued and is safe to Unsubscribe (no-op).
type Subscription uint64

// listenerSet is the ordered registry of graph subscribers.
//
// A plain slice keeps subscription order; Unsubscribe scans it in O(n)
// with n = live subscribers, which stays trivial at the subscriber counts
// this design targets.
type listenerSet struct {
	nextToken uint64
	entries   []listenerEntry
}

type listenerEntry struct {
	token    Subscription
	listener GraphListener
}

func (s *listenerSet) init() {
	s.entries = make([]listenerEntry, 0, 2)
}

// Subscribe registers l to receive all four change notifications and
// returns a token for Unsubscribe. A nil listener is ignored and yields
// the zero token.
// Complexity: O(1) amortized. Concurrency: muVert write lock.
func (g *Graph) Subscribe(l GraphListener) Subscription {
	if l == nil {
		return 0
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.listeners.nextToken++
	token := Subscription(g.listeners.nextToken)
	g.listeners.entries = append(g.listeners.entries, listenerEntry{token: token, listener: l})

	return token
}

// Unsubscribe removes the registration identified by sub. Unknown, stale,
// or zero tokens are silently ignored, so release is safe to repeat.
// Complexity: O(n) over live subscribers. Concurrency: muVert write lock.
func (g *Graph) Unsubscribe(sub Subscription) {
	if sub == 0 {
		return
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	entries := g.listeners.entries
	for i, entry := range entries {
		if entry.token == sub {
			g.listeners.entries = append(entries[:i:i], entries[i+1:]...)

			return
		}
	}
}

// snapshotListeners copies the current subscriber list so dispatch can run
// without holding graph locks. Subscribers added during a dispatch are not
// invoked by that dispatch.
// Complexity: O(n). Concurrency: read lock on muVert.
func (g *Graph) snapshotListeners() []GraphListener {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if len(g.listeners.entries) == 0 {
		return nil
	}
	out := make([]GraphListener, 0, len(g.listeners.entries))
	for _, entry := range g.listeners.entries {
		out = append(out, entry.listener)
	}

	return out
}

// notifyVertexAdded dispatches VertexAdded to all subscribers in order.
// Must be called with no graph locks held.
func (g *Graph) notifyVertexAdded(v Vertex) {
	for _, l := range g.snapshotListeners() {
		l.VertexAdded(v)
	}
}

// notifyVertexRemoved dispatches VertexRemoved to all subscribers in order.
// Must be called with no graph locks held.
func (g *Graph) notifyVertexRemoved(v Vertex) {
	for _, l := range g.snapshotListeners() {
		l.VertexRemoved(v)
	}
}

// notifyEdgeAdded dispatches EdgeAdded to all subscribers in order.
// Must be called with no graph locks held.
func (g *Graph) notifyEdgeAdded(e Edge) {
	for _, l := range g.snapshotListeners() {
		l.EdgeAdded(e)
	}
}

// notifyEdgeRemoved dispatches EdgeRemoved to all subscribers in order.
// Must be called with no graph locks held.
func (g *Graph) notifyEdgeRemoved(e Edge) {
	for _, l := range g.snapshotListeners() {
		l.EdgeRemoved(e)
	}
}
