// File: view.go
// Role: The View type: membership operations, the consistency protocol
//       reacting to backing-graph changes, emptiness detection, and the
//       disposal state machine.
// Determinism:
//   - Vertices()/Edges() return IDs sorted lexicographically ascending.
//   - Callbacks run synchronously in registration order.
// Concurrency:
//   - None. A View is single-threaded by contract; the caller serializes
//     backing-graph mutations and view access.

package view

import (
	"sort"

	"github.com/katalvlaran/lvlview/core"
)

// View is a live filtered subset of a backing core.Graph.
//
// A View owns two membership sets (vertex IDs and edge IDs) and no
// topology: adjacency stays with the backing graph. Every element enters
// the view only while the backing graph contains it, and leaves the view
// automatically the moment the backing graph removes it. Inclusion of
// newly added backing-graph elements is decided by the injected Policy;
// the default NopPolicy never includes anything.
//
// A View is bound to one backing graph for its entire life and is never
// rebound. Dispose releases the graph subscription; failing to call it
// keeps the subscription (and the view) alive and reacting forever.
type View struct {
	graph  *core.Graph
	policy Policy
	sub    core.Subscription

	vertices map[string]struct{}
	edges    map[string]struct{}

	// disposed is monotonic false→true and gates idempotent teardown.
	disposed bool

	// Callback registries, invoked synchronously in registration order.
	vertexAddedCbs   []func(id string)
	vertexRemovedCbs []func(id string)
	edgeAddedCbs     []func(id string)
	edgeRemovedCbs   []func(id string)
	emptyCbs         []func()
	disposedCbs      []func()
	containerCbs     []func()
}

// reactor adapts a View to core.GraphListener without exporting listener
// methods on View itself, keeping the public surface to the view's own
// operations and registries.
type reactor struct {
	view *View
}

// New constructs a View over g, subscribes to its four change
// notifications exactly once, and returns the view. The view starts
// empty; seed it with AddVertex/AddEdge or use Induced for a pre-seeded
// induced subgraph.
//
// Returns ErrNilGraph if g is nil.
// Complexity: O(1).
func New(g *core.Graph, opts ...Option) (*View, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		graph:    g,
		policy:   o.policy,
		vertices: make(map[string]struct{}),
		edges:    make(map[string]struct{}),
	}
	v.sub = g.Subscribe(&reactor{view: v})

	return v, nil
}

// Graph returns the backing graph this view observes.
// The view never mutates it; treat the reference as read-only here.
func (v *View) Graph() *core.Graph {
	return v.graph
}

//–– Membership operations ––––––––––––––––––––––––––––––––––––––––––––––––––

// AddVertex includes id in the view, but only if the backing graph
// currently contains it; otherwise it is a silent no-op returning false.
// Additions never fail: an upstream removal racing an add is an expected
// decline, not an error.
//
// The vertex-added callbacks fire on every accepted call, including calls
// where id was already in the view (set insertion is idempotent, the
// notification is not). Subscribers that want transition semantics should
// check ContainsVertex first.
// Complexity: O(1).
func (v *View) AddVertex(id string) bool {
	if !v.graph.HasVertex(id) {
		return false
	}
	v.vertices[id] = struct{}{}
	v.fireID(v.vertexAddedCbs, id)

	return true
}

// AddEdge includes the edge with catalog ID eid, but only if the backing
// graph currently contains it; otherwise it is a silent no-op returning
// false. Mirrors AddVertex in every other respect, including the
// notify-on-every-accepted-call behavior.
// Complexity: O(1).
func (v *View) AddEdge(eid string) bool {
	if !v.graph.HasEdgeID(eid) {
		return false
	}
	v.edges[eid] = struct{}{}
	v.fireID(v.edgeAddedCbs, eid)

	return true
}

// RemoveVertex unconditionally removes id from the view's vertex set,
// fires the vertex-removed callbacks regardless of whether id was present,
// then re-evaluates the emptiness hint. Removing a never-added vertex
// still notifies: subscribers track removal attempts, not set deltas.
//
// Returns ErrEmptyVertexID for an empty ID; the backing graph's vertex
// domain never contains one.
// Complexity: O(1).
func (v *View) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	delete(v.vertices, id)
	v.fireID(v.vertexRemovedCbs, id)
	v.checkEmpty()

	return nil
}

// RemoveEdge unconditionally removes eid from the view's edge set, fires
// the edge-removed callbacks regardless of prior presence, then
// re-evaluates the emptiness hint.
//
// Returns ErrEmptyEdgeID for an empty ID.
// Complexity: O(1).
func (v *View) RemoveEdge(eid string) error {
	if eid == "" {
		return ErrEmptyEdgeID
	}
	delete(v.edges, eid)
	v.fireID(v.edgeRemovedCbs, eid)
	v.checkEmpty()

	return nil
}

// ContainsVertex reports whether id is currently in the view's vertex set.
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1).
func (v *View) ContainsVertex(id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyVertexID
	}

	return v.hasVertex(id), nil
}

// ContainsEdge reports whether eid is currently in the view's edge set.
// Returns ErrEmptyEdgeID for an empty ID.
// Complexity: O(1).
func (v *View) ContainsEdge(eid string) (bool, error) {
	if eid == "" {
		return false, ErrEmptyEdgeID
	}

	return v.hasEdge(eid), nil
}

// hasVertex is the unchecked membership probe used internally and by
// policies in this package.
func (v *View) hasVertex(id string) bool {
	_, ok := v.vertices[id]

	return ok
}

// hasEdge is the unchecked membership probe used internally and by
// policies in this package.
func (v *View) hasEdge(eid string) bool {
	_, ok := v.edges[eid]

	return ok
}

// Vertices returns the view's vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (v *View) Vertices() []string {
	ids := make([]string, 0, len(v.vertices))
	for id := range v.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns the view's edge IDs in lexicographic ascending order.
// Complexity: O(E log E).
func (v *View) Edges() []string {
	ids := make([]string, 0, len(v.edges))
	for id := range v.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices currently in the view.
// Complexity: O(1).
func (v *View) VertexCount() int {
	return len(v.vertices)
}

// EdgeCount returns the number of edges currently in the view.
// Complexity: O(1).
func (v *View) EdgeCount() int {
	return len(v.edges)
}

//–– Lifecycle –––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Dispose unsubscribes from the backing graph, marks the view disposed,
// and fires the disposed callbacks exactly once. Repeat calls are silent
// no-ops; Dispose never fails. There is no re-activation.
//
// The membership sets survive disposal and remain readable; the view
// simply stops reacting to backing-graph changes.
// Complexity: O(1) plus subscriber removal on the graph.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.graph.Unsubscribe(v.sub)
	v.disposed = true
	v.fire(v.disposedCbs)
}

// Disposed reports whether Dispose has run.
func (v *View) Disposed() bool {
	return v.disposed
}

// NotifyRemovedFromContainer raises the removed-from-container callbacks
// and nothing else: no membership or lifecycle state changes. A holder of
// the view calls this to announce that the view left whatever collection
// held it; sequencing it alongside Dispose is the holder's responsibility.
func (v *View) NotifyRemovedFromContainer() {
	v.fire(v.containerCbs)
}

//–– Callback registration –––––––––––––––––––––––––––––––––––––––––––––––––

// OnVertexAdded registers fn to run after a vertex is added to the view.
// Nil callbacks are ignored.
func (v *View) OnVertexAdded(fn func(id string)) {
	if fn != nil {
		v.vertexAddedCbs = append(v.vertexAddedCbs, fn)
	}
}

// OnVertexRemoved registers fn to run after a vertex removal call on the
// view, whether or not the vertex was present. Nil callbacks are ignored.
func (v *View) OnVertexRemoved(fn func(id string)) {
	if fn != nil {
		v.vertexRemovedCbs = append(v.vertexRemovedCbs, fn)
	}
}

// OnEdgeAdded registers fn to run after an edge is added to the view.
// Nil callbacks are ignored.
func (v *View) OnEdgeAdded(fn func(id string)) {
	if fn != nil {
		v.edgeAddedCbs = append(v.edgeAddedCbs, fn)
	}
}

// OnEdgeRemoved registers fn to run after an edge removal call on the
// view, whether or not the edge was present. Nil callbacks are ignored.
func (v *View) OnEdgeRemoved(fn func(id string)) {
	if fn != nil {
		v.edgeRemovedCbs = append(v.edgeRemovedCbs, fn)
	}
}

// OnEmpty registers fn to run whenever a removal call leaves (or finds)
// both membership sets empty. This is a "you may now safely dispose me"
// hint, not a transition edge: it re-fires on every removal call while the
// view is already empty, and holders must tolerate repeat firing.
// Nil callbacks are ignored.
func (v *View) OnEmpty(fn func()) {
	if fn != nil {
		v.emptyCbs = append(v.emptyCbs, fn)
	}
}

// OnDisposed registers fn to run when Dispose first succeeds; it fires
// exactly once per view. Nil callbacks are ignored.
func (v *View) OnDisposed(fn func()) {
	if fn != nil {
		v.disposedCbs = append(v.disposedCbs, fn)
	}
}

// OnRemovedFromContainer registers fn to run when a holder calls
// NotifyRemovedFromContainer. Nil callbacks are ignored.
func (v *View) OnRemovedFromContainer(fn func()) {
	if fn != nil {
		v.containerCbs = append(v.containerCbs, fn)
	}
}

//–– Internals ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// checkEmpty fires the emptiness hint when both sets are empty. Called
// after every removal call, including ones that removed nothing.
func (v *View) checkEmpty() {
	if len(v.vertices) == 0 && len(v.edges) == 0 {
		v.fire(v.emptyCbs)
	}
}

// fireID invokes a snapshot of an ID-carrying registry in registration
// order. The snapshot permits reentrancy: a callback may register further
// callbacks or mutate the view, and callbacks registered mid-dispatch run
// from the next event on.
func (v *View) fireID(cbs []func(string), id string) {
	if len(cbs) == 0 {
		return
	}
	snapshot := append(([]func(string))(nil), cbs...)
	for _, fn := range snapshot {
		fn(id)
	}
}

// fire invokes a snapshot of a zero-argument registry in registration
// order, with the same reentrancy contract as fireID.
func (v *View) fire(cbs []func()) {
	if len(cbs) == 0 {
		return
	}
	snapshot := append(([]func())(nil), cbs...)
	for _, fn := range snapshot {
		fn()
	}
}

//–– Backing-graph reactions (the consistency protocol) ––––––––––––––––––––

// VertexAdded implements core.GraphListener: no auto-inclusion, policy
// hook only. The policy may call view.AddVertex to opt in.
func (r *reactor) VertexAdded(vx core.Vertex) {
	if r.view.disposed {
		return
	}
	r.view.policy.OnVertexAdded(r.view, vx)
}

// VertexRemoved implements core.GraphListener: forced removal first, so
// the subset invariant is restored before any derived bookkeeping runs,
// then the policy hook.
func (r *reactor) VertexRemoved(vx core.Vertex) {
	if r.view.disposed {
		return
	}
	// Graph identities are never empty, so the argument check cannot trip.
	_ = r.view.RemoveVertex(vx.ID)
	r.view.policy.OnVertexRemoved(r.view, vx)
}

// EdgeAdded implements core.GraphListener: no auto-inclusion, policy
// hook only.
func (r *reactor) EdgeAdded(e core.Edge) {
	if r.view.disposed {
		return
	}
	r.view.policy.OnEdgeAdded(r.view, e)
}

// EdgeRemoved implements core.GraphListener: forced removal first, then
// the policy hook.
func (r *reactor) EdgeRemoved(e core.Edge) {
	if r.view.disposed {
		return
	}
	_ = r.view.RemoveEdge(e.ID)
	r.view.policy.OnEdgeRemoved(r.view, e)
}
