// Package view provides live filtered subgraph views over a core.Graph:
// a View owns vertex/edge membership sets that are always a subset of the
// backing graph, kept consistent as the graph mutates, without duplicating
// the graph's adjacency structure.
//
// # What
//
//   - View: two membership sets (vertex IDs, edge IDs), bound to one
//     backing graph for life, subscribed to its four change notifications
//     at construction and unsubscribed exactly once at Dispose.
//   - Membership: AddVertex/AddEdge (gated on current backing-graph
//     containment, never failing), RemoveVertex/RemoveEdge (unconditional,
//     always notifying), ContainsVertex/ContainsEdge, sorted enumeration.
//   - Policy: a pluggable strategy deciding which newly added graph
//     elements the view adopts (default: none) and running bookkeeping
//     after forced removals. InducedPolicy/Induced ship a live induced
//     subgraph.
//   - Callbacks: seven registries — vertex/edge added/removed, emptiness
//     hint, disposed, removed-from-container — invoked synchronously in
//     registration order.
//
// # Why
//
//	Copy-based subgraphs (filter once, return a new graph) go stale the
//	moment the source changes. A View stays correct instead: every
//	backing-graph removal force-removes the element from the view before
//	any custom hook runs, so the subset invariant cannot be bypassed, while
//	additions stay opt-in so a view never grows behind your back.
//
// # Consistency protocol
//
//	graph vertex-added(v) → policy.OnVertexAdded(view, v)      (opt-in only)
//	graph vertex-removed(v) → view force-removes v → policy.OnVertexRemoved
//	graph edge-added(e)   → policy.OnEdgeAdded(view, e)        (opt-in only)
//	graph edge-removed(e) → view force-removes e → policy.OnEdgeRemoved
//
//	Invariants:
//	  - Every member was in the backing graph at the time of insertion.
//	  - Forced removal always precedes the bookkeeping hook.
//	  - Backing-graph additions never implicitly grow the view.
//	  - A disposed view no longer reacts to backing-graph changes.
//
// # Notification semantics (deliberate choices)
//
//   - AddVertex/AddEdge notify on every accepted call, including
//     duplicates already in the view.
//   - RemoveVertex/RemoveEdge notify on every call, including removals of
//     absent elements.
//   - The emptiness hint re-fires on every removal call once the view is
//     already empty; treat it as a "safe to dispose" hint, not an edge.
//
// # Concurrency
//
//	Single-threaded, synchronous, no internal locking. All callbacks run
//	in-line in the mutating call; reentrant view mutation from inside a
//	callback is allowed (registries are snapshotted per dispatch). Serialize
//	backing-graph mutation externally if multiple goroutines are involved.
//
// # Complexity (V, E = view set sizes)
//
//   - Membership operations: O(1)
//   - Vertices()/Edges(): O(V log V) / O(E log E)
//   - Induced seeding: O(V + E) over the backing graph
//
// # Usage
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//
//	v, err := view.New(g)         // empty view, NopPolicy
//	if err != nil { ... }         // ErrNilGraph for a nil backing graph
//	defer v.Dispose()             // mandatory: releases the subscription
//
//	v.AddVertex("A")              // true: G contains A
//	v.AddVertex("nope")           // false: silently declined
//
//	v.OnEmpty(func() { fmt.Println("view drained") })
//	g.RemoveVertex("A")           // force-removes A from v, hint fires
//
// See example_test.go for complete runnable scenarios.
package view
