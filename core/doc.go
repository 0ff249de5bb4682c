// Package core provides an observable, thread-safe, in-memory graph:
// vertex and edge catalogs, nested adjacency buckets, and a synchronous
// change-notification surface for downstream structures that track the
// graph (see the view package).
//
// # What
//
//   - Mutate: AddVertex, RemoveVertex, AddEdge, RemoveEdge, FilterEdges.
//   - Query: HasVertex, HasEdge, HasEdgeID, GetVertex, GetEdge,
//     Vertices, Edges, VertexCount, EdgeCount, capability getters.
//   - Observe: Subscribe a GraphListener to receive VertexAdded,
//     VertexRemoved, EdgeAdded, EdgeRemoved; Unsubscribe with the token.
//   - Configure at construction: WithDirected, WithWeighted, WithLoops,
//     WithMultiEdges.
//
// # Why
//
//	Structures derived from a graph (filtered views, aggregates, indexes)
//	rot silently unless the graph tells them what changed. core delivers
//	every change to subscribers synchronously, in mutation order, so a
//	derived structure can restore its invariants before the mutating call
//	returns.
//
// # Notification contract
//
//   - Dispatch is synchronous, in the mutating goroutine, after the
//     graph's internal locks are released; listeners may re-enter graph
//     queries and even graph mutations.
//   - Listeners run in subscription order.
//   - A cascade removal (RemoveVertex with incident edges) dispatches all
//     EdgeRemoved events first, sorted by Edge.ID ascending, then the
//     single VertexRemoved event.
//   - AddVertex on an existing vertex is idempotent and dispatches
//     nothing; the catalog did not change.
//   - Event ordering across concurrent mutators is undefined. Serialize
//     mutations externally when subscribers depend on a global order.
//
// # Determinism
//
//	Vertices() sorts IDs ascending; Edges() sorts by Edge.ID ascending;
//	edge IDs are monotonic "e1", "e2", ... so logs and goldens stay stable.
//
// # Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex / AddEdge / RemoveEdge / membership: O(1) amortized
//   - RemoveVertex: O(E) incident-edge scan
//   - Vertices / Edges: O(V log V) / O(E log E)
//
// # Usage
//
//	g := core.NewGraph(core.WithWeighted())
//	sub := g.Subscribe(myListener)
//	defer g.Unsubscribe(sub)
//
//	g.AddVertex("A")            // myListener.VertexAdded(Vertex{ID:"A",...})
//	eid, _ := g.AddEdge("A", "B", 7) // VertexAdded("B"), then EdgeAdded
//	g.RemoveVertex("A")         // EdgeRemoved(eid), then VertexRemoved("A")
package core
