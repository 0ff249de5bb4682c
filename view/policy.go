// File: policy.go
// Role: Shipped inclusion policies. InducedPolicy keeps a live induced
//       subgraph: vertices satisfying a predicate, plus every edge whose
//       endpoints are both kept.

package view

import "github.com/katalvlaran/lvlview/core"

// InducedPolicy maintains a live induced subgraph of the backing graph:
// it includes every new vertex for which Keep returns true, and every
// edge whose endpoints are both in the view. Removals need no extra
// bookkeeping — the view's forced removal already restores consistency,
// and the backing graph cascades incident edges itself.
//
// Keep must be pure and stable for a given ID while the view is live;
// a nil Keep keeps nothing. Unlike a one-shot induced copy, this policy
// yields the same subset but tracks the graph instead of snapshotting it.
type InducedPolicy struct {
	// Keep reports whether the vertex with the given ID belongs in the view.
	Keep func(id string) bool
}

// OnVertexAdded includes vx when Keep admits it, then adopts any graph
// edges whose endpoints are now both present.
// Complexity: O(E) for the adoption scan on inclusion; O(1) otherwise.
func (p InducedPolicy) OnVertexAdded(v *View, vx core.Vertex) {
	if p.Keep == nil || !p.Keep(vx.ID) {
		return
	}
	if v.AddVertex(vx.ID) {
		p.adoptIncident(v, vx.ID)
	}
}

// OnEdgeAdded includes e when both endpoints are already in the view.
// Complexity: O(1).
func (p InducedPolicy) OnEdgeAdded(v *View, e core.Edge) {
	if v.hasVertex(e.From) && v.hasVertex(e.To) {
		v.AddEdge(e.ID)
	}
}

// OnVertexRemoved implements Policy as a no-op: forced removal suffices.
func (InducedPolicy) OnVertexRemoved(*View, core.Vertex) {}

// OnEdgeRemoved implements Policy as a no-op: forced removal suffices.
func (InducedPolicy) OnEdgeRemoved(*View, core.Edge) {}

// adoptIncident scans the graph's edge catalog and includes every edge
// incident to id whose opposite endpoint is already in the view.
//
// In the graph's own event order endpoints always precede their edges, so
// this scan usually finds nothing. It matters when dispatch is reentrant:
// a subscriber ahead of the view may wire edges to the new vertex before
// the view's vertex-added hook runs, and those edges arrive while the view
// does not yet contain the vertex. The sweep picks them up.
func (p InducedPolicy) adoptIncident(v *View, id string) {
	for _, e := range v.Graph().Edges() {
		if e.From != id && e.To != id {
			continue
		}
		if v.hasVertex(e.From) && v.hasVertex(e.To) {
			v.AddEdge(e.ID)
		}
	}
}

// Induced constructs a View with an InducedPolicy over g and seeds it from
// the graph's current contents: every vertex admitted by keep, then every
// edge whose endpoints were both admitted. From that point on the view
// tracks the graph live.
//
// Returns ErrNilGraph if g is nil.
// Complexity: O(V + E) seeding plus the New cost.
func Induced(g *core.Graph, keep func(id string) bool, opts ...Option) (*View, error) {
	p := InducedPolicy{Keep: keep}
	v, err := New(g, append([]Option{WithPolicy(p)}, opts...)...)
	if err != nil {
		return nil, err
	}

	if keep != nil {
		for _, id := range g.Vertices() {
			if keep(id) {
				v.AddVertex(id)
			}
		}
		for _, e := range g.Edges() {
			if v.hasVertex(e.From) && v.hasVertex(e.To) {
				v.AddEdge(e.ID)
			}
		}
	}

	return v, nil
}
