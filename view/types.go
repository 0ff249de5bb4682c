// Package view defines types, options and error definitions for live
// filtered subgraph views over a core.Graph.
package view

import (
	"errors"

	"github.com/katalvlaran/lvlview/core"
)

// Sentinel errors for view construction and queries.
var (
	// ErrNilGraph is returned when a nil backing graph is passed to New.
	ErrNilGraph = errors.New("view: backing graph is nil")

	// ErrEmptyVertexID indicates that an empty vertex ID was passed to a
	// removal or membership query.
	ErrEmptyVertexID = errors.New("view: vertex ID is empty")

	// ErrEmptyEdgeID indicates that an empty edge ID was passed to a
	// removal or membership query.
	ErrEmptyEdgeID = errors.New("view: edge ID is empty")
)

// Policy decides how a View reacts to backing-graph changes beyond the
// mandatory consistency steps the View performs itself.
//
// The add hooks are the sole mechanism for growing a view in response to
// upstream growth: the View never auto-includes new elements, so a policy
// that wants an element calls v.AddVertex / v.AddEdge from inside its hook.
// The remove hooks run strictly after the View has already force-removed
// the element, so they can do derived bookkeeping (statistics, reverse
// indexes) without re-implementing set maintenance — and without any way
// to bypass the forced removal.
//
// Policies hold their own state where needed and are independently
// testable; a View calls them synchronously from the graph's mutating
// goroutine.
type Policy interface {
	// OnVertexAdded is invoked when the backing graph gains a vertex.
	// Call v.AddVertex(vx.ID) to opt the vertex into the view.
	OnVertexAdded(v *View, vx core.Vertex)

	// OnEdgeAdded is invoked when the backing graph gains an edge.
	// Call v.AddEdge(e.ID) to opt the edge into the view.
	OnEdgeAdded(v *View, e core.Edge)

	// OnVertexRemoved is invoked after the view has force-removed vx
	// in response to its removal from the backing graph.
	OnVertexRemoved(v *View, vx core.Vertex)

	// OnEdgeRemoved is invoked after the view has force-removed e
	// in response to its removal from the backing graph.
	OnEdgeRemoved(v *View, e core.Edge)
}

// NopPolicy is the default Policy: it never includes new elements and does
// no bookkeeping. A view with NopPolicy only ever grows through explicit
// AddVertex / AddEdge calls.
type NopPolicy struct{}

// OnVertexAdded implements Policy as a no-op.
func (NopPolicy) OnVertexAdded(*View, core.Vertex) {}

// OnEdgeAdded implements Policy as a no-op.
func (NopPolicy) OnEdgeAdded(*View, core.Edge) {}

// OnVertexRemoved implements Policy as a no-op.
func (NopPolicy) OnVertexRemoved(*View, core.Vertex) {}

// OnEdgeRemoved implements Policy as a no-op.
func (NopPolicy) OnEdgeRemoved(*View, core.Edge) {}

// Option configures a View at construction via functional arguments.
type Option func(*viewOptions)

// viewOptions holds construction-time parameters for New.
type viewOptions struct {
	policy Policy
}

// defaultOptions returns viewOptions with sane defaults:
//   - NopPolicy (no auto-inclusion, no bookkeeping).
func defaultOptions() viewOptions {
	return viewOptions{policy: NopPolicy{}}
}

// WithPolicy injects the inclusion/bookkeeping strategy for the view.
// A nil policy is ignored and the default NopPolicy stays in effect.
func WithPolicy(p Policy) Option {
	return func(o *viewOptions) {
		if p != nil {
			o.policy = p
		}
	}
}
