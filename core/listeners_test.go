package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlview/core"
)

// recorder captures the notification stream as compact "<op>:<id>" tokens
// so tests can assert full event ordering with one slice comparison.
type recorder struct {
	events []string
}

func (r *recorder) VertexAdded(v core.Vertex)   { r.events = append(r.events, "+v:"+v.ID) }
func (r *recorder) VertexRemoved(v core.Vertex) { r.events = append(r.events, "-v:"+v.ID) }
func (r *recorder) EdgeAdded(e core.Edge)       { r.events = append(r.events, "+e:"+e.ID) }
func (r *recorder) EdgeRemoved(e core.Edge)     { r.events = append(r.events, "-e:"+e.ID) }

func TestSubscribe_VertexEvents(t *testing.T) {
	g := core.NewGraph()
	rec := &recorder{}
	g.Subscribe(rec)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent: no second event
	require.NoError(t, g.RemoveVertex("A"))

	assert.Equal(t, []string{"+v:A", "-v:A"}, rec.events)
}

func TestSubscribe_EdgeEventsWithAutoVertices(t *testing.T) {
	g := core.NewGraph()
	rec := &recorder{}
	g.Subscribe(rec)

	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	// Auto-created endpoints announce themselves before the edge does.
	assert.Equal(t, []string{"+v:A", "+v:B", "+e:" + eid}, rec.events)

	require.NoError(t, g.RemoveEdge(eid))
	assert.Equal(t, "-e:"+eid, rec.events[len(rec.events)-1])
}

func TestSubscribe_CascadeOrdering(t *testing.T) {
	// Removing a vertex dispatches its incident edges first, sorted by
	// edge ID, then the vertex itself.
	g := core.NewGraph()
	ab, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	bc, err := g.AddEdge("B", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0)
	require.NoError(t, err)

	rec := &recorder{}
	g.Subscribe(rec)
	require.NoError(t, g.RemoveVertex("B"))

	assert.Equal(t, []string{"-e:" + ab, "-e:" + bc, "-v:B"}, rec.events)
}

func TestSubscribe_FilterEdgesEvents(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	e1, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	e3, err := g.AddEdge("C", "D", 3)
	require.NoError(t, err)

	rec := &recorder{}
	g.Subscribe(rec)
	g.FilterEdges(func(e core.Edge) bool { return e.Weight == 2 })

	assert.Equal(t, []string{"-e:" + e1, "-e:" + e3}, rec.events)
}

func TestSubscribe_MultipleListenersInOrder(t *testing.T) {
	g := core.NewGraph()
	var order []string
	first := &funcListener{onVertexAdded: func(core.Vertex) { order = append(order, "first") }}
	second := &funcListener{onVertexAdded: func(core.Vertex) { order = append(order, "second") }}
	g.Subscribe(first)
	g.Subscribe(second)

	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	g := core.NewGraph()
	rec := &recorder{}
	sub := g.Subscribe(rec)

	require.NoError(t, g.AddVertex("A"))
	g.Unsubscribe(sub)
	require.NoError(t, g.AddVertex("B"))

	assert.Equal(t, []string{"+v:A"}, rec.events)
}

func TestUnsubscribe_StaleAndZeroTokens(t *testing.T) {
	g := core.NewGraph()
	rec := &recorder{}
	sub := g.Subscribe(rec)

	g.Unsubscribe(sub)
	g.Unsubscribe(sub) // repeat release is a no-op
	g.Unsubscribe(0)   // zero token is a no-op

	require.NoError(t, g.AddVertex("A"))
	assert.Empty(t, rec.events)
}

func TestSubscribe_NilListenerIgnored(t *testing.T) {
	g := core.NewGraph()
	sub := g.Subscribe(nil)
	assert.Equal(t, core.Subscription(0), sub)
	require.NoError(t, g.AddVertex("A")) // must not panic on dispatch
}

func TestListener_MayReenterGraphQueries(t *testing.T) {
	// Dispatch happens after locks are released, so a listener probing the
	// graph mid-callback must not deadlock and must see the new state.
	g := core.NewGraph()
	var sawItself bool
	l := &funcListener{onVertexAdded: func(v core.Vertex) { sawItself = g.HasVertex(v.ID) }}
	g.Subscribe(l)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, sawItself)
}

// funcListener adapts standalone funcs to core.GraphListener for tests
// that only care about a single event kind.
type funcListener struct {
	onVertexAdded   func(core.Vertex)
	onVertexRemoved func(core.Vertex)
	onEdgeAdded     func(core.Edge)
	onEdgeRemoved   func(core.Edge)
}

func (f *funcListener) VertexAdded(v core.Vertex) {
	if f.onVertexAdded != nil {
		f.onVertexAdded(v)
	}
}

func (f *funcListener) VertexRemoved(v core.Vertex) {
	if f.onVertexRemoved != nil {
		f.onVertexRemoved(v)
	}
}

func (f *funcListener) EdgeAdded(e core.Edge) {
	if f.onEdgeAdded != nil {
		f.onEdgeAdded(e)
	}
}

func (f *funcListener) EdgeRemoved(e core.Edge) {
	if f.onEdgeRemoved != nil {
		f.onEdgeRemoved(e)
	}
}
