package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlview/core"
)

// printListener prints each notification as it arrives, demonstrating the
// synchronous, in-order dispatch contract.
type printListener struct{}

func (printListener) VertexAdded(v core.Vertex)   { fmt.Println("vertex added:", v.ID) }
func (printListener) VertexRemoved(v core.Vertex) { fmt.Println("vertex removed:", v.ID) }
func (printListener) EdgeAdded(e core.Edge)       { fmt.Println("edge added:", e.ID, e.From, "→", e.To) }
func (printListener) EdgeRemoved(e core.Edge)     { fmt.Println("edge removed:", e.ID) }

// ExampleGraph_Subscribe builds a small graph under observation and shows
// the cascade ordering: incident edges retire before their vertex.
func ExampleGraph_Subscribe() {
	g := core.NewGraph()
	sub := g.Subscribe(printListener{})
	defer g.Unsubscribe(sub)

	g.AddVertex("A")
	g.AddEdge("A", "B", 0) // B is auto-created first
	g.RemoveVertex("A")    // edge e1 retires before A

	// Output:
	// vertex added: A
	// vertex added: B
	// edge added: e1 A → B
	// edge removed: e1
	// vertex removed: A
}
