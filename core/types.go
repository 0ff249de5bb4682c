// Package core defines the observable Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and
// observing graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so you can safely mutate
// your graphs across goroutines with minimal contention. Change
// notifications are dispatched synchronously, in the mutating goroutine,
// after internal locks are released.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrEmptyEdgeID         - edge ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided edge ID is empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. The empty string is
// never a valid ID; every mutation rejects it up front, so notification
// payloads always carry a usable identity.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is shared, not deep-copied,
	// when a Vertex value travels through a notification.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, integer Weight, and a
// Directed flag inherited from the Graph's default directedness.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the observable in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops, and announces every
// vertex/edge change to its subscribers (see Subscribe).
// muVert protects vertices map; muEdgeAdj protects edges map and
// adjacencyList. nextEdgeID is an atomic counter for unique Edge.ID
// generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}

	// Subscribers, notified after every successful mutation.
	listeners listenerSet
}

// NewGraph creates an empty Graph with the given flags and options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	g.listeners.init()
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph-wide default directedness applied to new edges.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted. If false, duplicates are rejected with ErrMultiEdgeNotAllowed.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
