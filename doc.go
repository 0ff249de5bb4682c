// Package lvlview maintains live filtered views over a mutable graph:
// secondary vertex/edge collections that are always a subset of a backing
// graph, kept consistent as the backing graph changes, without duplicating
// its adjacency structure.
//
// 🚀 What is lvlview?
//
//	A small, pure-Go companion to in-memory graph libraries that brings:
//		• Observable core: a mutable graph that announces every vertex/edge
//		  change to its subscribers, synchronously and in order
//		• Subgraph views: membership subsets that track the backing graph
//		  through removals automatically, and through additions by policy
//		• Inclusion policies: pluggable strategies deciding which newly
//		  added elements a view should adopt (induced subgraphs included)
//		• Deterministic lifecycle: explicit, idempotent disposal that
//		  releases the subscription exactly once
//
// ✨ Why choose lvlview?
//
//   - Consistency first – forced removal always runs before any custom hook
//   - No duplication – a view stores membership only; topology stays
//     with the backing graph
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – policies and callback registries for custom reactions
//
// Everything is organized under two subpackages:
//
//	core/ — the observable Graph: vertices, edges, change notifications
//	view/ — the subgraph View: membership, consistency protocol, policies
//
// Quick ASCII example:
//
//	    backing graph            view (induced on {A,B,C})
//	    A───B───X                A───B
//	    │   │                    │
//	    C───D                    C
//
//	remove B from the backing graph and the view drops B — and the
//	edges A─B, B─X — before any of your own callbacks run.
//
// Dive into core/ and view/ package docs for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlview
package lvlview
