// Package gridroute finds the cheapest route across a rectangular tile map
// whose cells are plain ground, gravel or boulders, and whose wormholes
// teleport a traveller from an entrance cell to an exit cell at a fixed
// cost of 1.
//
// 🚀 What is gridroute?
//
//	A routing library plus a CLI that brings together:
//		• Tile maps: build from text, resize, retype cells, link wormholes
//		• Immutable snapshots: every edit returns a new map, old ones stay valid
//		• Adjacency: weighted arcs per cell, diagonal and wormhole rules
//		• Shortest paths: Dijkstra with a deterministic tie-break
//		• Scenarios: YAML documents with edits, endpoints and rules
//		• Rendering: the board and the route, colored for the terminal
//
// Packages:
//
//	gridgraph/  - Graph, Vertex, Terrain, wormholes and the edit operations
//	adjacency/  - Build turns a Graph into an ordered, weighted arc map
//	dijkstra/   - ShortestPath over an adjacency Map
//	route/      - Find, FindWithin: the one-call entry point (Graph in, path and cost out)
//	scenario/   - YAML scenario loading and edit replay
//	render/     - text/ANSI board rendering
//	cmd/gridroute - the CLI (route, render, version)
//
// Costs: a step weighs the terrain cost of the cell it leaves plus that of
// the cell it enters (plain 1, gravel 2); boulders are never entered, and a
// wormhole jump costs 1 regardless of terrain.
//
// Quick ASCII example:
//
//	S.G       S**
//	.#.  ──►  .#F     cost: 8 (no diagonals)
//
//	go install github.com/katalvlaran/gridroute/cmd/gridroute@latest
package gridroute
