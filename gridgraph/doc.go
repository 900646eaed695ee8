// Package gridgraph models a tile map as an immutable graph snapshot:
// a rectangular board of cell identities, the vertex behind every cell,
// and one-directional wormholes linking two cells.
//
// What:
//
//   - Terrain: Normal (cost 1), Gravel (cost 2), Boulder (impassable).
//   - Vertex: an identity plus its terrain; identities are stable for the
//     lifetime of the cell and unique within one Graph.
//   - Graph: board + vertex index + wormhole index. Every edit returns a
//     new *Graph; the receiver is never modified.
//
// Text maps:
//
//	..G
//	.#.
//
// One rune per cell, rows separated by newlines, surrounding whitespace
// trimmed. '.' is Normal, 'G' is Gravel, '#' is Boulder and any other rune
// is read as a Boulder.
//
// Complexity:
//
//   - FromTextMap, New, Resize: O(W×H) time and memory.
//   - SetVertexType, AddWormhole, RemoveWormhole: O(W×H) for the snapshot copy.
//   - At, Vertex, WormholeExit: O(1).
//
// Errors:
//
//   - ErrInvalidMap: empty or ragged text map (ErrEmptyMap, ErrNonRectangular).
//   - ErrInvalidSize: dimensions below MinSize.
//   - ErrUnknownVertex: identity not present in the snapshot.
//   - ErrUnknownWormhole: cell is neither a wormhole entrance nor an exit.
//   - ErrOutOfBounds: coordinate outside the board.
package gridgraph
