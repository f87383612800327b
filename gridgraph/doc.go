// Package gridgraph treats a rectangular ASCII maze as an immutable obstacle
// grid, the input model of the turn-penalised solver.
//
// What:
//
//   - Grid holds a wall mask, a start cell, an end cell and width/height.
//   - IsWall, InBounds and Passable answer in O(1).
//   - Index/Coordinate map cells to row-major integers for arena tables.
//   - Parse reads the map format: '#' wall, '.' floor, 'S' start, 'E' end.
//   - Component/Connected flood-fill open cells, ignoring orientation.
//
// Why:
//
//   - The solver needs only constant-time obstacle and bounds lookups.
//   - An immutable grid can be shared by repeated solves without copying.
//
// Complexity:
//
//   - NewGrid, Parse:       O(W×H), Memory: O(W×H).
//   - IsWall, InBounds:     O(1).
//   - Component, Connected: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: map has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a character outside the alphabet.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd.
//   - ErrOutOfBounds, ErrBlockedEndpoint: invalid NewGrid arguments.
package gridgraph
