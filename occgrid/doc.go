// Package occgrid models a fixed-size 2D occupancy grid under partial sensing.
//
// What:
//
//   - Raw is the binary obstacle map supplied by a scenario (free / blocked).
//   - Grid is the sensed map: every cell is exactly one of Obstacle,
//     KnownFree or Unknown.
//   - Cell is an (X, Y) coordinate value; CellState is the knowledge state.
//
// Both Raw and Grid are immutable after construction, so a single instance
// can be shared read-only across goroutines.
//
// Coordinates:
//
//   - X grows to the right (columns), Y grows downward (rows).
//   - Storage is row-major: index = Y*Width + X.
//   - Cell centres sit at (X+0.5, Y+0.5) in continuous space.
//
// Complexity:
//
//   - NewRaw, FromObstacles, Build: O(W×H) time and memory.
//   - InBounds, State, IsObstacle, Blocked: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDimensions: width or height is not positive.
//   - ErrOutOfBounds: a listed cell lies outside the map.
package occgrid
