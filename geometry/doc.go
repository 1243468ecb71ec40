// Package geometry holds the stateless 2D helpers behind the map editor:
// grid snapping, Euclidean distance and the hit-tests that translate a
// pointer position into "the thing the user meant".
//
// What:
//
//   - SnapToGrid quantizes a raw pointer coordinate to the nearest grid
//     intersection (round-half-to-even per axis).
//   - Distance is the Euclidean norm of q−p.
//   - InSquare is the square vertex hit-box (strict <).
//   - PointNearSegment is the cheap "detour" test for edges:
//     |d(p,a)+d(p,b)−d(a,b)| < tol, restricted to the segment's bounding box
//     expanded by tol.
//
// Shape of the edge hit region:
//
//	The detour length grows roughly quadratically with the perpendicular
//	offset near the middle of a segment and linearly near its ends, so the
//	accepted region is a thin ellipse around the segment rather than a
//	capsule of constant width.
//
// Complexity:
//
//   - All functions: O(1) time, O(1) memory.
//
// Vector math is done with gonum's spatial/r2 package.
package geometry
