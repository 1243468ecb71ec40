package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a grid-snapped position on the map canvas.
type Point struct {
	X, Y int
}

// Vec converts p to a gonum vector for distance math.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// SnapToGrid rounds (x,y) to the nearest grid intersection.
// Each axis is divided by gridSize, rounded half-to-even and scaled back,
// so SnapToGrid is idempotent. A gridSize ≤ 0 is treated as 1.
// Complexity: O(1).
func SnapToGrid(x, y float64, gridSize int) Point {
	if gridSize <= 0 {
		gridSize = 1
	}
	g := float64(gridSize)
	return Point{
		X: int(math.RoundToEven(x/g)) * gridSize,
		Y: int(math.RoundToEven(y/g)) * gridSize,
	}
}

// Distance returns the Euclidean norm of q−p.
func Distance(p, q r2.Vec) float64 {
	return r2.Norm(r2.Sub(q, p))
}

// InSquare reports whether p lies strictly inside the axis-aligned square of
// half-side tolerance centred on c. A point exactly tolerance away on either
// axis is outside.
func InSquare(p, c r2.Vec, tolerance float64) bool {
	return math.Abs(p.X-c.X) < tolerance && math.Abs(p.Y-c.Y) < tolerance
}

// PointNearSegment reports whether p is "on" segment ab within tolerance.
//
// The test accepts p when the detour a→p→b is shorter than tolerance beyond
// |ab| and p sits inside the segment's bounding box grown by tolerance on
// every side (bounds inclusive). A degenerate segment (a == b) reduces to a
// circle of radius tolerance/2 around a.
// Complexity: O(1).
func PointNearSegment(p, a, b r2.Vec, tolerance float64) bool {
	detour := Distance(p, a) + Distance(p, b) - Distance(a, b)
	if math.Abs(detour) >= tolerance {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return p.X >= minX-tolerance && p.X <= maxX+tolerance &&
		p.Y >= minY-tolerance && p.Y <= maxY+tolerance
}
