package core

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrMalformedPolygon is returned when a point sequence is too short to yield
// a single segment. It always indicates a generation bug.
var ErrMalformedPolygon = errors.New("core: polygon needs at least 2 points")

// Point is a position or direction in world space (y axis points up).
type Point = mgl32.Vec2

// Segment is a finite line segment between A and B.
type Segment struct {
	A, B Point
}

// Transform places a local-space shape in world space.
// Rotation is in radians, counter-clockwise; rotation 0 faces +y.
type Transform struct {
	Position Point
	Rotation float32
}

// NewTransform creates a transform at (x, y) with the given rotation.
func NewTransform(x, y, rotation float32) Transform {
	return Transform{Position: Point{x, y}, Rotation: rotation}
}

// Matrix returns the homogeneous matrix that rotates first, then translates.
func (t Transform) Matrix() mgl32.Mat3 {
	return mgl32.Translate2D(t.Position.X(), t.Position.Y()).Mul3(mgl32.HomogRotate2D(t.Rotation))
}

// Heading returns the unit vector the transform is facing.
func (t Transform) Heading() Point {
	return Point{-math32.Sin(t.Rotation), math32.Cos(t.Rotation)}
}

// SegmentIntersect reports where segments p1-p2 and p3-p4 cross.
//
// Parallel and collinear segments (zero determinant) never intersect, even
// when they overlap. Parameters exactly at 0 or 1 count as a hit; no epsilon
// is applied. The returned point lies on p1-p2.
func SegmentIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	s1 := p2.Sub(p1)
	s2 := p4.Sub(p3)

	denom := -s2.X()*s1.Y() + s1.X()*s2.Y()
	if denom == 0 {
		return Point{}, false
	}

	s := (-s1.Y()*(p1.X()-p3.X()) + s1.X()*(p1.Y()-p3.Y())) / denom
	t := (s2.X()*(p1.Y()-p3.Y()) - s2.Y()*(p1.X()-p3.X())) / denom

	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Point{}, false
	}
	return p1.Add(s1.Mul(t)), true
}

// PolygonPoints applies the transform to every vertex of a local shape and
// returns the absolute points in their original order.
func PolygonPoints(shape []Point, t Transform) []Point {
	m := t.Matrix()
	out := make([]Point, len(shape))
	for i, v := range shape {
		out[i] = m.Mul3x1(v.Vec3(1)).Vec2()
	}
	return out
}

// Segments splits an open or closed polyline into consecutive segments.
func Segments(points []Point) ([]Segment, error) {
	if len(points) < 2 {
		return nil, ErrMalformedPolygon
	}
	segs := make([]Segment, len(points)-1)
	for i := range segs {
		segs[i] = Segment{A: points[i], B: points[i+1]}
	}
	return segs, nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float32 {
	return a.Sub(b).Len()
}

// FromPolar converts an (angle, radius) pair to a Cartesian point.
func FromPolar(angle, radius float32) Point {
	return Point{math32.Cos(angle) * radius, math32.Sin(angle) * radius}
}
