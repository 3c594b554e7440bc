// Package geometry contains 3D points, rotations and transforms shared by
// solids, volumes and vertex samplers.
package geometry

import (
	"fmt"
	"math"
)

// Point represent point in space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent 3D vector, used for sizes.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin of the coordinate system.
var Origin = Point{}

func (a Point) Add(b Point) Point     { return Point{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Point) Sub(b Point) Point     { return Point{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Point) Scale(s float64) Point { return Point{a.X * s, a.Y * s, a.Z * s} }

// Dot returns the dot product of two points treated as vectors.
func (a Point) Dot(b Point) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Len returns the Euclidean length.
func (a Point) Len() float64 { return math.Sqrt(a.Dot(a)) }

// Perp returns the distance from the z axis.
func (a Point) Perp() float64 { return math.Hypot(a.X, a.Y) }

// Equal compares points with an absolute tolerance.
func (a Point) Equal(b Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func (a Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", a.X, a.Y, a.Z)
}

// Half returns a vector with every component halved.
func (v Vec3D) Half() Vec3D { return Vec3D{v.X / 2, v.Y / 2, v.Z / 2} }

func (v Vec3D) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// CenterAndSizeToMinAndMax converts center and full size on one axis to
// its lower and upper bounds.
func CenterAndSizeToMinAndMax(center, size float64) (float64, float64) {
	return center - size/2.0, center + size/2.0
}
