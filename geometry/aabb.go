package geometry

import "math"

// AABB is an axis aligned bounding box.
type AABB struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewAABB builds a box from its center and full size.
func NewAABB(center Point, size Vec3D) AABB {
	minX, maxX := CenterAndSizeToMinAndMax(center.X, size.X)
	minY, maxY := CenterAndSizeToMinAndMax(center.Y, size.Y)
	minZ, maxZ := CenterAndSizeToMinAndMax(center.Z, size.Z)
	return AABB{Min: Point{minX, minY, minZ}, Max: Point{maxX, maxY, maxZ}}
}

// Size returns the full extent along each axis.
func (b AABB) Size() Vec3D {
	return Vec3D{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// Center of the box.
func (b AABB) Center() Point {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether other lies inside b, allowing tolerance.
func (b AABB) Contains(other AABB, tolerance float64) bool {
	return other.Min.X >= b.Min.X-tolerance && other.Max.X <= b.Max.X+tolerance &&
		other.Min.Y >= b.Min.Y-tolerance && other.Max.Y <= b.Max.Y+tolerance &&
		other.Min.Z >= b.Min.Z-tolerance && other.Max.Z <= b.Max.Z+tolerance
}

// ContainsPoint reports whether p lies inside b.
func (b AABB) ContainsPoint(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the interiors of two boxes overlap by more than
// tolerance on every axis. Touching faces do not count.
func (b AABB) Intersects(other AABB, tolerance float64) bool {
	return math.Min(b.Max.X, other.Max.X)-math.Max(b.Min.X, other.Min.X) > tolerance &&
		math.Min(b.Max.Y, other.Max.Y)-math.Max(b.Min.Y, other.Min.Y) > tolerance &&
		math.Min(b.Max.Z, other.Max.Z)-math.Max(b.Min.Z, other.Min.Z) > tolerance
}

// Transform returns the bounding box of b after t is applied.
func (b AABB) Transform(t Transform) AABB {
	first := true
	var result AABB
	for _, x := range []float64{b.Min.X, b.Max.X} {
		for _, y := range []float64{b.Min.Y, b.Max.Y} {
			for _, z := range []float64{b.Min.Z, b.Max.Z} {
				p := t.Apply(Point{x, y, z})
				if first {
					result = AABB{Min: p, Max: p}
					first = false
					continue
				}
				result.Min = Point{math.Min(result.Min.X, p.X), math.Min(result.Min.Y, p.Y), math.Min(result.Min.Z, p.Z)}
				result.Max = Point{math.Max(result.Max.X, p.X), math.Max(result.Max.Y, p.Y), math.Max(result.Max.Z, p.Z)}
			}
		}
	}
	return result
}
