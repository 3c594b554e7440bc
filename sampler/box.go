package sampler

import (
	"math/rand"

	"github.com/jwaiton/nexus/geometry"
)

// Regions of a box sampler.
const (
	Inside   = "INSIDE"
	WholeVol = "WHOLE_VOL"
	Wall     = "WALL"
)

// BoxPointSampler samples points in a box of given inner dimensions,
// optionally surrounded by walls of a given thickness.
type BoxPointSampler struct {
	inner     geometry.Vec3D
	thickness float64
	transform geometry.Transform
}

// NewBoxPointSampler creates a sampler. inner is the full inner size, origin
// the box center in the mother frame, rotation may be nil.
func NewBoxPointSampler(inner geometry.Vec3D, thickness float64, origin geometry.Point, rotation *geometry.Rotation) (*BoxPointSampler, error) {
	if inner.X <= 0 || inner.Y <= 0 || inner.Z <= 0 {
		return nil, invalidSampler(boxOrigin, "inner dimensions must be positive, got %v", inner)
	}
	if thickness < 0 {
		return nil, invalidSampler(boxOrigin, "thickness cannot be negative")
	}
	rot := geometry.Identity()
	if rotation != nil {
		rot = *rotation
	}
	return &BoxPointSampler{
		inner:     inner,
		thickness: thickness,
		transform: geometry.Transform{Rotation: rot, Translation: origin},
	}, nil
}

// GenerateVertex samples uniformly in the region: INSIDE the inner box, the
// WHOLE_VOL including walls, or the WALL shell only.
func (b *BoxPointSampler) GenerateVertex(rng *rand.Rand, region string) (geometry.Point, error) {
	var local geometry.Point
	switch region {
	case Inside:
		local = b.sampleBox(rng, b.inner)
	case WholeVol:
		local = b.sampleBox(rng, b.outer())
	case Wall:
		if b.thickness == 0 {
			return geometry.Point{}, emptyRegion(boxOrigin, region, "the box has no walls")
		}
		local = b.sampleWall(rng)
	default:
		return geometry.Point{}, unknownRegion(boxOrigin, region)
	}
	return b.transform.Apply(local), nil
}

func (b *BoxPointSampler) outer() geometry.Vec3D {
	t := 2 * b.thickness
	return geometry.Vec3D{X: b.inner.X + t, Y: b.inner.Y + t, Z: b.inner.Z + t}
}

func (b *BoxPointSampler) sampleBox(rng *rand.Rand, size geometry.Vec3D) geometry.Point {
	return geometry.Point{
		X: uniform(rng, -size.X/2, size.X/2),
		Y: uniform(rng, -size.Y/2, size.Y/2),
		Z: uniform(rng, -size.Z/2, size.Z/2),
	}
}

func (b *BoxPointSampler) sampleWall(rng *rand.Rand) geometry.Point {
	half := b.inner.Half()
	for {
		p := b.sampleBox(rng, b.outer())
		if p.X < -half.X || p.X > half.X || p.Y < -half.Y || p.Y > half.Y || p.Z < -half.Z || p.Z > half.Z {
			return p
		}
	}
}
