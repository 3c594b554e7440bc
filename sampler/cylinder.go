package sampler

import (
	"math"
	"math/rand"

	"github.com/jwaiton/nexus/geometry"
)

// Regions of a cylinder sampler.
const (
	Volume       = "VOLUME"
	InnerSurface = "INNER_SURFACE"
	OuterSurface = "OUTER_SURFACE"
)

// CylinderPointSampler samples points in a cylindrical shell along z.
type CylinderPointSampler struct {
	rMin, rMax float64
	halfLength float64
	transform  geometry.Transform
}

// NewCylinderPointSampler creates a sampler centered at origin.
func NewCylinderPointSampler(rMin, rMax, halfLength float64, origin geometry.Point, rotation *geometry.Rotation) (*CylinderPointSampler, error) {
	if rMax <= 0 || rMin < 0 || rMin >= rMax {
		return nil, invalidSampler(cylinderOrigin, "radii must satisfy 0 <= rmin < rmax")
	}
	if halfLength <= 0 {
		return nil, invalidSampler(cylinderOrigin, "half length must be positive")
	}
	rot := geometry.Identity()
	if rotation != nil {
		rot = *rotation
	}
	return &CylinderPointSampler{
		rMin: rMin, rMax: rMax, halfLength: halfLength,
		transform: geometry.Transform{Rotation: rot, Translation: origin},
	}, nil
}

// GenerateVertex samples uniformly in the VOLUME of the shell or on its
// INNER_SURFACE or OUTER_SURFACE.
func (c *CylinderPointSampler) GenerateVertex(rng *rand.Rand, region string) (geometry.Point, error) {
	phi := rng.Float64() * 2 * math.Pi
	z := uniform(rng, -c.halfLength, c.halfLength)
	var r float64
	switch region {
	case Volume:
		// uniform in area between rmin and rmax
		r = math.Sqrt(uniform(rng, c.rMin*c.rMin, c.rMax*c.rMax))
	case InnerSurface:
		if c.rMin == 0 {
			return geometry.Point{}, emptyRegion(cylinderOrigin, region, "the cylinder has no inner surface")
		}
		r = c.rMin
	case OuterSurface:
		r = c.rMax
	default:
		return geometry.Point{}, unknownRegion(cylinderOrigin, region)
	}
	local := geometry.Point{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
	return c.transform.Apply(local), nil
}
