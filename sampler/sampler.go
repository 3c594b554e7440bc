// Package sampler generates random vertices in simple regions. Samplers are
// immutable after construction; the random source is passed at each call.
package sampler

import (
	"math/rand"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
)

// Sampler generates a point in a named region.
type Sampler interface {
	GenerateVertex(rng *rand.Rand, region string) (geometry.Point, error)
}

const (
	boxOrigin      = "[BoxPointSampler]"
	cylinderOrigin = "[CylinderPointSampler]"
)

func unknownRegion(origin, region string) error {
	return exception.New(origin, "GenerateVertex()", exception.ErrUnknownRegion,
		"Unknown vertex generation region %q", region)
}

// emptyRegion reports a known region that has no extent in this sampler.
func emptyRegion(origin, region, format string, values ...interface{}) error {
	return exception.New(origin, "GenerateVertex()", exception.ErrUnknownRegion,
		"Region %q is empty: "+format, append([]interface{}{region}, values...)...)
}

func invalidSampler(origin, format string, values ...interface{}) error {
	return exception.New(origin, "New()", exception.ErrInvalidConfiguration, format, values...)
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
