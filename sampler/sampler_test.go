package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 2000

func TestBoxInside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	origin := geometry.Point{X: 1, Y: 2, Z: -3}
	b, err := NewBoxPointSampler(geometry.Vec3D{X: 79, Y: 79, Z: 0.3}, 0, origin, nil)
	require.NoError(t, err)

	bounds := geometry.NewAABB(origin, geometry.Vec3D{X: 79, Y: 79, Z: 0.3})
	for i := 0; i < samples; i++ {
		p, err := b.GenerateVertex(rng, Inside)
		require.NoError(t, err)
		require.True(t, bounds.ContainsPoint(p), "point %v outside %v", p, bounds)
	}
}

func TestBoxWall(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b, err := NewBoxPointSampler(geometry.Vec3D{X: 2, Y: 2, Z: 2}, 1, geometry.Origin, nil)
	require.NoError(t, err)

	inner := geometry.NewAABB(geometry.Origin, geometry.Vec3D{X: 2, Y: 2, Z: 2})
	outer := geometry.NewAABB(geometry.Origin, geometry.Vec3D{X: 4, Y: 4, Z: 4})
	for i := 0; i < samples; i++ {
		p, err := b.GenerateVertex(rng, Wall)
		require.NoError(t, err)
		require.True(t, outer.ContainsPoint(p))
		require.False(t, inner.ContainsPoint(p))
	}

	noWalls, err := NewBoxPointSampler(geometry.Vec3D{X: 2, Y: 2, Z: 2}, 0, geometry.Origin, nil)
	require.NoError(t, err)
	_, err = noWalls.GenerateVertex(rng, Wall)
	assert.Error(t, err)
}

func TestCylinderRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	origin := geometry.Point{Z: 100}
	c, err := NewCylinderPointSampler(10, 20, 5, origin, nil)
	require.NoError(t, err)

	for i := 0; i < samples; i++ {
		p, err := c.GenerateVertex(rng, Volume)
		require.NoError(t, err)
		r := p.Perp()
		require.True(t, r >= 10 && r <= 20, "radius %g", r)
		require.True(t, math.Abs(p.Z-100) <= 5)
	}

	p, err := c.GenerateVertex(rng, OuterSurface)
	require.NoError(t, err)
	assert.InDelta(t, 20, p.Perp(), 1e-9)

	p, err = c.GenerateVertex(rng, InnerSurface)
	require.NoError(t, err)
	assert.InDelta(t, 10, p.Perp(), 1e-9)
}

func TestUnknownRegion(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	b, err := NewBoxPointSampler(geometry.Vec3D{X: 1, Y: 1, Z: 1}, 0, geometry.Origin, nil)
	require.NoError(t, err)
	_, err = b.GenerateVertex(rng, "NOWHERE")
	assert.ErrorIs(t, err, exception.ErrUnknownRegion)

	c, err := NewCylinderPointSampler(0, 1, 1, geometry.Origin, nil)
	require.NoError(t, err)
	_, err = c.GenerateVertex(rng, "NOWHERE")
	assert.ErrorIs(t, err, exception.ErrUnknownRegion)
}

func TestEmptyRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	b, err := NewBoxPointSampler(geometry.Vec3D{X: 1, Y: 1, Z: 1}, 0, geometry.Origin, nil)
	require.NoError(t, err)
	_, err = b.GenerateVertex(rng, Wall)
	assert.ErrorIs(t, err, exception.ErrUnknownRegion)
	assert.True(t, exception.IsFatal(err))

	c, err := NewCylinderPointSampler(0, 1, 1, geometry.Origin, nil)
	require.NoError(t, err)
	_, err = c.GenerateVertex(rng, InnerSurface)
	assert.ErrorIs(t, err, exception.ErrUnknownRegion)
	assert.True(t, exception.IsFatal(err))
}

func TestInvalidSamplers(t *testing.T) {
	_, err := NewBoxPointSampler(geometry.Vec3D{X: 2, Y: 0, Z: 2}, 0, geometry.Origin, nil)
	assert.ErrorIs(t, err, exception.ErrInvalidConfiguration)
	_, err = NewBoxPointSampler(geometry.Vec3D{X: 2, Y: 2, Z: 2}, -1, geometry.Origin, nil)
	assert.ErrorIs(t, err, exception.ErrInvalidConfiguration)
	_, err = NewCylinderPointSampler(2, 1, 1, geometry.Origin, nil)
	assert.ErrorIs(t, err, exception.ErrInvalidConfiguration)
	_, err = NewCylinderPointSampler(0, 1, 0, geometry.Origin, nil)
	assert.ErrorIs(t, err, exception.ErrInvalidConfiguration)
}

func TestSamplerIsDeterministicForSeed(t *testing.T) {
	b, err := NewBoxPointSampler(geometry.Vec3D{X: 1, Y: 1, Z: 1}, 0, geometry.Origin, nil)
	require.NoError(t, err)
	first, _ := b.GenerateVertex(rand.New(rand.NewSource(7)), Inside)
	second, _ := b.GenerateVertex(rand.New(rand.NewSource(7)), Inside)
	assert.Equal(t, first, second)
}
