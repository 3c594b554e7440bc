package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateYByPiFlipsXZ(t *testing.T) {
	r := Identity().RotateY(math.Pi)
	p := r.Apply(Point{1, 2, 3})
	assert.True(t, p.Equal(Point{-1, 2, -3}, 1e-12), "got %v", p)
}

func TestTransformInverse(t *testing.T) {
	tr := Transform{
		Rotation:    Identity().RotateZ(0.3).RotateX(1.1),
		Translation: Point{10, -4, 2},
	}
	p := Point{0.5, 7, -3}
	back := tr.Inverse().Apply(tr.Apply(p))
	assert.True(t, back.Equal(p, 1e-9), "got %v", back)
}

func TestCompose(t *testing.T) {
	outer := Translate(Point{0, 0, 100})
	inner := Transform{Rotation: Identity().RotateZ(math.Pi / 2), Translation: Point{1, 0, 0}}
	p := Point{1, 0, 0}
	assert.True(t, outer.Compose(inner).Apply(p).Equal(outer.Apply(inner.Apply(p)), 1e-12))
}

func TestAABB(t *testing.T) {
	a := NewAABB(Origin, Vec3D{2, 2, 2})
	b := NewAABB(Point{2, 0, 0}, Vec3D{2, 2, 2})
	c := NewAABB(Point{1.5, 0, 0}, Vec3D{2, 2, 2})

	assert.False(t, a.Intersects(b, 0), "touching boxes must not intersect")
	assert.True(t, a.Intersects(c, 0))
	assert.True(t, NewAABB(Origin, Vec3D{10, 10, 10}).Contains(a, 0))
	assert.False(t, a.Contains(c, 0))

	rotated := a.Transform(Transform{Rotation: Identity().RotateZ(math.Pi / 4)})
	assert.InDelta(t, 2*math.Sqrt2, rotated.Size().X, 1e-12)
}

func TestCenterAndSizeToMinAndMax(t *testing.T) {
	min, max := CenterAndSizeToMinAndMax(1, 4)
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 3.0, max)
}
