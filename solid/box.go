package solid

import (
	"encoding/json"
	"fmt"

	"github.com/jwaiton/nexus/geometry"
)

// Box is a cuboid given by its half lengths.
type Box struct {
	BoxName string  `json:"name"`
	HalfX   float64 `json:"halfX"`
	HalfY   float64 `json:"halfY"`
	HalfZ   float64 `json:"halfZ"`
}

// NewBox creates a box from half lengths.
func NewBox(name string, halfX, halfY, halfZ float64) *Box {
	return &Box{BoxName: name, HalfX: halfX, HalfY: halfY, HalfZ: halfZ}
}

func (b *Box) Name() string { return b.BoxName }

// Validate checks that every half length is positive.
func (b *Box) Validate() error {
	for axis, size := range map[string]float64{
		"x": b.HalfX,
		"y": b.HalfY,
		"z": b.HalfZ,
	} {
		if size <= 0.0 {
			return fmt.Errorf("box %q half length in %s axis cannot be <= 0.0", b.BoxName, axis)
		}
	}
	return nil
}

func (b *Box) Inside(p geometry.Point) bool {
	return p.X >= -b.HalfX && p.X <= b.HalfX &&
		p.Y >= -b.HalfY && p.Y <= b.HalfY &&
		p.Z >= -b.HalfZ && p.Z <= b.HalfZ
}

func (b *Box) Extent() geometry.AABB {
	return geometry.AABB{
		Min: geometry.Point{X: -b.HalfX, Y: -b.HalfY, Z: -b.HalfZ},
		Max: geometry.Point{X: b.HalfX, Y: b.HalfY, Z: b.HalfZ},
	}
}

func (b *Box) Cubature() float64 {
	return 8 * b.HalfX * b.HalfY * b.HalfZ
}

// Size returns the full dimensions.
func (b *Box) Size() geometry.Vec3D {
	return geometry.Vec3D{X: 2 * b.HalfX, Y: 2 * b.HalfY, Z: 2 * b.HalfZ}
}

// MarshalJSON json.Marshaller implementaion.
func (b Box) MarshalJSON() ([]byte, error) {
	type Alias Box
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.box,
		Alias: Alias(b),
	})
}
