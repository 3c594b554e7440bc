// Package solid implements the shapes used by the detector geometries.
package solid

import (
	"encoding/json"
	"fmt"

	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/utils"
)

// Solid is a shape described in its local frame, centered at the origin.
type Solid interface {
	Name() string
	// Validate checks the dimensions.
	Validate() error
	// Inside reports whether a local point lies inside or on the surface.
	Inside(p geometry.Point) bool
	// Extent is the local bounding box.
	Extent() geometry.AABB
	// Cubature is the volume of the solid.
	Cubature() float64
}

var solidType = struct {
	box  string
	tubs string
}{
	box:  "box",
	tubs: "tubs",
}

var solidTypeMapping = map[string]func() interface{}{
	solidType.box:  func() interface{} { return &Box{} },
	solidType.tubs: func() interface{} { return &Tubs{} },
}

// Unmarshal decodes a type-tagged solid.
func Unmarshal(b []byte) (Solid, error) {
	decoded, err := utils.TypeBasedUnmarshallJSON(b, solidTypeMapping)
	if err != nil {
		return nil, err
	}
	switch s := decoded.(type) {
	case Box:
		return &s, nil
	case Tubs:
		return &s, nil
	}
	return nil, fmt.Errorf("solid type %T not supported", decoded)
}

// Marshal encodes a solid with its type tag.
func Marshal(s Solid) ([]byte, error) {
	return json.Marshal(s)
}
