// Package volume implements the volume tree: logical volumes (solid +
// material), their placements in mother volumes and optical surfaces.
package volume

import (
	"fmt"

	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/solid"
)

// Logical is a shape filled with a material. It may be placed many times.
type Logical struct {
	Name      string
	Solid     solid.Solid
	Material  *material.Material
	Vis       VisAttributes
	Sensitive *SensitiveDetector

	daughters []*Physical
}

// NewLogical validates the solid and creates a logical volume.
func NewLogical(s solid.Solid, m *material.Material, name string) (*Logical, error) {
	if s == nil {
		return nil, fmt.Errorf("logical volume %q: nil solid", name)
	}
	if m == nil {
		return nil, fmt.Errorf("logical volume %q: nil material", name)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("logical volume %q: %w", name, err)
	}
	return &Logical{Name: name, Solid: s, Material: m, Vis: Visible()}, nil
}

// Daughters returns the placements inside the volume, in placement order.
func (l *Logical) Daughters() []*Physical {
	return l.daughters
}

// SetVisAttributes sets the visualization attributes.
func (l *Logical) SetVisAttributes(vis VisAttributes) {
	l.Vis = vis
}

// SetSensitiveDetector marks the volume as a sensor.
func (l *Logical) SetSensitiveDetector(sd *SensitiveDetector) {
	l.Sensitive = sd
}
