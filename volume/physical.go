package volume

import (
	"fmt"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/geometry"
)

var log = config.NamedLogger("volume")

// Physical is a placement of a logical volume inside a mother logical volume.
type Physical struct {
	Name      string
	Logical   *Logical
	Mother    *Logical
	Transform geometry.Transform
	CopyNo    int
}

// Placement describes a placement request.
type Placement struct {
	Rotation    *geometry.Rotation
	Translation geometry.Point
	Logical     *Logical
	Name        string
	Mother      *Logical
	CopyNo      int
	// CheckOverlaps reports overlaps with siblings and protrusions out of
	// the mother as warnings.
	CheckOverlaps bool
}

// Place creates a physical volume. A nil mother creates the world placement.
func Place(p Placement) (*Physical, error) {
	if p.Logical == nil {
		return nil, fmt.Errorf("placement %q: nil logical volume", p.Name)
	}
	if p.Mother == p.Logical {
		return nil, fmt.Errorf("placement %q: volume placed inside itself", p.Name)
	}
	rotation := geometry.Identity()
	if p.Rotation != nil {
		rotation = *p.Rotation
	}
	phys := &Physical{
		Name:    p.Name,
		Logical: p.Logical,
		Mother:  p.Mother,
		Transform: geometry.Transform{
			Rotation:    rotation,
			Translation: p.Translation,
		},
		CopyNo: p.CopyNo,
	}
	if p.Mother == nil {
		return phys, nil
	}
	if p.CheckOverlaps {
		for _, overlap := range CheckOverlaps(p.Mother, phys) {
			log.Warnf("Overlap is detected for volume %s:%d, %s", phys.Name, phys.CopyNo, overlap)
		}
	}
	p.Mother.daughters = append(p.Mother.daughters, phys)
	return phys, nil
}

// Extent is the bounding box of the placed volume in the mother frame.
func (p *Physical) Extent() geometry.AABB {
	return p.Logical.Solid.Extent().Transform(p.Transform)
}

// Overlap describes a failed overlap check.
type Overlap struct {
	// With is the sibling name, empty for protrusion out of the mother.
	With string
	// With copy number of the sibling.
	WithCopyNo int
}

func (o Overlap) String() string {
	if o.With == "" {
		return "protruding out of mother volume"
	}
	return fmt.Sprintf("with volume %s:%d", o.With, o.WithCopyNo)
}

const overlapTolerance = 1e-9

// CheckOverlaps compares a candidate placement with the mother extent and the
// current daughters of the mother using bounding boxes.
func CheckOverlaps(mother *Logical, candidate *Physical) []Overlap {
	overlaps := []Overlap{}
	extent := candidate.Extent()
	if !mother.Solid.Extent().Contains(extent, overlapTolerance) {
		overlaps = append(overlaps, Overlap{})
	}
	for _, sibling := range mother.daughters {
		if sibling == candidate {
			continue
		}
		if extent.Intersects(sibling.Extent(), overlapTolerance) {
			overlaps = append(overlaps, Overlap{With: sibling.Name, WithCopyNo: sibling.CopyNo})
		}
	}
	return overlaps
}
