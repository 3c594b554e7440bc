package volume

import (
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/solid"
)

// VisitFunc is called for every placement with its depth and the transform
// from the placed volume frame to the frame of the walk root.
type VisitFunc func(p *Physical, depth int, toRoot geometry.Transform) error

// Walk visits the daughters of root depth first, in placement order.
func Walk(root *Logical, visit VisitFunc) error {
	return walk(root, 1, geometry.Translate(geometry.Origin), visit)
}

func walk(l *Logical, depth int, toRoot geometry.Transform, visit VisitFunc) error {
	for _, d := range l.daughters {
		t := toRoot.Compose(d.Transform)
		if err := visit(d, depth, t); err != nil {
			return err
		}
		if err := walk(d.Logical, depth+1, t, visit); err != nil {
			return err
		}
	}
	return nil
}

// CountPlacements returns how many placements, anywhere under root, use the
// physical volume name.
func CountPlacements(root *Logical, name string) int {
	count := 0
	_ = Walk(root, func(p *Physical, _ int, _ geometry.Transform) error {
		if p.Name == name {
			count++
		}
		return nil
	})
	return count
}

// Touchable is the placement history of a located point, outermost first.
type Touchable []*Physical

// Volume returns the deepest logical volume, or nil.
func (t Touchable) Volume() *Physical {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// Locate finds the deepest volume containing p, a point in the root frame.
// It returns nil if p is not inside root.
func Locate(root *Logical, p geometry.Point) (Touchable, bool) {
	if !root.Solid.Inside(p) {
		return nil, false
	}
	history := Touchable{}
	current := root
	local := p
	for {
		next := (*Physical)(nil)
		for _, d := range current.daughters {
			candidate := d.Transform.Inverse().Apply(local)
			if d.Logical.Solid.Inside(candidate) {
				next = d
				local = candidate
				break
			}
		}
		if next == nil {
			return history, true
		}
		history = append(history, next)
		current = next.Logical
	}
}

// Node is the exported form of a placement.
type Node struct {
	Name      string             `json:"name"`
	CopyNo    int                `json:"copyNo"`
	Logical   string             `json:"logical"`
	Material  string             `json:"material"`
	Solid     solid.Solid        `json:"solid"`
	Transform geometry.Transform `json:"transform"`
	Visible   bool               `json:"visible"`
	Sensitive *SensitiveDetector `json:"sensitive,omitempty"`
	Daughters []*Node            `json:"daughters,omitempty"`
}

// Export converts the tree under a physical volume into nodes.
func Export(p *Physical) *Node {
	node := &Node{
		Name:      p.Name,
		CopyNo:    p.CopyNo,
		Logical:   p.Logical.Name,
		Material:  p.Logical.Material.Name,
		Solid:     p.Logical.Solid,
		Transform: p.Transform,
		Visible:   p.Logical.Vis.Visible,
		Sensitive: p.Logical.Sensitive,
	}
	for _, d := range p.Logical.daughters {
		node.Daughters = append(node.Daughters, Export(d))
	}
	return node
}

// LogicalVolumes lists the distinct logical volumes under root, daughters
// before mothers, root last.
func LogicalVolumes(root *Logical) []*Logical {
	seen := map[*Logical]bool{}
	ordered := []*Logical{}
	var visit func(l *Logical)
	visit = func(l *Logical) {
		if seen[l] {
			return
		}
		seen[l] = true
		for _, d := range l.daughters {
			visit(d.Logical)
		}
		ordered = append(ordered, l)
	}
	visit(root)
	return ordered
}
