package solid

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jwaiton/nexus/geometry"
)

// Tubs is a cylindrical section along z.
type Tubs struct {
	TubsName string  `json:"name"`
	RMin     float64 `json:"rMin"`
	RMax     float64 `json:"rMax"`
	HalfZ    float64 `json:"halfZ"`
	StartPhi float64 `json:"startPhi"`
	DeltaPhi float64 `json:"deltaPhi"`
}

// NewTubs creates a cylindrical section.
func NewTubs(name string, rMin, rMax, halfZ, startPhi, deltaPhi float64) *Tubs {
	return &Tubs{TubsName: name, RMin: rMin, RMax: rMax, HalfZ: halfZ, StartPhi: startPhi, DeltaPhi: deltaPhi}
}

func (t *Tubs) Name() string { return t.TubsName }

func (t *Tubs) Validate() error {
	if t.RMax <= 0.0 {
		return fmt.Errorf("tubs %q outer radius cannot be <= 0.0", t.TubsName)
	}
	if t.RMin < 0.0 || t.RMin >= t.RMax {
		return fmt.Errorf("tubs %q inner radius must be in [0, %g)", t.TubsName, t.RMax)
	}
	if t.HalfZ <= 0.0 {
		return fmt.Errorf("tubs %q half length cannot be <= 0.0", t.TubsName)
	}
	if t.DeltaPhi <= 0.0 || t.DeltaPhi > 2*math.Pi+1e-9 {
		return fmt.Errorf("tubs %q delta phi must be in (0, 2pi]", t.TubsName)
	}
	return nil
}

func (t *Tubs) full() bool {
	return t.DeltaPhi >= 2*math.Pi-1e-9
}

func (t *Tubs) Inside(p geometry.Point) bool {
	if p.Z < -t.HalfZ || p.Z > t.HalfZ {
		return false
	}
	r := p.Perp()
	if r > t.RMax || r < t.RMin {
		return false
	}
	if t.full() {
		return true
	}
	phi := math.Atan2(p.Y, p.X) - t.StartPhi
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi <= t.DeltaPhi
}

// Extent of the full cylinder; sections are bounded conservatively.
func (t *Tubs) Extent() geometry.AABB {
	return geometry.AABB{
		Min: geometry.Point{X: -t.RMax, Y: -t.RMax, Z: -t.HalfZ},
		Max: geometry.Point{X: t.RMax, Y: t.RMax, Z: t.HalfZ},
	}
}

func (t *Tubs) Cubature() float64 {
	return t.DeltaPhi / 2 * (t.RMax*t.RMax - t.RMin*t.RMin) * 2 * t.HalfZ
}

// MarshalJSON json.Marshaller implementaion.
func (t Tubs) MarshalJSON() ([]byte, error) {
	type Alias Tubs
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.tubs,
		Alias: Alias(t),
	})
}
