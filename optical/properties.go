// Package optical holds optical material properties tables and optical
// surface definitions.
package optical

import (
	"fmt"
	"sort"
)

// Property names understood by the optical physics.
const (
	RIndex                     = "RINDEX"
	AbsLength                  = "ABSLENGTH"
	Reflectivity               = "REFLECTIVITY"
	Efficiency                 = "EFFICIENCY"
	ScintillationComponent1    = "SCINTILLATIONCOMPONENT1"
	ScintillationComponent2    = "SCINTILLATIONCOMPONENT2"
	ScintillationYield         = "SCINTILLATIONYIELD"
	ScintillationYield1        = "SCINTILLATIONYIELD1"
	ScintillationYield2        = "SCINTILLATIONYIELD2"
	ScintillationTimeConstant1 = "SCINTILLATIONTIMECONSTANT1"
	ScintillationTimeConstant2 = "SCINTILLATIONTIMECONSTANT2"
	ResolutionScale            = "RESOLUTIONSCALE"
	Attachment                 = "ATTACHMENT"
	SpecularLobeConstant       = "SPECULARLOBECONSTANT"
	SpecularSpikeConstant      = "SPECULARSPIKECONSTANT"
	BackscatterConstant        = "BACKSCATTERCONSTANT"
	WLSAbsLength               = "WLSABSLENGTH"
	WLSComponent               = "WLSCOMPONENT"
	WLSTimeConstant            = "WLSTIMECONSTANT"
	WLSMeanNumberPhotons       = "WLSMEANNUMBERPHOTONS"
)

// Vector is an energy dependent property; energies are strictly increasing.
type Vector struct {
	Energies []float64 `json:"energies"`
	Values   []float64 `json:"values"`
}

// Value interpolates linearly; outside the range the edge value is returned.
func (v Vector) Value(energy float64) float64 {
	n := len(v.Energies)
	if n == 0 {
		return 0
	}
	if energy <= v.Energies[0] {
		return v.Values[0]
	}
	if energy >= v.Energies[n-1] {
		return v.Values[n-1]
	}
	i := sort.SearchFloat64s(v.Energies, energy)
	e0, e1 := v.Energies[i-1], v.Energies[i]
	y0, y1 := v.Values[i-1], v.Values[i]
	return y0 + (y1-y0)*(energy-e0)/(e1-e0)
}

// PropertiesTable is the set of optical properties of a material or surface.
type PropertiesTable struct {
	Constants map[string]float64 `json:"constants"`
	Vectors   map[string]Vector  `json:"vectors"`
}

// NewPropertiesTable creates an empty table.
func NewPropertiesTable() *PropertiesTable {
	return &PropertiesTable{
		Constants: map[string]float64{},
		Vectors:   map[string]Vector{},
	}
}

// AddConstProperty sets a constant property.
func (t *PropertiesTable) AddConstProperty(name string, value float64) {
	t.Constants[name] = value
}

// AddProperty sets an energy dependent property.
func (t *PropertiesTable) AddProperty(name string, energies, values []float64) error {
	if len(energies) != len(values) {
		return fmt.Errorf("property %s: %d energies but %d values", name, len(energies), len(values))
	}
	if len(energies) == 0 {
		return fmt.Errorf("property %s: empty vector", name)
	}
	for i := 1; i < len(energies); i++ {
		if energies[i] <= energies[i-1] {
			return fmt.Errorf("property %s: energies must be strictly increasing", name)
		}
	}
	t.Vectors[name] = Vector{
		Energies: append([]float64(nil), energies...),
		Values:   append([]float64(nil), values...),
	}
	return nil
}

func (t *PropertiesTable) mustAddProperty(name string, energies, values []float64) {
	if err := t.AddProperty(name, energies, values); err != nil {
		panic(err)
	}
}

// ConstProperty returns a constant property.
func (t *PropertiesTable) ConstProperty(name string) (float64, bool) {
	v, ok := t.Constants[name]
	return v, ok
}

// Value returns an energy dependent property at the given energy.
func (t *PropertiesTable) Value(name string, energy float64) (float64, bool) {
	v, ok := t.Vectors[name]
	if !ok {
		return 0, false
	}
	return v.Value(energy), true
}

// Names lists every property in the table, sorted.
func (t *PropertiesTable) Names() []string {
	names := []string{}
	for k := range t.Constants {
		names = append(names, k)
	}
	for k := range t.Vectors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
