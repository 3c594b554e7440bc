// Package material describes bulk materials: elements, isotopic
// composition, density and state, plus an optional optical properties table.
package material

import (
	"errors"
	"fmt"

	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/units"
)

// State of matter.
type State int

const (
	Undefined State = iota
	Solid
	Liquid
	Gas
)

func (s State) String() string {
	switch s {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	}
	return "undefined"
}

// Isotope of an element.
type Isotope struct {
	Name string `json:"name"`
	Z    int    `json:"z"`
	N    int    `json:"n"`
	// A is the molar mass in g/mol.
	A float64 `json:"a"`
}

// IsotopeFraction is an isotope with its relative abundance.
type IsotopeFraction struct {
	Isotope   Isotope `json:"isotope"`
	Abundance float64 `json:"abundance"`
}

// Element is a chemical element with an isotopic composition.
type Element struct {
	Name     string            `json:"name"`
	Symbol   string            `json:"symbol"`
	Z        int               `json:"z"`
	Isotopes []IsotopeFraction `json:"isotopes,omitempty"`
	// MolarMass in g/mol, for elements without explicit isotopes.
	MolarMass float64 `json:"molarMass"`
}

// NewElementFromIsotopes builds an element and derives its molar mass from
// the isotope abundances, which are normalized.
func NewElementFromIsotopes(name, symbol string, isotopes []IsotopeFraction) (*Element, error) {
	if len(isotopes) == 0 {
		return nil, fmt.Errorf("element %s has no isotopes", name)
	}
	total := 0.
	for _, iso := range isotopes {
		if iso.Abundance < 0 {
			return nil, fmt.Errorf("element %s: negative abundance for %s", name, iso.Isotope.Name)
		}
		total += iso.Abundance
	}
	if total <= 0 {
		return nil, fmt.Errorf("element %s: abundances sum to zero", name)
	}
	z := isotopes[0].Isotope.Z
	normalized := make([]IsotopeFraction, len(isotopes))
	molarMass := 0.
	for i, iso := range isotopes {
		if iso.Isotope.Z != z {
			return nil, fmt.Errorf("element %s: isotope %s has Z=%d, expected %d", name, iso.Isotope.Name, iso.Isotope.Z, z)
		}
		normalized[i] = IsotopeFraction{Isotope: iso.Isotope, Abundance: iso.Abundance / total}
		molarMass += normalized[i].Abundance * iso.Isotope.A
	}
	return &Element{Name: name, Symbol: symbol, Z: z, Isotopes: normalized, MolarMass: molarMass}, nil
}

// Component is an element in a material, by mass fraction.
type Component struct {
	Element      *Element `json:"element"`
	MassFraction float64  `json:"massFraction"`
}

// Material is shared by any number of volumes and is immutable after
// creation, apart from attaching its optical properties once.
type Material struct {
	Name        string      `json:"name"`
	Density     float64     `json:"density"`
	State       State       `json:"-"`
	Temperature float64     `json:"temperature"`
	Pressure    float64     `json:"pressure"`
	Components  []Component `json:"components"`

	properties *optical.PropertiesTable
}

// ErrPropertiesAlreadySet is returned when a second table is attached.
var ErrPropertiesAlreadySet = errors.New("material properties table already set")

// New validates the components (mass fractions are normalized) and creates a material.
func New(name string, density float64, state State, temperature, pressure float64, components []Component) (*Material, error) {
	if density <= 0 {
		return nil, fmt.Errorf("material %s: density must be positive", name)
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("material %s: no components", name)
	}
	total := 0.
	for _, c := range components {
		if c.Element == nil || c.MassFraction <= 0 {
			return nil, fmt.Errorf("material %s: invalid component", name)
		}
		total += c.MassFraction
	}
	normalized := make([]Component, len(components))
	for i, c := range components {
		normalized[i] = Component{Element: c.Element, MassFraction: c.MassFraction / total}
	}
	return &Material{
		Name:        name,
		Density:     density,
		State:       state,
		Temperature: temperature,
		Pressure:    pressure,
		Components:  normalized,
	}, nil
}

// NewFromAtoms creates a material from a chemical formula, e.g. C28H22 as
// {C: 28, H: 22}.
func NewFromAtoms(name string, density float64, state State, atoms []AtomCount) (*Material, error) {
	components := make([]Component, len(atoms))
	for i, a := range atoms {
		components[i] = Component{Element: a.Element, MassFraction: float64(a.Count) * a.Element.MolarMass}
	}
	return New(name, density, state, units.STPTemperature, units.STPPressure, components)
}

// AtomCount is an element with its number of atoms per molecule.
type AtomCount struct {
	Element *Element
	Count   int
}

// MolarMass of the material in g/mol, from its mass fractions.
func (m *Material) MolarMass() float64 {
	inverse := 0.
	for _, c := range m.Components {
		inverse += c.MassFraction / c.Element.MolarMass
	}
	return 1 / inverse
}

// SetPropertiesTable attaches optical properties. It can be done only once.
func (m *Material) SetPropertiesTable(table *optical.PropertiesTable) error {
	if m.properties != nil {
		return fmt.Errorf("%w: %s", ErrPropertiesAlreadySet, m.Name)
	}
	m.properties = table
	return nil
}

// PropertiesTable returns the optical properties, or nil.
func (m *Material) PropertiesTable() *optical.PropertiesTable {
	return m.properties
}

func (m *Material) String() string {
	return fmt.Sprintf("%s (%s, %s)", m.Name, m.State, units.Best(m.Density, "Volumic Mass"))
}
