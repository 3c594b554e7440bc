package material

import (
	"fmt"
	"sync"

	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/xenon"
)

// Names of the NIST materials known to the library.
const (
	Air      = "G4_AIR"
	Kapton   = "G4_KAPTON"
	Teflon   = "G4_TEFLON"
	Copper   = "G4_Cu"
	Sapphire = "G4_ALUMINUM_OXIDE"
	Silicon  = "G4_Si"
	// Polycarbonate is the plastic of the SiPM packages.
	Polycarbonate = "G4_POLYCARBONATE"
)

type nistRecipe struct {
	density float64
	state   State
	atoms   []atomRecipe
	// mass fractions, used when atoms is empty
	fractions []fractionRecipe
}

type atomRecipe struct {
	symbol string
	count  int
}

type fractionRecipe struct {
	symbol   string
	fraction float64
}

var nistRecipes = map[string]nistRecipe{
	Air: {
		density: 1.20479 * units.Milligram / units.Centimeter3,
		state:   Gas,
		fractions: []fractionRecipe{
			{"C", 0.000124}, {"N", 0.755268}, {"O", 0.231781}, {"Ar", 0.012827},
		},
	},
	Kapton: {
		density: 1.42 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"C", 22}, {"H", 10}, {"N", 2}, {"O", 5}},
	},
	Teflon: {
		density: 2.2 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"C", 2}, {"F", 4}},
	},
	Copper: {
		density: 8.96 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"Cu", 1}},
	},
	Sapphire: {
		density: 3.97 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"Al", 2}, {"O", 3}},
	},
	Silicon: {
		density: 2.33 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"Si", 1}},
	},
	Polycarbonate: {
		density: 1.2 * units.Gram / units.Centimeter3,
		state:   Solid,
		atoms:   []atomRecipe{{"C", 16}, {"H", 14}, {"O", 3}},
	},
}

// Library creates materials and shares NIST materials between callers.
type Library struct {
	mu        sync.Mutex
	materials map[string]*Material
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{materials: map[string]*Material{}}
}

var defaultLibrary = NewLibrary()

// Default returns the process wide library.
func Default() *Library {
	return defaultLibrary
}

// FindOrBuild returns the NIST material with the given name, building it on
// first use. Repeated calls return the same instance.
func (l *Library) FindOrBuild(name string) (*Material, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.materials[name]; ok {
		return m, nil
	}
	recipe, ok := nistRecipes[name]
	if !ok {
		return nil, fmt.Errorf("material %q not found in NIST recipes", name)
	}
	m, err := build(name, recipe)
	if err != nil {
		return nil, err
	}
	l.materials[name] = m
	return m, nil
}

func build(name string, recipe nistRecipe) (*Material, error) {
	if len(recipe.atoms) > 0 {
		atoms := make([]AtomCount, len(recipe.atoms))
		for i, a := range recipe.atoms {
			atoms[i] = AtomCount{Element: mustElement(a.symbol), Count: a.count}
		}
		return NewFromAtoms(name, recipe.density, recipe.state, atoms)
	}
	components := make([]Component, len(recipe.fractions))
	for i, f := range recipe.fractions {
		components[i] = Component{Element: mustElement(f.symbol), MassFraction: f.fraction}
	}
	return New(name, recipe.density, recipe.state, units.STPTemperature, units.STPPressure, components)
}

// TPB returns tetraphenyl butadiene with its wavelength shifting properties.
func (l *Library) TPB() (*Material, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.materials["TPB"]; ok {
		return m, nil
	}
	m, err := NewFromAtoms("TPB", 1.079*units.Gram/units.Centimeter3, Solid, []AtomCount{
		{Element: mustElement("C"), Count: 28},
		{Element: mustElement("H"), Count: 22},
	})
	if err != nil {
		return nil, err
	}
	if err := m.SetPropertiesTable(optical.TPB()); err != nil {
		return nil, err
	}
	l.materials["TPB"] = m
	return m, nil
}

// GXe builds natural xenon gas at the given conditions.
func GXe(pressure, temperature float64) (*Material, error) {
	return xenonGas("GXe", "Xe", naturalXenon, pressure, temperature)
}

// GXeEnriched builds xenon gas enriched in Xe136.
func GXeEnriched(pressure, temperature float64) (*Material, error) {
	return xenonGas("GXeEnriched", "Xe136", enrichedXenon, pressure, temperature)
}

// GXeDepleted builds xenon gas depleted in Xe136.
func GXeDepleted(pressure, temperature float64) (*Material, error) {
	return xenonGas("GXeDepleted", "XeDep", depletedXenon, pressure, temperature)
}

func xenonGas(name, symbol string, isotopes []IsotopeFraction, pressure, temperature float64) (*Material, error) {
	element, err := NewElementFromIsotopes(name+"_element", symbol, isotopes)
	if err != nil {
		return nil, err
	}
	density, err := xenon.Density(pressure, temperature, element.MolarMass)
	if err != nil {
		return nil, fmt.Errorf("material %s: %w", name, err)
	}
	return New(name, density, Gas, temperature, pressure, []Component{{Element: element, MassFraction: 1}})
}
