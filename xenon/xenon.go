// Package xenon computes the bulk properties of gaseous xenon used by
// the material and optical libraries.
package xenon

import (
	"errors"
	"math"

	"github.com/jwaiton/nexus/units"
)

// MolarMassNatural of natural xenon in g/mol.
const MolarMassNatural = 131.293

// Van der Waals constants of xenon.
const (
	vdwA = 4.192   // L^2 bar / mol^2
	vdwB = 0.05156 // L / mol
)

// MolarDensity solves the van der Waals equation of state for the molar
// density (mol/L) at the given pressure and temperature (internal units).
func MolarDensity(pressure, temperature float64) (float64, error) {
	if pressure <= 0 || temperature <= 0 {
		return 0, errors.New("pressure and temperature must be positive")
	}
	p := pressure / units.Bar
	t := temperature / units.Kelvin
	rt := units.GasConstantBarLiter * t

	// f(n) = (p + a n^2)(1 - b n) - n R T, n in mol/L, starting from the ideal gas.
	n := p / rt
	for i := 0; i < 100; i++ {
		f := (p+vdwA*n*n)*(1-vdwB*n) - n*rt
		df := 2*vdwA*n*(1-vdwB*n) - vdwB*(p+vdwA*n*n) - rt
		step := f / df
		n -= step
		if math.Abs(step) < 1e-12*n {
			break
		}
	}
	if n <= 0 || math.IsNaN(n) {
		return 0, errors.New("equation of state did not converge")
	}
	return n, nil
}

// Density returns the mass density in internal units for a xenon gas of the
// given molar mass (g/mol).
func Density(pressure, temperature, molarMass float64) (float64, error) {
	n, err := MolarDensity(pressure, temperature)
	if err != nil {
		return 0, err
	}
	// mol/L * g/mol = g/L = kg/m3
	return n * molarMass * units.Kilogram / units.Meter3, nil
}

// Virial coefficients of the Lorentz-Lorenz relation for xenon.
var (
	refractivityP = [3]float64{71.23, 77.75, 1384.89} // eV^3 cm3 / mole
	refractivityE = [3]float64{8.4, 8.81, 13.2}       // eV
)

// RefractiveIndex of xenon at the given photon energy and mass density.
// (n^2 - 1) / (n^2 + 2) = -A(E) d_M with A(E) = sum P_i / (E^2 - E_i^2).
func RefractiveIndex(energy, density float64) float64 {
	e := energy / units.EV
	virial := 0.
	for i := range refractivityP {
		virial += refractivityP[i] / (e*e - refractivityE[i]*refractivityE[i])
	}
	molDensity := (density / (units.Gram / units.Centimeter3)) / MolarMassNatural
	alpha := virial * molDensity
	n2 := (1. - 2*alpha) / (1. + alpha)
	if n2 < 1. {
		n2 = 1.
	}
	return math.Sqrt(n2)
}

// ScintillationSpectrum is the relative emission of the second continuum,
// peaked at 172 nm.
func ScintillationSpectrum(energy float64) float64 {
	const mean = 7.2 * units.EV
	const sigma = 0.15 * units.EV
	d := (energy - mean) / sigma
	return math.Exp(-0.5 * d * d)
}
