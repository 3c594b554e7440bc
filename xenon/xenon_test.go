package xenon

import (
	"testing"

	"github.com/jwaiton/nexus/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensityApproachesIdealGasAtLowPressure(t *testing.T) {
	rho, err := Density(1*units.Bar, 300*units.Kelvin, MolarMassNatural)
	require.NoError(t, err)
	ideal := 1 / (units.GasConstantBarLiter * 300) * MolarMassNatural
	assert.InEpsilon(t, ideal, rho/(units.Kilogram/units.Meter3), 0.02)
}

func TestDensityAtFifteenBar(t *testing.T) {
	rho, err := Density(15*units.Bar, 300*units.Kelvin, MolarMassNatural)
	require.NoError(t, err)
	// Tabulated value is about 88 kg/m3.
	assert.InDelta(t, 88, rho/(units.Kilogram/units.Meter3), 4)
}

func TestDensityRejectsNonPositiveInputs(t *testing.T) {
	_, err := Density(0, 300*units.Kelvin, MolarMassNatural)
	assert.Error(t, err)
}

func TestRefractiveIndex(t *testing.T) {
	rho, err := Density(15*units.Bar, 300*units.Kelvin, MolarMassNatural)
	require.NoError(t, err)

	visible := RefractiveIndex(2.5*units.EV, rho)
	vuv := RefractiveIndex(7.2*units.EV, rho)
	assert.Greater(t, visible, 1.0)
	assert.Less(t, visible, 1.02)
	assert.Greater(t, vuv, visible, "dispersion increases towards the resonances")
}

func TestScintillationSpectrumPeak(t *testing.T) {
	assert.InDelta(t, 1.0, ScintillationSpectrum(7.2*units.EV), 1e-12)
	assert.Less(t, ScintillationSpectrum(6*units.EV), 1e-3)
}
