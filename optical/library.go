package optical

import (
	"math"

	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/xenon"
)

// Photon energy range covered by the tables.
const (
	OptPhotMinE = 0.2 * units.EV
	OptPhotMaxE = 11.5 * units.EV

	// NoAbsLength disables bulk absorption.
	NoAbsLength = 1.e8 * units.M
)

const energySteps = 200

func energyGrid(min, max float64, steps int) []float64 {
	grid := make([]float64, steps)
	step := (max - min) / float64(steps-1)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}
	return grid
}

// GXe returns the optical properties of gaseous xenon.
func GXe(pressure, temperature, scYield, eLifetime float64) (*PropertiesTable, error) {
	density, err := xenon.Density(pressure, temperature, xenon.MolarMassNatural)
	if err != nil {
		return nil, err
	}
	table := NewPropertiesTable()

	energies := energyGrid(OptPhotMinE, OptPhotMaxE, energySteps)
	rindex := make([]float64, len(energies))
	absLength := make([]float64, len(energies))
	for i, e := range energies {
		rindex[i] = xenon.RefractiveIndex(e, density)
		absLength[i] = NoAbsLength
	}
	table.mustAddProperty(RIndex, energies, rindex)
	table.mustAddProperty(AbsLength, energies, absLength)

	scintEnergies := energyGrid(6.*units.EV, 8.5*units.EV, 100)
	spectrum := make([]float64, len(scintEnergies))
	for i, e := range scintEnergies {
		spectrum[i] = xenon.ScintillationSpectrum(e)
	}
	table.mustAddProperty(ScintillationComponent1, scintEnergies, spectrum)
	table.mustAddProperty(ScintillationComponent2, scintEnergies, spectrum)

	table.AddConstProperty(ScintillationYield, scYield)
	table.AddConstProperty(ResolutionScale, 1.0)
	table.AddConstProperty(ScintillationTimeConstant1, 4.5*units.NS)
	table.AddConstProperty(ScintillationTimeConstant2, 100.*units.NS)
	table.AddConstProperty(ScintillationYield1, .1)
	table.AddConstProperty(ScintillationYield2, .9)
	table.AddConstProperty(Attachment, eLifetime)

	return table, nil
}

// PTFE returns the surface properties of teflon.
func PTFE() *PropertiesTable {
	table := NewPropertiesTable()

	energies := []float64{
		OptPhotMinE, 2.8 * units.EV, 3.5 * units.EV, 4.0 * units.EV,
		6.0 * units.EV, 7.2 * units.EV, OptPhotMaxE,
	}
	reflectivity := []float64{.98, .98, .98, .98, .72, .72, .72}
	table.mustAddProperty(Reflectivity, energies, reflectivity)

	table.AddConstProperty(SpecularLobeConstant, 0.)
	table.AddConstProperty(SpecularSpikeConstant, 0.)
	table.AddConstProperty(BackscatterConstant, 0.)

	return table
}

// TPB returns the wavelength shifting properties of tetraphenyl butadiene.
func TPB() *PropertiesTable {
	table := NewPropertiesTable()

	energies := []float64{OptPhotMinE, OptPhotMaxE}
	table.mustAddProperty(RIndex, energies, []float64{1.67, 1.67})
	table.mustAddProperty(AbsLength, energies, []float64{NoAbsLength, NoAbsLength})

	wlsEnergies := []float64{
		OptPhotMinE, 3.1 * units.EV, 3.3 * units.EV, 3.5 * units.EV, OptPhotMaxE,
	}
	wlsAbs := []float64{NoAbsLength, NoAbsLength, 10 * units.UM, 1 * units.UM, 1 * units.UM}
	table.mustAddProperty(WLSAbsLength, wlsEnergies, wlsAbs)

	emission := energyGrid(2.3*units.EV, 3.5*units.EV, 60)
	intensity := make([]float64, len(emission))
	for i, e := range emission {
		d := (e - 2.9*units.EV) / (0.2 * units.EV)
		intensity[i] = math.Exp(-0.5 * d * d)
	}
	table.mustAddProperty(WLSComponent, emission, intensity)

	table.AddConstProperty(WLSTimeConstant, 1.2*units.NS)
	table.AddConstProperty(WLSMeanNumberPhotons, 0.65)

	return table
}
