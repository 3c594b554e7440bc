// Package units implements the CLHEP unit system used by the geometry
// builders. Internal units: millimeter, nanosecond, MeV, kelvin, eplus.
package units

import "math"

// Length.
const (
	Millimeter  = 1.0
	Millimeter2 = Millimeter * Millimeter
	Millimeter3 = Millimeter * Millimeter2

	Centimeter  = 10. * Millimeter
	Centimeter2 = Centimeter * Centimeter
	Centimeter3 = Centimeter * Centimeter2

	Meter  = 1000. * Millimeter
	Meter2 = Meter * Meter
	Meter3 = Meter * Meter2

	Micrometer = 1.e-6 * Meter
	Nanometer  = 1.e-9 * Meter

	MM = Millimeter
	CM = Centimeter
	M  = Meter
	UM = Micrometer
	NM = Nanometer
)

// Angle.
const (
	Radian = 1.
	Degree = (math.Pi / 180.0) * Radian

	Rad = Radian
	Deg = Degree
)

// Time.
const (
	Nanosecond  = 1.
	Second      = 1.e+9 * Nanosecond
	Millisecond = 1.e-3 * Second
	Microsecond = 1.e-6 * Second
	Picosecond  = 1.e-12 * Second

	NS = Nanosecond
	S  = Second
	MS = Millisecond
	US = Microsecond
)

// Energy.
const (
	MegaElectronVolt = 1.
	ElectronVolt     = 1.e-6 * MegaElectronVolt
	KiloElectronVolt = 1.e-3 * MegaElectronVolt
	GigaElectronVolt = 1.e+3 * MegaElectronVolt

	// Joule is expressed through the elementary charge in coulomb.
	Joule = ElectronVolt / 1.602176634e-19

	MeV = MegaElectronVolt
	EV  = ElectronVolt
	KeV = KiloElectronVolt
	GeV = GigaElectronVolt
)

// Mass, force, pressure.
const (
	Kilogram  = Joule * Second * Second / (Meter * Meter)
	Gram      = 1.e-3 * Kilogram
	Milligram = 1.e-3 * Gram

	Newton     = Joule / Meter
	Pascal     = Newton / Meter2
	Bar        = 100000 * Pascal
	Atmosphere = 101325 * Pascal

	Kg = Kilogram
	G  = Gram
)

// Temperature and amount of substance.
const (
	Kelvin = 1.
	Mole   = 1.
)

// Physical constants in internal units.
const (
	Avogadro = 6.02214076e+23 / Mole
	// KBoltzmann is the Boltzmann constant in MeV/K.
	KBoltzmann = 8.617333262e-11 * MeV / Kelvin
	// HbarC is h-bar times c in MeV*mm.
	HbarC = 197.3269804e-12 * MeV * Meter
	// HC is h*c, used to convert photon energy and wavelength.
	HC = 2 * math.Pi * HbarC

	// STPTemperature and STPPressure are the reference conditions of gases.
	STPTemperature = 273.15 * Kelvin
	STPPressure    = 1. * Atmosphere
)

// Gas constant R in bar*L/(mol*K), used by equations of state.
const GasConstantBarLiter = 0.08314462618
