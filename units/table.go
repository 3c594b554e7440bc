package units

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Unit is an entry in the units table.
type Unit struct {
	Name     string
	Symbol   string
	Category string
	Value    float64
}

var table = []Unit{
	{"parsec", "pc", "Length", 3.0856775807e+16 * Meter},
	{"kilometer", "km", "Length", 1000 * Meter},
	{"meter", "m", "Length", Meter},
	{"centimeter", "cm", "Length", Centimeter},
	{"millimeter", "mm", "Length", Millimeter},
	{"micrometer", "um", "Length", Micrometer},
	{"nanometer", "nm", "Length", Nanometer},

	{"second", "s", "Time", Second},
	{"millisecond", "ms", "Time", Millisecond},
	{"microsecond", "us", "Time", Microsecond},
	{"nanosecond", "ns", "Time", Nanosecond},
	{"picosecond", "ps", "Time", Picosecond},

	{"gigaelectronvolt", "GeV", "Energy", GeV},
	{"megaelectronvolt", "MeV", "Energy", MeV},
	{"kiloelectronvolt", "keV", "Energy", KeV},
	{"electronvolt", "eV", "Energy", EV},
	{"joule", "J", "Energy", Joule},

	{"1/eV", "1/eV", "1/Energy", 1 / EV},
	{"1/keV", "1/keV", "1/Energy", 1 / KeV},
	{"1/MeV", "1/MeV", "1/Energy", 1 / MeV},
	{"1/GeV", "1/GeV", "1/Energy", 1 / GeV},

	{"atmosphere", "atm", "Pressure", Atmosphere},
	{"bar", "bar", "Pressure", Bar},
	{"pascal", "Pa", "Pressure", Pascal},

	{"kelvin", "K", "Temperature", Kelvin},

	{"radian", "rad", "Angle", Radian},
	{"degree", "deg", "Angle", Degree},

	{"g/cm3", "g/cm3", "Volumic Mass", Gram / Centimeter3},
	{"mg/cm3", "mg/cm3", "Volumic Mass", Milligram / Centimeter3},
	{"kg/m3", "kg/m3", "Volumic Mass", Kilogram / Meter3},
}

// Lookup finds a unit by symbol or name.
func Lookup(symbol string) (Unit, bool) {
	for _, u := range table {
		if u.Symbol == symbol || u.Name == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// Categories returns the list of known unit categories.
func Categories() []string {
	seen := map[string]bool{}
	result := []string{}
	for _, u := range table {
		if !seen[u.Category] {
			seen[u.Category] = true
			result = append(result, u.Category)
		}
	}
	sort.Strings(result)
	return result
}

// InCategory returns the units of a category ordered by decreasing value.
func InCategory(category string) []Unit {
	result := []Unit{}
	for _, u := range table {
		if u.Category == category {
			result = append(result, u)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Value > result[j].Value })
	return result
}

// Parse converts a value expressed in the given unit to internal units.
// When category is not empty the unit must belong to it.
func Parse(value, unit, category string) (float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	if unit == "" {
		return number, nil
	}
	u, found := Lookup(unit)
	if !found {
		return 0, fmt.Errorf("unknown unit %q", unit)
	}
	if category != "" && u.Category != category {
		return 0, fmt.Errorf("unit %q is not a %s unit", unit, category)
	}
	return number * u.Value, nil
}

// Best formats a value with the unit of the category that keeps
// the mantissa at or above one.
func Best(value float64, category string) string {
	candidates := InCategory(category)
	if len(candidates) == 0 {
		return strconv.FormatFloat(value, 'g', 6, 64)
	}
	chosen := candidates[len(candidates)-1]
	for _, u := range candidates {
		if math.Abs(value) >= u.Value {
			chosen = u
			break
		}
	}
	if value == 0 {
		for _, u := range candidates {
			if u.Value == 1 {
				chosen = u
			}
		}
	}
	return fmt.Sprintf("%g %s", value/chosen.Value, chosen.Symbol)
}
