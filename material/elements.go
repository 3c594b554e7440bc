package material

import "fmt"

var elementTable = map[string]*Element{
	"H":  {Name: "Hydrogen", Symbol: "H", Z: 1, MolarMass: 1.00794},
	"C":  {Name: "Carbon", Symbol: "C", Z: 6, MolarMass: 12.0107},
	"N":  {Name: "Nitrogen", Symbol: "N", Z: 7, MolarMass: 14.0067},
	"O":  {Name: "Oxygen", Symbol: "O", Z: 8, MolarMass: 15.9994},
	"F":  {Name: "Fluorine", Symbol: "F", Z: 9, MolarMass: 18.9984032},
	"Al": {Name: "Aluminium", Symbol: "Al", Z: 13, MolarMass: 26.9815386},
	"Si": {Name: "Silicon", Symbol: "Si", Z: 14, MolarMass: 28.0855},
	"Ar": {Name: "Argon", Symbol: "Ar", Z: 18, MolarMass: 39.948},
	"Cu": {Name: "Copper", Symbol: "Cu", Z: 29, MolarMass: 63.546},
	"Xe": {Name: "Xenon", Symbol: "Xe", Z: 54, MolarMass: 131.293},
}

// FindElement returns a natural element by symbol.
func FindElement(symbol string) (*Element, error) {
	e, ok := elementTable[symbol]
	if !ok {
		return nil, fmt.Errorf("element %q not found", symbol)
	}
	return e, nil
}

func mustElement(symbol string) *Element {
	e, err := FindElement(symbol)
	if err != nil {
		panic(err)
	}
	return e
}

func xenonIsotope(n int, a float64) Isotope {
	return Isotope{Name: fmt.Sprintf("Xe%d", n), Z: 54, N: n, A: a}
}

var (
	xe124 = xenonIsotope(124, 123.905893)
	xe126 = xenonIsotope(126, 125.904274)
	xe128 = xenonIsotope(128, 127.903531)
	xe129 = xenonIsotope(129, 128.904779)
	xe130 = xenonIsotope(130, 129.903508)
	xe131 = xenonIsotope(131, 130.905082)
	xe132 = xenonIsotope(132, 131.904153)
	xe134 = xenonIsotope(134, 133.905395)
	xe136 = xenonIsotope(136, 135.907219)
)

var naturalXenon = []IsotopeFraction{
	{xe124, 0.000952}, {xe126, 0.000890}, {xe128, 0.019102},
	{xe129, 0.264006}, {xe130, 0.040710}, {xe131, 0.212324},
	{xe132, 0.269086}, {xe134, 0.104357}, {xe136, 0.088573},
}

var enrichedXenon = []IsotopeFraction{
	{xe129, 0.0002}, {xe131, 0.0001}, {xe132, 0.0015},
	{xe134, 0.0889}, {xe136, 0.9093},
}

var depletedXenon = []IsotopeFraction{
	{xe128, 0.020}, {xe129, 0.287}, {xe130, 0.044}, {xe131, 0.225},
	{xe132, 0.277}, {xe134, 0.116}, {xe136, 0.031},
}
