package geometries

import (
	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

const next100OpticalOrigin = "[Next100OpticalGeometry]"

// RegionAdHoc returns the vertex given by the specific_vertex command.
const RegionAdHoc = "AD_HOC"

func init() {
	Register("NEXT100_OPT", func() Geometry { return NewNext100OpticalGeometry() })
}

// Next100OpticalGeometry is a simplified NEXT-100 where only the inner
// elements are built, inside a box of gas surrounded by air where optical
// photons die.
type Next100OpticalGeometry struct {
	Base
	msg *messenger.Messenger

	gateTrackingPlaneDistance float64
	gateSapphireWdwDistance   float64
	pressure                  float64
	temperature               float64
	scYield                   float64
	eLifetime                 float64
	specificVertex            geometry.Point
	gas                       string

	gateZPosInGas float64
	gasPhys       *volume.Physical
	inner         *Next100InnerElements
}

// NewNext100OpticalGeometry creates the geometry with commands under
// /Geometry/Next100/.
func NewNext100OpticalGeometry() *Next100OpticalGeometry {
	g := &Next100OpticalGeometry{
		gateTrackingPlaneDistance: (26.1 + 0.1) * units.MM,
		gateSapphireWdwDistance:   (1458.2 - 0.1) * units.MM,
		pressure:                  15 * units.Bar,
		temperature:               300 * units.Kelvin,
		scYield:                   25510 / units.MeV,
		eLifetime:                 1000 * units.Millisecond,
		gas:                       NaturalXe,
		inner:                     NewNext100InnerElements(),
	}

	g.msg = messenger.New("/Geometry/Next100/", "Control commands of geometry Next100.")
	g.msg.DeclareProperty("pressure", &g.pressure, "Pressure of gas.").
		SetUnitCategory("Pressure").
		SetParameterName("pressure", false).
		SetRange("pressure>0.")
	g.msg.DeclareProperty("sc_yield", &g.scYield, "Scintillation yield of gas. It is in photons/MeV").
		SetParameterName("sc_yield", true).
		SetUnitCategory("1/Energy")
	g.msg.DeclareProperty("e_lifetime", &g.eLifetime, "Electron lifetime in gas.").
		SetParameterName("e_lifetime", false).
		SetUnitCategory("Time").
		SetRange("e_lifetime>0.")
	g.msg.DeclarePropertyWithUnit("specific_vertex", "mm", &g.specificVertex, "Set generation vertex.")
	g.msg.DeclareProperty("gas", &g.gas, "Gas being used")
	return g
}

// Messengers returns the geometry and inner elements commands.
func (g *Next100OpticalGeometry) Messengers() []*messenger.Messenger {
	return append([]*messenger.Messenger{g.msg}, g.inner.Messengers()...)
}

// InnerElements returns the inner elements builder.
func (g *Next100OpticalGeometry) InnerElements() *Next100InnerElements { return g.inner }

// GasPhysical returns the placement of the gas box in the lab.
func (g *Next100OpticalGeometry) GasPhysical() *volume.Physical { return g.gasPhys }

// Construct builds the lab, the gas box and the inner elements.
func (g *Next100OpticalGeometry) Construct() error {
	if err := g.beginConstruct(next100OpticalOrigin); err != nil {
		return err
	}
	newErr := exception.NewFunc(next100OpticalOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	/// Lab: air without optical properties, optical photons die there.
	air, err := g.Library().FindOrBuild(material.Air)
	if err != nil {
		return wrap(err)
	}
	labSize := 4. * units.M
	labLogic, err := volume.NewLogical(solid.NewBox("LAB", labSize/2, labSize/2, labSize/2), air, "LAB")
	if err != nil {
		return wrap(err)
	}
	labLogic.SetVisAttributes(volume.Invisible())
	g.SetLogicalVolume(labLogic)
	g.SetDimensions(geometry.Vec3D{X: labSize, Y: labSize, Z: labSize})

	/// Gas box hosting the inner elements
	gasMat, err := buildGas(next100OpticalOrigin, g.gas, g.pressure, g.temperature, g.scYield, g.eLifetime)
	if err != nil {
		return err
	}
	gasSize := labSize - 1.*units.CM
	gasLogic, err := volume.NewLogical(solid.NewBox("GAS", gasSize/2, gasSize/2, gasSize/2), gasMat, "GAS")
	if err != nil {
		return wrap(err)
	}
	g.gateZPosInGas = 0
	g.gasPhys, err = volume.Place(volume.Placement{
		Translation: geometry.Point{Z: -g.gateZPosInGas},
		Logical:     gasLogic,
		Name:        "GAS",
		Mother:      labLogic,
	})
	if err != nil {
		return wrap(err)
	}

	/// Inner elements
	g.share(&g.inner.Base)
	g.inner.SetLogicalVolume(gasLogic)
	g.inner.SetPhysicalVolume(g.gasPhys)
	g.inner.SetELzCoord(g.gateZPosInGas)
	g.inner.SetELtoSapphireWDWdistance(g.gateSapphireWdwDistance)
	g.inner.SetELtoTPdistance(g.gateTrackingPlaneDistance)
	if err := g.inner.Construct(); err != nil {
		return err
	}

	gasLogic.SetVisAttributes(volume.Invisible())
	g.endConstruct()
	return nil
}

// GenerateVertex returns the AD_HOC vertex as given, or a vertex of the
// inner elements shifted to the lab frame.
func (g *Next100OpticalGeometry) GenerateVertex(region string) (geometry.Point, error) {
	if err := g.requireConstructed(next100OpticalOrigin); err != nil {
		return geometry.Point{}, err
	}
	if region == RegionAdHoc {
		return g.specificVertex, nil
	}
	vertex, err := g.inner.GenerateVertex(region)
	if err != nil {
		return vertex, err
	}
	return vertex.Add(geometry.Point{Z: -g.gateZPosInGas}), nil
}
