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

const nextDemoOrigin = "[NextDemo]"

func init() {
	Register("NEXT_DEMO", func() Geometry { return NewNextDemo() })
	Register("SIPM_SENSL", func() Geometry { return NewSiPMSensl() })
	Register("NEXT100_SIPM", func() Geometry { return NewNext100SiPM() })
}

// NextDemo is a test bench for the DEMO++ SiPM board: a single board in a
// box of gas surrounded by air. The board faces +z.
type NextDemo struct {
	Base
	msg *messenger.Messenger

	pressure       float64
	temperature    float64
	scYield        float64
	eLifetime      float64
	gas            string
	specificVertex geometry.Point

	sipmType          string
	maskThickness     float64
	membraneThickness float64
	coatingThickness  float64
	holeType          string
	holeDiameter      float64
	holeX             float64
	holeY             float64

	board     *NextDemoSiPMBoard
	boardPhys *volume.Physical
}

// NewNextDemo creates the bench with commands under /Geometry/NextDemo/.
func NewNextDemo() *NextDemo {
	d := &NextDemo{
		pressure:      10 * units.Bar,
		temperature:   300 * units.Kelvin,
		scYield:       25510 / units.MeV,
		eLifetime:     1000 * units.Millisecond,
		gas:           NaturalXe,
		sipmType:      SiPMSenslType,
		maskThickness: 2 * units.MM,
		holeType:      HoleRounded,
		holeDiameter:  3.5 * units.MM,
		board:         NewNextDemoSiPMBoard(),
	}

	d.msg = messenger.New("/Geometry/NextDemo/", "Control commands of the NextDemo geometry.")
	d.msg.DeclareProperty("pressure", &d.pressure, "Pressure of gas.").
		SetUnitCategory("Pressure").
		SetParameterName("pressure", false).
		SetRange("pressure>0.")
	d.msg.DeclareProperty("sc_yield", &d.scYield, "Scintillation yield of gas. It is in photons/MeV").
		SetParameterName("sc_yield", true).
		SetUnitCategory("1/Energy")
	d.msg.DeclareProperty("e_lifetime", &d.eLifetime, "Electron lifetime in gas.").
		SetParameterName("e_lifetime", false).
		SetUnitCategory("Time").
		SetRange("e_lifetime>0.")
	d.msg.DeclareProperty("gas", &d.gas, "Gas being used").
		SetCandidates(NaturalXe, EnrichedXe, DepletedXe)
	d.msg.DeclarePropertyWithUnit("specific_vertex", "mm", &d.specificVertex, "Set generation vertex.")
	d.msg.DeclareProperty("sipm_type", &d.sipmType, "SiPM model of the board.").
		SetCandidates(SiPMSenslType, SiPMNext100Type)
	d.msg.DeclarePropertyWithUnit("mask_thickness", "mm", &d.maskThickness, "Teflon mask thickness, 0 for none.").
		SetRange("mask_thickness>=0.")
	d.msg.DeclarePropertyWithUnit("membrane_thickness", "mm", &d.membraneThickness, "Mask membrane thickness, 0 for none.").
		SetRange("membrane_thickness>=0.")
	d.msg.DeclarePropertyWithUnit("coating_thickness", "mm", &d.coatingThickness, "TPB coating thickness, 0 for none.").
		SetRange("coating_thickness>=0.")
	d.msg.DeclareProperty("hole_type", &d.holeType, "Shape of the mask holes.").
		SetCandidates(HoleRounded, HoleRectangular)
	d.msg.DeclarePropertyWithUnit("hole_diameter", "mm", &d.holeDiameter, "Diameter of rounded holes.").
		SetRange("hole_diameter>=0.")
	d.msg.DeclarePropertyWithUnit("hole_x", "mm", &d.holeX, "X size of rectangular holes.").
		SetRange("hole_x>=0.")
	d.msg.DeclarePropertyWithUnit("hole_y", "mm", &d.holeY, "Y size of rectangular holes.").
		SetRange("hole_y>=0.")
	return d
}

// Messengers returns the bench and board commands.
func (d *NextDemo) Messengers() []*messenger.Messenger {
	return append([]*messenger.Messenger{d.msg}, d.board.Messengers()...)
}

// Board returns the board builder.
func (d *NextDemo) Board() *NextDemoSiPMBoard { return d.board }

// Construct builds the lab, the gas and the board.
func (d *NextDemo) Construct() error {
	if err := d.beginConstruct(nextDemoOrigin); err != nil {
		return err
	}
	newErr := exception.NewFunc(nextDemoOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	air, err := d.Library().FindOrBuild(material.Air)
	if err != nil {
		return wrap(err)
	}
	labSize := 1. * units.M
	labLogic, err := volume.NewLogical(solid.NewBox("LAB", labSize/2, labSize/2, labSize/2), air, "LAB")
	if err != nil {
		return wrap(err)
	}
	labLogic.SetVisAttributes(volume.Invisible())
	d.SetLogicalVolume(labLogic)
	d.SetDimensions(geometry.Vec3D{X: labSize, Y: labSize, Z: labSize})

	gasMat, err := buildGas(nextDemoOrigin, d.gas, d.pressure, d.temperature, d.scYield, d.eLifetime)
	if err != nil {
		return err
	}
	gasSize := 50 * units.CM
	gasLogic, err := volume.NewLogical(solid.NewBox("GAS", gasSize/2, gasSize/2, gasSize/2), gasMat, "GAS")
	if err != nil {
		return wrap(err)
	}
	gasLogic.SetVisAttributes(volume.Invisible())
	gasPhys, err := volume.Place(volume.Placement{Logical: gasLogic, Name: "GAS", Mother: labLogic})
	if err != nil {
		return wrap(err)
	}

	d.share(&d.board.Base)
	d.board.SetMotherPhysicalVolume(gasPhys)
	d.board.SetSiPMType(d.sipmType)
	d.board.SetMaskThickness(d.maskThickness)
	d.board.SetMembraneThickness(d.membraneThickness)
	d.board.SetCoatingThickness(d.coatingThickness)
	d.board.SetHoleType(d.holeType)
	d.board.SetHoleDiameter(d.holeDiameter)
	d.board.SetHoleX(d.holeX)
	d.board.SetHoleY(d.holeY)
	if err := d.board.Construct(); err != nil {
		return err
	}
	d.boardPhys, err = volume.Place(volume.Placement{
		Logical:       d.board.LogicalVolume(),
		Name:          BoardName,
		Mother:        gasLogic,
		CheckOverlaps: true,
	})
	if err != nil {
		return wrap(err)
	}

	d.endConstruct()
	return nil
}

// GenerateVertex returns the AD_HOC vertex as given, or a board region
// vertex in the lab frame.
func (d *NextDemo) GenerateVertex(region string) (geometry.Point, error) {
	if err := d.requireConstructed(nextDemoOrigin); err != nil {
		return geometry.Point{}, err
	}
	if region == RegionAdHoc {
		return d.specificVertex, nil
	}
	vertex, err := d.board.GenerateVertex(region)
	if err != nil {
		return vertex, err
	}
	return d.boardPhys.Transform.Apply(vertex), nil
}
