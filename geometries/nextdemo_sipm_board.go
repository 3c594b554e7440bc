package geometries

import (
	"fmt"
	"math"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/sampler"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

const boardOrigin = "[NextDemoSiPMBoard]"

// Shapes of the mask holes.
const (
	HoleRounded     = "rounded"
	HoleRectangular = "rectangular"
)

// SiPM models of the board.
const (
	SiPMSenslType   = "sensl"
	SiPMNext100Type = "next100"
)

// Vertex generation regions of the board.
const (
	RegionKapton  = "KAPTON"
	RegionMask    = "MASK"
	RegionCoating = "COATING"
)

// Volume names of the board.
const (
	BoardName    = "SIPM_BOARD"
	KaptonName   = "KAPTON_BOARD"
	MaskName     = "BOARD_MASK"
	HoleName     = "BOARD_MASK_HOLE"
	MembraneName = "BOARD_MASK_MEMB"
	CoatingName  = "BOARD_COATING"

	// Border surfaces between the coating and the mother gas.
	CoatingToGasSurface = "TEFLON_WLS_GAS_OPSURF"
	GasToCoatingSurface = "GAS_TEFLON_WLS_OPSURF"
)

// NextDemoSiPMBoard is a kapton board carrying an 8x8 SiPM array. It may be
// covered by a teflon mask with a hole per SiPM. The holes may be closed by
// membranes and the mask may be coated with TPB. The board is filled with the
// gas of the mother volume.
type NextDemoSiPMBoard struct {
	Base
	msg *messenger.Messenger

	verbosity      bool
	sipmVerbosity  bool
	visibility     bool
	sipmVisibility bool
	sipmCoating    bool
	timeBinning    float64

	numColumns        int
	numRows           int
	sipmPitch         float64
	sideReduction     float64
	kaptonThickness   float64
	maskThickness     float64
	membraneThickness float64
	coatingThickness  float64
	holeType          string
	holeDiameter      float64
	holeX             float64
	holeY             float64
	sipmType          string

	motherPhys *volume.Physical

	sipm      SiPM
	positions []geometry.Point
	holeSolid solid.Solid

	kaptonGen  *sampler.BoxPointSampler
	maskGen    *sampler.BoxPointSampler
	coatingGen *sampler.BoxPointSampler
}

// NewNextDemoSiPMBoard creates a board with the DEMO++ defaults and declares
// its commands under /Geometry/NextDemo/.
func NewNextDemoSiPMBoard() *NextDemoSiPMBoard {
	b := &NextDemoSiPMBoard{
		sipmVisibility:  true,
		timeBinning:     1 * units.Microsecond,
		numColumns:      8,
		numRows:         8,
		sipmPitch:       10 * units.MM,
		sideReduction:   0.5 * units.MM,
		kaptonThickness: 0.3 * units.MM,
		maskThickness:   2.0 * units.MM,
		holeDiameter:    3.5 * units.MM,
	}

	b.msg = messenger.New("/Geometry/NextDemo/", "Control commands of the NextDemo geometry.")
	b.msg.DeclareProperty("sipm_board_verbosity", &b.verbosity, "NextDemoSiPMBoard verbosity")
	b.msg.DeclareProperty("sipm_verbosity", &b.sipmVerbosity, "NextDemoSiPMBoard SiPMs verbosity")
	b.msg.DeclareProperty("sipm_board_vis", &b.visibility, "NextDemoSiPMBoard visibility.")
	b.msg.DeclareProperty("sipm_visibility", &b.sipmVisibility, "NextDemoSiPMBoard SiPMs visibility")
	b.msg.DeclareProperty("sipm_coating", &b.sipmCoating, "NextDemoSiPMBoard SiPMs coating")
	b.msg.DeclareProperty("sipm_time_binning", &b.timeBinning, "TP SiPMs time binning.").
		SetParameterName("sipm_time_binning", false).
		SetUnitCategory("Time").
		SetRange("sipm_time_binning>0.")
	return b
}

// Messengers returns the /Geometry/NextDemo/ board commands.
func (b *NextDemoSiPMBoard) Messengers() []*messenger.Messenger {
	return []*messenger.Messenger{b.msg}
}

// SetMotherPhysicalVolume sets the gas volume hosting the board.
func (b *NextDemoSiPMBoard) SetMotherPhysicalVolume(p *volume.Physical) { b.motherPhys = p }

// SetSiPMType selects "sensl" or "next100" SiPMs.
func (b *NextDemoSiPMBoard) SetSiPMType(t string) { b.sipmType = t }

// SetMaskThickness sets the teflon mask thickness, zero for no mask.
func (b *NextDemoSiPMBoard) SetMaskThickness(t float64) { b.maskThickness = t }

// SetMembraneThickness sets the hole membrane thickness, zero for none.
func (b *NextDemoSiPMBoard) SetMembraneThickness(t float64) { b.membraneThickness = t }

// SetCoatingThickness sets the TPB coating thickness, zero for none.
func (b *NextDemoSiPMBoard) SetCoatingThickness(t float64) { b.coatingThickness = t }

// SetHoleType selects "rounded" or "rectangular" holes.
func (b *NextDemoSiPMBoard) SetHoleType(t string) { b.holeType = t }

// SetHoleDiameter sets the diameter of rounded holes.
func (b *NextDemoSiPMBoard) SetHoleDiameter(d float64) { b.holeDiameter = d }

// SetHoleX sets the x size of rectangular holes.
func (b *NextDemoSiPMBoard) SetHoleX(x float64) { b.holeX = x }

// SetHoleY sets the y size of rectangular holes.
func (b *NextDemoSiPMBoard) SetHoleY(y float64) { b.holeY = y }

func (b *NextDemoSiPMBoard) SetVerbosity(v bool)              { b.verbosity = v }
func (b *NextDemoSiPMBoard) SetSiPMVerbosity(v bool)          { b.sipmVerbosity = v }
func (b *NextDemoSiPMBoard) SetVisibility(v bool)             { b.visibility = v }
func (b *NextDemoSiPMBoard) SetSiPMVisibility(v bool)         { b.sipmVisibility = v }
func (b *NextDemoSiPMBoard) SetSiPMCoating(c bool)            { b.sipmCoating = c }
func (b *NextDemoSiPMBoard) SetTimeBinning(tb float64)        { b.timeBinning = tb }
func (b *NextDemoSiPMBoard) KaptonThickness() float64         { return b.kaptonThickness }
func (b *NextDemoSiPMBoard) MaskThickness() float64           { return b.maskThickness }
func (b *NextDemoSiPMBoard) CoatingThickness() float64        { return b.coatingThickness }
func (b *NextDemoSiPMBoard) NumSiPMs() int                    { return b.numRows * b.numColumns }
func (b *NextDemoSiPMBoard) SiPM() SiPM                       { return b.sipm }
func (b *NextDemoSiPMBoard) BoardSize() geometry.Vec3D        { return b.Dimensions() }
func (b *NextDemoSiPMBoard) MotherPhysical() *volume.Physical { return b.motherPhys }

// SiPMPositions returns the SiPM centres in the board plane, indexed by
// SiPM number (row major, rows along y).
func (b *NextDemoSiPMBoard) SiPMPositions() []geometry.Point {
	return append([]geometry.Point(nil), b.positions...)
}

func (b *NextDemoSiPMBoard) hasHole() bool {
	if b.holeType == HoleRectangular {
		return b.holeX > 0 && b.holeY > 0
	}
	return b.holeDiameter > 0
}

// holeWidth is the largest lateral size of a hole.
func (b *NextDemoSiPMBoard) holeWidth() float64 {
	if b.holeType == HoleRectangular {
		return math.Max(b.holeX, b.holeY)
	}
	return b.holeDiameter
}

// validate checks the layer combination before anything is built.
func (b *NextDemoSiPMBoard) validate() error {
	newErr := exception.NewFunc(boardOrigin)
	const code = "Construct()"

	if b.motherPhys == nil {
		return newErr(code, exception.ErrMissingMother, "Mother physical volume is not set.")
	}
	if b.kaptonThickness <= 0 || b.maskThickness < 0 || b.membraneThickness < 0 || b.coatingThickness < 0 {
		return newErr(code, exception.ErrInvalidConfiguration, "Layer thicknesses cannot be negative")
	}
	if b.coatingThickness > 0 && b.membraneThickness == 0 {
		return newErr(code, exception.ErrInvalidConfiguration, "Coating require membranes")
	}
	if b.membraneThickness > 0 && b.maskThickness == 0 {
		return newErr(code, exception.ErrInvalidConfiguration, "Membranes require masks")
	}
	if b.maskThickness > 0 && !b.hasHole() {
		return newErr(code, exception.ErrInvalidConfiguration, "Masks require holes")
	}
	if b.maskThickness > 0 {
		if b.holeType != HoleRounded && b.holeType != HoleRectangular {
			return newErr(code, exception.ErrInvalidConfiguration,
				"Unknown hole type %q, valid options are: rounded, rectangular.", b.holeType)
		}
		if b.membraneThickness >= b.maskThickness {
			return newErr(code, exception.ErrInvalidConfiguration,
				"Membranes (%s) must be thinner than the mask (%s)",
				units.Best(b.membraneThickness, "Length"), units.Best(b.maskThickness, "Length"))
		}
		if maxHole := b.sipmPitch - 2*b.sideReduction; b.holeWidth() > maxHole {
			return newErr(code, exception.ErrInvalidConfiguration,
				"Mask holes (%s) do not fit in the SiPM pitch, the maximum is %s",
				units.Best(b.holeWidth(), "Length"), units.Best(maxHole, "Length"))
		}
	}
	if b.sipmType != SiPMSenslType && b.sipmType != SiPMNext100Type {
		return newErr(code, exception.ErrInvalidConfiguration,
			"Unknown SiPM type %q, valid options are: sensl, next100.", b.sipmType)
	}
	return nil
}

// buildSiPM constructs the SiPM model and returns its placement rotation.
func (b *NextDemoSiPMBoard) buildSiPM() (geometry.Rotation, error) {
	rotation := geometry.Identity()
	switch b.sipmType {
	case SiPMSenslType:
		sipm := NewSiPMSensl()
		sipm.SetSensorDepth(3)
		sipm.SetMotherDepth(5)
		b.sipm = sipm
		rotation = rotation.RotateY(math.Pi)
	case SiPMNext100Type:
		sipm := NewNext100SiPM()
		sipm.SetSiPMCoating(b.sipmCoating)
		sipm.SetSensorDepth(2)
		sipm.SetMotherDepth(4)
		b.sipm = sipm
	}
	b.sipm.SetVisibility(b.sipmVisibility)
	b.sipm.SetTimeBinning(b.timeBinning)
	b.sipm.SetNamingOrder(1000)
	switch sipm := b.sipm.(type) {
	case *SiPMSensl:
		b.share(&sipm.Base)
	case *Next100SiPM:
		b.share(&sipm.Base)
	}
	return rotation, b.sipm.Construct()
}

// checkSiPMFit makes sure the SiPMs fit in the holes.
func (b *NextDemoSiPMBoard) checkSiPMFit(sipm geometry.Vec3D) error {
	if b.maskThickness == 0 {
		return nil
	}
	newErr := exception.NewFunc(boardOrigin)
	if sipm.Z+b.membraneThickness > b.maskThickness {
		return newErr("Construct()", exception.ErrInvalidConfiguration,
			"SiPMs (%s) and membranes (%s) do not fit in a %s mask",
			units.Best(sipm.Z, "Length"), units.Best(b.membraneThickness, "Length"),
			units.Best(b.maskThickness, "Length"))
	}
	fits := false
	switch b.holeType {
	case HoleRounded:
		fits = math.Hypot(sipm.X, sipm.Y) <= b.holeDiameter
	case HoleRectangular:
		fits = sipm.X <= b.holeX && sipm.Y <= b.holeY
	}
	if !fits {
		return newErr("Construct()", exception.ErrInvalidConfiguration,
			"SiPMs (%s x %s) do not fit in the mask holes",
			units.Best(sipm.X, "Length"), units.Best(sipm.Y, "Length"))
	}
	return nil
}

// Construct builds the board. The layers from bottom (-z) to top are the
// kapton, the mask (or the bare SiPMs) and the coating.
func (b *NextDemoSiPMBoard) Construct() error {
	if err := b.beginConstruct(boardOrigin); err != nil {
		return err
	}
	if err := b.validate(); err != nil {
		return err
	}
	newErr := exception.NewFunc(boardOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	sipmRot, err := b.buildSiPM()
	if err != nil {
		return err
	}
	sipmDim := b.sipm.Dimensions()
	if err := b.checkSiPMFit(sipmDim); err != nil {
		return err
	}

	motherGas := b.motherPhys.Logical.Material

	/// Board wrapper
	boardSize := geometry.Vec3D{
		X: float64(b.numColumns)*b.sipmPitch - 2*b.sideReduction,
		Y: float64(b.numRows)*b.sipmPitch - 2*b.sideReduction,
		Z: b.kaptonThickness + b.coatingThickness + math.Max(sipmDim.Z, b.maskThickness),
	}
	b.SetDimensions(boardSize)
	half := boardSize.Half()

	boardLogic, err := volume.NewLogical(solid.NewBox(BoardName, half.X, half.Y, half.Z), motherGas, BoardName)
	if err != nil {
		return wrap(err)
	}
	b.SetLogicalVolume(boardLogic)

	/// Kapton
	kapton, err := b.Library().FindOrBuild(material.Kapton)
	if err != nil {
		return wrap(err)
	}
	kaptonPosZ := -half.Z + b.kaptonThickness/2
	kaptonLogic, err := volume.NewLogical(solid.NewBox(KaptonName, half.X, half.Y, b.kaptonThickness/2), kapton, KaptonName)
	if err != nil {
		return wrap(err)
	}
	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: kaptonPosZ},
		Logical:       kaptonLogic,
		Name:          KaptonName,
		Mother:        boardLogic,
		CheckOverlaps: true,
	}); err != nil {
		return wrap(err)
	}

	b.generateSiPMPositions()

	/// Mask with holes, or bare SiPMs on the kapton
	var maskLogic, holeLogic, membraneLogic *volume.Logical
	maskPosZ := -half.Z + b.kaptonThickness + b.maskThickness/2
	if b.maskThickness > 0 {
		maskLogic, holeLogic, membraneLogic, err = b.buildMask(boardLogic, motherGas, maskPosZ, sipmRot, sipmDim)
		if err != nil {
			return err
		}
	} else {
		sipmPosZ := -half.Z + b.kaptonThickness + sipmDim.Z/2
		for id, pos := range b.positions {
			if _, err := volume.Place(volume.Placement{
				Rotation:    &sipmRot,
				Translation: geometry.Point{X: pos.X, Y: pos.Y, Z: sipmPosZ},
				Logical:     b.sipm.LogicalVolume(),
				Name:        b.sipm.LogicalVolume().Name,
				Mother:      boardLogic,
				CopyNo:      id,
			}); err != nil {
				return wrap(err)
			}
		}
	}

	/// Coating
	var coatingLogic *volume.Logical
	coatingPosZ := half.Z - b.coatingThickness/2
	if b.coatingThickness > 0 {
		coatingLogic, err = b.buildCoating(boardLogic, coatingPosZ)
		if err != nil {
			return err
		}
	}

	/// Vertex generators
	b.kaptonGen, err = sampler.NewBoxPointSampler(
		geometry.Vec3D{X: boardSize.X, Y: boardSize.Y, Z: b.kaptonThickness}, 0,
		geometry.Point{Z: kaptonPosZ}, nil)
	if err != nil {
		return wrap(err)
	}
	if b.maskThickness > 0 {
		b.maskGen, err = sampler.NewBoxPointSampler(
			geometry.Vec3D{X: boardSize.X, Y: boardSize.Y, Z: b.maskThickness}, 0,
			geometry.Point{Z: maskPosZ}, nil)
		if err != nil {
			return wrap(err)
		}
	}
	if b.coatingThickness > 0 {
		b.coatingGen, err = sampler.NewBoxPointSampler(
			geometry.Vec3D{X: boardSize.X, Y: boardSize.Y, Z: b.coatingThickness}, 0,
			geometry.Point{Z: coatingPosZ}, nil)
		if err != nil {
			return wrap(err)
		}
	}

	b.report()

	/// Visibilities
	boardLogic.SetVisAttributes(volume.Invisible())
	if b.visibility {
		kaptonLogic.SetVisAttributes(volume.Blue())
		if maskLogic != nil {
			maskLogic.SetVisAttributes(volume.LightBlue())
		}
	} else {
		kaptonLogic.SetVisAttributes(volume.Invisible())
		if maskLogic != nil {
			maskLogic.SetVisAttributes(volume.Invisible())
		}
	}
	for _, l := range []*volume.Logical{holeLogic, membraneLogic, coatingLogic} {
		if l != nil {
			l.SetVisAttributes(volume.Invisible())
		}
	}

	b.endConstruct()
	return nil
}

// buildMask places the teflon mask and one hole per SiPM, each hole holding
// a SiPM at its bottom and an optional membrane at its top.
func (b *NextDemoSiPMBoard) buildMask(boardLogic *volume.Logical, motherGas *material.Material,
	maskPosZ float64, sipmRot geometry.Rotation, sipmDim geometry.Vec3D) (maskLogic, holeLogic, membraneLogic *volume.Logical, err error) {
	newErr := exception.NewFunc(boardOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	half := b.Dimensions().Half()

	teflon, err := b.Library().FindOrBuild(material.Teflon)
	if err != nil {
		return nil, nil, nil, wrap(err)
	}
	maskLogic, err = volume.NewLogical(solid.NewBox(MaskName, half.X, half.Y, b.maskThickness/2), teflon, MaskName)
	if err != nil {
		return nil, nil, nil, wrap(err)
	}

	maskSurface := optical.NewSurface(MaskName, optical.Unified, optical.Ground, optical.DielectricMetal)
	maskSurface.Properties = optical.PTFE()
	if _, err := b.Surfaces().AddSkin(MaskName+"_OPSURF", maskLogic, maskSurface); err != nil {
		return nil, nil, nil, wrap(err)
	}

	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: maskPosZ},
		Logical:       maskLogic,
		Name:          MaskName,
		Mother:        boardLogic,
		CheckOverlaps: true,
	}); err != nil {
		return nil, nil, nil, wrap(err)
	}

	b.holeSolid = b.holeShape(HoleName, b.maskThickness/2)
	holeLogic, err = volume.NewLogical(b.holeSolid, motherGas, HoleName)
	if err != nil {
		return nil, nil, nil, wrap(err)
	}

	sipmPosZ := -b.maskThickness/2 + sipmDim.Z/2
	if _, err := volume.Place(volume.Placement{
		Rotation:    &sipmRot,
		Translation: geometry.Point{Z: sipmPosZ},
		Logical:     b.sipm.LogicalVolume(),
		Name:        b.sipm.LogicalVolume().Name,
		Mother:      holeLogic,
	}); err != nil {
		return nil, nil, nil, wrap(err)
	}

	if b.membraneThickness > 0 {
		membraneLogic, err = volume.NewLogical(b.holeShape(MembraneName, b.membraneThickness/2), motherGas, MembraneName)
		if err != nil {
			return nil, nil, nil, wrap(err)
		}
		if _, err := volume.Place(volume.Placement{
			Translation:   geometry.Point{Z: b.maskThickness/2 - b.membraneThickness/2},
			Logical:       membraneLogic,
			Name:          MembraneName,
			Mother:        holeLogic,
			CheckOverlaps: true,
		}); err != nil {
			return nil, nil, nil, wrap(err)
		}
	}

	for id, pos := range b.positions {
		if _, err := volume.Place(volume.Placement{
			Translation: pos,
			Logical:     holeLogic,
			Name:        HoleName,
			Mother:      maskLogic,
			CopyNo:      id,
		}); err != nil {
			return nil, nil, nil, wrap(err)
		}
	}
	return maskLogic, holeLogic, membraneLogic, nil
}

func (b *NextDemoSiPMBoard) holeShape(name string, halfZ float64) solid.Solid {
	if b.holeType == HoleRectangular {
		return solid.NewBox(name, b.holeX/2, b.holeY/2, halfZ)
	}
	return solid.NewTubs(name, 0, b.holeDiameter/2, halfZ, 0, 2*math.Pi)
}

// buildCoating places the TPB layer on top of the board and registers the
// border surfaces against the mother gas in both directions.
func (b *NextDemoSiPMBoard) buildCoating(boardLogic *volume.Logical, coatingPosZ float64) (*volume.Logical, error) {
	newErr := exception.NewFunc(boardOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	half := b.Dimensions().Half()

	tpb, err := b.Library().TPB()
	if err != nil {
		return nil, wrap(err)
	}
	coatingLogic, err := volume.NewLogical(solid.NewBox(CoatingName, half.X, half.Y, b.coatingThickness/2), tpb, CoatingName)
	if err != nil {
		return nil, wrap(err)
	}
	coatingPhys, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: coatingPosZ},
		Logical:       coatingLogic,
		Name:          CoatingName,
		Mother:        boardLogic,
		CheckOverlaps: true,
	})
	if err != nil {
		return nil, wrap(err)
	}

	surface := optical.NewSurfaceWithValue(CoatingName+"_OPSURF", optical.Glisur, optical.Ground,
		optical.DielectricDielectric, .01)
	if _, err := b.Surfaces().AddBorder(CoatingToGasSurface, coatingPhys, b.motherPhys, surface); err != nil {
		return nil, wrap(err)
	}
	if _, err := b.Surfaces().AddBorder(GasToCoatingSurface, b.motherPhys, coatingPhys, surface); err != nil {
		return nil, wrap(err)
	}
	return coatingLogic, nil
}

// generateSiPMPositions fills the rows along y from the bottom edge and the
// columns along x from the right edge.
func (b *NextDemoSiPMBoard) generateSiPMPositions() {
	size := b.Dimensions()
	margin := b.sipmPitch/2 - b.sideReduction
	b.positions = make([]geometry.Point, 0, b.NumSiPMs())
	for i := 0; i < b.numRows; i++ {
		y := -size.Y/2 + margin + float64(i)*b.sipmPitch
		for j := 0; j < b.numColumns; j++ {
			x := size.X/2 - margin - float64(j)*b.sipmPitch
			b.positions = append(b.positions, geometry.Point{X: x, Y: y})
		}
	}
}

func (b *NextDemoSiPMBoard) report() {
	if !b.verbosity {
		return
	}
	log.Infof("* SiPM board size:    %v", b.Dimensions())
	log.Infof("* %d SiPMs of type %s", b.NumSiPMs(), b.sipmType)
	if b.sipmVerbosity {
		for id, pos := range b.positions {
			log.Infof("* SiPM %d position: %v", id, pos)
		}
	}
	log.Infof("* Kapton thickness:   %s", units.Best(b.kaptonThickness, "Length"))
	log.Infof("* Mask thickness:     %s", units.Best(b.maskThickness, "Length"))
	log.Infof("* Mask hole diameter: %s", units.Best(b.holeWidth(), "Length"))
	log.Infof("* Membrane thickness: %s", units.Best(b.membraneThickness, "Length"))
	log.Infof("* Coating thickness:  %s", units.Best(b.coatingThickness, "Length"))
}

// GenerateVertex samples the KAPTON layer, the MASK teflon (outside the
// holes) or the COATING layer, in the board frame.
func (b *NextDemoSiPMBoard) GenerateVertex(region string) (geometry.Point, error) {
	if err := b.requireConstructed(boardOrigin); err != nil {
		return geometry.Point{}, err
	}
	switch region {
	case RegionKapton:
		return sampleInside(b.Rand(), b.kaptonGen)
	case RegionMask:
		if b.maskGen == nil {
			break
		}
		for {
			p, err := sampleInside(b.Rand(), b.maskGen)
			if err != nil {
				return p, err
			}
			if !b.insideHole(p) {
				return p, nil
			}
		}
	case RegionCoating:
		if b.coatingGen == nil {
			break
		}
		return sampleInside(b.Rand(), b.coatingGen)
	}
	return geometry.Point{}, exception.New(boardOrigin, "GenerateVertex()", exception.ErrUnknownRegion,
		"Unknown vertex generation region %q", region)
}

// insideHole reports whether a board frame point falls in a mask hole.
func (b *NextDemoSiPMBoard) insideHole(p geometry.Point) bool {
	maskPosZ := -b.Dimensions().Z/2 + b.kaptonThickness + b.maskThickness/2
	for _, pos := range b.positions {
		local := p.Sub(geometry.Point{X: pos.X, Y: pos.Y, Z: maskPosZ})
		if b.holeSolid.Inside(local) {
			return true
		}
	}
	return false
}

func (b *NextDemoSiPMBoard) String() string {
	return fmt.Sprintf("NextDemoSiPMBoard{%s, %d SiPMs, size %v}", b.sipmType, b.NumSiPMs(), b.Dimensions())
}
