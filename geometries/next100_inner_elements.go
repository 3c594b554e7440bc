package geometries

import (
	"math"
	"sort"

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

const innerOrigin = "[Next100InnerElements]"

// Vertex generation regions of the NEXT-100 inner elements.
const (
	RegionCenter         = "CENTER"
	RegionActive         = "ACTIVE"
	RegionELGap          = "EL_GAP"
	RegionBuffer         = "BUFFER"
	RegionSapphireWindow = "SAPPHIRE_WINDOW"
	RegionTPSiPMBoard    = "TP_SIPM_BOARD"
)

// Dimensions of the NEXT-100 inner elements.
const (
	next100ActiveLength   = 1204.95 * units.MM
	next100ActiveRadius   = 492 * units.MM
	next100ELGap          = 10 * units.MM
	next100LightTubeThick = 5 * units.MM

	next100PlateRadius    = 540 * units.MM
	next100PlateThickness = 120 * units.MM

	next100NumWindows      = 60
	next100WindowPitch     = 116.4 * units.MM
	next100WindowDiameter  = 85 * units.MM
	next100WindowThickness = 6 * units.MM

	next100BoardPitch = 80 * units.MM
)

// Next100InnerElements builds the field cage, the energy plane and the
// tracking plane inside the gas volume. The gate sits at the EL z
// coordinate and the drift runs towards +z, to the energy plane.
type Next100InnerElements struct {
	Base
	msg *messenger.Messenger

	motherLogic *volume.Logical
	motherPhys  *volume.Physical

	elZ              float64
	elToSapphireDist float64
	elToTPDist       float64
	visibility       bool
	verbosity        bool
	sipmCoating      bool
	sipmTimeBinning  float64

	board     *NextDemoSiPMBoard
	epPlate   *volume.Physical
	boards    []*volume.Physical
	windows   []*volume.Physical
	activeGen *sampler.CylinderPointSampler
	elGapGen  *sampler.CylinderPointSampler
	bufferGen *sampler.CylinderPointSampler
	windowGen *sampler.CylinderPointSampler
	activeZ   float64
}

// NewNext100InnerElements creates the inner elements with the commands
// tp_sipm_time_binning, tp_sipm_coating, elements_vis and
// elements_verbosity under /Geometry/Next100/.
func NewNext100InnerElements() *Next100InnerElements {
	e := &Next100InnerElements{
		elToSapphireDist: 1458.1 * units.MM,
		elToTPDist:       26.2 * units.MM,
		sipmTimeBinning:  1 * units.Microsecond,
	}
	e.msg = messenger.New("/Geometry/Next100/", "Control commands of the NEXT-100 inner elements.")
	e.msg.DeclareProperty("elements_vis", &e.visibility, "Inner elements visibility.")
	e.msg.DeclareProperty("elements_verbosity", &e.verbosity, "Inner elements verbosity.")
	e.msg.DeclareProperty("tp_sipm_coating", &e.sipmCoating, "TPB coating of the tracking plane SiPMs.")
	e.msg.DeclareProperty("tp_sipm_time_binning", &e.sipmTimeBinning, "Tracking plane SiPMs time binning.").
		SetParameterName("tp_sipm_time_binning", false).
		SetUnitCategory("Time").
		SetRange("tp_sipm_time_binning>0.")
	return e
}

// Messengers returns the inner elements commands.
func (e *Next100InnerElements) Messengers() []*messenger.Messenger {
	return []*messenger.Messenger{e.msg}
}

// SetLogicalVolume sets the gas volume the elements are placed in.
func (e *Next100InnerElements) SetLogicalVolume(l *volume.Logical) { e.motherLogic = l }

// SetPhysicalVolume sets the placement of the gas volume.
func (e *Next100InnerElements) SetPhysicalVolume(p *volume.Physical) { e.motherPhys = p }

// SetELzCoord sets the gate z coordinate in the gas frame.
func (e *Next100InnerElements) SetELzCoord(z float64) { e.elZ = z }

// SetELtoSapphireWDWdistance sets the gate to sapphire window distance.
func (e *Next100InnerElements) SetELtoSapphireWDWdistance(d float64) { e.elToSapphireDist = d }

// SetELtoTPdistance sets the gate to tracking plane distance.
func (e *Next100InnerElements) SetELtoTPdistance(d float64) { e.elToTPDist = d }

// Boards returns the tracking plane board placements.
func (e *Next100InnerElements) Boards() []*volume.Physical { return e.boards }

// Windows returns the sapphire window placements.
func (e *Next100InnerElements) Windows() []*volume.Physical { return e.windows }

// Board returns the tracking plane board builder.
func (e *Next100InnerElements) Board() *NextDemoSiPMBoard { return e.board }

// LogicalVolume returns the mother gas volume.
func (e *Next100InnerElements) LogicalVolume() *volume.Logical { return e.motherLogic }

// Construct places the elements in the mother gas.
func (e *Next100InnerElements) Construct() error {
	if err := e.beginConstruct(innerOrigin); err != nil {
		return err
	}
	newErr := exception.NewFunc(innerOrigin)
	if e.motherLogic == nil || e.motherPhys == nil {
		return newErr("Construct()", exception.ErrMissingMother, "Mother volume of the inner elements is not set.")
	}
	if e.elToTPDist <= next100ELGap {
		return newErr("Construct()", exception.ErrInvalidConfiguration,
			"Tracking plane (%s) must lie behind the EL gap (%s)",
			units.Best(e.elToTPDist, "Length"), units.Best(next100ELGap, "Length"))
	}
	if e.elToSapphireDist <= next100ActiveLength {
		return newErr("Construct()", exception.ErrInvalidConfiguration,
			"Sapphire windows (%s) must lie beyond the cathode (%s)",
			units.Best(e.elToSapphireDist, "Length"), units.Best(next100ActiveLength, "Length"))
	}
	e.SetDimensions(e.motherLogic.Solid.Extent().Size())

	if err := e.buildFieldCage(); err != nil {
		return err
	}
	if err := e.buildEnergyPlane(); err != nil {
		return err
	}
	if err := e.buildTrackingPlane(); err != nil {
		return err
	}

	if e.verbosity {
		log.Infof("* Gate z position:            %s", units.Best(e.elZ, "Length"))
		log.Infof("* Active length:              %s", units.Best(next100ActiveLength, "Length"))
		log.Infof("* Sapphire windows:           %d", len(e.windows))
		log.Infof("* Tracking plane SiPM boards: %d", len(e.boards))
		log.Infof("* Tracking plane SiPMs:       %d",
			volume.CountPlacements(e.motherLogic, e.board.SiPM().LogicalVolume().Name))
	}
	e.endConstruct()
	return nil
}

// buildFieldCage places a teflon light tube holding the EL gap, the active
// volume and the buffer, from the anode to the sapphire windows.
func (e *Next100InnerElements) buildFieldCage() error {
	newErr := exception.NewFunc(innerOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	gas := e.motherLogic.Material

	teflon, err := e.Library().FindOrBuild(material.Teflon)
	if err != nil {
		return wrap(err)
	}
	cageLength := next100ELGap + e.elToSapphireDist
	cageZ := e.elZ - next100ELGap + cageLength/2
	cageLogic, err := volume.NewLogical(
		solid.NewTubs("LIGHT_TUBE", 0, next100ActiveRadius+next100LightTubeThick, cageLength/2, 0, 2*math.Pi),
		teflon, "LIGHT_TUBE")
	if err != nil {
		return wrap(err)
	}
	surface := optical.NewSurface("LIGHT_TUBE", optical.Unified, optical.Ground, optical.DielectricMetal)
	surface.Properties = optical.PTFE()
	if _, err := e.Surfaces().AddSkin("LIGHT_TUBE_OPSURF", cageLogic, surface); err != nil {
		return wrap(err)
	}
	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: cageZ},
		Logical:       cageLogic,
		Name:          "LIGHT_TUBE",
		Mother:        e.motherLogic,
		CheckOverlaps: true,
	}); err != nil {
		return wrap(err)
	}

	buffer := e.elToSapphireDist - next100ActiveLength
	e.activeZ = e.elZ + next100ActiveLength/2
	sections := []struct {
		name   string
		length float64
		z      float64
		gen    **sampler.CylinderPointSampler
	}{
		{"EL_GAP", next100ELGap, e.elZ - next100ELGap/2, &e.elGapGen},
		{"ACTIVE", next100ActiveLength, e.activeZ, &e.activeGen},
		{"BUFFER", buffer, e.elZ + next100ActiveLength + buffer/2, &e.bufferGen},
	}
	for _, s := range sections {
		logic, err := volume.NewLogical(solid.NewTubs(s.name, 0, next100ActiveRadius, s.length/2, 0, 2*math.Pi), gas, s.name)
		if err != nil {
			return wrap(err)
		}
		if _, err := volume.Place(volume.Placement{
			Translation:   geometry.Point{Z: s.z - cageZ},
			Logical:       logic,
			Name:          s.name,
			Mother:        cageLogic,
			CheckOverlaps: true,
		}); err != nil {
			return wrap(err)
		}
		if !e.visibility {
			logic.SetVisAttributes(volume.Invisible())
		}
		*s.gen, err = sampler.NewCylinderPointSampler(0, next100ActiveRadius, s.length/2, geometry.Point{Z: s.z}, nil)
		if err != nil {
			return wrap(err)
		}
	}
	if e.visibility {
		cageLogic.SetVisAttributes(volume.LightBlue())
	} else {
		cageLogic.SetVisAttributes(volume.Invisible())
	}
	return nil
}

// buildEnergyPlane places a copper plate whose front face holds the
// sapphire windows on a hexagonal pattern.
func (e *Next100InnerElements) buildEnergyPlane() error {
	newErr := exception.NewFunc(innerOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	copper, err := e.Library().FindOrBuild(material.Copper)
	if err != nil {
		return wrap(err)
	}
	sapphire, err := e.Library().FindOrBuild(material.Sapphire)
	if err != nil {
		return wrap(err)
	}

	plateLogic, err := volume.NewLogical(
		solid.NewTubs("EP_COPPER_PLATE", 0, next100PlateRadius, next100PlateThickness/2, 0, 2*math.Pi),
		copper, "EP_COPPER_PLATE")
	if err != nil {
		return wrap(err)
	}
	e.epPlate, err = volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: e.elZ + e.elToSapphireDist + next100PlateThickness/2},
		Logical:       plateLogic,
		Name:          "EP_COPPER_PLATE",
		Mother:        e.motherLogic,
		CheckOverlaps: true,
	})
	if err != nil {
		return wrap(err)
	}

	windowLogic, err := volume.NewLogical(
		solid.NewTubs("SAPPHIRE_WINDOW", 0, next100WindowDiameter/2, next100WindowThickness/2, 0, 2*math.Pi),
		sapphire, "SAPPHIRE_WINDOW")
	if err != nil {
		return wrap(err)
	}
	windowZ := -next100PlateThickness/2 + next100WindowThickness/2
	for id, pos := range sapphireWindowPositions() {
		window, err := volume.Place(volume.Placement{
			Translation:   geometry.Point{X: pos.X, Y: pos.Y, Z: windowZ},
			Logical:       windowLogic,
			Name:          "SAPPHIRE_WINDOW",
			Mother:        plateLogic,
			CopyNo:        id,
			CheckOverlaps: true,
		})
		if err != nil {
			return wrap(err)
		}
		e.windows = append(e.windows, window)
	}

	e.windowGen, err = sampler.NewCylinderPointSampler(0, next100WindowDiameter/2, next100WindowThickness/2, geometry.Origin, nil)
	if err != nil {
		return wrap(err)
	}

	if e.visibility {
		plateLogic.SetVisAttributes(volume.CopperBrown())
		windowLogic.SetVisAttributes(volume.LightBlue())
	} else {
		plateLogic.SetVisAttributes(volume.Invisible())
		windowLogic.SetVisAttributes(volume.Invisible())
	}
	return nil
}

// sapphireWindowPositions returns the hexagonal pattern of windows: four
// rings around an empty centre, sorted by radius then angle.
func sapphireWindowPositions() []geometry.Point {
	const rings = 4
	positions := []geometry.Point{}
	for q := -rings; q <= rings; q++ {
		for r := -rings; r <= rings; r++ {
			s := -q - r
			if (q == 0 && r == 0) || abs(s) > rings {
				continue
			}
			positions = append(positions, geometry.Point{
				X: next100WindowPitch * (float64(q) + float64(r)/2),
				Y: next100WindowPitch * float64(r) * math.Sqrt(3) / 2,
			})
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		ri, rj := positions[i].Perp(), positions[j].Perp()
		if math.Abs(ri-rj) > 1e-9 {
			return ri < rj
		}
		return math.Atan2(positions[i].Y, positions[i].X) < math.Atan2(positions[j].Y, positions[j].X)
	})
	return positions
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// buildTrackingPlane places the SiPM boards facing the gate and the copper
// plate behind them.
func (e *Next100InnerElements) buildTrackingPlane() error {
	newErr := exception.NewFunc(innerOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	e.board = NewNextDemoSiPMBoard()
	e.share(&e.board.Base)
	e.board.SetMotherPhysicalVolume(e.motherPhys)
	e.board.SetSiPMType(SiPMNext100Type)
	e.board.SetHoleType(HoleRounded)
	e.board.SetSiPMCoating(e.sipmCoating)
	e.board.SetTimeBinning(e.sipmTimeBinning)
	e.board.SetVisibility(e.visibility)
	e.board.SetSiPMVisibility(e.visibility)
	if err := e.board.Construct(); err != nil {
		return err
	}
	size := e.board.BoardSize()
	boardZ := e.elZ - e.elToTPDist - size.Z/2

	for id, pos := range trackingPlaneBoardPositions(size) {
		board, err := volume.Place(volume.Placement{
			Translation:   geometry.Point{X: pos.X, Y: pos.Y, Z: boardZ},
			Logical:       e.board.LogicalVolume(),
			Name:          BoardName,
			Mother:        e.motherLogic,
			CopyNo:        id,
			CheckOverlaps: true,
		})
		if err != nil {
			return wrap(err)
		}
		e.boards = append(e.boards, board)
	}

	copper, err := e.Library().FindOrBuild(material.Copper)
	if err != nil {
		return wrap(err)
	}
	plateLogic, err := volume.NewLogical(
		solid.NewTubs("TP_COPPER_PLATE", 0, next100PlateRadius, next100PlateThickness/2, 0, 2*math.Pi),
		copper, "TP_COPPER_PLATE")
	if err != nil {
		return wrap(err)
	}
	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: e.elZ - e.elToTPDist - size.Z - next100PlateThickness/2},
		Logical:       plateLogic,
		Name:          "TP_COPPER_PLATE",
		Mother:        e.motherLogic,
		CheckOverlaps: true,
	}); err != nil {
		return wrap(err)
	}
	if e.visibility {
		plateLogic.SetVisAttributes(volume.CopperBrown())
	} else {
		plateLogic.SetVisAttributes(volume.Invisible())
	}
	return nil
}

// trackingPlaneBoardPositions tiles the plane with boards whose corners all
// lie within the active radius.
func trackingPlaneBoardPositions(board geometry.Vec3D) []geometry.Point {
	const n = 8
	positions := []geometry.Point{}
	for j := -n; j < n; j++ {
		for i := -n; i < n; i++ {
			c := geometry.Point{X: (float64(i) + .5) * next100BoardPitch, Y: (float64(j) + .5) * next100BoardPitch}
			inside := true
			for _, dx := range []float64{-1, 1} {
				for _, dy := range []float64{-1, 1} {
					corner := geometry.Point{X: c.X + dx*board.X/2, Y: c.Y + dy*board.Y/2}
					if corner.Perp() > next100ActiveRadius {
						inside = false
					}
				}
			}
			if inside {
				positions = append(positions, c)
			}
		}
	}
	return positions
}

// GenerateVertex samples a region in the gas frame.
func (e *Next100InnerElements) GenerateVertex(region string) (geometry.Point, error) {
	if err := e.requireConstructed(innerOrigin); err != nil {
		return geometry.Point{}, err
	}
	rng := e.Rand()
	switch region {
	case RegionCenter:
		return geometry.Point{Z: e.activeZ}, nil
	case RegionActive:
		return e.activeGen.GenerateVertex(rng, sampler.Volume)
	case RegionELGap:
		return e.elGapGen.GenerateVertex(rng, sampler.Volume)
	case RegionBuffer:
		return e.bufferGen.GenerateVertex(rng, sampler.Volume)
	case RegionSapphireWindow:
		window := e.windows[rng.Intn(len(e.windows))]
		local, err := e.windowGen.GenerateVertex(rng, sampler.Volume)
		if err != nil {
			return local, err
		}
		return e.epPlate.Transform.Compose(window.Transform).Apply(local), nil
	case RegionTPSiPMBoard:
		board := e.boards[rng.Intn(len(e.boards))]
		local, err := e.board.GenerateVertex(RegionKapton)
		if err != nil {
			return local, err
		}
		return board.Transform.Apply(local), nil
	}
	return geometry.Point{}, exception.New(innerOrigin, "GenerateVertex()", exception.ErrUnknownRegion,
		"Unknown vertex generation region %q", region)
}
