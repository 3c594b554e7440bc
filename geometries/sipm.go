package geometries

import (
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

// SiPM is a photosensor builder placed by the boards.
type SiPM interface {
	Geometry
	SetVisibility(visible bool)
	SetTimeBinning(binning float64)
	SetSensorDepth(depth int)
	SetMotherDepth(depth int)
	SetNamingOrder(order int)
	Dimensions() geometry.Vec3D
}

// sipmSettings are the readout and display settings common to SiPMs.
type sipmSettings struct {
	visibility  bool
	timeBinning float64
	sensorDepth int
	motherDepth int
	namingOrder int
}

func defaultSiPMSettings() sipmSettings {
	return sipmSettings{
		visibility:  true,
		timeBinning: 1 * units.Microsecond,
		sensorDepth: -1,
	}
}

func (s *sipmSettings) SetVisibility(visible bool)     { s.visibility = visible }
func (s *sipmSettings) SetTimeBinning(binning float64) { s.timeBinning = binning }
func (s *sipmSettings) SetSensorDepth(depth int)       { s.sensorDepth = depth }
func (s *sipmSettings) SetMotherDepth(depth int)       { s.motherDepth = depth }
func (s *sipmSettings) SetNamingOrder(order int)       { s.namingOrder = order }

func (s *sipmSettings) sensitiveDetector(name string) *volume.SensitiveDetector {
	return &volume.SensitiveDetector{
		Name:        name,
		TimeBinning: s.timeBinning,
		SensorDepth: s.sensorDepth,
		MotherDepth: s.motherDepth,
		NamingOrder: s.namingOrder,
	}
}

func (s *sipmSettings) applyVis(caseLogic, active *volume.Logical) {
	if s.visibility {
		caseLogic.SetVisAttributes(volume.LightBlue())
		active.SetVisAttributes(volume.Red())
		return
	}
	caseLogic.SetVisAttributes(volume.Invisible())
	active.SetVisAttributes(volume.Invisible())
}
