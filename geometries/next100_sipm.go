package geometries

import (
	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/sampler"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

const next100SiPMOrigin = "[Next100SiPM]"

// Next100SiPM is the Hamamatsu SiPM of the NEXT-100 tracking plane, with an
// optional TPB layer on top of the active window (+z face).
type Next100SiPM struct {
	Base
	sipmSettings

	coating   bool
	activeGen *sampler.BoxPointSampler
}

// NewNext100SiPM creates an unconstructed NEXT-100 SiPM.
func NewNext100SiPM() *Next100SiPM {
	return &Next100SiPM{sipmSettings: defaultSiPMSettings()}
}

const (
	next100SiPMX          = 1.6 * units.MM
	next100SiPMY          = 1.6 * units.MM
	next100SiPMZ          = 0.85 * units.MM
	next100ActiveSide     = 1.3 * units.MM
	next100ActiveDepth    = 0.01 * units.MM
	next100CoatingThickn  = 2 * units.Micrometer
	next100SensitiveTag   = "Next100SiPM"
	next100SiPMCoatingTag = "SIPM_WLS"
)

// SetSiPMCoating adds a TPB layer over the window.
func (s *Next100SiPM) SetSiPMCoating(coating bool) { s.coating = coating }

// Construct builds the package, the window and the optional coating.
func (s *Next100SiPM) Construct() error {
	if err := s.beginConstruct(next100SiPMOrigin); err != nil {
		return err
	}
	newErr := exception.NewFunc(next100SiPMOrigin)
	wrap := func(err error) error {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	plastic, err := s.Library().FindOrBuild(material.Polycarbonate)
	if err != nil {
		return wrap(err)
	}
	silicon, err := s.Library().FindOrBuild(material.Silicon)
	if err != nil {
		return wrap(err)
	}

	coatingZ := 0.
	if s.coating {
		coatingZ = next100CoatingThickn
	}
	size := geometry.Vec3D{X: next100SiPMX, Y: next100SiPMY, Z: next100SiPMZ + coatingZ}
	s.SetDimensions(size)

	caseLogic, err := volume.NewLogical(solid.NewBox("SIPM_NEXT100", size.X/2, size.Y/2, size.Z/2), plastic, "SIPM_NEXT100")
	if err != nil {
		return wrap(err)
	}
	s.SetLogicalVolume(caseLogic)

	if s.coating {
		tpb, err := s.Library().TPB()
		if err != nil {
			return wrap(err)
		}
		coatingLogic, err := volume.NewLogical(solid.NewBox(next100SiPMCoatingTag, size.X/2, size.Y/2, coatingZ/2), tpb, next100SiPMCoatingTag)
		if err != nil {
			return wrap(err)
		}
		coatingLogic.SetVisAttributes(volume.Invisible())
		if _, err := volume.Place(volume.Placement{
			Translation:   geometry.Point{Z: size.Z/2 - coatingZ/2},
			Logical:       coatingLogic,
			Name:          next100SiPMCoatingTag,
			Mother:        caseLogic,
			CheckOverlaps: true,
		}); err != nil {
			return wrap(err)
		}
	}

	activeZ := size.Z/2 - coatingZ - next100ActiveDepth/2
	active, err := volume.NewLogical(solid.NewBox("PHOTODIODES", next100ActiveSide/2, next100ActiveSide/2, next100ActiveDepth/2), silicon, "PHOTODIODES")
	if err != nil {
		return wrap(err)
	}
	active.SetSensitiveDetector(s.sensitiveDetector(next100SensitiveTag))
	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: activeZ},
		Logical:       active,
		Name:          "PHOTODIODES",
		Mother:        caseLogic,
		CheckOverlaps: true,
	}); err != nil {
		return wrap(err)
	}

	s.activeGen, err = sampler.NewBoxPointSampler(
		geometry.Vec3D{X: next100ActiveSide, Y: next100ActiveSide, Z: next100ActiveDepth}, 0,
		geometry.Point{Z: activeZ}, nil)
	if err != nil {
		return wrap(err)
	}

	s.applyVis(caseLogic, active)
	s.endConstruct()
	return nil
}

// GenerateVertex supports the ACTIVE region, the photodiode window.
func (s *Next100SiPM) GenerateVertex(region string) (geometry.Point, error) {
	return generateSiPMVertex(&s.Base, next100SiPMOrigin, s.activeGen, region)
}
