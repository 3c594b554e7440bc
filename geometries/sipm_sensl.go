package geometries

import (
	"math/rand"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/sampler"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

const senslOrigin = "[SiPMSensl]"

// SiPMSensl is the SensL SiPM of the NextDemo tracking plane. The active
// window sits on the -z face of the package.
type SiPMSensl struct {
	Base
	sipmSettings

	activeGen *sampler.BoxPointSampler
}

// NewSiPMSensl creates an unconstructed SensL SiPM.
func NewSiPMSensl() *SiPMSensl {
	return &SiPMSensl{sipmSettings: defaultSiPMSettings()}
}

// Sizes of the SensL package and photodiode window.
const (
	senslX            = 1.5 * units.MM
	senslY            = 1.5 * units.MM
	senslZ            = 1.35 * units.MM
	senslActiveSide   = 1.0 * units.MM
	senslActiveDepth  = 0.01 * units.MM
	senslSensitiveTag = "SiPMSensl"
)

// Construct builds the package and the sensitive photodiode window.
func (s *SiPMSensl) Construct() error {
	if err := s.beginConstruct(senslOrigin); err != nil {
		return err
	}
	newErr := exception.NewFunc(senslOrigin)

	plastic, err := s.Library().FindOrBuild(material.Polycarbonate)
	if err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	silicon, err := s.Library().FindOrBuild(material.Silicon)
	if err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	s.SetDimensions(geometry.Vec3D{X: senslX, Y: senslY, Z: senslZ})
	caseLogic, err := volume.NewLogical(solid.NewBox("SIPM_SENSL", senslX/2, senslY/2, senslZ/2), plastic, "SIPM_SENSL")
	if err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	s.SetLogicalVolume(caseLogic)

	activeZ := -senslZ/2 + senslActiveDepth/2
	active, err := volume.NewLogical(solid.NewBox("PHOTODIODES", senslActiveSide/2, senslActiveSide/2, senslActiveDepth/2), silicon, "PHOTODIODES")
	if err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	active.SetSensitiveDetector(s.sensitiveDetector(senslSensitiveTag))
	if _, err := volume.Place(volume.Placement{
		Translation:   geometry.Point{Z: activeZ},
		Logical:       active,
		Name:          "PHOTODIODES",
		Mother:        caseLogic,
		CheckOverlaps: true,
	}); err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	s.activeGen, err = sampler.NewBoxPointSampler(
		geometry.Vec3D{X: senslActiveSide, Y: senslActiveSide, Z: senslActiveDepth}, 0,
		geometry.Point{Z: activeZ}, nil)
	if err != nil {
		return newErr("Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}

	s.applyVis(caseLogic, active)
	s.endConstruct()
	return nil
}

// GenerateVertex supports the ACTIVE region, the photodiode window.
func (s *SiPMSensl) GenerateVertex(region string) (geometry.Point, error) {
	return generateSiPMVertex(&s.Base, senslOrigin, s.activeGen, region)
}

func generateSiPMVertex(b *Base, origin string, active *sampler.BoxPointSampler, region string) (geometry.Point, error) {
	if err := b.requireConstructed(origin); err != nil {
		return geometry.Point{}, err
	}
	if region != "ACTIVE" {
		return geometry.Point{}, exception.New(origin, "GenerateVertex()", exception.ErrUnknownRegion,
			"Unknown vertex generation region %q", region)
	}
	return sampleInside(b.Rand(), active)
}

func sampleInside(rng *rand.Rand, s sampler.Sampler) (geometry.Point, error) {
	return s.GenerateVertex(rng, sampler.Inside)
}
