// Package geometries contains the detector geometry builders. Each builder
// is configured through setters or messenger commands, constructed once and
// then asked for vertices in named regions.
package geometries

import (
	"math/rand"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/volume"
)

var log = config.NamedLogger("geometries")

// Geometry is the contract between a builder and the host driver.
type Geometry interface {
	// Construct builds the volume tree. It may run only once.
	Construct() error
	// GenerateVertex samples a point in a named region, in the frame of
	// LogicalVolume. It requires Construct.
	GenerateVertex(region string) (geometry.Point, error)
	// LogicalVolume returns the outermost volume, nil before Construct.
	LogicalVolume() *volume.Logical
	// Messengers returns the command directories of the builder.
	Messengers() []*messenger.Messenger
	// Surfaces returns the optical surfaces registered by the builder.
	Surfaces() *volume.SurfaceStore
}

// Base holds the state shared by all builders.
type Base struct {
	logical     *volume.Logical
	dimensions  geometry.Vec3D
	constructed bool

	rng      *rand.Rand
	library  *material.Library
	surfaces *volume.SurfaceStore
}

// LogicalVolume returns the outermost logical volume of the builder.
func (b *Base) LogicalVolume() *volume.Logical { return b.logical }

// SetLogicalVolume sets the outermost logical volume.
func (b *Base) SetLogicalVolume(l *volume.Logical) { b.logical = l }

// Dimensions returns the full size of the outermost volume.
func (b *Base) Dimensions() geometry.Vec3D { return b.dimensions }

// SetDimensions records the full size of the outermost volume.
func (b *Base) SetDimensions(d geometry.Vec3D) { b.dimensions = d }

// Constructed reports whether Construct completed.
func (b *Base) Constructed() bool { return b.constructed }

// Seed resets the random source used by GenerateVertex. A source already
// shared with the parts is reseeded in place so they follow.
func (b *Base) Seed(seed int64) {
	if b.rng != nil {
		b.rng.Seed(seed)
		return
	}
	b.rng = rand.New(rand.NewSource(seed))
}

// SetRand shares a random source, e.g. between a geometry and its parts.
func (b *Base) SetRand(rng *rand.Rand) { b.rng = rng }

// Rand returns the random source, seeded with 1 unless set.
func (b *Base) Rand() *rand.Rand {
	if b.rng == nil {
		b.Seed(1)
	}
	return b.rng
}

// Library returns the material library, the process wide one by default.
func (b *Base) Library() *material.Library {
	if b.library == nil {
		b.library = material.Default()
	}
	return b.library
}

// SetLibrary sets the material library.
func (b *Base) SetLibrary(l *material.Library) { b.library = l }

// Surfaces returns the optical surface store.
func (b *Base) Surfaces() *volume.SurfaceStore {
	if b.surfaces == nil {
		b.surfaces = volume.NewSurfaceStore()
	}
	return b.surfaces
}

// SetSurfaces shares a surface store between builders.
func (b *Base) SetSurfaces(s *volume.SurfaceStore) { b.surfaces = s }

// Messengers returns no command directories.
func (b *Base) Messengers() []*messenger.Messenger { return nil }

// share passes the random source, library and surface store to a part.
func (b *Base) share(part *Base) {
	part.SetRand(b.Rand())
	part.SetLibrary(b.Library())
	part.SetSurfaces(b.Surfaces())
}

// beginConstruct guards against constructing twice.
func (b *Base) beginConstruct(origin string) error {
	if b.constructed {
		return exception.New(origin, "Construct()", exception.ErrAlreadyConstructed,
			"Construct() can only be called once")
	}
	return nil
}

func (b *Base) endConstruct() { b.constructed = true }

func (b *Base) requireConstructed(origin string) error {
	if !b.constructed {
		return exception.New(origin, "GenerateVertex()", exception.ErrNotConstructed,
			"Construct() must be called before generating vertices")
	}
	return nil
}
