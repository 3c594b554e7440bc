// Package run drives a geometry: it applies configuration commands, builds
// the volume tree once and samples vertices from it.
package run

import (
	"io"
	"os"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometries"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/volume"
)

var log = config.NamedLogger("run")

const origin = "[RunManager]"

var newErr = exception.NewFunc(origin)

type seeder interface {
	Seed(seed int64)
}

// Manager owns a single geometry and its command directories.
type Manager struct {
	geometry geometries.Geometry
	ui       *messenger.UI
	world    *volume.Physical
}

// NewManager creates a manager without a geometry.
func NewManager() *Manager {
	return &Manager{ui: messenger.NewUI()}
}

// NewManagerFor creates a manager for a registered geometry.
func NewManagerFor(name string) (*Manager, error) {
	g, err := geometries.New(name)
	if err != nil {
		return nil, err
	}
	m := NewManager()
	if err := m.SetGeometry(g); err != nil {
		return nil, err
	}
	return m, nil
}

// SetGeometry sets the geometry and registers its commands. It may be
// called once.
func (m *Manager) SetGeometry(g geometries.Geometry) error {
	if g == nil {
		return newErr("SetGeometry()", exception.ErrInvalidConfiguration, "geometry is nil")
	}
	if m.geometry != nil {
		return newErr("SetGeometry()", exception.ErrInvalidConfiguration, "geometry is already set")
	}
	for _, msg := range g.Messengers() {
		if err := m.ui.Register(msg); err != nil {
			return err
		}
	}
	m.geometry = g
	return nil
}

// Geometry returns the managed geometry.
func (m *Manager) Geometry() geometries.Geometry { return m.geometry }

// UI returns the command interpreter.
func (m *Manager) UI() *messenger.UI { return m.ui }

// Seed resets the random source of the geometry.
func (m *Manager) Seed(seed int64) error {
	if err := m.requireGeometry("Seed()"); err != nil {
		return err
	}
	s, ok := m.geometry.(seeder)
	if !ok {
		return newErr("Seed()", exception.ErrInvalidConfiguration, "geometry %T can not be seeded", m.geometry)
	}
	s.Seed(seed)
	return nil
}

// Apply runs a single command line.
func (m *Manager) Apply(command string) error {
	return m.ui.Apply(command)
}

// ExecuteMacro runs a command file.
func (m *Manager) ExecuteMacro(r io.Reader) error {
	return m.ui.Execute(r)
}

// ExecuteMacroFile runs the command file at path.
func (m *Manager) ExecuteMacroFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debugf("Executing macro %s", path)
	return m.ExecuteMacro(f)
}

// Initialize constructs the geometry and places it as the world volume.
func (m *Manager) Initialize() error {
	if err := m.requireGeometry("Initialize()"); err != nil {
		return err
	}
	if err := m.geometry.Construct(); err != nil {
		return err
	}
	lab := m.geometry.LogicalVolume()
	if lab == nil {
		return newErr("Initialize()", exception.ErrMissingMother, "geometry %T built no logical volume", m.geometry)
	}
	world, err := volume.Place(volume.Placement{Logical: lab, Name: lab.Name})
	if err != nil {
		return newErr("Initialize()", exception.ErrInvalidConfiguration, "%v", err)
	}
	m.world = world
	log.Infof("Geometry %s initialized", lab.Name)
	return nil
}

// Initialized reports whether Initialize completed.
func (m *Manager) Initialized() bool { return m.world != nil }

// World returns the world placement, nil before Initialize.
func (m *Manager) World() *volume.Physical { return m.world }

// GenerateVertices samples n vertices in region, in the world frame.
func (m *Manager) GenerateVertices(region string, n int) ([]geometry.Point, error) {
	if !m.Initialized() {
		return nil, newErr("GenerateVertices()", exception.ErrNotConstructed, "Initialize() must be called first")
	}
	if n < 0 {
		return nil, newErr("GenerateVertices()", exception.ErrOutOfRange, "number of vertices %d is negative", n)
	}
	vertices := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := m.geometry.GenerateVertex(region)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, p)
	}
	return vertices, nil
}

// VolumeAt returns the name of the deepest placement containing p, a point
// in the world frame, or "" when p is outside the world.
func (m *Manager) VolumeAt(p geometry.Point) (string, error) {
	if !m.Initialized() {
		return "", newErr("VolumeAt()", exception.ErrNotConstructed, "Initialize() must be called first")
	}
	touchable, ok := volume.Locate(m.world.Logical, p)
	if !ok {
		return "", nil
	}
	if placed := touchable.Volume(); placed != nil {
		return placed.Name, nil
	}
	return m.world.Name, nil
}

// VolumesAt locates every vertex, see VolumeAt.
func (m *Manager) VolumesAt(vertices []geometry.Point) ([]string, error) {
	names := make([]string, len(vertices))
	for i, v := range vertices {
		name, err := m.VolumeAt(v)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func (m *Manager) requireGeometry(code string) error {
	if m.geometry == nil {
		return newErr(code, exception.ErrInvalidConfiguration, "geometry is not set")
	}
	return nil
}

// Fatal logs err and terminates the process if err is fatal. Warnings are
// logged and execution continues.
func Fatal(err error) {
	if err == nil {
		return
	}
	if exception.IsFatal(err) {
		log.Fatal(err)
		return
	}
	log.Warn(err)
}
