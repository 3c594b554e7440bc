package volume

import (
	"fmt"

	"github.com/jwaiton/nexus/optical"
)

// SkinSurface wraps a logical volume with an optical surface.
type SkinSurface struct {
	Name    string
	Logical *Logical
	Surface *optical.Surface
}

// BorderSurface applies to photons going from First to Second.
type BorderSurface struct {
	Name    string
	First   *Physical
	Second  *Physical
	Surface *optical.Surface
}

// SurfaceStore holds the optical surfaces of a geometry.
type SurfaceStore struct {
	skins   []*SkinSurface
	borders []*BorderSurface
	names   map[string]bool
}

// NewSurfaceStore creates an empty store.
func NewSurfaceStore() *SurfaceStore {
	return &SurfaceStore{names: map[string]bool{}}
}

func (s *SurfaceStore) claim(name string) error {
	if s.names[name] {
		return fmt.Errorf("optical surface %q already defined", name)
	}
	s.names[name] = true
	return nil
}

// AddSkin registers a skin surface.
func (s *SurfaceStore) AddSkin(name string, logical *Logical, surface *optical.Surface) (*SkinSurface, error) {
	if logical == nil || surface == nil {
		return nil, fmt.Errorf("skin surface %q: nil volume or surface", name)
	}
	if err := s.claim(name); err != nil {
		return nil, err
	}
	skin := &SkinSurface{Name: name, Logical: logical, Surface: surface}
	s.skins = append(s.skins, skin)
	return skin, nil
}

// AddBorder registers a border surface between two physical volumes.
func (s *SurfaceStore) AddBorder(name string, first, second *Physical, surface *optical.Surface) (*BorderSurface, error) {
	if first == nil || second == nil || surface == nil {
		return nil, fmt.Errorf("border surface %q: nil volume or surface", name)
	}
	if err := s.claim(name); err != nil {
		return nil, err
	}
	border := &BorderSurface{Name: name, First: first, Second: second, Surface: surface}
	s.borders = append(s.borders, border)
	return border, nil
}

// Skins returns the registered skin surfaces.
func (s *SurfaceStore) Skins() []*SkinSurface { return s.skins }

// Borders returns the registered border surfaces.
func (s *SurfaceStore) Borders() []*BorderSurface { return s.borders }

// Skin finds the skin surface of a logical volume.
func (s *SurfaceStore) Skin(logical *Logical) *SkinSurface {
	for _, skin := range s.skins {
		if skin.Logical == logical {
			return skin
		}
	}
	return nil
}

// Border finds the surface for photons going from first to second.
func (s *SurfaceStore) Border(first, second *Physical) *BorderSurface {
	for _, border := range s.borders {
		if border.First == first && border.Second == second {
			return border
		}
	}
	return nil
}
