package run

import (
	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/volume"
)

// Construction is the exported form of an initialized geometry.
type Construction struct {
	Geometry string       `json:"geometry"`
	World    *volume.Node `json:"world"`
	Skins    []SkinInfo   `json:"skinSurfaces,omitempty"`
	Borders  []BorderInfo `json:"borderSurfaces,omitempty"`
}

type SkinInfo struct {
	Name    string           `json:"name"`
	Volume  string           `json:"volume"`
	Surface *optical.Surface `json:"surface"`
}

type BorderInfo struct {
	Name    string           `json:"name"`
	First   string           `json:"first"`
	Second  string           `json:"second"`
	Surface *optical.Surface `json:"surface"`
}

// Export describes the volume tree and optical surfaces. It returns nil
// before Initialize.
func (m *Manager) Export(name string) *Construction {
	if !m.Initialized() {
		return nil
	}
	c := &Construction{Geometry: name, World: volume.Export(m.world)}
	store := m.geometry.Surfaces()
	for _, skin := range store.Skins() {
		c.Skins = append(c.Skins, SkinInfo{Name: skin.Name, Volume: skin.Logical.Name, Surface: skin.Surface})
	}
	for _, border := range store.Borders() {
		c.Borders = append(c.Borders, BorderInfo{
			Name:    border.Name,
			First:   border.First.Name,
			Second:  border.Second.Name,
			Surface: border.Surface,
		})
	}
	return c
}
