package optical

import "encoding/json"

// Model of photon interaction at a surface.
type Model int

const (
	Glisur Model = iota
	Unified
)

// Finish of a surface.
type Finish int

const (
	Polished Finish = iota
	Ground
)

// SurfaceType identifies the pair of media at the boundary.
type SurfaceType int

const (
	DielectricMetal SurfaceType = iota
	DielectricDielectric
)

var modelNames = map[Model]string{Glisur: "glisur", Unified: "unified"}
var finishNames = map[Finish]string{Polished: "polished", Ground: "ground"}
var typeNames = map[SurfaceType]string{
	DielectricMetal:      "dielectric_metal",
	DielectricDielectric: "dielectric_dielectric",
}

func (m Model) String() string       { return modelNames[m] }
func (f Finish) String() string      { return finishNames[f] }
func (s SurfaceType) String() string { return typeNames[s] }

// Surface describes the optical boundary between two volumes.
type Surface struct {
	Name   string
	Model  Model
	Finish Finish
	Type   SurfaceType
	// Value is sigma alpha for the unified model and polish for glisur.
	Value      float64
	Properties *PropertiesTable
}

// NewSurface creates a surface with the default value of its model.
func NewSurface(name string, model Model, finish Finish, kind SurfaceType) *Surface {
	value := 1.0
	if model == Unified {
		value = 0.0
	}
	return &Surface{Name: name, Model: model, Finish: finish, Type: kind, Value: value}
}

// NewSurfaceWithValue creates a surface with an explicit sigma alpha or polish.
func NewSurfaceWithValue(name string, model Model, finish Finish, kind SurfaceType, value float64) *Surface {
	s := NewSurface(name, model, finish, kind)
	s.Value = value
	return s
}

// MarshalJSON json.Marshaller implementaion.
func (s *Surface) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string           `json:"name"`
		Model      string           `json:"model"`
		Finish     string           `json:"finish"`
		Type       string           `json:"type"`
		Value      float64          `json:"value"`
		Properties *PropertiesTable `json:"properties,omitempty"`
	}{s.Name, s.Model.String(), s.Finish.String(), s.Type.String(), s.Value, s.Properties})
}
