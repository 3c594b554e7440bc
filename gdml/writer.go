package gdml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
)

var log = config.NamedLogger("gdml")

const (
	lengthUnit  = "mm"
	angleUnit   = "rad"
	densityUnit = "g/cm3"
)

// namer hands out unique names within one GDML namespace.
type namer map[string]int

func (n namer) unique(name string) string {
	count := n[name]
	n[name] = count + 1
	if count == 0 {
		return name
	}
	candidate := fmt.Sprintf("%s_%d", name, count)
	for n[candidate] > 0 {
		count++
		candidate = fmt.Sprintf("%s_%d", name, count)
	}
	n[candidate] = 1
	return candidate
}

type builder struct {
	doc *Document

	isotopeNames  namer
	elementNames  namer
	materialNames namer
	solidNames    namer
	volumeNames   namer
	physNames     namer
	defineNames   namer
	surfaceNames  namer

	isotopes  map[material.Isotope]string
	elements  map[*material.Element]string
	materials map[*material.Material]string
	solids    map[solid.Solid]string
	volumes   map[*volume.Logical]string
	physvols  map[*volume.Physical]string
	surfaces  map[*optical.Surface]string
}

func newBuilder() *builder {
	return &builder{
		doc: &Document{XSI: schemaInstance, Schema: schemaLocation},

		isotopeNames:  namer{},
		elementNames:  namer{},
		materialNames: namer{},
		solidNames:    namer{},
		volumeNames:   namer{},
		physNames:     namer{},
		defineNames:   namer{},
		surfaceNames:  namer{},

		isotopes:  map[material.Isotope]string{},
		elements:  map[*material.Element]string{},
		materials: map[*material.Material]string{},
		solids:    map[solid.Solid]string{},
		volumes:   map[*volume.Logical]string{},
		physvols:  map[*volume.Physical]string{},
		surfaces:  map[*optical.Surface]string{},
	}
}

// Build converts the tree placed by world, and the optical surfaces in
// store (may be nil), into a document.
func Build(world *volume.Physical, store *volume.SurfaceStore) (*Document, error) {
	if world == nil || world.Logical == nil {
		return nil, fmt.Errorf("gdml: world volume is not set")
	}
	b := newBuilder()
	for _, l := range volume.LogicalVolumes(world.Logical) {
		if err := b.addVolume(l); err != nil {
			return nil, err
		}
	}
	if store != nil {
		if err := b.addSurfaces(store); err != nil {
			return nil, err
		}
	}
	b.doc.Setup = Setup{Name: "Default", Version: "1.0", World: Ref{Ref: b.volumes[world.Logical]}}
	log.Debugf("Exported %d volumes, %d solids, %d materials",
		len(b.doc.Structure.Volumes), len(b.solids), len(b.materials))
	return b.doc, nil
}

// Write encodes the document with an XML header.
func Write(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Export builds and writes the document.
func Export(w io.Writer, world *volume.Physical, store *volume.SurfaceStore) error {
	doc, err := Build(world, store)
	if err != nil {
		return err
	}
	return Write(w, doc)
}

// addVolume expects every daughter logical volume to be added already.
func (b *builder) addVolume(l *volume.Logical) error {
	materialRef, err := b.addMaterial(l.Material)
	if err != nil {
		return err
	}
	solidRef, err := b.addSolid(l.Solid)
	if err != nil {
		return err
	}
	v := Volume{
		Name:        b.volumeNames.unique(l.Name),
		MaterialRef: Ref{Ref: materialRef},
		SolidRef:    Ref{Ref: solidRef},
	}
	for _, d := range l.Daughters() {
		ref, ok := b.volumes[d.Logical]
		if !ok {
			return fmt.Errorf("gdml: volume %s is placed before it is defined", d.Logical.Name)
		}
		v.PhysVols = append(v.PhysVols, b.addPhysVol(d, ref))
	}
	if sd := l.Sensitive; sd != nil {
		v.Auxiliary = append(v.Auxiliary, Auxiliary{Type: "SensDet", Value: sd.Name})
	}
	b.volumes[l] = v.Name
	b.doc.Structure.Volumes = append(b.doc.Structure.Volumes, v)
	return nil
}

func (b *builder) addPhysVol(p *volume.Physical, volumeRef string) PhysVol {
	name := b.physNames.unique(p.Name)
	b.physvols[p] = name
	pv := PhysVol{Name: name, CopyNumber: p.CopyNo, VolumeRef: Ref{Ref: volumeRef}}
	if t := p.Transform.Translation; t != geometry.Origin {
		pos := Position{Name: b.defineNames.unique(name + "_pos"), X: t.X, Y: t.Y, Z: t.Z, Unit: lengthUnit}
		b.doc.Define.Positions = append(b.doc.Define.Positions, pos)
		pv.PositionRef = &Ref{Ref: pos.Name}
	}
	if r := p.Transform.Rotation; !r.IsIdentity() {
		x, y, z := frameAngles(r)
		rot := Rotation{Name: b.defineNames.unique(name + "_rot"), X: x, Y: y, Z: z, Unit: angleUnit}
		b.doc.Define.Rotations = append(b.doc.Define.Rotations, rot)
		pv.RotationRef = &Ref{Ref: rot.Name}
	}
	return pv
}

// frameAngles returns the angles of the frame rotation, the inverse of the
// placement rotation, decomposed as Rz(z)*Ry(y)*Rx(x).
func frameAngles(r geometry.Rotation) (x, y, z float64) {
	m := r.Inverse().M
	if math.Abs(m[2][0]) < 1-1e-12 {
		y = -math.Asin(m[2][0])
		x = math.Atan2(m[2][1], m[2][2])
		z = math.Atan2(m[1][0], m[0][0])
		return x, y, z
	}
	// gimbal lock, x and z rotate about the same axis
	y = -math.Copysign(math.Pi/2, m[2][0])
	z = math.Atan2(-m[0][1], m[1][1])
	return 0, y, z
}

func (b *builder) addSolid(s solid.Solid) (string, error) {
	if name, ok := b.solids[s]; ok {
		return name, nil
	}
	name := b.solidNames.unique(s.Name())
	switch s := s.(type) {
	case *solid.Box:
		b.doc.Solids.Boxes = append(b.doc.Solids.Boxes, Box{
			Name: name, X: 2 * s.HalfX, Y: 2 * s.HalfY, Z: 2 * s.HalfZ, LUnit: lengthUnit,
		})
	case *solid.Tubs:
		b.doc.Solids.Tubes = append(b.doc.Solids.Tubes, Tube{
			Name:     name,
			RMin:     s.RMin,
			RMax:     s.RMax,
			Z:        2 * s.HalfZ,
			StartPhi: s.StartPhi,
			DeltaPhi: s.DeltaPhi,
			AUnit:    angleUnit,
			LUnit:    lengthUnit,
		})
	default:
		return "", fmt.Errorf("gdml: unsupported solid %T", s)
	}
	b.solids[s] = name
	return name, nil
}

func (b *builder) addMaterial(m *material.Material) (string, error) {
	if name, ok := b.materials[m]; ok {
		return name, nil
	}
	out := Material{
		Name:        b.materialNames.unique(m.Name),
		State:       m.State.String(),
		Temperature: Quantity{Value: m.Temperature / units.Kelvin, Unit: "K"},
		Pressure:    Quantity{Value: m.Pressure / units.Pascal, Unit: "pascal"},
		Density:     Quantity{Value: m.Density / (units.Gram / units.Centimeter3), Unit: densityUnit},
	}
	for _, c := range m.Components {
		ref, err := b.addElement(c.Element)
		if err != nil {
			return "", fmt.Errorf("gdml: material %s: %w", m.Name, err)
		}
		out.Fractions = append(out.Fractions, Fraction{N: c.MassFraction, Ref: ref})
	}
	b.materials[m] = out.Name
	b.doc.Materials.Materials = append(b.doc.Materials.Materials, out)
	return out.Name, nil
}

func (b *builder) addElement(e *material.Element) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil element")
	}
	if name, ok := b.elements[e]; ok {
		return name, nil
	}
	out := Element{Name: b.elementNames.unique(e.Name)}
	if len(e.Isotopes) == 0 {
		out.Formula = e.Symbol
		out.Z = e.Z
		out.Atom = &Quantity{Value: e.MolarMass, Unit: "g/mole"}
	}
	for _, iso := range e.Isotopes {
		out.Fractions = append(out.Fractions, Fraction{N: iso.Abundance, Ref: b.addIsotope(iso.Isotope)})
	}
	b.elements[e] = out.Name
	b.doc.Materials.Elements = append(b.doc.Materials.Elements, out)
	return out.Name, nil
}

func (b *builder) addIsotope(iso material.Isotope) string {
	if name, ok := b.isotopes[iso]; ok {
		return name
	}
	name := b.isotopeNames.unique(iso.Name)
	b.isotopes[iso] = name
	b.doc.Materials.Isotopes = append(b.doc.Materials.Isotopes, Isotope{
		Name: name,
		N:    iso.N,
		Z:    iso.Z,
		Atom: Quantity{Value: iso.A, Unit: "g/mole"},
	})
	return name
}

func (b *builder) addOpticalSurface(s *optical.Surface) string {
	if name, ok := b.surfaces[s]; ok {
		return name
	}
	name := b.surfaceNames.unique(s.Name)
	b.surfaces[s] = name
	b.doc.Solids.OpticalSurfaces = append(b.doc.Solids.OpticalSurfaces, OpticalSurface{
		Name:   name,
		Model:  s.Model.String(),
		Finish: s.Finish.String(),
		Type:   s.Type.String(),
		Value:  s.Value,
	})
	return name
}

func (b *builder) addSurfaces(store *volume.SurfaceStore) error {
	for _, skin := range store.Skins() {
		ref, ok := b.volumes[skin.Logical]
		if !ok {
			return fmt.Errorf("gdml: skin surface %s wraps a volume outside the world", skin.Name)
		}
		b.doc.Structure.SkinSurfaces = append(b.doc.Structure.SkinSurfaces, SkinSurface{
			Name:            skin.Name,
			SurfaceProperty: b.addOpticalSurface(skin.Surface),
			VolumeRef:       Ref{Ref: ref},
		})
	}
	for _, border := range store.Borders() {
		first, firstOk := b.physvols[border.First]
		second, secondOk := b.physvols[border.Second]
		if !firstOk || !secondOk {
			return fmt.Errorf("gdml: border surface %s joins a volume outside the world", border.Name)
		}
		b.doc.Structure.BorderSurfaces = append(b.doc.Structure.BorderSurfaces, BorderSurface{
			Name:            border.Name,
			SurfaceProperty: b.addOpticalSurface(border.Surface),
			PhysVolRefs:     []Ref{{Ref: first}, {Ref: second}},
		})
	}
	return nil
}
