// Package gdml exports a constructed volume tree as a GDML document.
package gdml

import "encoding/xml"

const (
	schemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://service-spi.web.cern.ch/service-spi/app/releases/GDML/schema/gdml.xsd"
)

// Document is the root <gdml> element.
type Document struct {
	XMLName   xml.Name  `xml:"gdml"`
	XSI       string    `xml:"xmlns:xsi,attr"`
	Schema    string    `xml:"xsi:noNamespaceSchemaLocation,attr"`
	Define    Define    `xml:"define"`
	Materials Materials `xml:"materials"`
	Solids    Solids    `xml:"solids"`
	Structure Structure `xml:"structure"`
	Setup     Setup     `xml:"setup"`
}

// Define holds named positions and rotations.
type Define struct {
	Positions []Position `xml:"position"`
	Rotations []Rotation `xml:"rotation"`
}

type Position struct {
	Name string  `xml:"name,attr"`
	X    float64 `xml:"x,attr"`
	Y    float64 `xml:"y,attr"`
	Z    float64 `xml:"z,attr"`
	Unit string  `xml:"unit,attr"`
}

// Rotation angles are applied about x, then y, then z, to the frame.
type Rotation struct {
	Name string  `xml:"name,attr"`
	X    float64 `xml:"x,attr"`
	Y    float64 `xml:"y,attr"`
	Z    float64 `xml:"z,attr"`
	Unit string  `xml:"unit,attr"`
}

type Materials struct {
	Isotopes  []Isotope  `xml:"isotope"`
	Elements  []Element  `xml:"element"`
	Materials []Material `xml:"material"`
}

type Quantity struct {
	Value float64 `xml:"value,attr"`
	Unit  string  `xml:"unit,attr,omitempty"`
}

type Isotope struct {
	Name string   `xml:"name,attr"`
	N    int      `xml:"N,attr"`
	Z    int      `xml:"Z,attr"`
	Atom Quantity `xml:"atom"`
}

type Fraction struct {
	N   float64 `xml:"n,attr"`
	Ref string  `xml:"ref,attr"`
}

// Element is either given by Z and atomic mass or by isotope fractions.
type Element struct {
	Name      string     `xml:"name,attr"`
	Formula   string     `xml:"formula,attr,omitempty"`
	Z         int        `xml:"Z,attr,omitempty"`
	Atom      *Quantity  `xml:"atom,omitempty"`
	Fractions []Fraction `xml:"fraction"`
}

type Material struct {
	Name        string     `xml:"name,attr"`
	State       string     `xml:"state,attr"`
	Temperature Quantity   `xml:"T"`
	Pressure    Quantity   `xml:"P"`
	Density     Quantity   `xml:"D"`
	Fractions   []Fraction `xml:"fraction"`
}

type Solids struct {
	Boxes           []Box            `xml:"box"`
	Tubes           []Tube           `xml:"tube"`
	OpticalSurfaces []OpticalSurface `xml:"opticalsurface"`
}

// Box sizes are full lengths.
type Box struct {
	Name  string  `xml:"name,attr"`
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Z     float64 `xml:"z,attr"`
	LUnit string  `xml:"lunit,attr"`
}

// Tube length Z is the full length.
type Tube struct {
	Name     string  `xml:"name,attr"`
	RMin     float64 `xml:"rmin,attr"`
	RMax     float64 `xml:"rmax,attr"`
	Z        float64 `xml:"z,attr"`
	StartPhi float64 `xml:"startphi,attr"`
	DeltaPhi float64 `xml:"deltaphi,attr"`
	AUnit    string  `xml:"aunit,attr"`
	LUnit    string  `xml:"lunit,attr"`
}

type OpticalSurface struct {
	Name   string  `xml:"name,attr"`
	Model  string  `xml:"model,attr"`
	Finish string  `xml:"finish,attr"`
	Type   string  `xml:"type,attr"`
	Value  float64 `xml:"value,attr"`
}

type Ref struct {
	Ref string `xml:"ref,attr"`
}

type Auxiliary struct {
	Type  string `xml:"auxtype,attr"`
	Value string `xml:"auxvalue,attr"`
}

type PhysVol struct {
	Name        string `xml:"name,attr"`
	CopyNumber  int    `xml:"copynumber,attr"`
	VolumeRef   Ref    `xml:"volumeref"`
	PositionRef *Ref   `xml:"positionref,omitempty"`
	RotationRef *Ref   `xml:"rotationref,omitempty"`
}

type Volume struct {
	Name        string      `xml:"name,attr"`
	MaterialRef Ref         `xml:"materialref"`
	SolidRef    Ref         `xml:"solidref"`
	PhysVols    []PhysVol   `xml:"physvol"`
	Auxiliary   []Auxiliary `xml:"auxiliary"`
}

type SkinSurface struct {
	Name            string `xml:"name,attr"`
	SurfaceProperty string `xml:"surfaceproperty,attr"`
	VolumeRef       Ref    `xml:"volumeref"`
}

type BorderSurface struct {
	Name            string `xml:"name,attr"`
	SurfaceProperty string `xml:"surfaceproperty,attr"`
	PhysVolRefs     []Ref  `xml:"physvolref"`
}

// Structure lists volumes so that every referenced volume comes first.
type Structure struct {
	Volumes        []Volume        `xml:"volume"`
	SkinSurfaces   []SkinSurface   `xml:"skinsurface"`
	BorderSurfaces []BorderSurface `xml:"bordersurface"`
}

type Setup struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
	World   Ref    `xml:"world"`
}
