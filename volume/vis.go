package volume

// RGB colour, channels in [0,1].
type RGB struct {
	R, G, B float64
}

// VisAttributes control visualization of a logical volume.
type VisAttributes struct {
	Visible bool `json:"visible"`
	Colour  RGB  `json:"colour"`
}

// Invisible attributes.
func Invisible() VisAttributes { return VisAttributes{Visible: false} }

// Visible attributes with white colour.
func Visible() VisAttributes { return VisAttributes{Visible: true, Colour: RGB{1, 1, 1}} }

func Blue() VisAttributes      { return VisAttributes{Visible: true, Colour: RGB{0, 0, 1}} }
func LightBlue() VisAttributes { return VisAttributes{Visible: true, Colour: RGB{.6, .8, .79}} }
func Red() VisAttributes       { return VisAttributes{Visible: true, Colour: RGB{1, 0, 0}} }
func CopperBrown() VisAttributes {
	return VisAttributes{Visible: true, Colour: RGB{.72, .45, .20}}
}
