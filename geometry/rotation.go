package geometry

import "math"

// Rotation is a 3x3 row-major rotation matrix.
type Rotation struct {
	M [3][3]float64
}

// Identity rotation.
func Identity() Rotation {
	return Rotation{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func rotX(a float64) Rotation {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity()
	R.M[1][1], R.M[1][2] = c, -s
	R.M[2][1], R.M[2][2] = s, c
	return R
}

func rotY(a float64) Rotation {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity()
	R.M[0][0], R.M[0][2] = c, s
	R.M[2][0], R.M[2][2] = -s, c
	return R
}

func rotZ(a float64) Rotation {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity()
	R.M[0][0], R.M[0][1] = c, -s
	R.M[1][0], R.M[1][1] = s, c
	return R
}

// RotateX returns the rotation followed by a rotation of angle a about x.
func (A Rotation) RotateX(a float64) Rotation { return rotX(a).Mul(A) }

// RotateY returns the rotation followed by a rotation of angle a about y.
func (A Rotation) RotateY(a float64) Rotation { return rotY(a).Mul(A) }

// RotateZ returns the rotation followed by a rotation of angle a about z.
func (A Rotation) RotateZ(a float64) Rotation { return rotZ(a).Mul(A) }

func (A Rotation) Mul(B Rotation) Rotation {
	var R Rotation
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

// Inverse of a rotation is its transpose.
func (A Rotation) Inverse() Rotation {
	var R Rotation
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Apply rotates a point.
func (A Rotation) Apply(p Point) Point {
	return Point{
		A.M[0][0]*p.X + A.M[0][1]*p.Y + A.M[0][2]*p.Z,
		A.M[1][0]*p.X + A.M[1][1]*p.Y + A.M[1][2]*p.Z,
		A.M[2][0]*p.X + A.M[2][1]*p.Y + A.M[2][2]*p.Z,
	}
}

// IsIdentity reports whether the rotation is the identity within tolerance.
func (A Rotation) IsIdentity() bool {
	I := Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(A.M[r][c]-I.M[r][c]) > 1e-12 {
				return false
			}
		}
	}
	return true
}

// Transform places a local frame in its mother frame:
// mother = Rotation.Apply(local) + Translation.
type Transform struct {
	Rotation    Rotation `json:"rotation"`
	Translation Point    `json:"translation"`
}

// Translate returns a pure translation.
func Translate(p Point) Transform {
	return Transform{Rotation: Identity(), Translation: p}
}

// Apply maps a local point to the mother frame.
func (t Transform) Apply(p Point) Point {
	return t.Rotation.Apply(p).Add(t.Translation)
}

// Inverse maps mother frame points back to the local frame.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse()
	return Transform{Rotation: inv, Translation: inv.Apply(t.Translation).Scale(-1)}
}

// Compose returns the transform applying inner first, then t.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul(inner.Rotation),
		Translation: t.Apply(inner.Translation),
	}
}
