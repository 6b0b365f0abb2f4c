package stickr

import "math"

// Matrix is a 3x3 projective matrix for 2D points, stored row-major:
//
//	| m[0] m[1] m[2] |     x' = (m[0]*x + m[1]*y + m[2]) / w
//	| m[3] m[4] m[5] |     y' = (m[3]*x + m[4]*y + m[5]) / w
//	| m[6] m[7] m[8] |     w  =  m[6]*x + m[7]*y + m[8]
//
// The bottom row is (0, 0, 1) for affine matrices; tilt fills it with
// perspective terms.
type Matrix [9]float64

// Identity is the identity matrix.
var Identity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Translation returns a matrix translating by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy, 0, 0, 1}
}

// Scaling returns a matrix scaling uniformly by s about (px, py).
func Scaling(s, px, py float64) Matrix {
	return Matrix{s, 0, px - s*px, 0, s, py - s*py, 0, 0, 1}
}

// Rotation returns a matrix rotating by deg degrees about (px, py).
// Positive angles turn clockwise on screen (Y down).
func Rotation(deg, px, py float64) Matrix {
	sin, cos := math.Sincos(degToRad(deg))
	return Matrix{
		cos, -sin, px - cos*px + sin*py,
		sin, cos, py - sin*px - cos*py,
		0, 0, 1,
	}
}

// Mul returns m * o. Applied to a point, o acts first.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*o[col] + m[row*3+1]*o[3+col] + m[row*3+2]*o[6+col]
		}
	}
	return r
}

// Map applies the matrix to a point. A point that projects to infinity
// (w == 0) maps to itself.
func (m Matrix) Map(x, y float64) (float64, float64) {
	w := m[6]*x + m[7]*y + m[8]
	if w > -1e-12 && w < 1e-12 {
		return x, y
	}
	return (m[0]*x + m[1]*y + m[2]) / w, (m[3]*x + m[4]*y + m[5]) / w
}

// MapVec is Map for a Vec2.
func (m Matrix) MapVec(v Vec2) Vec2 {
	x, y := m.Map(v.X, v.Y)
	return Vec2{x, y}
}

// IsAffine reports whether the matrix has no perspective terms.
func (m Matrix) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// Affine returns the top two rows in column order [a, b, c, d, tx, ty], where
// x' = a*x + c*y + tx and y' = b*x + d*y + ty. Only meaningful when IsAffine.
func (m Matrix) Affine() [6]float64 {
	return [6]float64{m[0], m[3], m[1], m[4], m[2], m[5]}
}
