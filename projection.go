package stickr

import "github.com/go-gl/mathgl/mgl64"

// Quad holds the four on-screen corners of the element, indexed by
// PointKind.
type Quad [numPointKinds]Vec2

// Bounds returns the axis-aligned bounding box of the quad.
func (q Quad) Bounds() Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Compositor turns a TransformState into a render matrix.
type Compositor struct {
	cameraDistance float64
}

// NewCompositor returns a compositor using the camera distance from cfg.
func NewCompositor(cfg Config) Compositor {
	d := cfg.CameraDistance
	if d <= 0 {
		d = DefaultCameraDistance
	}
	return Compositor{cameraDistance: d}
}

// TiltMatrix rotates a virtual camera by tiltX degrees about the X axis and
// tiltY degrees about the Y axis, then projects the plane z=0 back onto the
// screen. The projection is centred on pivot.
func (c Compositor) TiltMatrix(tiltX, tiltY float64, pivot Vec2) Matrix {
	if tiltX == 0 && tiltY == 0 {
		return Identity
	}
	r := mgl64.Rotate3DX(degToRad(tiltX)).Mul3(mgl64.Rotate3DY(degToRad(tiltY)))

	// A point (x, y, 0) lands at (X, Y, Z) = r * (x, y, 0) and projects to
	// (X, Y) * d / (d + Z).
	d := c.cameraDistance
	proj := Matrix{
		r.At(0, 0), r.At(0, 1), 0,
		r.At(1, 0), r.At(1, 1), 0,
		r.At(2, 0) / d, r.At(2, 1) / d, 1,
	}
	return Translation(pivot.X, pivot.Y).Mul(proj).Mul(Translation(-pivot.X, -pivot.Y))
}

// Compose builds the render matrix for st about pivot. The order is fixed:
// translate, scale about the pivot, rotate about the pivot, then the tilt
// projection, each right-multiplied onto the previous.
func (c Compositor) Compose(st TransformState, pivot Vec2) Matrix {
	m := Identity.Mul(Translation(st.Translation.X, st.Translation.Y))
	m = m.Mul(Scaling(st.Scale, pivot.X, pivot.Y))
	m = m.Mul(Rotation(st.Rotation, pivot.X, pivot.Y))
	return m.Mul(c.TiltMatrix(st.TiltX, st.TiltY, pivot))
}

// Quad maps the corners of bounds, displaced by the state's corner offsets,
// through the composed matrix. The pivot is the center of bounds.
func (c Compositor) Quad(st TransformState, bounds Rect) Quad {
	m := c.Compose(st, bounds.Center())
	var q Quad
	for k := PointKind(0); k < numPointKinds; k++ {
		q[k] = m.MapVec(bounds.Corner(k).Add(st.Corners[k]))
	}
	return q
}
