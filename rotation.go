package stickr

import "math"

// Axis selects which tilt field a delta is applied to.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX         // tilt about the horizontal axis, driven by vertical motion
	AxisY         // tilt about the vertical axis, driven by horizontal motion
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// PointerAngle returns the angle in degrees of the vector from the first to
// the second pointer. ok is false when fewer than two pointers are tracked.
func PointerAngle(f Frame) (deg float64, ok bool) {
	if f.Count < 2 {
		return 0, false
	}
	d := f.Second.Cur.Sub(f.First.Cur)
	return radToDeg(math.Atan2(d.Y, d.X)), true
}

// EstimateTilt picks the dominant axis of a pointer delta. Vertical motion
// tilts about X, anything else tilts about Y. The returned delta is raw; the
// accumulator applies the slow-down factor.
func EstimateTilt(d Vec2) (Axis, float64) {
	if math.Abs(d.Y) > math.Abs(d.X) {
		return AxisX, d.Y
	}
	if d.X == 0 {
		return AxisNone, 0
	}
	return AxisY, d.X
}
