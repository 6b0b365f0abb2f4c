package stickr

import "math"

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the geometric center of the rectangle. The engine uses it
// as the pivot for scale, rotation and tilt.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Corner returns the position of the given corner.
func (r Rect) Corner(k PointKind) Vec2 {
	switch k {
	case TopRight:
		return Vec2{r.X + r.Width, r.Y}
	case BottomLeft:
		return Vec2{r.X, r.Y + r.Height}
	case BottomRight:
		return Vec2{r.X + r.Width, r.Y + r.Height}
	default:
		return Vec2{r.X, r.Y}
	}
}

// PointerID identifies a physical contact for the duration of its press.
type PointerID int

// InvalidPointer marks an empty tracking slot.
const InvalidPointer PointerID = -1

// PointKind identifies one of the four corner handles of the element.
type PointKind uint8

const (
	TopLeft     PointKind = iota // top-left corner handle
	TopRight                     // top-right corner handle
	BottomLeft                   // bottom-left corner handle
	BottomRight                  // bottom-right corner handle

	numPointKinds = 4
)

var pointKindNames = [numPointKinds]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (k PointKind) String() string {
	if int(k) < len(pointKindNames) {
		return pointKindNames[k]
	}
	return "unknown"
}

// GestureMode classifies what a frame of pointer motion was interpreted as.
// It is derived from the pointer count and span every frame and never
// latched across frames.
type GestureMode uint8

const (
	ModeIdle      GestureMode = iota // no tracked pointer
	ModeTranslate                    // single pointer drags the element
	ModeScale                        // two pointers spread wide apart vertically
	ModeTilt                         // two pointers close together; first pointer tilts
	ModeRotate                       // two pointers; only the angle between them changed
)

var gestureModeNames = [...]string{"idle", "translate", "scale", "tilt", "rotate"}

func (m GestureMode) String() string {
	if int(m) < len(gestureModeNames) {
		return gestureModeNames[m]
	}
	return "unknown"
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
