package stickr

import (
	"io"

	"github.com/charmbracelet/log"
)

// TransformState is the cumulative transform of the element. It is owned and
// mutated only by an Accumulator; everything else reads copies of it.
type TransformState struct {
	Translation Vec2

	// Scale stays within the configured [MinScale, MaxScale].
	Scale float64

	// Rotation is the in-plane rotation in degrees. Unbounded.
	Rotation float64

	// TiltX and TiltY are perspective tilts in degrees, clamped to
	// [-TiltBound, TiltBound].
	TiltX, TiltY float64

	// Corners are offsets added to the element's corners by the handles,
	// indexed by PointKind.
	Corners [numPointKinds]Vec2

	rotationInitialized bool
	rotationReference   float64
}

// NewTransformState returns the identity transform.
func NewTransformState() TransformState {
	return TransformState{Scale: 1}
}

// RotationInitialized reports whether a rotation baseline is captured for
// the current two-pointer contact.
func (s TransformState) RotationInitialized() bool { return s.rotationInitialized }

// RotationReference returns the captured baseline angle in degrees.
func (s TransformState) RotationReference() float64 { return s.rotationReference }

// TransformObserver receives drag deltas from the corner handle widgets.
type TransformObserver interface {
	OnPointMoved(kind PointKind, dx, dy float64)
}

// Accumulator applies estimator output to a TransformState with clamping.
// No operation fails; out-of-range input is clamped and non-finite input is
// dropped. Every mutation requests a redraw.
type Accumulator struct {
	cfg    Config
	state  TransformState
	mode   GestureMode
	redraw func()
	logger *log.Logger
}

var _ TransformObserver = (*Accumulator)(nil)

// NewAccumulator returns an accumulator holding the identity transform.
// redraw may be nil.
func NewAccumulator(cfg Config, redraw func()) *Accumulator {
	return &Accumulator{
		cfg:    cfg,
		state:  NewTransformState(),
		redraw: redraw,
		logger: log.New(io.Discard),
	}
}

// SetLogger replaces the logger used for clamp and drop diagnostics.
func (a *Accumulator) SetLogger(l *log.Logger) {
	if l != nil {
		a.logger = l
	}
}

// State returns a copy of the current transform.
func (a *Accumulator) State() TransformState { return a.state }

// Mode returns the gesture mode whose output was applied last.
func (a *Accumulator) Mode() GestureMode { return a.mode }

func (a *Accumulator) changed(m GestureMode) {
	a.mode = m
	if a.redraw != nil {
		a.redraw()
	}
}

// ApplyTranslate adds (dx, dy) to the translation.
func (a *Accumulator) ApplyTranslate(dx, dy float64) {
	if !finite(dx, dy) {
		a.logger.Debug("dropped translate", "dx", dx, "dy", dy)
		return
	}
	a.state.Translation.X += dx
	a.state.Translation.Y += dy
	a.changed(ModeTranslate)
}

// ApplyScale multiplies the scale by factor and clamps the result.
func (a *Accumulator) ApplyScale(factor float64) {
	if !finite(factor) || factor <= 0 {
		a.logger.Debug("dropped scale", "factor", factor)
		return
	}
	s := a.state.Scale * factor
	a.state.Scale = clamp(s, a.cfg.MinScale, a.cfg.MaxScale)
	if a.state.Scale != s {
		a.logger.Debug("clamped scale", "want", s, "got", a.state.Scale)
	}
	a.changed(ModeScale)
}

// ApplyRotation sets the in-plane rotation to angle degrees.
func (a *Accumulator) ApplyRotation(angle float64) {
	if !finite(angle) {
		a.logger.Debug("dropped rotation", "angle", angle)
		return
	}
	a.state.Rotation = angle
	a.changed(ModeRotate)
}

// ApplyTiltX adds delta/TiltSlowFactor to the X tilt and clamps it.
func (a *Accumulator) ApplyTiltX(delta float64) {
	a.applyTilt(&a.state.TiltX, AxisX, delta)
}

// ApplyTiltY adds delta/TiltSlowFactor to the Y tilt and clamps it.
func (a *Accumulator) ApplyTiltY(delta float64) {
	a.applyTilt(&a.state.TiltY, AxisY, delta)
}

func (a *Accumulator) applyTilt(field *float64, axis Axis, delta float64) {
	if !finite(delta) {
		a.logger.Debug("dropped tilt", "axis", axis, "delta", delta)
		return
	}
	t := *field + delta/a.cfg.TiltSlowFactor
	*field = clamp(t, -a.cfg.TiltBound, a.cfg.TiltBound)
	if *field != t {
		a.logger.Debug("clamped tilt", "axis", axis, "want", t, "got", *field)
	}
	a.changed(ModeTilt)
}

// ApplyPointerAngle feeds the current inter-pointer angle. The first call
// after ResetRotationBaseline captures the baseline and applies nothing;
// later calls set the rotation to the angle relative to the baseline.
func (a *Accumulator) ApplyPointerAngle(angle float64) {
	if !finite(angle) {
		return
	}
	if !a.state.rotationInitialized {
		a.state.rotationReference = angle
		a.state.rotationInitialized = true
		a.logger.Debug("captured rotation baseline", "angle", angle, "reference", a.state.rotationReference)
		return
	}
	if rot := angle - a.state.rotationReference; rot != a.state.Rotation {
		a.ApplyRotation(rot)
	}
}

// ResetRotationBaseline forces the next ApplyPointerAngle to recapture the
// baseline. Called whenever a new two-pointer contact starts.
func (a *Accumulator) ResetRotationBaseline() {
	a.state.rotationInitialized = false
}

// OnPointMoved moves one corner of the element by (dx, dy).
func (a *Accumulator) OnPointMoved(kind PointKind, dx, dy float64) {
	if kind >= numPointKinds || !finite(dx, dy) {
		a.logger.Debug("dropped corner move", "kind", kind, "dx", dx, "dy", dy)
		return
	}
	a.state.Corners[kind].X += dx
	a.state.Corners[kind].Y += dy
	if a.redraw != nil {
		a.redraw()
	}
}
