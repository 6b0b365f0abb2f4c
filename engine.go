package stickr

import (
	"os"

	"github.com/charmbracelet/log"
)

// Engine turns a stream of touch events into the transform of a single
// element. It is not safe for concurrent use; feed events and draw from the
// same goroutine.
type Engine struct {
	cfg     Config
	tracker *Tracker
	acc     *Accumulator
	comp    Compositor
	handles []*Handle

	bounds   Rect
	mode     GestureMode
	dirty    bool
	onRedraw func()

	logger *log.Logger
	debug  bool
}

// New creates an engine for cfg. The element bounds start empty; call
// SetBounds once the host has laid the element out.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		tracker: NewTracker(),
		comp:    NewCompositor(cfg),
		logger:  newLogger(os.Stderr, log.InfoLevel),
	}
	e.acc = NewAccumulator(cfg, e.requestRedraw)
	e.acc.SetLogger(e.logger)
	if cfg.HandleRadius > 0 {
		for k := PointKind(0); k < numPointKinds; k++ {
			e.handles = append(e.handles, NewHandle(k, cfg.HandleRadius, e.acc))
		}
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// State returns a copy of the accumulated transform.
func (e *Engine) State() TransformState { return e.acc.State() }

// Mode returns the gesture mode derived for the most recent event.
func (e *Engine) Mode() GestureMode { return e.mode }

// Pointers returns the ids of the first and second tracked pointers.
func (e *Engine) Pointers() (first, second PointerID) {
	return e.tracker.First(), e.tracker.Second()
}

// Handles returns the corner handles, or nil when they are disabled.
// The returned slice MUST NOT be mutated.
func (e *Engine) Handles() []*Handle { return e.handles }

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	e.logger = l
	e.acc.SetLogger(l)
	if e.debug {
		l.SetLevel(log.DebugLevel)
	}
}

// SetDebugMode enables or disables debug logging of ignored events, baseline
// captures and clamps.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled {
		e.logger.SetLevel(log.DebugLevel)
	} else {
		e.logger.SetLevel(log.InfoLevel)
	}
}

// OnRedraw registers a callback fired on every transform change. Multiple
// requests within a frame are expected; hosts may coalesce them.
func (e *Engine) OnRedraw(fn func()) { e.onRedraw = fn }

// ConsumeRedraw reports whether anything changed since the last call and
// clears the flag.
func (e *Engine) ConsumeRedraw() bool {
	d := e.dirty
	e.dirty = false
	return d
}

func (e *Engine) requestRedraw() {
	e.dirty = true
	if e.onRedraw != nil {
		e.onRedraw()
	}
}

// SetBounds sets the element's untransformed screen bounds. Their center is
// the pivot for scale, rotation and tilt.
func (e *Engine) SetBounds(r Rect) {
	if r == e.bounds {
		return
	}
	e.bounds = r
	e.requestRedraw()
}

// Bounds returns the element's untransformed screen bounds.
func (e *Engine) Bounds() Rect { return e.bounds }

// Matrix returns the render matrix for the current state.
func (e *Engine) Matrix() Matrix {
	return e.comp.Compose(e.acc.State(), e.bounds.Center())
}

// Quad returns the element's on-screen corners for the current state and
// moves idle handles onto them.
func (e *Engine) Quad() Quad {
	q := e.comp.Quad(e.acc.State(), e.bounds)
	for _, h := range e.handles {
		if !h.Active() {
			h.Pos = q[h.Kind]
		}
	}
	return q
}

// HandleEvent processes one touch event. Events that reference untracked
// pointers are ignored.
func (e *Engine) HandleEvent(ev TouchEvent) {
	switch ev.Kind {
	case EventCancel:
		for _, h := range e.handles {
			h.HandleEvent(ev)
		}
		e.tracker.Reset()
		e.mode = ModeIdle
		e.logger.Debug("gesture cancelled")
		return

	case EventDown, EventPointerDown, EventUp, EventPointerUp:
		pressed := ev.Kind == EventDown || ev.Kind == EventPointerDown
		if pressed {
			if e.bounds.Width <= 0 || e.bounds.Height <= 0 {
				break
			}
			e.Quad()
		}
		for _, h := range e.handles {
			if h.HandleEvent(ev) {
				e.logger.Debug("handle event", "handle", h.Kind, "event", ev)
				return
			}
		}

	case EventMove:
		for _, h := range e.handles {
			h.HandleEvent(ev)
		}
	}

	f, ok := e.tracker.Handle(e.withoutHandlePointers(ev))
	if !ok {
		if ev.Kind != EventMove || !e.handleOwnsMove(ev) {
			e.logger.Debug("ignored event", "event", ev)
		}
		return
	}
	if f.NewContact {
		e.acc.ResetRotationBaseline()
	}
	e.apply(ev.Kind, f)
}

// withoutHandlePointers drops pointers held by handles from ev so the tracker
// never adopts one, e.g. when promoting after the first pointer lifts.
func (e *Engine) withoutHandlePointers(ev TouchEvent) TouchEvent {
	held := false
	for _, h := range e.handles {
		if h.Active() {
			held = true
			break
		}
	}
	if !held {
		return ev
	}
	pts := make([]PointerSample, 0, len(ev.Pointers))
	for _, p := range ev.Pointers {
		if !e.handleOwns(p.ID) {
			pts = append(pts, p)
		}
	}
	ev.Pointers = pts
	return ev
}

func (e *Engine) handleOwns(id PointerID) bool {
	for _, h := range e.handles {
		if h.Active() && h.Pointer() == id {
			return true
		}
	}
	return false
}

func (e *Engine) handleOwnsMove(ev TouchEvent) bool {
	for _, h := range e.handles {
		if _, ok := ev.Sample(h.Pointer()); ok && h.Active() {
			return true
		}
	}
	return false
}

// apply routes one tracker frame to the estimators and the accumulator.
func (e *Engine) apply(kind EventKind, f Frame) {
	switch f.Count {
	case 0:
		e.mode = ModeIdle
		return
	case 1:
		e.mode = ModeTranslate
		if kind != EventMove {
			return
		}
		if d := f.First.Delta(); d != (Vec2{}) {
			e.acc.ApplyTranslate(d.X, d.Y)
		}
		return
	}

	if angle, ok := PointerAngle(f); ok {
		e.acc.ApplyPointerAngle(angle)
	}
	est, _ := EstimateScale(f)
	d := f.First.Delta()
	switch {
	case est.Wide(e.cfg.ScaleSpanThreshold):
		e.mode = ModeScale
	case d != (Vec2{}):
		e.mode = ModeTilt
	default:
		e.mode = ModeRotate
	}
	if kind != EventMove {
		return
	}

	if e.mode == ModeScale {
		if est.Factor != 1 {
			e.acc.ApplyScale(est.Factor)
		}
		return
	}
	switch axis, delta := EstimateTilt(d); axis {
	case AxisX:
		e.acc.ApplyTiltX(delta)
	case AxisY:
		e.acc.ApplyTiltY(delta)
	}
}
