package stickr

// Handle is a draggable corner point widget. It tracks its own pointer and
// reports every drag delta to its observer, which moves the matching corner
// of the element.
type Handle struct {
	Kind PointKind

	// Pos is the on-screen center of the handle. The engine keeps it on the
	// mapped corner between drags; while dragging it follows the pointer.
	Pos Vec2

	// Radius is the touch radius around Pos.
	Radius float64

	// Offset is the cumulative drag distance since the handle was created.
	Offset Vec2

	observer TransformObserver
	active   PointerID
	last     Vec2
}

// NewHandle creates a handle for one corner. observer may be nil.
func NewHandle(kind PointKind, radius float64, observer TransformObserver) *Handle {
	return &Handle{Kind: kind, Radius: radius, observer: observer, active: InvalidPointer}
}

// Contains reports whether (x, y) lies inside or on the handle's circle.
func (h *Handle) Contains(x, y float64) bool {
	dx := x - h.Pos.X
	dy := y - h.Pos.Y
	return dx*dx+dy*dy <= h.Radius*h.Radius
}

// Active reports whether a pointer is currently dragging the handle.
func (h *Handle) Active() bool { return h.active != InvalidPointer }

// Pointer returns the dragging pointer, or InvalidPointer.
func (h *Handle) Pointer() PointerID { return h.active }

// HandleEvent processes one event and reports whether the handle consumed
// it. A press is only consumed when it lands inside the handle while the
// handle is idle; moves are consumed when they carry the handle's pointer.
func (h *Handle) HandleEvent(e TouchEvent) bool {
	switch e.Kind {
	case EventDown, EventPointerDown:
		if h.Active() || e.Pointer == InvalidPointer {
			return false
		}
		pos, _ := e.Sample(e.Pointer)
		if !h.Contains(pos.X, pos.Y) {
			return false
		}
		h.active = e.Pointer
		h.last = pos
		return true

	case EventMove:
		if !h.Active() {
			return false
		}
		cur, ok := e.Sample(h.active)
		if !ok {
			return false
		}
		d := cur.Sub(h.last)
		h.last = cur
		if d == (Vec2{}) {
			return true
		}
		h.Offset = h.Offset.Add(d)
		h.Pos = h.Pos.Add(d)
		if h.observer != nil {
			h.observer.OnPointMoved(h.Kind, d.X, d.Y)
		}
		return true

	case EventUp, EventPointerUp:
		if !h.Active() || e.Pointer != h.active {
			return false
		}
		h.active = InvalidPointer
		return true

	case EventCancel:
		h.active = InvalidPointer
	}
	return false
}
