package stickr

// Motion is one tracked pointer's movement across a single event.
type Motion struct {
	ID        PointerID
	Prev, Cur Vec2
}

// Delta returns Cur - Prev.
func (m Motion) Delta() Vec2 { return m.Cur.Sub(m.Prev) }

// Frame is the tracker's view of the pointers after one event.
type Frame struct {
	// Count is the number of tracked pointers still down (0, 1 or 2).
	Count int

	// First and Second are valid when Count > 0 and Count > 1 respectively.
	First, Second Motion

	// NewContact is set on the event that brought the second pointer down.
	// The rotation baseline must be recaptured.
	NewContact bool
}

type trackedPointer struct {
	id   PointerID
	last Vec2
}

func (p *trackedPointer) clear() {
	p.id = InvalidPointer
	p.last = Vec2{}
}

func (p *trackedPointer) valid() bool { return p.id != InvalidPointer }

// Tracker follows at most two pointers through an event stream. The first
// pointer is the one whose motion drives translation and tilt. The zero
// Tracker is not ready for use; call NewTracker.
type Tracker struct {
	first  trackedPointer
	second trackedPointer
}

// NewTracker returns a tracker with both slots empty.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.first.clear()
	t.second.clear()
	return t
}

// First returns the id of the first tracked pointer, or InvalidPointer.
func (t *Tracker) First() PointerID { return t.first.id }

// Second returns the id of the second tracked pointer, or InvalidPointer.
func (t *Tracker) Second() PointerID { return t.second.id }

// Count returns the number of tracked pointers.
func (t *Tracker) Count() int {
	n := 0
	if t.first.valid() {
		n++
	}
	if t.second.valid() {
		n++
	}
	return n
}

// Tracks reports whether id is currently tracked.
func (t *Tracker) Tracks(id PointerID) bool {
	return id != InvalidPointer && (t.first.id == id || t.second.id == id)
}

// Handle feeds one event into the tracker. The boolean result is false when
// the event referenced no tracked pointer and was ignored.
func (t *Tracker) Handle(e TouchEvent) (Frame, bool) {
	switch e.Kind {
	case EventDown:
		return t.down(e)
	case EventPointerDown:
		return t.pointerDown(e)
	case EventMove:
		return t.move(e)
	case EventUp:
		return t.up(e)
	case EventPointerUp:
		return t.pointerUp(e)
	case EventCancel:
		t.Reset()
		return Frame{}, true
	}
	return t.frame(), false
}

// Reset clears both slots.
func (t *Tracker) Reset() {
	t.first.clear()
	t.second.clear()
}

func (t *Tracker) down(e TouchEvent) (Frame, bool) {
	if e.Pointer == InvalidPointer {
		return t.frame(), false
	}
	pos, _ := e.Sample(e.Pointer)
	t.first = trackedPointer{id: e.Pointer, last: pos}
	t.second.clear()
	return t.frame(), true
}

func (t *Tracker) pointerDown(e TouchEvent) (Frame, bool) {
	if e.Pointer == InvalidPointer || t.Tracks(e.Pointer) {
		return t.frame(), false
	}
	pos, _ := e.Sample(e.Pointer)
	switch {
	case !t.first.valid():
		// Tracking was cancelled while fingers stayed down; the newcomer
		// starts a fresh single-pointer gesture.
		t.first = trackedPointer{id: e.Pointer, last: pos}
		return t.frame(), true
	case !t.second.valid():
		t.second = trackedPointer{id: e.Pointer, last: pos}
		if cur, ok := e.Sample(t.first.id); ok {
			t.first.last = cur
		}
		f := t.frame()
		f.NewContact = true
		return f, true
	}
	return t.frame(), false
}

func (t *Tracker) move(e TouchEvent) (Frame, bool) {
	f := t.frame()
	moved := false
	if t.first.valid() {
		if cur, ok := e.Sample(t.first.id); ok {
			f.First.Prev, f.First.Cur = t.first.last, cur
			t.first.last = cur
			moved = true
		}
	}
	if t.second.valid() {
		if cur, ok := e.Sample(t.second.id); ok {
			f.Second.Prev, f.Second.Cur = t.second.last, cur
			t.second.last = cur
			moved = true
		}
	}
	return f, moved
}

func (t *Tracker) up(e TouchEvent) (Frame, bool) {
	if !t.Tracks(e.Pointer) {
		return t.frame(), false
	}
	t.Reset()
	return Frame{}, true
}

func (t *Tracker) pointerUp(e TouchEvent) (Frame, bool) {
	switch {
	case e.Pointer == InvalidPointer:
		return t.frame(), false
	case e.Pointer == t.first.id:
		t.promote(e)
	case e.Pointer == t.second.id:
		t.second.clear()
	default:
		return t.frame(), false
	}
	return t.frame(), true
}

// promote replaces the released first pointer with the remaining one and
// reseeds its sample from the event so the next move does not jump.
func (t *Tracker) promote(e TouchEvent) {
	next := InvalidPointer
	if t.second.valid() {
		next = t.second.id
	} else {
		for _, p := range e.Pointers {
			if p.ID != e.Pointer && p.ID != InvalidPointer {
				next = p.ID
				break
			}
		}
	}
	last := t.second.last
	t.second.clear()
	if next == InvalidPointer {
		t.first.clear()
		return
	}
	if pos, ok := e.Sample(next); ok {
		last = pos
	}
	t.first = trackedPointer{id: next, last: last}
}

// frame describes the current slots with no motion.
func (t *Tracker) frame() Frame {
	f := Frame{Count: t.Count()}
	if t.first.valid() {
		f.First = Motion{ID: t.first.id, Prev: t.first.last, Cur: t.first.last}
	}
	if t.second.valid() {
		f.Second = Motion{ID: t.second.id, Prev: t.second.last, Cur: t.second.last}
	}
	return f
}
