package stickr

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// TouchSource polls ebiten once per tick and converts pointer state changes
// into TouchEvents, in the order a touch screen would report them: moves,
// then releases, then presses.
type TouchSource struct {
	// Mouse makes the left mouse button act as pointer 0 so the engine can be
	// driven from a desktop.
	Mouse bool

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	prev   []PointerSample
	cur    []PointerSample
	events []TouchEvent
}

// NewTouchSource creates a touch source. mouse enables the mouse pointer.
func NewTouchSource(mouse bool) *TouchSource {
	return &TouchSource{Mouse: mouse}
}

// Poll samples the current ebiten input state. Call it from Game.Update.
// The returned slice is reused by the next call.
func (s *TouchSource) Poll() []TouchEvent {
	s.cur = s.cur[:0]

	if s.Mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.cur = append(s.cur, PointerSample{ID: 0, X: float64(mx), Y: float64(my)})
	}

	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.cur = append(s.cur, PointerSample{ID: PointerID(slot), X: float64(tx), Y: float64(ty)})
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}

	s.events = diffFrame(s.events[:0], s.prev, s.cur)
	s.prev = append(s.prev[:0], s.cur...)
	return s.events
}

// Feed polls and hands every event to the engine.
func (s *TouchSource) Feed(e *Engine) {
	for _, ev := range s.Poll() {
		e.HandleEvent(ev)
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *TouchSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// diffFrame appends to dst the events that turn the pointer set prev into
// cur. prev keeps press order; pointers that stay down keep their position
// in the list.
func diffFrame(dst []TouchEvent, prev, cur []PointerSample) []TouchEvent {
	active := make([]PointerSample, 0, len(prev)+len(cur))
	moved := false
	for _, p := range prev {
		if i := sampleIndex(cur, p.ID); i >= 0 {
			c := cur[i]
			if c.X != p.X || c.Y != p.Y {
				moved = true
			}
			active = append(active, c)
		} else {
			active = append(active, p)
		}
	}
	if moved {
		var live []PointerSample
		for _, p := range active {
			if sampleIndex(cur, p.ID) >= 0 {
				live = append(live, p)
			}
		}
		dst = append(dst, TouchEvent{Kind: EventMove, Pointer: live[0].ID, X: live[0].X, Y: live[0].Y, Pointers: live})
	}

	for _, p := range prev {
		if sampleIndex(cur, p.ID) >= 0 {
			continue
		}
		i := sampleIndex(active, p.ID)
		r := active[i]
		kind := EventPointerUp
		if len(active) == 1 {
			kind = EventUp
		}
		dst = append(dst, TouchEvent{Kind: kind, Pointer: r.ID, X: r.X, Y: r.Y, Pointers: slices.Clone(active)})
		active = slices.Delete(active, i, i+1)
	}

	for _, c := range cur {
		if sampleIndex(prev, c.ID) >= 0 {
			continue
		}
		active = append(active, c)
		kind := EventPointerDown
		if len(active) == 1 {
			kind = EventDown
		}
		dst = append(dst, TouchEvent{Kind: kind, Pointer: c.ID, X: c.X, Y: c.Y, Pointers: slices.Clone(active)})
	}
	return dst
}

func sampleIndex(s []PointerSample, id PointerID) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}
