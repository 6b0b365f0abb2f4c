package stickr

import (
	"slices"

	"golang.org/x/mobile/event/touch"
)

// MobileTranslator converts golang.org/x/mobile touch events, which report
// one sequence at a time, into TouchEvents carrying every down pointer.
// The touch sequence number is used as the PointerID.
type MobileTranslator struct {
	active []PointerSample
}

// Translate converts one mobile touch event. ok is false for events that do
// not fit the current pointer set (a repeated begin, or a move or end for an
// unknown sequence).
func (t *MobileTranslator) Translate(e touch.Event) (ev TouchEvent, ok bool) {
	id := PointerID(e.Sequence)
	x, y := float64(e.X), float64(e.Y)
	i := sampleIndex(t.active, id)

	switch e.Type {
	case touch.TypeBegin:
		if i >= 0 {
			return TouchEvent{}, false
		}
		t.active = append(t.active, PointerSample{ID: id, X: x, Y: y})
		kind := EventPointerDown
		if len(t.active) == 1 {
			kind = EventDown
		}
		return TouchEvent{Kind: kind, Pointer: id, X: x, Y: y, Pointers: slices.Clone(t.active)}, true

	case touch.TypeMove:
		if i < 0 {
			return TouchEvent{}, false
		}
		t.active[i].X, t.active[i].Y = x, y
		return TouchEvent{Kind: EventMove, Pointer: id, X: x, Y: y, Pointers: slices.Clone(t.active)}, true

	case touch.TypeEnd:
		if i < 0 {
			return TouchEvent{}, false
		}
		t.active[i].X, t.active[i].Y = x, y
		kind := EventPointerUp
		if len(t.active) == 1 {
			kind = EventUp
		}
		ev = TouchEvent{Kind: kind, Pointer: id, X: x, Y: y, Pointers: slices.Clone(t.active)}
		t.active = slices.Delete(t.active, i, i+1)
		return ev, true
	}
	return TouchEvent{}, false
}

// Cancel forgets every active sequence and returns the cancel event to feed
// the engine, typically when the app loses focus (lifecycle.StageFocused
// crossed downward).
func (t *MobileTranslator) Cancel() TouchEvent {
	t.active = t.active[:0]
	return TouchEvent{Kind: EventCancel, Pointer: InvalidPointer}
}

// Active returns the number of sequences currently down.
func (t *MobileTranslator) Active() int { return len(t.active) }
