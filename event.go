package stickr

import "fmt"

// EventKind discriminates a TouchEvent.
type EventKind uint8

const (
	EventDown        EventKind = iota // first pointer pressed
	EventMove                         // one or more down pointers moved
	EventUp                           // last pointer released
	EventPointerDown                  // an additional pointer pressed
	EventPointerUp                    // a pointer released while others stay down
	EventCancel                       // the host aborted the gesture
)

var eventKindNames = [...]string{"down", "move", "up", "pointer-down", "pointer-up", "cancel"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// PointerSample is the position of one down pointer at the time of an event.
type PointerSample struct {
	ID   PointerID
	X, Y float64
}

// TouchEvent is one raw pointer event from the host.
//
// Pointer and X, Y describe the pointer the event is about (the pressed or
// released pointer for down/up kinds). Pointers carries the positions of
// every pointer down at the time of the event, including the released one
// on up kinds. For EventMove, Pointer is ignored and Pointers is
// authoritative.
type TouchEvent struct {
	Kind     EventKind
	Pointer  PointerID
	X, Y     float64
	Pointers []PointerSample
}

// Sample returns the position of id in the event. The event's own pointer is
// always found even when Pointers is empty.
func (e TouchEvent) Sample(id PointerID) (Vec2, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return Vec2{p.X, p.Y}, true
		}
	}
	if id == e.Pointer && e.Kind != EventMove && e.Kind != EventCancel {
		return Vec2{e.X, e.Y}, true
	}
	return Vec2{}, false
}

func (e TouchEvent) String() string {
	return fmt.Sprintf("%v(id=%d x=%.1f y=%.1f n=%d)", e.Kind, e.Pointer, e.X, e.Y, len(e.Pointers))
}
