package stickr

import (
	"slices"
	"testing"
)

func eventKinds(evs []TouchEvent) []EventKind {
	kinds := make([]EventKind, len(evs))
	for i, e := range evs {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestDiffFrame(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur []PointerSample
		want      []EventKind
	}{
		{"nothing", nil, nil, []EventKind{}},
		{"first press", nil, []PointerSample{pt(0, 1, 1)}, []EventKind{EventDown}},
		{"two presses", nil, []PointerSample{pt(1, 1, 1), pt(2, 5, 5)}, []EventKind{EventDown, EventPointerDown}},
		{"still", []PointerSample{pt(1, 1, 1)}, []PointerSample{pt(1, 1, 1)}, []EventKind{}},
		{"move", []PointerSample{pt(1, 1, 1)}, []PointerSample{pt(1, 2, 1)}, []EventKind{EventMove}},
		{"last release", []PointerSample{pt(1, 1, 1)}, nil, []EventKind{EventUp}},
		{
			"release one of two",
			[]PointerSample{pt(1, 1, 1), pt(2, 5, 5)},
			[]PointerSample{pt(2, 5, 5)},
			[]EventKind{EventPointerUp},
		},
		{
			"move release press",
			[]PointerSample{pt(1, 1, 1), pt(2, 5, 5)},
			[]PointerSample{pt(2, 6, 6), pt(3, 9, 9)},
			[]EventKind{EventMove, EventPointerUp, EventPointerDown},
		},
		{
			"all swap",
			[]PointerSample{pt(1, 1, 1)},
			[]PointerSample{pt(2, 2, 2)},
			[]EventKind{EventUp, EventDown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eventKinds(diffFrame(nil, tt.prev, tt.cur))
			if !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffFramePointerLists(t *testing.T) {
	prev := []PointerSample{pt(1, 1, 1), pt(2, 5, 5)}
	cur := []PointerSample{pt(2, 6, 6), pt(3, 9, 9)}
	evs := diffFrame(nil, prev, cur)
	if len(evs) != 3 {
		t.Fatalf("events = %v", evs)
	}

	// The move only lists pointers still down, at their new positions.
	if m := evs[0]; !slices.Equal(m.Pointers, []PointerSample{pt(2, 6, 6)}) {
		t.Errorf("move pointers = %v", m.Pointers)
	}
	// The release still carries the released pointer.
	up := evs[1]
	if up.Pointer != 1 || !slices.Equal(up.Pointers, []PointerSample{pt(1, 1, 1), pt(2, 6, 6)}) {
		t.Errorf("pointer-up = %+v", up)
	}
	down := evs[2]
	if down.Pointer != 3 || down.X != 9 || !slices.Equal(down.Pointers, []PointerSample{pt(2, 6, 6), pt(3, 9, 9)}) {
		t.Errorf("pointer-down = %+v", down)
	}
}

func TestDiffFrameDrivesEngine(t *testing.T) {
	e := newTestEngine(t)
	var prev []PointerSample
	frames := [][]PointerSample{
		{pt(1, 50, 50)},
		{pt(1, 55, 50)},
		{pt(1, 60, 65)},
		{},
	}
	for _, cur := range frames {
		for _, ev := range diffFrame(nil, prev, cur) {
			e.HandleEvent(ev)
		}
		prev = cur
	}
	assertVec(t, "translation", e.State().Translation, Vec2{10, 15})
	if first, _ := e.Pointers(); first != InvalidPointer {
		t.Errorf("first = %d after release, want invalid", first)
	}
}
