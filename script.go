package stickr

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scriptPointer is one pointer entry of a script step.
type scriptPointer struct {
	ID  PointerID `json:"id"`
	X   float64   `json:"x,omitempty"`
	Y   float64   `json:"y,omitempty"`
	ToX float64   `json:"toX,omitempty"`
	ToY float64   `json:"toY,omitempty"`
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string          `json:"action"`
	ID       PointerID       `json:"id,omitempty"`
	X        float64         `json:"x,omitempty"`
	Y        float64         `json:"y,omitempty"`
	Pointers []scriptPointer `json:"pointers,omitempty"`
	Frames   int             `json:"frames,omitempty"`
	Ease     string          `json:"ease,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Bounds *Rect        `json:"bounds,omitempty"`
	Steps  []scriptStep `json:"steps"`
}

// Script is a compiled gesture script: the touch events to deliver on each
// frame. Actions:
//
//	down, pointer_down   press pointer id at (x, y)
//	move                 move the listed pointers to (x, y)
//	up, pointer_up       release pointer id at its last position
//	cancel               abort the gesture
//	drag                 move the listed pointers to (toX, toY) over frames,
//	                     interpolated with the named easing (default linear)
//	wait                 deliver nothing for frames
type Script struct {
	// Bounds is the element bounds requested by the script, if any.
	Bounds *Rect

	frames [][]TouchEvent
}

// easings maps script easing names to gween functions.
var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// LoadScript parses and compiles a JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	frames, err := compileSteps(f.Steps)
	if err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	return &Script{Bounds: f.Bounds, frames: frames}, nil
}

// LoadScriptFile reads and compiles a gesture script from disk.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gesture script: %w", err)
	}
	return LoadScript(data)
}

// Frames returns the number of frames the script spans.
func (s *Script) Frames() int { return len(s.frames) }

// Events returns the events delivered on frame i.
func (s *Script) Events(i int) []TouchEvent { return s.frames[i] }

// Play feeds the whole script to the engine synchronously.
func (s *Script) Play(e *Engine) {
	if s.Bounds != nil {
		e.SetBounds(*s.Bounds)
	}
	for _, frame := range s.frames {
		for _, ev := range frame {
			e.HandleEvent(ev)
		}
	}
}

// ScriptRunner delivers a script one frame per Step, for driving a live
// engine from Game.Update.
type ScriptRunner struct {
	script *Script
	cursor int
}

// NewScriptRunner creates a runner positioned at the first frame.
func NewScriptRunner(s *Script) *ScriptRunner {
	return &ScriptRunner{script: s}
}

// Step delivers the next frame of events. It does nothing once Done.
func (r *ScriptRunner) Step(e *Engine) {
	if r.Done() {
		return
	}
	if r.cursor == 0 && r.script.Bounds != nil {
		e.SetBounds(*r.script.Bounds)
	}
	for _, ev := range r.script.frames[r.cursor] {
		e.HandleEvent(ev)
	}
	r.cursor++
}

// Done reports whether all frames have been delivered.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.script.frames)
}

// scriptCompiler tracks the simulated pointer set while expanding steps.
type scriptCompiler struct {
	active []PointerSample
	frames [][]TouchEvent
}

func compileSteps(steps []scriptStep) ([][]TouchEvent, error) {
	c := &scriptCompiler{}
	for i, st := range steps {
		if err := c.step(st); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}
	return c.frames, nil
}

func (c *scriptCompiler) emit(evs ...TouchEvent) {
	c.frames = append(c.frames, evs)
}

func (c *scriptCompiler) snapshot() []PointerSample {
	return slices.Clone(c.active)
}

func (c *scriptCompiler) step(st scriptStep) error {
	switch st.Action {
	case "down", "pointer_down":
		if sampleIndex(c.active, st.ID) >= 0 {
			return fmt.Errorf("pointer %d already down", st.ID)
		}
		if st.Action == "down" && len(c.active) > 0 {
			return fmt.Errorf("down with %d pointers already down; use pointer_down", len(c.active))
		}
		c.active = append(c.active, PointerSample{ID: st.ID, X: st.X, Y: st.Y})
		kind := EventPointerDown
		if len(c.active) == 1 {
			kind = EventDown
		}
		c.emit(TouchEvent{Kind: kind, Pointer: st.ID, X: st.X, Y: st.Y, Pointers: c.snapshot()})

	case "up", "pointer_up":
		i := sampleIndex(c.active, st.ID)
		if i < 0 {
			return fmt.Errorf("pointer %d is not down", st.ID)
		}
		p := c.active[i]
		kind := EventPointerUp
		if len(c.active) == 1 {
			kind = EventUp
		}
		c.emit(TouchEvent{Kind: kind, Pointer: p.ID, X: p.X, Y: p.Y, Pointers: c.snapshot()})
		c.active = slices.Delete(c.active, i, i+1)

	case "cancel":
		c.active = c.active[:0]
		c.emit(TouchEvent{Kind: EventCancel, Pointer: InvalidPointer})

	case "move":
		if len(st.Pointers) == 0 {
			return fmt.Errorf("no pointers")
		}
		for _, p := range st.Pointers {
			i := sampleIndex(c.active, p.ID)
			if i < 0 {
				return fmt.Errorf("pointer %d is not down", p.ID)
			}
			c.active[i].X, c.active[i].Y = p.X, p.Y
		}
		c.emitMove()

	case "drag":
		return c.drag(st)

	case "wait":
		for n := 0; n < st.Frames; n++ {
			c.emit()
		}

	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

func (c *scriptCompiler) emitMove() {
	first := c.active[0]
	c.emit(TouchEvent{Kind: EventMove, Pointer: first.ID, X: first.X, Y: first.Y, Pointers: c.snapshot()})
}

// drag interpolates every listed pointer from its current position to its
// target with one gween tween per coordinate, one move event per frame.
func (c *scriptCompiler) drag(st scriptStep) error {
	if len(st.Pointers) == 0 {
		return fmt.Errorf("no pointers")
	}
	fn, ok := easings[st.Ease]
	if !ok {
		return fmt.Errorf("unknown easing %q", st.Ease)
	}
	frames := max(st.Frames, 1)

	type track struct {
		index int
		x, y  *gween.Tween
		toX   float64
		toY   float64
	}
	tracks := make([]track, 0, len(st.Pointers))
	for _, p := range st.Pointers {
		i := sampleIndex(c.active, p.ID)
		if i < 0 {
			return fmt.Errorf("pointer %d is not down", p.ID)
		}
		from := c.active[i]
		tracks = append(tracks, track{
			index: i,
			x:     gween.New(float32(from.X), float32(p.ToX), float32(frames), fn),
			y:     gween.New(float32(from.Y), float32(p.ToY), float32(frames), fn),
			toX:   p.ToX,
			toY:   p.ToY,
		})
	}

	for n := 1; n <= frames; n++ {
		for _, t := range tracks {
			x, _ := t.x.Update(1)
			y, _ := t.y.Update(1)
			if n == frames {
				c.active[t.index].X, c.active[t.index].Y = t.toX, t.toY
				continue
			}
			c.active[t.index].X, c.active[t.index].Y = float64(x), float64(y)
		}
		c.emitMove()
	}
	return nil
}
