package stickr

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestAccumulator() (*Accumulator, *int) {
	redraws := 0
	return NewAccumulator(DefaultConfig(), func() { redraws++ }), &redraws
}

func TestAccumulatorInitialState(t *testing.T) {
	a, _ := newTestAccumulator()
	st := a.State()
	assertNear(t, "scale", st.Scale, 1)
	assertVec(t, "translation", st.Translation, Vec2{})
	if st.Rotation != 0 || st.TiltX != 0 || st.TiltY != 0 {
		t.Errorf("state = %+v, want identity", st)
	}
	if st.RotationInitialized() {
		t.Error("rotation baseline captured before any pointer angle")
	}
}

func TestAccumulatorTranslate(t *testing.T) {
	a, redraws := newTestAccumulator()
	a.ApplyTranslate(10, 15)
	a.ApplyTranslate(-4, 1)
	assertVec(t, "translation", a.State().Translation, Vec2{6, 16})
	if *redraws != 2 {
		t.Errorf("redraws = %d, want 2", *redraws)
	}
	if a.Mode() != ModeTranslate {
		t.Errorf("mode = %v, want translate", a.Mode())
	}
}

func TestAccumulatorScaleClamp(t *testing.T) {
	tests := []struct {
		name    string
		factors []float64
		want    float64
	}{
		{"grow", []float64{2}, 2},
		{"grow past max", []float64{3, 3}, DefaultMaxScale},
		{"shrink past min", []float64{0.1}, DefaultMinScale},
		{"recover from max", []float64{100, 0.5}, DefaultMaxScale / 2},
		{"zero dropped", []float64{2, 0}, 2},
		{"negative dropped", []float64{-1}, 1},
		{"nan dropped", []float64{math.NaN()}, 1},
		{"inf dropped", []float64{math.Inf(1)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAccumulator()
			for _, f := range tt.factors {
				a.ApplyScale(f)
			}
			assertNear(t, "scale", a.State().Scale, tt.want)
		})
	}
}

func TestAccumulatorScaleAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a, _ := newTestAccumulator()
	for i := 0; i < 1000; i++ {
		a.ApplyScale(math.Exp(rng.NormFloat64()))
		if s := a.State().Scale; s < DefaultMinScale || s > DefaultMaxScale {
			t.Fatalf("step %d: scale %v out of range", i, s)
		}
	}
}

func TestAccumulatorTilt(t *testing.T) {
	a, _ := newTestAccumulator()
	a.ApplyTiltX(30)
	a.ApplyTiltY(-9)
	st := a.State()
	assertNear(t, "tiltX", st.TiltX, 10)
	assertNear(t, "tiltY", st.TiltY, -3)
	if a.Mode() != ModeTilt {
		t.Errorf("mode = %v, want tilt", a.Mode())
	}

	a.ApplyTiltX(10000)
	a.ApplyTiltY(-10000)
	st = a.State()
	assertNear(t, "tiltX clamped", st.TiltX, DefaultTiltBound)
	assertNear(t, "tiltY clamped", st.TiltY, -DefaultTiltBound)
}

func TestAccumulatorTiltAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	a, _ := newTestAccumulator()
	for i := 0; i < 1000; i++ {
		d := rng.NormFloat64() * 400
		if i%2 == 0 {
			a.ApplyTiltX(d)
		} else {
			a.ApplyTiltY(d)
		}
		st := a.State()
		if math.Abs(st.TiltX) > DefaultTiltBound || math.Abs(st.TiltY) > DefaultTiltBound {
			t.Fatalf("step %d: tilt (%v, %v) out of range", i, st.TiltX, st.TiltY)
		}
	}
}

func TestAccumulatorDropsNonFinite(t *testing.T) {
	a, redraws := newTestAccumulator()
	a.ApplyTranslate(math.NaN(), 1)
	a.ApplyRotation(math.Inf(-1))
	a.ApplyTiltX(math.NaN())
	a.ApplyPointerAngle(math.NaN())
	a.OnPointMoved(TopLeft, math.Inf(1), 0)
	if *redraws != 0 {
		t.Errorf("redraws = %d, want 0", *redraws)
	}
	if st := a.State(); st != NewTransformState() {
		t.Errorf("state = %+v, want identity", st)
	}
}

func TestAccumulatorPointerAngleBaseline(t *testing.T) {
	a, redraws := newTestAccumulator()

	a.ApplyPointerAngle(30)
	assertNear(t, "rotation after capture", a.State().Rotation, 0)
	if !a.State().RotationInitialized() {
		t.Fatal("baseline not captured")
	}
	if *redraws != 0 {
		t.Errorf("capture requested %d redraws", *redraws)
	}

	a.ApplyPointerAngle(120)
	assertNear(t, "rotation", a.State().Rotation, 90)

	a.ApplyPointerAngle(120)
	if *redraws != 1 {
		t.Errorf("redraws = %d, want 1 (unchanged angle must not redraw)", *redraws)
	}
}

func TestAccumulatorPointerAngleNewContact(t *testing.T) {
	a, _ := newTestAccumulator()
	a.ApplyPointerAngle(0)
	a.ApplyPointerAngle(90)

	// A new contact captures its own angle and applies nothing until it moves.
	a.ResetRotationBaseline()
	a.ApplyPointerAngle(45)
	assertNear(t, "rotation after recapture", a.State().Rotation, 90)
	assertNear(t, "reference", a.State().RotationReference(), 45)

	a.ApplyPointerAngle(55)
	assertNear(t, "rotation", a.State().Rotation, 10)
}

func TestAccumulatorOnPointMoved(t *testing.T) {
	a, redraws := newTestAccumulator()
	a.OnPointMoved(BottomRight, 3, 4)
	a.OnPointMoved(BottomRight, 1, 1)
	a.OnPointMoved(PointKind(9), 1, 1)
	st := a.State()
	assertVec(t, "bottom-right", st.Corners[BottomRight], Vec2{4, 5})
	assertVec(t, "top-left", st.Corners[TopLeft], Vec2{})
	if *redraws != 2 {
		t.Errorf("redraws = %d, want 2", *redraws)
	}
}
