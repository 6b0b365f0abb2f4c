package stickr

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- constructors ---

func TestMatrixTranslation(t *testing.T) {
	x, y := Translation(10, -5).Map(1, 2)
	assertNear(t, "x", x, 11)
	assertNear(t, "y", y, -3)
}

func TestMatrixScalingAboutPivot(t *testing.T) {
	m := Scaling(2, 100, 50)
	x, y := m.Map(100, 50)
	assertNear(t, "pivot x", x, 100)
	assertNear(t, "pivot y", y, 50)

	x, y = m.Map(110, 60)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 70)
}

func TestMatrixRotation(t *testing.T) {
	tests := []struct {
		name   string
		deg    float64
		px, py float64
		in     Vec2
		want   Vec2
	}{
		{"zero", 0, 0, 0, Vec2{3, 4}, Vec2{3, 4}},
		{"90 origin", 90, 0, 0, Vec2{1, 0}, Vec2{0, 1}},
		{"180 origin", 180, 0, 0, Vec2{1, 0}, Vec2{-1, 0}},
		{"90 pivot", 90, 10, 10, Vec2{20, 10}, Vec2{10, 20}},
		{"pivot fixed", 37, 5, 7, Vec2{5, 7}, Vec2{5, 7}},
		{"-90 origin", -90, 0, 0, Vec2{1, 0}, Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "mapped", Rotation(tt.deg, tt.px, tt.py).MapVec(tt.in), tt.want)
		})
	}
}

// --- Mul ---

func TestMatrixMulIdentity(t *testing.T) {
	m := Rotation(30, 4, 5).Mul(Scaling(1.5, 2, 3))
	assertMatrix(t, "m*I", m.Mul(Identity), m)
	assertMatrix(t, "I*m", Identity.Mul(m), m)
}

func TestMatrixMulOrder(t *testing.T) {
	// Right operand acts first: scale about origin, then translate.
	m := Translation(10, 0).Mul(Scaling(2, 0, 0))
	x, y := m.Map(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 2)

	m = Scaling(2, 0, 0).Mul(Translation(10, 0))
	x, y = m.Map(1, 1)
	assertNear(t, "swapped x", x, 22)
	assertNear(t, "swapped y", y, 2)
}

// --- Map ---

func TestMatrixMapPerspective(t *testing.T) {
	m := Matrix{1, 0, 0, 0, 1, 0, 0.01, 0, 1}
	x, y := m.Map(100, 50)
	assertNear(t, "x", x, 50)
	assertNear(t, "y", y, 25)
}

func TestMatrixMapDegenerate(t *testing.T) {
	m := Matrix{1, 0, 0, 0, 1, 0, 0.01, 0, 0}
	x, y := m.Map(0, 7)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 7)
}

// --- affine conversion ---

func TestMatrixAffine(t *testing.T) {
	m := Translation(7, 9).Mul(Rotation(90, 0, 0))
	if !m.IsAffine() {
		t.Fatal("translation*rotation should be affine")
	}
	got := m.Affine()
	want := [6]float64{0, 1, -1, 0, 7, 9}
	for i := range got {
		assertNear(t, "affine", got[i], want[i])
	}
}

func TestMatrixIsAffinePerspective(t *testing.T) {
	m := Identity
	m[7] = 0.001
	if m.IsAffine() {
		t.Error("matrix with perspective term reported affine")
	}
}
