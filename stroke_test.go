package scribe

import (
	"math"
	"testing"
)

func lineStroke(id uint32, pts ...Vec3) *Stroke {
	st := &Stroke{ID: id, Points: pts, Color: ColorWhite}
	n := len(pts)
	if n == 1 {
		st.Knots = []WidthKnot{{T: 0, Width: 0.01}}
		return st
	}
	for i := range pts {
		st.Knots = append(st.Knots, WidthKnot{
			T:     float64(i) / float64(n-1),
			Width: 0.01,
		})
	}
	return st
}

// --- Length ---

func TestStrokeLength(t *testing.T) {
	tests := []struct {
		name string
		pts  []Vec3
		want float64
	}{
		{"empty", nil, 0},
		{"single point", []Vec3{{1, 1, 1}}, 0},
		{"one segment", []Vec3{{0, 0, 0}, {0, 0, 2}}, 2},
		{"bent polyline", []Vec3{{0, 0, 0}, {3, 0, 0}, {3, 4, 0}}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &Stroke{Points: tt.pts}
			if got := st.Length(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- WidthAt ---

func TestWidthAtInterpolation(t *testing.T) {
	st := &Stroke{Knots: []WidthKnot{
		{T: 0, Width: 2},
		{T: 0.5, Width: 4},
		{T: 1, Width: 1},
	}}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"first knot", 0, 2},
		{"between first pair", 0.25, 3},
		{"middle knot", 0.5, 4},
		{"between second pair", 0.75, 2.5},
		{"last knot", 1, 1},
		{"clamped below", -1, 2},
		{"clamped above", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.WidthAt(tt.t); math.Abs(got-tt.want) > epsilon {
				t.Errorf("WidthAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWidthAtDegenerate(t *testing.T) {
	empty := &Stroke{}
	if got := empty.WidthAt(0.5); got != 0 {
		t.Errorf("WidthAt on knotless stroke = %v, want 0", got)
	}
	single := &Stroke{Knots: []WidthKnot{{T: 0, Width: 3}}}
	if got := single.WidthAt(0.9); got != 3 {
		t.Errorf("WidthAt on single knot = %v, want 3", got)
	}
}

func TestWidthAtCoincidentKnots(t *testing.T) {
	// Zero-width parameter span must not divide by zero.
	st := &Stroke{Knots: []WidthKnot{
		{T: 0, Width: 1},
		{T: 0.5, Width: 2},
		{T: 0.5, Width: 5},
		{T: 1, Width: 3},
	}}
	got := st.WidthAt(0.5)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("WidthAt at coincident knots = %v", got)
	}
}

// --- Rigid transform ---

func TestApplyRigidIdentity(t *testing.T) {
	st := lineStroke(1, Vec3{0, 0, 0}, Vec3{0, 0, 1}, Vec3{0, 1, 1})
	src := st.SnapshotPoints()
	pivot := Vec3{0, 0, 0}

	st.ApplyRigid(QuatIdentity, pivot, pivot, src)
	for i := range src {
		if st.Points[i] != src[i] {
			t.Errorf("point %d moved under identity: %v -> %v", i, src[i], st.Points[i])
		}
	}
}

func TestApplyRigidTranslation(t *testing.T) {
	st := lineStroke(1, Vec3{0, 0, 0}, Vec3{1, 0, 0})
	src := st.SnapshotPoints()
	pivot := Vec3{0, 0, 0}
	dest := Vec3{0, 5, 0}

	st.ApplyRigid(QuatIdentity, pivot, dest, src)
	want := []Vec3{{0, 5, 0}, {1, 5, 0}}
	for i := range want {
		if !vecNear(st.Points[i], want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, st.Points[i], want[i])
		}
	}
}

func TestApplyRigidRotationAboutPivot(t *testing.T) {
	st := lineStroke(1, Vec3{1, 0, 0}, Vec3{2, 0, 0})
	src := st.SnapshotPoints()
	pivot := Vec3{1, 0, 0}
	rot := AxisAngle(Vec3{0, 0, 1}, math.Pi/2)

	// Rotate 90 degrees about Z anchored at the first point, no translation.
	st.ApplyRigid(rot, pivot, pivot, src)
	want := []Vec3{{1, 0, 0}, {1, 1, 0}}
	for i := range want {
		if !vecNear(st.Points[i], want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, st.Points[i], want[i])
		}
	}
}

func TestApplyRigidWidthsUntouched(t *testing.T) {
	st := lineStroke(1, Vec3{0, 0, 0}, Vec3{0, 0, 1})
	before := append([]WidthKnot(nil), st.Knots...)
	st.ApplyRigid(AxisAngle(Vec3{0, 1, 0}, 1), Vec3{}, Vec3{3, 3, 3}, st.SnapshotPoints())
	for i := range before {
		if st.Knots[i] != before[i] {
			t.Errorf("knot %d changed: %v -> %v", i, before[i], st.Knots[i])
		}
	}
}

func TestApplyRigidFromSnapshotNoDrift(t *testing.T) {
	// Applying the same transform many times from the snapshot must give the
	// same result as applying it once — nothing accumulates.
	st := lineStroke(1, Vec3{0.1, 0.2, 0.3}, Vec3{0.4, 0.5, 0.6})
	src := st.SnapshotPoints()
	rot := AxisAngle(Vec3{1, 1, 0}, 0.3)
	pivot := Vec3{0.1, 0.2, 0.3}
	dest := Vec3{1, 2, 3}

	st.ApplyRigid(rot, pivot, dest, src)
	once := st.SnapshotPoints()
	for i := 0; i < 100; i++ {
		st.ApplyRigid(rot, pivot, dest, src)
	}
	for i := range once {
		if st.Points[i] != once[i] {
			t.Errorf("point %d drifted: %v -> %v", i, once[i], st.Points[i])
		}
	}
}

// --- Highlight ---

func TestHighlightBrightens(t *testing.T) {
	st := &Stroke{Color: Color{R: 0.2, G: 0.4, B: 0.8, A: 1}}
	st.Highlight(0.5)

	want := Color{R: 0.6, G: 0.7, B: 0.9, A: 1}
	got := st.Color
	if math.Abs(got.R-want.R) > epsilon || math.Abs(got.G-want.G) > epsilon ||
		math.Abs(got.B-want.B) > epsilon || got.A != want.A {
		t.Errorf("highlighted color = %v, want %v", got, want)
	}
	if !st.Highlighted() {
		t.Error("stroke should report highlighted")
	}
}

func TestHighlightFullFactorIsWhite(t *testing.T) {
	st := &Stroke{Color: Color{R: 0.1, G: 0.5, B: 0.9, A: 1}}
	st.Highlight(1)
	if st.Color != (Color{1, 1, 1, 1}) {
		t.Errorf("factor 1 highlight = %v, want white", st.Color)
	}
}

func TestUnhighlightRestoresExactly(t *testing.T) {
	orig := Color{R: 0.123456789, G: 0.987654321, B: 0.5555555, A: 1}
	st := &Stroke{Color: orig}

	st.Highlight(0.7)
	if st.Color == orig {
		t.Fatal("highlight did not change the color")
	}
	st.Unhighlight()
	if st.Color != orig {
		t.Errorf("restored color = %v, want bit-exact %v", st.Color, orig)
	}
	if st.Highlighted() {
		t.Error("stroke should not report highlighted after restore")
	}
}

func TestHighlightTwiceKeepsBase(t *testing.T) {
	orig := Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	st := &Stroke{Color: orig}
	st.Highlight(0.3)
	st.Highlight(0.9) // re-derives from the cached base, not the boosted color
	st.Unhighlight()
	if st.Color != orig {
		t.Errorf("restored color after double highlight = %v, want %v", st.Color, orig)
	}
}

func TestUnhighlightWithoutHighlightIsNoop(t *testing.T) {
	orig := Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
	st := &Stroke{Color: orig}
	st.Unhighlight()
	if st.Color != orig {
		t.Errorf("color changed by no-op unhighlight: %v", st.Color)
	}
}

func TestBaseColor(t *testing.T) {
	orig := Color{R: 0.4, G: 0.2, B: 0.6, A: 1}
	st := &Stroke{Color: orig}
	if st.BaseColor() != orig {
		t.Errorf("BaseColor pre-highlight = %v, want %v", st.BaseColor(), orig)
	}
	st.Highlight(0.5)
	if st.BaseColor() != orig {
		t.Errorf("BaseColor while highlighted = %v, want %v", st.BaseColor(), orig)
	}
}

func TestHighlightTargetDoesNotMutate(t *testing.T) {
	orig := Color{R: 0.4, G: 0.2, B: 0.6, A: 1}
	st := &Stroke{Color: orig}
	target := st.HighlightTarget(0.5)
	if st.Color != orig {
		t.Errorf("HighlightTarget mutated the stroke: %v", st.Color)
	}
	st.Highlight(0.5)
	if st.Color != target {
		t.Errorf("Highlight produced %v, HighlightTarget predicted %v", st.Color, target)
	}
}
