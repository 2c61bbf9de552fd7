package scribe

// WidthKnot is one control point of a stroke's thickness profile: the stroke
// is Width thick at normalized arc length T. Knots are kept sorted ascending
// by T, with the first at 0 and the last at 1.
type WidthKnot struct {
	T     float64
	Width float64
}

// Stroke is one continuous drawn 3D polyline with a pressure-derived width
// profile. Strokes are created by the Builder while drawing and owned by a
// Store afterwards. Points are append-only except during a grab, which
// rewrites the whole point sequence rigidly without touching widths.
type Stroke struct {
	ID     uint32
	Points []Vec3
	Knots  []WidthKnot

	// Color is the current display color. While highlighted it holds the
	// brightened color; baseColor keeps the exact pre-highlight value.
	Color       Color
	baseColor   Color
	highlighted bool
}

// newStroke allocates an empty stroke with the next free ID.
func newStroke(color Color) *Stroke {
	return &Stroke{
		ID:    nextStrokeID(),
		Color: color,
	}
}

// Len returns the number of points.
func (st *Stroke) Len() int {
	return len(st.Points)
}

// Length returns the total polyline arc length. Zero for strokes with fewer
// than two points.
func (st *Stroke) Length() float64 {
	var total float64
	for i := 1; i < len(st.Points); i++ {
		total += st.Points[i].Distance(st.Points[i-1])
	}
	return total
}

// WidthAt evaluates the thickness profile at normalized arc length t using
// piecewise-linear interpolation between adjacent knots. t is clamped to
// [0, 1]. Returns 0 for strokes with no knots.
func (st *Stroke) WidthAt(t float64) float64 {
	n := len(st.Knots)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return st.Knots[0].Width
	}
	t = clamp01(t)

	// Find the first knot at or beyond t. Knot counts match point counts,
	// so a linear scan is fine at interactive stroke sizes.
	for i := 1; i < n; i++ {
		k := st.Knots[i]
		if t > k.T {
			continue
		}
		prev := st.Knots[i-1]
		span := k.T - prev.T
		if span < 1e-12 {
			return k.Width
		}
		frac := (t - prev.T) / span
		return prev.Width + (k.Width-prev.Width)*frac
	}
	return st.Knots[n-1].Width
}

// ApplyRigid rewrites every point as rot*(src[i]-pivot)+dest: a rigid-body
// transform of the snapshot src anchored at pivot, translated to dest.
// Applied fresh from the snapshot each call, never accumulated, so repeated
// per-frame application cannot drift. src must have len(st.Points) elements.
func (st *Stroke) ApplyRigid(rot Quat, pivot, dest Vec3, src []Vec3) {
	for i := range src {
		st.Points[i] = rot.Rotate(src[i].Sub(pivot)).Add(dest)
	}
}

// SnapshotPoints returns a copy of the current point sequence, used as the
// immutable source for grab transforms.
func (st *Stroke) SnapshotPoints() []Vec3 {
	snap := make([]Vec3, len(st.Points))
	copy(snap, st.Points)
	return snap
}

// Highlight brightens the stroke's color toward white:
// c' = c + (1-c)*factor per channel, clamped to [0, 1]. The pre-highlight
// color is cached on the first call so Unhighlight restores it exactly.
// Calling Highlight again while highlighted re-derives from the cached base.
func (st *Stroke) Highlight(factor float64) {
	st.beginHighlight()
	factor = clamp01(factor)
	st.Color = Color{
		R: clamp01(st.baseColor.R + (1-st.baseColor.R)*factor),
		G: clamp01(st.baseColor.G + (1-st.baseColor.G)*factor),
		B: clamp01(st.baseColor.B + (1-st.baseColor.B)*factor),
		A: st.baseColor.A,
	}
}

// beginHighlight caches the base color and marks the stroke highlighted
// without changing the display color. Used directly by HighlightFade, which
// eases the color toward the target instead of snapping it.
func (st *Stroke) beginHighlight() {
	if st.highlighted {
		return
	}
	st.baseColor = st.Color
	st.highlighted = true
}

// Unhighlight restores the exact color cached by Highlight. No-op when not
// highlighted.
func (st *Stroke) Unhighlight() {
	if !st.highlighted {
		return
	}
	st.Color = st.baseColor
	st.highlighted = false
}

// Highlighted reports whether the stroke currently shows highlight colors.
func (st *Stroke) Highlighted() bool {
	return st.highlighted
}

// BaseColor returns the stroke's pre-highlight color. Equal to Color when
// not highlighted.
func (st *Stroke) BaseColor() Color {
	if st.highlighted {
		return st.baseColor
	}
	return st.Color
}

// HighlightTarget returns the color Highlight(factor) would produce without
// mutating the stroke. Used by the fade animator to know where to ease to.
func (st *Stroke) HighlightTarget(factor float64) Color {
	base := st.BaseColor()
	factor = clamp01(factor)
	return Color{
		R: clamp01(base.R + (1-base.R)*factor),
		G: clamp01(base.G + (1-base.G)*factor),
		B: clamp01(base.B + (1-base.B)*factor),
		A: base.A,
	}
}
