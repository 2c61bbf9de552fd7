package scribe

// BuilderConfig configures stroke capture.
type BuilderConfig struct {
	// MinPointSpacing is the minimum distance between accepted points.
	// Samples closer than this to the last accepted point are dropped,
	// preventing zero-length segments and runaway point density.
	MinPointSpacing float64

	// MaxWidth scales full pressure to world-space thickness.
	MaxWidth float64

	// MinWidth is the thickness floor; even a feather-light touch leaves a
	// visible line.
	MinWidth float64
}

// DefaultBuilderConfig returns capture settings tuned for hand-scale drawing
// (units are meters).
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		MinPointSpacing: 0.005,
		MaxWidth:        0.02,
		MinWidth:        0.001,
	}
}

// Builder converts a stream of (position, pressure) samples into a stroke's
// point and width data, re-normalizing the width curve as the stroke grows.
//
// Widths are stored against normalized arc-length fractions rather than
// absolute distances, so every accepted point changes what "1.0" means:
// AddSample rescales all prior knot positions into the new [0, 1] range
// (their width values are untouched) and appends the new knot at 1.
type Builder struct {
	cfg BuilderConfig

	cur     *Stroke
	last    Vec3    // last accepted position
	prevLen float64 // total arc length before the newest point
}

// NewBuilder creates a builder with the given capture settings.
func NewBuilder(cfg BuilderConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Config returns a pointer to the builder's configuration so callers can
// mutate fields directly between strokes.
func (b *Builder) Config() *BuilderConfig {
	return &b.cfg
}

// Begin allocates a fresh stroke in the given color and makes it the active
// capture target. Any previously active stroke is implicitly finalized.
func (b *Builder) Begin(color Color) *Stroke {
	b.cur = newStroke(color)
	b.prevLen = 0
	b.last = Vec3{}
	return b.cur
}

// Active returns the stroke currently being captured, or nil.
func (b *Builder) Active() *Stroke {
	return b.cur
}

// AddSample feeds one stylus sample into the active stroke. Pressure is
// clamped to [0, 1]; non-finite positions are dropped. Samples closer than
// MinPointSpacing to the last accepted point are dropped. Reports whether
// the sample was accepted as a new point.
func (b *Builder) AddSample(pos Vec3, pressure float64) bool {
	st := b.cur
	if st == nil || !pos.IsFinite() {
		return false
	}
	pressure = clamp01(pressure)

	if len(st.Points) == 0 {
		st.Points = append(st.Points, pos)
		// The first knot records raw pressure; MaxWidth scaling applies
		// from the second point on, once a real segment exists.
		st.Knots = append(st.Knots, WidthKnot{T: 0, Width: pressure})
		b.last = pos
		return true
	}

	dist := pos.Distance(b.last)
	if dist < b.cfg.MinPointSpacing {
		return false
	}

	newLen := b.prevLen + dist
	scale := b.prevLen / newLen

	// Re-normalize every existing knot into the new [0, 1] range. Width
	// values stay put; only their parameter positions shrink.
	for i := range st.Knots {
		st.Knots[i].T *= scale
	}

	width := pressure * b.cfg.MaxWidth
	if width < b.cfg.MinWidth {
		width = b.cfg.MinWidth
	}

	st.Points = append(st.Points, pos)
	st.Knots = append(st.Knots, WidthKnot{T: 1, Width: width})
	b.prevLen = newLen
	b.last = pos
	return true
}

// End finalizes the active stroke and returns it (nil if none). Further
// AddSample calls are no-ops until the next Begin. A returned stroke with a
// single point is valid but defines no segment.
func (b *Builder) End() *Stroke {
	st := b.cur
	b.cur = nil
	b.prevLen = 0
	return st
}
