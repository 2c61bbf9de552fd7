package scribe

// StylusSample is one frame of device state, produced once per frame by the
// host's input source. The session never polls hardware; it consumes whatever
// the host hands it (real device, mouse emulation, or injected synthetics).
type StylusSample struct {
	Position Vec3
	Rotation Quat

	// Pressure is the analog draw input in [0, 1]. Values outside the range
	// (including NaN) are clamped, never rejected.
	Pressure float64

	Active bool // device is tracked and in-hand
	Docked bool // device is in its cradle; forces the session to idle

	FrontPressed bool // front (grab / color-cycle) button held
	BackPressed  bool // back (delete) button held
}

// sanitize clamps analog fields into valid range so no sample can corrupt
// stroke geometry. Non-finite positions are left to the builder to drop.
func (s StylusSample) sanitize() StylusSample {
	s.Pressure = clamp01(s.Pressure)
	if !s.Rotation.IsValid() {
		s.Rotation = QuatIdentity
	}
	return s
}

// IsValid reports whether the quaternion has finite components and non-zero
// magnitude.
func (q Quat) IsValid() bool {
	if !finite(q.W) || !finite(q.X) || !finite(q.Y) || !finite(q.Z) {
		return false
	}
	return q.W*q.W+q.X*q.X+q.Y*q.Y+q.Z*q.Z > 1e-24
}

// buttonEvents is the per-frame set of discrete input transitions, computed
// by comparing this frame's boolean signals against the previous frame's.
// At most one pressed and one released event per button per frame; there is
// no listener graph or subscription lifecycle behind these.
type buttonEvents struct {
	frontPressed  bool
	frontReleased bool
	backPressed   bool
	backReleased  bool
	docked        bool // dock edge: device entered the cradle this frame
	undocked      bool
}

// diffSamples computes edge-triggered events between consecutive frames.
func diffSamples(prev, cur StylusSample) buttonEvents {
	return buttonEvents{
		frontPressed:  cur.FrontPressed && !prev.FrontPressed,
		frontReleased: !cur.FrontPressed && prev.FrontPressed,
		backPressed:   cur.BackPressed && !prev.BackPressed,
		backReleased:  !cur.BackPressed && prev.BackPressed,
		docked:        cur.Docked && !prev.Docked,
		undocked:      !cur.Docked && prev.Docked,
	}
}
