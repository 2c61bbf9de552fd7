package scribe

// Synthetic input injection. Queued samples replace the host-supplied sample
// one per Update call, flowing through the exact same sanitation, edge
// detection, and state machine as real device input. Used by the script
// runner and by automated interaction tests.

// InjectSample queues one synthetic stylus sample. It is consumed by the
// next Update call in place of the polled sample.
func (s *Session) InjectSample(sample StylusSample) {
	s.injectQueue = append(s.injectQueue, sample)
}

// InjectStroke queues a full draw gesture: pressure held from `from` to `to`
// over the given number of frames (linearly interpolated positions), then
// one pressure-zero frame that finalizes the stroke. frames is clamped to a
// minimum of 2.
func (s *Session) InjectStroke(from, to Vec3, pressure float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	delta := to.Sub(from)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectSample(StylusSample{
			Position: from.Add(delta.Scale(t)),
			Rotation: QuatIdentity,
			Pressure: pressure,
			Active:   true,
		})
	}
	s.InjectSample(StylusSample{
		Position: to,
		Rotation: QuatIdentity,
		Active:   true,
	})
}

// InjectHover queues a single zero-pressure frame at the given position,
// e.g. to trigger a highlight.
func (s *Session) InjectHover(pos Vec3) {
	s.InjectSample(StylusSample{
		Position: pos,
		Rotation: QuatIdentity,
		Active:   true,
	})
}

// InjectFrontClick queues a front-button press frame followed by a release
// frame at the same position. Consumes two frames.
func (s *Session) InjectFrontClick(pos Vec3) {
	s.InjectSample(StylusSample{
		Position: pos, Rotation: QuatIdentity,
		Active: true, FrontPressed: true,
	})
	s.InjectSample(StylusSample{
		Position: pos, Rotation: QuatIdentity,
		Active: true,
	})
}

// InjectBackClick queues a back-button press frame followed by a release
// frame at the same position. Consumes two frames.
func (s *Session) InjectBackClick(pos Vec3) {
	s.InjectSample(StylusSample{
		Position: pos, Rotation: QuatIdentity,
		Active: true, BackPressed: true,
	})
	s.InjectSample(StylusSample{
		Position: pos, Rotation: QuatIdentity,
		Active: true,
	})
}

// InjectDock queues a docked frame, forcing the session to idle.
func (s *Session) InjectDock() {
	s.InjectSample(StylusSample{Rotation: QuatIdentity, Docked: true})
}

// PendingInjections returns the number of queued synthetic samples.
func (s *Session) PendingInjections() int {
	return len(s.injectQueue)
}
