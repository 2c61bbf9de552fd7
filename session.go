package scribe

import (
	"time"

	"github.com/tanema/gween/ease"
)

// SessionConfig configures the interaction session.
type SessionConfig struct {
	// Builder holds the stroke capture settings.
	Builder BuilderConfig

	// HighlightDistance is the maximum stylus-to-stroke distance for a
	// stroke to gain the highlight.
	HighlightDistance float64

	// HighlightFactor is the brightness boost applied to a highlighted
	// stroke's color, in [0, 1].
	HighlightFactor float64

	// HighlightFadeSeconds eases the highlight color in over this duration.
	// Zero snaps instantly. Unhighlighting always restores the exact base
	// color immediately, fade or not.
	HighlightFadeSeconds float64

	// FrameRate is the host's update cadence in frames per second, used to
	// derive the fixed per-frame dt for fades.
	FrameRate float64

	// Palette is the ordered color cycle for new strokes.
	Palette Palette
}

// DefaultSessionConfig returns settings tuned for hand-scale drawing
// (units are meters).
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Builder:           DefaultBuilderConfig(),
		HighlightDistance: 0.03,
		HighlightFactor:   0.6,
		FrameRate:         60,
		Palette:           DefaultPalette(),
	}
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(SessionEvent)
}

// CallbackHandle allows removing a registered session event callback.
type CallbackHandle struct {
	id   uint32
	sess *Session
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.sess == nil {
		return
	}
	s := h.sess.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.sess.handlers = s[:len(s)-1]
			return
		}
	}
}

// --- Session ---

// Session is the top-level object that owns the stroke store, the builder,
// and the interaction state machine. Exactly one logical thread of control
// drives it: call Update once per frame with the current stylus sample, and
// read stroke state only between Update calls.
type Session struct {
	cfg     SessionConfig
	store   *Store
	builder *Builder

	mode          Mode
	activeID      uint32 // stroke being drawn, 0 if none
	highlightedID uint32 // stroke under the stylus, 0 if none

	// Grab state. The snapshot is immutable for the grab's duration; every
	// frame re-derives points from it so the transform never accumulates.
	grabID        uint32
	grabAnchorPos Vec3
	grabAnchorRot Quat
	grabSnapshot  []Vec3

	colorIndex int
	fade       *HighlightFade

	prev StylusSample // previous frame's sample, for edge detection

	handlers      []eventHandler
	nextHandlerID uint32
	eventStore    EventStore
	pulser        Pulser

	injectQueue []StylusSample

	debug bool
	stats frameStats
}

// NewSession creates a session with the given configuration.
func NewSession(cfg SessionConfig) *Session {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	return &Session{
		cfg:     cfg,
		store:   NewStore(),
		builder: NewBuilder(cfg.Builder),
	}
}

// Strokes returns the session's stroke store.
func (s *Session) Strokes() *Store {
	return s.store
}

// Mode returns the current interaction state.
func (s *Session) Mode() Mode {
	return s.mode
}

// ActiveStrokeID returns the id of the stroke being drawn, or 0.
func (s *Session) ActiveStrokeID() uint32 {
	return s.activeID
}

// HighlightedStrokeID returns the id of the highlighted stroke, or 0.
func (s *Session) HighlightedStrokeID() uint32 {
	return s.highlightedID
}

// ColorIndex returns the palette cursor position.
func (s *Session) ColorIndex() int {
	return s.colorIndex
}

// CurrentColor returns the color the next stroke will be drawn in.
func (s *Session) CurrentColor() Color {
	return s.cfg.Palette.At(s.colorIndex)
}

// OnEvent registers a session-level callback for interaction events.
func (s *Session) OnEvent(fn func(SessionEvent)) CallbackHandle {
	s.nextHandlerID++
	id := s.nextHandlerID
	s.handlers = append(s.handlers, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, sess: s}
}

// SetEventStore sets the optional ECS bridge.
func (s *Session) SetEventStore(store EventStore) {
	s.eventStore = store
}

// SetPulser sets the optional haptic sink. Pulses are advisory and
// fire-and-forget; the session is correct without them.
func (s *Session) SetPulser(p Pulser) {
	s.pulser = p
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are logged to stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances the session by one frame. All state transitions and
// geometric recomputation complete before Update returns; nothing runs
// between frames.
func (s *Session) Update(sample StylusSample) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// Injected synthetics replace the polled sample, one per frame.
	if len(s.injectQueue) > 0 {
		sample = s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	}

	sample = sample.sanitize()
	ev := diffSamples(s.prev, sample)

	if sample.Docked {
		// Dock forces idle from any state. Strokes are kept; only the
		// session's references are cleared.
		if ev.docked || s.mode != ModeIdle {
			s.resetToIdle(sample)
		}
		s.prev = sample
		return
	}

	s.updateDrawing(sample)
	if s.mode == ModeIdle || s.mode == ModeHighlighted {
		s.updateHighlight(sample)
	}
	s.handleButtons(sample, ev)
	if s.mode == ModeGrabbing {
		s.updateGrab(sample)
	}

	if s.fade != nil {
		s.fade.Update(float32(1 / s.cfg.FrameRate))
		if s.fade.Done {
			s.fade = nil
		}
	}

	s.prev = sample

	if s.debug {
		s.stats.updateTime = time.Since(t0)
		s.stats.mode = s.mode
		s.stats.strokes = s.store.Len()
		s.stats.points = s.store.TotalPoints()
		s.debugLog()
	}
}

// --- Per-frame stages ---

// updateDrawing enters, continues, or leaves the drawing state based on the
// analog input. Drawing takes priority over every other state.
func (s *Session) updateDrawing(sample StylusSample) {
	drawing := sample.Pressure > 0 && sample.Active && !sample.Docked

	switch {
	case drawing && s.mode != ModeDrawing:
		// Entering edge: leave whatever state we were in first.
		if s.mode == ModeGrabbing {
			s.endGrab(sample)
		}
		if s.highlightedID != 0 {
			s.unhighlight(sample)
		}
		st := s.builder.Begin(s.CurrentColor())
		s.store.Add(st)
		s.activeID = st.ID
		s.mode = ModeDrawing
		s.emit(SessionEvent{
			Type: EventStrokeStarted, StrokeID: st.ID,
			Position: sample.Position, Color: st.Color,
		})
		s.builder.AddSample(sample.Position, sample.Pressure)

	case drawing:
		s.builder.AddSample(sample.Position, sample.Pressure)

	case s.mode == ModeDrawing:
		s.mode = ModeIdle
		s.finishStroke(sample)
	}
}

// finishStroke finalizes the active stroke. A stroke that never captured a
// point (every sample rejected, e.g. all non-finite) is removed from the
// store instead of being finished.
func (s *Session) finishStroke(sample StylusSample) {
	st := s.builder.End()
	s.activeID = 0
	if st == nil {
		return
	}
	if st.Len() == 0 {
		s.store.Remove(st.ID)
		return
	}
	s.emit(SessionEvent{
		Type: EventStrokeFinished, StrokeID: st.ID,
		Position: sample.Position, Color: st.Color,
	})
}

// updateHighlight runs the nearest-stroke query and moves the highlight.
// Only called in idle or highlighted states.
func (s *Session) updateHighlight(sample StylusSample) {
	var id uint32
	var ok bool
	if sample.Active && !sample.Docked {
		var t0 time.Time
		if s.debug {
			t0 = time.Now()
		}
		id, ok = s.store.Nearest(sample.Position, s.cfg.HighlightDistance)
		if s.debug {
			s.stats.queryTime = time.Since(t0)
		}
	}

	switch {
	case ok && id != s.highlightedID:
		if s.highlightedID != 0 {
			s.unhighlight(sample)
		}
		st := s.store.Get(id)
		if st == nil {
			return
		}
		if s.cfg.HighlightFadeSeconds > 0 {
			s.fade = NewHighlightFade(st, s.cfg.HighlightFactor,
				float32(s.cfg.HighlightFadeSeconds), ease.OutQuad)
		} else {
			st.Highlight(s.cfg.HighlightFactor)
		}
		s.highlightedID = id
		s.mode = ModeHighlighted
		s.pulse(0.3, 0.02)
		s.emit(SessionEvent{
			Type: EventStrokeHighlighted, StrokeID: id,
			Position: sample.Position, Color: st.Color,
		})

	case ok:
		// Same stroke still nearest; re-enter highlighted after a grab
		// released over the stroke.
		s.mode = ModeHighlighted

	case s.highlightedID != 0:
		s.unhighlight(sample)
		s.mode = ModeIdle
	}
}

// handleButtons consumes this frame's edge-triggered button events.
func (s *Session) handleButtons(sample StylusSample, ev buttonEvents) {
	if ev.frontPressed {
		switch s.mode {
		case ModeHighlighted:
			s.beginGrab(sample)
		case ModeGrabbing:
			// Cannot re-press a held button; ignore.
		default:
			s.colorIndex = s.cfg.Palette.Next(s.colorIndex)
			s.emit(SessionEvent{
				Type: EventColorCycled, Position: sample.Position,
				Color: s.CurrentColor(), ColorIndex: s.colorIndex,
			})
		}
	}

	if ev.frontReleased && s.mode == ModeGrabbing {
		s.endGrab(sample)
		s.mode = ModeIdle
	}

	if ev.backPressed && s.mode == ModeHighlighted {
		id := s.highlightedID
		st := s.store.Get(id)
		s.store.Remove(id) // no-op when already gone
		s.highlightedID = 0
		s.fade = nil
		s.mode = ModeIdle
		if st != nil {
			s.pulse(0.8, 0.05)
			s.emit(SessionEvent{
				Type: EventStrokeDeleted, StrokeID: id,
				Position: sample.Position, Color: st.BaseColor(),
			})
		}
	}
}

// beginGrab snapshots the highlighted stroke and the current pose as the
// grab anchor.
func (s *Session) beginGrab(sample StylusSample) {
	st := s.store.Get(s.highlightedID)
	if st == nil {
		s.highlightedID = 0
		s.mode = ModeIdle
		return
	}
	s.grabID = st.ID
	s.grabAnchorPos = sample.Position
	s.grabAnchorRot = sample.Rotation
	s.grabSnapshot = st.SnapshotPoints()
	s.mode = ModeGrabbing
	s.pulse(0.5, 0.03)
	s.emit(SessionEvent{
		Type: EventStrokeGrabbed, StrokeID: st.ID,
		Position: sample.Position, Color: st.Color,
	})
}

// updateGrab re-derives the grabbed stroke's points from the snapshot using
// this frame's pose. rotDelta composes the current rotation with the inverse
// anchor rotation, so the stroke follows the stylus rigidly.
func (s *Session) updateGrab(sample StylusSample) {
	st := s.store.Get(s.grabID)
	if st == nil || len(st.Points) != len(s.grabSnapshot) {
		s.endGrab(sample)
		s.mode = ModeIdle
		return
	}
	// An unchanged pose must leave points bit-identical to the snapshot;
	// round-tripping through the transform would not guarantee that.
	if sample.Rotation == s.grabAnchorRot && sample.Position == s.grabAnchorPos {
		copy(st.Points, s.grabSnapshot)
		return
	}
	rotDelta := sample.Rotation.Mul(s.grabAnchorRot.Inverse())
	st.ApplyRigid(rotDelta, s.grabAnchorPos, sample.Position, s.grabSnapshot)
}

// endGrab finalizes a grab. Points stay at their last grabbed position;
// nothing reverts on release.
func (s *Session) endGrab(sample StylusSample) {
	if s.grabID == 0 {
		return
	}
	id := s.grabID
	s.grabID = 0
	s.grabSnapshot = nil
	if st := s.store.Get(id); st != nil {
		s.emit(SessionEvent{
			Type: EventStrokeReleased, StrokeID: id,
			Position: sample.Position, Color: st.Color,
		})
	}
}

// unhighlight restores the highlighted stroke's base color (exactly, even
// mid-fade) and emits the event. Does not change the mode.
func (s *Session) unhighlight(sample StylusSample) {
	id := s.highlightedID
	s.highlightedID = 0
	s.fade = nil
	st := s.store.Get(id)
	if st == nil {
		return
	}
	st.Unhighlight()
	s.pulse(0.2, 0.02)
	s.emit(SessionEvent{
		Type: EventStrokeUnhighlighted, StrokeID: id,
		Position: sample.Position, Color: st.Color,
	})
}

// resetToIdle forces the session to idle from any state: finalize drawing,
// drop the grab, clear the highlight. Strokes themselves are untouched.
func (s *Session) resetToIdle(sample StylusSample) {
	if s.mode == ModeDrawing {
		s.finishStroke(sample)
	}
	if s.mode == ModeGrabbing {
		s.endGrab(sample)
	}
	if s.highlightedID != 0 {
		s.unhighlight(sample)
	}
	s.mode = ModeIdle
}

// emit dispatches an event to session-level handlers and the ECS bridge.
func (s *Session) emit(ev SessionEvent) {
	for _, h := range s.handlers {
		h.fn(ev)
	}
	if s.eventStore != nil {
		s.eventStore.EmitEvent(ev)
	}
}

// pulse forwards an advisory haptic signal if a sink is attached.
func (s *Session) pulse(strength, duration float64) {
	if s.pulser != nil {
		s.pulser.Pulse(strength, duration)
	}
}
