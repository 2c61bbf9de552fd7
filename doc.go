// Package scribe is a frame-driven 3D freehand drawing engine for stylus-like
// input devices.
//
// Scribe turns a per-frame stream of device poses and analog pressure samples
// into persistent width-varying 3D polylines (strokes), and provides the
// interaction logic to highlight, recolor, grab, and delete them. It does not
// poll devices or render geometry itself: the host feeds a [StylusSample]
// each frame and consumes the authoritative stroke state, optionally through
// the ebiten ribbon helpers.
//
// # Quick start
//
// Create a [Session] and call [Session.Update] once per frame with the
// current device sample:
//
//	sess := scribe.NewSession(scribe.DefaultSessionConfig())
//	// each frame:
//	sess.Update(scribe.StylusSample{
//		Position: pos, Rotation: rot, Pressure: p,
//		Active: true,
//	})
//
// Strokes live in the session's [Store]. Iterate them for rendering:
//
//	sess.Strokes().Each(func(st *scribe.Stroke) {
//		// st.Points, st.WidthAt(t), st.Color
//	})
//
// # Interaction model
//
// The session is a four-state machine: idle, drawing, highlighted, grabbing.
// Pressure above zero draws; hovering near an existing stroke highlights it;
// the front button grabs a highlighted stroke (rigid move+rotate) or cycles
// the palette color; the back button deletes a highlighted stroke. Docking
// the device resets the session to idle.
//
// # Key features
//
// Incremental width-curve re-parameterization while drawing, deterministic
// nearest-stroke queries, rigid grab transforms anchored at grab start,
// scene-level event callbacks with an optional ECS bridge (via [Donburi]
// adapter in scribe/ecs), highlight fades (via [gween]), scripted session
// replay for automated testing, and ebiten ribbon mesh generation.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package scribe
