package scribe

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a session test script.
type testStep struct {
	Action   string  `json:"action"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Z        float64 `json:"z,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	ToZ      float64 `json:"toZ,omitempty"`
	Pressure float64 `json:"pressure,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a session test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected stylus input across frames for automated
// interaction testing. Drive it by calling Step once per frame alongside
// Session.Update.
//
// Supported actions: "stroke" (draw from x,y,z to toX,toY,toZ over frames at
// pressure), "hover" (one zero-pressure frame at x,y,z), "front_click",
// "back_click" (press+release at x,y,z), "dock", and "wait" (idle frames).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to drive a session.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed and
// their injected samples consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame: once the session has drained the
// previous step's injections, the next step is executed. Call before
// Session.Update each frame.
func (r *TestRunner) Step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.PendingInjections() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "stroke":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		pressure := st.Pressure
		if pressure <= 0 {
			pressure = 1
		}
		s.InjectStroke(Vec3{st.X, st.Y, st.Z}, Vec3{st.ToX, st.ToY, st.ToZ},
			pressure, frames)
	case "hover":
		s.InjectHover(Vec3{st.X, st.Y, st.Z})
	case "front_click":
		s.InjectFrontClick(Vec3{st.X, st.Y, st.Z})
	case "back_click":
		s.InjectBackClick(Vec3{st.X, st.Y, st.Z})
	case "dock":
		s.InjectDock()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.PendingInjections() == 0 {
		r.done = true
	}
}

// RunScript drives the session until the script completes, calling Step and
// Update once per simulated frame. maxFrames bounds the run; returns an
// error if the script did not finish within the bound.
func RunScript(s *Session, r *TestRunner, maxFrames int) error {
	for frame := 0; frame < maxFrames; frame++ {
		r.Step(s)
		s.Update(StylusSample{Rotation: QuatIdentity})
		if r.Done() && s.PendingInjections() == 0 {
			return nil
		}
	}
	return fmt.Errorf("run script: not done after %d frames", maxFrames)
}
