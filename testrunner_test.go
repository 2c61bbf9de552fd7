package scribe

import (
	"strings"
	"testing"
)

func TestLoadTestScriptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"steps": [`},
		{"wrong type", `{"steps": "hover"}`},
		{"no steps", `{"steps": []}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if r != nil {
				t.Error("runner returned alongside an error")
			}
			if !strings.Contains(err.Error(), "parse test script") {
				t.Errorf("error %q missing context prefix", err)
			}
		})
	}
}

func TestLoadTestScriptValid(t *testing.T) {
	r, err := LoadTestScript([]byte(`{
		"steps": [
			{"action": "stroke", "toZ": 1, "pressure": 0.5, "frames": 4},
			{"action": "wait", "frames": 2},
			{"action": "hover", "z": 0.5}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if r.Done() {
		t.Error("fresh runner reports done")
	}
}

func TestRunScriptDrawHighlightDelete(t *testing.T) {
	script := `{
		"steps": [
			{"action": "stroke", "toZ": 1, "frames": 5},
			{"action": "wait", "frames": 3},
			{"action": "hover", "z": 0.5},
			{"action": "back_click", "z": 0.5},
			{"action": "stroke", "x": 1, "toX": 1, "toZ": 1, "frames": 5},
			{"action": "dock"}
		]
	}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	s := NewSession(DefaultSessionConfig())
	if err := RunScript(s, r, 200); err != nil {
		t.Fatalf("RunScript: %v", err)
	}

	// First stroke deleted by the back click; second survives the dock.
	if s.Strokes().Len() != 1 {
		t.Errorf("store has %d strokes, want 1", s.Strokes().Len())
	}
	if s.Mode() != ModeIdle {
		t.Errorf("final mode = %v, want idle", s.Mode())
	}
}

func TestRunScriptColorCycle(t *testing.T) {
	script := `{
		"steps": [
			{"action": "front_click", "x": 100, "y": 100, "z": 100},
			{"action": "front_click", "x": 100, "y": 100, "z": 100}
		]
	}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s := NewSession(DefaultSessionConfig())
	if err := RunScript(s, r, 50); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if s.ColorIndex() != 2 {
		t.Errorf("color index = %d, want 2", s.ColorIndex())
	}
}

func TestRunScriptDefaultsStrokePressure(t *testing.T) {
	// Pressure omitted: the runner substitutes full pressure so the stroke
	// actually draws.
	r, err := LoadTestScript([]byte(`{
		"steps": [{"action": "stroke", "toZ": 1, "frames": 3}]
	}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s := NewSession(DefaultSessionConfig())
	if err := RunScript(s, r, 50); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if s.Strokes().Len() != 1 {
		t.Fatalf("store has %d strokes, want 1", s.Strokes().Len())
	}
	var st *Stroke
	s.Strokes().Each(func(x *Stroke) { st = x })
	if last := st.Knots[len(st.Knots)-1]; last.Width != 0.02 {
		t.Errorf("final knot width = %v, want full-pressure 0.02", last.Width)
	}
}

func TestRunScriptUnknownActionIsSkipped(t *testing.T) {
	r, err := LoadTestScript([]byte(`{
		"steps": [
			{"action": "teleport"},
			{"action": "hover", "z": 0.5}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s := NewSession(DefaultSessionConfig())
	if err := RunScript(s, r, 50); err != nil {
		t.Errorf("RunScript with unknown action: %v", err)
	}
}

func TestRunScriptFrameBound(t *testing.T) {
	r, err := LoadTestScript([]byte(`{
		"steps": [{"action": "wait", "frames": 100}]
	}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s := NewSession(DefaultSessionConfig())
	if err := RunScript(s, r, 5); err == nil {
		t.Error("RunScript finished inside an impossible frame bound")
	}
}

func TestRunnerStepWaitsForDrain(t *testing.T) {
	r, err := LoadTestScript([]byte(`{
		"steps": [
			{"action": "hover", "z": 0.5},
			{"action": "dock"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s := NewSession(DefaultSessionConfig())

	r.Step(s) // queues the hover
	if s.PendingInjections() != 1 {
		t.Fatalf("pending = %d, want 1", s.PendingInjections())
	}
	r.Step(s) // must not advance while the hover is still queued
	if s.PendingInjections() != 1 {
		t.Errorf("Step advanced past a pending injection: pending = %d", s.PendingInjections())
	}
}
