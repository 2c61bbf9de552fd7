package scribe

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HighlightFade eases a stroke's display color from its current value to the
// highlight target over a fixed duration. The stroke's base color is cached
// before the first write, so Unhighlight always restores the exact
// pre-highlight value no matter where the fade was interrupted.
//
// There is no global animation manager — the session (or the host) calls
// Update each frame with the frame's dt.
type HighlightFade struct {
	tweens [3]*gween.Tween
	stroke *Stroke
	Done   bool
}

// NewHighlightFade marks the stroke highlighted and returns a fade easing
// its color toward Highlight(factor)'s result.
func NewHighlightFade(st *Stroke, factor float64, duration float32, fn ease.TweenFunc) *HighlightFade {
	st.beginHighlight()
	target := st.HighlightTarget(factor)
	f := &HighlightFade{stroke: st}
	f.tweens[0] = gween.New(float32(st.Color.R), float32(target.R), duration, fn)
	f.tweens[1] = gween.New(float32(st.Color.G), float32(target.G), duration, fn)
	f.tweens[2] = gween.New(float32(st.Color.B), float32(target.B), duration, fn)
	return f
}

// Update advances the fade by dt seconds and writes the eased channels to
// the stroke. If the stroke was unhighlighted (or deleted and unreferenced)
// mid-fade, Done is set and no writes occur.
func (f *HighlightFade) Update(dt float32) {
	if f.Done {
		return
	}
	if !f.stroke.Highlighted() {
		f.Done = true
		return
	}

	allDone := true
	var vals [3]float32
	for i := range f.tweens {
		v, finished := f.tweens[i].Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	f.stroke.Color.R = float64(vals[0])
	f.stroke.Color.G = float64(vals[1])
	f.stroke.Color.B = float64(vals[2])
	f.Done = allDone
}
