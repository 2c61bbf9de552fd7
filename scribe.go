package scribe

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Strokes are drawn opaque; alpha exists for hosts that composite previews.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the brightest opaque color.
var ColorWhite = Color{1, 1, 1, 1}

// Mode identifies the session's interaction state.
type Mode uint8

const (
	ModeIdle        Mode = iota // no stroke active, nothing under the stylus
	ModeDrawing                 // analog pressure held, builder appending samples
	ModeHighlighted             // a stroke is within highlight range of the stylus
	ModeGrabbing                // a highlighted stroke is being rigidly moved
)

// String returns the mode name for logs and test failure messages.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeHighlighted:
		return "highlighted"
	case ModeGrabbing:
		return "grabbing"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventStrokeStarted       EventType = iota // fires when drawing begins (stroke created)
	EventStrokeFinished                       // fires when drawing ends (stroke finalized)
	EventStrokeHighlighted                    // fires when a stroke gains the highlight
	EventStrokeUnhighlighted                  // fires when a stroke loses the highlight
	EventStrokeGrabbed                        // fires when a grab begins on the highlighted stroke
	EventStrokeReleased                       // fires when a grab ends (points stay put)
	EventStrokeDeleted                        // fires when the highlighted stroke is deleted
	EventColorCycled                          // fires when the palette cursor advances
)

// SessionEvent carries the data for one discrete interaction event.
// Events are dispatched synchronously from Session.Update, at most a handful
// per frame.
type SessionEvent struct {
	Type       EventType
	StrokeID   uint32 // zero for EventColorCycled
	Position   Vec3   // stylus position when the event fired
	Color      Color  // current drawing color (post-cycle for EventColorCycled)
	ColorIndex int    // palette cursor (valid for EventColorCycled)
}

// EventStore is the interface for optional ECS integration.
// When set on a Session, interaction events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event SessionEvent)
}

// Pulser receives advisory haptic signals. Implementations must not block;
// the session fires and forgets. Strength is in [0, 1], duration in seconds.
type Pulser interface {
	Pulse(strength, duration float64)
}

// --- ID counter ---

// strokeIDCounter is a plain counter (no atomic — scribe is single-threaded).
var strokeIDCounter uint32

func nextStrokeID() uint32 {
	strokeIDCounter++
	return strokeIDCounter
}
