// Package ecs provides ECS adapters for scribe.
package ecs

import (
	"github.com/phanxgames/scribe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for scribe session events.
// Subscribe to this in your ECS systems to receive stroke lifecycle,
// highlight, grab, and color-cycle events.
var SessionEventType = events.NewEventType[scribe.SessionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Session events are published to SessionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) scribe.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event scribe.SessionEvent) {
	SessionEventType.Publish(s.world, event)
}
