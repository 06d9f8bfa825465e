package ecs

import (
	"github.com/phanxgames/spotlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SequenceEventType is the Donburi event type for spotlight lifecycle events.
var SequenceEventType = events.NewEventType[spotlight.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on SequenceEventType and delivered by ProcessEvents, usually
// once per ECS tick.
func NewDonburiStore(world donburi.World) spotlight.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event spotlight.Event) {
	SequenceEventType.Publish(s.world, event)
}
