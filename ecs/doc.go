// Package ecs provides ECS adapters for spotlight sequences.
//
// The primary adapter is [NewDonburiStore], which mirrors spotlight lifecycle
// events (sequence started, target shown, target closed, sequence ended) into
// a [Donburi] world as typed events. Subscribe to [SequenceEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tour.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
