// Package ecs provides ECS adapters for scribe's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges scribe session
// events (stroke started/finished, highlight, grab, delete, color cycle) into
// a [Donburi] world as typed events. Subscribe to [SessionEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
