package scenecmd

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is a handle to an entity in a World. Handles are generational:
// destroying an entity bumps its slot's generation, so a handle held
// across a destroy is detectably stale rather than silently aliasing
// whatever entity reuses the slot. A destroyed-and-recreated entity at
// the same path is a distinct identity with a fresh generation and a
// fresh instance UUID.
//
// The zero value is the invalid entity.
type Entity struct {
	world *World
	id    uint32
	gen   uint32
}

// InvalidEntity is the invalid entity handle, the zero value.
var InvalidEntity = Entity{}

// Valid reports whether the handle refers to a live entity.
// A handle becomes permanently invalid when its entity is destroyed.
func (e Entity) Valid() bool {
	if e.world == nil || e.gen == 0 || int(e.id) >= len(e.world.slots) {
		return false
	}
	s := &e.world.slots[e.id]
	return s.alive && s.gen == e.gen
}

// Name returns the entity's name, or "" for a stale handle.
func (e Entity) Name() string {
	if !e.Valid() {
		return ""
	}
	return e.world.slot(e).name
}

// UUID returns the entity's instance UUID. Instance UUIDs are assigned
// at creation and never reused; a recreated entity carries a new one.
// Returns uuid.Nil for a stale handle.
func (e Entity) UUID() uuid.UUID {
	if !e.Valid() {
		return uuid.Nil
	}
	return e.world.slot(e).uuid
}

// ComponentCount returns the number of components attached to the entity.
func (e Entity) ComponentCount() int {
	if !e.Valid() {
		return 0
	}
	return e.world.slot(e).mask.Count()
}

func (e Entity) String() string {
	if !e.Valid() {
		return "Entity{invalid}"
	}
	s := e.world.slot(e)
	return fmt.Sprintf("Entity{Name: %s, ID: %d, Gen: %d, UUID: %s}", s.name, e.id, e.gen, s.uuid)
}
