package scenecmd

import (
	"unsafe"

	"github.com/google/uuid"
)

// entitySlot is the storage backing one entity. Slots are recycled after
// destruction; the generation counter distinguishes the recycled entity
// from stale handles to its predecessor.
type entitySlot struct {
	gen   uint32
	alive bool
	name  string
	uuid  uuid.UUID

	parent   Entity
	children []Entity

	mask       Bitmask
	components [MaxComponents]unsafe.Pointer
}

// World owns entity storage: a slot arena with generation counters plus
// per-entity component data and hierarchy links. It has no notion of
// scenes or paths; Scene layers those on top.
//
// A World is confined to a single thread, the editor's update loop.
type World struct {
	slots []entitySlot
	free  []uint32
	count int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	// Slot 0 is never allocated so that the zero Entity can't alias a
	// live entity.
	return &World{slots: make([]entitySlot, 1)}
}

// EntityCount returns the number of live entities, including scene roots.
func (w *World) EntityCount() int {
	return w.count
}

// slot returns the storage for a handle. Callers must have checked
// validity first.
func (w *World) slot(e Entity) *entitySlot {
	return &w.slots[e.id]
}

// spawn allocates a slot for a new entity, recycling freed slots.
// Generations start at 1 and only ever grow, so a recycled slot never
// revalidates an old handle.
func (w *World) spawn(name string) Entity {
	var id uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.slots = append(w.slots, entitySlot{})
		id = uint32(len(w.slots) - 1)
	}

	s := &w.slots[id]
	s.gen++
	s.alive = true
	s.name = name
	s.uuid = uuid.New()
	s.parent = InvalidEntity
	s.children = nil
	w.count++

	return Entity{world: w, id: id, gen: s.gen}
}

// despawn releases a single entity's slot. The caller is responsible for
// the subtree and for detaching the entity from its parent first.
func (w *World) despawn(e Entity) {
	s := w.slot(e)
	s.alive = false
	s.name = ""
	s.parent = InvalidEntity
	s.children = nil
	s.mask = Bitmask{}
	s.components = [MaxComponents]unsafe.Pointer{}
	w.free = append(w.free, e.id)
	w.count--
}

// attach links child under parent, preserving sibling insertion order.
func (w *World) attach(child, parent Entity) {
	w.slot(child).parent = parent
	ps := w.slot(parent)
	ps.children = append(ps.children, child)
}

// detach unlinks child from its current parent, if any.
func (w *World) detach(child Entity) {
	cs := w.slot(child)
	if !cs.parent.Valid() {
		cs.parent = InvalidEntity
		return
	}
	ps := w.slot(cs.parent)
	for i, c := range ps.children {
		if c.id == child.id && c.gen == child.gen {
			ps.children = append(ps.children[:i], ps.children[i+1:]...)
			break
		}
	}
	cs.parent = InvalidEntity
}
