package scenecmd

import (
	"fmt"
)

// Scene is a named entity hierarchy layered on a World. Every entity in
// a scene descends from a hidden scene-root entity; creating an entity
// without an explicit parent parents it under the root.
//
// Scene implements the collaborator contract the command layer is
// written against: create/destroy, reparent, child iteration and
// component encode/decode.
type Scene struct {
	name  string
	world *World
	root  Entity
}

// NewScene creates a scene with its own backing world.
func NewScene(name string) *Scene {
	w := NewWorld()
	s := &Scene{name: name, world: w}
	s.root = w.spawn(name + "_Root")
	return s
}

// Name returns the scene's name.
func (s *Scene) Name() string {
	return s.name
}

// World returns the backing world.
func (s *Scene) World() *World {
	return s.world
}

// SceneRoot returns the hidden root entity all scene entities descend from.
func (s *Scene) SceneRoot() Entity {
	return s.root
}

// CreateEntity creates a new entity under the given parent, or under the
// scene root if no parent is given. The name must not collide with an
// existing sibling; paste-style callers pre-disambiguate with
// MakeUniqueName.
func (s *Scene) CreateEntity(name string, parent ...Entity) (Entity, error) {
	p := s.root
	if len(parent) > 0 && parent[0].Valid() {
		p = parent[0]
	}
	if !p.Valid() {
		return InvalidEntity, ErrInvalidReference
	}
	if name == "" {
		name = "Entity"
	}
	if s.childNamed(p, name).Valid() {
		return InvalidEntity, fmt.Errorf("%w: %q", ErrNameCollision, name)
	}

	e := s.world.spawn(name)
	s.world.attach(e, p)
	return e, nil
}

// DestroyEntity destroys an entity and, recursively, all of its
// descendants. Every handle to the destroyed entities becomes
// permanently invalid.
func (s *Scene) DestroyEntity(e Entity) error {
	if !e.Valid() || e == s.root {
		return ErrInvalidReference
	}
	s.world.detach(e)
	s.destroySubtree(e)
	return nil
}

func (s *Scene) destroySubtree(e Entity) {
	// Children slice is reused by despawn, copy before recursing.
	children := append([]Entity(nil), s.world.slot(e).children...)
	for _, c := range children {
		if c.Valid() {
			s.destroySubtree(c)
		}
	}
	s.world.despawn(e)
}

// SetParent moves child under parent. Moving an entity under itself or
// one of its own descendants is rejected.
func (s *Scene) SetParent(child, parent Entity) error {
	if !child.Valid() || !parent.Valid() || child == s.root {
		return ErrInvalidReference
	}
	for p := parent; p.Valid(); p = s.world.slot(p).parent {
		if p == child {
			return fmt.Errorf("scenecmd: cannot parent %q under its own subtree", child.Name())
		}
	}
	s.world.detach(child)
	s.world.attach(child, parent)
	return nil
}

// RemoveParent moves child back to the scene root.
func (s *Scene) RemoveParent(child Entity) error {
	return s.SetParent(child, s.root)
}

// GetParent returns the entity's parent, or InvalidEntity if the entity
// is parented directly to the scene root (or the handle is stale).
func (s *Scene) GetParent(e Entity) Entity {
	if !e.Valid() {
		return InvalidEntity
	}
	p := s.world.slot(e).parent
	if !p.Valid() || p == s.root {
		return InvalidEntity
	}
	return p
}

// ForEachChild calls fn for each direct child of e in creation order.
// Passing InvalidEntity iterates the scene's top-level entities.
func (s *Scene) ForEachChild(e Entity, fn func(child Entity)) {
	p := e
	if !p.Valid() {
		p = s.root
	}
	for _, c := range s.world.slot(p).children {
		if c.Valid() {
			fn(c)
		}
	}
}

// EntityCount returns the number of entities in the scene, excluding the
// hidden root.
func (s *Scene) EntityCount() int {
	n := 0
	var walk func(Entity)
	walk = func(e Entity) {
		for _, c := range s.world.slot(e).children {
			if c.Valid() {
				n++
				walk(c)
			}
		}
	}
	walk(s.root)
	return n
}

// childNamed returns the direct child of parent with the given name, or
// InvalidEntity.
func (s *Scene) childNamed(parent Entity, name string) Entity {
	if !parent.Valid() {
		parent = s.root
	}
	for _, c := range s.world.slot(parent).children {
		if c.Valid() && c.Name() == name {
			return c
		}
	}
	return InvalidEntity
}
