package scenecmd

import (
	"log/slog"
)

// CreateEntityCommand creates a single empty entity. Undo destroys it;
// redo creates a fresh identity with the same name and parent.
type CreateEntityCommand struct {
	scene   *Scene
	name    string
	parent  Entity
	created Entity
}

// NewCreateEntityCommand prepares creation of an entity named name under
// parent (or the scene root when parent is InvalidEntity).
func NewCreateEntityCommand(scene *Scene, name string, parent Entity) *CreateEntityCommand {
	return &CreateEntityCommand{scene: scene, name: name, parent: parent}
}

// Execute creates the entity, disambiguating the name against existing
// siblings.
func (c *CreateEntityCommand) Execute() {
	name := c.scene.MakeUniqueName(c.name, c.parent)
	e, err := c.scene.CreateEntity(name, c.parent)
	if err != nil {
		slog.Error("scenecmd: failed to create entity", "name", c.name, "err", err)
		return
	}
	c.created = e
}

// Undo destroys the created entity.
func (c *CreateEntityCommand) Undo() {
	if !c.created.Valid() {
		return
	}
	if err := c.scene.DestroyEntity(c.created); err != nil {
		slog.Error("scenecmd: failed to undo entity creation", "name", c.name, "err", err)
	}
	c.created = InvalidEntity
}

// Description implements Command.
func (c *CreateEntityCommand) Description() string {
	return "Create Entity: " + c.name
}

// CreatedEntity returns the entity created by the last Execute.
func (c *CreateEntityCommand) CreatedEntity() Entity {
	return c.created
}

// DeleteEntityCommand destroys an entity and its descendants. The
// subtree is snapshotted at construction so undo can rebuild it under
// the original parent, mechanically the same restore as a cut but
// without touching the clipboard.
type DeleteEntityCommand struct {
	cut *CutEntityCommand
}

// NewDeleteEntityCommand snapshots entity's subtree and prepares the
// deletion.
func NewDeleteEntityCommand(scene *Scene, entity Entity) *DeleteEntityCommand {
	return &DeleteEntityCommand{cut: NewCutEntityCommand(scene, entity)}
}

// Execute destroys the entity and all of its descendants.
func (c *DeleteEntityCommand) Execute() { c.cut.Execute() }

// Undo rebuilds the subtree from the snapshot.
func (c *DeleteEntityCommand) Undo() { c.cut.Undo() }

// Description implements Command.
func (c *DeleteEntityCommand) Description() string {
	return "Delete Entity: " + c.cut.name
}

// ReparentEntityCommand moves an entity under a new parent. Undo moves
// it back; the entity itself is never destroyed, so its identity is
// preserved across both directions.
type ReparentEntityCommand struct {
	scene     *Scene
	entity    Entity
	oldParent Entity
	newParent Entity
}

// NewReparentEntityCommand prepares moving entity under newParent.
// Passing InvalidEntity as newParent moves the entity to the scene root.
func NewReparentEntityCommand(scene *Scene, entity, newParent Entity) *ReparentEntityCommand {
	return &ReparentEntityCommand{
		scene:     scene,
		entity:    entity,
		oldParent: scene.GetParent(entity),
		newParent: newParent,
	}
}

func (c *ReparentEntityCommand) apply(parent Entity) {
	if !c.entity.Valid() {
		return
	}
	var err error
	if parent.Valid() {
		err = c.scene.SetParent(c.entity, parent)
	} else {
		err = c.scene.RemoveParent(c.entity)
	}
	if err != nil {
		slog.Error("scenecmd: failed to reparent entity", "entity", c.entity.Name(), "err", err)
	}
}

// Execute moves the entity under the new parent.
func (c *ReparentEntityCommand) Execute() { c.apply(c.newParent) }

// Undo moves the entity back under its old parent.
func (c *ReparentEntityCommand) Undo() { c.apply(c.oldParent) }

// Description implements Command.
func (c *ReparentEntityCommand) Description() string {
	target := "Scene Root"
	if c.newParent.Valid() {
		target = c.newParent.Name()
	}
	return "Reparent Entity: " + c.entity.Name() + " -> " + target
}
