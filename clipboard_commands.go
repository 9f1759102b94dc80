package scenecmd

import (
	"log/slog"
)

// SpawnOffset is the distance added to both planar coordinates of a
// pasted or duplicated root so the new entity doesn't sit exactly on top
// of its source. Descendants keep their serialized positions; they
// inherit the displacement through normal hierarchy composition.
const SpawnOffset = 0.5

// CopyEntity serializes entity's subtree and stores it in the clipboard
// bridge. Copying mutates nothing and is not undoable, so it never
// enters the command history. An invalid selection is a reported no-op.
func CopyEntity(scene *Scene, clipboard *ClipboardBridge, entity Entity) error {
	if !entity.Valid() {
		slog.Info("scenecmd: no valid entity to copy")
		return ErrInvalidReference
	}

	payload, err := scene.SerializeEntityTree(entity)
	if err != nil {
		slog.Error("scenecmd: failed to serialize entity for copy", "entity", entity.Name(), "err", err)
		return err
	}
	if err := clipboard.SetPayload(payload); err != nil {
		slog.Error("scenecmd: failed to store copied entity", "entity", entity.Name(), "err", err)
		return err
	}

	slog.Info("scenecmd: copied entity to clipboard", "entity", entity.Name(), "records", len(payload.Entities))
	return nil
}

// offsetSpawnPosition nudges the planar coordinates of an entity's
// Transform, if it has one.
func offsetSpawnPosition(e Entity, amount float64) {
	if t := Get[Transform](e); t != nil {
		t.Position[0] += amount
		t.Position[1] += amount
	}
}

// CutEntityCommand removes an entity (and its descendants) from the
// scene. The subtree is snapshotted at construction, before anything is
// destroyed, so undo can rebuild it under the original parent with
// fresh identities.
type CutEntityCommand struct {
	scene     *Scene
	entity    Entity
	name      string
	parent    Entity
	hadParent bool
	snapshot  *EntityTreePayload
}

// NewCutEntityCommand snapshots entity's subtree and prepares the cut.
// If entity is stale the command becomes a reported no-op.
func NewCutEntityCommand(scene *Scene, entity Entity) *CutEntityCommand {
	c := &CutEntityCommand{scene: scene, entity: entity, name: entity.Name()}
	if !entity.Valid() {
		slog.Info("scenecmd: no valid entity to cut")
		return c
	}

	c.parent = scene.GetParent(entity)
	c.hadParent = c.parent.Valid()

	snapshot, err := scene.SerializeEntityTree(entity)
	if err != nil {
		slog.Error("scenecmd: failed to snapshot entity for cut", "entity", c.name, "err", err)
		return c
	}
	c.snapshot = snapshot
	return c
}

// Execute destroys the entity and all of its descendants.
func (c *CutEntityCommand) Execute() {
	if !c.entity.Valid() {
		return
	}
	if err := c.scene.DestroyEntity(c.entity); err != nil {
		slog.Error("scenecmd: failed to cut entity", "entity", c.name, "err", err)
	}
}

// Undo rebuilds the subtree from the snapshot under the original
// parent. The recreated entities are fresh identities; the old handles
// stay permanently invalid. When the original parent no longer exists
// the subtree is recreated at the scene root instead of failing the
// undo.
func (c *CutEntityCommand) Undo() {
	if c.snapshot == nil {
		return
	}

	parent := c.parent
	if c.hadParent && !parent.Valid() {
		slog.Warn("scenecmd: restoring cut entity at scene root", "entity", c.name, "err", ErrOriginalParentGone)
		parent = InvalidEntity
	}

	root, err := c.scene.DeserializeEntityTree(c.snapshot, parent)
	if err != nil {
		slog.Error("scenecmd: failed to restore cut entity", "entity", c.name, "err", err)
		return
	}
	// A later Execute must destroy the recreated tree, not the stale
	// original handle.
	c.entity = root
}

// Description implements Command.
func (c *CutEntityCommand) Description() string {
	return "Cut Entity: " + c.name
}

// PasteEntityCommand recreates entities from clipboard payload text
// under a target parent (or the scene root), with fresh identities,
// sibling-unique names and an optional spawn offset on the root.
type PasteEntityCommand struct {
	scene         *Scene
	clipboardText string
	parent        Entity
	offsetEnabled bool
	offset        float64
	pasted        Entity
}

// NewPasteEntityCommand prepares a paste of the given clipboard text.
// parent may be InvalidEntity to paste at the scene root.
func NewPasteEntityCommand(scene *Scene, clipboardText string, parent Entity, offsetPosition bool) *PasteEntityCommand {
	return &PasteEntityCommand{
		scene:         scene,
		clipboardText: clipboardText,
		parent:        parent,
		offsetEnabled: offsetPosition,
		offset:        SpawnOffset,
	}
}

// Execute parses the payload and creates its entities. Malformed or
// empty payloads are reported and create nothing; a record that fails
// mid-tree is skipped without aborting the rest.
func (c *PasteEntityCommand) Execute() {
	if c.clipboardText == "" {
		slog.Info("scenecmd: clipboard is empty, nothing to paste")
		return
	}

	payload, err := ParsePayload(c.clipboardText)
	if err != nil {
		slog.Error("scenecmd: cannot paste clipboard content", "err", err)
		return
	}

	root, err := c.scene.DeserializeEntityTree(payload, c.parent)
	if err != nil {
		slog.Error("scenecmd: paste failed", "err", err)
		return
	}
	c.pasted = root

	if c.offsetEnabled {
		offsetSpawnPosition(root, c.offset)
	}
	slog.Info("scenecmd: pasted entity tree", "root", root.Name(), "records", len(payload.Entities))
}

// Undo destroys the pasted root and its descendants.
func (c *PasteEntityCommand) Undo() {
	if !c.pasted.Valid() {
		return
	}
	if err := c.scene.DestroyEntity(c.pasted); err != nil {
		slog.Error("scenecmd: failed to undo paste", "err", err)
	}
	c.pasted = InvalidEntity
}

// Description implements Command.
func (c *PasteEntityCommand) Description() string {
	return "Paste Entity"
}

// PastedEntity returns the root created by the last Execute, so callers
// can select it.
func (c *PasteEntityCommand) PastedEntity() Entity {
	return c.pasted
}

// DuplicateEntityCommand clones an entity's subtree next to it: same
// parent, sibling-unique names, optional spawn offset on the root. The
// source subtree is serialized once, on first Execute, so redo works
// even after the source itself is gone.
type DuplicateEntityCommand struct {
	scene         *Scene
	source        Entity
	name          string
	parent        Entity
	payload       *EntityTreePayload
	offsetEnabled bool
	offset        float64
	duplicated    Entity
}

// NewDuplicateEntityCommand prepares a duplicate of entity.
func NewDuplicateEntityCommand(scene *Scene, entity Entity) *DuplicateEntityCommand {
	return &DuplicateEntityCommand{
		scene:         scene,
		source:        entity,
		name:          entity.Name(),
		offsetEnabled: true,
		offset:        SpawnOffset,
	}
}

// Execute replays the source subtree under the source's parent.
// An invalid source is a reported no-op.
func (c *DuplicateEntityCommand) Execute() {
	if c.payload == nil {
		if !c.source.Valid() {
			slog.Info("scenecmd: no valid entity to duplicate")
			return
		}
		payload, err := c.scene.SerializeEntityTree(c.source)
		if err != nil {
			slog.Error("scenecmd: failed to serialize entity for duplicate", "entity", c.name, "err", err)
			return
		}
		c.payload = payload
		c.parent = c.scene.GetParent(c.source)
	}

	root, err := c.scene.DeserializeEntityTree(c.payload, c.parent)
	if err != nil {
		slog.Error("scenecmd: duplicate failed", "entity", c.name, "err", err)
		return
	}
	c.duplicated = root

	if c.offsetEnabled {
		offsetSpawnPosition(root, c.offset)
	}
	slog.Info("scenecmd: duplicated entity", "entity", c.name, "root", root.Name())
}

// Undo destroys the duplicated root and its descendants.
func (c *DuplicateEntityCommand) Undo() {
	if !c.duplicated.Valid() {
		return
	}
	if err := c.scene.DestroyEntity(c.duplicated); err != nil {
		slog.Error("scenecmd: failed to undo duplicate", "err", err)
	}
	c.duplicated = InvalidEntity
}

// Description implements Command.
func (c *DuplicateEntityCommand) Description() string {
	return "Duplicate Entity: " + c.name
}

// DuplicatedEntity returns the root created by the last Execute.
func (c *DuplicateEntityCommand) DuplicatedEntity() Entity {
	return c.duplicated
}
