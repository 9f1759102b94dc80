package scenecmd

import (
	"log/slog"
)

// Editor ties a scene, a command history and the clipboard bridge
// together behind the entry points the editor UI calls: selection,
// copy/cut/paste/duplicate and undo/redo. Every mutating entry point
// goes through the history so it is undoable.
type Editor struct {
	scene     *Scene
	history   *CommandHistory
	clipboard *ClipboardBridge
	cfg       Config
	selected  Entity
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithConfig applies loaded settings instead of DefaultConfig.
func WithConfig(cfg Config) EditorOption {
	return func(ed *Editor) {
		ed.cfg = cfg
	}
}

// WithOSClipboard mirrors copied payloads to the given OS clipboard
// instead of an in-process one.
func WithOSClipboard(clipboard TextClipboard) EditorOption {
	return func(ed *Editor) {
		ed.clipboard = NewClipboardBridge(clipboard)
	}
}

// NewEditor creates an editor over scene.
func NewEditor(scene *Scene, opts ...EditorOption) *Editor {
	ed := &Editor{
		scene:     scene,
		history:   NewCommandHistory(),
		clipboard: NewClipboardBridge(nil),
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(ed)
	}
	ed.history.SetMaxDepth(ed.cfg.History.MaxDepth)
	return ed
}

// Scene returns the edited scene.
func (ed *Editor) Scene() *Scene {
	return ed.scene
}

// History returns the editor's command history.
func (ed *Editor) History() *CommandHistory {
	return ed.history
}

// Clipboard returns the editor's clipboard bridge.
func (ed *Editor) Clipboard() *ClipboardBridge {
	return ed.clipboard
}

// Select sets the current selection.
func (ed *Editor) Select(e Entity) {
	ed.selected = e
}

// Selected returns the current selection. Returns InvalidEntity when the
// selected entity has since been destroyed.
func (ed *Editor) Selected() Entity {
	if !ed.selected.Valid() {
		return InvalidEntity
	}
	return ed.selected
}

// ClearSelection deselects.
func (ed *Editor) ClearSelection() {
	ed.selected = InvalidEntity
}

// Copy serializes the selected entity's subtree to the clipboard.
// Copying is not undoable and does not enter the history.
func (ed *Editor) Copy() {
	_ = CopyEntity(ed.scene, ed.clipboard, ed.selected)
}

// Cut copies the selected entity's subtree to the clipboard and then
// removes it through an undoable command. The cut entity is deselected.
func (ed *Editor) Cut() {
	if !ed.selected.Valid() {
		slog.Info("scenecmd: no entity selected to cut")
		return
	}
	if err := CopyEntity(ed.scene, ed.clipboard, ed.selected); err != nil {
		return
	}

	ed.history.Execute(NewCutEntityCommand(ed.scene, ed.selected))
	ed.ClearSelection()
}

// Paste recreates the clipboard's entities. When the selection is a
// Group entity the paste goes under it, otherwise to the scene root.
// The pasted root becomes the selection.
func (ed *Editor) Paste() {
	text := ed.clipboard.Get()
	if text == "" {
		slog.Info("scenecmd: clipboard is empty, nothing to paste")
		return
	}

	parent := InvalidEntity
	if ed.selected.Valid() && Has[Group](ed.selected) {
		parent = ed.selected
	}

	cmd := NewPasteEntityCommand(ed.scene, text, parent, ed.cfg.Clipboard.OffsetEnabled)
	cmd.offset = ed.cfg.Clipboard.Offset
	ed.history.Execute(cmd)

	if pasted := cmd.PastedEntity(); pasted.Valid() {
		ed.Select(pasted)
	}
}

// Duplicate clones the selected entity's subtree next to it. The clone
// becomes the selection.
func (ed *Editor) Duplicate() {
	if !ed.selected.Valid() {
		slog.Info("scenecmd: no entity selected to duplicate")
		return
	}

	cmd := NewDuplicateEntityCommand(ed.scene, ed.selected)
	cmd.offsetEnabled = ed.cfg.Clipboard.OffsetEnabled
	cmd.offset = ed.cfg.Clipboard.Offset
	ed.history.Execute(cmd)

	if dup := cmd.DuplicatedEntity(); dup.Valid() {
		ed.Select(dup)
	}
}

// Delete removes the selected entity through an undoable command without
// touching the clipboard.
func (ed *Editor) Delete() {
	if !ed.selected.Valid() {
		slog.Info("scenecmd: no entity selected to delete")
		return
	}
	ed.history.Execute(NewDeleteEntityCommand(ed.scene, ed.selected))
	ed.ClearSelection()
}

// Undo reverses the most recent command.
func (ed *Editor) Undo() bool {
	return ed.history.Undo()
}

// Redo re-applies the most recently undone command.
func (ed *Editor) Redo() bool {
	return ed.history.Redo()
}
