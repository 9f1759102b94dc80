package scenecmd

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Built-in components. Components are plain structs; anything
// JSON-serializable can be attached to an entity, these are just the
// ones the editor itself knows about.

// Transform is an entity's spatial placement. Positions compose through
// the hierarchy: a child's position is relative to its parent.
type Transform struct {
	Position mgl64.Vec3 `json:"position"`
	Rotation mgl64.Vec3 `json:"rotation"`
	Scale    mgl64.Vec3 `json:"scale"`
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// Group marks an entity as a grouping node. The editor pastes under the
// selected entity only when it is a Group.
type Group struct{}

// Sprite is a minimal renderable marker used by the editor's test scenes.
type Sprite struct {
	Texture string `json:"texture"`
	Visible bool   `json:"visible"`
}

// Health is a sample gameplay component.
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

func init() {
	// Pre-register the built-ins so blobs referencing them decode even
	// when the receiving process has not attached them yet.
	RegisterComponent[Transform]()
	RegisterComponent[Group]()
	RegisterComponent[Sprite]()
	RegisterComponent[Health]()
}
