// Package scenecmd provides the entity command and undo subsystem of a
// scene editor built on a hierarchical entity-component world.
//
// It provides:
//   - Generational entity handles over a component-based world
//   - A scene hierarchy with path-based entity addressing
//   - Subtree serialization to a JSON clipboard interchange format
//   - Undoable copy/cut/paste/duplicate and structural edit commands
//   - A linear command history with redo and dirty-state tracking
//   - A clipboard bridge mirroring payloads to the OS clipboard
//
// # Quick Start
//
// Create a scene, an editor, and start issuing commands:
//
//	scene := scenecmd.NewScene("Level1")
//	player, _ := scene.CreateEntity("Player")
//	scenecmd.Add(player, &scenecmd.Transform{Position: mgl64.Vec3{2, 3, 0}})
//
//	ed := scenecmd.NewEditor(scene)
//	ed.Select(player)
//	ed.Duplicate() // creates "Player_1" at (2.5, 3.5, 0)
//	ed.Undo()      // removes it again
//
// # Components
//
// Components are plain Go structs attached to entities:
//
//	type Health struct {
//	    Current int `json:"current"`
//	    Max     int `json:"max"`
//	}
//
//	scenecmd.Add(player, &Health{100, 100})
//	health := scenecmd.Get[Health](player)
//	scenecmd.Remove[Health](player)
//
// Component data travels through copy/cut/paste losslessly as long as it
// is JSON-serializable. Types that may arrive from outside the process
// (via the OS clipboard) should be registered up front with
// RegisterComponent.
//
// # Identity
//
// Entity handles are generational: destroying an entity invalidates
// every handle to it permanently. Undoing a destructive command rebuilds
// entities from their serialized records, so the restored tree has the
// same paths and component values but fresh handles and fresh instance
// UUIDs. Code that needs to find an entity again across an undo should
// address it by path, not by handle.
//
// # Concurrency
//
// The subsystem is single-threaded: commands, history and clipboard must
// all be used from one designated thread, normally the editor's UI loop.
// Only component type registration is safe from other goroutines.
package scenecmd

// Version is the scenecmd version.
const Version = "1.0.0"
