package scenecmd

import (
	"strconv"
	"strings"
)

// PathSeparator delimits segments in an entity path.
const PathSeparator = "/"

// PathOf returns the entity's slash-delimited path relative to the scene
// root, e.g. "Player/Weapon". Paths identify a position in the hierarchy
// at the time of the call; they are not stable identities. A new entity
// created with the same name under the same parent receives the same
// path but is a distinct entity with no lineage to the old one.
//
// Returns "" for a stale handle or for the scene root itself.
func (s *Scene) PathOf(e Entity) string {
	if !e.Valid() || e == s.root {
		return ""
	}
	segments := []string{e.Name()}
	for p := s.world.slot(e).parent; p.Valid() && p != s.root; p = s.world.slot(p).parent {
		segments = append(segments, p.Name())
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, PathSeparator)
}

// Lookup resolves a path produced by PathOf back to an entity.
// Returns InvalidEntity if any segment is missing.
func (s *Scene) Lookup(path string) Entity {
	if path == "" {
		return InvalidEntity
	}
	e := s.root
	for _, seg := range strings.Split(path, PathSeparator) {
		e = s.childNamed(e, seg)
		if !e.Valid() {
			return InvalidEntity
		}
	}
	return e
}

// LastSegment returns the substring after the final path separator, or
// the whole path if it contains none.
func LastSegment(path string) string {
	if i := strings.LastIndex(path, PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// parentPath returns the path of the entity's parent, or "" for a
// top-level path.
func parentPath(path string) string {
	if i := strings.LastIndex(path, PathSeparator); i >= 0 {
		return path[:i]
	}
	return ""
}

// MakeUniqueName returns a name that does not collide with any existing
// child of parent, disambiguating with a trailing _N suffix when needed
// ("Foo" → "Foo_1" → "Foo_2", "Bar_3" → "Bar_4"). Passing InvalidEntity
// as parent checks against the scene's top-level entities.
//
// The scene is only read, never mutated, and the result is deterministic
// for a given scene state.
func (s *Scene) MakeUniqueName(name string, parent Entity) string {
	if name == "" {
		name = "Entity"
	}
	if !s.childNamed(parent, name).Valid() {
		return name
	}

	// Split off an existing _N suffix so "Bar_3" counts up from 4
	// instead of becoming "Bar_3_1".
	stem := name
	count := 1
	if i := strings.LastIndex(name, "_"); i >= 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil && n >= 0 {
			stem = name[:i]
			count = n + 1
		}
	}

	for {
		candidate := stem + "_" + strconv.Itoa(count)
		if !s.childNamed(parent, candidate).Valid() {
			return candidate
		}
		count++
	}
}
