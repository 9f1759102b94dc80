package scenecmd

import "errors"

// Errors returned by the scene, serializer and command layers.
// Commands handle these locally and report them through slog; none of
// them ever propagates past the Command/History boundary.
var (
	// ErrInvalidReference indicates an entity or parent handle that is
	// stale (its slot was reused after destruction) or never valid.
	ErrInvalidReference = errors.New("scenecmd: invalid entity reference")

	// ErrMalformedPayload indicates clipboard or transport content that
	// fails structural validation: not a JSON object, missing the
	// "entities" field, or an entity list of the wrong type.
	ErrMalformedPayload = errors.New("scenecmd: malformed entity payload")

	// ErrEmptyPayload indicates a structurally valid payload whose
	// entity list is empty. Empty payloads are rejected, never silently
	// accepted.
	ErrEmptyPayload = errors.New("scenecmd: empty entity payload")

	// ErrNameCollision indicates an attempt to create an entity whose
	// name is already taken by a sibling. Callers are expected to
	// pre-disambiguate with MakeUniqueName.
	ErrNameCollision = errors.New("scenecmd: entity name already taken")

	// ErrOriginalParentGone indicates that a cut entity's original
	// parent no longer exists at undo time. The undo falls back to
	// recreating the entity at the scene root.
	ErrOriginalParentGone = errors.New("scenecmd: original parent no longer exists")
)
