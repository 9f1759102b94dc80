package scenecmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
)

// ComponentBlob is the encoded form of all components attached to one
// entity: a JSON document keyed by registered component type name, with
// an optional "pairs" object carrying hierarchy relationships. The
// command layer treats blobs as opaque except for stripping pairs.
type ComponentBlob string

// pairChildOf names the embedded parent relationship inside a blob's
// pairs object.
const pairChildOf = "ChildOf"

// pairIsA names the prefab inheritance relationship. The codec never
// writes it, but blobs from other tools may carry it and the strip
// filter removes it alongside ChildOf.
const pairIsA = "IsA"

// blobDoc is the wire shape of a ComponentBlob.
type blobDoc struct {
	Components map[string]json.RawMessage `json:"components"`
	Pairs      map[string]string          `json:"pairs,omitempty"`
}

// EncodeComponents encodes every component attached to the entity into a
// blob, together with a ChildOf pair recording the entity's parent path.
// DecodeComponents is its lossless inverse for every registered
// component type.
func (s *Scene) EncodeComponents(e Entity) (ComponentBlob, error) {
	if !e.Valid() {
		return "", ErrInvalidReference
	}

	doc := blobDoc{Components: map[string]json.RawMessage{}}

	var encErr error
	slot := s.world.slot(e)
	slot.mask.ForEach(func(id ComponentID) {
		if encErr != nil {
			return
		}
		t := componentType(id)
		v := reflect.NewAt(t, slot.components[id]).Interface()
		raw, err := json.Marshal(v)
		if err != nil {
			encErr = fmt.Errorf("scenecmd: encoding component %s of %q: %w", componentName(id), e.Name(), err)
			return
		}
		doc.Components[componentName(id)] = raw
	})
	if encErr != nil {
		return "", encErr
	}

	if p := s.GetParent(e); p.Valid() {
		doc.Pairs = map[string]string{pairChildOf: s.PathOf(p)}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("scenecmd: encoding blob for %q: %w", e.Name(), err)
	}
	return ComponentBlob(out), nil
}

// DecodeComponents applies a blob to an entity: every component in the
// blob is instantiated and attached, replacing any component of the same
// type already present. If the blob carries a ChildOf pair that resolves
// to a live entity, the entity is re-parented under it; callers that set
// the parent themselves strip the blob first.
//
// Components whose type name is not registered are skipped with a
// warning rather than failing the whole decode.
func (s *Scene) DecodeComponents(e Entity, blob ComponentBlob) error {
	if !e.Valid() {
		return ErrInvalidReference
	}

	var doc blobDoc
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	slot := s.world.slot(e)
	for name, raw := range doc.Components {
		id, ok := componentIDByName(name)
		if !ok {
			slog.Warn("scenecmd: skipping unregistered component type", "component", name, "entity", e.Name())
			continue
		}
		v := reflect.New(componentType(id))
		if err := json.Unmarshal(raw, v.Interface()); err != nil {
			return fmt.Errorf("scenecmd: decoding component %s onto %q: %w", name, e.Name(), err)
		}
		slot.components[id] = v.UnsafePointer()
		slot.mask.Set(id)
	}

	if target, ok := doc.Pairs[pairChildOf]; ok {
		if p := s.Lookup(target); p.Valid() {
			if err := s.SetParent(e, p); err != nil {
				return err
			}
		} else {
			slog.Warn("scenecmd: ChildOf target not found, keeping current parent", "entity", e.Name(), "target", target)
		}
	}
	return nil
}

// StripRelationships removes hierarchy relationship pairs (ChildOf and
// IsA) from a blob, leaving all component fields untouched. It is
// applied whenever a blob is replayed onto an entity whose parent the
// caller establishes explicitly, so the decode can't re-parent to a
// stale or incorrect ancestor.
func StripRelationships(blob ComponentBlob) (ComponentBlob, error) {
	var doc blobDoc
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	delete(doc.Pairs, pairChildOf)
	delete(doc.Pairs, pairIsA)
	if len(doc.Pairs) == 0 {
		doc.Pairs = nil
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return ComponentBlob(out), nil
}
