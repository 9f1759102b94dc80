package scenecmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// EntityRecord is one serialized entity: its hierarchical path at
// serialization time and the encoded blob of its components.
type EntityRecord struct {
	Path string        `json:"path"`
	Data ComponentBlob `json:"data"`
}

// EntityTreePayload is the transport form of an entity subtree: the root
// entity followed by its descendants in pre-order, so every record's
// parent appears before the record itself. This is also the clipboard
// interchange format, as UTF-8 JSON text.
type EntityTreePayload struct {
	Entities []EntityRecord `json:"entities"`
}

// Encode renders the payload as clipboard text.
func (p *EntityTreePayload) Encode() (string, error) {
	out, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Fingerprint returns a content hash of the payload. Two payloads with
// identical records hash identically, so the clipboard bridge can skip
// redundant OS writes and callers can compare payload content without
// comparing entity identities.
func (p *EntityTreePayload) Fingerprint() uint64 {
	d := xxhash.New()
	for _, rec := range p.Entities {
		_, _ = d.WriteString(rec.Path)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(string(rec.Data))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// ParsePayload validates and decodes clipboard text into a payload.
// The text must be a JSON object with an "entities" list; a missing or
// mistyped list fails with ErrMalformedPayload and an empty list with
// ErrEmptyPayload, in both cases before any entity is created.
func ParsePayload(text string) (*EntityTreePayload, error) {
	var doc struct {
		Entities *[]EntityRecord `json:"entities"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if doc.Entities == nil {
		return nil, fmt.Errorf("%w: missing entities list", ErrMalformedPayload)
	}
	if len(*doc.Entities) == 0 {
		return nil, ErrEmptyPayload
	}
	return &EntityTreePayload{Entities: *doc.Entities}, nil
}

// SerializeEntityTree serializes root and its full descendant subtree in
// pre-order. An entity with no children yields a payload with exactly
// one record. Entities whose components fail to encode are skipped with
// a warning; their descendants are still visited.
func (s *Scene) SerializeEntityTree(root Entity) (*EntityTreePayload, error) {
	if !root.Valid() {
		return nil, ErrInvalidReference
	}

	payload := &EntityTreePayload{}
	var walk func(e Entity)
	walk = func(e Entity) {
		blob, err := s.EncodeComponents(e)
		if err != nil {
			slog.Warn("scenecmd: skipping entity during serialization", "entity", e.Name(), "err", err)
		} else {
			payload.Entities = append(payload.Entities, EntityRecord{Path: s.PathOf(e), Data: blob})
		}
		s.ForEachChild(e, walk)
	}
	walk(root)

	if len(payload.Entities) == 0 {
		return nil, ErrEmptyPayload
	}
	return payload, nil
}

// DeserializeEntityTree recreates a payload's entities in the scene and
// returns the entity created from the first record.
//
// Every record is created under the entity recreated from its original
// parent path, tracked in a per-call path mapping; hierarchy pairs
// embedded in the blobs are stripped rather than replayed, so a payload
// can never re-parent its entities to stale ancestors. The first record
// is created under parent (or the scene root when parent is invalid),
// and is explicitly re-parented there afterwards, overriding anything
// the payload encoded.
//
// Names are disambiguated against existing siblings, so pasting next to
// the source never produces duplicate sibling names. A record that fails
// to create is reported and skipped; its descendants fall back to the
// new root. The call only fails outright when the payload is empty or no
// root could be created.
func (s *Scene) DeserializeEntityTree(payload *EntityTreePayload, parent Entity) (Entity, error) {
	if payload == nil || len(payload.Entities) == 0 {
		return InvalidEntity, ErrEmptyPayload
	}

	// Path of the original entity -> entity recreated from its record.
	// Scoped to this call only.
	mapping := make(map[string]Entity, len(payload.Entities))

	root := InvalidEntity
	for i, rec := range payload.Entities {
		if rec.Path == "" {
			slog.Warn("scenecmd: skipping record with empty path", "index", i)
			continue
		}

		target := parent
		if i > 0 {
			if p, ok := mapping[parentPath(rec.Path)]; ok {
				target = p
			} else {
				// Parent record was skipped or failed; better a
				// misplaced entity than a lost one.
				target = root
			}
		}

		name := s.MakeUniqueName(LastSegment(rec.Path), target)
		e, err := s.CreateEntity(name, target)
		if err != nil {
			slog.Error("scenecmd: failed to create entity from record", "path", rec.Path, "err", err)
			continue
		}
		mapping[rec.Path] = e

		if rec.Data != "" {
			stripped, err := StripRelationships(rec.Data)
			if err != nil {
				slog.Error("scenecmd: failed to strip relationships", "path", rec.Path, "err", err)
				stripped = rec.Data
			}
			if err := s.DecodeComponents(e, stripped); err != nil {
				slog.Error("scenecmd: failed to decode components", "path", rec.Path, "err", err)
			}
		}

		if !root.Valid() {
			root = e
		}
	}

	if !root.Valid() {
		return InvalidEntity, fmt.Errorf("scenecmd: no entity could be created from payload")
	}

	// Honor the caller's destination regardless of what the payload's
	// root originally encoded.
	if parent.Valid() {
		if err := s.SetParent(root, parent); err != nil {
			slog.Warn("scenecmd: failed to re-parent deserialized root", "root", root.Name(), "err", err)
		}
	}
	return root, nil
}
