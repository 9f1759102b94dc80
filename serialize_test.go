package scenecmd

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPlayerTree creates Player(Transform, Health) with child
// Weapon(Transform) and grandchild Gem(Sprite).
func buildPlayerTree(t *testing.T, s *Scene) Entity {
	t.Helper()

	player, err := s.CreateEntity("Player")
	require.NoError(t, err)
	tr := NewTransform()
	tr.Position = mgl64.Vec3{2, 3, 0}
	Add(player, &tr)
	Add(player, &Health{Current: 80, Max: 100})

	weapon, err := s.CreateEntity("Weapon", player)
	require.NoError(t, err)
	wt := NewTransform()
	wt.Position = mgl64.Vec3{1, 0, 0}
	Add(weapon, &wt)

	gem, err := s.CreateEntity("Gem", weapon)
	require.NoError(t, err)
	Add(gem, &Sprite{Texture: "gem.png", Visible: true})

	return player
}

func TestSerializeEntityTree_Preorder(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)

	payload, err := s.SerializeEntityTree(player)
	require.NoError(t, err)
	require.Len(t, payload.Entities, 3)

	assert.Equal(t, "Player", payload.Entities[0].Path)
	assert.Equal(t, "Player/Weapon", payload.Entities[1].Path)
	assert.Equal(t, "Player/Weapon/Gem", payload.Entities[2].Path)

	// No record's parent appears later than the record itself.
	seen := map[string]bool{}
	for i, rec := range payload.Entities {
		if i > 0 {
			assert.True(t, seen[parentPath(rec.Path)], "parent of %s must precede it", rec.Path)
		}
		seen[rec.Path] = true
	}
}

func TestSerializeEntityTree_Leaf(t *testing.T) {
	s := NewScene("Test")
	e, _ := s.CreateEntity("Lonely")

	payload, err := s.SerializeEntityTree(e)
	require.NoError(t, err)
	assert.Len(t, payload.Entities, 1)
}

func TestSerializeEntityTree_Invalid(t *testing.T) {
	s := NewScene("Test")
	_, err := s.SerializeEntityTree(InvalidEntity)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestRoundTrip_SameComponentValues(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)

	payload, err := s.SerializeEntityTree(player)
	require.NoError(t, err)

	// Destroy the original so the restored tree gets the same names.
	originalUUID := player.UUID()
	require.NoError(t, s.DestroyEntity(player))

	restored, err := s.DeserializeEntityTree(payload, InvalidEntity)
	require.NoError(t, err)

	assert.Equal(t, "Player", restored.Name())
	assert.NotEqual(t, originalUUID, restored.UUID(), "restored entity is a fresh identity")

	h := Get[Health](restored)
	require.NotNil(t, h)
	assert.Equal(t, Health{Current: 80, Max: 100}, *h)
	assert.Equal(t, mgl64.Vec3{2, 3, 0}, Get[Transform](restored).Position)

	weapon := s.Lookup("Player/Weapon")
	require.True(t, weapon.Valid())
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, Get[Transform](weapon).Position)

	gem := s.Lookup("Player/Weapon/Gem")
	require.True(t, gem.Valid())
	assert.Equal(t, Sprite{Texture: "gem.png", Visible: true}, *Get[Sprite](gem))
}

func TestDeserialize_ExplicitParentOverridesPayload(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)

	payload, err := s.SerializeEntityTree(player)
	require.NoError(t, err)

	dest, _ := s.CreateEntity("Destination")
	restored, err := s.DeserializeEntityTree(payload, dest)
	require.NoError(t, err)

	assert.Equal(t, dest, s.GetParent(restored))
	// Children reattach to the restored root, not to the original tree.
	child := s.childNamed(restored, "Weapon")
	require.True(t, child.Valid())
	assert.Equal(t, restored, s.GetParent(child))
}

func TestDeserialize_UniquifiesSiblingNames(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)

	payload, err := s.SerializeEntityTree(player)
	require.NoError(t, err)

	restored, err := s.DeserializeEntityTree(payload, InvalidEntity)
	require.NoError(t, err)
	assert.Equal(t, "Player_1", restored.Name())

	// Never two siblings literally named the same.
	names := map[string]int{}
	s.ForEachChild(InvalidEntity, func(c Entity) { names[c.Name()]++ })
	for name, n := range names {
		assert.Equal(t, 1, n, "duplicate sibling name %q", name)
	}

	// The clone's internal names are untouched.
	assert.True(t, s.Lookup("Player_1/Weapon/Gem").Valid())
}

func TestDeserialize_EmptyPayload(t *testing.T) {
	s := NewScene("Test")
	_, err := s.DeserializeEntityTree(nil, InvalidEntity)
	assert.ErrorIs(t, err, ErrEmptyPayload)
	_, err = s.DeserializeEntityTree(&EntityTreePayload{}, InvalidEntity)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestParsePayload_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty string", ``, ErrMalformedPayload},
		{"wrong top-level type", `[1, 2]`, ErrMalformedPayload},
		{"missing entities", `{"foo": 1}`, ErrMalformedPayload},
		{"mistyped entities", `{"entities": 7}`, ErrMalformedPayload},
		{"empty entities", `{"entities": []}`, ErrEmptyPayload},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePayload(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParsePayload_Valid(t *testing.T) {
	p, err := ParsePayload(`{"entities": [{"path": "Player", "data": "{\"components\":{}}"}]}`)
	require.NoError(t, err)
	require.Len(t, p.Entities, 1)
	assert.Equal(t, "Player", p.Entities[0].Path)
}

func TestPayload_EncodeParseRoundTrip(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)

	payload, err := s.SerializeEntityTree(player)
	require.NoError(t, err)

	text, err := payload.Encode()
	require.NoError(t, err)

	parsed, err := ParsePayload(text)
	require.NoError(t, err)
	assert.Equal(t, payload.Entities, parsed.Entities)
	assert.Equal(t, payload.Fingerprint(), parsed.Fingerprint())
}

func TestPayload_Fingerprint(t *testing.T) {
	a := &EntityTreePayload{Entities: []EntityRecord{{Path: "A", Data: "{}"}}}
	b := &EntityTreePayload{Entities: []EntityRecord{{Path: "A", Data: "{}"}}}
	c := &EntityTreePayload{Entities: []EntityRecord{{Path: "B", Data: "{}"}}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestDeserialize_SkipsBadRecordAndContinues(t *testing.T) {
	s := NewScene("Test")

	payload := &EntityTreePayload{Entities: []EntityRecord{
		{Path: "Root", Data: `{"components":{}}`},
		{Path: "", Data: `{"components":{}}`}, // skipped, reported
		{Path: "Root/Child", Data: `{"components":{}}`},
	}}

	root, err := s.DeserializeEntityTree(payload, InvalidEntity)
	require.NoError(t, err)
	assert.Equal(t, "Root", root.Name())
	assert.True(t, s.Lookup("Root/Child").Valid())
}

func TestEncodeComponents_EmbedsParentPair(t *testing.T) {
	s := NewScene("Test")
	player, _ := s.CreateEntity("Player")
	weapon, _ := s.CreateEntity("Weapon", player)

	blob, err := s.EncodeComponents(weapon)
	require.NoError(t, err)

	var doc struct {
		Pairs map[string]string `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal([]byte(blob), &doc))
	assert.Equal(t, "Player", doc.Pairs["ChildOf"])

	// Top-level entities encode no parent pair.
	blob, err = s.EncodeComponents(player)
	require.NoError(t, err)
	doc.Pairs = nil // Unmarshal leaves the map untouched when the key is absent
	require.NoError(t, json.Unmarshal([]byte(blob), &doc))
	assert.Empty(t, doc.Pairs)
}

func TestDecodeComponents_ReplaysParentPair(t *testing.T) {
	s := NewScene("Test")
	player, _ := s.CreateEntity("Player")
	weapon, _ := s.CreateEntity("Weapon", player)

	blob, err := s.EncodeComponents(weapon)
	require.NoError(t, err)

	orphan, _ := s.CreateEntity("Orphan")
	require.NoError(t, s.DecodeComponents(orphan, blob))
	assert.Equal(t, player, s.GetParent(orphan), "unstripped blob re-parents via ChildOf")
}

func TestStripRelationships(t *testing.T) {
	s := NewScene("Test")
	player, _ := s.CreateEntity("Player")
	weapon, _ := s.CreateEntity("Weapon", player)
	Add(weapon, &Health{Current: 10, Max: 10})

	blob, err := s.EncodeComponents(weapon)
	require.NoError(t, err)

	stripped, err := StripRelationships(blob)
	require.NoError(t, err)

	var doc blobDoc
	require.NoError(t, json.Unmarshal([]byte(stripped), &doc))
	assert.Nil(t, doc.Pairs)

	// Component fields survive untouched.
	orphan, _ := s.CreateEntity("Orphan")
	require.NoError(t, s.DecodeComponents(orphan, stripped))
	assert.Equal(t, Health{Current: 10, Max: 10}, *Get[Health](orphan))
	assert.False(t, s.GetParent(orphan).Valid(), "stripped blob must not re-parent")
}

func TestStripRelationships_Malformed(t *testing.T) {
	_, err := StripRelationships("not json")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
