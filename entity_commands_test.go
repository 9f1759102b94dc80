package scenecmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntityCommand(t *testing.T) {
	s := NewScene("Test")
	h := NewCommandHistory()

	cmd := NewCreateEntityCommand(s, "Enemy", InvalidEntity)
	h.Execute(cmd)

	created := cmd.CreatedEntity()
	require.True(t, created.Valid())
	assert.Equal(t, "Enemy", created.Name())

	require.True(t, h.Undo())
	assert.False(t, created.Valid())
	assert.Equal(t, 0, s.EntityCount())

	// Redo creates a fresh identity with the same name.
	require.True(t, h.Redo())
	recreated := cmd.CreatedEntity()
	require.True(t, recreated.Valid())
	assert.Equal(t, "Enemy", recreated.Name())
	assert.NotEqual(t, created.UUID(), recreated.UUID())
}

func TestCreateEntityCommand_Disambiguates(t *testing.T) {
	s := NewScene("Test")
	_, err := s.CreateEntity("Enemy")
	require.NoError(t, err)

	cmd := NewCreateEntityCommand(s, "Enemy", InvalidEntity)
	cmd.Execute()
	assert.Equal(t, "Enemy_1", cmd.CreatedEntity().Name())
}

func TestDeleteEntityCommand(t *testing.T) {
	s := NewScene("Test")
	player := buildPlayerTree(t, s)
	h := NewCommandHistory()

	h.Execute(NewDeleteEntityCommand(s, player))
	assert.Equal(t, 0, s.EntityCount())

	require.True(t, h.Undo())
	restored := s.Lookup("Player")
	require.True(t, restored.Valid())
	assert.Equal(t, Health{Current: 80, Max: 100}, *Get[Health](restored))
	assert.True(t, s.Lookup("Player/Weapon/Gem").Valid())
}

func TestReparentEntityCommand(t *testing.T) {
	s := NewScene("Test")
	a, _ := s.CreateEntity("A")
	b, _ := s.CreateEntity("B")
	child, _ := s.CreateEntity("Child", a)
	h := NewCommandHistory()

	h.Execute(NewReparentEntityCommand(s, child, b))
	assert.Equal(t, b, s.GetParent(child))

	require.True(t, h.Undo())
	assert.Equal(t, a, s.GetParent(child))
	assert.True(t, child.Valid(), "reparenting preserves identity")
}

func TestReparentEntityCommand_ToRoot(t *testing.T) {
	s := NewScene("Test")
	a, _ := s.CreateEntity("A")
	child, _ := s.CreateEntity("Child", a)
	h := NewCommandHistory()

	h.Execute(NewReparentEntityCommand(s, child, InvalidEntity))
	assert.False(t, s.GetParent(child).Valid())

	require.True(t, h.Undo())
	assert.Equal(t, a, s.GetParent(child))
}

func TestTransformChangeCommand(t *testing.T) {
	s := NewScene("Test")
	e, _ := s.CreateEntity("Mover")
	old := NewTransform()
	Add(e, &old)

	moved := old
	moved.Position[0] = 10

	h := NewCommandHistory()
	h.Execute(NewTransformChangeCommand(e, old, moved, "Move Entity"))
	assert.Equal(t, 10.0, Get[Transform](e).Position[0])

	require.True(t, h.Undo())
	assert.Equal(t, 0.0, Get[Transform](e).Position[0])
}

func TestAddComponentCommand(t *testing.T) {
	s := NewScene("Test")
	e, _ := s.CreateEntity("Target")
	h := NewCommandHistory()

	h.Execute(NewAddComponentCommand(e, &Health{Current: 5, Max: 10}))
	require.True(t, Has[Health](e))

	require.True(t, h.Undo())
	assert.False(t, Has[Health](e))
}

func TestAddComponentCommand_RestoresReplaced(t *testing.T) {
	s := NewScene("Test")
	e, _ := s.CreateEntity("Target")
	Add(e, &Health{Current: 1, Max: 1})
	h := NewCommandHistory()

	h.Execute(NewAddComponentCommand(e, &Health{Current: 9, Max: 9}))
	assert.Equal(t, 9, Get[Health](e).Current)

	require.True(t, h.Undo())
	require.True(t, Has[Health](e))
	assert.Equal(t, 1, Get[Health](e).Current)
}

func TestRemoveComponentCommand(t *testing.T) {
	s := NewScene("Test")
	e, _ := s.CreateEntity("Target")
	Add(e, &Health{Current: 42, Max: 100})
	h := NewCommandHistory()

	h.Execute(NewRemoveComponentCommand[Health](e))
	assert.False(t, Has[Health](e))

	require.True(t, h.Undo())
	require.True(t, Has[Health](e))
	assert.Equal(t, 42, Get[Health](e).Current)
}
