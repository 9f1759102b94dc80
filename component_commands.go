package scenecmd

// TransformChangeCommand swaps an entity's Transform between an old and
// a new value, e.g. after a gizmo drag. Specialized over the generic
// component commands so history UI gets a meaningful label.
type TransformChangeCommand struct {
	entity      Entity
	old, new    Transform
	description string
}

// NewTransformChangeCommand prepares a transform change with a label
// such as "Move Entity".
func NewTransformChangeCommand(entity Entity, old, new Transform, description string) *TransformChangeCommand {
	return &TransformChangeCommand{entity: entity, old: old, new: new, description: description}
}

func (c *TransformChangeCommand) set(t Transform) {
	if !c.entity.Valid() {
		return
	}
	if cur := Get[Transform](c.entity); cur != nil {
		*cur = t
	} else {
		Add(c.entity, &t)
	}
}

// Execute applies the new transform.
func (c *TransformChangeCommand) Execute() { c.set(c.new) }

// Undo restores the old transform.
func (c *TransformChangeCommand) Undo() { c.set(c.old) }

// Description implements Command.
func (c *TransformChangeCommand) Description() string {
	return c.description
}

// AddComponentCommand attaches a component to an entity. If a component
// of the same type was already present it is restored on undo.
type AddComponentCommand[T any] struct {
	entity    Entity
	component *T
	replaced  *T
}

// NewAddComponentCommand prepares attaching component to entity.
func NewAddComponentCommand[T any](entity Entity, component *T) *AddComponentCommand[T] {
	return &AddComponentCommand[T]{entity: entity, component: component}
}

// Execute attaches the component, remembering any replaced value.
func (c *AddComponentCommand[T]) Execute() {
	c.replaced = Get[T](c.entity)
	Add(c.entity, c.component)
}

// Undo removes the component, or restores the one it replaced.
func (c *AddComponentCommand[T]) Undo() {
	if c.replaced != nil {
		Add(c.entity, c.replaced)
		return
	}
	Remove[T](c.entity)
}

// Description implements Command.
func (c *AddComponentCommand[T]) Description() string {
	return "Add Component: " + componentName(componentID[T]())
}

// RemoveComponentCommand detaches a component from an entity, keeping
// the detached value so undo can re-attach it.
type RemoveComponentCommand[T any] struct {
	entity  Entity
	removed *T
}

// NewRemoveComponentCommand prepares detaching the component of type T
// from entity.
func NewRemoveComponentCommand[T any](entity Entity) *RemoveComponentCommand[T] {
	return &RemoveComponentCommand[T]{entity: entity}
}

// Execute detaches the component. Removing an absent component is a
// no-op that undoes to a no-op.
func (c *RemoveComponentCommand[T]) Execute() {
	c.removed = Get[T](c.entity)
	Remove[T](c.entity)
}

// Undo re-attaches the removed component value.
func (c *RemoveComponentCommand[T]) Undo() {
	if c.removed != nil {
		Add(c.entity, c.removed)
		c.removed = nil
	}
}

// Description implements Command.
func (c *RemoveComponentCommand[T]) Description() string {
	return "Remove Component: " + componentName(componentID[T]())
}
