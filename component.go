package scenecmd

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"
)

// ComponentID is a unique identifier for a component type.
// Valid IDs range from 0 to 254.
type ComponentID uint8

// MaxComponents is the maximum number of component types supported.
const MaxComponents = 255

// componentRegistry manages component type registration with lock-free reads.
// Component IDs are assigned sequentially and cached for fast lookup.
// Registration is concurrency-safe so component types may be registered from
// init functions; everything else in this package is confined to the editor
// thread.
type componentRegistry struct {
	// types maps reflect.Type to ComponentID using sync.Map for lock-free reads.
	types sync.Map // map[reflect.Type]ComponentID

	// byName maps the registered type name to its ComponentID.
	// Component blobs key component data by type name, so decoding needs
	// the reverse lookup.
	byName sync.Map // map[string]ComponentID

	// names and typesArr store component metadata indexed by ComponentID.
	// Written once during registration, read-only afterward.
	names    [MaxComponents]string
	typesArr [MaxComponents]reflect.Type

	// nextID is the next available component ID.
	nextID atomic.Uint32

	// arrMu protects writes to names and typesArr.
	arrMu sync.RWMutex
}

// globalRegistry is the singleton component registry.
var globalRegistry = &componentRegistry{}

// registerComponentType registers a component type and returns its ID.
// This is called automatically when a component type is first used.
func registerComponentType(t reflect.Type) ComponentID {
	if id, ok := globalRegistry.types.Load(t); ok {
		return id.(ComponentID)
	}

	newID := ComponentID(globalRegistry.nextID.Add(1) - 1)
	if newID >= MaxComponents {
		panic(fmt.Sprintf("scenecmd: component limit exceeded (max %d types)", MaxComponents))
	}

	actual, loaded := globalRegistry.types.LoadOrStore(t, newID)
	if loaded {
		// Another goroutine registered this type first; our allocated ID
		// is wasted, which is harmless.
		return actual.(ComponentID)
	}

	globalRegistry.arrMu.Lock()
	globalRegistry.names[newID] = t.Name()
	globalRegistry.typesArr[newID] = t
	globalRegistry.arrMu.Unlock()
	globalRegistry.byName.Store(t.Name(), newID)

	return newID
}

// componentID returns the ID for the component type T, registering it on
// first use.
func componentID[T any]() ComponentID {
	return registerComponentType(reflect.TypeOf((*T)(nil)).Elem())
}

// componentIDByName returns the ID for a registered component type name.
// Returns false if no type with that name has been registered.
func componentIDByName(name string) (ComponentID, bool) {
	id, ok := globalRegistry.byName.Load(name)
	if !ok {
		return 0, false
	}
	return id.(ComponentID), true
}

// componentName returns the registered name for a component ID.
func componentName(id ComponentID) string {
	globalRegistry.arrMu.RLock()
	defer globalRegistry.arrMu.RUnlock()
	return globalRegistry.names[id]
}

// componentType returns the reflect.Type for a component ID.
func componentType(id ComponentID) reflect.Type {
	globalRegistry.arrMu.RLock()
	defer globalRegistry.arrMu.RUnlock()
	return globalRegistry.typesArr[id]
}

// RegisterComponent registers the component type T ahead of first use.
// Decoding a payload can only instantiate component types the registry
// knows about, so components that arrive from outside the process (for
// example via the OS clipboard) should be registered during startup.
func RegisterComponent[T any]() {
	componentID[T]()
}

// Add attaches a component to the entity.
// If a component of this type already exists, it is replaced.
// Stale entity references are ignored.
func Add[T any](e Entity, component *T) {
	if component == nil || !e.Valid() {
		return
	}

	id := componentID[T]()
	s := e.world.slot(e)
	s.components[id] = unsafe.Pointer(component)
	s.mask.Set(id)
}

// Remove detaches a component from the entity.
// Removing a component that is not present is a no-op.
func Remove[T any](e Entity) {
	if !e.Valid() {
		return
	}

	id := componentID[T]()
	s := e.world.slot(e)
	if s.components[id] == nil {
		return
	}
	s.components[id] = nil
	s.mask.Clear(id)
}

// Get retrieves a component from the entity.
// Returns nil if the component is not present or the reference is stale.
// The returned pointer aliases the stored component, so mutating it
// mutates the entity directly.
func Get[T any](e Entity) *T {
	if !e.Valid() {
		return nil
	}

	id := componentID[T]()
	ptr := e.world.slot(e).components[id]
	if ptr == nil {
		return nil
	}
	return (*T)(ptr)
}

// Has checks if a component type is present on the entity.
func Has[T any](e Entity) bool {
	if !e.Valid() {
		return false
	}
	id := componentID[T]()
	return e.world.slot(e).mask.Has(id)
}
