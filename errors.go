package inkan

import "errors"

// Every failure the world can report is one of these sentinels. Callers
// branch with errors.Is; no operation that returns a non-nil error has
// modified any world state.
var (
	// ErrCapacityExceeded is returned by CreateEntity when every handle in
	// the world's fixed entity universe is currently allocated.
	ErrCapacityExceeded = errors.New("ecs: entity capacity exceeded")

	// ErrTooManyComponentTypes is returned by RegisterComponent when the
	// signature width (MaxComponentTypes bits) is exhausted.
	ErrTooManyComponentTypes = errors.New("ecs: too many component types")

	// ErrUnknownComponentType is returned by component operations on a type
	// that was never registered with the world.
	ErrUnknownComponentType = errors.New("ecs: component type not registered")

	// ErrComponentNotFound is returned by RemoveComponent when the entity
	// does not hold the component.
	ErrComponentNotFound = errors.New("ecs: component not found on entity")

	// ErrDuplicateComponent is returned by AssignComponent when the entity
	// already holds the component. Use SetComponent to overwrite.
	ErrDuplicateComponent = errors.New("ecs: entity already has component")

	// ErrEntityNotAlive is returned by operations on a handle that is out of
	// bounds, never created, or already destroyed.
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
)
