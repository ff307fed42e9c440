/*
Package manifest is the type and table resolution core of an Entity-Component-System (ECS) runtime.

Manifest turns textual component-set expressions into canonical, deduplicated
identifier sets, materializes or reuses the archetype table for each distinct
set, and layers idempotent create-or-validate registration for entities,
prefabs, components, and named types on top.

Core Concepts:

  - Identifier: a 64-bit entity id with optional role bits (AND composition, relation pairing).
  - Type: an ordered, deduplicated identifier sequence defining an archetype's exact composition.
  - Table: the storage unit for one distinct raw Type; identity is order-independent.
  - Normalized type: a Type with AND-tagged sub-type references expanded into their members.
  - World: the explicit context holding id counters, the name index, and the archetype store.

Basic Usage:

	// Create a world
	world := manifest.Factory.NewWorld()

	// Register components
	position, _ := world.NewComponent(0, "Position", 16, 8)
	velocity, _ := world.NewComponent(0, "Velocity", 16, 8)
	_, _ = position, velocity

	// Register a named type and an entity built from it
	world.NewType(0, "Movable", "Position, Velocity")
	player, _ := world.NewEntity(0, "Player", "AND | Movable")

	// Repeat registrations with identical arguments are no-ops
	same, _ := world.NewEntity(0, "Player", "AND | Movable")
	_ = same == player

Registration is create-or-validate: an absent entity is created and set up,
a present one is validated against the requested definition. Conflicting
redefinitions (a different name for the same id, a component re-registered
with a different layout, a type re-registered with different members) are
reported as ConsistencyError values; malformed expressions are reported as
recoverable ParseError values alongside the empty type.

Manifest is the resolution layer underneath an archetype ECS; query
execution, scheduling, and serialization live elsewhere.
*/
package manifest
