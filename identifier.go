package manifest

import "fmt"

// Identifier is a 64-bit entity id with an optional role in the top byte.
// The zero Identifier is never a valid entity.
type Identifier uint64

const (
	// RoleMask covers the role byte of an Identifier.
	RoleMask Identifier = 0xFF << 56

	// RoleAnd tags an id as a reference to a named type whose members are
	// folded into the normalized form of any type that contains it.
	RoleAnd Identifier = 0x01 << 56

	// RolePair tags an id as a (relation, object) pairing.
	RolePair Identifier = 0x02 << 56

	pairRelationMask Identifier = 0xFFFFFF << 32
	pairObjectMask   Identifier = 0xFFFFFFFF
)

// Builtin entities occupy the very bottom of the id space.
const (
	// ChildOf relates an entity to its containing scope.
	ChildOf Identifier = 1

	// PrefabTag marks template entities excluded from normal matching.
	PrefabTag Identifier = 2

	firstUserID Identifier = 8
)

// HiComponentID bounds the reserved range for automatically allocated
// component ids. Explicit ids below this threshold interact with the
// allocation watermark; general entities are allocated above it.
const HiComponentID Identifier = 256

// Pair packs a relation and an object into a single role-tagged Identifier.
func Pair(relation, object Identifier) Identifier {
	return RolePair |
		((relation << 32) & pairRelationMask) |
		(object & pairObjectMask)
}

// Role returns the role byte of the identifier.
func (id Identifier) Role() Identifier {
	return id & RoleMask
}

// HasRole reports whether the identifier carries the given role.
func (id Identifier) HasRole(role Identifier) bool {
	return id&RoleMask == role
}

// Base strips the role byte, leaving the raw entity bits.
func (id Identifier) Base() Identifier {
	return id &^ RoleMask
}

// PairRelation extracts the relation part of a pair-encoded identifier.
func (id Identifier) PairRelation() Identifier {
	return (id & pairRelationMask) >> 32
}

// PairObject extracts the object part of a pair-encoded identifier. For a
// non-pair id this is the low half of the id itself, which lets AND-tagged
// plain ids resolve their referent the same way pairs do.
func (id Identifier) PairObject() Identifier {
	return id & pairObjectMask
}

func (id Identifier) String() string {
	switch {
	case id.HasRole(RolePair):
		return fmt.Sprintf("PAIR|(%d,%d)", uint64(id.PairRelation()), uint64(id.PairObject()))
	case id.HasRole(RoleAnd):
		return fmt.Sprintf("AND|%d", uint64(id.Base()))
	default:
		return fmt.Sprintf("%d", uint64(id))
	}
}
