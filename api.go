package manifest

// Store is the archetype store: at most one table per distinct raw
// identifier set, with order-independent identity.
type Store interface {
	FindOrCreate(ids ...Identifier) *Table
	TraverseAdd(tbl *Table, ids ...Identifier) *Table
	TableByID(id uint32) *Table
}

// Registry is the idempotent create-or-validate registration surface.
type Registry interface {
	NewEntity(id Identifier, name, expr string) (Identifier, error)
	NewPrefab(id Identifier, name, expr string) (Identifier, error)
	NewComponent(id Identifier, name string, size, alignment int) (Identifier, error)
	NewType(id Identifier, name, expr string) (Identifier, error)
}

var _ Registry = &World{}
