package manifest

// record is the per-entity state the world tracks: identity, composition
// table, and optional component/type metadata.
type record struct {
	name     string
	symbol   string
	table    *Table
	meta     *ComponentMeta
	typeInfo *TypeInfo
}

// World is the explicit context threaded through every operation. There are
// no hidden singletons; independent worlds can coexist in one process.
//
// All mutation is in place with no internal locking. Callers must guarantee
// exclusive access, typically a single mutating thread.
type World struct {
	store       Store
	records     map[Identifier]*record
	names       map[string]Identifier
	typeHandles map[uint32]Identifier

	lastID          Identifier
	lastComponentID Identifier

	namePrefix string
	scope      Identifier
	stageCount int
	locked     bool
}

func newWorld(cfg WorldConfig) *World {
	stageCount := cfg.StageCount
	if stageCount < 1 {
		stageCount = 1
	}
	w := &World{
		store:           newStore(),
		records:         make(map[Identifier]*record),
		names:           make(map[string]Identifier),
		typeHandles:     make(map[uint32]Identifier),
		lastID:          HiComponentID,
		lastComponentID: firstUserID,
		namePrefix:      cfg.NamePrefix,
		stageCount:      stageCount,
	}
	w.setSymbol(ChildOf, "ChildOf")
	w.setSymbol(PrefabTag, "Prefab")
	return w
}

// Exists reports whether id is a live entity in this world.
func (w *World) Exists(id Identifier) bool {
	_, ok := w.records[id.Base()]
	return ok
}

// Lookup finds an entity by its canonical display name. Returns 0 on miss.
func (w *World) Lookup(name string) Identifier {
	return w.names[name]
}

// Name returns the canonical display name of an entity, or "".
func (w *World) Name(id Identifier) string {
	if rec, ok := w.records[id.Base()]; ok {
		return rec.name
	}
	return ""
}

// Symbol returns the original identifier as supplied, or "".
func (w *World) Symbol(id Identifier) string {
	if rec, ok := w.records[id.Base()]; ok {
		return rec.symbol
	}
	return ""
}

// TypeOf returns the entity's current composition, nil for an entity with
// no components.
func (w *World) TypeOf(id Identifier) Type {
	rec, ok := w.records[id.Base()]
	if !ok || rec.table == nil {
		return nil
	}
	return rec.table.Type()
}

// TypeInfoOf returns the type metadata attached by NewType, if any.
func (w *World) TypeInfoOf(id Identifier) (TypeInfo, bool) {
	rec, ok := w.records[id.Base()]
	if !ok || rec.typeInfo == nil {
		return TypeInfo{}, false
	}
	return *rec.typeInfo, true
}

// ComponentMetaOf returns the layout metadata attached by NewComponent.
func (w *World) ComponentMetaOf(id Identifier) (ComponentMeta, bool) {
	rec, ok := w.records[id.Base()]
	if !ok || rec.meta == nil {
		return ComponentMeta{}, false
	}
	return *rec.meta, true
}

// TypeEntity returns the type entity registered for a table's raw type,
// recorded by NewType for introspection. Returns 0 when none is registered.
func (w *World) TypeEntity(tbl *Table) Identifier {
	var key uint32
	if tbl != nil {
		key = tbl.ID()
	}
	return w.typeHandles[key]
}

// Has reports whether the entity's composition includes id.
func (w *World) Has(e, id Identifier) bool {
	rec, ok := w.records[e.Base()]
	if !ok || rec.table == nil {
		return false
	}
	return rec.table.Contains(id)
}

// IsPrefab reports whether the entity is marked as a template.
func (w *World) IsPrefab(e Identifier) bool {
	return w.Has(e, PrefabTag)
}

// AddID unions a single identifier into the entity's composition, creating
// the entity record if needed.
func (w *World) AddID(e, id Identifier) {
	w.addIDs(e, id)
}

// AddPair unions a (relation, object) pairing into the entity's composition.
func (w *World) AddPair(e, relation, object Identifier) {
	w.addIDs(e, Pair(relation, object))
}

func (w *World) addIDs(e Identifier, ids ...Identifier) {
	rec := w.ensureRecord(e)
	rec.table = w.store.TraverseAdd(rec.table, ids...)
}

func (w *World) ensureRecord(e Identifier) *record {
	rec, ok := w.records[e.Base()]
	if !ok {
		rec = &record{}
		w.records[e.Base()] = rec
	}
	return rec
}

// SetScope sets the default scope entity that explicit foreign ids are
// placed under. Returns the previous scope.
func (w *World) SetScope(scope Identifier) Identifier {
	prev := w.scope
	w.scope = scope
	return prev
}

func (w *World) Scope() Identifier {
	return w.scope
}

// SetNamePrefix configures the prefix stripped from symbols to produce
// display names. Returns the previous prefix.
func (w *World) SetNamePrefix(prefix string) string {
	prev := w.namePrefix
	w.namePrefix = prefix
	return prev
}

// SetStageCount declares how many execution stages iterate concurrently
// while the world is locked. Component registration during iteration is only
// permitted with a single stage.
func (w *World) SetStageCount(count int) {
	if count < 1 {
		count = 1
	}
	w.stageCount = count
}

func (w *World) StageCount() int {
	return w.stageCount
}

// Lock marks the world readonly for the duration of a scheduled iteration.
func (w *World) Lock() {
	w.locked = true
}

func (w *World) Unlock() {
	w.locked = false
}

func (w *World) Locked() bool {
	return w.locked
}

// Store exposes the world's archetype store.
func (w *World) Store() Store {
	return w.store
}

func (w *World) newID() Identifier {
	w.lastID++
	return w.lastID
}

// newComponentID allocates from the reserved low range, falling back to the
// general space once the range is exhausted.
func (w *World) newComponentID() Identifier {
	if w.lastComponentID >= HiComponentID {
		return w.newID()
	}
	id := w.lastComponentID
	w.lastComponentID++
	return id
}
