package manifest

import (
	"encoding/binary"
	"iter"
	"slices"
	"strings"

	"github.com/TheBitDrifter/mask"
)

var _ Store = &store{}

type tableID uint32

// Table is the storage unit for one distinct raw identifier set. Tables are
// created lazily on first use of a set and are immutable afterwards.
type Table struct {
	id  tableID
	typ Type
	key mask.Mask
}

func (t *Table) ID() uint32 {
	return uint32(t.id)
}

// Type returns the table's raw composition in first-seen order, deduplicated.
func (t *Table) Type() Type {
	return t.typ
}

// Mask returns the bitmask over the composition's schema bits. Satisfies
// mask.Maskable. Only members within the mask build's bit capacity are
// represented; identity for larger sets is keyed separately.
func (t *Table) Mask() mask.Mask {
	return t.key
}

// Identifiers iterates the table's composition.
func (t *Table) Identifiers() iter.Seq[Identifier] {
	return func(yield func(Identifier) bool) {
		for _, id := range t.typ {
			if !yield(id) {
				return
			}
		}
	}
}

// Contains reports whether the table's composition includes id.
func (t *Table) Contains(id Identifier) bool {
	for _, existing := range t.typ {
		if existing == id {
			return true
		}
	}
	return false
}

type store struct {
	schema schema
	tables *tables
}

type tables struct {
	nextID           tableID
	asSlice          []*Table
	idsGroupedByMask map[mask.Mask]tableID
	idsGroupedBySet  map[string]tableID
}

// schema assigns each distinct identifier a stable mask bit, making a table's
// mask key independent of the order identifiers were supplied in. The bit
// space is bounded by the mask build; identifiers past the capacity get no
// bit and fall through to the sorted-set key.
type schema struct {
	rows map[Identifier]uint32
}

func (s schema) Register(id Identifier) (uint32, bool) {
	if bit, ok := s.rows[id]; ok {
		return bit, true
	}
	if uint32(len(s.rows)) >= uint32(mask.MaxBits) {
		return 0, false
	}
	bit := uint32(len(s.rows))
	s.rows[id] = bit
	return bit, true
}

func newStore() Store {
	return &store{
		schema: schema{rows: make(map[Identifier]uint32)},
		tables: &tables{
			nextID:           1,
			idsGroupedByMask: make(map[mask.Mask]tableID),
			idsGroupedBySet:  make(map[string]tableID),
		},
	}
}

// FindOrCreate returns the unique table for the given identifier set,
// creating it on first use. Duplicates are dropped and permutations of the
// same set resolve to the same table.
func (sto *store) FindOrCreate(ids ...Identifier) *Table {
	deduped := dedupe(ids)

	key, masked := sto.maskFor(deduped)
	var found tableID
	var ok bool
	if masked {
		found, ok = sto.tables.idsGroupedByMask[key]
	} else {
		found, ok = sto.tables.idsGroupedBySet[setKey(deduped)]
	}
	if ok {
		return sto.tables.asSlice[found-1]
	}

	created := &Table{
		id:  sto.tables.nextID,
		typ: deduped,
		key: key,
	}
	sto.tables.asSlice = append(sto.tables.asSlice, created)
	if masked {
		sto.tables.idsGroupedByMask[key] = sto.tables.nextID
	} else {
		sto.tables.idsGroupedBySet[setKey(deduped)] = sto.tables.nextID
	}
	sto.tables.nextID++
	return created
}

// maskFor builds the mask key for a deduplicated set. Reports false when any
// member has no schema bit, in which case the key cannot stand for the whole
// set and identity falls back to the sorted-set key.
func (sto *store) maskFor(ids Type) (mask.Mask, bool) {
	var key mask.Mask
	usable := true
	for _, id := range ids {
		bit, ok := sto.schema.Register(id)
		if !ok {
			usable = false
			continue
		}
		key.Mark(bit)
	}
	return key, usable
}

func dedupe(ids []Identifier) Type {
	deduped := make(Type, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(deduped, id) {
			deduped = append(deduped, id)
		}
	}
	return deduped
}

// setKey is the order-independent identity for sets whose members exceed the
// mask's bit capacity.
func setKey(ids []Identifier) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	var b strings.Builder
	b.Grow(len(sorted) * 8)
	for _, id := range sorted {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(id))
		b.Write(buf[:])
	}
	return b.String()
}

// TraverseAdd returns the table whose set is the union of tbl's composition
// and the additional identifiers.
func (sto *store) TraverseAdd(tbl *Table, ids ...Identifier) *Table {
	if tbl == nil {
		return sto.FindOrCreate(ids...)
	}
	union := make([]Identifier, 0, len(tbl.typ)+len(ids))
	union = append(union, tbl.typ...)
	union = append(union, ids...)
	return sto.FindOrCreate(union...)
}

func (sto *store) TableByID(id uint32) *Table {
	index := int(id) - 1
	if index < 0 || index >= len(sto.tables.asSlice) {
		return nil
	}
	return sto.tables.asSlice[index]
}
