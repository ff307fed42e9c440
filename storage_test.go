package manifest

import (
	"testing"

	"github.com/TheBitDrifter/mask"
)

// TestTableCreation tests find-or-create identity over identifier sets
func TestTableCreation(t *testing.T) {
	const (
		a Identifier = 100
		b Identifier = 101
		c Identifier = 102
	)

	tests := []struct {
		name            string
		firstIDs        []Identifier
		secondIDs       []Identifier
		expectSameTable bool
	}{
		{
			name:            "Identical sets",
			firstIDs:        []Identifier{a, b},
			secondIDs:       []Identifier{a, b},
			expectSameTable: true,
		},
		{
			name:            "Different order",
			firstIDs:        []Identifier{a, b},
			secondIDs:       []Identifier{b, a},
			expectSameTable: true, // identity is the set, not the order
		},
		{
			name:            "Duplicates collapse",
			firstIDs:        []Identifier{a, b},
			secondIDs:       []Identifier{a, b, a, b},
			expectSameTable: true,
		},
		{
			name:            "Different sets",
			firstIDs:        []Identifier{a},
			secondIDs:       []Identifier{b},
			expectSameTable: false,
		},
		{
			name:            "Subset",
			firstIDs:        []Identifier{a, b},
			secondIDs:       []Identifier{a},
			expectSameTable: false,
		},
		{
			name:            "Superset",
			firstIDs:        []Identifier{a},
			secondIDs:       []Identifier{a, b, c},
			expectSameTable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Factory.NewStore()

			table1 := store.FindOrCreate(tt.firstIDs...)
			table2 := store.FindOrCreate(tt.secondIDs...)

			sameTable := table1 == table2
			if sameTable != tt.expectSameTable {
				t.Errorf("Tables same: %v, expected: %v", sameTable, tt.expectSameTable)
			}
		})
	}
}

// TestTableTypeOrder tests that a table's type keeps first-seen order without duplicates
func TestTableTypeOrder(t *testing.T) {
	store := Factory.NewStore()

	tbl := store.FindOrCreate(3, 1, 2, 1, 3)
	want := Type{3, 1, 2}
	if !tbl.Type().Equal(want) {
		t.Errorf("Type = %v, want %v", tbl.Type(), want)
	}

	// A permutation finds the same table, so the stored order wins.
	same := store.FindOrCreate(1, 2, 3)
	if same != tbl {
		t.Errorf("Permutation created a second table")
	}
	if !same.Type().Equal(want) {
		t.Errorf("Type after permutation lookup = %v, want %v", same.Type(), want)
	}
}

// TestTraverseAdd tests union-based table traversal
func TestTraverseAdd(t *testing.T) {
	const (
		a Identifier = 100
		b Identifier = 101
		c Identifier = 102
	)

	store := Factory.NewStore()
	base := store.FindOrCreate(a, b)

	tests := []struct {
		name     string
		add      []Identifier
		wantType Type
	}{
		{"Add new id", []Identifier{c}, Type{a, b, c}},
		{"Add existing id", []Identifier{a}, Type{a, b}},
		{"Add nothing", nil, Type{a, b}},
		{"Add mixed", []Identifier{b, c}, Type{a, b, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := store.TraverseAdd(base, tt.add...)
			if !result.Type().Equal(tt.wantType) {
				t.Errorf("TraverseAdd type = %v, want %v", result.Type(), tt.wantType)
			}
		})
	}

	// Adding only existing ids must return the same table, not a copy.
	if store.TraverseAdd(base, a, b) != base {
		t.Errorf("TraverseAdd with existing ids created a new table")
	}

	// From a nil table the union is just the added set.
	fromNil := store.TraverseAdd(nil, a)
	if !fromNil.Type().Equal(Type{a}) {
		t.Errorf("TraverseAdd from nil = %v, want %v", fromNil.Type(), Type{a})
	}
}

// TestTableIdentityPastMaskCapacity tests that set identity survives running
// out of mask bits
func TestTableIdentityPastMaskCapacity(t *testing.T) {
	store := Factory.NewStore()

	count := int(mask.MaxBits) + 8
	singletons := make([]*Table, count)
	for i := range count {
		singletons[i] = store.FindOrCreate(Identifier(1000 + i))
	}

	distinct := make(map[*Table]bool, count)
	for i := range count {
		distinct[singletons[i]] = true
		if got := store.FindOrCreate(Identifier(1000 + i)); got != singletons[i] {
			t.Fatalf("Singleton %d resolved to a second table", i)
		}
	}
	if len(distinct) != count {
		t.Errorf("Distinct tables = %d, want %d", len(distinct), count)
	}

	// Sets mixing ids from both sides of the bit capacity stay
	// order-independent and deduplicated.
	early := Identifier(1000)
	late := Identifier(1000 + count - 1)
	mixed := store.FindOrCreate(early, late)
	if got := store.FindOrCreate(late, early, late); got != mixed {
		t.Errorf("Permuted mixed set resolved to a second table")
	}
	if !mixed.Type().Equal(Type{early, late}) {
		t.Errorf("Mixed type = %v, want %v", mixed.Type(), Type{early, late})
	}
	if got := store.TraverseAdd(mixed, early); got != mixed {
		t.Errorf("TraverseAdd with existing ids created a new table")
	}
}

// TestEmptySetTable tests that the empty set has exactly one table
func TestEmptySetTable(t *testing.T) {
	store := Factory.NewStore()

	empty1 := store.FindOrCreate()
	empty2 := store.FindOrCreate()
	if empty1 != empty2 {
		t.Errorf("Empty set resolved to two tables")
	}
	if len(empty1.Type()) != 0 {
		t.Errorf("Empty table type = %v, want empty", empty1.Type())
	}
}

// TestTableByID tests handle-based table lookup
func TestTableByID(t *testing.T) {
	store := Factory.NewStore()

	tbl := store.FindOrCreate(1, 2)
	if got := store.TableByID(tbl.ID()); got != tbl {
		t.Errorf("TableByID(%d) = %v, want %v", tbl.ID(), got, tbl)
	}
	if got := store.TableByID(999); got != nil {
		t.Errorf("TableByID(999) = %v, want nil", got)
	}
	if got := store.TableByID(0); got != nil {
		t.Errorf("TableByID(0) = %v, want nil", got)
	}
}

// TestTableContains tests composition membership
func TestTableContains(t *testing.T) {
	store := Factory.NewStore()
	tbl := store.FindOrCreate(5, 6)

	if !tbl.Contains(5) || !tbl.Contains(6) {
		t.Errorf("Contains missed a member of %v", tbl.Type())
	}
	if tbl.Contains(7) {
		t.Errorf("Contains reported a non-member")
	}
}
