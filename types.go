package manifest

import (
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// Type is an ordered, deduplicated identifier sequence defining an
// archetype's exact composition.
type Type []Identifier

func (t Type) Equal(other Type) bool {
	return slices.Equal(t, other)
}

// TypeInfo pairs a type's raw form (as written, role bits intact) with its
// normalized form (AND-tagged sub-type references expanded one level into
// their members). The two are identical when no AND-role ids are present.
type TypeInfo struct {
	Raw        Type
	Normalized Type

	rawTable  *Table
	normTable *Table
}

// Empty reports whether this is the sentinel empty pair.
func (ti TypeInfo) Empty() bool {
	return ti.rawTable == nil && ti.normTable == nil
}

// Equal compares both forms. Table identity stands in for member-by-member
// comparison: there is at most one table per distinct raw set.
func (ti TypeInfo) Equal(other TypeInfo) bool {
	return ti.rawTable == other.rawTable && ti.normTable == other.normTable
}

// RawTable returns the table backing the raw form, nil for the empty pair.
func (ti TypeInfo) RawTable() *Table {
	return ti.rawTable
}

// NormalizedTable returns the table backing the normalized form.
func (ti TypeInfo) NormalizedTable() *Table {
	return ti.normTable
}

func (w *World) tableFromIDs(ids []Identifier) *Table {
	return w.store.FindOrCreate(ids...)
}

// typeFromIDs canonicalizes an identifier sequence into its (raw,
// normalized) pair. Expansion of AND references is one level deep: it relies
// on every referenced sub-type having been fully normalized when it was
// created, and is deliberately not recursive.
func (w *World) typeFromIDs(ids []Identifier) (TypeInfo, error) {
	tbl := w.tableFromIDs(ids)
	result := TypeInfo{
		Raw:        tbl.Type(),
		Normalized: tbl.Type(),
		rawTable:   tbl,
		normTable:  tbl,
	}

	var expanded []Identifier
	for _, id := range ids {
		if !id.HasRole(RoleAnd) {
			continue
		}
		sub := id.PairObject()
		info, ok := w.TypeInfoOf(sub)
		if !ok {
			return TypeInfo{}, ConsistencyError{Code: CodeInvalidParameter, Name: w.Name(sub)}
		}
		if info.normTable != nil {
			expanded = append(expanded, iter_util.Collect(info.normTable.Identifiers())...)
		}
	}

	if len(expanded) > 0 {
		normTbl := w.store.TraverseAdd(tbl, expanded...)
		result.Normalized = normTbl.Type()
		result.normTable = normTbl
	}
	return result, nil
}

// typeFromExpr compiles an expression into its canonical pair. An absent
// expression yields the sentinel empty pair, not an error; a malformed one
// yields the sentinel plus the recoverable ParseError. An expression that
// compiles to no identifiers ("0", blank) is the same empty type as an
// absent expression.
func (w *World) typeFromExpr(name, expr string) (TypeInfo, error) {
	if expr == "" {
		return TypeInfo{}, nil
	}
	ids, err := w.compileExpr(name, expr)
	if err != nil {
		return TypeInfo{}, err
	}
	if len(ids) == 0 {
		return TypeInfo{}, nil
	}
	return w.typeFromIDs(ids)
}

// TypeFromExpr compiles an expression and returns its normalized type.
func (w *World) TypeFromExpr(expr string) (Type, error) {
	info, err := w.typeFromExpr("", expr)
	return info.Normalized, err
}

// TableFromExpr compiles an expression and returns its raw table, nil for
// an absent expression.
func (w *World) TableFromExpr(expr string) (*Table, error) {
	if expr == "" {
		return nil, nil
	}
	ids, err := w.compileExpr("", expr)
	if err != nil {
		return nil, err
	}
	return w.tableFromIDs(ids), nil
}
