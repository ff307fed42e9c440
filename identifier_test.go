package manifest

import "testing"

// TestPairEncoding tests relation/object packing and extraction
func TestPairEncoding(t *testing.T) {
	tests := []struct {
		name     string
		relation Identifier
		object   Identifier
	}{
		{"Builtin relation", ChildOf, 300},
		{"High ids", 0x123456, 0x89ABCDEF},
		{"Low ids", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := Pair(tt.relation, tt.object)
			if !pair.HasRole(RolePair) {
				t.Errorf("Pair missing RolePair role")
			}
			if got := pair.PairRelation(); got != tt.relation {
				t.Errorf("PairRelation = %v, want %v", got, tt.relation)
			}
			if got := pair.PairObject(); got != tt.object {
				t.Errorf("PairObject = %v, want %v", got, tt.object)
			}
		})
	}
}

// TestRoles tests role tagging and stripping
func TestRoles(t *testing.T) {
	const base Identifier = 400

	tagged := base | RoleAnd
	if !tagged.HasRole(RoleAnd) {
		t.Errorf("HasRole(RoleAnd) = false after tagging")
	}
	if tagged.HasRole(RolePair) {
		t.Errorf("HasRole(RolePair) = true for AND-tagged id")
	}
	if got := tagged.Base(); got != base {
		t.Errorf("Base = %v, want %v", got, base)
	}
	if got := tagged.PairObject(); got != base {
		t.Errorf("PairObject of plain AND id = %v, want %v", got, base)
	}

	var plain Identifier = 400
	if plain.Role() != 0 {
		t.Errorf("Plain id carries role %v", plain.Role())
	}
}
