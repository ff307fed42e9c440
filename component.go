package manifest

// ComponentMeta is the layout metadata attached to a component entity.
// Immutable once set; re-registration must match it exactly.
type ComponentMeta struct {
	Size      int
	Alignment int
}
