package manifest

import "unsafe"

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld(WorldConfig{StageCount: 1})
}

func (f factory) NewWorldWithConfig(cfg WorldConfig) *World {
	return newWorld(cfg)
}

func (f factory) NewStore() Store {
	return newStore()
}

// RegisterComponentFor registers T as a component using its in-memory
// layout for size and alignment.
func RegisterComponentFor[T any](w *World, id Identifier, name string) (Identifier, error) {
	var zero T
	return w.NewComponent(id, name, int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
}
