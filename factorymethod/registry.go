package factorymethod

import "errors"

// ErrUnknownKind is returned by Registry.New when no factory is
// registered under the requested key.
var ErrUnknownKind = errors.New("factorymethod: unknown vehicle kind")

// Registry dispatches to registered factories by key. It implements the
// parameterized variant of the pattern: one entry point, an open set of
// products.
//
// Registry is not safe for concurrent mutation; register everything up
// front, then share freely.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds key to f, replacing any previous binding.
func (r *Registry) Register(key string, f Factory) {
	r.factories[key] = f
}

// New builds a Vehicle via the factory registered under key.
// Returns ErrUnknownKind if the key is unclaimed.
func (r *Registry) New(key string) (Vehicle, error) {
	f, ok := r.factories[key]
	if !ok {
		return nil, ErrUnknownKind
	}

	return f.NewVehicle(), nil
}
