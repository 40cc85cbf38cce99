package prototype

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownPrototype is returned by Registry.Clone for unregistered names.
var ErrUnknownPrototype = errors.New("prototype: no prototype registered under that name")

// Cloner is the prototype interface: anything that can copy itself.
type Cloner interface {
	// Clone returns an independent copy of the receiver.
	Clone() Cloner
}

// Document is a concrete prototype: a titled, tagged record with its own
// identity.
type Document struct {
	// ID uniquely identifies this instance; clones get their own.
	ID    uuid.UUID
	Title string
	Tags  []string
}

// NewDocument returns a Document with a fresh ID and the given tags.
func NewDocument(title string, tags ...string) *Document {
	return &Document{
		ID:    uuid.New(),
		Title: title,
		Tags:  append([]string(nil), tags...),
	}
}

// Clone returns a deep copy of the document under a new ID.
// The tag slice is duplicated so the copy and the original never alias.
func (d *Document) Clone() Cloner {
	return &Document{
		ID:    uuid.New(),
		Title: d.Title,
		Tags:  append([]string(nil), d.Tags...),
	}
}

// Registry is a prototype manager: a catalogue of named exemplars that
// clients clone instead of constructing.
type Registry struct {
	prototypes map[string]Cloner
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]Cloner)}
}

// Register stores p as the exemplar for name, replacing any previous one.
func (r *Registry) Register(name string, p Cloner) {
	r.prototypes[name] = p
}

// Clone returns a copy of the exemplar registered under name.
// Returns ErrUnknownPrototype if nothing is registered there.
func (r *Registry) Clone(name string) (Cloner, error) {
	p, ok := r.prototypes[name]
	if !ok {
		return nil, ErrUnknownPrototype
	}

	return p.Clone(), nil
}
