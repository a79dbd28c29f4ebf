package geonode

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/geonode/ir"
)

// DecodeFunc reconstructs a concrete node from its tagged serialized
// form.
type DecodeFunc func(y *ir.Node) (Node, error)

// Registry maps variant discriminators to decoders. Build one at
// process start, register every variant, and treat it as read-only
// afterwards; adding a variant means registering it here, not touching
// the collection code.
type Registry struct {
	decoders map[string]DecodeFunc
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: map[string]DecodeFunc{},
	}
}

func (r *Registry) Register(kind string, fn DecodeFunc) error {
	if kind == "" {
		return fmt.Errorf("cannot register empty kind")
	}
	if fn == nil {
		return fmt.Errorf("cannot register nil decoder for %q", kind)
	}
	if _, exists := r.decoders[kind]; exists {
		return fmt.Errorf("kind %q already registered", kind)
	}
	r.decoders[kind] = fn
	return nil
}

// MustRegister is Register for process-init wiring of known-good kinds.
func (r *Registry) MustRegister(kind string, fn DecodeFunc) {
	if err := r.Register(kind, fn); err != nil {
		panic(err)
	}
}

func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.decoders))
}

// Decode dispatches y to the decoder registered for its TagField.
func (r *Registry) Decode(y *ir.Node) (Node, error) {
	if y == nil || y.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: entry is not an object", ErrMalformedFields)
	}
	tag := ir.Get(y, TagField)
	if tag == nil || tag.Type != ir.StringType {
		return nil, fmt.Errorf("%w: missing %q discriminator", ErrMalformedFields, TagField)
	}
	fn, ok := r.decoders[tag.String]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, tag.String)
	}
	return fn(y)
}
