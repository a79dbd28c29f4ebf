package geonode

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Collection owns a mapping from identifier to one polymorphic node.
// It never inspects node fields beyond identity. Not safe for
// concurrent mutation without external synchronization.
type Collection struct {
	reg   *Registry
	nodes map[uuid.UUID]Node
}

// New returns an empty collection bound to reg for deserialization.
func New(reg *Registry) *Collection {
	return &Collection{
		reg:   reg,
		nodes: map[uuid.UUID]Node{},
	}
}

func (c *Collection) Registry() *Registry {
	return c.reg
}

// Push inserts n under its own identifier, replacing any existing
// entry wholesale.
func (c *Collection) Push(n Node) {
	c.nodes[n.UUID()] = n
}

// Remove deletes and returns the node at id. A false result means the
// id was absent; that is a normal outcome, not an error.
func (c *Collection) Remove(id uuid.UUID) (Node, bool) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, false
	}
	delete(c.nodes, id)
	return n, true
}

// Node returns the type-erased node at id.
func (c *Collection) Node(id uuid.UUID) (Node, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

func (c *Collection) Len() int {
	return len(c.nodes)
}

// IDs returns the identifiers in sorted order.
func (c *Collection) IDs() []uuid.UUID {
	res := make([]uuid.UUID, 0, len(c.nodes))
	for id := range c.nodes {
		res = append(res, id)
	}
	slices.SortFunc(res, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}

// Get narrows the node at id to the concrete type T, typically a
// pointer type such as *geom.Point3. The returned pointer aliases the
// stored node and is the sanctioned path for mutating its fields. The
// result is false when id is absent or the stored node is not a T;
// Get never panics.
func Get[T Node](c *Collection, id uuid.UUID) (T, bool) {
	var zero T
	n, ok := c.nodes[id]
	if !ok {
		return zero, false
	}
	t, ok := n.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Lookup is the read-only counterpart of Get: it returns a copy of the
// node at id for value type T, leaving the stored node unreachable
// from the result.
func Lookup[T any](c *Collection, id uuid.UUID) (T, bool) {
	var zero T
	n, ok := c.nodes[id]
	if !ok {
		return zero, false
	}
	p, ok := any(n).(*T)
	if !ok {
		return zero, false
	}
	return *p, true
}
