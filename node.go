// Package geonode keeps heterogeneous geometry nodes in an
// identity-keyed collection, serializes them through a tagged snapshot
// format that preserves each node's concrete type, and diffs snapshot
// pairs into per-path change records (see libdiff).
package geonode

import (
	"github.com/google/uuid"

	"github.com/signadot/geonode/ir"
)

// TagField is the discriminator field naming a node's concrete variant
// in its serialized form.
const TagField = "geometry_node"

// Node is the capability a concrete geometry type implements to live
// in a Collection. UUID is stable for the node's lifetime and doubles
// as the collection key. Kind returns the discriminator under which
// the type's decoder is registered; ToIR renders the node with
// TagField set to Kind.
type Node interface {
	UUID() uuid.UUID
	Kind() string
	ToIR() (*ir.Node, error)
}
