package geonode

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/signadot/geonode/debug"
	"github.com/signadot/geonode/encode"
	"github.com/signadot/geonode/ir"
	"github.com/signadot/geonode/parse"
)

const nodesField = "nodes"

// Snapshot serializes the whole collection: an object with one entry
// per node under the "nodes" field, keyed by identifier, each value
// tagged with its variant. Entries come out in sorted key order so two
// snapshots of the same logical collection are comparable and diff
// results do not depend on map iteration.
//
// Snapshot fails on the first node that cannot be rendered; no partial
// snapshot is returned.
func (c *Collection) Snapshot() (*ir.Node, error) {
	entries := make(map[string]*ir.Node, len(c.nodes))
	for id, n := range c.nodes {
		y, err := n.ToIR()
		if err != nil {
			return nil, fmt.Errorf("serializing node %s: %w", id, err)
		}
		entries[id.String()] = y
	}
	if debug.Codec() {
		debug.Logf("snapshot: %d nodes\n", len(entries))
	}
	return ir.FromMap(map[string]*ir.Node{
		nodesField: ir.FromMap(entries),
	}), nil
}

// FromSnapshot reconstructs a collection from snap, dispatching each
// entry to the decoder registered in reg for its tag. The first
// unknown-variant or malformed-fields error fails the whole operation;
// no partial collection is returned.
func FromSnapshot(reg *Registry, snap *ir.Node) (*Collection, error) {
	if snap == nil || snap.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: snapshot is not an object", ErrMalformedFields)
	}
	nodesY := ir.Get(snap, nodesField)
	if nodesY == nil || nodesY.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: snapshot has no %q object", ErrMalformedFields, nodesField)
	}
	c := New(reg)
	for i := range nodesY.Fields {
		key := nodesY.Fields[i].String
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: entry key %q is not a uuid", ErrMalformedFields, key)
		}
		n, err := reg.Decode(nodesY.Values[i])
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", key, err)
		}
		if n.UUID() != id {
			return nil, fmt.Errorf("%w: entry key %s disagrees with node uuid %s",
				ErrMalformedFields, id, n.UUID())
		}
		c.nodes[id] = n
	}
	if debug.Codec() {
		debug.Logf("from snapshot: %d nodes\n", c.Len())
	}
	return c, nil
}

// MarshalJSON renders the collection's snapshot as compact JSON.
func (c *Collection) MarshalJSON() ([]byte, error) {
	snap, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(snap, buf, encode.EncodeCompact(true)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON replaces the collection's contents from d, decoding
// through the registry the collection was created with. On error the
// collection is left unchanged.
func (c *Collection) UnmarshalJSON(d []byte) error {
	snap, err := parse.Parse(d)
	if err != nil {
		return err
	}
	nc, err := FromSnapshot(c.reg, snap)
	if err != nil {
		return err
	}
	c.nodes = nc.nodes
	return nil
}
