package geonode

import (
	"github.com/signadot/geonode/ir"
	"github.com/signadot/geonode/libdiff"
)

// Diff snapshots both collections and reports the change records
// taking before to after. The differ works on the generic
// snapshot trees only; identical entry keys denote the same logical
// node.
func Diff(before, after *Collection, opts ...libdiff.Option) ([]libdiff.Change, error) {
	from, err := before.Snapshot()
	if err != nil {
		return nil, err
	}
	to, err := after.Snapshot()
	if err != nil {
		return nil, err
	}
	return libdiff.Diff(from, to, opts...), nil
}

// DiffSnapshots is Diff over already-serialized snapshots.
func DiffSnapshots(from, to *ir.Node, opts ...libdiff.Option) []libdiff.Change {
	return libdiff.Diff(from, to, opts...)
}
