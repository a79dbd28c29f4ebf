// Package libdiff computes structural change records between two
// snapshot trees. It knows nothing about node identity or typed
// structure: identical object keys denote the same logical entry.
package libdiff

import (
	"strconv"

	"github.com/signadot/geonode/debug"
	"github.com/signadot/geonode/ir"
)

type Option func(*config)

type config struct {
	arrayMoves bool
}

// ArrayMoves opts into content-addressed array diffing: element
// insertions and deletions are detected instead of reported as
// index-shifted modifications.
func ArrayMoves() Option {
	return func(cfg *config) { cfg.arrayMoves = true }
}

// Diff compares from and to, emitting one record per leaf in traversal
// order. Composites of the same kind are recursed, not diffed
// wholesale; a subtree present on only one side emits a single record
// carrying the whole subtree.
func Diff(from, to *ir.Node, opts ...Option) []Change {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	res := cfg.diff(nil, "$", from, to)
	if debug.Diff() {
		debug.Logf("diff: %d records\n", len(res))
		for i := range res {
			debug.Logf("  %s\n", res[i].String())
		}
	}
	return res
}

func (cfg *config) diff(dst []Change, path string, from, to *ir.Node) []Change {
	switch {
	case from == nil && to == nil:
		return dst
	case from == nil:
		return append(dst, Change{Kind: Added, Path: path, To: to})
	case to == nil:
		return append(dst, Change{Kind: Removed, Path: path, From: from})
	}
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		return cfg.diffObject(dst, path, from, to)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		if cfg.arrayMoves {
			return cfg.diffArrayByContent(dst, path, from, to)
		}
		return cfg.diffArray(dst, path, from, to)
	case from.Type.IsLeaf() && to.Type.IsLeaf():
		if ir.Equal(from, to) {
			return append(dst, Change{Kind: Unchanged, Path: path, From: from, To: to})
		}
		return append(dst, Change{Kind: Modified, Path: path, From: from, To: to})
	default:
		// composite vs leaf, or object vs array
		return append(dst, Change{Kind: Modified, Path: path, From: from, To: to})
	}
}

// diffObject walks from's fields in document order, then fields only
// in to, so record order is stable for a given input pair.
func (cfg *config) diffObject(dst []Change, path string, from, to *ir.Node) []Change {
	toMap := ir.ToMap(to)
	fromMap := ir.ToMap(from)
	for i := range from.Fields {
		f := from.Fields[i].String
		fPath := path + "." + ir.PathField(f)
		if tv, ok := toMap[f]; ok {
			dst = cfg.diff(dst, fPath, from.Values[i], tv)
			continue
		}
		dst = append(dst, Change{Kind: Removed, Path: fPath, From: from.Values[i]})
	}
	for i := range to.Fields {
		f := to.Fields[i].String
		if _, ok := fromMap[f]; ok {
			continue
		}
		fPath := path + "." + ir.PathField(f)
		dst = append(dst, Change{Kind: Added, Path: fPath, To: to.Values[i]})
	}
	return dst
}

// diffArray pairs elements by position. Reordering shows up as
// pairwise modifications, not moves.
func (cfg *config) diffArray(dst []Change, path string, from, to *ir.Node) []Change {
	n := max(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		var fv, tv *ir.Node
		if i < len(from.Values) {
			fv = from.Values[i]
		}
		if i < len(to.Values) {
			tv = to.Values[i]
		}
		dst = cfg.diff(dst, path+"["+strconv.Itoa(i)+"]", fv, tv)
	}
	return dst
}
