package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/geonode/ir"
)

// content-addressed array diffing:
//
//  1. summarize each element; non-scalar elements summarize to their
//     type so matching composites recurse below
//  2. map summaries to runes and diff the rune sequences
//  3. a delete run followed by an insert run pairs off as in-place
//     replacements; the rest become removals and additions
//
// Paths use result indices: the slot an element occupies after
// replacements are paired, so a pure insertion does not shift every
// later element into a modification.
func (cfg *config) diffArrayByContent(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	at := func() string { return path + "[" + strconv.Itoa(ri) + "]" }
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range diff.Text {
				dst = cfg.diff(dst, at(), from.Values[fi], to.Values[ti])
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			nd := len([]rune(diff.Text))
			ni := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ni = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(nd, ni)
			for range paired {
				dst = cfg.diff(dst, at(), from.Values[fi], to.Values[ti])
				ri++
				fi++
				ti++
			}
			for range nd - paired {
				dst = append(dst, Change{Kind: Removed, Path: at(), From: from.Values[fi]})
				ri++
				fi++
			}
			for range ni - paired {
				dst = append(dst, Change{Kind: Added, Path: at(), To: to.Values[ti]})
				ri++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				dst = append(dst, Change{Kind: Added, Path: at(), To: to.Values[ti]})
				ri++
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return node.Type.String() + "-i-" + strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return node.Type.String() + "-f-" + strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		}
		panic("number")
	default:
		panic("type")
	}
}
