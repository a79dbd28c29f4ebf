package libdiff

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/geonode/ir"
)

// Filter keeps the changes for which the expr predicate holds. The
// expression sees `kind`, `path`, `from` and `to`, e.g.
//
//	kind == "modified" && path startsWith "$.nodes"
func Filter(changes []Change, src string) ([]Change, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	res := make([]Change, 0, len(changes))
	for i := range changes {
		ch := &changes[i]
		env := map[string]any{
			"kind": ch.Kind.String(),
			"path": ch.Path,
			"from": ir.ToAny(ch.From),
			"to":   ir.ToAny(ch.To),
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", src, err)
		}
		if keep, _ := out.(bool); keep {
			res = append(res, *ch)
		}
	}
	return res, nil
}
