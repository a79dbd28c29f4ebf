package libdiff

import (
	"fmt"

	"github.com/signadot/geonode/encode"
	"github.com/signadot/geonode/ir"
)

type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return "<unknown kind>"
}

// Change is one diff event at a tree path. From is set for Removed,
// Unchanged and Modified, To for Added, Unchanged and Modified.
type Change struct {
	Kind Kind
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("added %s %s", c.Path, encode.MustString(c.To))
	case Removed:
		return fmt.Sprintf("removed %s %s", c.Path, encode.MustString(c.From))
	case Modified:
		return fmt.Sprintf("modified %s %s to %s", c.Path,
			encode.MustString(c.From), encode.MustString(c.To))
	default:
		return fmt.Sprintf("unchanged %s %s", c.Path, encode.MustString(c.From))
	}
}
