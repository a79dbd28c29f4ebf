package debug

import (
	"fmt"
	"os"

	"github.com/signadot/geonode/encode"
	"github.com/signadot/geonode/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments compactly.
func Logf(msg string, args ...any) {
	for i := range args {
		if y, ok := args[i].(*ir.Node); ok {
			args[i] = encode.MustString(y)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
