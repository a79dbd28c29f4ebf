package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type PrintColors struct {
	Added     func(string, ...any) string
	Removed   func(string, ...any) string
	Modified  func(string, ...any) string
	Unchanged func(string, ...any) string
}

func NewPrintColors() *PrintColors {
	return &PrintColors{
		Added:     color.GreenString,
		Removed:   color.RedString,
		Modified:  color.YellowString,
		Unchanged: color.RGB(128, 128, 128).SprintfFunc(),
	}
}

// Fprint writes one line per change. With nil colors the output is
// plain text.
func Fprint(w io.Writer, changes []Change, colors *PrintColors) error {
	for i := range changes {
		line := changes[i].String()
		if colors != nil {
			switch changes[i].Kind {
			case Added:
				line = colors.Added("%s", line)
			case Removed:
				line = colors.Removed("%s", line)
			case Modified:
				line = colors.Modified("%s", line)
			case Unchanged:
				line = colors.Unchanged("%s", line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
