// Package debug gates diagnostic logging on GN_DEBUG_* environment
// variables, read once at process start.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Codec bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("GN_DEBUG_DIFF")
	d.Codec = boolEnv("GN_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Codec() bool {
	return d.Codec
}
