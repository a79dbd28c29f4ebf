package geom

import "github.com/signadot/geonode"

// Builtins returns a fresh registry with every variant in this package
// registered. Callers extending the node set start from here and
// register their own kinds on top.
func Builtins() *geonode.Registry {
	reg := geonode.NewRegistry()
	reg.MustRegister(KindPoint3, DecodePoint3)
	reg.MustRegister(KindRectangle, DecodeRectangle)
	return reg
}
