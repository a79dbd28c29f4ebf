package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/geom"
	"github.com/signadot/geonode/libdiff"
)

// demo replays the motivating scenario: a rectangle re-anchored to a
// copy of a point, then a point mutated after a round trip.
func demo(cfg *DemoConfig, cc *cli.Context) error {
	rect := geom.NewRectangle()
	rect.Width = 10.0
	rect.Height = 20.0
	rectID := rect.UUID()

	pt := geom.NewPoint3()
	pt.X, pt.Y, pt.Z = 3.0, 4.0, 5.0
	ptID := pt.UUID()

	nodes := geonode.New(geom.Builtins())
	nodes.Push(rect)
	nodes.Push(pt)

	naive, err := nodes.Snapshot()
	if err != nil {
		return err
	}

	if r, ok := geonode.Get[*geom.Rectangle](nodes, rectID); ok {
		r.Anchor = *pt
	}

	optimized, err := nodes.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintln(cc.Out, "re-anchored diff:")
	changes := libdiff.Diff(naive, optimized)
	if err := libdiff.Fprint(cc.Out, changes, cfg.printColors(cc.Out)); err != nil {
		return err
	}

	d, err := nodes.MarshalJSON()
	if err != nil {
		return err
	}
	deser := geonode.New(geom.Builtins())
	if err := deser.UnmarshalJSON(d); err != nil {
		return err
	}
	if p, ok := geonode.Get[*geom.Point3](deser, ptID); ok {
		p.X = 50.0
		p.Y = 100.0
	}

	moved, err := deser.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintln(cc.Out, "moved point diff:")
	changes = libdiff.Diff(optimized, moved)
	return libdiff.Fprint(cc.Out, changes, cfg.printColors(cc.Out))
}
