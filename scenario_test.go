package geonode_test

import (
	"fmt"
	"testing"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/geom"
	"github.com/signadot/geonode/libdiff"
)

func modifiedPaths(changes []libdiff.Change) map[string]*libdiff.Change {
	res := map[string]*libdiff.Change{}
	for i := range changes {
		if changes[i].Kind == libdiff.Modified {
			res[changes[i].Path] = &changes[i]
		}
	}
	return res
}

func requireRestUnchanged(t *testing.T, changes []libdiff.Change, allowed map[string]*libdiff.Change) {
	t.Helper()
	for i := range changes {
		ch := &changes[i]
		if ch.Kind == libdiff.Unchanged {
			continue
		}
		if _, ok := allowed[ch.Path]; !ok {
			t.Fatalf("unexpected record: %s", ch.String())
		}
	}
}

func TestSingleFieldModification(t *testing.T) {
	c, rect, _ := testCollection(t)
	before, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	r, ok := geonode.Get[*geom.Rectangle](c, rect.UUID())
	if !ok {
		t.Fatal("rectangle missing")
	}
	r.Width = 30.0
	after, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	changes := libdiff.Diff(before, after)
	mods := modifiedPaths(changes)
	wantPath := fmt.Sprintf("$.nodes.%s.width", rect.UUID())
	if len(mods) != 1 {
		t.Fatalf("want exactly one modification, got %d", len(mods))
	}
	ch, ok := mods[wantPath]
	if !ok {
		t.Fatalf("modification not at %s", wantPath)
	}
	if *ch.From.Float64 != 10.0 || *ch.To.Float64 != 30.0 {
		t.Fatalf("got %s", ch.String())
	}
	requireRestUnchanged(t, changes, mods)
}

func TestAnchorCopyScenario(t *testing.T) {
	c, rect, pt := testCollection(t)
	pt.X, pt.Y, pt.Z = 3, 4, 5

	before, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	r, ok := geonode.Get[*geom.Rectangle](c, rect.UUID())
	if !ok {
		t.Fatal("rectangle missing")
	}
	r.Anchor = *pt

	after, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	changes := libdiff.Diff(before, after)
	mods := modifiedPaths(changes)
	anchor := fmt.Sprintf("$.nodes.%s.anchor", rect.UUID())
	wantMods := map[string][2]float64{
		anchor + ".x": {0, 3},
		anchor + ".y": {0, 4},
		anchor + ".z": {0, 5},
	}
	for path, vals := range wantMods {
		ch, ok := mods[path]
		if !ok {
			t.Fatalf("no modification at %s", path)
		}
		if *ch.From.Float64 != vals[0] || *ch.To.Float64 != vals[1] {
			t.Fatalf("got %s", ch.String())
		}
	}
	// the anchor's identity field follows the copied point
	uuidCh, ok := mods[anchor+".uuid"]
	if !ok {
		t.Fatal("anchor uuid not modified")
	}
	if uuidCh.To.String != pt.UUID().String() {
		t.Fatalf("anchor uuid: got %s", uuidCh.To.String)
	}
	if len(mods) != 4 {
		t.Fatalf("want 4 modifications, got %d", len(mods))
	}
	// copying never touches the source point's own entry
	ptPrefix := fmt.Sprintf("$.nodes.%s.", pt.UUID())
	for i := range changes {
		if changes[i].Kind != libdiff.Unchanged &&
			len(changes[i].Path) >= len(ptPrefix) &&
			changes[i].Path[:len(ptPrefix)] == ptPrefix {
			t.Fatalf("source point changed: %s", changes[i].String())
		}
	}
	requireRestUnchanged(t, changes, mods)
}

func TestMutateAfterDeserializeScenario(t *testing.T) {
	c, _, pt := testCollection(t)
	d, err := c.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	deser := geonode.New(geom.Builtins())
	if err := deser.UnmarshalJSON(d); err != nil {
		t.Fatal(err)
	}
	before, err := deser.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	p, ok := geonode.Get[*geom.Point3](deser, pt.UUID())
	if !ok {
		t.Fatal("point missing after deserialize")
	}
	p.X = 50.0
	p.Y = 100.0

	after, err := deser.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	changes := libdiff.Diff(before, after)
	mods := modifiedPaths(changes)
	if len(mods) != 2 {
		t.Fatalf("want exactly 2 modifications, got %d", len(mods))
	}
	prefix := fmt.Sprintf("$.nodes.%s", pt.UUID())
	xCh, ok := mods[prefix+".x"]
	if !ok {
		t.Fatal("x not modified")
	}
	if *xCh.From.Float64 != 0 || *xCh.To.Float64 != 50.0 {
		t.Fatalf("got %s", xCh.String())
	}
	yCh, ok := mods[prefix+".y"]
	if !ok {
		t.Fatal("y not modified")
	}
	if *yCh.From.Float64 != 0 || *yCh.To.Float64 != 100.0 {
		t.Fatalf("got %s", yCh.String())
	}
	requireRestUnchanged(t, changes, mods)
}

func TestDiffCollections(t *testing.T) {
	c, rect, _ := testCollection(t)
	d := geonode.New(geom.Builtins())
	for _, id := range c.IDs() {
		n, _ := c.Node(id)
		d.Push(n)
	}
	r, _ := geonode.Get[*geom.Rectangle](c, rect.UUID())
	cp := *r
	cp.Height = 5
	d.Push(&cp)

	changes, err := geonode.Diff(c, d)
	if err != nil {
		t.Fatal(err)
	}
	mods := modifiedPaths(changes)
	if len(mods) != 1 {
		t.Fatalf("want 1 modification, got %d", len(mods))
	}
	if _, ok := mods[fmt.Sprintf("$.nodes.%s.height", rect.UUID())]; !ok {
		t.Fatal("height modification missing")
	}
}
