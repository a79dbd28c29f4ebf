package geonode_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/geom"
)

func TestPushRemove(t *testing.T) {
	c := geonode.New(geom.Builtins())
	p := geom.NewPoint3()
	c.Push(p)
	if c.Len() != 1 {
		t.Fatalf("len %d", c.Len())
	}
	n, ok := c.Remove(p.UUID())
	if !ok || n.UUID() != p.UUID() {
		t.Fatal("remove did not return the node")
	}
	if c.Len() != 0 {
		t.Fatal("remove left the entry behind")
	}
	if _, ok := c.Remove(p.UUID()); ok {
		t.Fatal("second remove found something")
	}
}

func TestPushOverwrites(t *testing.T) {
	c := geonode.New(geom.Builtins())
	p := geom.NewPoint3()
	p.X = 1
	c.Push(p)

	repl := &geom.Point3{X: 42, ID: p.ID}
	c.Push(repl)

	if c.Len() != 1 {
		t.Fatalf("len %d after overwrite", c.Len())
	}
	got, ok := geonode.Get[*geom.Point3](c, p.ID)
	if !ok {
		t.Fatal("entry missing")
	}
	if got.X != 42 {
		t.Fatalf("old fields survived: %+v", got)
	}
}

func TestTypedNarrowing(t *testing.T) {
	c := geonode.New(geom.Builtins())
	p := geom.NewPoint3()
	r := geom.NewRectangle()
	c.Push(p)
	c.Push(r)

	if _, ok := geonode.Get[*geom.Rectangle](c, p.UUID()); ok {
		t.Fatal("narrowed a point to a rectangle")
	}
	if _, ok := geonode.Get[*geom.Point3](c, r.UUID()); ok {
		t.Fatal("narrowed a rectangle to a point")
	}
	if _, ok := geonode.Get[*geom.Point3](c, uuid.New()); ok {
		t.Fatal("found an absent id")
	}
	got, ok := geonode.Get[*geom.Rectangle](c, r.UUID())
	if !ok || got != r {
		t.Fatal("lost the stored rectangle")
	}
}

func TestGetAliasesStoredNode(t *testing.T) {
	c := geonode.New(geom.Builtins())
	p := geom.NewPoint3()
	c.Push(p)

	mut, _ := geonode.Get[*geom.Point3](c, p.UUID())
	mut.X = 50
	again, _ := geonode.Get[*geom.Point3](c, p.UUID())
	if again.X != 50 {
		t.Fatal("mutation through Get did not reach the collection")
	}
}

func TestLookupCopies(t *testing.T) {
	c := geonode.New(geom.Builtins())
	p := geom.NewPoint3()
	c.Push(p)

	cp, ok := geonode.Lookup[geom.Point3](c, p.UUID())
	if !ok {
		t.Fatal("lookup missed")
	}
	cp.X = 50
	if p.X != 0 {
		t.Fatal("lookup aliased the stored node")
	}
	if _, ok := geonode.Lookup[geom.Rectangle](c, p.UUID()); ok {
		t.Fatal("lookup narrowed to the wrong type")
	}
}

func TestIDsSorted(t *testing.T) {
	c := geonode.New(geom.Builtins())
	for range 5 {
		c.Push(geom.NewPoint3())
	}
	ids := c.IDs()
	if len(ids) != 5 {
		t.Fatalf("got %d ids", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1].String() >= ids[i].String() {
			t.Fatal("ids not sorted")
		}
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := geonode.NewRegistry()
	if err := reg.Register(geom.KindPoint3, geom.DecodePoint3); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(geom.KindPoint3, geom.DecodePoint3); err == nil {
		t.Fatal("duplicate registration accepted")
	}
	if err := reg.Register("", geom.DecodePoint3); err == nil {
		t.Fatal("empty kind accepted")
	}
	if err := reg.Register("Sphere", nil); err == nil {
		t.Fatal("nil decoder accepted")
	}
}
