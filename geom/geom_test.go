package geom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/encode"
	"github.com/signadot/geonode/parse"
)

func TestPointIRShape(t *testing.T) {
	p := NewPoint3()
	p.X, p.Y, p.Z = 1, 2.5, -3
	y, err := p.ToIR()
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf(
		`{"geometry_node":"Point3","x":1,"y":2.5,"z":-3,"uuid":"%s"}`, p.ID)
	if got := encode.MustString(y); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestRectangleIRShape(t *testing.T) {
	r := NewRectangle()
	r.Width, r.Height = 10, 20
	y, err := r.ToIR()
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf(
		`{"geometry_node":"Rectangle","anchor":{"x":0,"y":0,"z":0,"uuid":"%s"},"width":10,"height":20,"uuid":"%s"}`,
		r.Anchor.ID, r.ID)
	if got := encode.MustString(y); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	r := NewRectangle()
	r.Width, r.Height = 10, 20
	r.Anchor.X = 7

	y, err := r.ToIR()
	if err != nil {
		t.Fatal(err)
	}
	n, err := DecodeRectangle(y)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := n.(*Rectangle)
	if !ok {
		t.Fatalf("decoded %T", n)
	}
	if *got != *r {
		t.Fatalf("got %+v, want %+v", got, r)
	}
}

func TestAnchorByValue(t *testing.T) {
	r := NewRectangle()
	p := NewPoint3()
	p.X, p.Y, p.Z = 3, 4, 5

	r.Anchor = *p
	r.Anchor.X = 99
	if p.X != 3 {
		t.Fatal("assigning the anchor aliased the source point")
	}
}

type decodeErrTest struct {
	name string
	in   string
	err  error
}

func TestDecodeErrors(t *testing.T) {
	reg := Builtins()
	tests := []decodeErrTest{
		{
			name: "unknown variant",
			in:   `{"geometry_node":"Sphere","uuid":"x"}`,
			err:  geonode.ErrUnknownVariant,
		},
		{
			name: "missing discriminator",
			in:   `{"x":1}`,
			err:  geonode.ErrMalformedFields,
		},
		{
			name: "missing coordinate",
			in:   `{"geometry_node":"Point3","x":1,"y":2,"uuid":"d61d2da2-53f5-4b65-8a9a-6b0d40b6b1c0"}`,
			err:  geonode.ErrMalformedFields,
		},
		{
			name: "mistyped coordinate",
			in:   `{"geometry_node":"Point3","x":"one","y":2,"z":3,"uuid":"d61d2da2-53f5-4b65-8a9a-6b0d40b6b1c0"}`,
			err:  geonode.ErrMalformedFields,
		},
		{
			name: "bad uuid",
			in:   `{"geometry_node":"Point3","x":1,"y":2,"z":3,"uuid":"nope"}`,
			err:  geonode.ErrMalformedFields,
		},
		{
			name: "rectangle anchor not object",
			in:   `{"geometry_node":"Rectangle","anchor":7,"width":1,"height":2,"uuid":"d61d2da2-53f5-4b65-8a9a-6b0d40b6b1c0"}`,
			err:  geonode.ErrMalformedFields,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, err := parse.Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := reg.Decode(y); !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	reg := Builtins()
	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0] != KindPoint3 || kinds[1] != KindRectangle {
		t.Fatalf("got %v", kinds)
	}
}

func TestIntCoordinatesAccepted(t *testing.T) {
	// a hand-written snapshot may carry integral coordinates
	y, err := parse.Parse([]byte(
		`{"geometry_node":"Point3","x":1,"y":2,"z":3,"uuid":"d61d2da2-53f5-4b65-8a9a-6b0d40b6b1c0"}`))
	if err != nil {
		t.Fatal(err)
	}
	n, err := DecodePoint3(y)
	if err != nil {
		t.Fatal(err)
	}
	p := n.(*Point3)
	if p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Fatalf("got %+v", p)
	}
}
