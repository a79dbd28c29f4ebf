package geom

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/ir"
)

const KindRectangle = "Rectangle"

// Rectangle owns its anchor by value: replacing the anchor with a copy
// of some point leaves that point untouched.
type Rectangle struct {
	Anchor        Point3
	Width, Height float64
	ID            uuid.UUID
}

// NewRectangle returns a zero-sized rectangle anchored at a fresh
// origin point, with a fresh identifier.
func NewRectangle() *Rectangle {
	return &Rectangle{
		Anchor: *NewPoint3(),
		ID:     uuid.New(),
	}
}

func (r *Rectangle) UUID() uuid.UUID {
	return r.ID
}

func (r *Rectangle) Kind() string {
	return KindRectangle
}

func (r *Rectangle) ToIR() (*ir.Node, error) {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: geonode.TagField, Val: ir.FromString(KindRectangle)},
		{Key: "anchor", Val: pointIR(&r.Anchor, false)},
		{Key: "width", Val: ir.FromFloat(r.Width)},
		{Key: "height", Val: ir.FromFloat(r.Height)},
		{Key: "uuid", Val: ir.FromString(r.ID.String())},
	}), nil
}

// DecodeRectangle reconstructs a Rectangle from its tagged form.
func DecodeRectangle(y *ir.Node) (geonode.Node, error) {
	r := &Rectangle{}
	anchorY := ir.Get(y, "anchor")
	if anchorY == nil || anchorY.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %s needs object field %q",
			geonode.ErrMalformedFields, KindRectangle, "anchor")
	}
	anchor, err := pointFromIR(anchorY)
	if err != nil {
		return nil, err
	}
	r.Anchor = *anchor
	if r.Width, err = f64Field(y, KindRectangle, "width"); err != nil {
		return nil, err
	}
	if r.Height, err = f64Field(y, KindRectangle, "height"); err != nil {
		return nil, err
	}
	if r.ID, err = uuidField(y, KindRectangle, "uuid"); err != nil {
		return nil, err
	}
	return r, nil
}
