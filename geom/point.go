// Package geom provides the built-in geometry node variants.
package geom

import (
	"github.com/google/uuid"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/ir"
)

const KindPoint3 = "Point3"

// Point3 is a point in 3-space. The zero coordinates are meaningful;
// a fresh point sits at the origin.
type Point3 struct {
	X, Y, Z float64
	ID      uuid.UUID
}

// NewPoint3 returns a point at the origin with a fresh identifier.
func NewPoint3() *Point3 {
	return &Point3{ID: uuid.New()}
}

func (p *Point3) UUID() uuid.UUID {
	return p.ID
}

func (p *Point3) Kind() string {
	return KindPoint3
}

func (p *Point3) ToIR() (*ir.Node, error) {
	return pointIR(p, true), nil
}

// pointIR renders p; tagged selects the discriminated top-level form.
// An anchor embedded in another node serializes untagged, by value.
func pointIR(p *Point3, tagged bool) *ir.Node {
	kvs := []ir.KeyVal{}
	if tagged {
		kvs = append(kvs, ir.KeyVal{Key: geonode.TagField, Val: ir.FromString(KindPoint3)})
	}
	kvs = append(kvs,
		ir.KeyVal{Key: "x", Val: ir.FromFloat(p.X)},
		ir.KeyVal{Key: "y", Val: ir.FromFloat(p.Y)},
		ir.KeyVal{Key: "z", Val: ir.FromFloat(p.Z)},
		ir.KeyVal{Key: "uuid", Val: ir.FromString(p.ID.String())},
	)
	return ir.FromKeyVals(kvs)
}

// DecodePoint3 reconstructs a Point3 from its tagged form.
func DecodePoint3(y *ir.Node) (geonode.Node, error) {
	p, err := pointFromIR(y)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func pointFromIR(y *ir.Node) (*Point3, error) {
	p := &Point3{}
	var err error
	if p.X, err = f64Field(y, KindPoint3, "x"); err != nil {
		return nil, err
	}
	if p.Y, err = f64Field(y, KindPoint3, "y"); err != nil {
		return nil, err
	}
	if p.Z, err = f64Field(y, KindPoint3, "z"); err != nil {
		return nil, err
	}
	if p.ID, err = uuidField(y, KindPoint3, "uuid"); err != nil {
		return nil, err
	}
	return p, nil
}
