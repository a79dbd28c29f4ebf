package geom

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/signadot/geonode"
	"github.com/signadot/geonode/ir"
)

func f64Field(y *ir.Node, kind, name string) (float64, error) {
	v := ir.Get(y, name)
	if v == nil || v.Type != ir.NumberType {
		return 0, fmt.Errorf("%w: %s needs number field %q",
			geonode.ErrMalformedFields, kind, name)
	}
	if v.Int64 != nil {
		return float64(*v.Int64), nil
	}
	return *v.Float64, nil
}

func uuidField(y *ir.Node, kind, name string) (uuid.UUID, error) {
	v := ir.Get(y, name)
	if v == nil || v.Type != ir.StringType {
		return uuid.Nil, fmt.Errorf("%w: %s needs string field %q",
			geonode.ErrMalformedFields, kind, name)
	}
	id, err := uuid.Parse(v.String)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s field %q: %v",
			geonode.ErrMalformedFields, kind, name, err)
	}
	return id, nil
}
