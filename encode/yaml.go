package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/geonode/ir"
)

// EncodeYAML writes y to w as YAML, preserving object field order.
func EncodeYAML(y *ir.Node, w io.Writer) error {
	v, err := toYAML(y)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(y *ir.Node) (any, error) {
	switch y.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return y.Bool, nil
	case ir.StringType:
		return y.String, nil
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64, nil
		}
		if y.Float64 == nil || math.IsNaN(*y.Float64) || math.IsInf(*y.Float64, 0) {
			return nil, fmt.Errorf("%w: at %s", ErrNonFinite, y.Path())
		}
		return *y.Float64, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			v, err := toYAML(y.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: y.Fields[i].String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			v, err := toYAML(yv)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	default:
		panic("type")
	}
}
