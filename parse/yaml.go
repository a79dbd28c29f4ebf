package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/geonode/ir"
)

// ParseYAML decodes a YAML document into an ir tree. Mapping order is
// preserved.
func ParseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	y, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return y, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, 0, len(t))
		for _, item := range t {
			val, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			vals = append(vals, val)
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value %T", v)
	}
}
