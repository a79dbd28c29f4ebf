package ir

// ToAny converts y to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Object field order is lost; use the
// encode package when order matters.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
