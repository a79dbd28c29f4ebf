// Package encode renders ir trees as snapshot text. JSON is the
// canonical snapshot format; YAML is offered as an alternate rendering.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/geonode/ir"
)

type EncState struct {
	compact bool
	indent  int
	colors  *Colors
}

// Encode writes y to w as JSON. By default the output is indented with
// two spaces; see EncodeCompact and EncodeColors.
func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	sb := &strings.Builder{}
	if err := es.encode(sb, y, 0); err != nil {
		return err
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// MustString renders y compactly, for logs and error messages.
func MustString(y *ir.Node) string {
	sb := &strings.Builder{}
	es := &EncState{compact: true}
	if err := es.encode(sb, y, 0); err != nil {
		return fmt.Sprintf("[unencodable %s] %v", y.Type, err)
	}
	return sb.String()
}

func (es *EncState) encode(sb *strings.Builder, y *ir.Node, depth int) error {
	if y == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch y.Type {
	case ir.NullType:
		sb.WriteString(es.value(y.Type, "null"))
	case ir.BoolType:
		sb.WriteString(es.value(y.Type, strconv.FormatBool(y.Bool)))
	case ir.StringType:
		d, _ := json.Marshal(y.String)
		sb.WriteString(es.value(y.Type, string(d)))
	case ir.NumberType:
		num, err := encodeNumber(y)
		if err != nil {
			return err
		}
		sb.WriteString(es.value(y.Type, num))
	case ir.ObjectType:
		return es.encodeObject(sb, y, depth)
	case ir.ArrayType:
		return es.encodeArray(sb, y, depth)
	}
	return nil
}

func encodeNumber(y *ir.Node) (string, error) {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10), nil
	}
	if y.Float64 == nil {
		return "", fmt.Errorf("%w: number node with no value at %s", ErrNonFinite, y.Path())
	}
	f := *y.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v at %s", ErrNonFinite, f, y.Path())
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func (es *EncState) encodeObject(sb *strings.Builder, y *ir.Node, depth int) error {
	if len(y.Fields) == 0 {
		sb.WriteString(es.sep(y.Type, "{}"))
		return nil
	}
	sb.WriteString(es.sep(y.Type, "{"))
	for i := range y.Fields {
		if i > 0 {
			sb.WriteString(es.sep(y.Type, ","))
		}
		es.newline(sb, depth+1)
		d, _ := json.Marshal(y.Fields[i].String)
		sb.WriteString(es.field(y.Values[i].Type, string(d)))
		sb.WriteString(es.sep(y.Type, ":"))
		if !es.compact {
			sb.WriteByte(' ')
		}
		if err := es.encode(sb, y.Values[i], depth+1); err != nil {
			return err
		}
	}
	es.newline(sb, depth)
	sb.WriteString(es.sep(y.Type, "}"))
	return nil
}

func (es *EncState) encodeArray(sb *strings.Builder, y *ir.Node, depth int) error {
	if len(y.Values) == 0 {
		sb.WriteString(es.sep(y.Type, "[]"))
		return nil
	}
	sb.WriteString(es.sep(y.Type, "["))
	for i, yv := range y.Values {
		if i > 0 {
			sb.WriteString(es.sep(y.Type, ","))
		}
		es.newline(sb, depth+1)
		if err := es.encode(sb, yv, depth+1); err != nil {
			return err
		}
	}
	es.newline(sb, depth)
	sb.WriteString(es.sep(y.Type, "]"))
	return nil
}

func (es *EncState) newline(sb *strings.Builder, depth int) {
	if es.compact {
		return
	}
	sb.WriteByte('\n')
	for range depth * es.indent {
		sb.WriteByte(' ')
	}
}

func (es *EncState) value(t ir.Type, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.color(Colorable{Type: t, Attr: ValueColor}, s)
}

func (es *EncState) field(t ir.Type, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.color(Colorable{Type: t, Attr: FieldColor}, s)
}

func (es *EncState) sep(t ir.Type, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.color(Colorable{Type: t, Attr: SepColor}, s)
}
