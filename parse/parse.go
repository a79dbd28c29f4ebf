// Package parse decodes snapshot text into ir trees. JSON is the
// canonical snapshot format; YAML input is supported for tooling.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/geonode/ir"
)

// Parse decodes a JSON document into an ir tree, preserving object
// field order.
func Parse(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	y, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return y, nil
}

func parseValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return parseNumber(t)
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseNumber(num json.Number) (*ir.Node, error) {
	if !strings.ContainsAny(num.String(), ".eE") {
		i, err := num.Int64()
		if err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := num.Float64()
	if err != nil {
		return nil, err
	}
	return ir.FromFloat(f), nil
}

func parseObject(dec *json.Decoder) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	// consume '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}
