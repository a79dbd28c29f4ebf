package encode

type EncodeOption func(*EncState)

// EncodeCompact renders without whitespace, for wire output.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeIndent sets the indent width (default 2).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
