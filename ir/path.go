package ir

import (
	"strconv"
	"strings"
)

// Path returns the location of y in its tree, rooted at "$".
// Object fields append ".field", array elements "[i]". Fields
// containing path metacharacters are single-quoted.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + PathField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// PathField quotes f for use as a path segment when needed.
func PathField(f string) string {
	if strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
