package store

import "strings"

// Separator is the key separator. Keys always use a forward slash, regardless
// of the host OS separator.
const Separator = "/"

// Components is the decomposition of a relative key path: the ordered
// directory segments followed by the final leaf (file) name.
type Components struct {
	Dirs []string
	Leaf string
}

// Split decomposes a slash-separated relative path into its components.
// A path with no separator yields no directory segments and the whole path
// as leaf. Malformed input is accepted: a trailing separator simply yields
// an empty leaf.
func Split(path string) Components {
	segments := strings.Split(path, Separator)
	return Components{
		Dirs: segments[:len(segments)-1],
		Leaf: segments[len(segments)-1],
	}
}

// Join reconstructs the relative path the components were split from.
func (c Components) Join() string {
	if len(c.Dirs) == 0 {
		return c.Leaf
	}
	return strings.Join(c.Dirs, Separator) + Separator + c.Leaf
}

// Extension returns the suffix after the final dot of the leaf name, or the
// empty string when the leaf has no dot.
func (c Components) Extension() string {
	if i := strings.LastIndex(c.Leaf, "."); i >= 0 {
		return c.Leaf[i+1:]
	}
	return ""
}
