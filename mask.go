package dynpb

import "strings"

// A Mask is a set of dotted field-name paths selecting which
// subtrees of a message to populate during a masked decode. Each
// path is an ordered list of field names, outermost first.
type Mask [][]string

// ParseMask builds a mask from dotted paths such as "a.b.c".
func ParseMask(paths ...string) Mask {
	m := make(Mask, 0, len(paths))
	for _, p := range paths {
		m = append(m, strings.Split(p, "."))
	}
	return m
}

// match reports whether a field with the given name is selected at
// the current nesting level, and returns the residual mask to hand
// to the field's nested decode: the remaining segments of every
// selected multi-segment entry. A nil residual with selected true
// means the mask is fully consumed and the subtree decodes in full.
func (m Mask) match(name string) (residual Mask, selected bool) {
	for _, p := range m {
		if len(p) == 0 || p[0] != name {
			continue
		}
		selected = true
		if len(p) > 1 {
			residual = append(residual, p[1:])
		}
	}
	return residual, selected
}
