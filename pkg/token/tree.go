package token

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PathSeparator delimits hierarchical style and swatch names.
const PathSeparator = "/"

// ErrPathConflict is returned by Insert when a path would replace an existing entry with
// a mapping, or a mapping with a plain value.
var ErrPathConflict = errors.New("path conflicts with an existing entry")

// Tree is an ordered nested mapping. Intermediate nodes are *Tree values and leaves are
// anything JSON-encodable. Keys keep insertion order when encoded.
type Tree struct {
	keys  []string
	nodes map[string]any
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]any)}
}

// SplitPath splits a hierarchical name into its segments.
func SplitPath(name string) []string {
	return strings.Split(name, PathSeparator)
}

// Set assigns value to key. An existing key keeps its position.
func (t *Tree) Set(key string, value any) {
	if _, ok := t.nodes[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.nodes[key] = value
}

// Get returns the value stored directly under key.
func (t *Tree) Get(key string) (any, bool) {
	v, ok := t.nodes[key]
	return v, ok
}

// Delete removes key if present.
func (t *Tree) Delete(key string) {
	if _, ok := t.nodes[key]; !ok {
		return
	}
	delete(t.nodes, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []string { return slices.Clone(t.keys) }

// Len returns the number of direct children.
func (t *Tree) Len() int { return len(t.keys) }

// Insert walks path creating an empty mapping for every missing intermediate segment and
// assigns leaf at the final segment, overwriting a previous leaf. A *Record found on the
// way keeps its properties and holds the rest of the path as nested entries, so "Card"
// and "Card/Hover" both survive. Any other value found on the way, or a mapping at the
// final segment when leaf is not a *Record, yields ErrPathConflict and leaves the tree
// unchanged. An empty path stores leaf under the empty key.
func (t *Tree) Insert(path []string, leaf any) error {
	if len(path) == 0 {
		t.Set("", leaf)
		return nil
	}

	// Nothing is created when the path conflicts.
	if err := t.checkPath(path, leaf); err != nil {
		return err
	}

	node := t
	for _, segment := range path[:len(path)-1] {
		switch v := node.nodes[segment].(type) {
		case *Tree:
			node = v
		case *Record:
			node = v.nested()
		default:
			child := NewTree()
			node.Set(segment, child)
			node = child
		}
	}

	last := path[len(path)-1]
	if rec, ok := leaf.(*Record); ok {
		switch v := node.nodes[last].(type) {
		case *Tree:
			rec.adopt(v)
		case *Record:
			rec.adopt(v.children)
		}
	}
	node.Set(last, leaf)
	return nil
}

func (t *Tree) checkPath(path []string, leaf any) error {
	node := t
	for i, segment := range path {
		existing, ok := node.nodes[segment]
		if !ok {
			return nil
		}
		at := strings.Join(path[:i+1], PathSeparator)

		if i == len(path)-1 {
			if _, isTree := existing.(*Tree); isTree {
				if _, isRecord := leaf.(*Record); !isRecord {
					return fmt.Errorf("%w: %q holds nested entries", ErrPathConflict, at)
				}
			}
			return nil
		}

		switch v := existing.(type) {
		case *Tree:
			node = v
		case *Record:
			if v.children == nil {
				return nil
			}
			node = v.children
		default:
			return fmt.Errorf("%w: %q holds a value", ErrPathConflict, at)
		}
	}
	return nil
}

// Lookup follows path and returns the value found at its end. Entries nested under a
// *Record are reached through it.
func (t *Tree) Lookup(path []string) (any, bool) {
	var current any = t
	for _, segment := range path {
		var node *Tree
		switch v := current.(type) {
		case *Tree:
			node = v
		case *Record:
			node = v.children
		}
		if node == nil {
			return nil, false
		}
		var ok bool
		if current, ok = node.nodes[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// MarshalJSON encodes the tree as nested objects in insertion order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, t.nodes[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
