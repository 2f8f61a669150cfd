package token

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a property value of a style token record: either a reference to a pooled
// token or one of the literal kinds below.
type Value interface {
	String() string
	isValue()
}

// Ref points at a pooled token. It renders as {section.name} with path separators in
// the name turned into dots, e.g. {colors.brand.primary}.
type Ref struct {
	Section string
	Name    string
}

func (r Ref) String() string {
	return "{" + r.Section + "." + strings.ReplaceAll(r.Name, PathSeparator, ".") + "}"
}

// Path returns the reference as output path segments.
func (r Ref) Path() []string {
	return append([]string{r.Section}, SplitPath(r.Name)...)
}

func (r Ref) MarshalJSON() ([]byte, error) { return marshal(r.String()) }

// Color is a literal 8 digit hex color.
type Color string

func (c Color) String() string { return string(c) }

// Keyword is a literal from a fixed vocabulary (positions, repeat modes, weights, image
// references).
type Keyword string

func (k Keyword) String() string { return string(k) }

// Pixels is a length rendered with a "px" suffix.
type Pixels float64

func (p Pixels) String() string { return formatNumber(float64(p)) + "px" }

func (p Pixels) MarshalJSON() ([]byte, error) { return marshal(p.String()) }

// Percent is a length rendered with a "%" suffix.
type Percent float64

func (p Percent) String() string { return formatNumber(float64(p)) + "%" }

func (p Percent) MarshalJSON() ([]byte, error) { return marshal(p.String()) }

func (Ref) isValue()     {}
func (Color) isValue()   {}
func (Keyword) isValue() {}
func (Pixels) isValue()  {}
func (Percent) isValue() {}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// marshal is json.Marshal without HTML escaping, so names like "Buttons & Links" are
// written as is.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Property is one key/value pair of a Record.
type Property struct {
	Key   string
	Value Value
}

// Record is the ordered property set of one named style. Styles whose names extend the
// record's path, e.g. "Card/Hover" under "Card", are kept as nested entries after the
// properties.
type Record struct {
	props    []Property
	children *Tree
}

// NewRecord returns an empty record.
func NewRecord() *Record { return &Record{} }

// Set assigns v to key. An existing key keeps its position.
func (r *Record) Set(key string, v Value) {
	for i := range r.props {
		if r.props[i].Key == key {
			r.props[i].Value = v
			return
		}
	}
	r.props = append(r.props, Property{Key: key, Value: v})
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	for _, p := range r.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Properties returns the properties in insertion order.
func (r *Record) Properties() []Property {
	out := make([]Property, len(r.props))
	copy(out, r.props)
	return out
}

// Len returns the number of properties.
func (r *Record) Len() int { return len(r.props) }

// Children returns the entries nested under the record, or nil when there are none.
func (r *Record) Children() *Tree { return r.children }

func (r *Record) nested() *Tree {
	if r.children == nil {
		r.children = NewTree()
	}
	return r.children
}

// adopt moves the entries of t under r. Entries r already holds win.
func (r *Record) adopt(t *Tree) {
	if t == nil || t == r.children {
		return
	}
	children := r.nested()
	for _, key := range t.keys {
		if _, ok := children.nodes[key]; !ok {
			children.Set(key, t.nodes[key])
		}
	}
}

// MarshalJSON encodes the record as one object in insertion order, properties first.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range r.props {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	if r.children != nil {
		for i, key := range r.children.keys {
			if i > 0 || len(r.props) > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(&buf, key, r.children.nodes[key]); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
