package token

import (
	"bytes"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Pool is an ordered, value-deduplicated registry of tokens for one category.
// No two entries hold structurally equal values and names keep discovery order.
type Pool[V any] struct {
	section string
	names   []string
	values  map[string]V
}

// NewPool creates an empty pool whose entries are referenced as {section.name}.
func NewPool[V any](section string) *Pool[V] {
	return &Pool[V]{
		section: section,
		values:  make(map[string]V),
	}
}

// Section returns the output section the pool is emitted under.
func (p *Pool[V]) Section() string { return p.section }

// Len returns the number of entries.
func (p *Pool[V]) Len() int { return len(p.names) }

// Names returns the entry names in insertion order.
func (p *Pool[V]) Names() []string { return slices.Clone(p.names) }

// Get returns the value stored under name.
func (p *Pool[V]) Get(name string) (V, bool) {
	v, ok := p.values[name]
	return v, ok
}

// All iterates the entries in insertion order.
func (p *Pool[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range p.names {
			if !yield(name, p.values[name]) {
				return
			}
		}
	}
}

// Lookup returns the name of the first entry structurally equal to v.
func (p *Pool[V]) Lookup(v V) (string, bool) {
	return p.LookupFunc(v, nil)
}

// LookupFunc is like Lookup but only considers entries whose name is accepted.
// A nil accept function accepts every name.
func (p *Pool[V]) LookupFunc(v V, accept func(name string) bool) (string, bool) {
	for _, name := range p.names {
		if accept != nil && !accept(name) {
			continue
		}
		if cmp.Equal(p.values[name], v) {
			return name, true
		}
	}
	return "", false
}

// Register returns the name of an existing entry equal to v without modifying the pool.
// Otherwise v is inserted under base+"-"+counter (or base alone when useSuffix is false)
// and the new name is returned. A name already held by a different value, or one that
// nests with an existing name (see Conflict), gets a further "-2", "-3", ... suffix so
// earlier references stay valid.
func (p *Pool[V]) Register(v V, base, counter string, useSuffix bool) string {
	return p.RegisterFunc(v, base, counter, useSuffix, nil)
}

// RegisterFunc is like Register but only entries whose name is accepted count as
// existing matches.
func (p *Pool[V]) RegisterFunc(v V, base, counter string, useSuffix bool, accept func(name string) bool) string {
	if name, ok := p.LookupFunc(v, accept); ok {
		return name
	}

	name := TokenName(base, counter, useSuffix)
	if p.taken(name) {
		for i := 2; ; i++ {
			candidate := name + "-" + strconv.Itoa(i)
			if !p.taken(candidate) {
				name = candidate
				break
			}
		}
	}

	p.names = append(p.names, name)
	p.values[name] = v
	return name
}

// Conflict returns an entry whose path name nests with name, e.g. "brand" for
// "brand/primary" or the other way round. Such names cannot both be emitted as nested
// objects.
func (p *Pool[V]) Conflict(name string) (string, bool) {
	for _, existing := range p.names {
		if strings.HasPrefix(existing, name+PathSeparator) || strings.HasPrefix(name, existing+PathSeparator) {
			return existing, true
		}
	}
	return "", false
}

func (p *Pool[V]) taken(name string) bool {
	if _, ok := p.values[name]; ok {
		return true
	}
	_, ok := p.Conflict(name)
	return ok
}

// Ref builds a reference to the named entry.
func (p *Pool[V]) Ref(name string) Ref {
	return Ref{Section: p.section, Name: name}
}

// TokenName joins a base name and counter the way pooled names are generated.
func TokenName(base, counter string, useSuffix bool) string {
	if !useSuffix {
		return base
	}
	return base + "-" + counter
}

// MarshalJSON encodes the pool as a flat object in insertion order.
func (p *Pool[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, p.values[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := marshal(key)
	if err != nil {
		return err
	}
	v, err := marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
