package extractor

import (
	"fmt"
	"strconv"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// ShadowKind selects between outer shadows and inner shadows. Each kind has its own pool.
type ShadowKind int

const (
	ShadowOuter ShadowKind = iota
	ShadowInner
)

// Name returns the pool name prefix and per-style property key of the kind.
func (k ShadowKind) Name() string {
	if k == ShadowInner {
		return "inner-shadow"
	}
	return "shadow"
}

// Shadow is the canonical shadow record.
type Shadow struct {
	Kind       ShadowKind
	Color      token.Value
	BlurRadius float64
	OffsetX    float64
	OffsetY    float64
	Spread     float64
}

// MarshalJSON encodes the record with keys prefixed by the shadow kind, e.g.
// "inner-shadow-blur-radius".
func (s Shadow) MarshalJSON() ([]byte, error) {
	prefix := s.Kind.Name()
	t := token.NewTree()
	t.Set(prefix+"-color", s.Color)
	t.Set(prefix+"-blur-radius", s.BlurRadius)
	t.Set(prefix+"-offset-x", s.OffsetX)
	t.Set(prefix+"-offset-y", s.OffsetY)
	t.Set(prefix+"-spread", s.Spread)
	return t.MarshalJSON()
}

func (x *extraction) shadowPool(kind ShadowKind) *token.Pool[Shadow] {
	if kind == ShadowInner {
		return x.tokens.InnerShadows
	}
	return x.tokens.Shadows
}

func shadowsOf(style sketch.Style, kind ShadowKind) ([]sketch.Shadow, string) {
	if kind == ShadowInner {
		return style.InnerShadows, "innerShadows"
	}
	return style.Shadows, "shadows"
}

func (x *extraction) resolveShadow(s sketch.Shadow, kind ShadowKind, field string) (Shadow, error) {
	hex, err := colorHex(s.Color, field+".color")
	if err != nil {
		return Shadow{}, err
	}
	return Shadow{
		Kind:       kind,
		Color:      x.resolveColor(hex),
		BlurRadius: s.BlurRadius,
		OffsetX:    s.OffsetX,
		OffsetY:    s.OffsetY,
		Spread:     s.Spread,
	}, nil
}

// registerShadows pools every enabled shadow of the given kind across all layer styles.
// Names are "{kind}-{n}" where n only advances for records not pooled yet.
func (x *extraction) registerShadows(styles []sketch.SharedStyle, kind ShadowKind) error {
	pool := x.shadowPool(kind)
	for _, style := range styles {
		shadows, key := shadowsOf(style.Value, kind)
		for i, s := range shadows {
			if !s.IsEnabled {
				continue
			}
			shadow, err := x.resolveShadow(s, kind, fmt.Sprintf("layerStyles[%q].%s[%d]", style.Name, key, i))
			if err != nil {
				return err
			}
			pool.Register(shadow, kind.Name(), strconv.Itoa(pool.Len()+1), true)
		}
	}
	return nil
}

// shadowProperties adds one reference per enabled shadow of the given kind to record:
// "shadow", "shadow-2", "shadow-3", ... A shadow with no pooled match is omitted.
func (x *extraction) shadowProperties(record *token.Record, style sketch.SharedStyle, kind ShadowKind) error {
	pool := x.shadowPool(kind)
	shadows, key := shadowsOf(style.Value, kind)

	n := 0
	for i, s := range shadows {
		if !s.IsEnabled {
			continue
		}
		shadow, err := x.resolveShadow(s, kind, fmt.Sprintf("layerStyles[%q].%s[%d]", style.Name, key, i))
		if err != nil {
			return err
		}
		n++

		name, ok := pool.Lookup(shadow)
		if !ok {
			continue
		}
		record.Set(suffixed(kind.Name(), n), pool.Ref(name))
	}
	return nil
}

// suffixed leaves the first occurrence bare and appends "-n" from the second on.
func suffixed(key string, n int) string {
	if n <= 1 {
		return key
	}
	return key + "-" + strconv.Itoa(n)
}
