package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// GradientKind is the geometry of a gradient.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientAngular
)

// Name returns the pool name prefix of the kind.
func (k GradientKind) Name() string {
	switch k {
	case GradientRadial:
		return "radial-gradient"
	case GradientAngular:
		return "angular-gradient"
	default:
		return "linear-gradient"
	}
}

func gradientKind(t sketch.GradientType) GradientKind {
	switch t {
	case sketch.GradientTypeRadial:
		return GradientRadial
	case sketch.GradientTypeAngular:
		return GradientAngular
	default:
		return GradientLinear
	}
}

// Gradient is the canonical gradient record. Type is only set for radial gradients
// ("circle" or "ellipse").
type Gradient struct {
	Type   string         `json:"type,omitempty"`
	Degree float64        `json:"degree"`
	Stops  []GradientStop `json:"stops"`
}

// GradientStop is a stop color, either a color reference or a literal, at a rounded
// fractional position.
type GradientStop struct {
	Color    token.Value `json:"color"`
	Position float64     `json:"position"`
}

// resolveGradient builds the canonical record of a gradient. Stops keep source order.
func (x *extraction) resolveGradient(g *sketch.Gradient, field string) (GradientKind, Gradient, error) {
	if g == nil {
		return 0, Gradient{}, sketch.Malformed(field, "gradient is missing")
	}

	kind := gradientKind(g.GradientType)
	record := Gradient{
		Degree: token.AngleDegrees(g.From, g.To),
		Stops:  make([]GradientStop, 0, len(g.Stops)),
	}
	if kind == GradientRadial {
		record.Type = "circle"
		if g.ElipseLength > 0 {
			record.Type = "ellipse"
		}
	}

	for i, stop := range g.Stops {
		hex, err := colorHex(stop.Color, fmt.Sprintf("%s.stops[%d].color", field, i))
		if err != nil {
			return 0, Gradient{}, err
		}
		record.Stops = append(record.Stops, GradientStop{
			Color:    x.resolveColor(hex),
			Position: token.RoundPosition(stop.Position),
		})
	}

	return kind, record, nil
}

// registerGradients pools the gradient of every enabled gradient fill across all layer
// styles. Names are "{kind}-{n}" where n counts every occurrence of the kind, so a
// duplicate still consumes its number.
func (x *extraction) registerGradients(styles []sketch.SharedStyle) error {
	for _, style := range styles {
		for i, fill := range style.Value.Fills {
			if !fill.IsEnabled || fill.FillType != sketch.FillTypeGradient {
				continue
			}
			field := fmt.Sprintf("layerStyles[%q].fills[%d].gradient", style.Name, i)
			kind, record, err := x.resolveGradient(fill.Gradient, field)
			if err != nil {
				return err
			}
			x.registerGradient(kind, record)
		}
	}
	return nil
}

// registerGradient pools record unless a gradient of the same kind already holds it.
// The kind is part of the name rather than of the record, so equality is scoped by kind.
func (x *extraction) registerGradient(kind GradientKind, record Gradient) string {
	x.gradientCounters[kind]++
	counter := strconv.Itoa(x.gradientCounters[kind])
	return x.tokens.Gradients.RegisterFunc(record, kind.Name(), counter, true, ofKind(kind))
}

func ofKind(kind GradientKind) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, kind.Name())
	}
}

// gradientRef finds the pooled gradient equal to record whose name carries the kind.
func (x *extraction) gradientRef(kind GradientKind, record Gradient) token.Ref {
	name, ok := x.tokens.Gradients.LookupFunc(record, ofKind(kind))
	if !ok {
		name = x.registerGradient(kind, record)
	}
	return x.tokens.Gradients.Ref(name)
}
