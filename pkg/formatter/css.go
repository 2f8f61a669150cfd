package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/hellenic-development/sketch-tokens/pkg/extractor"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// fontWeights maps weight suffixes of font identifiers to numeric CSS weights.
var fontWeights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"regular":    "400",
	"book":       "400",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"black":      "900",
	"heavy":      "900",
}

// ToCSS renders the tokens as a stylesheet: every pooled token becomes a custom property
// on :root and every layer and text style becomes a class. References are written as
// var() lookups and color literals as rgba().
func ToCSS(tokens *extractor.Tokens) string {
	var sb strings.Builder

	sb.WriteString(":root {\n")

	sb.WriteString("  /* Colors */\n")
	for name, hex := range tokens.Colors.All() {
		writeDecl(&sb, varName(tokens.Colors.Ref(name)), cssColor(hex))
	}

	sb.WriteString("  /* Gradients */\n")
	for _, name := range sortedNames(tokens.Gradients.Names()) {
		g, _ := tokens.Gradients.Get(name)
		writeDecl(&sb, varName(tokens.Gradients.Ref(name)), cssGradient(name, g))
	}

	sb.WriteString("  /* Shadows */\n")
	for _, pool := range []*token.Pool[extractor.Shadow]{tokens.Shadows, tokens.InnerShadows} {
		for name, s := range pool.All() {
			writeDecl(&sb, varName(pool.Ref(name)), cssShadow(s))
		}
	}

	sb.WriteString("  /* Typography */\n")
	for name, family := range tokens.Fonts.All() {
		writeDecl(&sb, varName(tokens.Fonts.Ref(name)), strconv.Quote(family))
	}
	for name, size := range tokens.FontSizes.All() {
		v := "auto"
		if !size.Auto {
			v = token.Pixels(size.Points).String()
		}
		writeDecl(&sb, varName(tokens.FontSizes.Ref(name)), v)
	}
	for name, weight := range tokens.FontWeights.All() {
		writeDecl(&sb, varName(tokens.FontWeights.Ref(name)), cssFontWeight(weight))
	}
	for name, align := range tokens.TextAlignments.All() {
		writeDecl(&sb, varName(tokens.TextAlignments.Ref(name)), align)
	}

	sb.WriteString("}\n")

	walkStyles(tokens.LayerStyles, nil, func(path []string, rec *token.Record) {
		writeRule(&sb, path, rec)
	})
	walkStyles(tokens.TextStyles, nil, func(path []string, rec *token.Record) {
		writeRule(&sb, path, rec)
	})

	return sb.String()
}

func writeDecl(sb *strings.Builder, property, value string) {
	fmt.Fprintf(sb, "  %s: %s;\n", property, value)
}

// writeRule emits one class per style. Keys with a direct CSS counterpart are written as
// declarations; the rest stay available as custom properties on the class. All shadows
// of a style are combined into one box-shadow, inner shadow variables carrying inset.
func writeRule(sb *strings.Builder, path []string, rec *token.Record) {
	fmt.Fprintf(sb, "\n.%s {\n", className(path))
	var shadows []string
	for _, p := range rec.Properties() {
		value := cssValue(p.Value)
		if isShadowKey(p.Key) {
			shadows = append(shadows, value)
			continue
		}
		switch p.Key {
		case "background-color", "background-position", "background-size", "background-repeat",
			"border-color", "font-family", "font-size", "text-align":
			writeDecl(sb, p.Key, value)
		case "background-image":
			writeDecl(sb, p.Key, fmt.Sprintf("url(%s)", strconv.Quote(p.Value.String())))
		case "background-gradient":
			writeDecl(sb, "background-image", value)
		case "font-weight":
			writeDecl(sb, p.Key, cssFontWeight(p.Value.String()))
		case "text-color":
			writeDecl(sb, "color", value)
		case "border-size":
			writeDecl(sb, "border-width", value)
			writeDecl(sb, "border-style", "solid")
		default:
			writeDecl(sb, "--"+p.Key, value)
		}
	}
	if len(shadows) > 0 {
		writeDecl(sb, "box-shadow", strings.Join(shadows, ", "))
	}
	sb.WriteString("}\n")
}

// isShadowKey matches the numbered shadow keys of a layer style: shadow, shadow-2,
// inner-shadow, inner-shadow-2 and so on.
func isShadowKey(key string) bool {
	for _, kind := range []extractor.ShadowKind{extractor.ShadowOuter, extractor.ShadowInner} {
		name := kind.Name()
		if key == name {
			return true
		}
		if n, ok := strings.CutPrefix(key, name+"-"); ok {
			if _, err := strconv.Atoi(n); err == nil {
				return true
			}
		}
	}
	return false
}

// walkStyles visits every record of a namespace tree depth-first in insertion order,
// including styles nested under another style.
func walkStyles(t *token.Tree, prefix []string, fn func(path []string, rec *token.Record)) {
	for _, key := range t.Keys() {
		node, _ := t.Get(key)
		path := append(append([]string(nil), prefix...), key)
		switch v := node.(type) {
		case *token.Tree:
			walkStyles(v, path, fn)
		case *token.Record:
			fn(path, v)
			if children := v.Children(); children != nil {
				walkStyles(children, path, fn)
			}
		}
	}
}

// varName maps a reference to its custom property name, e.g. {colors.brand.primary}
// becomes --colors-brand-primary.
func varName(ref token.Ref) string {
	return "--" + toKebabCase(strings.Join(ref.Path(), "-"))
}

func className(path []string) string {
	name := toKebabCase(strings.Join(path, "-"))
	if name == "" {
		return "style"
	}
	return name
}

// cssValue renders a property value for a stylesheet.
func cssValue(v token.Value) string {
	switch v := v.(type) {
	case token.Ref:
		return fmt.Sprintf("var(%s)", varName(v))
	case token.Color:
		return cssColor(string(v))
	default:
		return v.String()
	}
}

// cssColor converts an 8 digit hex color to rgba(). Unparsable input is returned as is.
func cssColor(hex string) string {
	c, err := csscolorparser.Parse("#" + hex)
	if err != nil {
		return hex
	}
	r, g, b, _ := c.RGBA255()
	alpha := strconv.FormatFloat(float64(int(c.A*1000+0.5))/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha)
}

func cssGradient(name string, g extractor.Gradient) string {
	stops := make([]string, 0, len(g.Stops))
	for _, s := range g.Stops {
		stops = append(stops, fmt.Sprintf("%s %s", cssValue(s.Color), token.Percent(math.Round(s.Position*10000)/100)))
	}
	list := strings.Join(stops, ", ")
	degree := strconv.FormatFloat(g.Degree, 'f', -1, 64)

	switch {
	case strings.HasPrefix(name, extractor.GradientRadial.Name()):
		return fmt.Sprintf("radial-gradient(%s, %s)", g.Type, list)
	case strings.HasPrefix(name, extractor.GradientAngular.Name()):
		return fmt.Sprintf("conic-gradient(from %sdeg, %s)", degree, list)
	default:
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", degree, list)
	}
}

func cssShadow(s extractor.Shadow) string {
	value := fmt.Sprintf("%s %s %s %s %s",
		token.Pixels(s.OffsetX), token.Pixels(s.OffsetY), token.Pixels(s.BlurRadius), token.Pixels(s.Spread),
		cssValue(s.Color))
	if s.Kind == extractor.ShadowInner {
		return "inset " + value
	}
	return value
}

func cssFontWeight(weight string) string {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "").Replace(weight))
	if v, ok := fontWeights[key]; ok {
		return v
	}
	return weight
}
