package extractor

import (
	"fmt"
	"slices"

	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// Assemble composes the output document in its fixed section order. Colors are nested by
// their path names and gradients are emitted in alphabetical name order.
func Assemble(t *Tokens) (*token.Tree, error) {
	doc := token.NewTree()

	colors := token.NewTree()
	for name, hex := range t.Colors.All() {
		if err := colors.Insert(token.SplitPath(name), hex); err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
	}
	doc.Set(SectionColors, colors)

	gradients := token.NewTree()
	names := t.Gradients.Names()
	slices.Sort(names)
	for _, name := range names {
		g, _ := t.Gradients.Get(name)
		gradients.Set(name, g)
	}
	doc.Set(SectionGradients, gradients)

	doc.Set(SectionShadows, t.Shadows)
	doc.Set(SectionInnerShadows, t.InnerShadows)
	doc.Set(SectionFonts, t.Fonts)
	doc.Set(SectionFontSizes, t.FontSizes)
	doc.Set(SectionFontWeights, t.FontWeights)
	doc.Set(SectionTextAlignments, t.TextAlignments)
	doc.Set(SectionLayerStyles, t.LayerStyles)
	doc.Set(SectionTextStyles, t.TextStyles)

	doc.Delete("length")
	return doc, nil
}
