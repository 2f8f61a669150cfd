package extractor

import (
	"errors"
	"fmt"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// Output section names, in emission order.
const (
	SectionColors         = "colors"
	SectionGradients      = "gradients"
	SectionShadows        = "shadows"
	SectionInnerShadows   = "inner-shadows"
	SectionFonts          = "fonts"
	SectionFontSizes      = "font-sizes"
	SectionFontWeights    = "font-weights"
	SectionTextAlignments = "text-alignments"
	SectionLayerStyles    = "layer-styles"
	SectionTextStyles     = "text-styles"
)

// ErrNoColorVariables is returned when the document has no shared swatch section.
// Nothing is extracted in that case.
var ErrNoColorVariables = errors.New("document has no color variables")

// Tokens holds every token pool and namespace tree produced from one document.
// A Tokens value belongs to a single extraction run and is never shared across runs,
// since generated names depend on discovery order.
type Tokens struct {
	Colors         *token.Pool[string]
	Gradients      *token.Pool[Gradient]
	Shadows        *token.Pool[Shadow]
	InnerShadows   *token.Pool[Shadow]
	Fonts          *token.Pool[string]
	FontSizes      *token.Pool[FontSize]
	FontWeights    *token.Pool[string]
	TextAlignments *token.Pool[string]

	LayerStyles *token.Tree
	TextStyles  *token.Tree

	// Duplicates lists swatches that were not pooled because an earlier swatch already
	// holds the same color.
	Duplicates []DuplicateSwatch

	// Conflicts lists swatches that were not pooled because their name nests with an
	// earlier swatch, e.g. "brand/primary" after "brand".
	Conflicts []ConflictingSwatch
}

// DuplicateSwatch records a swatch whose color is already pooled under another name.
type DuplicateSwatch struct {
	Name string // swatch that was skipped
	Of   string // pooled name holding the same color
}

// ConflictingSwatch records a swatch whose path name nests with a pooled name.
type ConflictingSwatch struct {
	Name string // swatch that was skipped
	With string // pooled name it nests with
}

// NewTokens creates an empty set of pools and trees.
func NewTokens() *Tokens {
	return &Tokens{
		Colors:         token.NewPool[string](SectionColors),
		Gradients:      token.NewPool[Gradient](SectionGradients),
		Shadows:        token.NewPool[Shadow](SectionShadows),
		InnerShadows:   token.NewPool[Shadow](SectionInnerShadows),
		Fonts:          token.NewPool[string](SectionFonts),
		FontSizes:      token.NewPool[FontSize](SectionFontSizes),
		FontWeights:    token.NewPool[string](SectionFontWeights),
		TextAlignments: token.NewPool[string](SectionTextAlignments),
		LayerStyles:    token.NewTree(),
		TextStyles:     token.NewTree(),
	}
}

// extraction carries the state of one forward pass over a document.
type extraction struct {
	tokens *Tokens

	// gradientCounters counts every occurrence of a gradient kind, duplicates included.
	gradientCounters map[GradientKind]int
}

// Extract converts a document into design tokens in a single forward pass:
// swatches, gradient and shadow pools, layer styles, the font-size ranking and
// finally text styles. Every collection is processed in numeric-aware name order.
//
// ErrNoColorVariables is returned when the document has no swatch section, and a
// *sketch.MalformedDocumentError when a required field is missing.
func Extract(doc *sketch.Document) (*Tokens, error) {
	if doc == nil || doc.SharedSwatches == nil {
		return nil, ErrNoColorVariables
	}

	x := &extraction{
		tokens:           NewTokens(),
		gradientCounters: make(map[GradientKind]int),
	}

	if err := x.extractSwatches(doc.SortedSwatches()); err != nil {
		return nil, err
	}

	layerStyles := doc.SortedLayerStyles()
	if err := x.registerGradients(layerStyles); err != nil {
		return nil, err
	}
	for _, kind := range []ShadowKind{ShadowOuter, ShadowInner} {
		if err := x.registerShadows(layerStyles, kind); err != nil {
			return nil, err
		}
	}
	for _, style := range layerStyles {
		record, err := x.layerStyleRecord(style)
		if err != nil {
			return nil, err
		}
		if err := x.tokens.LayerStyles.Insert(token.SplitPath(style.Name), record); err != nil {
			return nil, sketch.Malformed(fmt.Sprintf("layerStyles[%q].name", style.Name), "%v", err)
		}
	}

	textStyles := doc.SortedTextStyles()
	if err := x.registerFontSizes(textStyles); err != nil {
		return nil, err
	}
	for i, style := range textStyles {
		record, err := x.textStyleRecord(i+1, style)
		if err != nil {
			return nil, err
		}
		if err := x.tokens.TextStyles.Insert(token.SplitPath(style.Name), record); err != nil {
			return nil, sketch.Malformed(fmt.Sprintf("layerTextStyles[%q].name", style.Name), "%v", err)
		}
	}

	return x.tokens, nil
}

// extractSwatches registers every swatch color under its full path name. Swatches whose
// color or path clashes with an earlier swatch are recorded and skipped.
func (x *extraction) extractSwatches(swatches []sketch.Swatch) error {
	for _, swatch := range swatches {
		hex, err := colorHex(swatch.Value, fmt.Sprintf("sharedSwatches[%q].value", swatch.Name))
		if err != nil {
			return err
		}

		if existing, ok := x.tokens.Colors.Lookup(hex); ok {
			x.tokens.Duplicates = append(x.tokens.Duplicates, DuplicateSwatch{Name: swatch.Name, Of: existing})
			continue
		}
		if with, ok := x.tokens.Colors.Conflict(swatch.Name); ok {
			x.tokens.Conflicts = append(x.tokens.Conflicts, ConflictingSwatch{Name: swatch.Name, With: with})
			continue
		}
		x.tokens.Colors.Register(hex, swatch.Name, "", false)
	}
	return nil
}

// resolveColor returns a reference when the color pool already holds hex and the
// literal color otherwise. The pool is never modified.
func (x *extraction) resolveColor(hex string) token.Value {
	if name, ok := x.tokens.Colors.Lookup(hex); ok {
		return x.tokens.Colors.Ref(name)
	}
	return token.Color(hex)
}

// colorHex canonicalizes a required color, reporting field when it is missing.
func colorHex(c *sketch.Color, field string) (string, error) {
	if c == nil {
		return "", sketch.Malformed(field, "color is missing")
	}
	return token.ColorToHex(c.Red, c.Green, c.Blue, c.Alpha), nil
}
