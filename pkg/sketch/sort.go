package sketch

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName returns a copy of items ordered by name using locale-aware collation with
// numeric ordering, so "Heading 2" sorts before "Heading 10". The sort is stable.
func SortByName[T any](items []T, name func(T) string) []T {
	sorted := slices.Clone(items)
	c := collate.New(language.Und, collate.Numeric)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return c.CompareString(name(a), name(b))
	})
	return sorted
}

// SortedSwatches returns the document swatches sorted by name, or nil when the document has
// no swatch section.
func (d *Document) SortedSwatches() []Swatch {
	if d.SharedSwatches == nil {
		return nil
	}
	return SortByName(d.SharedSwatches.Objects, func(s Swatch) string { return s.Name })
}

// SortedLayerStyles returns the shared layer styles sorted by name.
func (d *Document) SortedLayerStyles() []SharedStyle {
	if d.LayerStyles == nil {
		return nil
	}
	return SortByName(d.LayerStyles.Objects, func(s SharedStyle) string { return s.Name })
}

// SortedTextStyles returns the shared text styles sorted by name.
func (d *Document) SortedTextStyles() []SharedTextStyle {
	if d.LayerTextStyles == nil {
		return nil
	}
	return SortByName(d.LayerTextStyles.Objects, func(s SharedTextStyle) string { return s.Name })
}
