package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hellenic-development/sketch-tokens/pkg/extractor"
	"github.com/hellenic-development/sketch-tokens/pkg/imager"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// ToMarkdown transforms extracted design tokens into a well-formatted markdown report.
// The output lists every token pool with its CSS custom property, the resolved properties
// of every layer and text style, swatches dropped as duplicates or conflicts and exported assets.
func ToMarkdown(tokens *extractor.Tokens, fileName string, assets []imager.ExportedAsset) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Tokens - %s\n\n", fileName))
	sb.WriteString("This document lists the design tokens extracted from the Sketch file.\n\n")

	sb.WriteString("## Design System\n\n")

	// Colors
	if tokens.Colors.Len() > 0 {
		sb.WriteString("### Color Palette\n\n")
		writeTableHeader(&sb, "Token", "Variable", "Value")
		for name, hex := range tokens.Colors.All() {
			writeTableRow(&sb, name, varName(tokens.Colors.Ref(name)), cssColor(hex))
		}
		sb.WriteString("\n")
	}

	if len(tokens.Duplicates) > 0 {
		sb.WriteString("> Swatches sharing a color with an earlier swatch are not emitted:\n")
		for _, d := range tokens.Duplicates {
			sb.WriteString(fmt.Sprintf("> - `%s` duplicates `%s`\n", d.Name, d.Of))
		}
		sb.WriteString("\n")
	}

	if len(tokens.Conflicts) > 0 {
		sb.WriteString("> Swatches whose names nest with an earlier swatch are not emitted:\n")
		for _, c := range tokens.Conflicts {
			sb.WriteString(fmt.Sprintf("> - `%s` nests with `%s`\n", c.Name, c.With))
		}
		sb.WriteString("\n")
	}

	// Gradients
	if tokens.Gradients.Len() > 0 {
		sb.WriteString("### Gradients\n\n")
		writeTableHeader(&sb, "Token", "Variable", "Value")
		for _, name := range sortedNames(tokens.Gradients.Names()) {
			g, _ := tokens.Gradients.Get(name)
			writeTableRow(&sb, name, varName(tokens.Gradients.Ref(name)), cssGradient(name, g))
		}
		sb.WriteString("\n")
	}

	// Shadows
	if tokens.Shadows.Len() > 0 || tokens.InnerShadows.Len() > 0 {
		sb.WriteString("### Shadows\n\n")
		writeTableHeader(&sb, "Token", "Variable", "Value")
		for _, pool := range []*token.Pool[extractor.Shadow]{tokens.Shadows, tokens.InnerShadows} {
			for name, s := range pool.All() {
				writeTableRow(&sb, name, varName(pool.Ref(name)), cssShadow(s))
			}
		}
		sb.WriteString("\n")
	}

	// Typography
	if tokens.Fonts.Len() > 0 || tokens.FontSizes.Len() > 0 || tokens.TextAlignments.Len() > 0 {
		sb.WriteString("### Typography\n\n")
		writeTableHeader(&sb, "Token", "Variable", "Value")
		for name, family := range tokens.Fonts.All() {
			writeTableRow(&sb, name, varName(tokens.Fonts.Ref(name)), family)
		}
		for name, size := range tokens.FontSizes.All() {
			v := "auto"
			if !size.Auto {
				v = token.Pixels(size.Points).String()
			}
			writeTableRow(&sb, name, varName(tokens.FontSizes.Ref(name)), v)
		}
		for name, align := range tokens.TextAlignments.All() {
			writeTableRow(&sb, name, varName(tokens.TextAlignments.Ref(name)), align)
		}
		sb.WriteString("\n")
	}

	writeStyles(&sb, "Layer Styles", tokens.LayerStyles)
	writeStyles(&sb, "Text Styles", tokens.TextStyles)

	// Exported Assets
	if len(assets) > 0 {
		sb.WriteString("## Exported Assets\n\n")
		writeTableHeader(&sb, "Style", "File", "Format", "Source")
		for _, asset := range assets {
			name := asset.StyleName
			if name == "" {
				name = asset.FileName
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | `%s` |\n", name, asset.FileName, strings.ToUpper(asset.Format), asset.Ref))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeStyles(sb *strings.Builder, title string, styles *token.Tree) {
	if styles.Len() == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	walkStyles(styles, nil, func(path []string, rec *token.Record) {
		sb.WriteString(fmt.Sprintf("### %s\n\n", strings.Join(path, " / ")))
		sb.WriteString(fmt.Sprintf("Class: `.%s`\n\n", className(path)))
		writeTableHeader(sb, "Property", "Value")
		for _, p := range rec.Properties() {
			writeTableRow(sb, p.Key, p.Value.String())
		}
		sb.WriteString("\n")
	})
}

func writeTableHeader(sb *strings.Builder, columns ...string) {
	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("-------|", len(columns)) + "\n")
}

func writeTableRow(sb *strings.Builder, cells ...string) {
	for i, c := range cells {
		cells[i] = "`" + strings.ReplaceAll(c, "|", "\\|") + "`"
	}
	sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

// sortedNames sorts pool names alphabetically, the order gradients are emitted in.
func sortedNames(names []string) []string {
	slices.Sort(names)
	return names
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// This is used for generating CSS variable and class names from token and style names.
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	// Remove special characters and replace spaces with hyphens
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	// Remove any non-alphanumeric characters except hyphens
	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
