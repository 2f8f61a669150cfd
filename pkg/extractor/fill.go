package extractor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

var borderPositions = map[sketch.BorderPosition]string{
	sketch.BorderPositionInside:  "inside",
	sketch.BorderPositionCenter:  "center",
	sketch.BorderPositionOutside: "outside",
}

// layerStyleRecord resolves fills, borders, shadows and inner shadows of a layer style
// into one flat record, in that order.
func (x *extraction) layerStyleRecord(style sketch.SharedStyle) (*token.Record, error) {
	record := token.NewRecord()

	if err := x.fillProperties(record, style); err != nil {
		return nil, err
	}
	if err := x.borderProperties(record, style); err != nil {
		return nil, err
	}
	for _, kind := range []ShadowKind{ShadowOuter, ShadowInner} {
		if err := x.shadowProperties(record, style, kind); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// fillProperties emits the enabled fills of a style. Each fill kind is numbered on its
// own: "background-color", "background2-color", ... and likewise for gradients and images.
func (x *extraction) fillProperties(record *token.Record, style sketch.SharedStyle) error {
	var solids, gradients, images int

	for i, fill := range style.Value.Fills {
		if !fill.IsEnabled {
			continue
		}
		field := fmt.Sprintf("layerStyles[%q].fills[%d]", style.Name, i)

		switch fill.FillType {
		case sketch.FillTypeColor:
			hex, err := colorHex(fill.Color, field+".color")
			if err != nil {
				return err
			}
			solids++
			record.Set(numbered("background", solids, "color"), x.resolveColor(hex))

		case sketch.FillTypeGradient:
			kind, gradient, err := x.resolveGradient(fill.Gradient, field+".gradient")
			if err != nil {
				return err
			}
			gradients++
			record.Set(numbered("background", gradients, "gradient"), x.gradientRef(kind, gradient))

		case sketch.FillTypePattern:
			if fill.Image == nil {
				return sketch.Malformed(field+".image", "image reference is missing")
			}
			images++
			size, repeat := patternLayout(fill)
			record.Set(numbered("background", images, "image"), token.Keyword(fill.Image.Ref))
			record.Set(numbered("background", images, "position"), token.Keyword("center"))
			record.Set(numbered("background", images, "size"), size)
			record.Set(numbered("background", images, "repeat"), token.Keyword(repeat))
		}
	}
	return nil
}

// patternLayout maps an image fill's pattern mode to a background size and repeat mode.
func patternLayout(fill sketch.Fill) (token.Value, string) {
	switch fill.PatternFillType {
	case sketch.PatternFillTile:
		scale := fill.PatternTileScale
		if scale <= 0 {
			scale = 1
		}
		return token.Percent(math.Round(scale*10000) / 100), "repeat"
	case sketch.PatternFillStretch:
		return token.Percent(100), "no-repeat"
	case sketch.PatternFillFit:
		return token.Keyword("contain"), "no-repeat"
	default:
		return token.Keyword("cover"), "no-repeat"
	}
}

// borderProperties emits color, position and size of every enabled border.
func (x *extraction) borderProperties(record *token.Record, style sketch.SharedStyle) error {
	n := 0
	for i, border := range style.Value.Borders {
		if !border.IsEnabled {
			continue
		}
		hex, err := colorHex(border.Color, fmt.Sprintf("layerStyles[%q].borders[%d].color", style.Name, i))
		if err != nil {
			return err
		}
		n++

		position, ok := borderPositions[border.Position]
		if !ok {
			position = borderPositions[sketch.BorderPositionInside]
		}

		record.Set(numbered("border", n, "color"), x.resolveColor(hex))
		record.Set(numbered("border", n, "position"), token.Keyword(position))
		record.Set(numbered("border", n, "size"), token.Pixels(border.Thickness))
	}
	return nil
}

// numbered builds "prefix-part" for the first occurrence and "prefixN-part" after it.
func numbered(prefix string, n int, part string) string {
	if n > 1 {
		prefix += strconv.Itoa(n)
	}
	return prefix + "-" + part
}
