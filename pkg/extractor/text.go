package extractor

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

const (
	weightSeparator = "-"
	defaultWeight   = "Regular"
	defaultTextHex  = "000000ff"
)

var textAlignments = map[sketch.TextAlignment]string{
	sketch.TextAlignmentLeft:   "left",
	sketch.TextAlignmentRight:  "right",
	sketch.TextAlignmentCenter: "center",
}

// FontSize is a pooled font size. Auto marks a text style whose size is null.
type FontSize struct {
	Auto   bool
	Points float64
}

// MarshalJSON encodes the size as a number, or as "auto".
func (s FontSize) MarshalJSON() ([]byte, error) {
	if s.Auto {
		return json.Marshal("auto")
	}
	return json.Marshal(s.Points)
}

func fontSizeOf(attrs sketch.FontAttributes) FontSize {
	if attrs.Size == nil {
		return FontSize{Auto: true}
	}
	return FontSize{Points: *attrs.Size}
}

func fontOf(style sketch.SharedTextStyle) (*sketch.FontDescriptor, error) {
	ts := style.Value.TextStyle
	if ts == nil || ts.EncodedAttributes.Font == nil {
		return nil, sketch.Malformed(
			fmt.Sprintf("layerTextStyles[%q].textStyle.encodedAttributes.MSAttributedStringFontAttribute", style.Name),
			"font attribute is missing")
	}
	return ts.EncodedAttributes.Font, nil
}

// registerFontSizes ranks every distinct font size ascending and pools them as
// "font-size-1", "font-size-2", ... An automatic size is pooled last as "font-size-auto".
func (x *extraction) registerFontSizes(styles []sketch.SharedTextStyle) error {
	var (
		sizes []float64
		auto  bool
	)
	for _, style := range styles {
		font, err := fontOf(style)
		if err != nil {
			return err
		}
		size := fontSizeOf(font.Attributes)
		if size.Auto {
			auto = true
			continue
		}
		if !slices.Contains(sizes, size.Points) {
			sizes = append(sizes, size.Points)
		}
	}
	slices.Sort(sizes)

	for i, points := range sizes {
		x.tokens.FontSizes.Register(FontSize{Points: points}, "font-size", strconv.Itoa(i+1), true)
	}
	if auto {
		x.tokens.FontSizes.Register(FontSize{Auto: true}, "font-size", "auto", true)
	}
	return nil
}

// textStyleRecord resolves the font family, size, weight, color and alignment of a text
// style. rank is the 1-based position of the style in sorted order and names a text color
// that is not pooled yet.
func (x *extraction) textStyleRecord(rank int, style sketch.SharedTextStyle) (*token.Record, error) {
	font, err := fontOf(style)
	if err != nil {
		return nil, err
	}
	attrs := style.Value.TextStyle.EncodedAttributes
	record := token.NewRecord()

	family := font.Attributes.Name
	name := x.tokens.Fonts.Register(family, "font-family", sanitizeFamily(family), true)
	record.Set("font-family", x.tokens.Fonts.Ref(name))

	if name, ok := x.tokens.FontSizes.Lookup(fontSizeOf(font.Attributes)); ok {
		record.Set("font-size", x.tokens.FontSizes.Ref(name))
	}

	weight := defaultWeight
	if i := strings.LastIndex(family, weightSeparator); i >= 0 && i < len(family)-1 {
		weight = family[i+1:]
	}
	record.Set("font-weight", token.Keyword(weight))

	hex := defaultTextHex
	if attrs.Color != nil {
		hex = token.ColorToHex(attrs.Color.Red, attrs.Color.Green, attrs.Color.Blue, attrs.Color.Alpha)
	}
	name = x.tokens.Colors.Register(hex, "color", strconv.Itoa(rank), true)
	record.Set("text-color", x.tokens.Colors.Ref(name))

	align := alignmentOf(attrs.ParagraphStyle)
	name = x.tokens.TextAlignments.Register(align, "text-align", align, true)
	record.Set("text-align", x.tokens.TextAlignments.Ref(name))

	return record, nil
}

func alignmentOf(p *sketch.ParagraphStyle) string {
	if p == nil || p.Alignment == nil {
		return textAlignments[sketch.TextAlignmentLeft]
	}
	if v, ok := textAlignments[*p.Alignment]; ok {
		return v
	}
	return textAlignments[sketch.TextAlignmentLeft]
}

// sanitizeFamily turns a font family into a name fragment: spaces become the weight
// separator, or are dropped when the family already contains one.
func sanitizeFamily(family string) string {
	if !strings.Contains(family, " ") {
		return family
	}
	if strings.Contains(family, weightSeparator) {
		return strings.ReplaceAll(family, " ", "")
	}
	return strings.ReplaceAll(family, " ", weightSeparator)
}
