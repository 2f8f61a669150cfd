package sketch

// Document represents the parts of a Sketch document.json that carry shared styles.
// Swatches (color variables), shared layer styles and shared text styles are kept in
// the order the file stores them; callers sort them by name before processing.
type Document struct {
	Class           string                          `json:"_class"`
	ObjectID        string                          `json:"do_objectID"`
	SharedSwatches  *SharedObjects[Swatch]          `json:"sharedSwatches,omitempty"`
	LayerStyles     *SharedObjects[SharedStyle]     `json:"layerStyles,omitempty"`
	LayerTextStyles *SharedObjects[SharedTextStyle] `json:"layerTextStyles,omitempty"`
}

// SharedObjects is the container Sketch uses for every shared collection.
type SharedObjects[T any] struct {
	Class   string `json:"_class"`
	Objects []T    `json:"objects"`
}

// Swatch is a named color variable. Names are hierarchical paths delimited by '/'.
type Swatch struct {
	Class    string `json:"_class"`
	ObjectID string `json:"do_objectID"`
	Name     string `json:"name"`
	Value    *Color `json:"value"`
}

// SharedStyle is a named layer style.
type SharedStyle struct {
	Class    string `json:"_class"`
	ObjectID string `json:"do_objectID"`
	Name     string `json:"name"`
	Value    Style  `json:"value"`
}

// SharedTextStyle is a named text style.
type SharedTextStyle struct {
	Class    string    `json:"_class"`
	ObjectID string    `json:"do_objectID"`
	Name     string    `json:"name"`
	Value    TextValue `json:"value"`
}

// Style groups the visual layers of a layer style. Each slice keeps the stacking order
// from the file.
type Style struct {
	Class        string   `json:"_class"`
	Fills        []Fill   `json:"fills,omitempty"`
	Borders      []Border `json:"borders,omitempty"`
	Shadows      []Shadow `json:"shadows,omitempty"`
	InnerShadows []Shadow `json:"innerShadows,omitempty"`
}

// Color is an RGBA color with float channels ranging from 0 to 1.
type Color struct {
	Class string  `json:"_class,omitempty"`
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// FillType discriminates the paint of a fill or border.
type FillType int

const (
	FillTypeColor    FillType = 0
	FillTypeGradient FillType = 1
	FillTypePattern  FillType = 4
)

// PatternFillType controls how an image fill is laid out.
type PatternFillType int

const (
	PatternFillTile    PatternFillType = 0
	PatternFillFill    PatternFillType = 1
	PatternFillStretch PatternFillType = 2
	PatternFillFit     PatternFillType = 3
)

// Fill is a single background paint: a flat color, a gradient or an image pattern.
type Fill struct {
	Class            string          `json:"_class"`
	IsEnabled        bool            `json:"isEnabled"`
	FillType         FillType        `json:"fillType"`
	Color            *Color          `json:"color,omitempty"`
	Gradient         *Gradient       `json:"gradient,omitempty"`
	Image            *FileReference  `json:"image,omitempty"`
	PatternFillType  PatternFillType `json:"patternFillType"`
	PatternTileScale float64         `json:"patternTileScale"`
}

// BorderPosition places a border relative to the layer outline.
type BorderPosition int

const (
	BorderPositionInside  BorderPosition = 0
	BorderPositionCenter  BorderPosition = 1
	BorderPositionOutside BorderPosition = 2
)

// Border is a stroke painted around a layer.
type Border struct {
	Class     string         `json:"_class"`
	IsEnabled bool           `json:"isEnabled"`
	FillType  FillType       `json:"fillType"`
	Color     *Color         `json:"color,omitempty"`
	Gradient  *Gradient      `json:"gradient,omitempty"`
	Position  BorderPosition `json:"position"`
	Thickness float64        `json:"thickness"`
}

// Shadow is used for both outer shadows and inner shadows.
type Shadow struct {
	Class      string  `json:"_class"`
	IsEnabled  bool    `json:"isEnabled"`
	BlurRadius float64 `json:"blurRadius"`
	OffsetX    float64 `json:"offsetX"`
	OffsetY    float64 `json:"offsetY"`
	Spread     float64 `json:"spread"`
	Color      *Color  `json:"color,omitempty"`
}

// GradientType is the gradient discriminant: 0 linear, 1 radial, 2 angular.
type GradientType int

const (
	GradientTypeLinear  GradientType = 0
	GradientTypeRadial  GradientType = 1
	GradientTypeAngular GradientType = 2
)

// Gradient describes a multi-stop gradient. From and To are points encoded as
// "{x, y}" in unit coordinates of the layer.
type Gradient struct {
	Class        string         `json:"_class"`
	GradientType GradientType   `json:"gradientType"`
	ElipseLength float64        `json:"elipseLength"`
	From         string         `json:"from"`
	To           string         `json:"to"`
	Stops        []GradientStop `json:"stops"`
}

// GradientStop is a color at a fractional position along the gradient.
type GradientStop struct {
	Class    string  `json:"_class"`
	Color    *Color  `json:"color,omitempty"`
	Position float64 `json:"position"`
}

// FileReference points at a file stored inside the .sketch archive, e.g. "images/abc.png".
type FileReference struct {
	Class    string `json:"_class"`
	RefClass string `json:"_ref_class"`
	Ref      string `json:"_ref"`
}

// TextValue is the style value of a shared text style.
type TextValue struct {
	Class     string     `json:"_class"`
	TextStyle *TextStyle `json:"textStyle,omitempty"`
}

// TextStyle wraps the encoded attributed-string attributes.
type TextStyle struct {
	Class             string            `json:"_class"`
	EncodedAttributes EncodedAttributes `json:"encodedAttributes"`
	VerticalAlignment int               `json:"verticalAlignment"`
}

// EncodedAttributes holds font, color and paragraph attributes of a text style.
type EncodedAttributes struct {
	Font           *FontDescriptor `json:"MSAttributedStringFontAttribute,omitempty"`
	Color          *Color          `json:"MSAttributedStringColorAttribute,omitempty"`
	ParagraphStyle *ParagraphStyle `json:"paragraphStyle,omitempty"`
}

// FontDescriptor wraps the font attributes.
type FontDescriptor struct {
	Class      string         `json:"_class"`
	Attributes FontAttributes `json:"attributes"`
}

// FontAttributes carries the composite font name (e.g. "Inter-Bold") and point size.
// Size is nil when the file stores null.
type FontAttributes struct {
	Name string   `json:"name"`
	Size *float64 `json:"size"`
}

// TextAlignment is the paragraph alignment: 0 left, 1 right, 2 center.
type TextAlignment int

const (
	TextAlignmentLeft   TextAlignment = 0
	TextAlignmentRight  TextAlignment = 1
	TextAlignmentCenter TextAlignment = 2
)

// ParagraphStyle holds paragraph-level attributes. Alignment is nil when absent.
type ParagraphStyle struct {
	Class     string         `json:"_class"`
	Alignment *TextAlignment `json:"alignment,omitempty"`
}
