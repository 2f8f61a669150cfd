// Package sketchtokens converts the shared styles of a Sketch design file into
// design tokens: named, deduplicated and cross-referenced colors, gradients,
// shadows and font attributes organized into nested namespaces, plus a
// stylesheet and a markdown report generated from them.
//
// The CLI lives in cmd/sketch-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed the conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named sketchtokens:
//
//	import "github.com/hellenic-development/sketch-tokens" // package sketchtokens
//
// # Quick start
//
//	result, err := sketchtokens.Run(ctx, sketchtokens.Options{
//	    Input:        "design.sketch",
//	    ExportImages: true,
//	    ImageDir:     "assets",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design-tokens.json", result.JSON, 0644)
//
// A document without shared swatches yields [extractor.ErrNoColorVariables]
// and no output. Documents that fail schema validation or lack required
// fields yield an error matching [sketch.ErrMalformedDocument].
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Output document
//
// The JSON document holds, in this order: colors, gradients, shadows,
// inner-shadows, fonts, font-sizes, font-weights, text-alignments,
// layer-styles and text-styles. Style properties refer to pooled tokens as
// {section.path}, e.g. {colors.brand.primary}, or carry a literal value.
//
// # Embedding
//
// [Convert] runs extraction and assembly on an already decoded
// [sketch.Document], for callers that load documents themselves.
package sketchtokens
