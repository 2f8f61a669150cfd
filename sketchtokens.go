package sketchtokens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hellenic-development/sketch-tokens/pkg/config"
	"github.com/hellenic-development/sketch-tokens/pkg/extractor"
	"github.com/hellenic-development/sketch-tokens/pkg/formatter"
	"github.com/hellenic-development/sketch-tokens/pkg/imager"
	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// DefaultIndent is the indentation of the emitted JSON document.
const DefaultIndent = "  "

// Options configures the conversion.
type Options struct {
	Input        string // .sketch file, default config.DefaultInput
	Indent       string // JSON indentation, default two spaces
	ExportImages bool
	ImageDir     string
	Parallel     int    // concurrent image copies
	Logger       Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	Tokens   *extractor.Tokens
	Document *token.Tree // assembled output document
	FileName string      // base name of the input file
	JSON     []byte      // indented JSON of Document
	CSS      string      // stylesheet output
	Markdown string      // formatted markdown report
	Assets   []imager.ExportedAsset
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes the conversion pipeline and returns the result.
//
// extractor.ErrNoColorVariables is returned unchanged when the document has no swatches,
// so callers can tell an empty document apart from a failure.
func Run(ctx context.Context, opts Options) (*Result, error) {
	// Apply defaults.
	defaults := config.Defaults()
	if opts.Input == "" {
		opts.Input = defaults.Input
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	if opts.ImageDir == "" {
		opts.ImageDir = defaults.Images.Dir
	}
	if opts.Parallel <= 0 {
		opts.Parallel = defaults.Images.Parallel
	}

	opts.logInfo("Opening %s...", opts.Input)
	file, err := sketch.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("open design file: %w", err)
	}
	defer file.Close()
	opts.logInfo("Document validated")

	opts.logInfo("Extracting design tokens...")
	tokens, doc, err := Convert(file.Document)
	if err != nil {
		if errors.Is(err, extractor.ErrNoColorVariables) {
			return nil, err
		}
		return nil, fmt.Errorf("extract tokens: %w", err)
	}
	for _, d := range tokens.Duplicates {
		opts.logWarn("Swatch %q has the same color as %q and was skipped", d.Name, d.Of)
	}
	for _, c := range tokens.Conflicts {
		opts.logWarn("Swatch %q nests with %q and was skipped", c.Name, c.With)
	}
	opts.logInfo("Extracted %d color(s), %d gradient(s), %d shadow(s), %d inner shadow(s)",
		tokens.Colors.Len(), tokens.Gradients.Len(), tokens.Shadows.Len(), tokens.InnerShadows.Len())

	result := &Result{
		Tokens:   tokens,
		Document: doc,
		FileName: filepath.Base(opts.Input),
	}

	// Image export (opt-in).
	if opts.ExportImages {
		refs := imager.CollectImageRefs(file.Document)
		if len(refs) == 0 {
			opts.logInfo("No embedded images to export")
		} else {
			opts.logInfo("Exporting %d image(s) to %s...", len(refs), opts.ImageDir)
			exported, err := imager.ExportImages(ctx, file, refs, imager.ExportConfig{
				OutputDir: opts.ImageDir,
				Parallel:  opts.Parallel,
			})
			if err != nil {
				return nil, fmt.Errorf("export images: %w", err)
			}
			for _, exportErr := range exported.Errors {
				opts.logWarn("%v", exportErr)
			}
			if len(exported.Errors) > 0 {
				opts.logError("%d of %d image(s) could not be exported", len(exported.Errors), len(refs))
			}
			opts.logInfo("Exported %d image(s)", len(exported.Assets))
			result.Assets = exported.Assets
		}
	}

	opts.logInfo("Assembling output document...")
	result.JSON, err = MarshalDocument(doc, opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("encode tokens: %w", err)
	}

	opts.logInfo("Generating stylesheet and markdown report...")
	result.CSS = formatter.ToCSS(tokens)
	result.Markdown = formatter.ToMarkdown(tokens, result.FileName, result.Assets)

	return result, nil
}

// Convert extracts the design tokens of an already decoded document and assembles the
// output document. Each call uses fresh token pools.
func Convert(doc *sketch.Document) (*extractor.Tokens, *token.Tree, error) {
	tokens, err := extractor.Extract(doc)
	if err != nil {
		return nil, nil, err
	}
	tree, err := extractor.Assemble(tokens)
	if err != nil {
		return nil, nil, err
	}
	return tokens, tree, nil
}

// MarshalDocument encodes the output document as indented JSON with a trailing newline.
// HTML characters in names are written as is.
func MarshalDocument(doc *token.Tree, indent string) ([]byte, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
