package imager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
	"github.com/hellenic-development/sketch-tokens/pkg/token"
)

// AssetSource opens images embedded in a design file. *sketch.File implements it.
type AssetSource interface {
	OpenAsset(ref string) (io.ReadCloser, error)
}

// ExportConfig holds configuration for image export.
type ExportConfig struct {
	OutputDir string // local directory, default "design-assets"
	Parallel  int    // maximum concurrent copies, default 5
}

// ExportedAsset represents a single exported image asset.
type ExportedAsset struct {
	Ref       string // archive reference, e.g. "images/abc.png"
	StyleName string // first layer style using the image
	FileName  string
	Format    string
}

// ExportResult holds the results of an image export operation.
type ExportResult struct {
	Assets []ExportedAsset
	Errors []error // non-fatal per-image copy failures
}

const (
	defaultOutputDir   = "design-assets"
	maxParallelExports = 5
	defaultImageFormat = "png"
)

// CollectImageRefs returns a map of image reference -> layer style name for every
// enabled image fill. A reference used by several styles is attributed to the first
// style in name order.
func CollectImageRefs(doc *sketch.Document) map[string]string {
	refs := make(map[string]string)
	for _, style := range doc.SortedLayerStyles() {
		for _, fill := range style.Value.Fills {
			if !fill.IsEnabled || fill.FillType != sketch.FillTypePattern || fill.Image == nil || fill.Image.Ref == "" {
				continue
			}
			if _, ok := refs[fill.Image.Ref]; !ok {
				refs[fill.Image.Ref] = style.Name
			}
		}
	}
	return refs
}

// ExportImages copies every referenced image out of src into config.OutputDir.
// File names are derived from the owning style name and assigned up front in reference
// order, so the result does not depend on scheduling. Per-image failures are collected in
// ExportResult.Errors; only a directory failure or a cancelled context aborts the export.
func ExportImages(ctx context.Context, src AssetSource, refs map[string]string, config ExportConfig) (*ExportResult, error) {
	if config.OutputDir == "" {
		config.OutputDir = defaultOutputDir
	}
	if config.Parallel <= 0 {
		config.Parallel = maxParallelExports
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", config.OutputDir, err)
	}

	keys := make([]string, 0, len(refs))
	for ref := range refs {
		keys = append(keys, ref)
	}
	slices.Sort(keys)

	usedNames := make(map[string]int) // track filename collisions
	assets := make([]ExportedAsset, 0, len(keys))
	for _, ref := range keys {
		format := detectExtension(ref)
		fileName := buildFileName(refs[ref], ref, format)

		if count, exists := usedNames[fileName]; exists {
			ext := filepath.Ext(fileName)
			base := strings.TrimSuffix(fileName, ext)
			usedNames[fileName] = count + 1
			fileName = fmt.Sprintf("%s-%d%s", base, count+1, ext)
		} else {
			usedNames[fileName] = 1
		}

		assets = append(assets, ExportedAsset{
			Ref:       ref,
			StyleName: refs[ref],
			FileName:  fileName,
			Format:    format,
		})
	}

	var (
		mu     sync.Mutex
		copied = make([]bool, len(assets))
		result = &ExportResult{}
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Parallel)

	for i, asset := range assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			destPath := filepath.Join(config.OutputDir, asset.FileName)
			if err := copyAsset(src, asset.Ref, destPath); err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("failed to export %s: %w", asset.Ref, err))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			copied[i] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, asset := range assets {
		if copied[i] {
			result.Assets = append(result.Assets, asset)
		}
	}
	slices.SortFunc(result.Errors, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })

	return result, nil
}

// copyAsset streams one archive entry to destPath.
func copyAsset(src AssetSource, ref, destPath string) error {
	rc, err := src.OpenAsset(ref)
	if err != nil {
		return err
	}
	defer rc.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", destPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return fmt.Errorf("failed to write file %q: %w", destPath, err)
	}

	return nil
}

// detectExtension returns the lowercase extension of an archive reference,
// defaulting to png.
func detectExtension(ref string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(ref)), ".")
	if ext == "" {
		return defaultImageFormat
	}
	return ext
}

// buildFileName creates a sanitized filename from a style name.
// Falls back to the reference's base name if the style name is empty.
func buildFileName(styleName, ref, format string) string {
	name := toKebabCase(strings.ReplaceAll(styleName, token.PathSeparator, "-"))
	if name == "" {
		name = toKebabCase(strings.TrimSuffix(path.Base(ref), path.Ext(ref)))
	}
	if name == "" {
		name = "asset"
	}

	return fmt.Sprintf("%s.%s", name, format)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
