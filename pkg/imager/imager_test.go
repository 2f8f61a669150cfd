package imager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hellenic-development/sketch-tokens/pkg/sketch"
)

type fakeSource map[string]string

func (s fakeSource) OpenAsset(ref string) (io.ReadCloser, error) {
	content, ok := s[ref]
	if !ok {
		return nil, fmt.Errorf("asset %q not found in archive", ref)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func imageFill(ref string) sketch.Fill {
	return sketch.Fill{
		IsEnabled: true,
		FillType:  sketch.FillTypePattern,
		Image:     &sketch.FileReference{Ref: ref},
	}
}

func TestCollectImageRefs(t *testing.T) {
	tests := []struct {
		name   string
		styles []sketch.SharedStyle
		want   map[string]string
	}{
		{
			name: "no image fills",
			styles: []sketch.SharedStyle{
				{Name: "Card", Value: sketch.Style{Fills: []sketch.Fill{
					{IsEnabled: true, FillType: sketch.FillTypeColor, Color: &sketch.Color{Red: 1, Alpha: 1}},
				}}},
			},
			want: map[string]string{},
		},
		{
			name: "single image fill",
			styles: []sketch.SharedStyle{
				{Name: "Hero/Background", Value: sketch.Style{Fills: []sketch.Fill{imageFill("images/abc123.png")}}},
			},
			want: map[string]string{"images/abc123.png": "Hero/Background"},
		},
		{
			name: "shared image attributed to first style by name",
			styles: []sketch.SharedStyle{
				{Name: "Photo 10", Value: sketch.Style{Fills: []sketch.Fill{imageFill("images/a.png")}}},
				{Name: "Photo 2", Value: sketch.Style{Fills: []sketch.Fill{imageFill("images/a.png"), imageFill("images/b.jpg")}}},
			},
			want: map[string]string{"images/a.png": "Photo 2", "images/b.jpg": "Photo 2"},
		},
		{
			name: "disabled and empty references are skipped",
			styles: []sketch.SharedStyle{
				{Name: "Broken", Value: sketch.Style{Fills: []sketch.Fill{
					{FillType: sketch.FillTypePattern, Image: &sketch.FileReference{Ref: "images/off.png"}},
					imageFill(""),
					{IsEnabled: true, FillType: sketch.FillTypePattern},
				}}},
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &sketch.Document{LayerStyles: &sketch.SharedObjects[sketch.SharedStyle]{Objects: tt.styles}}
			got := CollectImageRefs(doc)
			if len(got) != len(tt.want) {
				t.Fatalf("CollectImageRefs() returned %d refs, want %d: %v", len(got), len(tt.want), got)
			}
			for ref, name := range tt.want {
				if got[ref] != name {
					t.Errorf("CollectImageRefs()[%q] = %q, want %q", ref, got[ref], name)
				}
			}
		})
	}
}

func TestDetectExtension(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "png reference", ref: "images/abc123.png", want: "png"},
		{name: "uppercase jpg reference", ref: "images/photo.JPG", want: "jpg"},
		{name: "pdf reference", ref: "images/vector.pdf", want: "pdf"},
		{name: "reference without extension defaults to png", ref: "images/abc123", want: "png"},
		{name: "empty reference defaults to png", ref: "", want: "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectExtension(tt.ref)
			if got != tt.want {
				t.Errorf("detectExtension(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestBuildFileName(t *testing.T) {
	tests := []struct {
		name      string
		styleName string
		ref       string
		format    string
		want      string
	}{
		{name: "style path", styleName: "Hero/Background Image", ref: "images/a.png", format: "png", want: "hero-background-image.png"},
		{name: "falls back to reference", styleName: "", ref: "images/Abc_123.jpg", format: "jpg", want: "abc-123.jpg"},
		{name: "falls back to asset", styleName: "%%%", ref: "images/.png", format: "png", want: "asset.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFileName(tt.styleName, tt.ref, tt.format)
			if got != tt.want {
				t.Errorf("buildFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportImages(t *testing.T) {
	src := fakeSource{
		"images/a.png": "first",
		"images/b.png": "second",
		"images/c.jpg": "third",
	}
	refs := map[string]string{
		"images/a.png":       "Card",
		"images/b.png":       "Card",
		"images/c.jpg":       "Banner",
		"images/missing.png": "Ghost",
	}
	dir := filepath.Join(t.TempDir(), "assets")

	result, err := ExportImages(context.Background(), src, refs, ExportConfig{OutputDir: dir, Parallel: 2})
	if err != nil {
		t.Fatalf("ExportImages() error = %v", err)
	}

	wantFiles := map[string]string{
		"card.png":   "first",
		"card-2.png": "second",
		"banner.jpg": "third",
	}
	if len(result.Assets) != len(wantFiles) {
		t.Fatalf("ExportImages() exported %d assets, want %d", len(result.Assets), len(wantFiles))
	}
	for _, asset := range result.Assets {
		want, ok := wantFiles[asset.FileName]
		if !ok {
			t.Errorf("unexpected asset %q", asset.FileName)
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, asset.FileName))
		if err != nil {
			t.Fatalf("read %s: %v", asset.FileName, err)
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", asset.FileName, data, want)
		}
	}

	if len(result.Errors) != 1 {
		t.Fatalf("ExportImages() returned %d errors, want 1", len(result.Errors))
	}
	if !strings.Contains(result.Errors[0].Error(), "images/missing.png") {
		t.Errorf("error %q does not name the missing asset", result.Errors[0])
	}
}

func TestExportImagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExportImages(ctx, fakeSource{"images/a.png": "x"}, map[string]string{"images/a.png": "A"},
		ExportConfig{OutputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ExportImages() error = %v, want context.Canceled", err)
	}
}
