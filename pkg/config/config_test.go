package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch-tokens.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load() = %#v, want defaults", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
input: designs/app.sketch
css: build/tokens.css
images:
  export: true
  parallel: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got, want := cfg.Input, "designs/app.sketch"; got != want {
		t.Errorf("Input = %q, want %q", got, want)
	}
	if got, want := cfg.CSS, "build/tokens.css"; got != want {
		t.Errorf("CSS = %q, want %q", got, want)
	}
	if got, want := cfg.Output, "design-tokens.json"; got != want {
		t.Errorf("Output = %q, want default %q", got, want)
	}
	if !cfg.Images.Export || cfg.Images.Parallel != 2 || cfg.Images.Dir != "design-assets" {
		t.Errorf("images not merged correctly: %#v", cfg.Images)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "input: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected a parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvInput, "from-env.sketch")
	t.Setenv(EnvOutput, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := cfg.Input, "from-env.sketch"; got != want {
		t.Errorf("Input = %q, want %q", got, want)
	}
	if got, want := cfg.Output, Defaults().Output; got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "empty paths",
			mutate:  func(c *Config) { c.Input = " "; c.Output = "" },
			wantErr: []string{"input must not be empty", "output must not be empty"},
		},
		{
			name:    "indent with text",
			mutate:  func(c *Config) { c.Indent = "--" },
			wantErr: []string{"indent"},
		},
		{
			name:   "image settings ignored when not exporting",
			mutate: func(c *Config) { c.Images.Parallel = 0 },
		},
		{
			name:    "image settings checked when exporting",
			mutate:  func(c *Config) { c.Images = ImagesConfig{Export: true, Parallel: 0} },
			wantErr: []string{"images.dir", "images.parallel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected an error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() error %q does not mention %q", err, want)
				}
			}
		})
	}
}
