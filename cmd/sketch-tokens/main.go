package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	sketchtokens "github.com/hellenic-development/sketch-tokens"
	"github.com/hellenic-development/sketch-tokens/pkg/config"
	"github.com/hellenic-development/sketch-tokens/pkg/extractor"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = sketchtokens.Version

var (
	configFile   string
	inputFile    string
	outputFile   string
	cssFile      string
	reportFile   string
	exportImages bool
	imageDir     string
	parallel     int
)

func main() {
	os.Exit(execute())
}

// execute runs the root command and returns the process exit code. The signal context is
// released before main exits.
func execute() int {
	rootCmd := &cobra.Command{
		Use:           "sketch-tokens",
		Short:         "Convert Sketch shared styles into design tokens",
		Long:          "A tool to convert the color variables, layer styles and text styles of a Sketch file into deduplicated, cross-referenced design tokens",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML configuration file (optional)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", config.DefaultInput, "Sketch file to convert")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "design-tokens.json", "Output JSON file")
	rootCmd.Flags().StringVar(&cssFile, "css", "", "Also write a CSS stylesheet to this file")
	rootCmd.Flags().StringVar(&reportFile, "report", "", "Also write a markdown report to this file")
	rootCmd.Flags().BoolVar(&exportImages, "export-images", false, "Export images used by image fills")
	rootCmd.Flags().StringVar(&imageDir, "image-dir", "design-assets", "Output directory for exported images")
	rootCmd.Flags().IntVar(&parallel, "parallel", 5, "Maximum concurrent image exports")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sketch-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputFile
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("css") {
		cfg.CSS = cssFile
	}
	if flags.Changed("report") {
		cfg.Report = reportFile
	}
	if flags.Changed("export-images") {
		cfg.Images.Export = exportImages
	}
	if flags.Changed("image-dir") {
		cfg.Images.Dir = imageDir
	}
	if flags.Changed("parallel") {
		cfg.Images.Parallel = parallel
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Println("\n🎨 Sketch Design Tokens")
	cyan.Println("=======================")
	cyan.Println()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := sketchtokens.Options{
		Input:        cfg.Input,
		Indent:       cfg.Indent,
		ExportImages: cfg.Images.Export,
		ImageDir:     cfg.Images.Dir,
		Parallel:     cfg.Images.Parallel,
		Logger:       &cliLogger{},
	}

	result, err := sketchtokens.Run(cmd.Context(), opts)
	if errors.Is(err, extractor.ErrNoColorVariables) {
		yellow.Printf("⚠ %s has no color variables, nothing to convert\n\n", cfg.Input)
		return nil
	}
	if err != nil {
		return err
	}

	// Display extracted stats.
	tokens := result.Tokens
	cyan.Println("\n📊 Extraction Summary:")
	fmt.Printf("  • Colors: %d (%d duplicate, %d conflicting swatch(es) skipped)\n",
		tokens.Colors.Len(), len(tokens.Duplicates), len(tokens.Conflicts))
	fmt.Printf("  • Gradients: %d\n", tokens.Gradients.Len())
	fmt.Printf("  • Shadows: %d outer, %d inner\n", tokens.Shadows.Len(), tokens.InnerShadows.Len())
	fmt.Printf("  • Fonts: %d families, %d sizes\n", tokens.Fonts.Len(), tokens.FontSizes.Len())
	fmt.Printf("  • Text Alignments: %d\n", tokens.TextAlignments.Len())
	if len(result.Assets) > 0 {
		fmt.Printf("  • Exported Assets: %d\n", len(result.Assets))
	}

	outputs := []struct {
		path string
		data []byte
	}{
		{cfg.Output, result.JSON},
		{cfg.CSS, []byte(result.CSS)},
		{cfg.Report, []byte(result.Markdown)},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeOutput(green, red, out.path, out.data); err != nil {
			return err
		}
	}

	green.Printf("\n✨ Successfully extracted design tokens to %s\n\n", cfg.Output)
	return nil
}

// writeOutput writes one output file. A write failure aborts the run.
func writeOutput(green, red *color.Color, path string, data []byte) error {
	green.Printf("\n💾 Writing to %s... ", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		red.Printf("✗\n")
		return err
	}
	green.Println("✓")
	return nil
}

// cliLogger implements sketchtokens.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
