package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/pdftable/definition"
	"github.com/tsawler/pdftable/render"
)

// addDefinitionFlags registers the flags that override definition settings.
func addDefinitionFlags(cmd *cobra.Command) {
	cmd.Flags().String("page-size", "", "Page size (A3, A4, A5, Letter, Legal)")
	cmd.Flags().String("orientation", "", "Page orientation (portrait|landscape)")
	cmd.Flags().String("unit", "", "User unit (pt|mm|cm|in)")
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <definition.yaml>",
		Short: "Render a table definition to PDF",
		Long: `Render every table of a YAML definition into one PDF document.

Settings come from the definition file, then PDFTABLE_ environment
variables, then the flags below.`,
		Example: `  pdftable render report.yaml
  pdftable render report.yaml -o out/report.pdf --cache-dir .cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0])
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output PDF path (default: definition name with .pdf)")
	cmd.Flags().String("cache-dir", "", "Directory for resized image cache")
	cmd.Flags().Float64("image-dpi", 0, "Resolution images are resampled to")
	addDefinitionFlags(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, path string) error {
	log := GetLogger(cmd.Context())
	start := time.Now()

	def, err := definition.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	log.Debug("definition loaded",
		zap.String("path", path),
		zap.Int("tables", len(def.Tables)),
		zap.String("cache_dir", def.CacheDir))

	doc, err := definition.Build(def, render.WithLogger(log.Named("render")))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(def.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := doc.WriteFile(def.Output); err != nil {
		return fmt.Errorf("failed to write %s: %w", def.Output, err)
	}

	log.Info("document written",
		zap.String("output", def.Output),
		zap.Int("pages", doc.PageNo()),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), def.Output)
	return nil
}
