package commands

import (
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/pdftable/definition"
	"github.com/tsawler/pdftable/document"
	"github.com/tsawler/pdftable/model"
	"github.com/tsawler/pdftable/table"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <definition.yaml>",
		Short: "Print the tables of a definition as text",
		Long: `Print every table of a YAML definition to the terminal without
writing a PDF. Cells spanning several columns are shown in their first
column. Configuration problems are reported as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0])
		},
	}
	addDefinitionFlags(cmd)
	return cmd
}

func runPreview(cmd *cobra.Command, path string) error {
	log := GetLogger(cmd.Context())

	def, err := definition.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	docOpts, err := def.Document.DocumentOptions()
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}

	for i, spec := range def.Tables {
		doc, err := document.New(docOpts...)
		if err != nil {
			return fmt.Errorf("document: %w", err)
		}
		t := table.New(doc)
		if err := definition.Populate(t, spec, def.BaseDir); err != nil {
			return fmt.Errorf("table %s: %w", def.TableName(i), err)
		}
		if err := t.Err(); err != nil {
			log.Warn("table has invalid settings", zap.String("table", def.TableName(i)), zap.Error(err))
		}
		renderPreview(cmd.OutOrStdout(), def.TableName(i), t)
	}
	return nil
}

// renderPreview writes t as a box-drawn text table.
func renderPreview(w io.Writer, title string, t *table.Table) {
	rows := t.Rows()
	if len(rows) == 0 {
		_, _ = fmt.Fprintf(w, "%s: (0 rows)\n", title)
		return
	}

	pw := prettytable.NewWriter()
	pw.SetOutputMirror(w)
	pw.SetStyle(prettytable.StyleLight)
	pw.SetTitle(title)

	columns := 0
	for _, r := range rows {
		columns = max(columns, r.Span())
	}

	var configs []prettytable.ColumnConfig
	for _, r := range rows {
		line := make(prettytable.Row, columns)
		col := 0
		for _, c := range r.Cells() {
			label := c.Text()
			if img := c.Image(); img != nil && label == "" {
				label = "[" + img.Path + "]"
			}
			line[col] = label
			if !r.IsHeader() {
				configs = setAlign(configs, col, c.Align())
			}
			col += c.Colspan()
		}
		for ; col < columns; col++ {
			line[col] = ""
		}

		if r.IsHeader() {
			pw.AppendHeader(line)
		} else {
			pw.AppendRow(line)
		}
	}
	pw.SetColumnConfigs(configs)
	pw.Render()
}

// setAlign records the alignment of a column from its first body cell.
func setAlign(configs []prettytable.ColumnConfig, col int, align model.TextAlignment) []prettytable.ColumnConfig {
	for _, c := range configs {
		if c.Number == col+1 {
			return configs
		}
	}
	a := text.AlignLeft
	switch align {
	case model.AlignCenter:
		a = text.AlignCenter
	case model.AlignRight:
		a = text.AlignRight
	case model.AlignJustify:
		a = text.AlignJustify
	}
	return append(configs, prettytable.ColumnConfig{Number: col + 1, Align: a})
}
