package definition

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/tsawler/pdftable/table"
)

const reportYAML = `
output: out/report.pdf
document:
  page_size: letter
  unit: pt
  compress: false
  title: Report
tables:
  - name: prices
    width: 80
    width_percentage: true
    rows:
      - header: true
        background: "#dddddd"
        cells:
          - text: Item
            font_weight: bold
          - text: Price
            align: right
      - cells:
          - text: Coffee
          - text: "3.50"
            align: right
            border: LR
  - html: |
      <table><tr><td>from html</td></tr></table>
    space_after: 5
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDefinition(t, "report.yaml", reportYAML)

	def, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	dir := filepath.Dir(path)
	if def.BaseDir != dir {
		t.Errorf("expected base dir %q, got %q", dir, def.BaseDir)
	}
	if want := filepath.Join(dir, "out", "report.pdf"); def.Output != want {
		t.Errorf("expected output %q, got %q", want, def.Output)
	}
	if def.CacheDir != "" {
		t.Errorf("expected no cache dir, got %q", def.CacheDir)
	}
	if def.ImageDPI != 150 {
		t.Errorf("expected default dpi 150, got %v", def.ImageDPI)
	}

	doc := def.Document
	if doc.PageSize != "letter" || doc.Unit != "pt" || doc.Orientation != "P" {
		t.Errorf("unexpected page setup: %+v", doc)
	}
	if doc.Compress {
		t.Error("expected compression to be turned off by the file")
	}
	if doc.Font.Family != "Helvetica" || doc.Font.Size != 10 {
		t.Errorf("expected default font Helvetica 10, got %+v", doc.Font)
	}

	if len(def.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(def.Tables))
	}
	prices := def.Tables[0]
	if prices.Width == nil || *prices.Width != 80 || !prices.WidthPercentage {
		t.Errorf("expected width 80%%, got %v %v", prices.Width, prices.WidthPercentage)
	}
	if len(prices.Rows) != 2 || len(prices.Rows[1].Cells) != 2 {
		t.Fatalf("unexpected rows: %+v", prices.Rows)
	}
	if got := prices.Rows[1].Cells[1].Border; got != "LR" {
		t.Errorf("expected border LR, got %q", got)
	}
	if def.TableName(0) != "prices" || def.TableName(1) != "#2" {
		t.Errorf("unexpected table names %q, %q", def.TableName(0), def.TableName(1))
	}
}

func TestLoadDefaultOutput(t *testing.T) {
	path := writeDefinition(t, "invoice.yml", "tables: []\n")

	def, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(filepath.Dir(path), "invoice.pdf"); def.Output != want {
		t.Errorf("expected output %q, got %q", want, def.Output)
	}
}

func TestLoadLayering(t *testing.T) {
	path := writeDefinition(t, "report.yaml", reportYAML)
	t.Setenv("PDFTABLE_DOCUMENT__PAGE_SIZE", "legal")
	t.Setenv("PDFTABLE_CACHE_DIR", "cache")
	t.Setenv("PDFTABLE_IMAGE_DPI", "300")

	flags := pflag.NewFlagSet("render", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.String("page-size", "", "")
	flags.Bool("verbose", false, "")
	if err := flags.Parse([]string{"-o", "flag.pdf", "--verbose"}); err != nil {
		t.Fatal(err)
	}

	def, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if def.Output != "flag.pdf" {
		t.Errorf("expected the flag to win and stay relative, got %q", def.Output)
	}
	if def.Document.PageSize != "legal" {
		t.Errorf("expected env page size, got %q", def.Document.PageSize)
	}
	if want := filepath.Join(filepath.Dir(path), "cache"); def.CacheDir != want {
		t.Errorf("expected cache dir %q, got %q", want, def.CacheDir)
	}
	if def.ImageDPI != 300 {
		t.Errorf("expected env dpi 300, got %v", def.ImageDPI)
	}

	if err := flags.Parse([]string{"--page-size", "a5"}); err != nil {
		t.Fatal(err)
	}
	def, err = Load(path, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if def.Document.PageSize != "a5" {
		t.Errorf("expected flag page size, got %q", def.Document.PageSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("expected error for a missing definition")
	}
}

func TestBuild(t *testing.T) {
	def, err := Load(writeDefinition(t, "report.yaml", reportYAML), nil)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := Build(def)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if doc.PageNo() != 1 {
		t.Errorf("expected 1 page, got %d", doc.PageNo())
	}
	if doc.PageWidth() != 612 {
		t.Errorf("expected a Letter page in points, got width %v", doc.PageWidth())
	}

	content, err := doc.PageContent(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(Item) Tj", "(3.50) Tj", "(from html) Tj"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in page content", want)
		}
	}
}

func TestBuildImage(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "dot.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	path := filepath.Join(dir, "images.yaml")
	src := `
cache_dir: cache
tables:
  - rows:
      - cells:
          - image: {path: dot.png, width: 10}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(def); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("expected the image cache to be created: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 cached image, got %d", len(entries))
	}
}

func TestBuildErrorsNameTable(t *testing.T) {
	tests := []struct {
		name    string
		tables  string
		want    string
		invalid bool
	}{
		{
			name:    "font size",
			tables:  "  - name: totals\n    font_size: -1\n    rows: [{cells: [{text: x}]}]\n",
			want:    "table totals",
			invalid: true,
		},
		{
			name:   "font weight",
			tables: "  - font_weight: heavy\n",
			want:   "table #1",
		},
		{
			name:   "alignment",
			tables: "  - rows: [{cells: [{text: x, align: sideways}]}]\n",
			want:   "table #1: row 1: cell 1",
		},
		{
			name:   "color",
			tables: "  - rows: [{background: nope, cells: [{text: x}]}]\n",
			want:   "table #1: row 1",
		},
		{
			name:   "html",
			tables: "  - html: <p>no table</p>\n",
			want:   "table #1: html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Load(writeDefinition(t, "bad.yaml", "tables:\n"+tt.tables), nil)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			_, err = Build(def)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
			if tt.invalid && !errors.Is(err, table.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestBuildBadDocument(t *testing.T) {
	def, err := Load(writeDefinition(t, "bad.yaml", "document:\n  page_size: tabloid\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(def); err == nil || !strings.Contains(err.Error(), "document") {
		t.Errorf("expected a document error, got %v", err)
	}
}
