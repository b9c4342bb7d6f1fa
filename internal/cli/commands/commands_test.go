package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const definitionYAML = `
document:
  unit: pt
tables:
  - name: prices
    rows:
      - header: true
        cells: [{text: Item}, {text: Price}]
      - cells: [{text: Coffee}, {text: "3.50", align: right}]
      - cells: [{text: Total, colspan: 2}]
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut string
	}{
		{"release", "0.1.0", "pdftable v0.1.0"},
		{"dev", "dev", "pdftable vdev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewVersionCommand(tt.version))
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output should contain %q, got: %s", tt.wantOut, out)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeDefinition(t, definitionYAML)
	out := filepath.Join(t.TempDir(), "nested", "prices.pdf")

	stdout, err := execute(t, NewRenderCommand(), path, "-o", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, out) {
		t.Errorf("expected the output path to be printed, got: %s", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected %s to be written: %v", out, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("expected a PDF header, got %q", data[:min(len(data), 16)])
	}
}

func TestRenderCommandDefaultOutput(t *testing.T) {
	path := writeDefinition(t, definitionYAML)

	if _, err := execute(t, NewRenderCommand(), path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(path, ".yaml") + ".pdf"); err != nil {
		t.Errorf("expected a PDF next to the definition: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	if _, err := execute(t, NewRenderCommand()); err == nil {
		t.Error("expected an error without a definition argument")
	}

	path := writeDefinition(t, "tables:\n  - name: broken\n    font_size: 0\n    rows: [{cells: [{text: x}]}]\n")
	_, err := execute(t, NewRenderCommand(), path, "-o", filepath.Join(t.TempDir(), "x.pdf"))
	if err == nil || !strings.Contains(err.Error(), "table broken") {
		t.Errorf("expected an error naming the table, got %v", err)
	}
}

func TestPreviewCommand(t *testing.T) {
	path := writeDefinition(t, definitionYAML)

	out, err := execute(t, NewPreviewCommand(), path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"prices", "ITEM", "Coffee", "3.50", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestPreviewEmptyTable(t *testing.T) {
	path := writeDefinition(t, "tables:\n  - name: empty\n")

	out, err := execute(t, NewPreviewCommand(), path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "empty: (0 rows)") {
		t.Errorf("expected an empty marker, got: %s", out)
	}
}
