// Package definition loads YAML descriptions of PDF documents made of
// tables and builds them.
//
// A definition names the output file, the page setup and a list of
// tables. Each table carries explicit rows, an inline HTML fragment, or
// both (HTML rows are appended after the explicit ones):
//
//	output: prices.pdf
//	cache_dir: .cache
//	document:
//	  page_size: A4
//	  font: {family: Helvetica, size: 10}
//	tables:
//	  - name: prices
//	    width: 100
//	    width_percentage: true
//	    rows:
//	      - header: true
//	        cells: [{text: Item}, {text: Price, align: right}]
//	      - cells: [{text: Coffee}, {text: "3.50", align: right}]
//
// Settings are layered: built-in defaults, then the file, then PDFTABLE_
// environment variables (PDFTABLE_CACHE_DIR, PDFTABLE_DOCUMENT__PAGE_SIZE),
// then command-line flags.
package definition

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PDFTABLE_"

// Definition describes one output document
type Definition struct {
	Output   string       `koanf:"output"`
	CacheDir string       `koanf:"cache_dir"`
	ImageDPI float64      `koanf:"image_dpi"`
	Document DocumentSpec `koanf:"document"`
	Tables   []TableSpec  `koanf:"tables"`

	// BaseDir is the directory of the definition file. Relative image
	// paths are resolved against it.
	BaseDir string `koanf:"-"`
}

// DocumentSpec is the page setup
type DocumentSpec struct {
	PageSize    string      `koanf:"page_size"`
	Orientation string      `koanf:"orientation"`
	Unit        string      `koanf:"unit"`
	Margins     *MarginSpec `koanf:"margins"`
	Font        FontSpec    `koanf:"font"`
	Title       string      `koanf:"title"`
	Author      string      `koanf:"author"`
	Compress    bool        `koanf:"compress"`
}

// MarginSpec holds page margins in user units
type MarginSpec struct {
	Top    float64 `koanf:"top"`
	Right  float64 `koanf:"right"`
	Bottom float64 `koanf:"bottom"`
	Left   float64 `koanf:"left"`
}

// FontSpec is the document's starting font
type FontSpec struct {
	Family string  `koanf:"family"`
	Style  string  `koanf:"style"`
	Size   float64 `koanf:"size"`
}

// TableSpec describes one table. Unset pointer fields keep the values the
// table takes from the document.
type TableSpec struct {
	Name            string    `koanf:"name"`
	Width           *float64  `koanf:"width"`
	WidthPercentage bool      `koanf:"width_percentage"`
	FontFamily      string    `koanf:"font_family"`
	FontSize        *float64  `koanf:"font_size"`
	FontWeight      string    `koanf:"font_weight"`
	LineHeight      *float64  `koanf:"line_height"`
	BorderWidth     *float64  `koanf:"border_width"`
	SpaceAfter      float64   `koanf:"space_after"`
	HTML            string    `koanf:"html"`
	Rows            []RowSpec `koanf:"rows"`
}

// RowSpec describes one row
type RowSpec struct {
	Header      bool       `koanf:"header"`
	Background  string     `koanf:"background"`
	MinHeight   *float64   `koanf:"min_height"`
	FontFamily  string     `koanf:"font_family"`
	FontSize    *float64   `koanf:"font_size"`
	FontWeight  string     `koanf:"font_weight"`
	LineHeight  *float64   `koanf:"line_height"`
	BorderWidth *float64   `koanf:"border_width"`
	Cells       []CellSpec `koanf:"cells"`
}

// CellSpec describes one cell
type CellSpec struct {
	Text          string     `koanf:"text"`
	Image         *ImageSpec `koanf:"image"`
	Colspan       int        `koanf:"colspan"`
	Width         *float64   `koanf:"width"`
	Align         string     `koanf:"align"`
	VerticalAlign string     `koanf:"valign"`
	Padding       *float64   `koanf:"padding"`
	MinHeight     *float64   `koanf:"min_height"`
	Border        string     `koanf:"border"`
	BorderWidth   *float64   `koanf:"border_width"`
	FontFamily    string     `koanf:"font_family"`
	FontSize      *float64   `koanf:"font_size"`
	FontWeight    string     `koanf:"font_weight"`
	LineHeight    *float64   `koanf:"line_height"`
	TextColor     string     `koanf:"text_color"`
	Background    string     `koanf:"background"`
}

// ImageSpec places an image in a cell. Sizes are in user units; one of
// them may be left out to keep the aspect ratio.
type ImageSpec struct {
	Path   string  `koanf:"path"`
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
}

// flagKeys maps command-line flags to definition keys
var flagKeys = map[string]string{
	"output":      "output",
	"cache-dir":   "cache_dir",
	"image-dpi":   "image_dpi",
	"page-size":   "document.page_size",
	"orientation": "document.orientation",
	"unit":        "document.unit",
}

// pathFlags are flags whose values are relative to the working directory
// rather than to the definition file.
var pathFlags = map[string]bool{"output": true, "cache-dir": true}

func defaults() map[string]any {
	return map[string]any{
		"image_dpi":            150,
		"document.page_size":   "A4",
		"document.orientation": "P",
		"document.unit":        "mm",
		"document.font.family": "Helvetica",
		"document.font.size":   10,
		"document.compress":    true,
	}
}

// Load reads the definition at path. flags may be nil; only flags that
// were set on the command line override the file and the environment.
// An empty output defaults to the definition's name with a .pdf extension.
func Load(path string, flags *pflag.FlagSet) (*Definition, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading definition %s: %w", path, err)
	}

	// PDFTABLE_DOCUMENT__PAGE_SIZE -> document.page_size
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var def Definition
	if err := k.Unmarshal("", &def); err != nil {
		return nil, fmt.Errorf("unable to decode definition: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	def.BaseDir = filepath.Dir(abs)

	if def.Output == "" {
		def.Output = strings.TrimSuffix(abs, filepath.Ext(abs)) + ".pdf"
	}
	if !flagChanged(flags, "output") {
		def.Output = resolvePathRelativeTo(def.Output, def.BaseDir)
	}
	if !flagChanged(flags, "cache-dir") {
		def.CacheDir = resolvePathRelativeTo(def.CacheDir, def.BaseDir)
	}
	return &def, nil
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	return flags != nil && pathFlags[name] && flags.Changed(name)
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// TableName returns the name used for table i in messages
func (d *Definition) TableName(i int) string {
	if name := d.Tables[i].Name; name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i+1)
}
