package render

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/pdftable/table"
)

// runeWidth measures one unit per rune
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []textLine
	}{
		{
			name:  "fits",
			text:  "aa bb",
			width: 10,
			want:  []textLine{{text: "aa bb", last: true}},
		},
		{
			name:  "wraps at spaces",
			text:  "aa bb cc",
			width: 5,
			want:  []textLine{{text: "aa bb"}, {text: "cc", last: true}},
		},
		{
			name:  "paragraphs",
			text:  "a\n\nb",
			width: 5,
			want:  []textLine{{text: "a", last: true}, {last: true}, {text: "b", last: true}},
		},
		{
			name:  "collapses spaces",
			text:  "  a   b  ",
			width: 5,
			want:  []textLine{{text: "a b", last: true}},
		},
		{
			name:  "breaks long words",
			text:  "abcdefg xy",
			width: 3,
			want: []textLine{
				{text: "abc"},
				{text: "def"},
				{text: "g"},
				{text: "xy", last: true},
			},
		},
		{
			name:  "empty",
			text:  "",
			width: 5,
			want:  []textLine{{last: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width, runeWidth)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(textLine{})); diff != "" {
				t.Errorf("wrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBreakWordMultibyte(t *testing.T) {
	got := breakWord("ééé", 2, runeWidth)
	if diff := cmp.Diff([]string{"éé", "é"}, got); diff != "" {
		t.Errorf("breakWord mismatch (-want +got):\n%s", diff)
	}

	// Narrower than one rune still makes progress.
	got = breakWord("ab", 0, runeWidth)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("breakWord mismatch (-want +got):\n%s", diff)
	}
}

func TestNaturalWidth(t *testing.T) {
	if got := naturalWidth("ab  c\nabcdef", runeWidth); got != 6 {
		t.Errorf("expected widest paragraph 6, got %v", got)
	}
	if got := naturalWidth("ab  c", runeWidth); got != 4 {
		t.Errorf("expected collapsed width 4, got %v", got)
	}
}

func TestDistributeWidths(t *testing.T) {
	pin := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		total   float64
		natural []float64
		pinned  []*float64
		want    []float64
	}{
		{"proportional", 100, []float64{10, 30}, []*float64{nil, nil}, []float64{25, 75}},
		{"pinned", 100, []float64{10, 30}, []*float64{pin(20), nil}, []float64{20, 80}},
		{"all zero", 90, []float64{0, 0, 0}, []*float64{nil, nil, nil}, []float64{30, 30, 30}},
		{"overcommitted", 10, []float64{5, 5}, []*float64{pin(40), nil}, []float64{40, 0}},
		{"all pinned", 100, []float64{5, 5}, []*float64{pin(10), pin(20)}, []float64{10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distributeWidths(tt.total, tt.natural, tt.pinned)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("distributeWidths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistributeWidthsKeepsNaturalWhenContentSized(t *testing.T) {
	natural := []float64{0.1 + 0.2, 1.0 / 3, 7.7}
	total := natural[0] + natural[1] + natural[2]

	got := distributeWidths(total, natural, []*float64{nil, nil, nil})
	if diff := cmp.Diff(natural, got); diff != "" {
		t.Errorf("expected natural widths (-want +got):\n%s", diff)
	}
}

// Column widths computed from natural widths must never wrap the text they
// were measured from.
func TestWrapTextFitsDistributedWidth(t *testing.T) {
	measure := func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * 5.559 / 3
	}
	const padding = 2.835

	texts := []string{"r10", "r13", "r29", "Coffee", "3.50", "from html", "Item"}
	natural := make([]float64, len(texts))
	pinned := make([]*float64, len(texts))
	total := 0.0
	for i, text := range texts {
		natural[i] = naturalWidth(text, measure) + 2*padding
		total += natural[i]
	}

	widths := distributeWidths(total, natural, pinned)
	for i, text := range texts {
		lines := wrapText(text, widths[i]-2*padding, measure)
		want := []textLine{{text: text, last: true}}
		if diff := cmp.Diff(want, lines, cmp.AllowUnexported(textLine{})); diff != "" {
			t.Errorf("%q wrapped in its own column (-want +got):\n%s", text, diff)
		}
	}
}

func TestWrapTextToleratesRounding(t *testing.T) {
	width := 0.1 + 0.2 // 0.30000000000000004
	measure := func(string) float64 { return width }

	lines := wrapText("r10", width-1e-15, measure)
	if len(lines) != 1 || lines[0].text != "r10" {
		t.Errorf("expected r10 on one line, got %+v", lines)
	}
	if got := breakWord("r10", width-1e-15, measure); len(got) != 1 {
		t.Errorf("expected breakWord to keep r10 whole, got %v", got)
	}
}

func TestSpanWidth(t *testing.T) {
	widths := []float64{10, 20, 30}
	if got := spanWidth(widths, 1, 2); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
	if got := spanWidth(widths, 2, 5); got != 30 {
		t.Errorf("expected span clipped to 30, got %v", got)
	}
	if got := spanWidth(widths, 0, 0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestBuildGrid(t *testing.T) {
	tbl := table.New(newDoc(t))
	tbl.NewRow().SetHeader(true).NewCell("h").SetColspan(3)
	r := tbl.NewRow()
	r.NewCell("a")
	r.NewCell("b").SetColspan(2)
	r.NewCell("c")
	tbl.NewRow().SetHeader(true).NewCell("late header")

	grid, columns := buildGrid(tbl.Rows())
	if columns != 4 {
		t.Errorf("expected 4 columns, got %d", columns)
	}

	var got [][2]int
	for _, pc := range grid[1].cells {
		got = append(got, [2]int{pc.col, pc.span})
	}
	if diff := cmp.Diff([][2]int{{0, 1}, {1, 2}, {3, 1}}, got); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}

	if n := headerCount(grid); n != 1 {
		t.Errorf("expected 1 leading header row, got %d", n)
	}
}
