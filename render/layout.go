package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdftable/table"
)

// placedCell is a cell positioned on the column grid
type placedCell struct {
	cell *table.Cell
	col  int
	span int
}

// gridRow is a table row with its cells placed on the grid
type gridRow struct {
	row   *table.Row
	cells []placedCell
}

// buildGrid places every cell on the column grid. The number of columns
// is the widest row's total colspan; shorter rows leave trailing columns
// empty.
func buildGrid(rows []*table.Row) (grid []gridRow, columns int) {
	grid = make([]gridRow, 0, len(rows))
	for _, r := range rows {
		gr := gridRow{row: r}
		col := 0
		for _, c := range r.Cells() {
			gr.cells = append(gr.cells, placedCell{cell: c, col: col, span: c.Colspan()})
			col += c.Colspan()
		}
		if col > columns {
			columns = col
		}
		grid = append(grid, gr)
	}
	return grid, columns
}

// headerCount returns the number of leading header rows
func headerCount(grid []gridRow) int {
	n := 0
	for _, gr := range grid {
		if !gr.row.IsHeader() {
			break
		}
		n++
	}
	return n
}

// measureFunc returns the width of a string in user units
type measureFunc func(s string) float64

// textLine is one wrapped line of cell text. last marks the final line of
// a paragraph, which is never stretched when justifying.
type textLine struct {
	text string
	last bool
}

// wrapText breaks text into lines no wider than maxWidth. Paragraphs are
// separated by "\n" and wrapped greedily at spaces; a word wider than
// maxWidth on its own is broken between runes.
func wrapText(text string, maxWidth float64, measure measureFunc) []textLine {
	var lines []textLine
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, textLine{last: true})
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measure(candidate) <= maxWidth+epsilon {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, textLine{text: current})
				current = ""
			}
			if measure(word) <= maxWidth+epsilon {
				current = word
				continue
			}

			pieces := breakWord(word, maxWidth, measure)
			for _, p := range pieces[:len(pieces)-1] {
				lines = append(lines, textLine{text: p})
			}
			current = pieces[len(pieces)-1]
		}
		lines = append(lines, textLine{text: current, last: true})
	}
	return lines
}

// breakWord splits word into pieces no wider than maxWidth. Every piece
// holds at least one rune.
func breakWord(word string, maxWidth float64, measure measureFunc) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(word); {
		_, size := utf8.DecodeRuneInString(word[i:])
		if i > start && measure(word[start:i+size]) > maxWidth+epsilon {
			pieces = append(pieces, word[start:i])
			start = i
		}
		i += size
	}
	return append(pieces, word[start:])
}

// naturalWidth returns the width of the widest paragraph of text, unwrapped.
func naturalWidth(text string, measure measureFunc) float64 {
	w := 0.0
	for _, para := range strings.Split(text, "\n") {
		if pw := measure(strings.Join(strings.Fields(para), " ")); pw > w {
			w = pw
		}
	}
	return w
}

// distributeWidths assigns column widths. Pinned columns keep their width;
// the rest of total is shared among the other columns in proportion to
// their natural widths, or equally when those are all zero. When the
// remainder equals the natural total, unpinned columns get their natural
// width exactly. A negative remainder leaves unpinned columns at zero.
func distributeWidths(total float64, natural []float64, pinned []*float64) []float64 {
	widths := make([]float64, len(natural))
	remaining := total
	var free []int
	freeNatural := 0.0
	for i := range natural {
		if pinned[i] != nil {
			widths[i] = *pinned[i]
			remaining -= widths[i]
			continue
		}
		free = append(free, i)
		freeNatural += natural[i]
	}

	if len(free) == 0 || remaining <= 0 {
		return widths
	}
	if math.Abs(remaining-freeNatural) <= epsilon {
		for _, i := range free {
			widths[i] = natural[i]
		}
		return widths
	}
	for _, i := range free {
		if freeNatural > 0 {
			widths[i] = remaining * natural[i] / freeNatural
		} else {
			widths[i] = remaining / float64(len(free))
		}
	}
	return widths
}

// spanWidth returns the width of span columns starting at col
func spanWidth(widths []float64, col, span int) float64 {
	w := 0.0
	for i := col; i < col+span && i < len(widths); i++ {
		w += widths[i]
	}
	return w
}
