package ui

import (
	"strings"

	"ftcscope/internal/model"
	"ftcscope/internal/tabsort"
)

const maxColWidth = 36

// visibleRows is the render pipeline for one table: row filter first, then
// the active sort.
func visibleRows(t model.Table, st tableState) []model.Row {
	return tabsort.Sort(st.eval.Apply(t.Rows), st.sort)
}

func (m *Model) renderTables() string {
	if len(m.tables) == 0 {
		return m.styles.Help.Render("No data loaded. Press [enter] to load the current view.")
	}
	blocks := make([]string, 0, len(m.tables))
	for i := range m.tables {
		blocks = append(blocks, m.renderTable(i, true))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderTable(idx int, styled bool) string {
	t := m.tables[idx]
	st := m.states[idx]
	rows := visibleRows(t, st)

	headers := make([]string, len(t.Columns))
	for c, col := range t.Columns {
		h := col
		if ind := st.sort.Indicator(col); ind != "" {
			h += " " + ind
		}
		headers[c] = h
	}

	// cell text per row/column, list cells as one line per entry
	cells := make([][][]string, len(rows))
	widths := make([]int, len(t.Columns))
	for c, h := range headers {
		widths[c] = len([]rune(h))
	}
	for r, row := range rows {
		cells[r] = make([][]string, len(t.Columns))
		for c, col := range t.Columns {
			lines := cellLines(row[col])
			cells[r][c] = lines
			for _, l := range lines {
				if n := len([]rune(l)); n > widths[c] {
					widths[c] = n
				}
			}
		}
	}
	for c := range widths {
		if widths[c] > maxColWidth {
			widths[c] = maxColWidth
		}
	}

	var b strings.Builder
	title := t.Title
	if styled {
		ts := m.styles.TableTitle
		if idx == m.tableIdx && len(m.tables) > 1 {
			ts = m.styles.TableFocus
			title = "» " + title
		}
		b.WriteString(ts.Render(title))
	} else {
		b.WriteString(title)
	}
	b.WriteString("\n")

	for c, h := range headers {
		cell := pad(h, widths[c])
		if styled {
			hs := m.styles.Header
			if idx == m.tableIdx && c == st.colIdx {
				hs = m.styles.HeaderSel
			}
			cell = hs.Render(cell)
		}
		b.WriteString(cell)
		if c+1 < len(headers) {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, rowCells := range cells {
		height := 1
		for _, lines := range rowCells {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for l := 0; l < height; l++ {
			for c := range rowCells {
				s := ""
				if l < len(rowCells[c]) {
					s = rowCells[c][l]
				}
				b.WriteString(pad(s, widths[c]))
				if c+1 < len(rowCells) {
					b.WriteString("  ")
				}
			}
			b.WriteString("\n")
		}
	}
	if len(rows) == 0 {
		b.WriteString("(no rows)\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTablePlain renders the focused table without styling, for the
// clipboard.
func (m *Model) renderTablePlain(idx int) string {
	return m.renderTable(idx, false)
}

func cellLines(c model.Cell) []string {
	if c.IsList() {
		if len(c.Entries) == 0 {
			return []string{""}
		}
		lines := make([]string, len(c.Entries))
		for i, e := range c.Entries {
			lines[i] = e.Display()
		}
		return lines
	}
	return []string{c.Text}
}

func pad(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
