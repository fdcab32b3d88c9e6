package model

import "strings"

// Table is one render-ready result unit: a title, a fixed column order and
// rows of named cells. A response may normalize into several tables.
type Table struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row maps column name to cell. Columns absent from the map render empty.
type Row map[string]Cell

// Cell is either a scalar display string or an ordered list of sub-entries
// for multi-valued cells such as alliance rosters or award lists.
type Cell struct {
	Text    string  `json:"text,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

// Entry is one element of a multi-valued cell. Number/Name cover team-style
// entries; Sub holds a nested list (e.g. awards under an advancing event).
type Entry struct {
	Number string   `json:"number,omitempty"`
	Name   string   `json:"name,omitempty"`
	Sub    []string `json:"sub,omitempty"`
}

func Text(s string) Cell { return Cell{Text: s} }

func List(entries []Entry) Cell { return Cell{Entries: entries} }

func (c Cell) IsList() bool { return c.Entries != nil }

// String flattens the cell for sorting, filtering and export. List cells
// join their entry displays with "; ".
func (c Cell) String() string {
	if c.Entries == nil {
		return c.Text
	}
	parts := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		parts = append(parts, e.Display())
	}
	return strings.Join(parts, "; ")
}

// Display renders an entry the way the row cell shows it: "number - name"
// when both are present, otherwise whichever one is.
func (e Entry) Display() string {
	switch {
	case e.Number != "" && e.Name != "":
		return e.Number + " - " + e.Name
	case e.Number != "":
		return e.Number
	default:
		return e.Name
	}
}

// Get returns the flattened value of a column, "" when absent.
func (r Row) Get(column string) string {
	return r[column].String()
}
