package tabsort

import (
	"testing"

	"ftcscope/internal/model"
)

func rowsOf(column string, values ...string) []model.Row {
	out := make([]model.Row, 0, len(values))
	for _, v := range values {
		out = append(out, model.Row{column: model.Text(v), "id": model.Text(v)})
	}
	return out
}

func columnOf(rows []model.Row, column string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Get(column))
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestToggleCycle(t *testing.T) {
	var s State
	s.Toggle("A")
	if s.Column != "A" || s.Direction != Descending {
		t.Fatalf("first toggle: %+v", s)
	}
	s.Toggle("A")
	if s.Direction != Ascending {
		t.Fatalf("second toggle: %+v", s)
	}
	s.Toggle("B")
	if s.Column != "B" || s.Direction != Descending {
		t.Fatalf("new column resets to descending: %+v", s)
	}
}

func TestSortInactiveKeepsOriginalOrder(t *testing.T) {
	rows := rowsOf("A", "3", "1", "2")
	got := Sort(rows, State{})
	if !equal(columnOf(got, "A"), []string{"3", "1", "2"}) {
		t.Fatalf("got %v", columnOf(got, "A"))
	}
}

func TestSortNumeric(t *testing.T) {
	rows := rowsOf("A", "10", "9", "2")
	got := Sort(rows, State{Column: "A", Direction: Ascending})
	if !equal(columnOf(got, "A"), []string{"2", "9", "10"}) {
		t.Fatalf("ascending: %v", columnOf(got, "A"))
	}
	got = Sort(rows, State{Column: "A", Direction: Descending})
	if !equal(columnOf(got, "A"), []string{"10", "9", "2"}) {
		t.Fatalf("descending: %v", columnOf(got, "A"))
	}
}

func TestSortNumericAwareStrings(t *testing.T) {
	rows := rowsOf("A", "Q10", "q2", "Q1")
	got := Sort(rows, State{Column: "A", Direction: Ascending})
	if !equal(columnOf(got, "A"), []string{"Q1", "q2", "Q10"}) {
		t.Fatalf("got %v", columnOf(got, "A"))
	}
}

func TestSortCaseInsensitive(t *testing.T) {
	rows := rowsOf("A", "banana", "Apple", "cherry")
	got := Sort(rows, State{Column: "A", Direction: Ascending})
	if !equal(columnOf(got, "A"), []string{"Apple", "banana", "cherry"}) {
		t.Fatalf("got %v", columnOf(got, "A"))
	}
}

func TestSortStableForEqualKeys(t *testing.T) {
	rows := []model.Row{
		{"A": model.Text("5"), "id": model.Text("first")},
		{"A": model.Text("5"), "id": model.Text("second")},
		{"A": model.Text("1"), "id": model.Text("third")},
	}
	for _, dir := range []Direction{Ascending, Descending} {
		got := Sort(rows, State{Column: "A", Direction: dir})
		for i, r := range got {
			if r.Get("A") == "5" {
				if r.Get("id") != "first" {
					t.Fatalf("dir %v: equal keys reordered at %d", dir, i)
				}
				break
			}
		}
	}
}

func TestSortAbsentCellsCompareAsEmpty(t *testing.T) {
	rows := []model.Row{
		{"A": model.Text("x")},
		{},
		{"A": model.Text("a")},
	}
	got := Sort(rows, State{Column: "A", Direction: Ascending})
	if got[0].Get("A") != "" {
		t.Fatalf("empty should sort first ascending, got %q", got[0].Get("A"))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := rowsOf("A", "2", "1")
	_ = Sort(rows, State{Column: "A", Direction: Ascending})
	if !equal(columnOf(rows, "A"), []string{"2", "1"}) {
		t.Fatalf("input mutated: %v", columnOf(rows, "A"))
	}
}

func TestSortListCellsCompareFlattened(t *testing.T) {
	rows := []model.Row{
		{"A": model.List([]model.Entry{{Number: "99", Name: "Zed"}})},
		{"A": model.List([]model.Entry{{Number: "1", Name: "Ace"}})},
	}
	got := Sort(rows, State{Column: "A", Direction: Ascending})
	if got[0].Get("A") != "1 - Ace" {
		t.Fatalf("got %q", got[0].Get("A"))
	}
}
