// Package filter applies an optional expression filter to normalized table
// rows, entirely client-side. Column names become expression variables;
// numeric-looking cells are exposed as numbers so comparisons like
// "Rank < 10 && Region == 'USCHS'" work as expected.
package filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"ftcscope/internal/model"
)

type Evaluator struct {
	expr *govaluate.EvaluableExpression
	// maps a sanitized variable name back to its column
	columns map[string]string
}

// identRE strips characters govaluate cannot carry in a bare identifier;
// column names like "Team Num" become the variable TeamNum.
var identRE = regexp.MustCompile(`[^A-Za-z0-9_]`)

func ident(column string) string {
	return identRE.ReplaceAllString(column, "")
}

// New compiles an expression against a table's columns. An empty expression
// yields a nil evaluator, which matches everything.
func New(expression string, columns []string) (*Evaluator, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string, len(columns))
	for _, c := range columns {
		vars[ident(c)] = c
	}
	return &Evaluator{expr: expr, columns: vars}, nil
}

// Match evaluates the expression for one row. Evaluation errors and
// non-boolean results count as no-match rather than failing the render.
func (e *Evaluator) Match(row model.Row) bool {
	if e == nil {
		return true
	}
	params := make(map[string]any, len(e.columns))
	for name, column := range e.columns {
		s := row.Get(column)
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && s != "" {
			params[name] = f
		} else {
			params[name] = s
		}
	}
	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Apply returns the rows matching the evaluator, preserving order.
func (e *Evaluator) Apply(rows []model.Row) []model.Row {
	if e == nil {
		return rows
	}
	out := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		if e.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
