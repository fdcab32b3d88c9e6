package query

import (
	"strings"

	"ftcscope/internal/catalog"
)

// Validate returns the names of required fields whose trimmed value is
// empty, in the view's declared order. Empty result means the request may
// proceed.
func Validate(view catalog.View, values catalog.Values) []string {
	var missing []string
	for _, name := range view.RequiredFields {
		if values.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// MissingFieldsError is the local, non-fatal validation failure: the request
// was never issued. Distinct from transport and server errors so the UI can
// present it differently and leave prior results untouched.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	labels := make([]string, 0, len(e.Fields))
	for _, name := range e.Fields {
		labels = append(labels, catalog.Label(name))
	}
	return "missing required fields: " + strings.Join(labels, ", ")
}
