package catalog

import "strings"

type Widget int

const (
	WidgetText Widget = iota
	WidgetSelect
)

type Option struct {
	Value string
	Label string
}

// Field describes one user-editable input shared across views.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Widget      Widget
	Options     []Option
}

var fields = map[string]Field{
	"season":    {Name: "season", Label: "Season", Placeholder: "2025"},
	"teamId":    {Name: "teamId", Label: "Team ID", Placeholder: "12345"},
	"region":    {Name: "region", Label: "Region", Placeholder: "USCHS"},
	"eventCode": {Name: "eventCode", Label: "Event Code", Placeholder: "USNCCOQ"},
	"country":   {Name: "country", Label: "Country", Placeholder: "USA"},
	"event":     {Name: "event", Label: "Event (optional)", Placeholder: "USNCCOQ"},
	"team":      {Name: "team", Label: "Team Filter", Placeholder: "12345"},
	"limit":     {Name: "limit", Label: "Limit", Placeholder: "25"},
	"phase": {
		Name:   "phase",
		Label:  "Match Phase",
		Widget: WidgetSelect,
		Options: []Option{
			{Value: "", Label: "Both"},
			{Value: "qualification", Label: "Qualification"},
			{Value: "playoff", Label: "Playoff"},
		},
	},
}

func FieldByName(name string) (Field, bool) {
	f, ok := fields[name]
	return f, ok
}

// Label resolves a field's display label, falling back to the raw name for
// anything not in the registry.
func Label(name string) string {
	if f, ok := fields[name]; ok {
		return f.Label
	}
	return name
}

// DefaultValues returns the built-in starting value for every field.
func DefaultValues() Values {
	return Values{
		"season":    "2025",
		"teamId":    "12345",
		"region":    "USCHS",
		"eventCode": "USNCCOQ",
		"country":   "",
		"event":     "",
		"team":      "",
		"limit":     "25",
		"phase":     "",
	}
}

// Values holds the user-supplied field values for the editing session.
// Absence is equivalent to the empty string.
type Values map[string]string

// Get returns the trimmed value for a field.
func (v Values) Get(name string) string {
	return strings.TrimSpace(v[name])
}
