package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base        lipgloss.Style
	Status      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldValue  lipgloss.Style
	FieldFocus  lipgloss.Style
	Missing     lipgloss.Style
	TableTitle  lipgloss.Style
	TableFocus  lipgloss.Style
	Header      lipgloss.Style
	HeaderSel   lipgloss.Style
	ErrLocal    lipgloss.Style
	ErrRemote   lipgloss.Style
	Help        lipgloss.Style
	PopupBox    lipgloss.Style
	PopupTitle  lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.FieldLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.FieldValue = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.FieldFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
		s.Missing = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.TableTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
		s.TableFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Header = lipgloss.NewStyle().Bold(true)
		s.HeaderSel = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("220"))
		s.ErrLocal = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		s.ErrRemote = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.FieldLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.FieldValue = lipgloss.NewStyle()
		s.FieldFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("166"))
		s.Missing = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
		s.TableTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26"))
		s.TableFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Header = lipgloss.NewStyle().Bold(true)
		s.HeaderSel = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("166"))
		s.ErrLocal = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
		s.ErrRemote = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	return s
}
