package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"ftcscope/internal/catalog"
	"ftcscope/internal/util/logx"
)

func (m *Model) View() string {
	var v string
	if m.page == pageSettings {
		v = m.renderSettings()
	} else {
		v = m.renderExplorer()
	}
	if m.modalActive {
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

// chromeHeight is everything the explorer draws besides the table viewport.
func (m *Model) chromeHeight() int {
	return len(m.currentView().Fields()) + 3
}

func (m *Model) renderExplorer() string {
	m.viewport.SetContent(m.renderTables())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.renderFields(),
		m.viewport.View(),
		m.renderBottom(),
		m.renderStatus(),
	)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.views))
	for i, v := range m.views {
		if i == m.viewIdx {
			parts = append(parts, m.styles.TabActive.Render("["+v.Label+"]"))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(" "+v.Label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderFields() string {
	names := m.currentView().Fields()
	lines := make([]string, 0, len(names))
	for i, name := range names {
		f, _ := catalog.FieldByName(name)
		label := catalog.Label(name)
		value := m.values[name]
		if f.Widget == catalog.WidgetSelect {
			for _, o := range f.Options {
				if o.Value == value {
					value = o.Label
					break
				}
			}
		}

		marker := "  "
		labelStyle := m.styles.FieldLabel
		if i == m.fieldIdx {
			marker = "> "
			labelStyle = m.styles.FieldFocus
		}
		if m.missing[name] {
			marker = m.styles.Missing.Render("! ")
		}

		if i == m.fieldIdx && m.inlineMode == inlineEdit {
			if f.Widget == catalog.WidgetSelect {
				lines = append(lines, fmt.Sprintf("%s%s: %s  [←/→]=change [enter]=done",
					marker, labelStyle.Render(label), m.styles.FieldValue.Render(value)))
			} else {
				lines = append(lines, fmt.Sprintf("%s%s: %s", marker, labelStyle.Render(label), m.input.View()))
			}
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s", marker, labelStyle.Render(label), m.styles.FieldValue.Render(value)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBottom() string {
	if m.inlineMode == inlineFilter {
		title := ""
		if len(m.tables) > 0 {
			title = m.tables[m.tableIdx].Title
		}
		return fmt.Sprintf("Filter %s: %s    [enter]=apply [esc]=cancel [F]=clear", title, m.input.View())
	}
	if len(m.states) > 0 {
		if expr := m.states[m.tableIdx].filterExpr; expr != "" {
			return fmt.Sprintf("Filter: %s    [F]=clear", expr)
		}
	}
	if m.termWidth > 0 {
		return strings.Repeat(" ", m.termWidth)
	}
	return ""
}

func (m *Model) renderStatus() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spin.View()+"loading")
	}
	if m.statusCode != 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", m.statusCode))
	}
	if m.errMsg != "" {
		style := m.styles.ErrRemote
		if m.errKind == errValidation {
			style = m.styles.ErrLocal
		}
		parts = append(parts, style.Render(m.errMsg))
	}
	if n := len(m.tables); n > 1 {
		parts = append(parts, fmt.Sprintf("table %d/%d", m.tableIdx+1, n))
	}
	parts = append(parts, "[?]=help")
	if m.lastMsg != "" {
		parts = append(parts, m.lastMsg)
	}
	return m.styles.Status.Render(strings.Join(parts, " | "))
}

func (m *Model) renderSettings() string {
	items := []struct{ label, value string }{
		{"Default Season", m.editDefaults.Season},
		{"Default Region", m.editDefaults.Region},
		{"Default Team Number", m.editDefaults.TeamNumber},
		{"Theme", string(m.editTheme)},
	}
	lines := []string{m.styles.TableTitle.Render("Settings"), ""}
	for i, it := range items {
		marker := "  "
		style := m.styles.FieldLabel
		if i == m.settingsIdx {
			marker = "> "
			style = m.styles.FieldFocus
		}
		if i == m.settingsIdx && m.inlineMode == inlineEdit {
			lines = append(lines, fmt.Sprintf("%s%s: %s", marker, style.Render(it.label), m.input.View()))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s", marker, style.Render(it.label), m.styles.FieldValue.Render(it.value)))
	}
	lines = append(lines, "", m.styles.Help.Render("[enter]=edit/toggle [esc]=back"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	if len(m.helpItems) == 0 {
		m.helpItems = m.buildHelpItems()
	}
	if m.helpSel < 0 {
		m.helpSel = 0
	}
	if m.helpSel >= len(m.helpItems) {
		m.helpSel = len(m.helpItems) - 1
	}
	lines := []string{"Shortcuts:"}
	currentGroup := ""
	lineIndexOfSel := 0
	for i, it := range m.helpItems {
		if it.group != currentGroup {
			currentGroup = it.group
			lines = append(lines, "", currentGroup+":")
		}
		prefix := "  "
		if i == m.helpSel {
			prefix = "> "
			lineIndexOfSel = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, keyLabel(it.key), it.text))
	}
	if m.modalVP.Height > 0 {
		top := m.modalVP.YOffset
		bottom := top + m.modalVP.Height - 1
		if lineIndexOfSel <= top {
			if lineIndexOfSel-1 >= 0 {
				m.modalVP.YOffset = lineIndexOfSel - 1
			} else {
				m.modalVP.YOffset = 0
			}
		} else if lineIndexOfSel >= bottom {
			m.modalVP.YOffset = lineIndexOfSel - m.modalVP.Height + 2
			if m.modalVP.YOffset < 0 {
				m.modalVP.YOffset = 0
			}
		}
	}
	return m.styles.Help.Render(strings.Join(lines, "\n"))
}

func (m *Model) openHelpModal() {
	m.modalActive = true
	m.modalKind = modalHelp
	m.modalTitle = "Help"
	m.helpItems = m.buildHelpItems()
	m.helpSel = 0
	m.modalBody = m.renderHelp()
	m.resizeModal()
}

func (m *Model) openAppLogsModal() {
	m.modalActive = true
	m.modalKind = modalLogs
	m.modalTitle = "Application Logs"
	m.modalBody = logx.Dump()
	m.resizeModal()
}

func (m *Model) resizeModal() {
	w := m.termWidth - 6
	h := m.termHeight - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	var content string
	switch m.modalKind {
	case modalHelp:
		m.modalVP.SetContent(m.renderHelp())
		content = m.modalVP.View() + "\n[esc]=close  [enter]=run"
	default:
		content = m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	}
	boxW := m.termWidth - 6
	if boxW < 20 {
		boxW = 20
	}
	title := m.styles.PopupTitle.Render(m.modalTitle)
	body := m.styles.PopupBox.Width(boxW).Render(title + "\n" + content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}
