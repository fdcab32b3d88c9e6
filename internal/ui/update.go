package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ftcscope/internal/catalog"
	"ftcscope/internal/config"
	"ftcscope/internal/export"
	"ftcscope/internal/filter"
	"ftcscope/internal/prefs"
	"ftcscope/internal/util/logx"
)

func (m *Model) buildHelpItems() []helpItem {
	km := m.keymap
	return []helpItem{
		{group: "Fields", text: "Previous field", key: tea.Key{Type: tea.KeyUp}},
		{group: "Fields", text: "Next field", key: tea.Key{Type: tea.KeyDown}},
		{group: "Fields", text: "Edit field", key: km.Edit},
		{group: "Fields", text: "Clear fields and results", key: km.Clear},

		{group: "Views", text: "Next view", key: km.NextView},
		{group: "Views", text: "Previous view", key: km.PrevView},
		{group: "Views", text: "Load", key: km.Load},

		{group: "Tables", text: "Previous column", key: tea.Key{Type: tea.KeyLeft}},
		{group: "Tables", text: "Next column", key: tea.Key{Type: tea.KeyRight}},
		{group: "Tables", text: "Sort by selected column", key: km.Sort},
		{group: "Tables", text: "Next table", key: km.NextTable},
		{group: "Tables", text: "Previous table", key: km.PrevTable},
		{group: "Tables", text: "Filter rows", key: km.Filter},
		{group: "Tables", text: "Clear row filter", key: km.ClearFilter},
		{group: "Tables", text: "Export focused table", key: km.Export},
		{group: "Tables", text: "Copy focused table", key: km.CopyTable},

		{group: "Control", text: "Settings", key: km.Settings},
		{group: "Control", text: "Application logs", key: km.AppLogs},
		{group: "Control", text: "Help", key: km.Help},
		{group: "Control", text: "Quit", key: km.Quit},
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		h := msg.Height - m.chromeHeight()
		if h < 1 {
			h = 1
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = h
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil
	case tea.KeyMsg:
		if m.modalActive {
			return m.updateModal(msg)
		}
		if m.inlineMode == inlineEdit {
			return m.updateEdit(msg)
		}
		if m.inlineMode == inlineFilter {
			return m.updateFilter(msg)
		}
		if m.page == pageSettings {
			return m.updateSettings(msg)
		}
		return m.updateBrowse(msg)
	case fetchDoneMsg:
		m.applyResult(msg)
		return m, nil
	case fetchFailedMsg:
		m.applyFailure(msg)
		return m, nil
	case toastMsg:
		m.lastMsg = msg.text
		return m, nil
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalKind == modalHelp {
		switch {
		case msg.Type == tea.KeyUp:
			if m.helpSel > 0 {
				m.helpSel--
				m.modalVP.SetContent(m.renderHelp())
			}
			return m, nil
		case msg.Type == tea.KeyDown:
			if m.helpSel+1 < len(m.helpItems) {
				m.helpSel++
				m.modalVP.SetContent(m.renderHelp())
			}
			return m, nil
		case msg.Type == tea.KeyEnter:
			if len(m.helpItems) > 0 {
				it := m.helpItems[m.helpSel]
				m.modalActive = false
				return m, keyCmd(it.key)
			}
			return m, nil
		case msg.Type == tea.KeyEsc, msg.String() == "q", msg.String() == "?":
			m.modalActive = false
			return m, nil
		}
		return m, nil
	}
	// application logs modal
	switch {
	case msg.Type == tea.KeyEsc, msg.Type == tea.KeyEnter, msg.String() == "q":
		m.modalActive = false
		return m, nil
	case msg.String() == "c":
		copyToClipboard(m.modalBody)
		m.lastMsg = "copied to clipboard"
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

// updateEdit handles inline editing of either an explorer field or a
// settings entry, depending on the active page.
func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.inlineMode = inlineNone
		m.input.Blur()
		return m, nil
	}

	if m.page == pageExplorer {
		name := m.currentField()
		if f, ok := catalog.FieldByName(name); ok && f.Widget == catalog.WidgetSelect {
			switch {
			case msg.Type == tea.KeyLeft:
				m.cycleOption(f, -1)
				return m, nil
			case msg.Type == tea.KeyRight, msg.String() == " ":
				m.cycleOption(f, 1)
				return m, nil
			case msg.Type == tea.KeyEnter:
				m.inlineMode = inlineNone
				return m, nil
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			m.values[name] = m.input.Value()
			delete(m.missing, name)
			m.persistFilters(name)
			m.inlineMode = inlineNone
			m.input.Blur()
			return m, nil
		}
	} else {
		if msg.Type == tea.KeyEnter {
			m.applySettingsEdit()
			m.inlineMode = inlineNone
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inlineMode = inlineNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		expr := m.input.Value()
		if len(m.states) > 0 {
			st := &m.states[m.tableIdx]
			ev, err := filter.New(expr, m.tables[m.tableIdx].Columns)
			if err != nil {
				m.lastMsg = fmt.Sprintf("bad filter: %v", err)
				return m, nil
			}
			st.filterExpr = expr
			st.eval = ev
		}
		m.inlineMode = inlineNone
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, keyMatches(msg, m.keymap.Settings):
		m.page = pageExplorer
		return m, nil
	case keyMatches(msg, m.keymap.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyUp:
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if m.settingsIdx < 3 {
			m.settingsIdx++
		}
		return m, nil
	case msg.Type == tea.KeyEnter, keyMatches(msg, m.keymap.Edit):
		if m.settingsIdx == 3 {
			m.toggleTheme()
			return m, nil
		}
		m.inlineMode = inlineEdit
		switch m.settingsIdx {
		case 0:
			m.input.SetValue(m.editDefaults.Season)
		case 1:
			m.input.SetValue(m.editDefaults.Region)
		case 2:
			m.input.SetValue(m.editDefaults.TeamNumber)
		}
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keymap.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyUp:
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if m.fieldIdx+1 < len(m.currentView().Fields()) {
			m.fieldIdx++
		}
		return m, nil
	case msg.Type == tea.KeyLeft:
		if len(m.states) > 0 {
			st := &m.states[m.tableIdx]
			if st.colIdx > 0 {
				st.colIdx--
			}
		}
		return m, nil
	case msg.Type == tea.KeyRight:
		if len(m.states) > 0 {
			st := &m.states[m.tableIdx]
			if st.colIdx+1 < len(m.tables[m.tableIdx].Columns) {
				st.colIdx++
			}
		}
		return m, nil
	case keyMatches(msg, m.keymap.Edit):
		name := m.currentField()
		if name == "" {
			return m, nil
		}
		m.inlineMode = inlineEdit
		if f, ok := catalog.FieldByName(name); !ok || f.Widget != catalog.WidgetSelect {
			m.input.SetValue(m.values[name])
			m.input.CursorEnd()
			m.input.Focus()
		}
		return m, nil
	case keyMatches(msg, m.keymap.Load):
		if m.loading {
			return m, nil
		}
		return m, m.startLoad()
	case keyMatches(msg, m.keymap.Clear):
		m.values = seedValues(prefs.LoadDefaults(), prefs.LoadFilters())
		m.clearResults()
		m.lastMsg = "cleared"
		return m, nil
	case keyMatches(msg, m.keymap.NextView):
		m.switchView((m.viewIdx + 1) % len(m.views))
		return m, nil
	case keyMatches(msg, m.keymap.PrevView):
		m.switchView((m.viewIdx + len(m.views) - 1) % len(m.views))
		return m, nil
	case keyMatches(msg, m.keymap.Sort):
		if len(m.states) > 0 {
			st := &m.states[m.tableIdx]
			cols := m.tables[m.tableIdx].Columns
			if st.colIdx < len(cols) {
				st.sort.Toggle(cols[st.colIdx])
			}
		}
		return m, nil
	case keyMatches(msg, m.keymap.NextTable):
		if n := len(m.tables); n > 0 {
			m.tableIdx = (m.tableIdx + 1) % n
		}
		return m, nil
	case keyMatches(msg, m.keymap.PrevTable):
		if n := len(m.tables); n > 0 {
			m.tableIdx = (m.tableIdx + n - 1) % n
		}
		return m, nil
	case keyMatches(msg, m.keymap.Filter):
		if len(m.states) > 0 {
			m.inlineMode = inlineFilter
			m.input.SetValue(m.states[m.tableIdx].filterExpr)
			m.input.CursorEnd()
			m.input.Focus()
		}
		return m, nil
	case keyMatches(msg, m.keymap.ClearFilter):
		if len(m.states) > 0 {
			st := &m.states[m.tableIdx]
			st.filterExpr = ""
			st.eval = nil
		}
		return m, nil
	case keyMatches(msg, m.keymap.Export):
		return m, m.exportFocused()
	case keyMatches(msg, m.keymap.CopyTable):
		if len(m.tables) > 0 {
			copyToClipboard(m.renderTablePlain(m.tableIdx))
			m.lastMsg = "copied to clipboard"
		}
		return m, nil
	case keyMatches(msg, m.keymap.Settings):
		m.page = pageSettings
		m.settingsIdx = 0
		return m, nil
	case keyMatches(msg, m.keymap.AppLogs):
		m.openAppLogsModal()
		return m, nil
	case keyMatches(msg, m.keymap.Help):
		m.openHelpModal()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) currentView() catalog.View { return m.views[m.viewIdx] }

func (m *Model) currentField() string {
	names := m.currentView().Fields()
	if len(names) == 0 {
		return ""
	}
	if m.fieldIdx >= len(names) {
		m.fieldIdx = len(names) - 1
	}
	return names[m.fieldIdx]
}

// switchView clears results and errors; field values survive across views
// since the catalog shares them.
func (m *Model) switchView(idx int) {
	m.viewIdx = idx
	m.fieldIdx = 0
	m.clearResults()
}

// clearResults wipes everything a response produced: tables with their
// sort/filter state, the HTTP status, and any error or validation markers.
func (m *Model) clearResults() {
	m.tables = nil
	m.states = nil
	m.tableIdx = 0
	m.statusCode = 0
	m.errKind = errNone
	m.errMsg = ""
	m.missing = nil
}

func (m *Model) cycleOption(f catalog.Field, dir int) {
	cur := 0
	for i, o := range f.Options {
		if o.Value == m.values[f.Name] {
			cur = i
			break
		}
	}
	n := len(f.Options)
	m.values[f.Name] = f.Options[(cur+dir+n)%n].Value
}

// persistFilters records eventCode/limit edits so the next session restores
// them.
func (m *Model) persistFilters(name string) {
	if name != "eventCode" && name != "limit" {
		return
	}
	f := prefs.Filters{EventCode: m.values.Get("eventCode"), Limit: m.values.Get("limit")}
	if err := prefs.SaveFilters(f); err != nil {
		logx.Warnf("prefs: save filters: %v", err)
	}
}

func (m *Model) applySettingsEdit() {
	v := m.input.Value()
	switch m.settingsIdx {
	case 0:
		m.editDefaults.Season = v
	case 1:
		m.editDefaults.Region = v
	case 2:
		m.editDefaults.TeamNumber = v
	}
	if err := prefs.SaveDefaults(m.editDefaults); err != nil {
		logx.Warnf("prefs: save defaults: %v", err)
	}
	// re-seed the defaults-backed fields with the new values
	m.values["season"] = m.editDefaults.Season
	m.values["region"] = m.editDefaults.Region
	m.values["teamId"] = m.editDefaults.TeamNumber
	m.values["team"] = m.editDefaults.TeamNumber
}

func (m *Model) toggleTheme() {
	if m.editTheme == config.ThemeDark {
		m.editTheme = config.ThemeLight
	} else {
		m.editTheme = config.ThemeDark
	}
	m.cfg.Theme = m.editTheme
	m.styles = NewStyles(m.editTheme == config.ThemeDark)
	if err := prefs.SaveTheme(string(m.editTheme)); err != nil {
		logx.Warnf("prefs: save theme: %v", err)
	}
}

func (m *Model) exportFocused() tea.Cmd {
	if m.cfg.ExportFormat == "" || m.cfg.ExportOut == "" {
		m.lastMsg = "use --export and --out to export"
		return nil
	}
	if len(m.tables) == 0 {
		m.lastMsg = "nothing to export"
		return nil
	}
	t := m.tables[m.tableIdx]
	st := m.states[m.tableIdx]
	t.Rows = visibleRows(t, st)
	var err error
	switch m.cfg.ExportFormat {
	case "csv":
		err = export.ToCSV(m.cfg.ExportOut, t)
	case "json":
		err = export.ToNDJSON(m.cfg.ExportOut, t)
	}
	if err != nil {
		m.lastMsg = fmt.Sprintf("export failed: %v", err)
		logx.Warnf("export: %v", err)
		return nil
	}
	m.lastMsg = fmt.Sprintf("exported %d rows to %s (%s)", len(t.Rows), m.cfg.ExportOut, m.cfg.ExportFormat)
	logx.Infof("export: wrote %d rows to %s (%s)", len(t.Rows), m.cfg.ExportOut, m.cfg.ExportFormat)
	return nil
}
