package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"ftcscope/internal/api"
	"ftcscope/internal/catalog"
	"ftcscope/internal/normalize"
	"ftcscope/internal/query"
	"ftcscope/internal/util/logx"
)

// startLoad validates the active view and, when it passes, issues the
// request as a command. A validation failure is local: the request is never
// sent and prior results stay on screen.
func (m *Model) startLoad() tea.Cmd {
	view := m.views[m.viewIdx]
	if fields := query.Validate(view, m.values); len(fields) > 0 {
		verr := &query.MissingFieldsError{Fields: fields}
		m.errKind = errValidation
		m.errMsg = verr.Error()
		m.missing = make(map[string]bool, len(fields))
		for _, f := range fields {
			m.missing[f] = true
		}
		logx.Warnf("load: %s", verr.Error())
		return nil
	}
	m.missing = nil
	m.errKind = errNone
	m.errMsg = ""
	m.loading = true
	m.reqSeq++

	seq := m.reqSeq
	url := query.Build(m.cfg.BaseURL, view, m.values)
	// snapshot the values so later edits cannot leak into normalization
	vals := make(catalog.Values, len(m.values))
	for k, v := range m.values {
		vals[k] = v
	}
	client, ctx, viewID := m.client, m.ctx, view.ID
	logx.Infof("load: GET %s", url)

	return func() tea.Msg {
		raw, status, err := client.FetchJSON(ctx, url)
		if err != nil {
			kind := errTransport
			var se *api.ServerError
			if errors.As(err, &se) {
				kind = errServer
			}
			return fetchFailedMsg{seq: seq, status: status, kind: kind, err: err}
		}
		return fetchDoneMsg{seq: seq, status: status, tables: normalize.Tables(viewID, raw, vals)}
	}
}

// applyResult installs a completed response: new tables with fresh per-table
// sort and filter state. Applied even when a newer request is already in
// flight, so the last response to arrive wins the screen.
func (m *Model) applyResult(msg fetchDoneMsg) {
	m.tables = msg.tables
	m.states = make([]tableState, len(msg.tables))
	m.tableIdx = 0
	m.statusCode = msg.status
	m.errKind = errNone
	m.errMsg = ""
	m.missing = nil
	if msg.seq == m.reqSeq {
		m.loading = false
	}
	logx.Infof("load: done status=%d tables=%d", msg.status, len(msg.tables))
}

func (m *Model) applyFailure(msg fetchFailedMsg) {
	m.tables = nil
	m.states = nil
	m.tableIdx = 0
	m.statusCode = msg.status
	m.errKind = msg.kind
	m.errMsg = msg.err.Error()
	if msg.seq == m.reqSeq {
		m.loading = false
	}
	logx.Warnf("load: failed status=%d: %v", msg.status, msg.err)
}
