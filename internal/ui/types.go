package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ftcscope/internal/api"
	"ftcscope/internal/catalog"
	"ftcscope/internal/config"
	"ftcscope/internal/filter"
	"ftcscope/internal/model"
	"ftcscope/internal/prefs"
	"ftcscope/internal/tabsort"
)

type page int

const (
	pageExplorer page = iota
	pageSettings
)

type inlineMode int

const (
	inlineNone   inlineMode = iota
	inlineEdit              // field editing for the active view
	inlineFilter            // row-filter expression for the focused table
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalLogs
)

type errKind int

const (
	errNone errKind = iota
	errValidation
	errTransport
	errServer
)

// tableState pairs one rendered table with its local sort and row-filter
// state. Recreated wholesale whenever a new result replaces the old one.
type tableState struct {
	sort       tabsort.State
	filterExpr string
	eval       *filter.Evaluator
	colIdx     int
}

type Model struct {
	ctx    context.Context
	cfg    *config.Config
	client *api.Client

	// catalog, sorted by label once at startup
	views   []catalog.View
	viewIdx int
	values  catalog.Values

	// field editing
	fieldIdx int
	input    textinput.Model

	// request lifecycle; one in-flight request at a time, the trigger is
	// disabled while loading but a late response still lands (last-writer-wins)
	loading    bool
	reqSeq     int
	statusCode int
	errMsg     string
	errKind    errKind
	missing    map[string]bool

	// results
	tables   []model.Table
	states   []tableState
	tableIdx int

	// settings page
	settingsIdx  int
	editDefaults prefs.Defaults
	editTheme    config.Theme

	page       page
	inlineMode inlineMode
	viewport   viewport.Model
	spin       spinner.Model
	styles     Styles
	keymap     KeyMap
	termWidth  int
	termHeight int
	lastMsg    string

	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string
	helpItems   []helpItem
	helpSel     int
}

type helpItem struct {
	group string
	text  string
	key   tea.Key
}

// fetchDoneMsg carries a completed normalization; seq identifies which
// request produced it so stale results can still win the state (documented
// last-writer-wins behavior) while the loading flag tracks the newest one.
type fetchDoneMsg struct {
	seq    int
	status int
	tables []model.Table
}

type fetchFailedMsg struct {
	seq    int
	status int
	kind   errKind
	err    error
}

type toastMsg struct{ text string }

func keyCmd(k tea.Key) tea.Cmd {
	return func() tea.Msg {
		if k.Type == tea.KeyRunes {
			return tea.KeyMsg{Type: k.Type, Runes: k.Runes}
		}
		return tea.KeyMsg{Type: k.Type}
	}
}

func keyLabel(k tea.Key) string {
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			r := k.Runes[0]
			if r == ' ' {
				return "space"
			}
			return string(r)
		}
		return strings.ToLower(string(k.Runes))
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeyTab:
		return "tab"
	case tea.KeyShiftTab:
		return "shift-tab"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	default:
		return strings.ToLower(k.String())
	}
}
