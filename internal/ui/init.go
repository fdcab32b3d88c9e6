package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ftcscope/internal/api"
	"ftcscope/internal/catalog"
	"ftcscope/internal/config"
	"ftcscope/internal/prefs"
)

// seedValues builds the initial field values: built-ins overlaid with the
// stored defaults and last-used filters.
func seedValues(d prefs.Defaults, f prefs.Filters) catalog.Values {
	v := catalog.DefaultValues()
	v["season"] = d.Season
	v["region"] = d.Region
	v["teamId"] = d.TeamNumber
	v["team"] = d.TeamNumber
	v["eventCode"] = f.EventCode
	v["limit"] = f.Limit
	return v
}

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	defaults := prefs.LoadDefaults()
	filters := prefs.LoadFilters()
	if name := prefs.LoadTheme(); name != "" {
		cfg.Theme = config.Theme(name)
	}

	m := &Model{
		ctx:          ctx,
		cfg:          cfg,
		client:       api.New(time.Duration(cfg.TimeoutSec) * time.Second),
		views:        catalog.Views(),
		values:       seedValues(defaults, filters),
		styles:       NewStyles(cfg.Theme == config.ThemeDark),
		keymap:       DefaultKeyMap(),
		input:        textinput.New(),
		spin:         spinner.New(),
		editDefaults: defaults,
		editTheme:    cfg.Theme,
	}
	m.spin.Spinner = spinner.Dot
	m.input.CharLimit = 64
	m.input.Prompt = "> "
	m.viewport = viewport.New(80, 20)
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}
