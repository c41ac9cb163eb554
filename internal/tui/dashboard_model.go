// Package tui implements the interactive dashboard built on Bubble Tea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecobin-app/ecobin/internal/app"
	"github.com/ecobin-app/ecobin/internal/timerange"
)

// DashboardState represents the current state of the dashboard TUI.
type DashboardState int

const (
	// DashboardStateLoading indicates an overview load is in flight.
	DashboardStateLoading DashboardState = iota
	// DashboardStateReady indicates the overview is displayed.
	DashboardStateReady
	// DashboardStateQuitting indicates the application is exiting.
	DashboardStateQuitting
	// DashboardStateError indicates a load failed.
	DashboardStateError
)

// LoadFunc loads the overview for one window.
type LoadFunc func(context.Context, timerange.Range) (app.Overview, error)

// overviewLoadedMsg is sent when an overview load completes.
type overviewLoadedMsg struct {
	rng      timerange.Range
	overview app.Overview
}

// overviewErrMsg is sent when an overview load fails.
type overviewErrMsg struct {
	err error
}

// DashboardModel is the Bubble Tea model for the waste overview dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	ctx  context.Context
	load LoadFunc

	state    DashboardState
	rng      timerange.Range
	overview app.Overview

	keys keyMap
	help help.Model

	width  int
	height int

	err error
}

// NewDashboardModel creates a dashboard model starting on the weekly window.
func NewDashboardModel(ctx context.Context, load LoadFunc) DashboardModel {
	return DashboardModel{
		ctx:    ctx,
		load:   load,
		state:  DashboardStateLoading,
		rng:    timerange.Week,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init initializes the model (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return m.loadOverview(m.rng)
}

// loadOverview returns a command that loads the overview for the window.
func (m DashboardModel) loadOverview(rng timerange.Range) tea.Cmd {
	return func() tea.Msg {
		overview, err := m.load(m.ctx, rng)
		if err != nil {
			return overviewErrMsg{err: err}
		}
		return overviewLoadedMsg{rng: rng, overview: overview}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case overviewLoadedMsg:
		// A stale load for a window the user has already moved off is dropped.
		if msg.rng != m.rng {
			return m, nil
		}
		m.overview = msg.overview
		m.state = DashboardStateReady
		m.err = nil
		return m, nil

	case overviewErrMsg:
		m.err = msg.err
		m.state = DashboardStateError
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}

	return m, nil
}

func (m DashboardModel) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = DashboardStateQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Week):
		return m.switchRange(timerange.Week)
	case key.Matches(msg, m.keys.Month):
		return m.switchRange(timerange.Month)
	case key.Matches(msg, m.keys.Year):
		return m.switchRange(timerange.Year)
	case key.Matches(msg, m.keys.All):
		return m.switchRange(timerange.All)
	case key.Matches(msg, m.keys.Refresh):
		m.state = DashboardStateLoading
		return m, m.loadOverview(m.rng)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
}

// switchRange moves to a new window and kicks off its load. Switching to the
// window already shown is a no-op so the display does not flicker.
func (m DashboardModel) switchRange(rng timerange.Range) (tea.Model, tea.Cmd) {
	if rng == m.rng && m.state == DashboardStateReady {
		return m, nil
	}
	m.rng = rng
	m.state = DashboardStateLoading
	return m, m.loadOverview(rng)
}

// Range returns the currently selected window.
func (m DashboardModel) Range() timerange.Range {
	return m.rng
}

// State returns the current dashboard state.
func (m DashboardModel) State() DashboardState {
	return m.state
}
