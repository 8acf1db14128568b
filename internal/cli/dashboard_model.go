package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
)

type dashboardView int

const (
	viewStatus dashboardView = iota
	viewTimeline
	viewPath
	viewCount
)

type dashboardKeyMap struct {
	NextView key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func defaultDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextView, k.Refresh, k.Quit}}
}

// dashboardData is the snapshot of all three coordinator views, loaded in one
// round so switching views never waits on the database.
type dashboardData struct {
	status   *contract.StatusResponse
	timeline *contract.TimelineResponse
	path     *contract.CriticalPathResponse
}

type dataLoadedMsg struct{ data dashboardData }

type loadFailedMsg struct{ err error }

type dashboardModel struct {
	app       *App
	studentID string

	view    dashboardView
	data    *dashboardData
	loadErr error
	loading bool

	keys dashboardKeyMap
	help help.Model
}

func newDashboardModel(app *App, studentID string) dashboardModel {
	return dashboardModel{
		app:       app,
		studentID: studentID,
		loading:   true,
		keys:      defaultDashboardKeyMap(),
		help:      help.New(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load
}

func (m dashboardModel) load() tea.Msg {
	ctx := context.Background()

	status, err := m.app.Coordinator.Status(ctx, contract.StatusRequest{StudentID: m.studentID})
	if err != nil {
		return loadFailedMsg{err}
	}
	timeline, err := m.app.Coordinator.Timeline(ctx, contract.TimelineRequest{StudentID: m.studentID})
	if err != nil {
		return loadFailedMsg{err}
	}
	path, err := m.app.Coordinator.CriticalPath(ctx, contract.CriticalPathRequest{StudentID: m.studentID})
	if err != nil {
		return loadFailedMsg{err}
	}

	return dataLoadedMsg{dashboardData{status: status, timeline: timeline, path: path}}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		m.data = &msg.data
		m.loadErr = nil
		m.loading = false
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	body := m.body()
	return body + "\n" + m.help.View(m.keys) + "\n"
}

func (m dashboardModel) body() string {
	switch {
	case m.loading && m.data == nil:
		return formatter.Dim("Loading…") + "\n"
	case m.loadErr != nil:
		return formatter.StyleRed.Render("Error: "+m.loadErr.Error()) + "\n"
	case m.data == nil:
		return formatter.Dim("No data.") + "\n"
	}

	switch m.view {
	case viewTimeline:
		return formatter.FormatTimeline(m.data.timeline)
	case viewPath:
		return formatter.FormatCriticalPath(m.data.path)
	default:
		return formatter.FormatStatus(m.data.status)
	}
}
