package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ouraface/internal/companion"
	"github.com/garrettladley/ouraface/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

const feedBuffer = 16

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	feedDone       bool
	deps           Deps
	feedCh         chan companion.Entry
	logger         *slog.Logger
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		deps:     deps,
		logger:   logger,
		feedDone: deps.Feed == nil,
	}
}

func (m *Model) Init() tea.Cmd {
	ctx := m.deps.Ctx
	m.deps.Face.Start(ctx)

	cmds := []tea.Cmd{
		ListenPostsCmd(ctx, m.deps.Posts),
		m.restartTicks(),
	}
	if m.deps.Feed != nil {
		m.feedCh = make(chan companion.Entry, feedBuffer)
		cmds = append(cmds,
			StartFeedCmd(ctx, m.deps.Feed, m.feedCh),
			ListenFeedCmd(ctx, m.feedCh),
		)
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := m.deps.Ctx
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.deps.Face.Close()
			return m, tea.Quit
		case "r":
			m.deps.Face.ManualRefresh(ctx)
		}

	case PostMsg:
		msg.Fn()
		cmds = append(cmds, ListenPostsCmd(ctx, m.deps.Posts))

	case TickMsg:
		if msg.Gen == m.deps.Ticks.gen {
			m.deps.Face.HandleTick(ctx, msg.Time)
			cmds = append(cmds, m.deps.Ticks.next(time.Now()))
		}

	case FeedEntryMsg:
		if msg.Entry.Message != nil {
			m.deps.Face.HandleMessage(ctx, msg.Entry.Message)
		}
		cmds = append(cmds, ListenFeedCmd(ctx, m.feedCh))

	case FeedDoneMsg:
		m.feedDone = true
		if msg.Err != nil && ctx.Err() == nil {
			m.logger.WarnContext(ctx, "feed stopped", xslog.Error(msg.Err))
		}
	}

	// the face may have changed granularity while handling msg
	if m.deps.Ticks.restart() {
		cmds = append(cmds, m.deps.Ticks.next(time.Now()))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) restartTicks() tea.Cmd {
	m.deps.Ticks.restart()
	return m.deps.Ticks.next(time.Now())
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.deps.Surface.WindowBackground()

	if !m.ready {
		return view
	}

	status := "r refresh · q quit"
	if m.deps.Face.Machine().OverlayVisible() {
		status = "loading · " + status
	}
	ft := newFooter(dimStyle.Render(status), m.viewportWidth)
	footerHeight := lipgloss.Height(ft.render())

	watch := lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-footerHeight, 0),
		lipgloss.Center,
		lipgloss.Center,
		m.deps.Surface.View(),
	)

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left, watch, ft.render()))
	return view
}
