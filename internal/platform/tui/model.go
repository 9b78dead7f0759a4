package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/core"
	"github.com/vovakirdan/mousetris/internal/engine"
	"github.com/vovakirdan/mousetris/internal/games/tetris"
	"github.com/vovakirdan/mousetris/internal/haptics"
	"github.com/vovakirdan/mousetris/internal/input"
	"github.com/vovakirdan/mousetris/internal/render"
	"github.com/vovakirdan/mousetris/internal/storage"
)

// Options configure a preview Model.
type Options struct {
	Runtime   core.RuntimeConfig
	Resources render.Resources
	Sink      engine.Sink      // Peripheral sink; frames also go to the preview
	Vibrator  haptics.Vibrator // Optional
	Store     *storage.Store   // Optional; scores are saved when set
	Logger    *log.Logger
	Player    string // Shown in the title; empty for local play

	// Context bounds every game started by the model. Defaults to
	// context.Background.
	Context context.Context
}

// frameMsg carries a frame from the tick goroutine to the view.
type frameMsg struct {
	session int
	frame   render.Frame
}

// gameEndedMsg is sent when a session's scheduler returns.
type gameEndedMsg struct {
	session int
	summary engine.Summary
	err     error
}

// session is one running game: its scheduler, input plumbing and frame
// channel.
type session struct {
	id     int
	game   *tetris.Game
	agg    *input.Aggregator
	src    *input.ChanSource
	frames *FrameChannel
	sched  *engine.Scheduler
	ctx    context.Context
	cancel context.CancelFunc
}

// Model is the Bubble Tea model that previews the device screen and feeds
// terminal mouse events into the game.
type Model struct {
	opts     Options
	session  *session
	frame    render.Frame
	summary  *engine.Summary
	err      error
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model and prepares the first game.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sink == nil {
		opts.Sink = engine.Discard
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if _, err := render.New(opts.Resources); err != nil {
		return Model{}, err
	}

	m := Model{
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	m.session = m.newSession(1, opts.Runtime)
	return m, nil
}

func (m Model) newSession(id int, cfg core.RuntimeConfig) *session {
	// Resources were validated by NewModel.
	r, _ := render.New(m.opts.Resources)

	ctx, cancel := context.WithCancel(m.opts.Context)
	s := &session{
		id:     id,
		game:   tetris.New(cfg),
		agg:    input.NewAggregator(),
		src:    input.NewChanSource(0),
		frames: NewFrameChannel(0),
		ctx:    ctx,
		cancel: cancel,
	}
	s.sched = engine.New(s.game, s.agg, r, engine.Tee(s.frames, m.opts.Sink), engine.Options{
		TickRate: cfg.TickRate,
		Logger:   m.opts.Logger,
		Vibrator: m.opts.Vibrator,
	})
	return s
}

// Init starts the first game.
func (m Model) Init() tea.Cmd {
	return m.session.start()
}

// start attaches input and runs the scheduler in a command goroutine.
func (s *session) start() tea.Cmd {
	s.agg.Attach(s.ctx, s.src)

	run := func() tea.Msg {
		sum, err := s.sched.Run(s.ctx)
		//nolint:errcheck // The channel source only stops on cancellation
		s.agg.Detach()
		s.frames.Close()
		return gameEndedMsg{session: s.id, summary: sum, err: err}
	}
	return tea.Batch(run, s.waitForFrame())
}

// waitForFrame returns a command that delivers the next frame.
func (s *session) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		f, ok := <-s.frames.Frames()
		if !ok {
			return nil
		}
		return frameMsg{session: s.id, frame: f}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// After the scheduler returns nothing drains the source.
		if evt, ok := MapMouse(msg); ok && m.summary == nil && m.session.agg.Attached() {
			m.session.src.Push(evt)
		}
		return m, nil

	case frameMsg:
		if msg.session != m.session.id {
			return m, nil
		}
		m.frame = msg.frame
		return m, m.session.waitForFrame()

	case gameEndedMsg:
		return m.handleGameEnded(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		if m.summary == nil {
			return m, nil
		}
		cfg := m.opts.Runtime
		cfg.Seed = time.Now().UnixNano()
		m.session.cancel()
		m.session = m.newSession(m.session.id+1, cfg)
		m.summary = nil
		m.err = nil
		m.frame = render.Frame{}
		return m, m.session.start()
	}

	return m, nil
}

// handleGameEnded records the result and saves the score once.
func (m Model) handleGameEnded(msg gameEndedMsg) (tea.Model, tea.Cmd) {
	if msg.session != m.session.id {
		return m, nil
	}

	if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
		m.err = msg.err
		m.opts.Logger.Error("game stopped", "error", msg.err)
	}

	sum := msg.summary
	m.summary = &sum

	if sum.Score > 0 && m.opts.Store != nil && msg.err == nil {
		_, err := m.opts.Store.SaveScore(m.session.game.ID(), storage.Result{
			Score: sum.Score,
			Level: sum.Level,
			Rows:  sum.Rows,
		})
		if err != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		}
	}
	return m, nil
}

// Summary returns the result of the last finished game, if any.
func (m Model) Summary() (engine.Summary, bool) {
	if m.summary == nil {
		return engine.Summary{}, false
	}
	return *m.summary, true
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.session.game.Title()
	if m.opts.Player != "" {
		title = fmt.Sprintf("%s · %s", title, m.opts.Player)
	}

	status := "playing"
	if m.summary != nil {
		status = fmt.Sprintf("game over: score %d, level %d, rows %d. press r to restart",
			m.summary.Score, m.summary.Level, m.summary.Rows)
	}

	parts := []string{
		titleStyle.Render(title),
		renderPanel(m.frame),
		statusStyle.Render(status),
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the preview in the local terminal and blocks until the user
// quits. It returns the last finished game's summary, if any.
func Run(opts Options) (engine.Summary, bool, error) {
	model, err := NewModel(opts)
	if err != nil {
		return engine.Summary{}, false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and wheel drive the game
	)

	final, err := p.Run()
	if err != nil {
		return engine.Summary{}, false, err
	}
	sum, ok := final.(Model).Summary()
	return sum, ok, nil
}
