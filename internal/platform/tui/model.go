package tui

import (
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

//go:generate go tool mockgen -destination=mock_round_saver_test.go -package=tui . RoundSaver

// RoundSaver persists finished rounds. *storage.Store implements it.
type RoundSaver interface {
	SaveRound(r storage.Round) (string, error)
}

// configMsg carries a reloaded config from the file watcher.
type configMsg struct {
	cfg config.BrickerConfig
}

// Option configures a Model.
type Option func(*Model)

// WithSaver stores every finished round.
func WithSaver(s RoundSaver) Option {
	return func(m *Model) { m.saver = s }
}

// WithWatcher applies config reloads from w to the next round. A non-nil
// adjust runs on every reloaded config first; a config it rejects is dropped.
func WithWatcher(w *config.Watcher, adjust func(*config.BrickerConfig) error) Option {
	return func(m *Model) {
		m.watcher = w
		m.adjust = adjust
	}
}

// WithBell rings the terminal bell on w when the ball bounces.
func WithBell(w io.Writer) Option {
	return func(m *Model) { m.bell = w }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer names the player in saved rounds.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// Model is the Bubble Tea model that runs one Bricker game.
type Model struct {
	game    *bricker.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    *KeyMapper
	held    *HeldKeys
	saver   RoundSaver
	watcher *config.Watcher
	adjust  func(*config.BrickerConfig) error
	bell    io.Writer
	logger  *log.Logger
	player  string

	gameState core.GameState
	saved     int // Rounds written to the saver
	quitting  bool
	done      bool // Player declined another round
}

// NewModel creates a model for game. The game is reset when the model starts.
func NewModel(game *bricker.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	hold := time.Duration(game.Config().Input.HoldMs) * time.Millisecond

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(hold),
		logger: log.New(io.Discard),
		player: "local",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForConfig blocks until the watcher publishes a config.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.Updates()
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		cfg := msg.cfg
		if m.adjust != nil {
			if err := m.adjust(&cfg); err != nil {
				m.logger.Warn("reloaded config rejected", "path", m.watcher.Path(), "error", err)
				return m, waitForConfig(m.watcher)
			}
		}
		m.game.SetConfig(cfg)
		m.logger.Info("config reloaded, applies to the next round", "path", m.watcher.Path())
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action, time.Now())
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.held.Frame(now))
	m.gameState = result.State

	if result.Outcome != core.OutcomeNone {
		m.saveRound()
		// Keys held at the end of a round must not answer the dialog.
		m.held.Release()
	}
	if n := m.game.TakeSounds(); n > 0 && m.bell != nil {
		//nolint:errcheck // The bell is cosmetic
		io.WriteString(m.bell, strings.Repeat("\a", n))
	}

	if m.gameState.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveRound() {
	if m.saver == nil {
		return
	}
	stats := m.game.Stats()
	id, err := m.saver.SaveRound(roundFromStats(m.player, stats))
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
		return
	}
	m.saved++
	m.logger.Debug("round saved", "id", id, "score", stats.Score, "outcome", stats.Outcome)
}

func roundFromStats(player string, s bricker.RoundStats) storage.Round {
	return storage.Round{
		Player:          player,
		Outcome:         s.Outcome.String(),
		Score:           s.Score,
		BricksDestroyed: s.BricksDestroyed,
		BricksTotal:     s.BricksTotal,
		LivesLeft:       s.LivesLeft,
		Ticks:           s.Ticks,
		Seed:            s.Seed,
		Layout:          s.Layout,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the player declined another round.
func (m Model) Done() bool { return m.done }

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// State returns the game state after the last tick.
func (m Model) State() core.GameState { return m.gameState }

// Run starts a full-screen Bubble Tea program for game.
func Run(game *bricker.Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(NewModel(game, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
