package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// holdWindow is how long a held action stays active after its last key
// event. Terminals report repeats, never releases, so it must span the
// keyboard auto-repeat delay.
const holdWindow = 250 * time.Millisecond

// SoundPlayer consumes simulation events.
type SoundPlayer interface {
	Handle(events []asteroids.Event)
	SetMuted(muted bool)
	Muted() bool
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Logger *log.Logger
	Sound  SoundPlayer
}

// Model is the Bubble Tea model for running the asteroids game.
type Model struct {
	game      *asteroids.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	sound     SoundPlayer
	logger    *log.Logger
	pressed   core.InputFrame     // edge actions since the last tick
	held      map[core.Action]int // held action -> last tick it stays active
	holdTicks int
	tick      int
	width     int
	height    int
	gameState core.GameState
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the game. cfg's screen size is
// the whole terminal; one row is kept for the key help.
func NewModel(game *asteroids.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      help.New(),
		sound:     opts.Sound,
		logger:    logger,
		pressed:   core.NewInputFrame(),
		held:      make(map[core.Action]int),
		holdTicks: max(1, int(time.Duration(cfg.TickRate)*holdWindow/time.Second)),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.playfieldRows())
	m.config.ScreenH = m.playfieldRows()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.keys.IsHelp(msg):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case m.keys.IsMute(msg):
		if m.sound != nil {
			m.sound.SetMuted(!m.sound.Muted())
			m.logger.Info("sound toggled", "muted", m.sound.Muted())
		}
	case isHeld(action):
		m.held[action] = m.tick + m.holdTicks
		delete(m.held, opposite(action))
	case action != core.ActionNone:
		m.pressed.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step with the current input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.game.Step(m.frame())
	if err != nil {
		m.err = err
		m.logger.Error("simulation failed", "err", err)
		m.quitting = true
		return m, tea.Quit
	}

	if m.sound != nil && len(res.Events) > 0 {
		m.sound.Handle(res.Events)
	}
	m.gameState = m.game.State()
	m.pressed.Clear()
	m.tick++

	return m, tickCmd(m.config.TickRate)
}

// frame builds this tick's input: held actions still inside their window
// plus the edge actions pressed since the last tick.
func (m Model) frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range m.held {
		if m.tick < until {
			f.Set(a)
		} else {
			delete(m.held, a)
		}
	}
	for a, on := range m.pressed.Actions {
		if on {
			f.Set(a)
		}
	}
	return f
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) playfieldRows() int {
	return max(m.height-m.helpRows(), 1)
}

// layout fits the playfield to the terminal without restarting the game.
func (m *Model) layout() {
	rows := m.playfieldRows()
	m.config.ScreenW, m.config.ScreenH = m.width, rows
	m.screen.Resize(m.width, rows)
	m.help.Width = m.width
	m.game.Resize(m.width, rows)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits,
// ctx is cancelled or the simulation fails.
func Run(ctx context.Context, game *asteroids.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
