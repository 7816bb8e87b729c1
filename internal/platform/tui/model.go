package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/game"
	"github.com/vovakirdan/klokkia/internal/storage"
)

const (
	footerLines = 3 // answer box, feedback, help
	holdWindow  = 400 * time.Millisecond
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Game       game.Options
	Runtime    core.RuntimeConfig
	Store      *storage.Store // optional
	Player     string
	Mode       string // terminal or ssh
	Difficulty string
	Logger     *log.Logger        // optional
	Renderer   *lipgloss.Renderer // optional; SSH sessions pass their own
}

// Model is the Bubble Tea model for a klokkia session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger

	player     string
	mode       string
	difficulty string

	palette Palette
	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model
	input   textinput.Model
	held    heldKeys

	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current session has been recorded
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(opts.Game)
	g.Reset(cfg)

	keys := DefaultKeyMap()
	input := textinput.New()
	input.Prompt = "antwoord> "
	input.Placeholder = "bijvoorbeeld: kwart over drie"
	input.CharLimit = 64
	input.Width = max(cfg.ScreenW-12, 10)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 0)),
		store:      opts.Store,
		config:     cfg,
		logger:     logger,
		player:     opts.Player,
		mode:       opts.Mode,
		difficulty: opts.Difficulty,
		palette:    NewPalette(opts.Renderer),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		input:      input,
		held:       heldKeys{},
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	typing := m.input.Focused()
	action, isQuit := m.mapper.MapKey(msg, typing)
	if isQuit {
		m.quitting = true
		m.saveResult()
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held.press(action, m.holdTicks())
	case core.ActionNone:
		if typing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) holdTicks() int {
	return max(1, int(holdWindow*time.Duration(m.config.TickRate)/time.Second))
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 0))
	m.game.Resize(msg.Width, max(msg.Height-footerLines, 0))
	m.help.Width = msg.Width
	m.input.Width = max(msg.Width-12, 10)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	m.held.apply(&m.inputFrame)
	submitting := m.inputFrame.Has(core.ActionSubmit)
	if submitting {
		m.inputFrame.Answer = m.input.Value()
	}
	accepted := m.game.AcceptsAnswer()
	prev := m.gameState.Phase

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if submitting && accepted {
		m.input.Reset()
	}
	if prev != core.PhasePlaying && m.gameState.Phase == core.PhasePlaying {
		m.scoreSaved = false
		m.held.release()
	}

	// The answer box follows the active challenge.
	switch open := m.game.ChallengeOpen() && m.gameState.Playing(); {
	case open && !m.input.Focused():
		cmds = append(cmds, m.input.Focus())
	case !open && m.input.Focused():
		m.input.Blur()
		m.input.Reset()
	}

	// Record the session once it is won
	if m.gameState.Phase == core.PhaseWon {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// saveResult records the session in the leaderboard, at most once.
// Sessions that never started are not recorded.
func (m *Model) saveResult() {
	if m.store == nil || m.scoreSaved {
		return
	}
	res := m.game.Result()
	if res.Duration == 0 {
		return
	}
	rec := storage.RecordFromResult(m.player, m.mode, m.difficulty, res)
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Error("saving session", "err", err)
		return
	}
	m.scoreSaved = true
	m.logger.Info("session recorded", "player", m.player, "score", res.Score, "won", res.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".klokkia", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("klokkia_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.palette.RenderScreen(m.screen))
	b.WriteString("\n")

	if m.input.Focused() {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.palette.Dim("Loop naar een klok om te antwoorden"))
	}
	b.WriteString("\n")

	if fb, ok := m.game.Feedback(); ok {
		b.WriteString(m.palette.Feedback(fb))
	}
	b.WriteString("\n")

	b.WriteString(m.palette.Dim(m.help.View(m.keys)))
	return b.String()
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
