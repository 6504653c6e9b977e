package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ski"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

// helpRows is the screen space reserved under the slope for the control bar.
const helpRows = 1

// Model is the Bubble Tea model for one ski session, local or SSH.
type Model struct {
	game   *ski.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	player string

	keys  KeyMap
	help  help.Model
	board boardModel

	gameState core.GameState
	showBoard bool

	// ticking reports whether a tick message is in flight. The loop parks
	// itself while the game is paused or over, so resume and restart have
	// to arm it again without ever double-arming.
	ticking bool

	// sessionBest covers play without a store; with one, the store wins.
	sessionBest int

	runSaved bool
	quitting bool
}

// NewModel creates a session model around an already constructed game.
func NewModel(game *ski.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = "skier"
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		store:   store,
		config:  cfg,
		player:  player,
		keys:    DefaultKeyMap(),
		help:    h,
		board:   newBoardModel(cfg.ScreenW, cfg.ScreenH),
		ticking: true, // Init arms the first tick
	}
}

func sceneHeight(screenH int) int {
	return core.Max(screenH-helpRows, 1)
}

// gameConfig is the runtime config handed to the game: the terminal size
// minus the row the help bar occupies.
func (m Model) gameConfig() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = sceneHeight(rt.ScreenH)
	return rt
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.game.SetBest(m.storeBest())
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

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showBoard {
		if key.Matches(msg, m.keys.Board) || msg.String() == "esc" {
			m.showBoard = false
			return m, nil
		}
		// The table owns navigation while the leaderboard is up.
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Board) {
		// The board lives behind the pause screen, so the run underneath
		// is always frozen while it is open.
		if m.gameState.Paused || m.gameState.GameOver {
			m.showBoard = true
			m.board.reload(m.store)
		}
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if !m.game.HandleInput(action) {
		return m, nil
	}
	m.gameState = m.game.State()
	if action == core.ActionReset {
		m.runSaved = false
	}

	// Resuming or restarting brings the parked tick loop back.
	if !m.ticking && !m.gameState.Paused && !m.gameState.GameOver {
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize processes window resize events. The run keeps going; only
// the window onto the slope changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.game.Resize(msg.Width, sceneHeight(msg.Height))
	m.board.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Park the loop while nothing can move; input arms it again.
	if m.gameState.Paused || m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run and refreshes the best score shown in
// the HUD.
func (m *Model) saveRun() {
	score := m.gameState.Score
	if score <= 0 {
		return
	}
	if score > m.sessionBest {
		m.sessionBest = score
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, the run is over either way
		m.store.SaveRun(m.player, score)
		if best := m.storeBest(); best > m.sessionBest {
			m.sessionBest = best
		}
	}
	m.game.SetBest(m.sessionBest)
}

// storeBest is the highest score on record, 0 without a store. Under the
// SSH server the store is shared, so this may come from another session.
func (m Model) storeBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.Best()
	if err != nil {
		return 0
	}
	return best
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ski", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ski_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.view()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(game *ski.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
