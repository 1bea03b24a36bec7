package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// statusRows is the number of terminal rows below the arena.
const statusRows = 1

// RunStore records finished runs.
type RunStore interface {
	SaveRun(r storage.Run) (string, error)
	TopRuns(limit int) ([]storage.Run, error)
}

// SoundPlayer reacts to game events with sound.
type SoundPlayer interface {
	HandleEvents(events []runner.Event)
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Tuning  config.RunnerConfig
	Profile *storage.Profile // nil keeps everything in memory
	Runs    RunStore         // optional
	Sound   SoundPlayer      // optional
	Logger  *log.Logger
}

type screenID int

const (
	screenMenu screenID = iota
	screenGame
	screenSettings
	screenStats
	screenAchievements
	screenHelp
	screenQuit
)

// Model is the Bubble Tea model for a Neon Runner session.
type Model struct {
	opts   Options
	logger *log.Logger

	game       *runner.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hud        *hud

	current        screenID
	menuCursor     int
	settingsCursor int
	settings       config.Settings
	confirmReset   bool

	gameKeys   GameKeyMap
	menuKeys   MenuKeyMap
	help       help.Model
	statsTable table.Model
	runsTable  table.Model
	achTable   table.Model

	width, height int
	quitting      bool
}

// NewModel creates a model showing the main menu.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Tuning.Arena.Width == 0 {
		opts.Tuning = config.DefaultRunnerConfig()
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	settings := config.DefaultSettings()
	var stats runner.Stats
	unlocked := make([]bool, len(runner.Achievements))
	if opts.Profile != nil {
		settings = opts.Profile.LoadSettings()
		stats = opts.Profile.LoadStats()
		unlocked = opts.Profile.LoadAchievements()
	}

	gameOpts := []runner.Option{
		runner.WithConfig(opts.Tuning),
		runner.WithSettings(settings),
		runner.WithProgress(stats, unlocked),
		runner.WithLogger(logger),
	}
	if opts.Profile != nil {
		gameOpts = append(gameOpts, runner.WithSaver(opts.Profile))
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:       opts,
		logger:     logger,
		game:       runner.New(cfg, gameOpts...),
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusRows)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hud:        ptr(newHUD()),
		settings:   settings,
		gameKeys:   DefaultGameKeyMap(),
		menuKeys:   DefaultMenuKeyMap(),
		help:       h,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.rebuildTables()
	return m
}

func ptr[T any](v T) *T {
	return &v
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case tea.MouseMsg:
		if m.current == screenGame {
			MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.current {
		case screenGame:
			return m.handleGameKey(msg)
		case screenSettings:
			return m.handleSettingsKey(msg)
		case screenStats:
			return m.handleStatsKey(msg)
		case screenAchievements, screenHelp:
			return m.handleInfoKey(msg)
		default:
			return m.handleMenuKey(msg)
		}
	}

	return m, nil
}

// handleResize resizes the arena. World coordinates are independent of
// the terminal size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-statusRows))
	m.help.Width = msg.Width
	m.rebuildTables()
	return m, nil
}

// handleGameKey maps keys to actions for the next tick.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gameKeys.MapKeyToFrame(msg, &m.inputFrame) == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation while the game screen is up.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.current != screenGame {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.handleEvents(result.Events)

	if result.State.Phase == core.PhaseMenu {
		m.enterMenu()
	}

	m.hud.update(m.game.Snapshot(), m.screen.Width(), m.config.FrameDuration())
	return m, tickCmd(m.config.TickRate)
}

// handleEvents plays sounds and records finished runs.
func (m *Model) handleEvents(events []runner.Event) {
	if len(events) == 0 {
		return
	}
	if m.opts.Sound != nil {
		m.opts.Sound.HandleEvents(events)
	}
	for _, e := range events {
		over, ok := e.(runner.GameOverEvent)
		if !ok {
			continue
		}
		m.recordRun(over)
	}
}

func (m *Model) recordRun(over runner.GameOverEvent) {
	if m.opts.Runs == nil || over.Score <= 0 {
		return
	}
	id, err := m.opts.Runs.SaveRun(storage.Run{
		Score:      over.Score,
		Level:      over.Level,
		MaxCombo:   over.MaxCombo,
		Duration:   over.Duration,
		Difficulty: string(over.Difficulty),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "score", over.Score)
}

// startGame switches to the arena and begins a run.
func (m *Model) startGame() {
	m.current = screenGame
	m.inputFrame.Clear()
	m.game.QuitToMenu()
	m.game.Start()
}

// enterMenu returns to the main menu, abandoning any run in progress.
func (m *Model) enterMenu() {
	m.game.QuitToMenu()
	m.current = screenMenu
	m.confirmReset = false
	m.rebuildTables()
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.viewGame()
	case screenSettings:
		return m.viewSettings()
	case screenStats:
		return m.viewStats()
	case screenAchievements:
		return m.viewAchievements()
	case screenHelp:
		return m.viewHelp()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewGame() string {
	snap := m.game.Snapshot()
	m.game.Render(m.screen)
	m.hud.drawPopup(m.screen, snap)
	return RenderScreen(m.screen) + "\n" + m.hud.statusLine(snap, m.opts.Tuning.PowerUps)
}

// Game returns the simulation driven by the model.
func (m Model) Game() *runner.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
