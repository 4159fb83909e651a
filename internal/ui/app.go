package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/yukemuri/internal/game"
	"github.com/appengine-ltd/yukemuri/internal/history"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	ResortName  string
	GameConfig  game.Config
	HistoryPath string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newMenuModel(a.cfg)
	if err != nil {
		return err
	}
	defer m.closeArchive()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Styles (steam bath blues) ---
var (
	blue       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	brightBlue = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimBlue    = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
	warnRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// --- Menu model ---

type screen int

const (
	screenMenu screen = iota
	screenRun
	screenHelp
	screenHistory
)

type menuItem int

const (
	itemStart menuItem = iota
	itemHistory
	itemQuit
)

type menuModel struct {
	cfg     AppConfig
	idx     int
	screen  screen
	archive *history.Archive

	resort        *game.Resort
	pending       []game.Action
	pendingLabels []string
	runInput      string
	runMessages   []string

	historyRows []history.DaySummary

	status string
}

func newMenuModel(cfg AppConfig) (menuModel, error) {
	m := menuModel{cfg: cfg, idx: 0, screen: screenMenu}
	if cfg.HistoryPath != "" {
		archive, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return menuModel{}, err
		}
		m.archive = archive
	}
	return m, nil
}

func (m menuModel) closeArchive() {
	if m.archive != nil {
		_ = m.archive.Close()
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenRun:
		return m.updateRun(key)
	case screenHelp, screenHistory:
		// Any key returns to the previous context.
		if m.resort != nil {
			m.screen = screenRun
		} else {
			m.screen = screenMenu
		}
		return m, nil
	default:
		return m.updateMenu(key)
	}
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + 2) % 3
		return m, nil
	case "down", "j":
		m.idx = (m.idx + 1) % 3
		return m, nil
	case "enter":
		switch menuItem(m.idx) {
		case itemStart:
			return m.startRun()
		case itemHistory:
			return m.openHistory()
		case itemQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) startRun() (tea.Model, tea.Cmd) {
	resort, err := game.NewResort(m.cfg.ResortName, m.cfg.GameConfig)
	if err != nil {
		m.status = fmt.Sprintf("Could not open the resort: %v", err)
		return m, nil
	}
	m.resort = resort
	m.pending = nil
	m.pendingLabels = nil
	m.runInput = ""
	m.runMessages = []string{
		fmt.Sprintf("%s opens its doors with %s in the bank.", resort.Name, yen(resort.Cash)),
		`Type commands at the prompt, "next" ends the day, "help" lists commands.`,
	}
	m.screen = screenRun
	m.status = ""
	return m, nil
}

func (m menuModel) openHistory() (tea.Model, tea.Cmd) {
	if m.archive == nil {
		m.status = "History archive disabled (no archive path)."
		return m, nil
	}
	rows, err := m.archive.RecentDays(14)
	if err != nil {
		m.status = fmt.Sprintf("Could not read history: %v", err)
		return m, nil
	}
	m.historyRows = rows
	m.screen = screenHistory
	m.status = ""
	return m, nil
}

func (m menuModel) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submitRunInput()
	case tea.KeyBackspace:
		if len(m.runInput) > 0 {
			m.runInput = m.runInput[:len(m.runInput)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.runInput += " "
		return m, nil
	case tea.KeyRunes:
		m.runInput += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m menuModel) View() string {
	title := brightBlue.Render("YUKEMURI") + dimBlue.Render("  onsen resort simulator")
	ver := dimBlue.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))

	out := title + "\n" + ver + "\n"
	out += border.Render("----------------------------------------") + "\n\n"
	out += m.bodyText()
	out += "\n" + border.Render("----------------------------------------") + "\n"
	out += dimBlue.Render(m.footerText()) + "\n"
	if m.status != "" {
		out += "\n" + warnRed.Render(m.status) + "\n"
	}
	return out
}

func (m menuModel) bodyText() string {
	switch m.screen {
	case screenRun:
		return m.runBody()
	case screenHelp:
		return commandLibrary()
	case screenHistory:
		return m.historyBody()
	}

	items := []string{
		"Open the resort",
		"Past seasons",
		"Quit",
	}
	out := ""
	for i, it := range items {
		cursor := "  "
		line := blue.Render(it)
		if i == m.idx {
			cursor = "> "
			line = brightBlue.Render(it)
		}
		out += cursor + line + "\n"
	}
	return out
}

func (m menuModel) footerText() string {
	switch m.screen {
	case screenRun:
		return `Enter to submit, "next" to end the day, ctrl+c to quit`
	case screenHelp, screenHistory:
		return "any key to go back"
	}
	return "↑/↓ to move, Enter to select, q to quit"
}
