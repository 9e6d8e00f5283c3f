package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

const (
	PlaceHolderText = "What do you do?"
	GameOverText    = "The game is over. Press Esc to leave."
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config             *config.Config
	store              storage.Storage
	log                *slog.Logger
	session            *session
	transcriptViewport viewport.Model
	metaViewport       viewport.Model
	textarea           textarea.Model
	ready              bool
	width              int
	height             int
	err                error
	loading            bool
	status             string

	// Scenario selection state
	showScenarioModal bool
	scenarios         []string
	scenarioMap       map[string]string
	selectedScenario  int
	loadingScenarios  bool

	// Quit confirmation state
	showQuitModal bool
}

type scenariosLoadedMsg struct {
	scenarios   []string
	scenarioMap map[string]string
	err         error
}

type sessionStartedMsg struct {
	session *session
	err     error
}

type copiedMsg struct {
	err error
}

var (
	transcriptPanelStyle = lipgloss.NewStyle().
				PaddingTop(2).
				PaddingBottom(1).
				PaddingLeft(3).
				PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// Lines the engine prints when the player is in danger.
var alertPrefixes = []string{
	"You are attacked by",
	"You have been hit",
	"You have been killed",
	"You are on the verge of death",
	"You are seriously injured",
	"GAME OVER",
}

func NewConsoleUI(cfg *config.Config, store storage.Storage, log *slog.Logger) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	transcriptVp := viewport.New(50, 20)
	transcriptVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:             cfg,
		store:              store,
		log:                log,
		textarea:           ta,
		transcriptViewport: transcriptVp,
		metaViewport:       metaVp,
		showScenarioModal:  true,
		loadingScenarios:   true,
	}
}

// wrapWidth is the column the transcript wraps at. TEXT_WIDTH wins when it
// fits in the panel.
func (m *ConsoleUI) wrapWidth() int {
	w := m.transcriptViewport.Width - 6
	if m.config != nil && m.config.TextWidth > 0 && m.config.TextWidth < w {
		w = m.config.TextWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// formatOutput wraps engine output and colours the lines that matter.
// The first line of every turn is the room name.
func formatOutput(text string, width int) string {
	wrapped := wordwrap.String(text, width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case i == 0:
			lines[i] = roomStyle.Render(line)
		case isAlert(trimmed):
			lines[i] = errorStyle.Render(line)
		default:
			lines[i] = narratorStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func isAlert(line string) bool {
	for _, p := range alertPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// writeTranscript rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeTranscript() {
	width := m.wrapWidth()

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	content.WriteString("Type commands below. Try \"help\" for a list.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	if m.session != nil {
		for _, ex := range m.session.history {
			if ex.input != "" {
				content.WriteString(userStyle.Render("> ") + wordwrap.String(ex.input, width-2) + "\n\n")
			}
			if ex.output != "" {
				content.WriteString(formatOutput(ex.output, width) + "\n\n")
			}
		}
	}

	if m.status != "" {
		content.WriteString(loadingStyle.Render(m.status) + "\n")
	}

	m.transcriptViewport.SetContent(content.String())
	m.transcriptViewport.GotoBottom()
}

func writeMetadata(s *session) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	content.WriteString("Game ID:\n")
	content.WriteString(s.engine.ID()[:8] + "...\n\n")

	content.WriteString("Scenario:\n")
	content.WriteString(s.name + "\n\n")

	content.WriteString("Room:\n")
	content.WriteString(s.engine.Current().Name() + "\n\n")

	p := s.engine.Player()
	content.WriteString("Health:\n")
	content.WriteString(fmt.Sprintf("%d/%d HP\n\n", p.HP(), p.MaxHP()))

	content.WriteString("Score:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", p.Score()))

	content.WriteString("Carrying:\n")
	items := p.Inventory().Items()
	if len(items) == 0 {
		content.WriteString("Nothing\n")
	}
	weapon, armed := p.Weapon()
	for _, it := range items {
		line := "• " + it.String()
		if armed && it == weapon {
			line += " (equipped)"
		}
		content.WriteString(line + "\n")
	}

	content.WriteString("\nCommands:\n")
	content.WriteString("• Esc: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+Y: Copy transcript\n")
	content.WriteString("• /help: Keys\n")

	return content.String()
}

func (m *ConsoleUI) resize() {
	transcriptWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - transcriptWidth - 6

	m.transcriptViewport.Width = transcriptWidth - 2
	m.transcriptViewport.Height = m.height - 5
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(transcriptWidth - 4)
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showScenarioModal {
		return m.loadScenarios()
	}
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	if m.showScenarioModal {
		return m.updateScenarioModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.transcriptViewport, vpCmd = m.transcriptViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.writeTranscript()
		if m.session != nil {
			m.metaViewport.SetContent(writeMetadata(m.session))
		}

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("Failed to copy transcript", "error", msg.err)
			m.status = "Could not copy the transcript: " + msg.err.Error()
		} else {
			m.status = "Transcript copied to the clipboard."
		}
		m.writeTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			return m, m.copyTranscript()
		case tea.KeyEnter:
			return m.submit()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.transcriptViewport, vpCmd = m.transcriptViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit sends the input line to the engine.
func (m ConsoleUI) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	if input == "" || m.session == nil {
		return m, nil
	}
	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}
	if m.session.over() {
		return m, nil
	}

	m.status = ""
	if !m.session.submit(input) {
		m.textarea.Placeholder = GameOverText
		m.textarea.Blur()
	}
	m.writeTranscript()
	m.metaViewport.SetContent(writeMetadata(m.session))
	return m, nil
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/help":
		m.status = "Keys: Enter sends a command, Ctrl+Y copies the transcript, " +
			"PgUp/PgDn scroll, Esc quits. Type \"help\" for game commands."
	case "/copy":
		return m, m.copyTranscript()
	default:
		m.status = "Unknown console command " + input + "."
	}
	m.writeTranscript()
	return m, nil
}

func (m ConsoleUI) copyTranscript() tea.Cmd {
	if m.session == nil {
		return nil
	}
	text := m.session.plain()
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m ConsoleUI) loadScenarios() tea.Cmd {
	return func() tea.Msg {
		scenarioMap, err := m.store.ListScenarios(context.Background())
		if err != nil {
			return scenariosLoadedMsg{err: err}
		}
		names := make([]string, 0, len(scenarioMap))
		for name := range scenarioMap {
			names = append(names, name)
		}
		sort.Strings(names)
		return scenariosLoadedMsg{names, scenarioMap, nil}
	}
}

func (m ConsoleUI) startSession(file string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.store.GetScenario(context.Background(), file)
		if err != nil {
			return sessionStartedMsg{nil, err}
		}
		sess, err := newSession(s, file, m.config.Seed, m.log)
		return sessionStartedMsg{sess, err}
	}
}

func (m ConsoleUI) updateScenarioModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case scenariosLoadedMsg:
		m.loadingScenarios = false
		if msg.err != nil {
			m.err = msg.err
		} else if len(msg.scenarios) == 0 {
			m.err = fmt.Errorf("no scenarios found in %s", m.config.ScenarioDir())
		} else {
			m.scenarios = msg.scenarios
			m.scenarioMap = msg.scenarioMap
			m.selectedScenario = m.preferredScenario()
		}

	case sessionStartedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Error("Failed to start game", "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session
		m.showScenarioModal = false
		if m.width > 0 && m.height > 0 {
			m.resize()
		}
		m.writeTranscript()
		m.metaViewport.SetContent(writeMetadata(m.session))
		m.textarea.Focus()
		m.ready = true
		return m, textarea.Blink

	case tea.KeyMsg:
		if m.loadingScenarios || m.loading {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		}
		if m.err != nil {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyUp:
			if m.selectedScenario > 0 {
				m.selectedScenario--
			}
		case tea.KeyDown:
			if m.selectedScenario < len(m.scenarios)-1 {
				m.selectedScenario++
			}
		case tea.KeyEnter:
			if len(m.scenarios) > 0 {
				name := m.scenarios[m.selectedScenario]
				m.loading = true
				return m, m.startSession(m.scenarioMap[name])
			}
		}
	}

	return m, nil
}

// preferredScenario is the index of the configured SCENARIO in the list, or 0.
func (m ConsoleUI) preferredScenario() int {
	for i, name := range m.scenarios {
		if m.scenarioMap[name] == m.config.Scenario {
			return i
		}
	}
	return 0
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.showScenarioModal {
			m.resize()
			m.writeTranscript()
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.showScenarioModal || m.session.over() {
					return m, nil
				}
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderScenarioModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingScenarios {
		content.WriteString(modalTitleStyle.Render("Loading Scenarios..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Reading the scenario library..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to start: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Creating Game..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Setting up your adventure..."))
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Scenario"))
		content.WriteString("\n\n")

		for i, name := range m.scenarios {
			if i == m.selectedScenario {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", name)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", name)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.showScenarioModal {
		return m.renderScenarioModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	transcriptWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - transcriptWidth - 6

	transcriptPanel := transcriptPanelStyle.Width(transcriptWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.transcriptViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", transcriptWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, transcriptPanel, metaPanel)
}
