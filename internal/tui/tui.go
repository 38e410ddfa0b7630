package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"kanagawa/internal/engine"
	"kanagawa/internal/lobby"
)

type sessionState int

const (
	stateSeating sessionState = iota
	statePlaying
	stateGameOver
)

const maxLogLines = 8

type model struct {
	state     sessionState
	game      *engine.Game
	lobby     *lobby.Lobby
	log       *zap.Logger
	textInput textinput.Model
	gameLog   []string
	status    string
	penMode   bool
	width     int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(0, 1).
			Width(26)

	closedStyle = columnStyle.
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Foreground(lipgloss.Color("#555555"))

	draftStyle = columnStyle.
			BorderForeground(lipgloss.Color("#FFA500"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2)
)

func newModel(g *engine.Game, log *zap.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Player name"
	ti.Focus()
	ti.CharLimit = 24
	ti.Width = 30

	return model{
		state:     stateSeating,
		game:      g,
		lobby:     lobby.NewLobby(g.Config),
		log:       log,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateSeating:
			return m.updateSeating(msg)
		case statePlaying:
			return m.updatePlaying(msg), nil
		case stateGameOver:
			if msg.String() == "q" || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) updateSeating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.status = ""
		if err := m.lobby.Join(m.textInput.Value()); err != nil {
			m.status = err.Error()
		}
		m.textInput.Reset()
		return m, nil

	case tea.KeyCtrlS:
		if _, err := m.lobby.Start(m.game); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.state = statePlaying
		m.textInput.Blur()
		m.record(m.game.DrainEvents())
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) updatePlaying(msg tea.KeyMsg) model {
	key := msg.String()
	if m.penMode {
		m.penMode = false
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m.togglePen(int(key[0] - '1'))
		}
		m.status = "pen move cancelled"
		return m
	}

	if m.game.Draft() != nil {
		switch key {
		case "w":
			return m.apply(engine.Action{Type: engine.ActionDecide, Decision: engine.AssignToPersonalWorkUnpenned})
		case "p":
			return m.apply(engine.Action{Type: engine.ActionDecide, Decision: engine.AssignToPersonalWorkPenned})
		case "u":
			return m.apply(engine.Action{Type: engine.ActionDecide, Decision: engine.AssignToUV})
		case "esc":
			return m.apply(engine.Action{Type: engine.ActionDecide, Decision: engine.Cancel})
		}
		return m
	}

	switch key {
	case "1", "2", "3", "4":
		return m.apply(engine.Action{Type: engine.ActionTakeColumn, Column: int(key[0] - '1')})
	case "a":
		return m.apply(engine.Action{Type: engine.ActionAcceptDiploma})
	case "r":
		return m.apply(engine.Action{Type: engine.ActionRefuseDiploma})
	case "t":
		m.penMode = true
		m.status = "pen: press the number of a personal work"
	case "n":
		return m.apply(engine.Action{Type: engine.ActionEndTurn})
	}
	return m
}

func (m model) togglePen(i int) model {
	works := m.game.CurrentPlayer().Inventory.PersonalWorks
	typ := engine.ActionPlacePen
	if i < len(works) && works[i].HasPen {
		typ = engine.ActionLiftPen
	}
	return m.apply(engine.Action{Type: typ, Index: i})
}

// apply sends a to the engine on behalf of the current player.
func (m model) apply(a engine.Action) model {
	p := m.game.CurrentPlayer()
	events, err := m.game.Apply(p.ID, a)
	if err != nil {
		m.log.Debug("action rejected",
			zap.String("player", p.Name),
			zap.String("action", string(a.Type)),
			zap.Error(err),
		)
		m.status = err.Error()
		return m
	}
	m.status = ""
	m.record(events)
	if m.game.Phase == engine.PhaseGameOver {
		m.state = stateGameOver
	}
	return m
}

func (m *model) record(events []engine.Event) {
	for _, e := range events {
		m.gameLog = append(m.gameLog, describe(e))
	}
	if n := len(m.gameLog); n > maxLogLines {
		m.gameLog = m.gameLog[n-maxLogLines:]
	}
}

func describe(e engine.Event) string {
	data, _ := e.Data.(map[string]interface{})
	switch e.Type {
	case engine.EventGameStarted:
		return fmt.Sprintf("Game started, %s opens.", e.Player)
	case engine.EventCardsDealt:
		return fmt.Sprintf("%v cards dealt.", data["cards"])
	case engine.EventDeckReloaded:
		return "Draw pile reshuffled from the catalog."
	case engine.EventDraftStarted:
		return fmt.Sprintf("%s drafts column %v.", e.Player, data["column"].(int)+1)
	case engine.EventCardAssigned:
		return fmt.Sprintf("%s puts %v on %v.", e.Player, data["card"], data["decision"])
	case engine.EventDraftCancelled:
		return fmt.Sprintf("%s puts the column back.", e.Player)
	case engine.EventColumnTaken:
		return fmt.Sprintf("%s took column %v.", e.Player, data["column"].(int)+1)
	case engine.EventDiplomaTaken:
		return fmt.Sprintf("%s earns a %v diploma (%v credits).", e.Player, data["group"], data["credits"])
	case engine.EventDiplomaRefused:
		return fmt.Sprintf("%s turns down a %v diploma.", e.Player, data["group"])
	case engine.EventPenMoved:
		return fmt.Sprintf("%s moves a pen, %v left.", e.Player, data["pens"])
	case engine.EventTurnPassed:
		return fmt.Sprintf("%s passes.", e.Player)
	case engine.EventTurnStarted:
		return fmt.Sprintf("%s to play.", e.Player)
	case engine.EventRoundStarted:
		return fmt.Sprintf("Round %v, %s starts.", data["round"], e.Player)
	case engine.EventGameOver:
		return "Game over."
	}
	return string(e.Type)
}

func (m model) View() string {
	var s string
	switch m.state {
	case stateSeating:
		s = m.viewSeating()
	case statePlaying:
		s = m.viewPlaying()
	case stateGameOver:
		s = m.viewGameOver()
	}
	if m.status != "" {
		s += "\n" + errorStyle.Render(m.status)
	}
	return "\n" + s + "\n"
}

func (m model) viewSeating() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("KANAGAWA") + "\n\n")
	for i, name := range m.lobby.GetPlayers() {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	b.WriteString("\n" + m.textInput.View() + "\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"enter: seat player (%d to %d)  ctrl+s: start  ctrl+c: quit",
		m.lobby.MinPlayers, m.lobby.MaxPlayers)))
	return b.String()
}

func (m model) viewPlaying() string {
	g := m.game
	p := g.CurrentPlayer()
	header := titleStyle.Render(fmt.Sprintf("Round %d/%d", g.RoundCount, g.Config.MaxRounds)) +
		fmt.Sprintf("  %s to play", p.Name)

	board := lipgloss.JoinHorizontal(lipgloss.Top, m.renderColumns()...)
	side := panelStyle.Render(m.renderInventory(p) + "\n" + strings.Join(m.gameLog, "\n"))

	help := "1-4: take column  a/r: accept/refuse diploma  t+n: toggle pen  n: end turn"
	if g.Draft() != nil {
		help = "w: personal work  p: personal work with pen  u: UV  esc: put the column back"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, board, side),
		helpStyle.Render(help),
	)
}

func (m model) renderColumns() []string {
	draft := m.game.Draft()
	out := make([]string, 0, engine.BoardColumns)
	for i := range engine.BoardColumns {
		cards, open := m.game.Round.Column(i)
		if !open {
			out = append(out, closedStyle.Render(fmt.Sprintf("[%d] closed", i+1)))
			continue
		}
		style := columnStyle
		var current *engine.Card
		if draft != nil && draft.Column() == i {
			style = draftStyle
			current = draft.Current()
		}
		lines := []string{fmt.Sprintf("[%d]", i+1)}
		for _, c := range cards {
			marker := "  "
			if c == current {
				marker = "> "
			}
			lines = append(lines,
				marker+c.UV.String(),
				"  "+c.PersonalWork.String(),
			)
		}
		out = append(out, style.Render(strings.Join(lines, "\n")))
	}
	return out
}

func (m model) renderInventory(p *engine.Player) string {
	inv := p.Inventory
	var b strings.Builder
	fmt.Fprintf(&b, "%s  credits %d  pens %d", p.Name, inv.Credits, inv.PenCount)
	if inv.HasProfessor {
		b.WriteString("  professor")
	}
	b.WriteString("\n")
	for i, pw := range inv.PersonalWorks {
		fmt.Fprintf(&b, "  %d %s\n", i+1, pw)
	}
	uvs := make([]string, len(inv.UVs))
	for i, uv := range inv.UVs {
		uvs[i] = uv.Code
	}
	fmt.Fprintf(&b, "UVs (%d): %s\n", len(uvs), strings.Join(uvs, " "))
	for _, d := range p.AvailableDiplomas() {
		fmt.Fprintf(&b, "diploma available: %s, %d credits\n", d.Group.Name, d.Credits)
	}
	return b.String()
}

func (m model) viewGameOver() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FINAL RANKING") + "\n\n")
	for _, s := range m.game.Standings() {
		fmt.Fprintf(&b, "  %d. %-12s %3d credits  %2d UVs  %d diplomas\n",
			s.Rank, s.Name, s.Credits, s.UVs, s.Diplomas)
	}
	b.WriteString("\n" + helpStyle.Render("q: quit"))
	return b.String()
}

// Run seats the players and plays g to the end in the terminal.
func Run(g *engine.Game, log *zap.Logger) error {
	p := tea.NewProgram(newModel(g, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
