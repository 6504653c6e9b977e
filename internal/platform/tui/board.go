package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

// boardLimit is how many runs the leaderboard shows.
const boardLimit = 10

// boardKeyMap defines the key bindings shown while the leaderboard is up.
type boardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Close}}
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "back to game"),
		),
	}
}

// boardModel is the leaderboard overlay, reachable from the pause and game
// over screens. It lists the best runs recorded by this process.
type boardModel struct {
	runs   []storage.Run
	table  table.Model
	help   help.Model
	keys   boardKeyMap
	width  int
	height int
}

func newBoardModel(width, height int) boardModel {
	h := help.New()
	h.ShowAll = false

	b := boardModel{
		keys:   defaultBoardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *boardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(b.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload pulls the current top runs. A nil store leaves the board empty.
func (b *boardModel) reload(store *storage.Store) {
	b.runs = nil
	if store != nil {
		if runs, err := store.TopRuns(boardLimit); err == nil {
			b.runs = runs
		}
	}
	b.updateTableRows()
}

// updateTableRows updates the table with the current runs.
func (b *boardModel) updateTableRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			r.RecordedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
}

func (b *boardModel) resize(width, height int) {
	b.width = width
	b.height = height
	b.help.Width = width
	b.table = b.createTable()
	b.updateTableRows()
}

// update forwards messages to the table for scrolling.
func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// view renders the leaderboard.
func (b boardModel) view() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	sb.WriteString(titleStyle.Render(centerText("BEST RUNS", b.width)))
	sb.WriteString("\n\n")

	if len(b.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		sb.WriteString(emptyStyle.Render("No runs recorded yet.\nOutrun the yeti to get on the board!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		sb.WriteString(tableStyle.Render(b.table.View()))
	}

	// Help bar
	sb.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
