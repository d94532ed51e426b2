package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/statutegraph/statutegraph/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// progressBoard - Interactive encoding progress
// =============================================================================

// progressBoard is the bubbletea model for the encoding progress board.
// It shows the sections ready to encode; marking one encoded recomputes the
// ready list, so newly unblocked sections appear immediately.
type progressBoard struct {
	graph  *graph.Graph
	ready  []string
	cursor int
	offset int
	height int
	marked int
}

// newProgressBoard creates a board over the graph's current progress state.
func newProgressBoard(g *graph.Graph) progressBoard {
	return progressBoard{
		graph:  g,
		ready:  g.Ready(),
		height: 15,
	}
}

func (m progressBoard) Init() tea.Cmd {
	return nil
}

func (m progressBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.ready)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			if len(m.ready) == 0 {
				return m, nil
			}
			if err := m.graph.MarkEncoded(m.ready[m.cursor]); err == nil {
				m.marked++
			}
			m.ready = m.graph.Ready()
			if m.cursor >= len(m.ready) && m.cursor > 0 {
				m.cursor = len(m.ready) - 1
			}
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
			if len(m.ready) == 0 {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 12
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m progressBoard) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Encoding Progress"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ mark encoded  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.summaryTable())
	b.WriteString("\n\n")

	if len(m.ready) == 0 {
		b.WriteString(StyleSuccess.Render("Nothing left to encode."))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.ready) {
		end = len(m.ready)
	}

	for i := m.offset; i < end; i++ {
		path := m.ready[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		heading := ""
		if n, ok := m.graph.Node(path); ok && n.Heading != "" {
			heading = "  " + listDimStyle.Render(n.Heading)
		}

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(cursor+path) + heading)
		} else {
			b.WriteString(listNormalStyle.Render(cursor+path) + heading)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.ready))))

	return b.String()
}

// summaryTable renders the running progress counters.
func (m progressBoard) summaryTable() string {
	p := m.graph.Progress()

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Total", "Encoded", "Ready", "Blocked").
		Rows([]string{
			fmt.Sprintf("%d", p.Total),
			fmt.Sprintf("%d", p.Encoded),
			fmt.Sprintf("%d", p.Ready),
			fmt.Sprintf("%d", p.Blocked),
		}).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return StyleNumber
		}).
		Render()
}
