package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/statutegraph/statutegraph/pkg/graph"
)

// boardGraph builds a three-section chain: 32 cites 1, 151 cites 32.
func boardGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("us/statute/26/32", "us/statute/26/1", graph.Ref{Kind: graph.RefInternalSection})
	g.AddEdge("us/statute/26/151", "us/statute/26/32", graph.Ref{Kind: graph.RefInternalSection})
	return g
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestProgressBoardNavigation(t *testing.T) {
	g := graph.New()
	for _, p := range []string{"us/statute/26/1", "us/statute/26/2", "us/statute/26/3"} {
		g.AddNode(graph.Node{Path: p})
	}
	m := newProgressBoard(g)

	if len(m.ready) != 3 {
		t.Fatalf("ready = %d, want 3", len(m.ready))
	}

	// Down moves the cursor, up moves it back, never past the ends
	next, _ := m.Update(keyMsg("j"))
	m = next.(progressBoard)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(progressBoard)
	next, _ = m.Update(keyMsg("k"))
	m = next.(progressBoard)
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}
}

func TestProgressBoardMarkUnblocks(t *testing.T) {
	m := newProgressBoard(boardGraph())

	// Only the leaf section starts ready
	if len(m.ready) != 1 || m.ready[0] != "us/statute/26/1" {
		t.Fatalf("ready = %v, want [us/statute/26/1]", m.ready)
	}

	// Marking it encoded surfaces its dependent
	next, _ := m.Update(keyMsg("enter"))
	m = next.(progressBoard)
	if m.marked != 1 {
		t.Errorf("marked = %d, want 1", m.marked)
	}
	if len(m.ready) != 1 || m.ready[0] != "us/statute/26/32" {
		t.Errorf("ready after mark = %v, want [us/statute/26/32]", m.ready)
	}
}

func TestProgressBoardQuitsWhenDone(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{Path: "us/statute/26/1"})
	m := newProgressBoard(g)

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(progressBoard)
	if len(m.ready) != 0 {
		t.Fatalf("ready = %v, want empty", m.ready)
	}
	if cmd == nil {
		t.Error("marking the last section should quit")
	}
}

func TestProgressBoardQuitKeys(t *testing.T) {
	m := newProgressBoard(boardGraph())
	for _, key := range []string{"q", "esc"} {
		if _, cmd := m.Update(keyMsg(key)); cmd == nil {
			t.Errorf("key %q should quit", key)
		}
	}
}

func TestProgressBoardView(t *testing.T) {
	m := newProgressBoard(boardGraph())
	view := m.View()

	if !strings.Contains(view, "Encoding Progress") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "us/statute/26/1") {
		t.Error("view should list the ready section")
	}
	if !strings.Contains(view, "[1/1]") {
		t.Error("view should show the position footer")
	}
}
