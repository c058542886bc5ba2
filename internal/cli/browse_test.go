package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/combikit/pkg/combo"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModelSteps(t *testing.T) {
	m := NewBrowseModel("perms", combo.AllPermutations(3))
	if m.Count != 1 || m.Rows[0] != "0 1 2" {
		t.Fatalf("initial state: count=%d rows=%v", m.Count, m.Rows)
	}

	next, _ := m.Update(key("j"))
	m = next.(BrowseModel)
	if m.Count != 2 || m.Rows[1] != "0 2 1" {
		t.Errorf("after j: count=%d rows=%v", m.Count, m.Rows)
	}

	next, _ = m.Update(key("n"))
	m = next.(BrowseModel)
	if !m.Done || m.Count != 6 {
		t.Errorf("after n: done=%v count=%d, want exhausted at 6", m.Done, m.Count)
	}
	if !strings.Contains(m.View(), "exhausted") {
		t.Error("view should report exhaustion")
	}

	// Further steps are no-ops once exhausted.
	next, _ = m.Update(key("j"))
	if got := next.(BrowseModel).Count; got != 6 {
		t.Errorf("count after exhaustion = %d, want 6", got)
	}
}

func TestBrowseModelKeepsHeightRows(t *testing.T) {
	m := NewBrowseModel("subsets", combo.AllSubsets(5))
	m.Height = 4
	m = m.step(10)
	if len(m.Rows) != 4 {
		t.Fatalf("kept %d rows, want 4", len(m.Rows))
	}
	if m.Count != 11 {
		t.Errorf("count = %d, want 11", m.Count)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := NewBrowseModel("subsets", combo.AllSubsets(4))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
