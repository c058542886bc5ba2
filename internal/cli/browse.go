package cli

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/combikit/pkg/combo"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	pkgio "github.com/matzehuels/combikit/pkg/io"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorText)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorMuted)
)

// =============================================================================
// BrowseModel - step through an enumeration one row at a time
// =============================================================================

// BrowseModel is the bubbletea model for interactive stepping. Each key
// press pulls the next row from the enumerator, so nothing beyond the rows
// on screen is ever computed.
type BrowseModel struct {
	Title  string
	Rows   []string
	Count  int
	Done   bool
	Height int

	next func() (string, bool)
	stop func()
}

// NewBrowseModel creates a model over seq. The first row is pulled
// immediately.
func NewBrowseModel[T any](title string, seq iter.Seq[T]) BrowseModel {
	next, stop := iter.Pull(seq)
	m := BrowseModel{
		Title:  title,
		Height: 15,
		next: func() (string, bool) {
			v, ok := next()
			if !ok {
				return "", false
			}
			return pkgio.FormatRow(v), true
		},
		stop: stop,
	}
	return m.step(1)
}

// step pulls up to n rows, keeping only the last Height on screen.
func (m BrowseModel) step(n int) BrowseModel {
	for range n {
		if m.Done {
			break
		}
		row, ok := m.next()
		if !ok {
			m.Done = true
			m.stop()
			break
		}
		m.Count++
		m.Rows = append(m.Rows, row)
	}
	if over := len(m.Rows) - m.Height; over > 0 {
		m.Rows = m.Rows[over:]
	}
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if !m.Done {
				m.stop()
			}
			return m, tea.Quit
		case "down", "j", "enter", " ":
			m = m.step(1)
		case "n", "pgdown":
			m = m.step(m.Height)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↓/j next  n next page  q quit"))
	b.WriteString("\n\n")

	first := m.Count - len(m.Rows)
	rows := make([][]string, len(m.Rows))
	for i, r := range m.Rows {
		rows[i] = []string{strconv.Itoa(first + i + 1), r}
	}
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("#", "Row").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
			case col == 0:
				return listDimStyle
			case row == last:
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  %d shown", m.Count)
	if m.Done {
		status += " · exhausted"
	}
	b.WriteString(listDimStyle.Render(status))
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// browseCommand creates the browse command and its per-enumeration
// subcommands.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Step through an enumeration interactively",
		Long: `Step through permutations, subsets or partitions one key press at a time.

Rows are produced lazily, so even enumerations far beyond the configured
limits can be browsed.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "perms N",
		Short: "Browse the permutations of 0..N-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize("N", args[0])
			if err != nil {
				return err
			}
			if err := cerrors.ValidateSize("N", n, 0); err != nil {
				return err
			}
			title := fmt.Sprintf("Permutations of %d", n)
			if n <= 20 {
				title += fmt.Sprintf(" (%d total)", combo.Factorial(n))
			}
			return runBrowse(NewBrowseModel(title, combo.AllPermutations(n)))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "subsets SIZE",
		Short: "Browse the non-empty subsets of 0..SIZE-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize("SIZE", args[0])
			if err != nil {
				return err
			}
			if err := cerrors.ValidateSize("SIZE", size, 0); err != nil {
				return err
			}
			title := fmt.Sprintf("Subsets of %d", size)
			return runBrowse(NewBrowseModel(title, combo.AllSubsets(size)))
		},
	})

	var groups string
	partitions := &cobra.Command{
		Use:   "partitions [FILE]",
		Short: "Browse group partitions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := partitionsRequest(args, groups)
			if err != nil {
				return err
			}
			seq, err := combo.AllGroupCombos(req.Groups, req.MaxValue)
			if err != nil {
				return pipeline.Classify(err)
			}
			return runBrowse(NewBrowseModel(fmt.Sprintf("Partitions of %d groups", len(req.Groups)), seq))
		},
	}
	partitions.Flags().StringVarP(&groups, "groups", "g", "", `groups as "a,b;c,d"`)
	cmd.AddCommand(partitions)

	return cmd
}

func runBrowse(m BrowseModel) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
