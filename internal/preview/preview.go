// Package preview is a terminal viewer for generated scaffolds and hints,
// used to spot-check a catalog after an engine pass.
package preview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/textnorm"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

// Model is the root Bubble Tea model for the preview screen.
type Model struct {
	handles []catalog.Handle
	visible []int // indexes into handles, after filtering

	selected  int
	filter    textinput.Model
	filtering bool

	width  int
	height int
}

// New builds the preview model over a loaded catalog.
func New(c catalog.Catalog) Model {
	ti := textinput.New()
	ti.Placeholder = "filtrer par sujet ou texte"

	m := Model{handles: c.Walk(), filter: ti}
	m.visible = matchIndexes(m.handles, "")
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.visible = matchIndexes(m.handles, "")
				m.selected = 0
				return m, nil
			case "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.visible = matchIndexes(m.handles, m.filter.Value())
			m.selected = 0
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	header := titleStyle.Render("skafo preview") + dimStyle.Render(
		fmt.Sprintf("  %d/%d questions", len(m.visible), len(m.handles)))

	filterLine := ""
	if m.filtering || m.filter.Value() != "" {
		filterLine = "/ " + m.filter.View()
	}

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	bodyHeight := m.height - 4

	list := m.renderList(listWidth, bodyHeight)
	detail := m.renderDetail(m.width-listWidth-4, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	footer := dimStyle.Render("↑↓ naviguer · / filtrer · q quitter")

	sections := []string{header}
	if filterLine != "" {
		sections = append(sections, filterLine)
	}
	sections = append(sections, body, footer)

	v.SetContent(strings.Join(sections, "\n"))
	return v
}

func (m Model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return cardStyle.Width(width).Render(dimStyle.Render("aucune question"))
	}

	// Keep the selection in view.
	start := 0
	if m.selected >= height-2 {
		start = m.selected - (height - 3)
	}

	var lines []string
	for i := start; i < len(m.visible) && len(lines) < height-2; i++ {
		h := m.handles[m.visible[i]]
		line := fmt.Sprintf("%s %s", h.Key(), clip(h.Question.Text, width-10))
		if i == m.selected {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail(width, height int) string {
	if len(m.visible) == 0 {
		return ""
	}
	h := m.handles[m.visible[m.selected]]
	q := h.Question

	cat := classify.ClassifySubject(h.Subject)
	topic := classify.ClassifyTopic(cat, q.Text)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render(h.Subject), dimStyle.Render(string(cat)+"/"+string(topic)))
	fmt.Fprintf(&b, "%s %s\n\n", dimStyle.Render("type:"), q.Type)
	b.WriteString(clip(q.Text, width*3) + "\n")

	if q.ScaffoldText != "" {
		b.WriteString("\n" + labelStyle.Render("Gabarit") + "\n")
		b.WriteString(q.ScaffoldText + "\n")
		for i, blank := range q.ScaffoldBlanks {
			fmt.Fprintf(&b, "%s %s\n", dimStyle.Render(fmt.Sprintf("{{%d}}", i)), blank.Label)
		}
	}

	if len(q.Hints) > 0 {
		b.WriteString("\n" + labelStyle.Render("Indices") + "\n")
		for i, hint := range q.Hints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, hint)
		}
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) > height-2 {
		lines = lines[:height-2]
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// matchIndexes filters handles whose subject or text contains the query,
// compared diacritic-insensitively.
func matchIndexes(handles []catalog.Handle, query string) []int {
	query = textnorm.Normalize(strings.TrimSpace(query))
	out := make([]int, 0, len(handles))
	for i, h := range handles {
		if query == "" ||
			strings.Contains(textnorm.Normalize(h.Subject), query) ||
			strings.Contains(textnorm.Normalize(h.Question.Text), query) {
			out = append(out, i)
		}
	}
	return out
}

func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if n <= 1 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// Run starts the preview program over a catalog.
func Run(c catalog.Catalog) error {
	_, err := tea.NewProgram(New(c)).Run()
	return err
}
