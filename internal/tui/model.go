// Package tui is a minimal bubbletea violation browser, letting a user
// page through a compliance run's violations interactively instead of
// scrolling a flat text dump. Stripped of autofix/graph-preview states:
// there is no mechanical fix for "this module must not depend on that
// one", so modeFixPreview and modeGraph have no analogue here (see
// DESIGN.md).
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archguard/archguard/internal/rules"
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
)

// Model holds the TUI state for a single, immutable violation list.
type Model struct {
	violations    []rules.Violation
	cursor        int
	viewMode      viewMode
	width         int
	height        int
	statusMessage string
	quitting      bool
}

// NewModel creates a new TUI model over a completed compliance run.
func NewModel(violations []rules.Violation) Model {
	return Model{violations: violations, viewMode: modeList}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("211"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
)

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
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case modeList:
		return m.handleListKeys(msg)
	case modeDetail:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.violations)-1 {
			m.cursor++
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "space"))):
		if len(m.violations) > 0 {
			m.viewMode = modeDetail
		}
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "backspace"))):
		m.viewMode = modeList
		m.statusMessage = ""
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.viewMode {
	case modeList:
		return m.renderList()
	case modeDetail:
		return m.renderDetail()
	}

	return ""
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("archguard - Interactive Mode"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Found %d violation(s)", len(m.violations))
	b.WriteString(headerStyle.Render(summary))
	b.WriteString("\n\n")

	visibleStart := m.cursor - 10
	if visibleStart < 0 {
		visibleStart = 0
	}
	visibleEnd := visibleStart + 20
	if visibleEnd > len(m.violations) {
		visibleEnd = len(m.violations)
	}

	for i := visibleStart; i < visibleEnd; i++ {
		v := m.violations[i]

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-35s %s", prefix, truncate(v.Rule, 33), truncate(v.Path, 50))

		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = normalStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if visibleStart > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more above ...", visibleStart)))
		b.WriteString("\n")
	}
	if visibleEnd < len(m.violations) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more below ...", len(m.violations)-visibleEnd)))
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMessage)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: Navigate | Enter: Details | q: Quit"))

	return b.String()
}

func (m Model) renderDetail() string {
	if m.cursor >= len(m.violations) {
		return "No violation selected"
	}

	v := m.violations[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Violation Details"))
	b.WriteString("\n\n")

	details := fmt.Sprintf("Rule:    %s\nPath:    %s\nMessage: %s\n", v.Rule, v.Path, v.Message)
	b.WriteString(detailBoxStyle.Render(details))

	b.WriteString(helpStyle.Render("\nEsc: Back | q: Quit"))

	return b.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
