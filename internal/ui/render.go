package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeRows is how many terminal rows the header, search box, and
// status bar occupy around the list viewport.
const chromeRows = 4

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	searchBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	searchFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	cursorRowStyle = lipgloss.NewStyle().
			Reverse(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("shortlist")
	if m.showSpinner {
		return title + " " + m.spin.View() + dimStyle.Render("loading")
	}
	return title
}

func (m Model) renderSearch() string {
	if m.focus == FocusSearch {
		return searchFocusStyle.Render(m.search.View())
	}
	return searchBoxStyle.Render(m.search.View())
}

func (m Model) renderList() string {
	rows := m.state.Rows()
	visible := m.visibleRows()
	top := m.state.ScrollTop()
	if top > len(rows) {
		top = len(rows)
	}

	var b strings.Builder
	for i := top; i < len(rows) && i < top+visible; i++ {
		b.WriteString(m.renderRow(i, rows[i].ID, rows[i].Value))
		b.WriteString("\n")
	}
	for i := len(rows) - top; i < visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(index int, id int64, value string) string {
	check := "[ ]"
	if m.state.Selected(id) {
		check = "[x]"
	}

	line := fmt.Sprintf(" %s %s", check, value)
	if m.width > 0 && len(line) > m.width {
		line = line[:m.width]
	}

	if index == m.cursor && m.focus == FocusList {
		return cursorRowStyle.Render(line)
	}
	if m.state.Selected(id) {
		return selectedStyle.Render(line)
	}
	return line
}

func (m Model) renderStatus() string {
	total := m.state.Total()
	loaded := len(m.state.Rows())

	var parts []string
	if total >= 0 {
		parts = append(parts, fmt.Sprintf("%d/%d items", loaded, total))
	} else {
		parts = append(parts, fmt.Sprintf("%d items", loaded))
	}
	if n := m.state.SelectionCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if term := m.state.Search(); term != "" {
		parts = append(parts, fmt.Sprintf("filter %q", term))
	}
	parts = append(parts, "space select | J/K move | / search | q quit")

	return statusStyle.Render(strings.Join(parts, " · "))
}
