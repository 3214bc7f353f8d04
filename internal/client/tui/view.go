package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"todoboard/internal/client/board"
	"todoboard/internal/core/domain"
)

const (
	defaultColumnWidth = 28
	minColumnWidth     = 16
)

func (m Model) View() string {
	if m.form.open {
		return m.modalView()
	}

	columns := m.columns()
	width := m.columnWidth(len(columns))

	rendered := make([]string, 0, len(columns))
	for i, column := range columns {
		rendered = append(rendered, m.columnView(i, column, width))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo Board"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) columnView(index int, column board.Column, width int) string {
	lines := []string{
		headerStyle(index).Render(fmt.Sprintf("%s (%d)", column.Title, len(column.Todos))),
		"",
	}

	if len(column.Todos) == 0 {
		lines = append(lines, mutedStyle.Render("no tasks"))
	}
	for row, todo := range column.Todos {
		title := truncate(todo.Title, width-2)
		switch {
		case todo.ID == m.carrying:
			title = carriedStyle.Render("✥ " + truncate(todo.Title, width-4))
		case index == m.column && row == m.row && m.carrying == "":
			title = selectedStyle.Render(title)
		}
		lines = append(lines, title)
		if todo.Description != "" {
			lines = append(lines, mutedStyle.Render(truncate(todo.Description, width-2)))
		}
	}

	style := columnStyle
	switch {
	case index == m.column && m.carrying != "":
		style = dropColumnStyle
	case index == m.column:
		style = activeColumnStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) statusLine() string {
	switch {
	case m.state.Error != "":
		return errorStyle.Render("✖ " + m.state.Error)
	case m.state.IsLoading:
		return mutedStyle.Render("Loading…")
	case m.carrying != "":
		return carriedStyle.Render(fmt.Sprintf("Carrying card; drop on %s", board.ColumnTitle(m.columns()[m.column].Status)))
	}
	return mutedStyle.Render(fmt.Sprintf("%d tasks", len(m.state.Todos)))
}

func (m Model) modalView() string {
	lines := []string{
		titleStyle.Render(m.form.modal.Heading()),
		"",
		label("Title", m.form.focus == fieldTitle),
		m.form.title.View(),
		label("Description", m.form.focus == fieldDescription),
		m.form.description.View(),
		label("Status", m.form.focus == fieldStatus),
		statusPicker(m.form.modal.Status),
	}
	if m.form.err != "" {
		lines = append(lines, "", errorStyle.Render(m.form.err))
	}

	h := help.New()
	lines = append(lines, "", h.ShortHelpView([]key.Binding{
		m.modalKeys.Submit, m.modalKeys.Next, m.modalKeys.Status, m.modalKeys.Close,
	}))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func label(text string, focused bool) string {
	if focused {
		return accentStyle.Render(text)
	}
	return mutedStyle.Render(text)
}

func statusPicker(current domain.TodoStatus) string {
	parts := make([]string, 0, len(domain.TodoStatuses))
	for _, status := range domain.TodoStatuses {
		name := board.ColumnTitle(status)
		if status == current {
			parts = append(parts, selectedStyle.Render(" "+name+" "))
			continue
		}
		parts = append(parts, mutedStyle.Render(" "+name+" "))
	}
	return strings.Join(parts, " ")
}

func (m Model) columnWidth(count int) int {
	if m.width == 0 || count == 0 {
		return defaultColumnWidth
	}
	// border and padding take 4 cells per column
	width := m.width/count - 4
	if width < minColumnWidth {
		return minColumnWidth
	}
	return width
}

func truncate(s string, limit int) string {
	if limit <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
