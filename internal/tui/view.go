package tui

import (
	"fmt"
	"strings"

	"taskboard/internal/board"
)

// View renders the board, or the task form when one is open.
func (m *Model) View() string {
	frame := m.session.Frame()

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Task board"))
	b.WriteString("  ")
	b.WriteString(m.renderSummary(frame.Summary))
	b.WriteString("\n\n")

	if frame.Form.Open() {
		b.WriteString(m.renderForm(frame.Form))
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render(m.keys.formHelp()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderFilters(frame.Filter))
	b.WriteString("\n")
	if m.mode == modeSearch || frame.Query != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderList(frame))
	b.WriteString("\n")

	if frame.Notice != "" {
		b.WriteString(m.styles.notice.Render(frame.Notice))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render(m.keys.boardHelp()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderSummary(s board.Summary) string {
	return m.styles.summary.Render(fmt.Sprintf("total %d · done %d · pending %d", s.Total, s.Done, s.Pending))
}

func (m *Model) renderFilters(active board.Filter) string {
	parts := make([]string, len(board.Filters))
	for i, f := range board.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			parts[i] = m.styles.filterActive.Render(label)
		} else {
			parts[i] = m.styles.filter.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderList(frame board.Frame) string {
	if frame.List.IsMessage() {
		msg := frame.List.Message
		if frame.Loading {
			msg = m.spinner.View() + " " + msg
		}
		return m.styles.message.Render(msg) + "\n"
	}

	var b strings.Builder
	for i, card := range frame.List.Cards {
		b.WriteString(m.renderCard(card, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderCard(card board.Card, selected bool) string {
	status := m.styles.pending.Render(card.StatusIcon + " " + card.StatusLabel)
	if card.Completed {
		status = m.styles.done.Render(card.StatusIcon + " " + card.StatusLabel)
	}

	line := fmt.Sprintf("#%-4d %s  %s", card.ID, card.Title, status)
	if card.Recent {
		line += "  " + m.styles.recent.Render("recent")
	}
	if card.Description != "" {
		line += "\n" + m.styles.description.Render(card.Description)
	}

	if selected {
		return m.styles.cardSelected.Render(line)
	}
	return m.styles.card.Render(line)
}

func (m *Model) renderForm(f board.Form) string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render(f.Heading()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.label.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	if f.TitleError != "" {
		b.WriteString(m.styles.errorText.Render(f.TitleError))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.label.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.completed {
		check = "[x]"
	}
	cursor := "  "
	if m.focus == fieldCompleted {
		cursor = "> "
	}
	b.WriteString(cursor + check + " Completed")
	b.WriteString("\n")

	if f.Feedback != "" && f.Feedback != board.MsgSaving {
		b.WriteString("\n")
		b.WriteString(m.renderFeedback(f))
		b.WriteString("\n")
	}
	// A failed create must not hide others still in flight.
	if f.Saving > 0 {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " " + board.MsgSaving)
		b.WriteString("\n")
	}
	return m.styles.form.Render(b.String())
}

func (m *Model) renderFeedback(f board.Form) string {
	if f.Feedback == board.MsgCreated {
		return m.styles.notice.Render(f.Feedback)
	}
	return m.styles.errorText.Render(f.Feedback)
}
