// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskboard/internal/board"
)

const (
	// Separator is the line between the card list and the summary.
	Separator = "------------"

	// RecentTag marks tasks created in this session.
	RecentTag = "[recent]"
)

// FormatCard formats a task card line.
// Format: "{ID:>4}  {ICON} {TITLE}[ [recent]]\n", followed by the
// description indented under the title when present.
func FormatCard(w io.Writer, card board.Card) {
	line := fmt.Sprintf("%4d  %s %s", card.ID, card.StatusIcon, card.Title)
	if card.Recent {
		line += " " + RecentTag
	}
	fmt.Fprintln(w, line)
	if desc := oneLine(card.Description); desc != "" {
		fmt.Fprintf(w, "        %s\n", desc)
	}
}

// FormatListView formats the card area: every card, or the single
// message line that replaces them.
func FormatListView(w io.Writer, view board.ListView) {
	if view.IsMessage() {
		fmt.Fprintln(w, view.Message)
		return
	}
	for _, card := range view.Cards {
		FormatCard(w, card)
	}
}

// FormatSummary formats the board counters below a separator line.
func FormatSummary(w io.Writer, s board.Summary) {
	fmt.Fprintln(w, Separator)
	FormatCounts(w, s)
}

// FormatCounts formats the counters on a single line.
func FormatCounts(w io.Writer, s board.Summary) {
	fmt.Fprintf(w, "total %d  done %d  pending %d\n", s.Total, s.Done, s.Pending)
}

// oneLine collapses line breaks so a description stays on one line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
