package board

import (
	"strings"
	"unicode"
)

// User-facing texts.
const (
	MsgLoading       = "Loading tasks..."
	MsgLoadFailed    = "There was a problem loading tasks..."
	MsgNoTasks       = "No tasks to show."
	MsgSaving        = "Saving task..."
	MsgCreated       = "Task created successfully!"
	MsgCreateFailed  = "There was an error creating the task."
	MsgTitleRequired = "Title is required."
	MsgTitleTooShort = "Title must have at least 3 characters."
)

// Status labels and icons shown on cards.
const (
	LabelDone    = "Done"
	LabelPending = "Pending"
	IconDone     = "✔"
	IconPending  = "○"
)

// Card is the render data for one task.
type Card struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	Recent      bool
	StatusLabel string
	StatusIcon  string
}

// ListView is the content of the card area: either a list of cards or a
// single message line (empty state, loading, fetch failure).
type ListView struct {
	Cards   []Card
	Message string
}

// IsMessage reports whether the card area shows a single line instead of cards.
func (v ListView) IsMessage() bool {
	return v.Message != ""
}

// Summary holds counts over the whole store.
type Summary struct {
	Total   int
	Done    int
	Pending int
}

// RenderList builds one card per task in order. An empty list renders as the
// "no tasks" placeholder.
func RenderList(tasks []Task) ListView {
	if len(tasks) == 0 {
		return ListView{Message: MsgNoTasks}
	}
	cards := make([]Card, len(tasks))
	for i, t := range tasks {
		cards[i] = newCard(t)
	}
	return ListView{Cards: cards}
}

// RenderStatus replaces the card area with a single status line.
func RenderStatus(message string) ListView {
	return ListView{Message: message}
}

// RenderSummary counts all tasks regardless of filter and search.
func RenderSummary(all []Task) Summary {
	done := 0
	for _, t := range all {
		if t.Completed {
			done++
		}
	}
	return Summary{Total: len(all), Done: done, Pending: len(all) - done}
}

func newCard(t Task) Card {
	c := Card{
		ID:          t.ID,
		Title:       displayTitle(t.Title),
		Description: t.Description,
		Completed:   t.Completed,
		Recent:      t.IsRecent,
		StatusLabel: LabelPending,
		StatusIcon:  IconPending,
	}
	if t.Completed {
		c.StatusLabel = LabelDone
		c.StatusIcon = IconDone
	}
	return c
}

// displayTitle keeps a title on one line and replaces every control
// character, escape sequences included, with a space.
// Empty or whitespace-only titles become "(untitled)".
func displayTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
