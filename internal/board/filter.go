package board

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are visible on the board.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
	FilterRecent    Filter = "recent"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending, FilterRecent}

// ParseFilter parses a filter name (case-insensitive, trimmed).
// An empty name means FilterAll.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter: %s", s)
}

// Matches reports whether the task passes the filter.
// Unknown filters behave like FilterAll.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterRecent:
		return t.IsRecent
	default:
		return true
	}
}

// MatchesQuery reports whether the task title contains query,
// ignoring case. An empty query matches everything.
func MatchesQuery(t Task, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// Project returns the tasks that match both the search query and the filter,
// in their original relative order. The input slice is not modified.
func Project(tasks []Task, filter Filter, query string) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesQuery(t, query) && filter.Matches(t) {
			visible = append(visible, t)
		}
	}
	return visible
}
