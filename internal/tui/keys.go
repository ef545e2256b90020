package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	add      key.Binding
	edit     key.Binding
	remove   key.Binding
	toggle   key.Binding
	clear    key.Binding
	filter   key.Binding
	search   key.Binding
	reset    key.Binding
	reload   key.Binding
	dismiss  key.Binding
	quit     key.Binding
	submit   key.Binding
	cancel   key.Binding
	next     key.Binding
	prev     key.Binding
	complete key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		remove:   key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
		toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done/pending")),
		clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		filter:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "filter")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		reload:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload demo data")),
		dismiss:  key.NewBinding(key.WithKeys("esc")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "up")),
		complete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "toggle completed")),
	}
}

func (k keyMap) boardHelp() string {
	return joinHelp(k.up, k.down, k.add, k.edit, k.remove, k.toggle, k.clear, k.filter, k.search, k.reset, k.reload, k.quit)
}

func (k keyMap) formHelp() string {
	return joinHelp(k.next, k.complete, k.submit, k.cancel)
}

func joinHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
