// Package modal holds the state of the blocking information dialog shared by
// the frontends. Drawing is left to each frontend.
package modal

import "strings"

// Modal is an informational dialog with a title and a multi-line message.
// While open, frontends stop the tick loop.
type Modal struct {
	title   string
	lines   []string
	open    bool
	onClose func()
}

// New creates a closed modal. onClose, if set, runs every time the modal is dismissed.
func New(onClose func()) *Modal {
	return &Modal{onClose: onClose}
}

// ShowInfo opens the modal. A newer message replaces an unread one.
func (m *Modal) ShowInfo(title, message string) {
	m.title = title
	m.lines = strings.Split(message, "\n")
	m.open = true
}

// Dismiss closes the modal and runs the callback. It is a no-op when closed.
func (m *Modal) Dismiss() {
	if !m.open {
		return
	}
	m.open = false
	if m.onClose != nil {
		m.onClose()
	}
}

// Open reports whether the modal is showing.
func (m *Modal) Open() bool {
	return m.open
}

// Title returns the dialog title.
func (m *Modal) Title() string {
	return m.title
}

// Lines returns the message split into lines.
func (m *Modal) Lines() []string {
	return m.lines
}

// Width returns the length in runes of the longest of the title and message lines.
func (m *Modal) Width() int {
	w := len([]rune(m.title))
	for _, l := range m.lines {
		w = max(w, len([]rune(l)))
	}
	return w
}
