// Package errorbox shows titled messages to the user and keeps at most one
// pending error for later display.
package errorbox

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Severity of a message box.
type Severity int

const (
	// SeverityInfo is an informational message.
	SeverityInfo Severity = iota
	// SeverityWarning is a warning.
	SeverityWarning
	// SeverityError is an error.
	SeverityError
)

// String returns the severity label.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a titled message with a severity.
type Message struct {
	Title    string
	Text     string
	Severity Severity
}

// Presenter displays a message. Presentation failures are not reported.
type Presenter interface {
	Present(m Message)
}

var (
	borderColor = map[Severity]lipgloss.Color{
		SeverityInfo:    lipgloss.Color("#87CEEB"),
		SeverityWarning: lipgloss.Color("#FFD166"),
		SeverityError:   lipgloss.Color("#FF6B6B"),
	}

	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Console renders messages as bordered boxes on a writer.
type Console struct {
	w     io.Writer
	plain bool
}

// NewConsole creates a console presenter writing to w, or to stderr when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}

	return &Console{w: w}
}

// NewPlainConsole creates a console presenter without borders or colors.
func NewPlainConsole(w io.Writer) *Console {
	c := NewConsole(w)
	c.plain = true
	return c
}

// Present writes the message box.
func (c *Console) Present(m Message) {
	_, _ = io.WriteString(c.w, c.Render(m)+"\n")
}

// Render returns the message box text.
func (c *Console) Render(m Message) string {
	head := strings.ToUpper(m.Severity.String())
	if m.Title != "" {
		head += ": " + m.Title
	}

	if c.plain {
		return head + "\n" + m.Text
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor[m.Severity]).
		Padding(0, 1)

	return box.Render(titleStyle.Render(head) + "\n" + m.Text)
}

// Reporter shows messages through a Presenter and holds one pending error.
type Reporter struct {
	presenter Presenter
	pending   *Message
	log       *zap.Logger
	mu        sync.Mutex
}

// NewReporter creates a reporter. A nil presenter renders to stderr; a nil
// logger disables logging.
func NewReporter(p Presenter, log *zap.Logger) *Reporter {
	if p == nil {
		p = NewConsole(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Reporter{presenter: p, log: log}
}

// Show presents a message box. It always returns 0.
func (r *Reporter) Show(title, text string, sev Severity) int {
	r.log.Debug("message box", zap.String("title", title), zap.Stringer("severity", sev))
	r.presenter.Present(Message{Title: title, Text: text, Severity: sev})
	return 0
}

// Store records an error for later display, replacing any pending one.
func (r *Reporter) Store(title, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending != nil {
		r.log.Debug("pending error replaced", zap.String("title", r.pending.Title))
	}
	r.pending = &Message{Title: title, Text: text, Severity: SeverityError}
}

// HasPending reports whether an error is waiting to be shown.
func (r *Reporter) HasPending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pending != nil
}

// Pending returns the pending error without clearing it.
func (r *Reporter) Pending() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return Message{}, false
	}

	return *r.pending, true
}

// ShowPending presents and clears the pending error, if any. It always returns 0.
func (r *Reporter) ShowPending() int {
	r.mu.Lock()
	m := r.pending
	r.pending = nil
	r.mu.Unlock()

	if m == nil {
		return 0
	}

	return r.Show(m.Title, m.Text, m.Severity)
}

// Clear drops the pending error.
func (r *Reporter) Clear() {
	r.mu.Lock()
	r.pending = nil
	r.mu.Unlock()
}
