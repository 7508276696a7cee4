package errorbox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects presented messages.
type recorder struct {
	msgs []Message
}

func (r *recorder) Present(m Message) { r.msgs = append(r.msgs, m) }

func TestShow(t *testing.T) {
	rec := &recorder{}
	r := NewReporter(rec, nil)

	assert.Equal(t, 0, r.Show("Loading", "skin loaded", SeverityInfo))
	require.Len(t, rec.msgs, 1)
	assert.Equal(t, Message{Title: "Loading", Text: "skin loaded", Severity: SeverityInfo}, rec.msgs[0])
	assert.False(t, r.HasPending())
}

func TestPending(t *testing.T) {
	rec := &recorder{}
	r := NewReporter(rec, nil)

	assert.Equal(t, 0, r.ShowPending())
	assert.Empty(t, rec.msgs)

	r.Store("First", "one")
	r.Store("Second", "two")
	assert.True(t, r.HasPending())

	m, ok := r.Pending()
	require.True(t, ok)
	assert.Equal(t, "Second", m.Title)
	assert.Equal(t, SeverityError, m.Severity)

	assert.Equal(t, 0, r.ShowPending())
	assert.False(t, r.HasPending())
	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "two", rec.msgs[0].Text)

	r.Store("Third", "three")
	r.Clear()
	_, ok = r.Pending()
	assert.False(t, ok)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	NewPlainConsole(&buf).Present(Message{Title: "Parse", Text: "bad line", Severity: SeverityWarning})
	assert.Equal(t, "WARNING: Parse\nbad line\n", buf.String())

	out := NewConsole(&buf).Render(Message{Title: "Parse", Text: "bad line", Severity: SeverityError})
	assert.Contains(t, out, "ERROR: Parse")
	assert.Contains(t, out, "bad line")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
