package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func searchQueries(msgs []tea.Msg) []string {
	var queries []string
	for _, msg := range msgs {
		if s, ok := msg.(SearchMsg); ok {
			queries = append(queries, s.Query)
		}
	}
	return queries
}

func TestSearchOverlay_EmitsOnChange(t *testing.T) {
	s := NewSearchOverlay("mil")

	_, cmd := s.Update(keyRunes("k"))

	assert.Equal(t, []string{"milk"}, searchQueries(collect(cmd)))
	assert.Equal(t, "milk", s.Query())
}

func TestSearchOverlay_Enter(t *testing.T) {
	s := NewSearchOverlay("milk")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	assert.True(t, hasClose(msgs))
	assert.Empty(t, searchQueries(msgs), "keyword is kept")
	assert.Equal(t, "milk", s.Query())
}

func TestSearchOverlay_EscClears(t *testing.T) {
	s := NewSearchOverlay("milk")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	msgs := collect(cmd)
	assert.True(t, hasClose(msgs))
	assert.Equal(t, []string{""}, searchQueries(msgs))
	assert.Empty(t, s.Query())
}

func TestSearchOverlay_View(t *testing.T) {
	s := NewSearchOverlay("")
	assert.NotContains(t, s.View(), "match")

	s = NewSearchOverlay("milk")
	s.SetMatchCount(1)
	assert.Contains(t, s.View(), "(1 match)")

	s.SetMatchCount(3)
	assert.Contains(t, s.View(), "(3 matches)")

	w, h := s.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 1, h)
	assert.Empty(t, s.Title())
}
