package overlay

import tea "github.com/charmbracelet/bubbletea"

// collect runs cmd and flattens batches into the messages they produce
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func hasClose(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(CloseOverlayMsg); ok {
			return true
		}
	}
	return false
}
