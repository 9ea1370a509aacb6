package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.FilterCursor {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.loading {
		return false, nil
	}
	switch msg.String() {
	case "ctrl+u":
		if m.list.Filter == "" {
			return false, nil
		}
		before := m.list.FilterCursor
		m.list.ClearFilter()
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		m.rebuildRows()
		return true, nil
	case "ctrl+w":
		if !m.deleteFilterWord() {
			return false, nil
		}
		m.forceClearInfo()
		m.errMsg = ""
		m.rebuildRows()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.list.FilterCursor
		if !m.list.DeleteFilterRuneBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		m.rebuildRows()
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.list.FilterCursor
	if !m.list.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	m.rebuildRows()
	return true
}

// deleteFilterWord removes the word (and trailing spaces) before the filter
// cursor.
func (m *Model) deleteFilterWord() bool {
	runes := []rune(m.list.Filter)
	pos := m.list.FilterCursor
	if pos > len(runes) {
		pos = len(runes)
	}
	if pos <= 0 {
		return false
	}
	cut := pos
	for cut > 0 && unicode.IsSpace(runes[cut-1]) {
		cut--
	}
	for cut > 0 && !unicode.IsSpace(runes[cut-1]) {
		cut--
	}
	before := m.list.FilterCursor
	updated := append(append([]rune{}, runes[:cut]...), runes[pos:]...)
	m.list.SetFilter(string(updated), cut)
	m.noteFilterCursorChange(before)
	return true
}

func (m *Model) moveFilterCursor(delta int) tea.Cmd {
	before := m.list.FilterCursor
	m.list.SetFilter(m.list.Filter, m.list.FilterCursor+delta)
	m.noteFilterCursorChange(before)
	return nil
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.Filter, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.list.FilterCursor
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderFilterCursor(caretRune)
	after := ""
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
