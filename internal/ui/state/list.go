package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is one visible row of the rendered menu.
type Entry struct {
	ID     string
	Label  string
	Indent int
}

// List tracks cursor position, fuzzy filter, and viewport for the rows
// currently on screen.
type List struct {
	Entries        []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	ViewportOffset int
}

// NewList constructs a list over the provided entries.
func NewList(entries []Entry) *List {
	l := &List{}
	l.UpdateEntries(entries)
	return l
}

// UpdateEntries replaces the backing rows, re-applies the filter, and keeps
// the cursor on the same entry id when it survived the update.
func (l *List) UpdateEntries(entries []Entry) {
	keep := ""
	if l.Cursor >= 0 && l.Cursor < len(l.Entries) {
		keep = l.Entries[l.Cursor].ID
	}
	l.Full = cloneEntries(entries)
	l.applyFilter()
	if keep != "" {
		if idx := l.IndexOf(keep); idx >= 0 {
			l.Cursor = idx
		}
	}
	l.clampCursor()
}

// IndexOf returns the index of an entry id among the filtered rows.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range l.Entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// CurrentID returns the id under the cursor, or "" for an empty list.
func (l *List) CurrentID() string {
	if l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return ""
	}
	return l.Entries[l.Cursor].ID
}

// MoveCursor shifts the cursor by delta, wrapping at the ends, and reports
// whether it moved.
func (l *List) MoveCursor(delta int) bool {
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if old < 0 {
		old = 0
	}
	l.Cursor = ((old+delta)%n + n) % n
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *List) MoveCursorHome() bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (l *List) MoveCursorEnd() bool {
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays
// within the visible window.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.clampCursor()
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
	}
}

// SetFilter replaces the filter query and cursor position.
func (l *List) SetFilter(query string, cursor int) {
	l.Filter = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.FilterCursor = cursor
	l.applyFilter()
	if strings.TrimSpace(query) != "" {
		l.Cursor = 0
	}
	l.clampCursor()
}

// InsertFilterText inserts text at the filter cursor.
func (l *List) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.filterCursorPos()
	updated := make([]rune, 0, len(runes)+len(text))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, []rune(text)...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len([]rune(text)))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.filterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// ClearFilter drops the filter entirely.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

func (l *List) filterCursorPos() int {
	runes := []rune(l.Filter)
	if l.FilterCursor < 0 {
		return 0
	}
	if l.FilterCursor > len(runes) {
		return len(runes)
	}
	return l.FilterCursor
}

func (l *List) applyFilter() {
	l.Entries = FilterEntries(l.Full, l.Filter)
	if l.ViewportOffset > len(l.Entries)-1 {
		l.ViewportOffset = 0
	}
	l.clampCursor()
}

func (l *List) clampCursor() {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
}

// FilterEntries returns entries matching the query, fuzzy first with a
// substring fallback.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) ||
			strings.Contains(strings.ToLower(entry.ID), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
