package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BusselW/navmenu/internal/format/detail"
	"github.com/BusselW/navmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if m.loading {
		lines = append(lines, styledLine{text: "Loading menu…", style: styles.Loading})
	} else if len(m.list.Entries) == 0 {
		msg := "(no entries)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		m.syncViewport()
		start := m.list.ViewportOffset
		entries := m.list.Entries
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(entries) > maxItems {
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(entries) {
				start = len(entries) - maxItems
				if start < 0 {
					start = 0
				}
				m.list.ViewportOffset = start
			}
			entries = entries[start : start+maxItems]
		} else {
			start = 0
		}
		for i, entry := range entries {
			lines = append(lines, m.buildItemLine(entry.ID, entry.Label, entry.Indent, start+i))
		}
	}
	if block := m.detailBlock(); len(block) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Details", style: styles.DetailTitle})
		for _, row := range block {
			lines = append(lines, styledLine{text: row, style: styles.DetailBody})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  tab toggle  esc close  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := []styledLine{statusLine}
	bottom = applyWidth(bottom, m.width)
	lines = append(lines, bottom...)
	out := renderLines(lines)

	// The filter prompt carries embedded ANSI styling, so it needs
	// ANSI-aware truncation rather than the rune-based path above.
	prompt := m.filterPrompt()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width-1), "…")
	}
	return out + "\n" + prompt
}

// buildItemLine renders one row: an indent, a submenu marker reflecting the
// phase, and the title.
func (m *Model) buildItemLine(id, label string, indent, idx int) styledLine {
	marker := " "
	markerStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if node, ok := m.nodes[id]; ok && node.HasChildren() {
		if isVisible(m.ctrl.Phase(id)) {
			marker = "▾"
			markerStyle = styles.OpenSubmenu
		} else {
			marker = "▸"
			markerStyle = styles.ClosedMarker
		}
	}
	if idx == m.list.Cursor {
		lineStyle = styles.FocusedItem
		markerStyle = styles.FocusedItem
	}
	prefix := strings.Repeat("  ", indent) + marker + " "
	fullText := prefix + label
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   markerStyle,
		highlightFrom: len([]rune(prefix)),
	}
}

// detailBlock summarises the node under the cursor.
func (m *Model) detailBlock() []string {
	node, ok := m.nodes[m.list.CurrentID()]
	if !ok {
		return nil
	}
	pairs := []detail.Pair{
		{Label: "Target", Value: node.Target},
		{Label: "Icon", Value: node.Icon},
		{Label: "Style", Value: node.Style},
	}
	if node.OpenInNewTab {
		pairs = append(pairs, detail.Pair{Label: "Opens", Value: "new tab"})
	}
	if node.HasChildren() {
		pairs = append(pairs, detail.Pair{Label: "Items", Value: strconv.Itoa(len(node.Children))})
	}
	return detail.Rows(pairs)
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

// headerSegments builds the breadcrumb: the root title followed by the
// titles of the focused row's ancestors.
func (m *Model) headerSegments() []string {
	segments := []string{m.rootTitle}
	node, ok := m.nodes[m.list.CurrentID()]
	if !ok {
		return segments
	}
	parents := menu.ParentIndex(m.tree)
	trail := []string{}
	for parent := parents[node.ID]; parent != nil; parent = parents[parent.ID] {
		trail = append([]string{parent.Title}, trail...)
	}
	return append(segments, trail...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.rtr != nil {
		m.rtr.Resize(m.width * cellWidthPx)
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if block := m.detailBlock(); len(block) > 0 {
		used += 2 + len(block)
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
