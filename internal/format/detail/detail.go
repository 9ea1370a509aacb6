package detail

import "strings"

// Pair is one label/value row in a detail block.
type Pair struct {
	Label string
	Value string
}

// Rows renders pairs with the labels right-padded to a common width, so the
// values line up in a column. Empty values are skipped.
func Rows(pairs []Pair) []string {
	width := 0
	kept := make([]Pair, 0, len(pairs))
	for _, pair := range pairs {
		if strings.TrimSpace(pair.Value) == "" {
			continue
		}
		kept = append(kept, pair)
		if n := len([]rune(pair.Label)); n > width {
			width = n
		}
	}
	out := make([]string, 0, len(kept))
	for _, pair := range kept {
		var b strings.Builder
		b.WriteString(pair.Label)
		for i := len([]rune(pair.Label)); i < width; i++ {
			b.WriteByte(' ')
		}
		b.WriteString("  ")
		b.WriteString(pair.Value)
		out = append(out, b.String())
	}
	return out
}
