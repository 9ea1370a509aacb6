package source

import (
	"context"
	"net/http"
	"sort"

	"github.com/BusselW/navmenu/internal/menu"
)

// hierarchicalAdapter consumes a flat record list whose entries reference
// their parents by id, and rebuilds the nested tree from it.
type hierarchicalAdapter struct {
	cfg   Config
	fetch Fetcher
}

func (a *hierarchicalAdapter) Config() Config {
	return a.cfg
}

func (a *hierarchicalAdapter) Fetch(ctx context.Context) (*Result, error) {
	var flat []menu.RawRecord
	if a.cfg.URL != "" {
		parsed, err := fetchJSON(ctx, a.fetch, Request{
			Method:  http.MethodGet,
			URL:     a.cfg.URL,
			Headers: a.cfg.Headers,
		})
		if err != nil {
			return nil, err
		}
		flat = parsed.records
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		flat = a.cfg.Items
	}
	roots, dropped := Reconstruct(flat, a.cfg.SortDescending)
	return &Result{Records: roots, Dropped: dropped}, nil
}

// Reconstruct turns a flat parent-referencing collection into nested root
// records. Records whose parent reference is absent or unresolved are
// promoted to root. Records that appear in their own ancestor chain are
// dropped and reported, never recursed into. Sibling sequences are sorted by
// the order field (descending when requested), ties broken by original
// record order.
func Reconstruct(flat []menu.RawRecord, descending bool) ([]menu.RawRecord, []*ReconstructionError) {
	if len(flat) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(flat))
	for i, record := range flat {
		id := record.ID()
		if id == "" {
			continue
		}
		if _, exists := index[id]; !exists {
			index[id] = i
		}
	}

	// Cycle guard: walk each record's parent chain before any attachment.
	var dropped []*ReconstructionError
	excluded := make(map[int]bool)
	for i, record := range flat {
		id := record.ID()
		if id == "" {
			continue
		}
		chain := []string{}
		current := record.ParentID()
		for steps := 0; current != "" && steps <= len(flat); steps++ {
			chain = append(chain, current)
			if current == id {
				excluded[i] = true
				dropped = append(dropped, &ReconstructionError{RecordID: id, Chain: chain})
				break
			}
			parentIdx, ok := index[current]
			if !ok {
				break
			}
			current = flat[parentIdx].ParentID()
		}
	}

	// Attach survivors to their parents in original order; unresolved or
	// excluded parents promote the record to root.
	childIdx := make(map[int][]int)
	var rootIdx []int
	for i, record := range flat {
		if excluded[i] {
			continue
		}
		parentID := record.ParentID()
		if parentID != "" {
			if pi, ok := index[parentID]; ok && pi != i && !excluded[pi] {
				childIdx[pi] = append(childIdx[pi], i)
				continue
			}
		}
		rootIdx = append(rootIdx, i)
	}

	sortSiblings := func(indices []int) {
		sort.SliceStable(indices, func(a, b int) bool {
			oa, ob := flat[indices[a]].Order(), flat[indices[b]].Order()
			if descending {
				return oa > ob
			}
			return oa < ob
		})
	}

	var build func(i int) menu.RawRecord
	build = func(i int) menu.RawRecord {
		indices := append([]int(nil), childIdx[i]...)
		sortSiblings(indices)
		children := make([]menu.RawRecord, 0, len(indices))
		for _, ci := range indices {
			children = append(children, build(ci))
		}
		return flat[i].SetChildren(children)
	}

	sortSiblings(rootIdx)
	roots := make([]menu.RawRecord, 0, len(rootIdx))
	for _, i := range rootIdx {
		roots = append(roots, build(i))
	}
	return roots, dropped
}
