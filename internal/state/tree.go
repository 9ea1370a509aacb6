package state

import "github.com/BusselW/navmenu/internal/menu"

// TreeStore holds the most recently loaded menu tree so view code and
// watcher updates share one source of truth.
type TreeStore interface {
	Tree() []*menu.Node
	SetTree([]*menu.Node)
	Version() int
}

type treeStore struct {
	tree    []*menu.Node
	version int
}

func NewTreeStore() TreeStore {
	return &treeStore{}
}

func (s *treeStore) Tree() []*menu.Node {
	return menu.CloneTree(s.tree)
}

func (s *treeStore) SetTree(tree []*menu.Node) {
	s.tree = menu.CloneTree(tree)
	s.version++
}

func (s *treeStore) Version() int {
	return s.version
}
