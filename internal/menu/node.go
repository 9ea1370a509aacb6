package menu

// Node represents one navigation entry in the normalized menu tree.
type Node struct {
	ID           string
	Title        string
	Target       string
	OpenInNewTab bool
	Icon         string
	Style        string
	Order        int
	Level        int
	Children     []*Node
}

// HasChildren reports whether the node owns a submenu.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := *n
	if len(n.Children) > 0 {
		dup.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			dup.Children[i] = child.Clone()
		}
	}
	return &dup
}

// CloneTree deep-copies a forest of nodes.
func CloneTree(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	dup := make([]*Node, len(nodes))
	for i, node := range nodes {
		dup[i] = node.Clone()
	}
	return dup
}

// Walk visits every node in depth-first order. Returning false from visit
// stops the traversal.
func Walk(nodes []*Node, visit func(*Node) bool) {
	var walk func([]*Node) bool
	walk = func(level []*Node) bool {
		for _, node := range level {
			if node == nil {
				continue
			}
			if !visit(node) {
				return false
			}
			if !walk(node.Children) {
				return false
			}
		}
		return true
	}
	walk(nodes)
}

// Find locates a node by id anywhere in the forest.
func Find(nodes []*Node, id string) *Node {
	var found *Node
	Walk(nodes, func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ParentIndex maps every node id to its parent node. Root nodes map to nil.
func ParentIndex(nodes []*Node) map[string]*Node {
	parents := make(map[string]*Node)
	var walk func(parent *Node, level []*Node)
	walk = func(parent *Node, level []*Node) {
		for _, node := range level {
			if node == nil {
				continue
			}
			parents[node.ID] = parent
			walk(node, node.Children)
		}
	}
	walk(nil, nodes)
	return parents
}

// Count returns the number of nodes in the forest.
func Count(nodes []*Node) int {
	total := 0
	Walk(nodes, func(*Node) bool {
		total++
		return true
	})
	return total
}
