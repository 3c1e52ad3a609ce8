package domain

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes     int `json:"nodes" yaml:"nodes"`
	Leaves    int `json:"leaves" yaml:"leaves"`
	Questions int `json:"questions" yaml:"questions"`
	// Depth is the number of questions on the longest root-to-leaf path.
	Depth int `json:"depth" yaml:"depth"`
}

// Stats computes node, leaf and depth counts for the subtree rooted at n.
func (n *Node) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node, depth int) bool {
		s.Nodes++
		if node.IsLeaf() {
			s.Leaves++
			if depth > s.Depth {
				s.Depth = depth
			}
		} else {
			s.Questions++
		}
		return true
	})
	return s
}

// Animals lists every leaf in pre-order.
func (n *Node) Animals() []string {
	var animals []string
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			animals = append(animals, node.Content)
		}
		return true
	})
	return animals
}
