package domain

// Default tree seeded on first run.
const (
	DefaultQuestion  = "Does your animal have horns?"
	DefaultYesAnimal = "Cow"
	DefaultNoAnimal  = "Dog"
)

// Node is a single point in the decision tree.
// A leaf holds an animal name; an internal node holds a yes/no question
// and always owns both children.
type Node struct {
	// Content is the question text for internal nodes or the animal name for leaves.
	Content string

	Yes *Node
	No  *Node
}

// NewNode creates a leaf holding content.
func NewNode(content string) *Node {
	return &Node{Content: content}
}

// NewQuestion creates an internal node with both branches set.
func NewQuestion(question string, yes, no *Node) *Node {
	return &Node{Content: question, Yes: yes, No: no}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Yes == nil && n.No == nil
}

// DefaultTree returns the tree used when nothing has been learned yet.
func DefaultTree() *Node {
	return NewQuestion(DefaultQuestion, NewNode(DefaultYesAnimal), NewNode(DefaultNoAnimal))
}

// Walk visits the tree in pre-order (node, yes subtree, no subtree).
// Returning false from fn skips the children of that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	n.Yes.walk(fn, depth+1)
	n.No.walk(fn, depth+1)
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Content: n.Content,
		Yes:     n.Yes.Clone(),
		No:      n.No.Clone(),
	}
}

// Equal reports whether two trees hold the same content in the same shape.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Content == other.Content && n.Yes.Equal(other.Yes) && n.No.Equal(other.No)
}
