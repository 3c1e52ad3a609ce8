package domain

import (
	"fmt"
	"strings"
)

var (
	// MaxContentSize bounds a single node's content in bytes.
	MaxContentSize = 64 * 1024
	// MaxDepth bounds the nesting level of a tree; the root is at depth 0.
	MaxDepth = 10000
)

// Validate checks the structural invariants of a tree:
// a non-nil root, non-empty content within MaxContentSize, no node deeper
// than MaxDepth, no node with exactly one child, and no node reachable
// through more than one path.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: empty tree", ErrInvalidTree)
	}

	seen := make(map[*Node]struct{})
	var err error
	root.Walk(func(node *Node, depth int) bool {
		if err != nil {
			return false
		}
		if _, dup := seen[node]; dup {
			err = fmt.Errorf("%w: node %q reachable more than once", ErrInvalidTree, node.Content)
			return false
		}
		seen[node] = struct{}{}

		if strings.TrimSpace(node.Content) == "" {
			err = fmt.Errorf("%w: empty content at depth %d", ErrInvalidTree, depth)
			return false
		}
		if len(node.Content) > MaxContentSize {
			err = fmt.Errorf("%w: content length %d exceeds %d at depth %d", ErrInvalidTree, len(node.Content), MaxContentSize, depth)
			return false
		}
		if depth > MaxDepth {
			err = fmt.Errorf("%w: tree deeper than %d", ErrInvalidTree, MaxDepth)
			return false
		}
		if (node.Yes == nil) != (node.No == nil) {
			err = fmt.Errorf("%w: question %q has a single branch", ErrInvalidTree, node.Content)
			return false
		}
		return true
	})
	return err
}
