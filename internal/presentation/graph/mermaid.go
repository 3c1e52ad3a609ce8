package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/akinator/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the decision tree.
// Questions are drawn as rhombi {"..."} and animals as rounded boxes ("...").
// Nodes are numbered in pre-order, so the root is always n0.
func GenerateMermaid(root *domain.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	ids := make(map[*domain.Node]string)
	root.Walk(func(n *domain.Node, _ int) bool {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		label := escapeLabel(n.Content)
		if n.IsLeaf() {
			sb.WriteString(fmt.Sprintf("    %s(\"%s\")\n", id, label))
		} else {
			sb.WriteString(fmt.Sprintf("    %s{\"%s\"}\n", id, label))
		}
		return true
	})

	root.Walk(func(n *domain.Node, _ int) bool {
		if !n.IsLeaf() {
			sb.WriteString(fmt.Sprintf("    %s -- yes --> %s\n", ids[n], ids[n.Yes]))
			sb.WriteString(fmt.Sprintf("    %s -- no --> %s\n", ids[n], ids[n.No]))
		}
		return true
	})

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
