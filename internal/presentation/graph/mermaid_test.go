package graph_test

import (
	"testing"

	"github.com/aretw0/akinator/internal/presentation/graph"
	"github.com/aretw0/akinator/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	root := domain.NewQuestion("Does your animal have horns?",
		domain.NewNode("Cow"),
		domain.NewQuestion(`Does it say "meow"?`, domain.NewNode("Cat"), domain.NewNode("Dog")),
	)

	want := `graph TD
    n0{"Does your animal have horns?"}
    n1("Cow")
    n2{"Does it say #quot;meow#quot;?"}
    n3("Cat")
    n4("Dog")
    n0 -- yes --> n1
    n0 -- no --> n2
    n2 -- yes --> n3
    n2 -- no --> n4
`
	assert.Equal(t, want, graph.GenerateMermaid(root))
}

func TestGenerateMermaid_Nil(t *testing.T) {
	assert.Equal(t, "graph TD\n", graph.GenerateMermaid(nil))
}
