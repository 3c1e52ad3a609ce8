package codec

import (
	"fmt"

	"github.com/aretw0/akinator/pkg/domain"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a node: either an animal, or a question with both branches.
type document struct {
	Animal   string    `yaml:"animal,omitempty"`
	Question string    `yaml:"question,omitempty"`
	Yes      *document `yaml:"yes,omitempty"`
	No       *document `yaml:"no,omitempty"`
}

// MarshalYAML renders the tree as a YAML document.
func MarshalYAML(root *domain.Node) ([]byte, error) {
	if err := domain.Validate(root); err != nil {
		return nil, err
	}
	return yaml.Marshal(toDocument(root))
}

// UnmarshalYAML parses and validates a YAML tree document.
func UnmarshalYAML(data []byte) (*domain.Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTree, err)
	}

	root, err := fromDocument(&doc, "root")
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTree, err)
	}
	return root, nil
}

func toDocument(n *domain.Node) *document {
	if n.IsLeaf() {
		return &document{Animal: n.Content}
	}
	return &document{
		Question: n.Content,
		Yes:      toDocument(n.Yes),
		No:       toDocument(n.No),
	}
}

func fromDocument(d *document, path string) (*domain.Node, error) {
	switch {
	case d.Animal != "" && d.Question != "":
		return nil, fmt.Errorf("%w: %s has both animal and question", domain.ErrCorruptTree, path)
	case d.Animal != "":
		if d.Yes != nil || d.No != nil {
			return nil, fmt.Errorf("%w: animal %q at %s has branches", domain.ErrCorruptTree, d.Animal, path)
		}
		return domain.NewNode(d.Animal), nil
	case d.Question != "":
		if d.Yes == nil || d.No == nil {
			return nil, fmt.Errorf("%w: question %q at %s needs both yes and no", domain.ErrCorruptTree, d.Question, path)
		}
		yes, err := fromDocument(d.Yes, path+".yes")
		if err != nil {
			return nil, err
		}
		no, err := fromDocument(d.No, path+".no")
		if err != nil {
			return nil, err
		}
		return domain.NewQuestion(d.Question, yes, no), nil
	default:
		return nil, fmt.Errorf("%w: %s has neither animal nor question", domain.ErrCorruptTree, path)
	}
}
