package ports

import (
	"context"

	"github.com/aretw0/akinator/pkg/domain"
)

// TreeStore defines the interface for persisting the decision tree between runs.
type TreeStore interface {
	// Load retrieves the whole tree.
	// Returns domain.ErrTreeNotFound if nothing has been saved yet.
	Load(ctx context.Context) (*domain.Node, error)

	// Save replaces any previously stored tree with root.
	Save(ctx context.Context, root *domain.Node) error

	// Delete removes the stored tree. Deleting a missing tree is not an error.
	Delete(ctx context.Context) error
}
