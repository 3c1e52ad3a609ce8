package memory

import (
	"context"
	"sync"

	"github.com/aretw0/akinator/pkg/domain"
)

// Store implements ports.TreeStore in memory.
// Safe for concurrent use.
type Store struct {
	root *domain.Node
	mu   sync.RWMutex

	// Saves counts successful Save calls.
	Saves int
}

// NewStore creates a new empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store already holding a copy of root.
func NewStoreWith(root *domain.Node) *Store {
	return &Store{root: root.Clone()}
}

// Save keeps a deep copy of the tree, similar to serialization.
func (s *Store) Save(ctx context.Context, root *domain.Node) error {
	if err := domain.Validate(root); err != nil {
		return err
	}

	copied := root.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = copied
	s.Saves++
	return nil
}

// Load returns a copy so callers can't mutate the stored tree by pointer.
func (s *Store) Load(ctx context.Context) (*domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.root == nil {
		return nil, domain.ErrTreeNotFound
	}
	return s.root.Clone(), nil
}

// Delete removes the stored tree.
func (s *Store) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = nil
	return nil
}
