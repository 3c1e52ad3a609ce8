package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/akinator/pkg/codec"
	"github.com/aretw0/akinator/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the key the tree is stored under.
const DefaultKey = "akinator:tree"

// Store implements ports.TreeStore using Redis.
// The tree is kept as a single binary value, written with one SET.
type Store struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for the stored tree.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithKey sets the key the tree is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Save persists the tree to Redis.
func (s *Store) Save(ctx context.Context, root *domain.Node) error {
	data, err := codec.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the tree from Redis.
func (s *Store) Load(ctx context.Context) (*domain.Node, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	root, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key %s: %w", s.key, err)
	}
	return root, nil
}

// Delete removes the stored tree.
func (s *Store) Delete(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
