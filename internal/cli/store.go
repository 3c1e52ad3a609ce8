package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/akinator/internal/adapters/file"
	"github.com/aretw0/akinator/internal/adapters/redis"
	"github.com/aretw0/akinator/internal/config"
	"github.com/aretw0/akinator/pkg/adapters/memory"
	"github.com/aretw0/akinator/pkg/domain"
	"github.com/aretw0/akinator/pkg/ports"
)

// openStore builds the TreeStore selected by cfg.
// The returned close function releases backend connections.
func openStore(cfg config.Config) (ports.TreeStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreFile, "":
		return file.New(cfg.TreePath), noop, nil
	case config.StoreRedis:
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithKey(cfg.Redis.Key),
			redis.WithTTL(cfg.Redis.TTL),
		)
		return s, s.Close, nil
	case config.StoreMemory:
		return memory.NewStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// loadOrDefault returns the stored tree, or the default tree when none was saved.
func loadOrDefault(ctx context.Context, store ports.TreeStore) (*domain.Node, error) {
	root, err := store.Load(ctx)
	if errors.Is(err, domain.ErrTreeNotFound) {
		return domain.DefaultTree(), nil
	}
	return root, err
}
