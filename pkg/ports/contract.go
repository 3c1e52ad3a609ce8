package ports

import (
	"context"
	"testing"

	"github.com/aretw0/akinator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTreeStoreContract runs a suite of tests to verify that a TreeStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunTreeStoreContract(t *testing.T, store TreeStore) {
	ctx := context.Background()

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrTreeNotFound)
	})

	t.Run("Save and Load", func(t *testing.T) {
		root := domain.NewQuestion("Does your animal have horns?",
			domain.NewNode("Cow"),
			domain.NewQuestion("Does it meow?", domain.NewNode("Cat"), domain.NewNode("Dog")),
		)

		err := store.Save(ctx, root)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, root.Equal(loaded), "loaded tree should match saved tree")
		assert.NotSame(t, root, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.DefaultTree()))
		require.NoError(t, store.Save(ctx, domain.NewNode("Cat")))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, loaded.IsLeaf())
		assert.Equal(t, "Cat", loaded.Content)
	})

	t.Run("Saved Tree Is Detached", func(t *testing.T) {
		root := domain.DefaultTree()
		require.NoError(t, store.Save(ctx, root))

		root.No.Content = "Wolf"

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Dog", loaded.No.Content)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.DefaultTree()))

		err := store.Delete(ctx)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrTreeNotFound, "Load after Delete should return ErrTreeNotFound")

		assert.NoError(t, store.Delete(ctx), "Delete of a missing tree should succeed")
	})
}
