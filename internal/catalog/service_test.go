package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpine/frontier/internal/domain"
)

// countingRepo wraps the fake repo to count repository round trips
type countingRepo struct {
	*fakeDefinitionRepo
	byIDCalls   int
	byNameCalls int
}

func (c *countingRepo) GetDefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error) {
	c.byIDCalls++
	return c.fakeDefinitionRepo.GetDefinitionByID(ctx, id)
}

func (c *countingRepo) GetDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error) {
	c.byNameCalls++
	return c.fakeDefinitionRepo.GetDefinitionByName(ctx, name)
}

func seededRepo(t *testing.T) *countingRepo {
	t.Helper()
	repo := &countingRepo{fakeDefinitionRepo: newFakeDefinitionRepo()}
	_, err := repo.InsertDefinition(context.Background(), &domain.ItemDefinition{
		Name:      "wood",
		Category:  domain.CategoryMaterial,
		Stackable: true,
		StackSize: 50,
	})
	require.NoError(t, err)
	return repo
}

func TestDefinitionByID(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup is served from cache", func(t *testing.T) {
		repo := seededRepo(t)
		svc := NewService(repo)

		def, err := svc.DefinitionByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "wood", def.Name)

		_, err = svc.DefinitionByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.byIDCalls)
	})

	t.Run("unknown id is not cached", func(t *testing.T) {
		repo := seededRepo(t)
		svc := NewService(repo)

		_, err := svc.DefinitionByID(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = svc.DefinitionByID(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, 2, repo.byIDCalls)
	})
}

func TestDefinitionByName(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup by id primes the name cache", func(t *testing.T) {
		repo := seededRepo(t)
		svc := NewService(repo)

		_, err := svc.DefinitionByID(ctx, 1)
		require.NoError(t, err)

		def, err := svc.DefinitionByName(ctx, "wood")
		require.NoError(t, err)
		assert.Equal(t, 1, def.ID)
		assert.Equal(t, 0, repo.byNameCalls)
	})

	t.Run("invalidate forces a fresh read", func(t *testing.T) {
		repo := seededRepo(t)
		svc := NewService(repo)

		_, err := svc.DefinitionByName(ctx, "wood")
		require.NoError(t, err)

		svc.Invalidate()

		_, err = svc.DefinitionByName(ctx, "wood")
		require.NoError(t, err)
		assert.Equal(t, 2, repo.byNameCalls)
	})
}

func TestAllDefinitions(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)

	defs, err := svc.AllDefinitions(context.Background())
	require.NoError(t, err)
	assert.Len(t, defs, 1)
}
