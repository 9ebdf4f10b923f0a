package memory

import (
	"context"
	"testing"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMarkRepository()

	require.NoError(t, repo.Put(ctx, 1, 10, 8))
	require.NoError(t, repo.Put(ctx, 1, 11, 4))
	require.NoError(t, repo.Put(ctx, 2, 10, 9))

	values, err := repo.ForFilm(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{8, 4}, values)

	// Upsert replaces the stored value.
	require.NoError(t, repo.Put(ctx, 1, 10, 2))
	values, err = repo.ForFilm(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 4}, values)

	marks, err := repo.ForUser(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]model.Mark{
		{FilmID: 1, UserID: 10, Value: 2},
		{FilmID: 2, UserID: 10, Value: 9},
	}, marks))
}

func TestMarkRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMarkRepository()

	assert.ErrorIs(t, repo.Delete(ctx, 1, 10), repository.ErrNotFound)
	require.NoError(t, repo.Put(ctx, 1, 10, 8))
	require.NoError(t, repo.Delete(ctx, 1, 10))
	assert.ErrorIs(t, repo.Delete(ctx, 1, 10), repository.ErrNotFound)
}

func TestMarkRepositoryCascades(t *testing.T) {
	ctx := context.Background()
	repo := NewMarkRepository()
	require.NoError(t, repo.Put(ctx, 1, 10, 8))
	require.NoError(t, repo.Put(ctx, 1, 11, 8))
	require.NoError(t, repo.Put(ctx, 2, 10, 8))

	require.NoError(t, repo.DeleteForFilm(ctx, 1))
	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].FilmID)

	require.NoError(t, repo.DeleteForUser(ctx, 10))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
