package postgres

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_NestedRollsBackOnlySavepoint(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	rowErr := errors.New("row failed")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.Nested(ctx, func(nf repository.RepositoryFactory) error {
			return nf.StoreRepo().Create(ctx, newTestStore("KEEP", 1, 1))
		}))

		nestedErr := f.Nested(ctx, func(nf repository.RepositoryFactory) error {
			if err := nf.StoreRepo().Create(ctx, newTestStore("DROP", 2, 2)); err != nil {
				return err
			}

			return rowErr
		})
		assert.ErrorIs(t, nestedErr, rowErr)

		return nil
	})
	require.NoError(t, err)

	repo := NewStoreRepository(db)
	_, err = repo.FindByStoreID(ctx, "KEEP")
	require.NoError(t, err)
	_, err = repo.FindByStoreID(ctx, "DROP")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	failure := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.StoreRepo().Create(ctx, newTestStore("S1", 1, 1)); err != nil {
			return err
		}

		return failure
	})
	assert.ErrorIs(t, err, failure)

	_, err = NewStoreRepository(db).FindByStoreID(ctx, "S1")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestTransactionManager_DuplicateInsideSavepointKeepsTransactionUsable(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, NewStoreRepository(db).Create(ctx, newTestStore("S1", 1, 1)))

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		dupErr := f.Nested(ctx, func(nf repository.RepositoryFactory) error {
			return nf.StoreRepo().Create(ctx, newTestStore("S1", 1, 1))
		})
		assert.ErrorIs(t, dupErr, repository.ErrDuplicateStore)

		return f.Nested(ctx, func(nf repository.RepositoryFactory) error {
			return nf.StoreRepo().Create(ctx, entity.NewStore("S2", "Second", entity.Coordinates{Latitude: 2, Longitude: 2}))
		})
	})
	require.NoError(t, err)

	_, err = NewStoreRepository(db).FindByStoreID(ctx, "S2")
	assert.NoError(t, err)
}
