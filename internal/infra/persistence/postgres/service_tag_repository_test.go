package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTagRepository_FindOrCreateByName(t *testing.T) {
	repo := NewServiceTagRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.FindOrCreateByName(ctx, "pharmacy")
	require.NoError(t, err)
	second, err := repo.FindOrCreateByName(ctx, "pharmacy")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = repo.FindOrCreateByName(ctx, "atm")
	require.NoError(t, err)

	tags, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "atm", tags[0].Name)
	assert.Equal(t, "pharmacy", tags[1].Name)
}
